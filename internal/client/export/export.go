// Package export writes recipe lists to spreadsheet files.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/recipebook/internal/client/models"
	"github.com/dmitrijs2005/recipebook/internal/filex"
	"github.com/xuri/excelize/v2"
)

const sheet = "Recipes"

var ErrUnsupportedFormat = errors.New("unsupported export format")

var header = []string{"id", "title", "description", "posted_by", "has_image"}

func record(r models.Recipe) []string {
	return []string{
		strconv.FormatInt(r.ID, 10),
		r.Title,
		r.Description,
		r.UserEmail,
		strconv.FormatBool(r.Image != nil && *r.Image != ""),
	}
}

// Write picks the format from the extension of path: .xlsx or .csv.
func Write(path string, list []models.Recipe) error {
	var write func(string, []models.Recipe) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		write = WriteXLSX
	case ".csv":
		write = WriteCSV
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	if err := filex.EnsureParentDir(path); err != nil {
		return err
	}
	return write(path, list)
}

func WriteXLSX(path string, list []models.Recipe) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}

	if err := sw.SetRow("A1", toRow(header)); err != nil {
		return err
	}
	for i, r := range list {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, toRow(record(r))); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}
	return f.SaveAs(path)
}

func toRow(values []string) []any {
	row := make([]any, len(values))
	for i, v := range values {
		row[i] = v
	}
	return row
}

func WriteCSV(path string, list []models.Recipe) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range list {
		if err := w.Write(record(r)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
