package services

import (
	"strings"

	"github.com/dmitrijs2005/recipebook/internal/client/models"
)

// FilterByTitle returns the recipes whose title contains term, ignoring case.
// The input order is preserved and an empty term returns every recipe.
func FilterByTitle(list []models.Recipe, term string) []models.Recipe {
	if term == "" {
		return list
	}

	needle := strings.ToLower(term)
	out := make([]models.Recipe, 0, len(list))
	for _, r := range list {
		if strings.Contains(strings.ToLower(r.Title), needle) {
			out = append(out, r)
		}
	}
	return out
}
