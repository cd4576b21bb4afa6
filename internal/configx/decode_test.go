package configx

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/recipebook/internal/timex"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Addr     string         `json:"addr" yaml:"addr"`
	Interval timex.Duration `json:"interval" yaml:"interval"`
}

func write(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDecodeFile_JSON(t *testing.T) {
	var s sample
	require.NoError(t, DecodeFile(write(t, "cfg.json", `{"addr":"x:1","interval":"4s"}`), &s))
	require.Equal(t, "x:1", s.Addr)
	require.Equal(t, 4*time.Second, s.Interval.Duration)
}

func TestDecodeFile_YAML(t *testing.T) {
	for _, name := range []string{"cfg.yaml", "cfg.YML"} {
		var s sample
		require.NoError(t, DecodeFile(write(t, name, "addr: y:2\ninterval: 7s\n"), &s))
		require.Equal(t, "y:2", s.Addr)
		require.Equal(t, 7*time.Second, s.Interval.Duration)
	}
}

func TestDecodeFile_Errors(t *testing.T) {
	var s sample
	err := DecodeFile(filepath.Join(t.TempDir(), "missing.json"), &s)
	require.ErrorContains(t, err, "read config")

	err = DecodeFile(write(t, "bad.json", `{ nope`), &s)
	require.ErrorContains(t, err, "decode config")
}
