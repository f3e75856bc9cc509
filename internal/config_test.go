package internal

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "novatable.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, "novatable", cfg.AppName)
	require.Equal(t, " | ", cfg.Render.ColumnSeparator)
	require.Equal(t, ", ", cfg.Render.FieldSeparator)
	require.Equal(t, strings.Repeat("-", 44), cfg.Render.Rule)
	require.Equal(t, 6, cfg.Render.FloatPrecision)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "text", cfg.Log.Format)
}

func TestLoadConfig_OverridesAndDefaults(t *testing.T) {
	path := writeConfig(t, `
app_name: accounts
render:
  field_separator: "; "
  float_precision: 2
log:
  level: debug
  format: json
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "accounts", cfg.AppName)
	require.Equal(t, "; ", cfg.Render.FieldSeparator)
	require.Equal(t, " | ", cfg.Render.ColumnSeparator)
	require.Equal(t, 2, cfg.Render.FloatPrecision)

	rc := cfg.RenderConfig()
	require.Equal(t, "; ", rc.FieldSeparator)
	require.Equal(t, 2, rc.FloatPrecision)

	var buf bytes.Buffer
	logger, err := cfg.Logger(&buf)
	require.NoError(t, err)
	logger.Debug("hello", "k", 1)
	require.Contains(t, buf.String(), `"msg":"hello"`)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "render:\n  float_precision: -1\n"))
	require.Error(t, err)

	cfg := DefaultConfig()
	cfg.Log.Format = "xml"
	_, err = cfg.Logger(&bytes.Buffer{})
	require.Error(t, err)

	cfg = DefaultConfig()
	cfg.Log.Level = "loud"
	_, err = cfg.Logger(&bytes.Buffer{})
	require.Error(t, err)
}
