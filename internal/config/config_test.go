package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTOML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "project.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadAppliesDefaultOAMBudget(t *testing.T) {
	path := writeTOML(t, `
name = "demo"
gbc_support = true
output_path = "build/demo.c"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "demo", cfg.Name)
	require.True(t, cfg.GBCSupport)
	require.Equal(t, defaultOAMBudget, cfg.OAMBudget)
}

func TestLoadRejectsMissingName(t *testing.T) {
	path := writeTOML(t, `gbc_support = false`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.Error(t, err)
}

func TestLoadFallsBackOnNonPositiveOAMBudget(t *testing.T) {
	path := writeTOML(t, `
name = "demo"
oam_budget = -5
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, defaultOAMBudget, cfg.OAMBudget)
}
