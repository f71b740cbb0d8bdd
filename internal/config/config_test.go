package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 24, cfg.Planner.ProjectionMonths)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("FARM_PLANNER_PROJECTION_MONTHS", "36")
	t.Setenv("FARM_SERVER_PORT", "9999")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 36, cfg.Planner.ProjectionMonths)
	assert.Equal(t, 9999, cfg.Server.Port)
}

func TestLoadExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "farmplanner.yaml")
	contents := "planner:\n  projection_months: 48\nserver:\n  port: 3000\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 48, cfg.Planner.ProjectionMonths)
	assert.Equal(t, 3000, cfg.Server.Port)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsOutOfRangeValues(t *testing.T) {
	t.Setenv("FARM_PLANNER_PROJECTION_MONTHS", "0")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
