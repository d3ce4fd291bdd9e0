package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "$", cfg.General.Currency)
	assert.True(t, cfg.General.SeedSampleData)
	assert.Equal(t, []int{7, 3, 1}, cfg.General.BillReminderDays)
	assert.Equal(t, "mint-dark", cfg.Appearance.Theme)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.Currency = "€"
	cfg.General.SeedSampleData = false
	cfg.General.BillReminderDays = []int{14, 7}
	cfg.General.DataDir = "/tmp/finsprint-test"

	require.NoError(t, Save(cfg))
	assert.True(t, Exists())

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
	assert.Equal(t, "/tmp/finsprint-test", got.DataDir())
}

func TestDataDir_XDGFallback(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	cfg := DefaultConfig()
	assert.Equal(t, "/tmp/xdg-data/finsprint", cfg.DataDir())
	assert.Equal(t, "/tmp/xdg-data/finsprint/finsprint.db", cfg.DBPath())
}
