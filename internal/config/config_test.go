package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("WORKTIME_DIR", "")
	t.Setenv("WORKTIME_BACKEND", "")
	t.Setenv("WORKTIME_REPORT_DAYS", "")
	t.Setenv("WORKTIME_LOG_CALLS", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".worktime"), cfg.DataDir)
	assert.Equal(t, BackendJSON, cfg.Backend)
	assert.Equal(t, 7, cfg.ReportDays)
	assert.False(t, cfg.LogCalls)
	assert.Equal(t, filepath.Join(home, ".worktime", "timelogs.json"), cfg.StorePath())
}

func TestLoad_Overrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WORKTIME_DIR", dir)
	t.Setenv("WORKTIME_BACKEND", "SQLite")
	t.Setenv("WORKTIME_REPORT_DAYS", "14")
	t.Setenv("WORKTIME_LOG_CALLS", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, 14, cfg.ReportDays)
	assert.True(t, cfg.LogCalls)
	assert.Equal(t, filepath.Join(dir, "worktime.db"), cfg.StorePath())
}

func TestLoad_InvalidReportDaysIgnored(t *testing.T) {
	t.Setenv("WORKTIME_DIR", t.TempDir())
	t.Setenv("WORKTIME_BACKEND", "")

	for _, v := range []string{"0", "-3", "a week"} {
		t.Setenv("WORKTIME_REPORT_DAYS", v)
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 7, cfg.ReportDays, "value=%q", v)
	}
}

func TestLoad_UnknownBackend(t *testing.T) {
	t.Setenv("WORKTIME_DIR", t.TempDir())
	t.Setenv("WORKTIME_BACKEND", "postgres")

	_, err := Load()
	assert.ErrorIs(t, err, ErrUnknownBackend)
}
