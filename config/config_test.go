package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadFile_MissingFile verifies a missing config file is nil, nil.
func TestLoadFile_MissingFile(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "config.yaml"))

	assert.NoError(t, err)
	assert.Nil(t, cfg)
}

// TestLoadFile_ParsesAllSections verifies a full config file round-trips.
func TestLoadFile_ParsesAllSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `crawl:
  base_url: https://dfrac.org/hi/category/fact-check/
  feed_url: https://dfrac.org/feed/
  user_agent: custom-agent/2.0
  timeout_seconds: 20
  concurrency: 4
  max_pages: 3
  max_age_days: 14
storage:
  reports_dir: /var/lib/dfracwatch/reports
  run_log_path: /var/lib/dfracwatch/runs.db
service:
  interval_minutes: 30
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://dfrac.org/hi/category/fact-check/", cfg.Crawl.BaseURL)
	assert.Equal(t, "https://dfrac.org/feed/", cfg.Crawl.FeedURL)
	assert.Equal(t, "custom-agent/2.0", cfg.Crawl.UserAgent)
	assert.Equal(t, 20*time.Second, cfg.Crawl.Timeout())
	assert.Equal(t, 4, cfg.Crawl.Concurrency)
	assert.Equal(t, 3, cfg.Crawl.MaxPages)
	assert.Equal(t, 14*24*time.Hour, cfg.Crawl.MaxAge())
	assert.Equal(t, "/var/lib/dfracwatch/reports", cfg.Storage.ReportsDir)
	assert.Equal(t, "/var/lib/dfracwatch/runs.db", cfg.Storage.RunLogPath)
	assert.Equal(t, 30*time.Minute, cfg.Service.Interval())
}

// TestLoadFile_InvalidYAML verifies a malformed file is a real error.
func TestLoadFile_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("crawl: [not: closed"), 0o600))

	cfg, err := LoadFile(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

// TestServiceConfig_IntervalDefault verifies the unset interval falls back.
func TestServiceConfig_IntervalDefault(t *testing.T) {
	var svc ServiceConfig

	assert.Equal(t, DefaultInterval, svc.Interval())
}
