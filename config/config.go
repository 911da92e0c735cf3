// Package config loads crawler configuration from a YAML file with
// sensible defaults for everything left unset.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// CrawlConfig holds the discovery and fetch settings.
type CrawlConfig struct {
	BaseURL        string `yaml:"base_url"`
	FeedURL        string `yaml:"feed_url"`
	UserAgent      string `yaml:"user_agent"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	Concurrency    int    `yaml:"concurrency"`
	MaxPages       int    `yaml:"max_pages"`
	MaxAgeDays     int    `yaml:"max_age_days"`
}

// StorageConfig holds the report store and run log locations.
type StorageConfig struct {
	ReportsDir string `yaml:"reports_dir"`
	RunLogPath string `yaml:"run_log_path"`
}

// ServiceConfig holds the periodic daemon settings.
type ServiceConfig struct {
	IntervalMinutes int `yaml:"interval_minutes"`
}

// FileConfig represents the structure of ~/.dfracwatch/config.yaml.
type FileConfig struct {
	Crawl   CrawlConfig   `yaml:"crawl"`
	Storage StorageConfig `yaml:"storage"`
	Service ServiceConfig `yaml:"service"`
}

// Defaults applied where the config file is absent or leaves a field unset.
const (
	DefaultBaseURL    = "https://dfrac.org/en/category/fact-check/"
	DefaultMaxPages   = 10
	DefaultMaxAgeDays = 7
	DefaultInterval   = 60 * time.Minute
)

// Timeout returns the fetch timeout, or zero when unset so callers can
// substitute their own default.
func (c CrawlConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// MaxAge returns the recency cutoff as a duration.
func (c CrawlConfig) MaxAge() time.Duration {
	return time.Duration(c.MaxAgeDays) * 24 * time.Hour
}

// Interval returns the daemon poll interval, or DefaultInterval when unset.
func (c ServiceConfig) Interval() time.Duration {
	if c.IntervalMinutes <= 0 {
		return DefaultInterval
	}
	return time.Duration(c.IntervalMinutes) * time.Minute
}

// LoadConfigFile loads configuration from ~/.dfracwatch/config.yaml. Returns
// nil if the file doesn't exist (not an error). Returns error if the file
// exists but cannot be parsed.
func LoadConfigFile() (*FileConfig, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}

	return LoadFile(filepath.Join(homeDir, ".dfracwatch", "config.yaml"))
}

// LoadFile loads configuration from an explicit path, with the same
// missing-file semantics as LoadConfigFile.
func LoadFile(configPath string) (*FileConfig, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, nil // File doesn't exist -- not an error
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}
