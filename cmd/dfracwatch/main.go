// Command dfracwatch runs one crawl of the DFRAC fact-check archive and
// prints the resulting breakdown.
package main

import (
	"flag"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"dfracwatch"
	"dfracwatch/config"
	"dfracwatch/crawl"
	"dfracwatch/report"
	"dfracwatch/runlog"
)

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration parses a duration from environment variable or returns default.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvInt parses an int from environment variable or returns default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func main() {
	// .env is optional; absence is not an error.
	_ = godotenv.Load()

	// File config fills defaults; flags and env override it.
	fileCfg, err := config.LoadConfigFile()
	if err != nil {
		log.Fatalf("Failed to load config file: %v", err)
	}
	defaults := configDefaults(fileCfg)

	baseURL := flag.String("base-url", getEnv("DFRACWATCH_BASE_URL", defaults.baseURL), "Archive listing URL to crawl (DFRACWATCH_BASE_URL)")
	feedURL := flag.String("feed-url", getEnv("DFRACWATCH_FEED_URL", defaults.feedURL), "Optional RSS feed URL for supplemental discovery (DFRACWATCH_FEED_URL)")
	userAgent := flag.String("user-agent", getEnv("DFRACWATCH_USER_AGENT", defaults.userAgent), "User-Agent header for all requests (DFRACWATCH_USER_AGENT)")
	timeout := flag.Duration("timeout", getEnvDuration("DFRACWATCH_TIMEOUT", defaults.timeout), "Per-request timeout (DFRACWATCH_TIMEOUT)")
	concurrency := flag.Int("concurrency", getEnvInt("DFRACWATCH_CONCURRENCY", defaults.concurrency), "Maximum number of parallel article fetches (DFRACWATCH_CONCURRENCY)")
	maxPages := flag.Int("max-pages", getEnvInt("DFRACWATCH_MAX_PAGES", defaults.maxPages), "Maximum listing pages to walk (DFRACWATCH_MAX_PAGES)")
	maxAge := flag.Duration("max-age", getEnvDuration("DFRACWATCH_MAX_AGE", defaults.maxAge), "Recency cutoff for candidate articles (DFRACWATCH_MAX_AGE)")
	reportsDir := flag.String("reports", getEnv("DFRACWATCH_REPORTS_DIR", defaults.reportsDir), "Directory for extracted report storage (DFRACWATCH_REPORTS_DIR)")
	runLogPath := flag.String("runlog", getEnv("DFRACWATCH_RUNLOG", defaults.runLogPath), "Path to the run accounting database (DFRACWATCH_RUNLOG)")

	flag.Parse()

	session, err := crawl.NewSession(crawl.Config{
		BaseURL:   *baseURL,
		UserAgent: *userAgent,
		Timeout:   *timeout,
	})
	if err != nil {
		log.Fatalf("Failed to configure crawl session: %v", err)
	}

	log.Printf("Opening report store: %s", *reportsDir)
	reportStore, err := report.NewStore(*reportsDir)
	if err != nil {
		log.Fatalf("Failed to open report store: %v", err)
	}

	log.Printf("Opening run log: %s", *runLogPath)
	runStore, err := runlog.NewStore(*runLogPath)
	if err != nil {
		log.Fatalf("Failed to open run log: %v", err)
	}
	defer runStore.Close()

	pipeline := &dfracwatch.Pipeline{
		Session:     session,
		Reports:     reportStore,
		Runs:        runStore,
		Concurrency: *concurrency,
		MaxPages:    *maxPages,
		MaxAge:      *maxAge,
		FeedURL:     *feedURL,
	}

	summary, err := pipeline.Run()
	if err != nil {
		log.Fatalf("Crawl run failed: %v", err)
	}

	os.Stdout.WriteString(summary.Summarize().String())
}

// resolvedDefaults carries flag defaults after the config file is applied.
type resolvedDefaults struct {
	baseURL     string
	feedURL     string
	userAgent   string
	timeout     time.Duration
	concurrency int
	maxPages    int
	maxAge      time.Duration
	reportsDir  string
	runLogPath  string
}

func configDefaults(cfg *config.FileConfig) resolvedDefaults {
	d := resolvedDefaults{
		baseURL:     config.DefaultBaseURL,
		userAgent:   crawl.DefaultUserAgent,
		timeout:     crawl.DefaultTimeout,
		concurrency: crawl.DefaultConcurrency,
		maxPages:    config.DefaultMaxPages,
		maxAge:      config.DefaultMaxAgeDays * 24 * time.Hour,
		reportsDir:  ".reports",
		runLogPath:  "runs.db",
	}
	if cfg == nil {
		return d
	}

	if cfg.Crawl.BaseURL != "" {
		d.baseURL = cfg.Crawl.BaseURL
	}
	if cfg.Crawl.FeedURL != "" {
		d.feedURL = cfg.Crawl.FeedURL
	}
	if cfg.Crawl.UserAgent != "" {
		d.userAgent = cfg.Crawl.UserAgent
	}
	if cfg.Crawl.TimeoutSeconds > 0 {
		d.timeout = cfg.Crawl.Timeout()
	}
	if cfg.Crawl.Concurrency > 0 {
		d.concurrency = cfg.Crawl.Concurrency
	}
	if cfg.Crawl.MaxPages > 0 {
		d.maxPages = cfg.Crawl.MaxPages
	}
	if cfg.Crawl.MaxAgeDays > 0 {
		d.maxAge = cfg.Crawl.MaxAge()
	}
	if cfg.Storage.ReportsDir != "" {
		d.reportsDir = cfg.Storage.ReportsDir
	}
	if cfg.Storage.RunLogPath != "" {
		d.runLogPath = cfg.Storage.RunLogPath
	}
	return d
}
