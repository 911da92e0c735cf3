// Command dfracwatch-daemon crawls the DFRAC fact-check archive on a fixed
// interval until terminated.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
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
	_ = godotenv.Load()

	fileCfg, err := config.LoadConfigFile()
	if err != nil {
		log.Fatalf("Failed to load config file: %v", err)
	}

	defaultInterval := config.DefaultInterval
	if fileCfg != nil {
		defaultInterval = fileCfg.Service.Interval()
	}
	defaultBase := config.DefaultBaseURL
	defaultFeed := ""
	defaultReports := ".reports"
	defaultRunLog := "runs.db"
	if fileCfg != nil {
		if fileCfg.Crawl.BaseURL != "" {
			defaultBase = fileCfg.Crawl.BaseURL
		}
		defaultFeed = fileCfg.Crawl.FeedURL
		if fileCfg.Storage.ReportsDir != "" {
			defaultReports = fileCfg.Storage.ReportsDir
		}
		if fileCfg.Storage.RunLogPath != "" {
			defaultRunLog = fileCfg.Storage.RunLogPath
		}
	}

	baseURL := flag.String("base-url", getEnv("DFRACWATCH_BASE_URL", defaultBase), "Archive listing URL to crawl (DFRACWATCH_BASE_URL)")
	feedURL := flag.String("feed-url", getEnv("DFRACWATCH_FEED_URL", defaultFeed), "Optional RSS feed URL for supplemental discovery (DFRACWATCH_FEED_URL)")
	timeout := flag.Duration("timeout", getEnvDuration("DFRACWATCH_TIMEOUT", crawl.DefaultTimeout), "Per-request timeout (DFRACWATCH_TIMEOUT)")
	concurrency := flag.Int("concurrency", getEnvInt("DFRACWATCH_CONCURRENCY", crawl.DefaultConcurrency), "Maximum number of parallel article fetches (DFRACWATCH_CONCURRENCY)")
	maxPages := flag.Int("max-pages", getEnvInt("DFRACWATCH_MAX_PAGES", config.DefaultMaxPages), "Maximum listing pages to walk (DFRACWATCH_MAX_PAGES)")
	maxAge := flag.Duration("max-age", getEnvDuration("DFRACWATCH_MAX_AGE", config.DefaultMaxAgeDays*24*time.Hour), "Recency cutoff for candidate articles (DFRACWATCH_MAX_AGE)")
	interval := flag.Duration("interval", getEnvDuration("DFRACWATCH_INTERVAL", defaultInterval), "Time between crawl runs (DFRACWATCH_INTERVAL)")
	reportsDir := flag.String("reports", getEnv("DFRACWATCH_REPORTS_DIR", defaultReports), "Directory for extracted report storage (DFRACWATCH_REPORTS_DIR)")
	runLogPath := flag.String("runlog", getEnv("DFRACWATCH_RUNLOG", defaultRunLog), "Path to the run accounting database (DFRACWATCH_RUNLOG)")

	flag.Parse()

	session, err := crawl.NewSession(crawl.Config{
		BaseURL: *baseURL,
		Timeout: *timeout,
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

	service := dfracwatch.NewService(pipeline, *interval)

	// Setup signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	errChan := make(chan error, 1)
	go func() {
		errChan <- service.Run(ctx)
	}()

	select {
	case sig := <-sigChan:
		log.Printf("Received signal: %v", sig)
		log.Println("Shutting down gracefully...")
		cancel()
		service.Stop()

		shutdownTimer := time.NewTimer(60 * time.Second)
		select {
		case <-errChan:
			log.Println("Service stopped")
		case <-shutdownTimer.C:
			log.Println("Shutdown timeout exceeded, forcing exit")
		}
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Service error: %v", err)
		}
	}
}
