package dfracwatch

import (
	"context"
	"log"
	"time"
)

// Service runs the pipeline on a fixed interval until stopped. It runs one
// crawl immediately on startup, then once per tick.
type Service struct {
	pipeline *Pipeline
	interval time.Duration
	stopChan chan struct{}
}

// DefaultInterval is the crawl interval when none is configured.
const DefaultInterval = 1 * time.Hour

// NewService creates a periodic crawl service around a pipeline.
func NewService(pipeline *Pipeline, interval time.Duration) *Service {
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Service{
		pipeline: pipeline,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Run starts the crawl loop. It runs until Stop() is called or the context
// is cancelled.
func (s *Service) Run(ctx context.Context) error {
	log.Println("Crawl service starting")

	s.runOnce()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Crawl service stopping (context cancelled)")
			return ctx.Err()
		case <-s.stopChan:
			log.Println("Crawl service stopping")
			return nil
		case <-ticker.C:
			s.runOnce()
		}
	}
}

// Stop signals the service to stop gracefully.
func (s *Service) Stop() {
	close(s.stopChan)
}

func (s *Service) runOnce() {
	summary, err := s.pipeline.Run()
	if err != nil {
		log.Printf("ERROR: Crawl run failed: %v", err)
		return
	}
	if summary.Succeeded > 0 {
		log.Printf("INFO:\n%s", summary.Summarize())
	}
}
