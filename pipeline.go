// Package dfracwatch wires discovery, fetching, extraction, and analysis
// into a single crawl pipeline over the DFRAC fact-check archive.
package dfracwatch

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"dfracwatch/analyze"
	"dfracwatch/crawl"
	"dfracwatch/extract"
	"dfracwatch/report"
	"dfracwatch/runlog"
)

// Pipeline runs the full acquisition cycle: discover candidate article
// links, fetch them concurrently, extract structured reports, analyze, and
// persist. Stores are optional; a nil store skips that persistence step.
type Pipeline struct {
	Session     *crawl.Session
	Reports     *report.Store
	Runs        *runlog.Store
	Concurrency int
	MaxPages    int
	MaxAge      time.Duration
	FeedURL     string
}

// Outcome is the per-article result of one fetch-and-extract attempt. Err is
// set when the fetch or parse failed; the report is valid otherwise.
type Outcome struct {
	Link   crawl.CandidateLink
	Report report.ArticleReport
	Err    error
}

// RunSummary is the accounting for one complete pipeline run.
type RunSummary struct {
	RunID      uuid.UUID
	StartedAt  time.Time
	FinishedAt time.Time
	Discovered int
	Attempted  int
	Succeeded  int
	Failed     int
	Analyses   []analyze.Analysis
}

// Run executes one full crawl. It never aborts on per-article failures; only
// setup-level errors (store writes aside) are returned.
func (p *Pipeline) Run() (*RunSummary, error) {
	summary := &RunSummary{
		RunID:     uuid.New(),
		StartedAt: time.Now(),
	}

	links := p.Session.Discover(p.MaxAge, p.MaxPages)
	if p.FeedURL != "" {
		feedLinks, err := p.Session.DiscoverFeed(p.FeedURL, p.MaxAge)
		if err != nil {
			log.Printf("WARN: Feed discovery failed for %s: %v", p.FeedURL, err)
		} else {
			links = append(links, feedLinks...)
		}
	}
	summary.Discovered = len(links)
	log.Printf("INFO: Discovered %d candidate articles", len(links))

	outcomes := p.FetchAndExtract(links, p.Concurrency)
	summary.Attempted = len(outcomes)

	for _, outcome := range outcomes {
		if outcome.Err != nil {
			summary.Failed++
			log.Printf("WARN: Skipping %s: %v", outcome.Link.URL, outcome.Err)
			continue
		}

		if p.Reports != nil {
			if err := p.Reports.Add(outcome.Report); err != nil {
				summary.Failed++
				log.Printf("ERROR: Failed to persist report for %s: %v", outcome.Link.URL, err)
				continue
			}
		}

		summary.Succeeded++
		summary.Analyses = append(summary.Analyses, analyze.Analyze(outcome.Report))
	}

	summary.FinishedAt = time.Now()

	if p.Runs != nil {
		err := p.Runs.Record(runlog.Run{
			RunID:      summary.RunID,
			StartedAt:  summary.StartedAt,
			FinishedAt: summary.FinishedAt,
			Discovered: summary.Discovered,
			Attempted:  summary.Attempted,
			Succeeded:  summary.Succeeded,
			Failed:     summary.Failed,
		})
		if err != nil {
			return summary, fmt.Errorf("failed to record run: %w", err)
		}
	}

	log.Printf("INFO: Run %s complete: %d discovered, %d succeeded, %d failed in %v",
		summary.RunID, summary.Discovered, summary.Succeeded, summary.Failed,
		summary.FinishedAt.Sub(summary.StartedAt).Round(time.Millisecond))

	return summary, nil
}

// FetchAndExtract fetches every candidate link with bounded concurrency and
// extracts a report from each page. One Outcome per input link; a failed
// fetch or parse isolates to its own Outcome.
func (p *Pipeline) FetchAndExtract(links []crawl.CandidateLink, concurrency int) []Outcome {
	if concurrency <= 0 {
		concurrency = crawl.DefaultConcurrency
	}

	results := p.Session.FetchAll(links, concurrency)

	outcomes := make([]Outcome, 0, len(results))
	for _, result := range results {
		outcome := Outcome{Link: result.Link, Err: result.Err}
		if result.Err == nil {
			outcome.Report, outcome.Err = extract.FromHTML(
				result.Link.URL,
				result.Link.DiscoveredDate,
				bytes.NewReader(result.Page.Body),
			)
		}
		outcomes = append(outcomes, outcome)
	}

	return outcomes
}

// Summarize aggregates the analyses of a finished run.
func (s *RunSummary) Summarize() analyze.Summary {
	return analyze.Summarize(s.Analyses)
}
