package crawl

import "sync"

// FetchResult pairs a candidate link with the outcome of fetching it.
// Exactly one of Page or Err is set.
type FetchResult struct {
	Link CandidateLink
	Page *RawPage
	Err  error
}

// FetchAll fetches every link under a bounded worker pool and returns one
// result per input, in completion order. Completion order is not
// deterministic; consumers must re-associate results with links by URL, not
// by position. A failed fetch is reported in its result and never cancels or
// blocks sibling fetches. At most concurrency fetches are in flight at any
// instant (default DefaultConcurrency when concurrency <= 0).
func (s *Session) FetchAll(links []CandidateLink, concurrency int) []FetchResult {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	// The results channel is the only synchronization point between
	// workers; no other state is shared.
	sem := make(chan struct{}, concurrency)
	results := make(chan FetchResult, len(links))

	var wg sync.WaitGroup
	for _, link := range links {
		sem <- struct{}{} // Acquire semaphore
		wg.Add(1)
		go func(l CandidateLink) {
			defer wg.Done()
			defer func() { <-sem }() // Release semaphore

			page, err := s.FetchPage(l.URL)
			results <- FetchResult{Link: l, Page: page, Err: err}
		}(link)
	}

	wg.Wait()
	close(results)

	out := make([]FetchResult, 0, len(links))
	for r := range results {
		out = append(out, r)
	}

	return out
}
