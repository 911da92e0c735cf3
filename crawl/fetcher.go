package crawl

import (
	"errors"
	"fmt"
	"io"
)

// ErrUnexpectedStatus indicates a non-2xx response to an article fetch.
var ErrUnexpectedStatus = errors.New("unexpected status code")

// RawPage holds the raw bytes of one fetched article page. Pages are
// transient: they live only between fetch and extraction.
type RawPage struct {
	URL  string
	Body []byte
}

// FetchPage performs a single GET for an article page. Any 2xx response is a
// success; there are no retries. Timeouts and connection errors surface as
// the returned error.
func (s *Session) FetchPage(rawURL string) (*RawPage, error) {
	resp, err := s.get(rawURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &RawPage{URL: rawURL, Body: body}, nil
}
