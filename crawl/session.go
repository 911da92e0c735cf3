// Package crawl discovers and fetches fact-check article pages. A Session
// owns the HTTP client configuration and the per-run seen-URL set; nothing
// in this package keeps process-wide state.
package crawl

import (
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Defaults chosen to bound load on the source server, not for throughput.
const (
	// DefaultUserAgent is a browser-like User-Agent; the source site serves
	// reduced markup to unknown agents.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	// DefaultTimeout turns a hung request into a reported failure for that
	// one item.
	DefaultTimeout = 10 * time.Second

	// DefaultConcurrency is the fetch worker pool size.
	DefaultConcurrency = 10
)

// Config holds crawl session settings.
type Config struct {
	// BaseURL is the root of the listing site, e.g. "https://dfrac.org/en/".
	BaseURL string
	// UserAgent overrides DefaultUserAgent when non-empty.
	UserAgent string
	// Timeout overrides DefaultTimeout when positive.
	Timeout time.Duration
}

// Session is a single crawl run's state: base URL, HTTP client, and the
// seen-URL set used for deduplication. The seen set is mutated only by the
// discovery loop; it is discarded with the session.
type Session struct {
	base      *url.URL
	client    *http.Client
	userAgent string
	seen      map[string]bool
}

// NewSession validates the base URL and creates a crawl session. A malformed
// base URL is a configuration error and fails immediately, before any
// crawling begins.
func NewSession(cfg Config) (*Session, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", cfg.BaseURL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("base URL %q must use http or https scheme", cfg.BaseURL)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("base URL %q has no host", cfg.BaseURL)
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Session{
		base:      base,
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
		seen:      make(map[string]bool),
	}, nil
}

// get performs one GET with the session's User-Agent. Callers own the
// response body.
func (s *Session) get(rawURL string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	return resp, nil
}

// markSeen records a normalized URL in the session's seen set and reports
// whether it was already present.
func (s *Session) markSeen(normalized string) bool {
	if s.seen[normalized] {
		return true
	}
	s.seen[normalized] = true
	return false
}

// resolve normalizes an href against the session base URL, returning the
// absolute form used as the link's identity key. Returns an empty string for
// unusable hrefs.
func (s *Session) resolve(href string) string {
	if href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	abs := s.base.ResolveReference(ref)
	if abs.Scheme != "http" && abs.Scheme != "https" {
		return ""
	}
	abs.Fragment = ""
	return abs.String()
}
