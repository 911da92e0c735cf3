package crawl

import (
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// CandidateLink is one article URL discovered on a listing page, along with
// the metadata the listing carries for it.
type CandidateLink struct {
	URL string
	// DiscoveredDate is parsed from the /YYYY/MM/DD/ segment of the URL
	// path; article detail pages carry no reliable date of their own.
	DiscoveredDate time.Time
	// TitleHint is the anchor text from the listing, "Unknown" when empty.
	TitleHint string
}

// datePathPattern matches the /YYYY/MM/DD/ segment that distinguishes
// article URLs from navigation and category links.
var datePathPattern = regexp.MustCompile(`/(\d{4})/(\d{2})/(\d{2})/`)

// Discover paginates the listing site and returns candidate article links no
// older than maxAge, deduplicated by normalized URL within this session.
//
// Pagination stops at maxPages, on a 404 (end of the listing), or when a
// page beyond the first yields zero newly-accepted links. The last case is a
// heuristic: the listing is assumed chronologically ordered, so an empty
// page signals we have crawled past the recency cutoff. A transient fetch
// error on one listing page is logged and treated as "no links found" but
// does not trigger the heuristic or abort the crawl.
func (s *Session) Discover(maxAge time.Duration, maxPages int) []CandidateLink {
	cutoff := time.Now().Add(-maxAge)
	var links []CandidateLink

	log.Printf("INFO: Discovering articles since %s", cutoff.Format("2006-01-02"))

	for page := 1; page <= maxPages; page++ {
		pageURL := s.listingURL(page)

		doc, status, err := s.fetchListing(pageURL)
		if status == http.StatusNotFound {
			log.Printf("INFO: Reached end of listing at page %d", page)
			break
		}
		if err != nil {
			log.Printf("WARN: Failed to fetch listing page %d (%s): %v", page, pageURL, err)
			continue
		}

		accepted := 0
		for _, anchor := range articleAnchors(doc) {
			normalized := s.resolve(anchor.href)
			if normalized == "" || s.markSeen(normalized) {
				continue
			}

			date, ok := dateFromPath(normalized)
			if !ok {
				// Not an article link (navigation/category).
				continue
			}

			if date.Before(cutoff) {
				continue
			}

			title := strings.TrimSpace(anchor.text)
			if title == "" {
				title = "Unknown"
			}

			links = append(links, CandidateLink{
				URL:            normalized,
				DiscoveredDate: date,
				TitleHint:      title,
			})
			accepted++
		}

		log.Printf("INFO: Found %d relevant articles on page %d", accepted, page)

		if page > 1 && accepted == 0 {
			log.Printf("INFO: No recent articles on page %d, stopping pagination", page)
			break
		}
	}

	return links
}

// listingURL builds the URL for the given 1-based listing page.
func (s *Session) listingURL(page int) string {
	if page == 1 {
		return s.base.String()
	}
	base := strings.TrimSuffix(s.base.String(), "/")
	return fmt.Sprintf("%s/page/%d/", base, page)
}

// fetchListing fetches and parses one listing page. The status code is
// returned even on error so callers can distinguish the 404 pagination-end
// signal from transient failures.
func (s *Session) fetchListing(pageURL string) (*goquery.Document, int, error) {
	resp, err := s.get(pageURL)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, resp.StatusCode, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to parse HTML: %w", err)
	}

	return doc, resp.StatusCode, nil
}

// anchor is a raw href/text pair from a listing page.
type anchor struct {
	href string
	text string
}

// articleAnchors collects anchors inside heading elements plus any anchor
// whose path carries a year-scoped article date segment. Overlap between the
// two selections is handled by the session seen-set.
func articleAnchors(doc *goquery.Document) []anchor {
	var anchors []anchor

	doc.Find("h3 a").Each(func(_ int, sel *goquery.Selection) {
		if href, ok := sel.Attr("href"); ok {
			anchors = append(anchors, anchor{href: href, text: sel.Text()})
		}
	})

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if datePathPattern.MatchString(href) {
			anchors = append(anchors, anchor{href: href, text: sel.Text()})
		}
	})

	return anchors
}

// dateFromPath extracts the embedded /YYYY/MM/DD/ date from an article URL.
func dateFromPath(articleURL string) (time.Time, bool) {
	m := datePathPattern.FindStringSubmatch(articleURL)
	if m == nil {
		return time.Time{}, false
	}

	date, err := time.Parse("2006/01/02", m[1]+"/"+m[2]+"/"+m[3])
	if err != nil {
		return time.Time{}, false
	}

	return date, true
}
