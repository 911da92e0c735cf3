// Package extract recovers structured fact-check fields from free-form
// article pages. The source site has no machine-readable schema, so every
// sub-extraction is a prioritized cascade of heuristics: the fallback order
// is deterministic and a missed match is a sentinel value, never an error.
package extract

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"dfracwatch/report"
)

// blockSelector lists the block-level elements whose text forms one line
// each of the extracted body. The line structure matters: several downstream
// patterns key on headers appearing alone on their own line.
const blockSelector = "p, h1, h2, h3, h4, h5, h6, li, blockquote, figcaption, pre, td"

// FromHTML runs all sub-extractions over one article page and produces an
// ArticleReport. The published date comes from the listing, not the page.
// Only an unparseable input is an error; a page where nothing matches still
// yields a report carrying the sentinel values.
func FromHTML(pageURL string, published time.Time, r io.Reader) (report.ArticleReport, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return report.ArticleReport{}, fmt.Errorf("failed to parse HTML: %w", err)
	}

	// Title comes from the page's primary heading, whitespace-normalized.
	title := strings.Join(strings.Fields(doc.Find("h1").First().Text()), " ")
	if title == "" {
		title = report.TitleNotExtracted
	}

	body := bodyText(doc)
	claim, factCheck := ClaimAndFactCheck(body)

	return report.ArticleReport{
		ID:                 uuid.New(),
		URL:                pageURL,
		Title:              title,
		Claim:              claim,
		FactCheckDetails:   factCheck,
		Verdict:            Verdict(body),
		PlatformsMentioned: Platforms(body),
		Language:           LanguageFromURL(pageURL),
		DatePublished:      published,
		ScrapedAt:          time.Now(),
	}, nil
}

// bodyText pulls plain text from the first matching content container,
// preserving block-level separation as newlines.
func bodyText(doc *goquery.Document) string {
	container := doc.Find("article").First()
	if container.Length() == 0 {
		container = doc.Find(".entry-content").First()
	}
	if container.Length() == 0 {
		return ""
	}

	var lines []string
	container.Find(blockSelector).Each(func(_ int, block *goquery.Selection) {
		// Skip wrappers whose text would duplicate their nested blocks.
		if block.Find(blockSelector).Length() > 0 {
			return
		}
		if text := strings.TrimSpace(block.Text()); text != "" {
			lines = append(lines, text)
		}
	})

	if len(lines) == 0 {
		return strings.TrimSpace(container.Text())
	}

	return strings.Join(lines, "\n")
}
