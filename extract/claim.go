package extract

import (
	"regexp"
	"strings"

	"dfracwatch/report"
)

var (
	// factCheckHeader matches the "Fact Check" section header that usually
	// separates the intro (claim) from the investigation. It must appear
	// alone on its own line; only the first occurrence splits.
	factCheckHeader = regexp.MustCompile(`(?i)\nFact Check[ \t]*\n`)

	// claimLeadIn finds a claim/allegation/caption-style lead-in followed
	// eventually by "that", capturing up to the next blank line or the Fact
	// Check header.
	claimLeadIn = regexp.MustCompile(`(?is)(?:claim|allegation|caption|text reads).*?that\s+(.*?)(?:\n\n|\nFact Check|$)`)

	// conclusionCut marks where the investigation narrative ends.
	conclusionCut = regexp.MustCompile(`(?i)\nConclusion`)

	// investigationLeadIn is the fallback when no Fact Check header exists.
	investigationLeadIn = regexp.MustCompile(`(?is)(?:investigation|found that|revealed that)(.*?)(?:\nConclusion|$)`)
)

// minClaimParagraphLen filters out byline/date/meta lines when falling back
// to paragraph selection.
const minClaimParagraphLen = 50

// ClaimAndFactCheck extracts the misinformation claim and the investigation
// narrative from an article body. Each field falls back through an ordered
// cascade and lands on its sentinel value when nothing matches.
func ClaimAndFactCheck(body string) (claim, factCheck string) {
	content := strings.ReplaceAll(body, "\r\n", "\n")

	intro := content
	investigation := ""
	hasFactCheckSection := false
	if loc := factCheckHeader.FindStringIndex(content); loc != nil {
		intro = content[:loc[0]]
		investigation = content[loc[1]:]
		hasFactCheckSection = true
	}

	claim = report.ClaimNotExtracted
	if m := claimLeadIn.FindStringSubmatch(intro); m != nil {
		claim = strings.TrimSpace(m[1])
	} else if paragraphs := substantialParagraphs(intro); len(paragraphs) > 0 {
		// The first substantial paragraph is frequently a byline or date
		// line; prefer the second when there is one.
		if len(paragraphs) > 1 {
			claim = paragraphs[1]
		} else {
			claim = paragraphs[0]
		}
	}

	factCheck = report.FactCheckNotFound
	if hasFactCheckSection {
		section := investigation
		if loc := conclusionCut.FindStringIndex(section); loc != nil {
			section = section[:loc[0]]
		}
		factCheck = strings.TrimSpace(section)
	} else if m := investigationLeadIn.FindStringSubmatch(content); m != nil {
		factCheck = strings.TrimSpace(m[1])
	}

	return claim, factCheck
}

// substantialParagraphs returns the trimmed lines of text longer than
// minClaimParagraphLen.
func substantialParagraphs(text string) []string {
	var paragraphs []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) > minClaimParagraphLen {
			paragraphs = append(paragraphs, line)
		}
	}
	return paragraphs
}
