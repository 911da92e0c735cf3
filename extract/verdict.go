package extract

import (
	"regexp"
	"strings"

	"dfracwatch/report"
)

// explicitVerdictPatterns are the strongest signals, tried in this order.
// Each captures the rest of the labeled line.
var explicitVerdictPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)DFRAC Analysis:\s*([A-Za-z\s]+?)(?:\n|$)`),
	regexp.MustCompile(`(?i)Verdict:\s*([A-Za-z\s]+?)(?:\n|$)`),
	regexp.MustCompile(`(?i)Conclusion:\s*([A-Za-z\s]+?)(?:\n|$)`),
}

// verdictStoplist filters non-answer words that the explicit patterns
// sometimes capture ("Conclusion: The ...").
var verdictStoplist = map[string]bool{
	"the":  true,
	"in":   true,
	"a":    true,
	"this": true,
	"we":   true,
	"upon": true,
	"it":   true,
}

// verdictKeywords in strict priority order: "fake" outranks "misleading"
// because conclusions sometimes mention both ("not entirely false, but the
// framing is misleading") and the stronger claim wins. This ordering must
// not change.
var verdictKeywords = []struct {
	word    string
	verdict report.Verdict
}{
	{"fake", report.VerdictFake},
	{"misleading", report.VerdictMisleading},
	{"false", report.VerdictFalse},
	{"true", report.VerdictTrue},
}

// conclusionSection captures the text between a Conclusion header and the
// trailing share widget, the analysis label, or end of body.
var conclusionSection = regexp.MustCompile(`(?is)Conclusion[:\s]+(.*?)(?:Share this|DFRAC Analysis|$)`)

// verdictTagWindow bounds the scan for listing-style category tags that
// sometimes lead the body text.
const verdictTagWindow = 500

// Verdict extracts the fact-check verdict from an article body. The cascade
// returns on first success: explicit labeled lines, then keywords in the
// Conclusion section, then category tags near the top of the body, then
// VerdictUnknown.
func Verdict(body string) report.Verdict {
	for _, pattern := range explicitVerdictPatterns {
		m := pattern.FindStringSubmatch(body)
		if m == nil {
			continue
		}
		candidate := strings.ToLower(strings.TrimSpace(m[1]))
		if verdictStoplist[candidate] {
			continue
		}
		if v, ok := keywordVerdict(candidate); ok {
			return v
		}
	}

	if m := conclusionSection.FindStringSubmatch(body); m != nil {
		if v, ok := keywordVerdict(strings.ToLower(m[1])); ok {
			return v
		}
	}

	head := body
	if len(head) > verdictTagWindow {
		head = head[:verdictTagWindow]
	}
	head = strings.ToLower(head)
	if strings.Contains(head, "misleading-en") {
		return report.VerdictMisleading
	}
	if strings.Contains(head, "fake-en") {
		return report.VerdictFake
	}

	return report.VerdictUnknown
}

// keywordVerdict maps lowercased text onto the verdict enum using the fixed
// keyword priority. The enum invariant holds even for explicit labels: a
// captured phrase is reduced to the highest-priority keyword it contains.
func keywordVerdict(text string) (report.Verdict, bool) {
	for _, kw := range verdictKeywords {
		if strings.Contains(text, kw.word) {
			return kw.verdict, true
		}
	}
	return report.VerdictUnknown, false
}
