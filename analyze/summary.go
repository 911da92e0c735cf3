package analyze

import (
	"fmt"
	"sort"
	"strings"

	"dfracwatch/report"
)

// Summary aggregates counts over a batch of analyzed reports. It backs the
// post-run accounting shown to the operator.
type Summary struct {
	Total       int                     `json:"total"`
	ByVerdict   map[report.Verdict]int  `json:"by_verdict"`
	ByPlatform  map[report.Platform]int `json:"by_platform"`
	ByLanguage  map[report.Language]int `json:"by_language"`
	ByIntention map[string]int          `json:"by_intention"`
	BySentiment map[string]int          `json:"by_sentiment"`
}

// Summarize counts verdicts, platforms, languages, intentions, and
// sentiments across a batch of analyses.
func Summarize(analyses []Analysis) Summary {
	s := Summary{
		Total:       len(analyses),
		ByVerdict:   make(map[report.Verdict]int),
		ByPlatform:  make(map[report.Platform]int),
		ByLanguage:  make(map[report.Language]int),
		ByIntention: make(map[string]int),
		BySentiment: make(map[string]int),
	}

	for _, a := range analyses {
		s.ByVerdict[a.Report.Verdict]++
		s.ByLanguage[a.Report.Language]++
		s.ByIntention[a.Intention.Category]++
		s.BySentiment[a.Sentiment.Label]++
		for _, p := range a.Report.PlatformsMentioned {
			s.ByPlatform[p]++
		}
	}

	return s
}

// String renders the summary as the multi-section breakdown printed after
// each run. Rows sort by count descending, then name, so output is stable.
func (s Summary) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Total reports: %d\n", s.Total)
	writeSection(&b, "By verdict", verdictRows(s.ByVerdict))
	writeSection(&b, "By platform", platformRows(s.ByPlatform))
	writeSection(&b, "By language", languageRows(s.ByLanguage))
	writeSection(&b, "By intention", stringRows(s.ByIntention))
	writeSection(&b, "By sentiment", stringRows(s.BySentiment))

	return b.String()
}

type row struct {
	name  string
	count int
}

func writeSection(b *strings.Builder, title string, rows []row) {
	if len(rows) == 0 {
		return
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count > rows[j].count
		}
		return rows[i].name < rows[j].name
	})
	fmt.Fprintf(b, "\n%s:\n", title)
	for _, r := range rows {
		fmt.Fprintf(b, "  %-15s %3d\n", r.name, r.count)
	}
}

func verdictRows(m map[report.Verdict]int) []row {
	rows := make([]row, 0, len(m))
	for k, v := range m {
		rows = append(rows, row{string(k), v})
	}
	return rows
}

func platformRows(m map[report.Platform]int) []row {
	rows := make([]row, 0, len(m))
	for k, v := range m {
		rows = append(rows, row{string(k), v})
	}
	return rows
}

func languageRows(m map[report.Language]int) []row {
	rows := make([]row, 0, len(m))
	for k, v := range m {
		rows = append(rows, row{string(k), v})
	}
	return rows
}

func stringRows(m map[string]int) []row {
	rows := make([]row, 0, len(m))
	for k, v := range m {
		rows = append(rows, row{k, v})
	}
	return rows
}
