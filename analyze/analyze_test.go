package analyze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dfracwatch/report"
)

// TestClassifyIntention_MatchesCategory verifies keyword scoring picks the
// dominant category.
func TestClassifyIntention_MatchesCategory(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"political", "The minister claimed the election results were rigged before the parliament vote.", "political"},
		{"health", "A viral remedy claims to cure the disease without any vaccine or doctor.", "health"},
		{"international", "The video allegedly shows the army at the Pakistan border during the war.", "international"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyIntention(tt.text)
			assert.Equal(t, tt.want, got.Category)
			assert.Greater(t, got.MatchCount, 0)
			assert.Greater(t, got.Confidence, 0.0)
			assert.LessOrEqual(t, got.Confidence, 1.0)
		})
	}
}

// TestClassifyIntention_Unknown verifies no keyword hits yields the unknown
// category with zero confidence.
func TestClassifyIntention_Unknown(t *testing.T) {
	got := ClassifyIntention("a perfectly mundane sentence")

	assert.Equal(t, IntentionUnknown, got.Category)
	assert.Equal(t, 0, got.MatchCount)
	assert.Equal(t, 0.0, got.Confidence)
}

// TestAnalyzeSentiment_Labels verifies the lexicon polarity thresholds.
func TestAnalyzeSentiment_Labels(t *testing.T) {
	negative := AnalyzeSentiment("The fake and doctored video is a baseless hoax.")
	assert.Equal(t, "negative", negative.Label)
	assert.Less(t, negative.Polarity, 0.0)

	positive := AnalyzeSentiment("The document is genuine, verified and authentic.")
	assert.Equal(t, "positive", positive.Label)
	assert.Greater(t, positive.Polarity, 0.0)

	neutral := AnalyzeSentiment("A sentence with no loaded words at all.")
	assert.Equal(t, "neutral", neutral.Label)
	assert.Equal(t, 0.0, neutral.Polarity)
}

// TestCategorizeContent_Triggers verifies content-type tagging and the
// general fallback.
func TestCategorizeContent_Triggers(t *testing.T) {
	got := CategorizeContent("An old video clip was shared as a recent deepfake.")
	assert.Contains(t, got, "video_misinformation")
	assert.Contains(t, got, "out_of_context")
	assert.Contains(t, got, "ai_generated")

	assert.Equal(t, []string{"general_misinformation"},
		CategorizeContent("Nothing matches this text."))
}

// TestExtractKeywords_FrequencyOrder verifies counting, stopword removal,
// and the topN cap.
func TestExtractKeywords_FrequencyOrder(t *testing.T) {
	text := "bridge bridge bridge collapse collapse rumor with with this that"

	got := ExtractKeywords(text, 2)

	assert.Equal(t, []string{"bridge", "collapse"}, got)
}

// TestExtractKeywords_ExcludesShortAndStopwords verifies the length floor
// and stoplist.
func TestExtractKeywords_ExcludesShortAndStopwords(t *testing.T) {
	got := ExtractKeywords("the cat sat with this that about which", 10)

	assert.Empty(t, got)
}

// TestAnalyze_WrapsReportUnchanged verifies analysis decorates without
// mutating the report.
func TestAnalyze_WrapsReportUnchanged(t *testing.T) {
	r := report.ArticleReport{
		Title:            "Fact Check: viral video of election rally is fake",
		Claim:            "the minister addressed a rally of millions before the vote",
		FactCheckDetails: "the footage is doctored and the rally is from another campaign",
		Verdict:          report.VerdictFake,
		Language:         report.LanguageEnglish,
	}

	a := Analyze(r)

	assert.Equal(t, r, a.Report)
	assert.Equal(t, "political", a.Intention.Category)
	assert.Equal(t, "negative", a.Sentiment.Label)
	assert.NotEmpty(t, a.Categories)
	assert.NotEmpty(t, a.Keywords)
}

// TestSummarize_Counts verifies aggregation across a batch.
func TestSummarize_Counts(t *testing.T) {
	analyses := []Analysis{
		{
			Report: report.ArticleReport{
				Verdict:            report.VerdictFake,
				Language:           report.LanguageEnglish,
				PlatformsMentioned: []report.Platform{report.PlatformFacebook, report.PlatformX},
			},
			Intention: Intention{Category: "political"},
			Sentiment: Sentiment{Label: "negative"},
		},
		{
			Report: report.ArticleReport{
				Verdict:            report.VerdictFake,
				Language:           report.LanguageHindi,
				PlatformsMentioned: []report.Platform{report.PlatformFacebook},
			},
			Intention: Intention{Category: "health"},
			Sentiment: Sentiment{Label: "negative"},
		},
		{
			Report: report.ArticleReport{
				Verdict:  report.VerdictMisleading,
				Language: report.LanguageEnglish,
			},
			Intention: Intention{Category: "political"},
			Sentiment: Sentiment{Label: "neutral"},
		},
	}

	s := Summarize(analyses)

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.ByVerdict[report.VerdictFake])
	assert.Equal(t, 1, s.ByVerdict[report.VerdictMisleading])
	assert.Equal(t, 2, s.ByPlatform[report.PlatformFacebook])
	assert.Equal(t, 1, s.ByPlatform[report.PlatformX])
	assert.Equal(t, 2, s.ByLanguage[report.LanguageEnglish])
	assert.Equal(t, 2, s.ByIntention["political"])
	assert.Equal(t, 2, s.BySentiment["negative"])
}

// TestSummary_StringStableOrder verifies rendering sorts rows by count then
// name.
func TestSummary_StringStableOrder(t *testing.T) {
	s := Summary{
		Total: 3,
		ByVerdict: map[report.Verdict]int{
			report.VerdictFake:       2,
			report.VerdictMisleading: 1,
		},
	}

	out := s.String()

	require.Contains(t, out, "Total reports: 3")
	fakeIdx := strings.Index(out, "Fake")
	misleadingIdx := strings.Index(out, "Misleading")
	assert.Less(t, fakeIdx, misleadingIdx, "higher counts render first")
}
