package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"dfracwatch/report"
)

// TestVerdict_ExplicitLabels verifies each explicit label line maps to the
// enum.
func TestVerdict_ExplicitLabels(t *testing.T) {
	tests := []struct {
		name string
		body string
		want report.Verdict
	}{
		{"dfrac analysis", "intro\nDFRAC Analysis: Fake\nmore", report.VerdictFake},
		{"verdict line", "intro\nVerdict: Misleading\nmore", report.VerdictMisleading},
		{"conclusion colon", "intro\nConclusion: False\nmore", report.VerdictFalse},
		{"case insensitive", "intro\nverdict: TRUE\nmore", report.VerdictTrue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Verdict(tt.body))
		})
	}
}

// TestVerdict_LabelPhraseReducesToEnum verifies a multi-word explicit label
// still yields an enum value, never the raw phrase.
func TestVerdict_LabelPhraseReducesToEnum(t *testing.T) {
	v := Verdict("DFRAC Analysis: Misleading content\n")

	assert.Equal(t, report.VerdictMisleading, v)
	assert.True(t, v.IsValid())
}

// TestVerdict_StoplistSkipsFillerCaptures verifies "Conclusion: The ..."
// style lines don't produce a bogus verdict.
func TestVerdict_StoplistSkipsFillerCaptures(t *testing.T) {
	body := "Conclusion: The\nviral post has been reviewed and it is fake in nature.\n"

	// The explicit capture is stoplisted; the conclusion-section keyword
	// scan still finds "fake".
	assert.Equal(t, report.VerdictFake, Verdict(body))
}

// TestVerdict_KeywordPriority verifies fake outranks misleading outranks
// false outranks true when several keywords appear.
func TestVerdict_KeywordPriority(t *testing.T) {
	tests := []struct {
		name string
		body string
		want report.Verdict
	}{
		{"fake beats misleading", "Conclusion\nThe post is misleading and the video is fake.", report.VerdictFake},
		{"misleading beats false", "Conclusion\nNot entirely false, but the framing is misleading.", report.VerdictMisleading},
		{"false beats true", "Conclusion\nThe claim is not true, it is false.", report.VerdictFalse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Verdict(tt.body))
		})
	}
}

// TestVerdict_ConclusionSectionBounds verifies the conclusion scan stops at
// the share widget.
func TestVerdict_ConclusionSectionBounds(t *testing.T) {
	body := "Conclusion\nThe image is old and unrelated.\nShare this\nfake news tag cloud"

	// "fake" appears only after "Share this", outside the scanned section,
	// and the section itself has no verdict keyword.
	assert.Equal(t, report.VerdictUnknown, Verdict(body))
}

// TestVerdict_CategoryTags verifies listing-style tags near the top of the
// body are used as a last resort.
func TestVerdict_CategoryTags(t *testing.T) {
	assert.Equal(t, report.VerdictMisleading, Verdict("Misleading-EN\nsome article text"))
	assert.Equal(t, report.VerdictFake, Verdict("Fake-EN\nsome article text"))
}

// TestVerdict_TagWindowBound verifies tags beyond the scan window are
// ignored.
func TestVerdict_TagWindowBound(t *testing.T) {
	padding := make([]byte, 600)
	for i := range padding {
		padding[i] = 'z'
	}
	body := string(padding) + "\nfake-en"

	assert.Equal(t, report.VerdictUnknown, Verdict(body))
}

// TestVerdict_ExplicitLabelAfterConclusion verifies a trailing analysis
// label wins even when it sits inside the conclusion text, and the
// fact-check narrative still comes from the section before the Conclusion.
func TestVerdict_ExplicitLabelAfterConclusion(t *testing.T) {
	body := "A video of a rally is circulating online with a provocative caption.\n" +
		"Fact Check\n" +
		"Upon investigation, we found the claim about the rally to be fake.\n" +
		"Conclusion\n" +
		"The viral video is recycled footage. DFRAC Analysis: Fake"

	assert.Equal(t, report.VerdictFake, Verdict(body))

	_, factCheck := ClaimAndFactCheck(body)
	assert.True(t, strings.HasPrefix(factCheck, "Upon investigation"), "got %q", factCheck)
}

// TestVerdict_Unknown verifies the explicit unknown state on a body with no
// signal.
func TestVerdict_Unknown(t *testing.T) {
	v := Verdict("An article about something else entirely.")

	assert.Equal(t, report.VerdictUnknown, v)
	assert.True(t, v.IsValid())
}
