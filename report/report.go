package report

import (
	"time"

	"github.com/google/uuid"
)

// Sentinel values used when a sub-extraction finds no match. Absence of a
// clean match is a normal, frequent outcome on these pages, so it is carried
// in-band rather than as an error.
const (
	ClaimNotExtracted = "Claim not extracted"
	FactCheckNotFound = "Fact check details not found"
	TitleNotExtracted = "Unknown"
)

// Verdict is the fact-checker's categorical judgment on a claim. It is
// always one of the enumerated constants below; VerdictUnknown is the
// explicit "could not determine" state, never an empty string.
type Verdict string

const (
	VerdictFake       Verdict = "Fake"
	VerdictMisleading Verdict = "Misleading"
	VerdictFalse      Verdict = "False"
	VerdictTrue       Verdict = "True"
	VerdictUnknown    Verdict = "Unknown"
)

// Verdicts lists every valid verdict value.
var Verdicts = []Verdict{
	VerdictFake,
	VerdictMisleading,
	VerdictFalse,
	VerdictTrue,
	VerdictUnknown,
}

// IsValid returns true if v is one of the enumerated verdict values.
func (v Verdict) IsValid() bool {
	switch v {
	case VerdictFake, VerdictMisleading, VerdictFalse, VerdictTrue, VerdictUnknown:
		return true
	}
	return false
}

// Platform is a social media platform from the fixed vocabulary.
type Platform string

const (
	PlatformFacebook  Platform = "Facebook"
	PlatformTwitter   Platform = "Twitter"
	PlatformX         Platform = "X"
	PlatformWhatsApp  Platform = "WhatsApp"
	PlatformInstagram Platform = "Instagram"
	PlatformYouTube   Platform = "YouTube"
	PlatformTikTok    Platform = "TikTok"
	PlatformTelegram  Platform = "Telegram"
	PlatformReddit    Platform = "Reddit"
)

// Platforms lists the fixed platform vocabulary in enumeration order.
// Extracted platform sets are always reported in this order.
var Platforms = []Platform{
	PlatformFacebook,
	PlatformTwitter,
	PlatformX,
	PlatformWhatsApp,
	PlatformInstagram,
	PlatformYouTube,
	PlatformTikTok,
	PlatformTelegram,
	PlatformReddit,
}

// Language is the article language, derived from the URL path alone.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageHindi   Language = "hi"
	LanguageUnknown Language = "unknown"
)

// ArticleReport is the durable output of the extraction engine: one
// structured record per successfully fetched fact-check article. Reports are
// never mutated after creation; downstream analysis wraps them with derived
// fields instead of altering them.
type ArticleReport struct {
	ID                 uuid.UUID  `json:"id"`
	URL                string     `json:"url"`
	Title              string     `json:"title"`
	Claim              string     `json:"claim"`
	FactCheckDetails   string     `json:"fact_check_details"`
	Verdict            Verdict    `json:"verdict"`
	PlatformsMentioned []Platform `json:"platforms_mentioned"`
	Language           Language   `json:"language"`
	// DatePublished comes from the listing page, not the article itself.
	DatePublished time.Time `json:"date_published"`
	ScrapedAt     time.Time `json:"scraped_at"`
}
