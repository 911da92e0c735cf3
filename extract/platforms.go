package extract

import (
	"regexp"
	"strings"

	"dfracwatch/report"
)

// platformPatterns pairs each platform with the pattern that detects a
// mention in lowercased body text. Listed in the fixed vocabulary order;
// results are always reported in this order, not discovery order. Platform X
// has no pattern here because its rule needs the look-around handled by
// mentionsPlatformX.
var platformPatterns = []struct {
	platform report.Platform
	pattern  *regexp.Regexp
}{
	{report.PlatformFacebook, regexp.MustCompile(`facebook|fb`)},
	{report.PlatformTwitter, regexp.MustCompile(`twitter|tweet`)},
	{report.PlatformX, nil},
	{report.PlatformWhatsApp, regexp.MustCompile(`whatsapp`)},
	{report.PlatformInstagram, regexp.MustCompile(`instagram`)},
	{report.PlatformYouTube, regexp.MustCompile(`youtube`)},
	{report.PlatformTikTok, regexp.MustCompile(`tiktok`)},
	{report.PlatformTelegram, regexp.MustCompile(`telegram`)},
	{report.PlatformReddit, regexp.MustCompile(`reddit`)},
}

var (
	xWord      = regexp.MustCompile(`\bx\b`)
	xRaySuffix = regexp.MustCompile(`^[\s-]*ray`)
)

// Platforms scans an article body for mentions of the fixed platform
// vocabulary. The returned slice may be empty but never contains values
// outside the vocabulary, and follows the enumeration order.
func Platforms(body string) []report.Platform {
	lower := strings.ToLower(body)

	found := []report.Platform{}
	for _, p := range platformPatterns {
		if p.platform == report.PlatformX {
			if mentionsPlatformX(lower) {
				found = append(found, p.platform)
			}
			continue
		}
		if p.pattern.MatchString(lower) {
			found = append(found, p.platform)
		}
	}

	return found
}

// mentionsPlatformX reports whether lowercased text mentions the platform X
// as a standalone word. An "x" followed by "ray" (with optional spacing or
// hyphen) is radiography, not the platform.
func mentionsPlatformX(lower string) bool {
	for _, loc := range xWord.FindAllStringIndex(lower, -1) {
		if !xRaySuffix.MatchString(lower[loc[1]:]) {
			return true
		}
	}
	return false
}

// LanguageFromURL derives the article language from the URL path alone.
// This is a deliberate cheap proxy, not a language detector.
func LanguageFromURL(rawURL string) report.Language {
	if strings.Contains(rawURL, "/en/") {
		return report.LanguageEnglish
	}
	if strings.Contains(rawURL, "/hi/") {
		return report.LanguageHindi
	}
	return report.LanguageUnknown
}
