// Package analyze derives classification features from extracted article
// reports. It consumes reports as immutable values: every function here
// wraps a report with derived fields and never alters the report itself.
package analyze

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"dfracwatch/report"
)

// intentionKeywords drives the keyword-matching intention classifier. Each
// category scores one point per keyword found in the article text.
var intentionKeywords = map[string][]string{
	"political": {
		"election", "vote", "voting", "government", "party", "minister",
		"congress", "bjp", "campaign", "parliament", "mla", "mp",
		"leader", "rally", "protest", "policy", "scheme",
		"democratic", "constitution",
	},
	"religious": {
		"hindu", "muslim", "islam", "christian", "temple", "mosque",
		"church", "religious", "pray", "religion", "sikh",
		"festival", "diwali", "eid", "christmas", "conversion",
		"sacred", "idol", "prophet",
	},
	"health": {
		"vaccine", "medicine", "covid", "cure", "doctor", "hospital",
		"disease", "treatment", "health", "virus", "pandemic",
		"cancer", "heart attack", "side effect",
		"medical", "remedy",
	},
	"commercial": {
		"product", "company", "scam", "fraud", "money", "prize", "lottery",
		"investment", "business", "bank", "financial", "offer",
		"discount", "giveaway", "delivery",
	},
	"communal": {
		"riot", "attack", "community", "violence", "clash", "tension",
		"mob", "assault", "hate", "stone pelting", "slogan",
		"procession", "encroachment",
	},
	"international": {
		"pakistan", "china", "war", "border", "army", "military",
		"foreign", "country", "nation", "kashmir", "israel", "palestine",
		"ukraine", "russia", "gaza", "terrorist",
	},
	"crime": {
		"murder", "rape", "robbery", "theft", "crime", "criminal",
		"police", "arrest", "kidnap", "abuse", "killed",
		"fir", "accused", "victim",
	},
	"entertainment": {
		"bollywood", "actor", "actress", "movie", "film", "celebrity",
		"marriage", "divorce", "dating", "viral video", "song", "dance",
	},
}

// IntentionUnknown is returned when no category keyword matches.
const IntentionUnknown = "unknown"

// Intention is the inferred purpose behind a piece of misinformation.
type Intention struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	MatchCount int     `json:"match_count"`
}

// Sentiment labels the overall tone of the article text.
type Sentiment struct {
	Label    string  `json:"label"` // positive, negative, or neutral
	Polarity float64 `json:"polarity"`
}

// Analysis wraps one immutable ArticleReport with derived classification
// features.
type Analysis struct {
	Report     report.ArticleReport `json:"report"`
	Intention  Intention            `json:"intention"`
	Sentiment  Sentiment            `json:"sentiment"`
	Categories []string             `json:"categories"`
	Keywords   []string             `json:"keywords"`
}

// Analyze derives all classification features for one report.
func Analyze(r report.ArticleReport) Analysis {
	text := r.Title + " " + r.Claim + " " + r.FactCheckDetails

	return Analysis{
		Report:     r,
		Intention:  ClassifyIntention(text),
		Sentiment:  AnalyzeSentiment(text),
		Categories: CategorizeContent(text),
		Keywords:   ExtractKeywords(text, 10),
	}
}

// ClassifyIntention scores every category's keywords against the text and
// returns the best category with a confidence equal to its share of all
// keyword matches.
func ClassifyIntention(text string) Intention {
	lower := strings.ToLower(text)

	best := IntentionUnknown
	bestScore := 0
	total := 0
	for _, category := range intentionCategories() {
		score := 0
		for _, keyword := range intentionKeywords[category] {
			if strings.Contains(lower, keyword) {
				score++
			}
		}
		total += score
		if score > bestScore {
			best = category
			bestScore = score
		}
	}

	if total == 0 {
		return Intention{Category: IntentionUnknown}
	}

	return Intention{
		Category:   best,
		Confidence: round2(float64(bestScore) / float64(total)),
		MatchCount: bestScore,
	}
}

// intentionCategories returns category names in a fixed order so that ties
// resolve deterministically.
func intentionCategories() []string {
	categories := make([]string, 0, len(intentionKeywords))
	for category := range intentionKeywords {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// Small sentiment lexicons; enough to separate alarmist from reassuring
// copy, which is all the downstream scoring consumes.
var (
	positiveWords = []string{
		"true", "genuine", "authentic", "verified", "correct", "accurate",
		"real", "confirmed", "credible", "legitimate",
	}
	negativeWords = []string{
		"fake", "false", "misleading", "fabricated", "doctored", "hoax",
		"fraud", "manipulated", "morphed", "baseless", "debunked",
		"deceptive", "propaganda",
	}
)

// sentimentThreshold separates neutral from polarized text.
const sentimentThreshold = 0.1

// AnalyzeSentiment computes a lexicon polarity in [-1, 1] from the balance
// of positive and negative word hits.
func AnalyzeSentiment(text string) Sentiment {
	lower := strings.ToLower(text)

	positives := 0
	for _, w := range positiveWords {
		positives += strings.Count(lower, w)
	}
	negatives := 0
	for _, w := range negativeWords {
		negatives += strings.Count(lower, w)
	}

	if positives+negatives == 0 {
		return Sentiment{Label: "neutral"}
	}

	polarity := float64(positives-negatives) / float64(positives+negatives)
	label := "neutral"
	if polarity > sentimentThreshold {
		label = "positive"
	} else if polarity < -sentimentThreshold {
		label = "negative"
	}

	return Sentiment{Label: label, Polarity: round2(polarity)}
}

// contentCategories maps misinformation categories to their trigger words.
var contentCategories = []struct {
	name     string
	triggers []string
}{
	{"video_misinformation", []string{"video", "footage", "clip"}},
	{"image_misinformation", []string{"image", "photo", "picture"}},
	{"fabricated_content", []string{"fake", "fabricated", "doctored", "manipulated"}},
	{"out_of_context", []string{"old", "unrelated", "different"}},
	{"ai_generated", []string{"deepfake", "ai-generated", "ai generated"}},
	{"satire", []string{"satire", "parody"}},
}

// CategorizeContent tags the kind of misinformation described by the text.
// Falls back to the general category when nothing specific matches.
func CategorizeContent(text string) []string {
	lower := strings.ToLower(text)

	var categories []string
	for _, c := range contentCategories {
		for _, trigger := range c.triggers {
			if strings.Contains(lower, trigger) {
				categories = append(categories, c.name)
				break
			}
		}
	}

	if len(categories) == 0 {
		return []string{"general_misinformation"}
	}
	return categories
}

var keywordPattern = regexp.MustCompile(`\b[a-zA-Z]{4,}\b`)

// keywordStopwords excludes common function words from keyword extraction.
var keywordStopwords = map[string]bool{
	"this": true, "that": true, "with": true, "from": true, "have": true,
	"been": true, "were": true, "they": true, "their": true, "there": true,
	"these": true, "those": true, "about": true, "would": true, "could": true,
	"should": true, "which": true, "what": true, "when": true,
}

// ExtractKeywords returns the topN most frequent words of four letters or
// more, stopwords excluded. Ties resolve alphabetically so the result is
// deterministic.
func ExtractKeywords(text string, topN int) []string {
	counts := make(map[string]int)
	for _, word := range keywordPattern.FindAllString(strings.ToLower(text), -1) {
		if !keywordStopwords[word] {
			counts[word]++
		}
	}

	words := make([]string, 0, len(counts))
	for word := range counts {
		words = append(words, word)
	}
	sort.Slice(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return words[i] < words[j]
	})

	if len(words) > topN {
		words = words[:topN]
	}
	return words
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
