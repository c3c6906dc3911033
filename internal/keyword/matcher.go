// Package keyword implements the first classification tier: fast,
// high-precision matching of a dish name against marker and keyword lists
// from the knowledge base.
package keyword

import (
	"fmt"
	"regexp"
	"strings"

	"veggiemenu/internal/models"
)

// decisiveConfidence is returned whenever a marker or keyword matches;
// the classifier engine treats anything at or above 0.9 as final.
const decisiveConfidence = 0.95

// Matcher precompiles word-boundary regexes for every keyword at
// construction time so repeated classification calls don't pay re-compile
// cost per dish.
type Matcher struct {
	markers  []string
	positive []*keywordPattern
	negative []*keywordPattern
}

type keywordPattern struct {
	word string
	re   *regexp.Regexp
}

// New builds a Matcher from the knowledge base's keyword sets. Sets are
// expected to already be lower-cased (internal/kb.Load does this).
func New(sets models.KeywordSets) *Matcher {
	return &Matcher{
		markers:  append([]string(nil), sets.Markers...),
		positive: compile(sets.Positive),
		negative: compile(sets.Negative),
	}
}

func compile(words []string) []*keywordPattern {
	out := make([]*keywordPattern, 0, len(words))
	for _, w := range words {
		out = append(out, &keywordPattern{
			word: w,
			re:   regexp.MustCompile(`\b` + regexp.QuoteMeta(w) + `\b`),
		})
	}
	return out
}

// Classify scans a dish name for markers first (substring match), then
// positive keywords, then negative keywords (both word-boundary matches),
// returning the first hit. No match abstains with IsVegetarian == nil.
func (m *Matcher) Classify(dishName string) models.TierResult {
	lower := strings.ToLower(dishName)

	for _, marker := range m.markers {
		if strings.Contains(lower, marker) {
			return models.TierResult{
				IsVegetarian: models.BoolPtr(true),
				Confidence:   decisiveConfidence,
				Reasoning:    fmt.Sprintf("Contains vegetarian marker: '%s'", marker),
				Method:       "keyword",
			}
		}
	}

	for _, kw := range m.positive {
		if kw.re.MatchString(lower) {
			return models.TierResult{
				IsVegetarian: models.BoolPtr(true),
				Confidence:   decisiveConfidence,
				Reasoning:    fmt.Sprintf("Contains vegetarian indicator: '%s'", kw.word),
				Method:       "keyword",
			}
		}
	}

	for _, kw := range m.negative {
		if kw.re.MatchString(lower) {
			return models.TierResult{
				IsVegetarian: models.BoolPtr(false),
				Confidence:   decisiveConfidence,
				Reasoning:    fmt.Sprintf("Contains non-vegetarian ingredient: '%s'", kw.word),
				Method:       "keyword",
			}
		}
	}

	return models.TierResult{
		IsVegetarian: nil,
		Confidence:   0.0,
		Reasoning:    "No keyword match",
		Method:       "keyword",
	}
}
