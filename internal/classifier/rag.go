package classifier

import (
	"strings"

	"veggiemenu/internal/models"
)

// ragDecisiveFloor is the minimum accumulated score one side needs before
// RAG evidence is treated as decisive rather than inconclusive.
const ragDecisiveFloor = 0.5

// ragConfidenceCap bounds the confidence RAG evidence alone can produce. The
// engine consults the LLM tier only when the RAG confidence is below its
// ConfidenceThreshold.
const ragConfidenceCap = 0.85

// analyzeRAGEvidence scores retrieved evidence by accumulating relevance on
// whichever side (vegetarian/non-vegetarian) each hit supports. Hits below
// the relevance floor are ignored as noise.
func analyzeRAGEvidence(hits []models.RAGHit, relevanceFloor float64) models.TierResult {
	if len(hits) == 0 {
		return models.TierResult{
			IsVegetarian: nil,
			Confidence:   0,
			Reasoning:    "No relevant evidence found",
			Method:       "rag",
		}
	}

	var vegScore, nonVegScore float64
	var reasons []string

	for _, hit := range hits {
		if hit.Relevance < relevanceFloor {
			continue
		}
		isVeg, ok := hit.Metadata["is_vegetarian"].(bool)
		if !ok {
			continue
		}
		name, _ := hit.Metadata["name"].(string)
		if name == "" {
			name = "item"
		}
		if isVeg {
			vegScore += hit.Relevance
			reasons = append(reasons, name+" (vegetarian)")
		} else {
			nonVegScore += hit.Relevance
			reasons = append(reasons, name+" (non-vegetarian)")
		}
	}

	switch {
	case vegScore > nonVegScore && vegScore > ragDecisiveFloor:
		confidence := min(ragConfidenceCap, vegScore/(vegScore+nonVegScore+0.1))
		return models.TierResult{
			IsVegetarian: models.BoolPtr(true),
			Confidence:   confidence,
			Reasoning:    "Similar to: " + joinTop(reasons, 3),
			Method:       "rag",
		}
	case nonVegScore > vegScore && nonVegScore > ragDecisiveFloor:
		confidence := min(ragConfidenceCap, nonVegScore/(vegScore+nonVegScore+0.1))
		return models.TierResult{
			IsVegetarian: models.BoolPtr(false),
			Confidence:   confidence,
			Reasoning:    "Similar to: " + joinTop(reasons, 3),
			Method:       "rag",
		}
	default:
		return models.TierResult{
			IsVegetarian: nil,
			Confidence:   0.3,
			Reasoning:    "Inconclusive RAG evidence",
			Method:       "rag",
		}
	}
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func joinTop(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}
