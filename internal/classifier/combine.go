package classifier

import (
	"strings"

	"veggiemenu/internal/models"
)

// Tier weights for the combination step.
const (
	weightKeyword = 0.4
	weightRAG     = 0.3
	weightLLM     = 0.3
)

type weighted struct {
	result models.TierResult
	weight float64
}

// combine blends the three tiers' opinions into one final verdict. Tiers
// that abstain (IsVegetarian == nil) are dropped before weighting. If every
// tier abstained, the combined result abstains too with zero confidence.
func combine(keywordResult, ragResult, llmResult models.TierResult) models.TierResult {
	candidates := []weighted{
		{keywordResult, weightKeyword},
		{ragResult, weightRAG},
		{llmResult, weightLLM},
	}

	var valid []weighted
	for _, c := range candidates {
		if !c.result.Abstains() {
			valid = append(valid, c)
		}
	}

	if len(valid) == 0 {
		return models.TierResult{
			IsVegetarian: nil,
			Confidence:   0,
			Reasoning:    "Unable to classify",
			Method:       "combined",
		}
	}

	var weightedSum, totalWeight float64
	for _, c := range valid {
		w := c.result.Confidence * c.weight
		totalWeight += w
		if *c.result.IsVegetarian {
			weightedSum += w
		}
	}

	if totalWeight == 0 {
		return valid[0].result
	}

	vegProbability := weightedSum / totalWeight
	isVeg := vegProbability > 0.5
	confidence := clamp01(abs(vegProbability-0.5) * 2)

	var reasons []string
	for _, c := range valid {
		if c.result.Reasoning != "" {
			reasons = append(reasons, c.result.Reasoning)
		}
	}
	if len(reasons) > 2 {
		reasons = reasons[:2]
	}

	return models.TierResult{
		IsVegetarian: models.BoolPtr(isVeg),
		Confidence:   round3(confidence),
		Reasoning:    strings.Join(reasons, "; "),
		Method:       "combined",
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func round3(v float64) float64 {
	return float64(int(v*1000+0.5)) / 1000
}

// clamp01 enforces that a confidence value always lands in [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
