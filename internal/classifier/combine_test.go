package classifier

import (
	"testing"

	"veggiemenu/internal/models"
)

func tr(isVeg *bool, confidence float64, method string) models.TierResult {
	return models.TierResult{IsVegetarian: isVeg, Confidence: confidence, Reasoning: method + " reason", Method: method}
}

func TestCombine_AllAgreeVegetarian(t *testing.T) {
	result := combine(
		tr(models.BoolPtr(true), 0.9, "keyword"),
		tr(models.BoolPtr(true), 0.8, "rag"),
		tr(models.BoolPtr(true), 0.85, "llm"),
	)
	if result.IsVegetarian == nil || !*result.IsVegetarian {
		t.Fatalf("expected vegetarian=true, got %+v", result)
	}
	if result.Confidence <= 0.5 {
		t.Fatalf("expected high confidence, got %v", result.Confidence)
	}
}

func TestCombine_AllAbstain(t *testing.T) {
	abstain := models.TierResult{IsVegetarian: nil, Method: "keyword"}
	result := combine(abstain, abstain, abstain)
	if result.IsVegetarian != nil {
		t.Fatalf("expected abstain, got %+v", result)
	}
	if result.Confidence != 0 {
		t.Fatalf("expected zero confidence, got %v", result.Confidence)
	}
}

func TestCombine_PartialAbstain(t *testing.T) {
	abstain := models.TierResult{IsVegetarian: nil, Method: "keyword"}
	result := combine(
		abstain,
		tr(models.BoolPtr(false), 0.7, "rag"),
		tr(models.BoolPtr(false), 0.6, "llm"),
	)
	if result.IsVegetarian == nil || *result.IsVegetarian {
		t.Fatalf("expected vegetarian=false, got %+v", result)
	}
}

func TestCombine_ConflictingOpinionsLowConfidence(t *testing.T) {
	result := combine(
		tr(models.BoolPtr(true), 0.5, "keyword"),
		tr(models.BoolPtr(false), 0.5, "rag"),
		models.TierResult{IsVegetarian: nil, Method: "llm"},
	)
	if result.Confidence > 0.2 {
		t.Fatalf("expected low confidence for a near tie, got %v", result.Confidence)
	}
}

func TestClamp01(t *testing.T) {
	if clamp01(-1) != 0 {
		t.Fatalf("expected clamp to 0")
	}
	if clamp01(2) != 1 {
		t.Fatalf("expected clamp to 1")
	}
	if clamp01(0.5) != 0.5 {
		t.Fatalf("expected passthrough")
	}
}
