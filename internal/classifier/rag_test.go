package classifier

import (
	"testing"

	"veggiemenu/internal/models"
)

func hit(relevance float64, isVeg bool, name string) models.RAGHit {
	return models.RAGHit{
		ID:        name,
		Document:  name,
		Relevance: relevance,
		Metadata:  map[string]interface{}{"is_vegetarian": isVeg, "name": name},
	}
}

func TestAnalyzeRAGEvidence_NoHits(t *testing.T) {
	result := analyzeRAGEvidence(nil, 0.3)
	if result.IsVegetarian != nil {
		t.Fatalf("expected abstain, got %+v", result)
	}
}

func TestAnalyzeRAGEvidence_DecisiveVegetarian(t *testing.T) {
	hits := []models.RAGHit{
		hit(0.9, true, "Veggie Chili"),
		hit(0.8, true, "Bean Burger"),
		hit(0.2, false, "Beef Stew"),
	}
	result := analyzeRAGEvidence(hits, 0.3)
	if result.IsVegetarian == nil || !*result.IsVegetarian {
		t.Fatalf("expected vegetarian=true, got %+v", result)
	}
	if result.Confidence > ragConfidenceCap {
		t.Fatalf("expected confidence capped at %v, got %v", ragConfidenceCap, result.Confidence)
	}
}

func TestAnalyzeRAGEvidence_DecisiveNonVegetarian(t *testing.T) {
	hits := []models.RAGHit{
		hit(0.9, false, "Beef Stew"),
		hit(0.85, false, "Pork Chop"),
	}
	result := analyzeRAGEvidence(hits, 0.3)
	if result.IsVegetarian == nil || *result.IsVegetarian {
		t.Fatalf("expected vegetarian=false, got %+v", result)
	}
}

func TestAnalyzeRAGEvidence_BelowRelevanceFloorIgnored(t *testing.T) {
	hits := []models.RAGHit{
		hit(0.1, true, "Veggie Chili"),
		hit(0.15, false, "Beef Stew"),
	}
	result := analyzeRAGEvidence(hits, 0.3)
	if result.IsVegetarian != nil {
		t.Fatalf("expected inconclusive, got %+v", result)
	}
}

func TestAnalyzeRAGEvidence_Inconclusive(t *testing.T) {
	hits := []models.RAGHit{
		hit(0.4, true, "Veggie Chili"),
		hit(0.4, false, "Beef Stew"),
	}
	result := analyzeRAGEvidence(hits, 0.3)
	if result.IsVegetarian != nil {
		t.Fatalf("expected inconclusive, got %+v", result)
	}
	if result.Confidence != 0.3 {
		t.Fatalf("expected 0.3 confidence, got %v", result.Confidence)
	}
}
