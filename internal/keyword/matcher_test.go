package keyword

import (
	"testing"

	"veggiemenu/internal/models"
)

func testSets() models.KeywordSets {
	return models.KeywordSets{
		Positive: []string{"vegetarian", "tofu"},
		Markers:  []string{"(v)"},
		Negative: []string{"chicken", "beef"},
	}
}

func TestClassify_Marker(t *testing.T) {
	m := New(testSets())
	res := m.Classify("Garden Salad (v)")
	if res.IsVegetarian == nil || !*res.IsVegetarian {
		t.Fatalf("expected vegetarian=true, got %+v", res)
	}
	if res.Confidence != decisiveConfidence {
		t.Fatalf("expected decisive confidence, got %v", res.Confidence)
	}
}

func TestClassify_PositiveKeyword(t *testing.T) {
	m := New(testSets())
	res := m.Classify("Tofu Stir Fry")
	if res.IsVegetarian == nil || !*res.IsVegetarian {
		t.Fatalf("expected vegetarian=true, got %+v", res)
	}
}

func TestClassify_NegativeKeyword(t *testing.T) {
	m := New(testSets())
	res := m.Classify("Grilled Chicken Breast")
	if res.IsVegetarian == nil || *res.IsVegetarian {
		t.Fatalf("expected vegetarian=false, got %+v", res)
	}
}

func TestClassify_WordBoundary(t *testing.T) {
	// "beefsteak" (a tomato variety) contains "beef" but must not trigger the
	// "beef" negative keyword.
	m := New(testSets())
	res := m.Classify("Beefsteak Tomato Salad")
	if res.IsVegetarian != nil {
		t.Fatalf("expected no keyword opinion, got %+v", res)
	}
}

func TestClassify_NoMatch(t *testing.T) {
	m := New(testSets())
	res := m.Classify("Mystery Bowl")
	if res.IsVegetarian != nil {
		t.Fatalf("expected abstain, got %+v", res)
	}
	if res.Confidence != 0.0 {
		t.Fatalf("expected zero confidence, got %v", res.Confidence)
	}
}
