package vectorstore

import "testing"

func TestDocumentText_CombinesNameAndDescription(t *testing.T) {
	got := documentText(map[string]interface{}{"name": "tofu", "description": "Soybean curd, plant-based protein source"})
	want := "tofu: Soybean curd, plant-based protein source"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestDocumentText_FallsBackToNameWhenDescriptionMissing(t *testing.T) {
	got := documentText(map[string]interface{}{"name": "tofu"})
	if got != "tofu" {
		t.Fatalf("expected bare name when description is absent, got %q", got)
	}
}
