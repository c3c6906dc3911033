package classifier

import (
	"testing"

	"veggiemenu/internal/models"
)

func TestStep_FormatsMethodAndConfidence(t *testing.T) {
	got := step(models.TierResult{Method: "keyword", Confidence: 0.95})
	if got != "keyword:0.95" {
		t.Fatalf("expected 'keyword:0.95', got %q", got)
	}
}

func TestFallbackResult_RAGAbstained(t *testing.T) {
	rag := models.TierResult{IsVegetarian: nil}
	llmErr := models.TierResult{LLMError: "timeout"}
	result := fallbackResult(rag, llmErr)
	if result.IsVegetarian != nil {
		t.Fatalf("expected abstain, got %+v", result)
	}
	if result.Method != "fallback" {
		t.Fatalf("expected method fallback, got %v", result.Method)
	}
}

func TestFallbackResult_RAGOpinionCarriesOver(t *testing.T) {
	rag := models.TierResult{IsVegetarian: models.BoolPtr(true), Confidence: 0.6, Reasoning: "similar to X"}
	llmErr := models.TierResult{LLMError: "rate limited"}
	result := fallbackResult(rag, llmErr)
	if result.IsVegetarian == nil || !*result.IsVegetarian {
		t.Fatalf("expected vegetarian=true carried over, got %+v", result)
	}
	if result.Confidence != 0.6 {
		t.Fatalf("expected confidence carried over, got %v", result.Confidence)
	}
}

func TestEngine_Finalize_PopulatesIngredientsCategoryAndCurrency(t *testing.T) {
	e := &Engine{cfg: Config{Currency: "USD"}}
	evidence := []models.RAGHit{
		{Document: "tofu: soybean curd", Metadata: map[string]interface{}{"name": "tofu", "type": "ingredient", "category": "protein"}},
		{Document: "margherita pizza", Metadata: map[string]interface{}{"name": "margherita pizza", "type": "dish", "category": "italian"}},
		{Document: "tempeh", Metadata: map[string]interface{}{"name": "tempeh", "type": "ingredient", "category": "protein"}},
	}
	item := e.finalize("Tofu Pizza", models.TierResult{IsVegetarian: models.BoolPtr(true), Confidence: 0.8, Method: "rag"}, evidence, nil)

	if len(item.RelatedIngredients) != 2 || item.RelatedIngredients[0] != "tofu" || item.RelatedIngredients[1] != "tempeh" {
		t.Fatalf("expected ingredient-type hits only, got %+v", item.RelatedIngredients)
	}
	if item.Category != "protein" {
		t.Fatalf("expected category from first hit carrying one, got %q", item.Category)
	}
	if item.Currency != "USD" {
		t.Fatalf("expected currency carried from config, got %q", item.Currency)
	}
}

func TestChunkInts_SplitsIntoConfiguredSizes(t *testing.T) {
	got := chunkInts([]int{0, 1, 2, 3, 4, 5, 6}, 3)
	want := [][]int{{0, 1, 2}, {3, 4, 5}, {6}}
	if len(got) != len(want) {
		t.Fatalf("expected %d batches, got %d (%+v)", len(want), len(got), got)
	}
	for i := range want {
		if len(got[i]) != len(want[i]) {
			t.Fatalf("batch %d: expected %v, got %v", i, want[i], got[i])
		}
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Fatalf("batch %d: expected %v, got %v", i, want[i], got[i])
			}
		}
	}
}

func TestChunkInts_NonPositiveSizeIsOneBatch(t *testing.T) {
	got := chunkInts([]int{0, 1, 2}, 0)
	if len(got) != 1 || len(got[0]) != 3 {
		t.Fatalf("expected a single batch of 3, got %+v", got)
	}
}

func TestChunkInts_SizeLargerThanInputIsOneBatch(t *testing.T) {
	got := chunkInts([]int{0, 1}, 8)
	if len(got) != 1 || len(got[0]) != 2 {
		t.Fatalf("expected a single batch of 2, got %+v", got)
	}
}

func TestEngine_Finalize_TrimsEvidenceToThree(t *testing.T) {
	e := &Engine{}
	evidence := []models.RAGHit{
		{Document: "a"}, {Document: "b"}, {Document: "c"}, {Document: "d"},
	}
	item := e.finalize("Tofu Stir Fry", models.TierResult{IsVegetarian: models.BoolPtr(true), Confidence: 0.9, Method: "combined"}, evidence, []string{"keyword:0.00"})
	if len(item.Evidence) != 3 {
		t.Fatalf("expected evidence trimmed to 3, got %d", len(item.Evidence))
	}
	if item.Name != "Tofu Stir Fry" {
		t.Fatalf("expected name carried over, got %q", item.Name)
	}
}
