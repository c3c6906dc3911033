package models

// RAGHit is one retrieved evidence document with its distance and derived
// relevance score (relevance = 1 - distance, see the RAG relevance range
// decision in DESIGN.md).
type RAGHit struct {
	ID        string                 `json:"id"`
	Document  string                 `json:"document"`
	Metadata  map[string]interface{} `json:"metadata"`
	Distance  float64                `json:"distance"`
	Relevance float64                `json:"relevance_score"`
}

// TierResult is the opinion one classification tier (keyword, RAG, LLM)
// forms about a single dish. IsVegetarian nil means the tier has no opinion
// and must never be coerced to false.
type TierResult struct {
	IsVegetarian *bool  `json:"is_vegetarian"`
	Confidence   float64 `json:"confidence"`
	Reasoning    string  `json:"reasoning"`
	Method       string  `json:"method"`
	LLMError     string  `json:"llm_error,omitempty"`
}

// Abstains reports whether the tier formed no opinion.
func (t TierResult) Abstains() bool {
	return t.IsVegetarian == nil
}

// BoolPtr is a small helper for building TierResult/ClassifiedItem literals.
func BoolPtr(b bool) *bool { return &b }

// ClassifiedItem is a menu item after the full tiered classification
// pipeline has run, including audit fields (fallback chain, related
// ingredients, category) used by review and feedback.
type ClassifiedItem struct {
	MenuItem
	IsVegetarian       *bool    `json:"is_vegetarian"`
	Confidence         float64  `json:"confidence"`
	Reasoning          string   `json:"reasoning"`
	Evidence           []string `json:"evidence,omitempty"`
	Method             string   `json:"method"`
	RelatedIngredients []string `json:"related_ingredients,omitempty"`
	Category           string   `json:"category,omitempty"`
	FallbackChain      []string `json:"fallback_chain,omitempty"`
	Currency           string   `json:"currency,omitempty"`
}

// NeedsReview reports whether this item's confidence falls below the HITL
// threshold, or it has no opinion at all.
func (c ClassifiedItem) NeedsReview(hitlThreshold float64) bool {
	return c.IsVegetarian == nil || c.Confidence < hitlThreshold
}
