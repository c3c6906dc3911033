package models

// KBEntry is one row of the knowledge base: an ingredient or a dish, with its
// vegetarian status and a short description used to build its embedding.
type KBEntry struct {
	Name         string `json:"name" yaml:"name"`
	IsVegetarian bool   `json:"is_vegetarian" yaml:"is_vegetarian"`
	Category     string `json:"category" yaml:"category"`
	Description  string `json:"description" yaml:"description"`
	Notes        string `json:"notes" yaml:"notes"`
	Type         string `json:"type" yaml:"type"` // "ingredient" or "dish"
}

// Document returns the text that gets embedded and stored alongside the
// entry, using a "name: description" convention.
func (e KBEntry) Document() string {
	if e.Description == "" {
		return e.Name
	}
	return e.Name + ": " + e.Description
}

// KeywordSets holds the three keyword lists the Keyword Matcher tier scans
// against a dish name, each entry already lower-cased at load time.
type KeywordSets struct {
	Positive []string `json:"vegetarian_positive" yaml:"vegetarian_positive"`
	Markers  []string `json:"vegetarian_markers" yaml:"vegetarian_markers"`
	Negative []string `json:"vegetarian_negative" yaml:"vegetarian_negative"`
}

// KnowledgeBase is the full loaded dataset: ingredient and dish entries plus
// the keyword sets, as produced by internal/kb.Load.
type KnowledgeBase struct {
	Ingredients []KBEntry   `json:"ingredients" yaml:"ingredients"`
	Dishes      []KBEntry   `json:"dishes" yaml:"dishes"`
	Keywords    KeywordSets `json:"keywords" yaml:"keywords"`
}

// Entries returns ingredients and dishes concatenated, the unit the Vector
// Store indexes.
func (kb KnowledgeBase) Entries() []KBEntry {
	out := make([]KBEntry, 0, len(kb.Ingredients)+len(kb.Dishes))
	out = append(out, kb.Ingredients...)
	out = append(out, kb.Dishes...)
	return out
}
