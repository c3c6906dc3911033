// Package kb owns the Knowledge Base: the embedded ingredient/dish dataset
// and keyword sets that ground the keyword matcher and vector store tiers.
package kb

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"veggiemenu/internal/models"
	"veggiemenu/pkg/errors"
)

// Load returns the knowledge base. If overridePath is non-empty, it reads a
// YAML file there and uses it instead of the embedded default. Keyword entries are lower-cased so matching never has to
// re-normalize at query time.
func Load(overridePath string) (models.KnowledgeBase, error) {
	var out models.KnowledgeBase

	if overridePath != "" {
		data, err := os.ReadFile(overridePath)
		if err != nil {
			return out, errors.NewExternal("kb.Load", "filesystem", "reading kb override", err)
		}
		if err := yaml.Unmarshal(data, &out); err != nil {
			return out, errors.NewValidation("kb.Load", "kb override is not valid yaml", err)
		}
	} else {
		out = defaultKnowledgeBase()
	}

	normalize(&out)
	return out, nil
}

func normalize(kb *models.KnowledgeBase) {
	lower := func(items []string) []string {
		out := make([]string, len(items))
		for i, s := range items {
			out[i] = strings.ToLower(s)
		}
		return out
	}
	kb.Keywords.Positive = lower(kb.Keywords.Positive)
	kb.Keywords.Markers = lower(kb.Keywords.Markers)
	kb.Keywords.Negative = lower(kb.Keywords.Negative)

	for i := range kb.Ingredients {
		if kb.Ingredients[i].Type == "" {
			kb.Ingredients[i].Type = "ingredient"
		}
	}
	for i := range kb.Dishes {
		if kb.Dishes[i].Type == "" {
			kb.Dishes[i].Type = "dish"
		}
	}
}
