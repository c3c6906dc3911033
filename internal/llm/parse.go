package llm

import (
	"encoding/json"
	"regexp"
	"strings"

	"veggiemenu/internal/models"
	"veggiemenu/pkg/utils"
)

var jsonObjectRe = regexp.MustCompile(`(?s)\{[^}]+\}`)
var codeFenceOpenRe = regexp.MustCompile("```json\\s*\\n?")
var codeFenceCloseRe = regexp.MustCompile("\\n?```")

type singleResponse struct {
	IsVegetarian *bool   `json:"is_vegetarian"`
	Confidence   float64 `json:"confidence"`
	Reasoning    string  `json:"reasoning"`
}

// parseSingleResponse extracts the first JSON object from an LLM reply.
// A malformed or missing object abstains rather than erroring.
func parseSingleResponse(response string) models.TierResult {
	match := jsonObjectRe.FindString(response)
	if match != "" {
		var data singleResponse
		if err := json.Unmarshal([]byte(match), &data); err == nil {
			confidence := data.Confidence
			if confidence == 0 {
				confidence = 0.7
			}
			reasoning := data.Reasoning
			if reasoning == "" {
				reasoning = "LLM classification"
			}
			return models.TierResult{
				IsVegetarian: data.IsVegetarian,
				Confidence:   confidence,
				Reasoning:    reasoning,
				Method:       "llm",
			}
		}
	}
	return models.TierResult{
		IsVegetarian: nil,
		Confidence:   0,
		Reasoning:    "Failed to parse LLM response",
		Method:       "llm",
	}
}

type batchResponseItem struct {
	Dish         string  `json:"dish"`
	Name         string  `json:"name"`
	IsVegetarian *bool   `json:"is_vegetarian"`
	Confidence   float64 `json:"confidence"`
	Reasoning    string  `json:"reasoning"`
}

// parseBatchResponse parses a JSON array response and matches each entry
// back to the dish names it was asked about. Matching tolerates substring
// containment in either direction since the model may echo a slightly
// reformatted dish name; any item it can't place is a parse failure for
// that single item, not the whole batch.
func parseBatchResponse(response string, names []string) map[string]models.TierResult {
	results := make(map[string]models.TierResult, len(names))

	cleaned := codeFenceOpenRe.ReplaceAllString(response, "")
	cleaned = codeFenceCloseRe.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")

	if start != -1 && end != -1 && end > start {
		var data []batchResponseItem
		if err := json.Unmarshal([]byte(cleaned[start:end+1]), &data); err == nil {
			for i, item := range data {
				dishName := item.Dish
				if dishName == "" {
					dishName = item.Name
				}
				if dishName == "" && i < len(names) {
					dishName = names[i]
				}
				if dishName == "" {
					continue
				}

				confidence := item.Confidence
				if confidence == 0 {
					confidence = 0.7
				}
				reasoning := item.Reasoning
				if reasoning == "" {
					reasoning = "Batch LLM"
				}
				result := models.TierResult{
					IsVegetarian: item.IsVegetarian,
					Confidence:   confidence,
					Reasoning:    reasoning,
					Method:       "llm_batch",
				}

				matched := false
				for _, name := range names {
					if utils.ContainsEitherDirection(name, dishName) {
						results[name] = result
						matched = true
						break
					}
				}
				if !matched {
					results[dishName] = result
				}
			}
			return fillMissing(results, names)
		}
	}

	return fillMissing(results, names)
}

func fillMissing(results map[string]models.TierResult, names []string) map[string]models.TierResult {
	for _, name := range names {
		if _, ok := results[name]; !ok {
			results[name] = models.TierResult{
				IsVegetarian: nil,
				Confidence:   0,
				Reasoning:    "Failed to parse batch response",
				Method:       "llm_batch",
			}
		}
	}
	return results
}
