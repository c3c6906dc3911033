package llm

import (
	"fmt"
	"strconv"
	"strings"

	"veggiemenu/internal/models"
)

const systemPrompt = `You are a food classification expert. Your task is to determine if a dish is vegetarian.

A dish is VEGETARIAN if it contains NO:
- Meat (beef, pork, chicken, lamb, duck, etc.)
- Poultry
- Fish or seafood
- Hidden meat products (fish sauce, anchovy paste, gelatin, lard, bone broth)

A dish IS vegetarian if it contains:
- Vegetables, fruits, grains, legumes
- Dairy products (milk, cheese, eggs, butter)
- Plant-based proteins (tofu, tempeh, seitan)

Respond ONLY with valid JSON in this exact format:
{"is_vegetarian": true/false, "confidence": 0.0-1.0, "reasoning": "brief explanation"}`

const batchSystemPrompt = `You are a food classification expert. Classify MULTIPLE dishes as vegetarian or not.

A dish is VEGETARIAN if it contains NO meat, poultry, fish, seafood, or hidden animal products (fish sauce, anchovy paste, gelatin, lard, bone broth).
A dish IS vegetarian if it only contains vegetables, fruits, grains, legumes, dairy, eggs, or plant-based proteins.

You will receive a list of dishes. Respond with a JSON array containing one object per dish in the SAME ORDER.
Each object must have: {"dish": "name", "is_vegetarian": true/false, "confidence": 0.0-1.0, "reasoning": "brief"}

IMPORTANT: Return ONLY valid JSON array, no other text.`

func singlePrompt(dishName string, evidence []models.RAGHit) string {
	var b strings.Builder
	for i, e := range evidence {
		if i >= 5 {
			break
		}
		isVeg, _ := e.Metadata["is_vegetarian"].(bool)
		fmt.Fprintf(&b, "- %s (vegetarian: %s)\n", e.Document, strconv.FormatBool(isVeg))
	}
	return fmt.Sprintf("Classify this dish: %q\n\nRelated items from knowledge base:\n%s\nIs this dish vegetarian? Respond with JSON only.", dishName, b.String())
}

func batchPrompt(names []string) string {
	var b strings.Builder
	for i, name := range names {
		fmt.Fprintf(&b, "%d. %s\n", i+1, name)
	}
	return fmt.Sprintf("Classify these %d dishes as vegetarian or not:\n\n%sReturn a JSON array with %d objects, one for each dish in order.",
		len(names), b.String(), len(names))
}
