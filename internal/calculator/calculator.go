// Package calculator is the Calculator Tool component: it sums confirmed
// vegetarian item prices and reapplies human corrections deterministically.
package calculator

import (
	"math"
	"strings"

	"veggiemenu/internal/models"
)

// Total is the result of summing a set of already-classified vegetarian
// items.
type Total struct {
	TotalSum  float64 `json:"total_sum"`
	ItemCount int     `json:"item_count"`
}

// Sum adds up the price of every item whose price is strictly positive,
// rejecting zero and negative prices, and rounds to two decimal places.
func Sum(vegetarianItems []models.ClassifiedItem) Total {
	var total float64
	count := 0
	for _, item := range vegetarianItems {
		if item.Price > 0 {
			total += item.Price
			count++
		}
	}
	return Total{TotalSum: round2(total), ItemCount: count}
}

// Correction is one human-submitted label override.
type Correction struct {
	Name         string `json:"name"`
	IsVegetarian bool   `json:"is_vegetarian"`
}

// Recomputed is the result of reapplying corrections to an original item
// set.
type Recomputed struct {
	VegetarianItems     []models.ClassifiedItem `json:"vegetarian_items"`
	TotalSum            float64                 `json:"total_sum"`
	CorrectionsApplied  int                     `json:"corrections_applied"`
}

// Recompute builds a case-insensitive name→label map from corrections and
// walks the original items: a corrected label overrides the prior
// classification (and is reported as human-verified at full confidence);
// items absent from corrections keep their prior classification. Applying
// the same correction set twice to the same items is idempotent by
// construction, since recomputation never mutates its inputs.
func Recompute(items []models.ClassifiedItem, corrections []Correction) Recomputed {
	correctionMap := make(map[string]bool, len(corrections))
	for _, c := range corrections {
		correctionMap[strings.ToLower(c.Name)] = c.IsVegetarian
	}

	var vegetarianItems []models.ClassifiedItem
	for _, item := range items {
		label, corrected := correctionMap[strings.ToLower(item.Name)]
		switch {
		case corrected && label:
			vegetarianItems = append(vegetarianItems, models.ClassifiedItem{
				MenuItem:     item.MenuItem,
				IsVegetarian: models.BoolPtr(true),
				Confidence:   1.0,
				Reasoning:    "Human verified",
				Method:       "correction",
			})
		case corrected:
			// Corrected to non-vegetarian: dropped from the vegetarian list.
		case item.IsVegetarian != nil && *item.IsVegetarian:
			vegetarianItems = append(vegetarianItems, item)
		}
	}

	var total float64
	for _, item := range vegetarianItems {
		total += item.Price
	}

	return Recomputed{
		VegetarianItems:    vegetarianItems,
		TotalSum:           round2(total),
		CorrectionsApplied: len(corrections),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
