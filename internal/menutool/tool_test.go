package menutool

import (
	"testing"

	"veggiemenu/internal/models"
)

func classifiedItem(name string, isVeg *bool, confidence float64) models.ClassifiedItem {
	return models.ClassifiedItem{
		MenuItem:     models.MenuItem{Name: name, Price: 1},
		IsVegetarian: isVeg,
		Confidence:   confidence,
	}
}

func TestBucket_PartitionsByConfidenceAndThreshold(t *testing.T) {
	items := []models.ClassifiedItem{
		classifiedItem("Tofu Bowl", models.BoolPtr(true), 0.9),
		classifiedItem("Beef Stew", models.BoolPtr(false), 0.9),
		classifiedItem("Mystery Dish", nil, 0),
		classifiedItem("Low Confidence Salad", models.BoolPtr(true), 0.2),
	}

	result := bucket(items, 0.4)

	if len(result.ConfidentVegetarian) != 1 || result.ConfidentVegetarian[0].Name != "Tofu Bowl" {
		t.Fatalf("expected Tofu Bowl in confident vegetarian, got %+v", result.ConfidentVegetarian)
	}
	if len(result.ConfidentNonVeg) != 1 || result.ConfidentNonVeg[0].Name != "Beef Stew" {
		t.Fatalf("expected Beef Stew in confident non-vegetarian, got %+v", result.ConfidentNonVeg)
	}
	if len(result.Uncertain) != 2 {
		t.Fatalf("expected 2 uncertain items (abstain + low confidence), got %d", len(result.Uncertain))
	}
	if len(result.AllItems) != 4 {
		t.Fatalf("expected all 4 items preserved in order, got %d", len(result.AllItems))
	}
}

func TestBucket_CompletenessAndDisjointness(t *testing.T) {
	items := []models.ClassifiedItem{
		classifiedItem("A", models.BoolPtr(true), 0.9),
		classifiedItem("B", models.BoolPtr(false), 0.9),
		classifiedItem("C", nil, 0),
	}
	result := bucket(items, 0.4)
	total := len(result.ConfidentVegetarian) + len(result.ConfidentNonVeg) + len(result.Uncertain)
	if total != len(items) {
		t.Fatalf("expected bucket counts to sum to input length, got %d vs %d", total, len(items))
	}
}
