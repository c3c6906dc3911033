package calculator

import (
	"testing"

	"veggiemenu/internal/models"
)

func vegItem(name string, price float64) models.ClassifiedItem {
	return models.ClassifiedItem{
		MenuItem:     models.MenuItem{Name: name, Price: price},
		IsVegetarian: models.BoolPtr(true),
	}
}

func TestSum_IgnoresZeroAndNegativePrices(t *testing.T) {
	items := []models.ClassifiedItem{
		vegItem("Tofu Bowl", 12.5),
		vegItem("Free Sample", 0),
		vegItem("Bad Data", -3),
	}
	total := Sum(items)
	if total.TotalSum != 12.5 {
		t.Fatalf("expected 12.5, got %v", total.TotalSum)
	}
	if total.ItemCount != 1 {
		t.Fatalf("expected 1 item counted, got %d", total.ItemCount)
	}
}

func TestSum_RoundsToTwoDecimals(t *testing.T) {
	items := []models.ClassifiedItem{vegItem("A", 1.005), vegItem("B", 1.005)}
	total := Sum(items)
	if total.TotalSum != 2.01 {
		t.Fatalf("expected 2.01, got %v", total.TotalSum)
	}
}

func TestRecompute_CorrectionOverridesToVegetarian(t *testing.T) {
	items := []models.ClassifiedItem{
		{MenuItem: models.MenuItem{Name: "Chef's Mystery Bowl", Price: 9.0}, IsVegetarian: nil},
	}
	corrections := []Correction{{Name: "chef's mystery bowl", IsVegetarian: true}}

	result := Recompute(items, corrections)
	if len(result.VegetarianItems) != 1 {
		t.Fatalf("expected 1 vegetarian item, got %d", len(result.VegetarianItems))
	}
	item := result.VegetarianItems[0]
	if item.Confidence != 1.0 || item.Reasoning != "Human verified" {
		t.Fatalf("expected human-verified confidence/reasoning, got %+v", item)
	}
	if result.TotalSum != 9.0 {
		t.Fatalf("expected total 9.0, got %v", result.TotalSum)
	}
}

func TestRecompute_CorrectionOverridesToNonVegetarian(t *testing.T) {
	items := []models.ClassifiedItem{
		{MenuItem: models.MenuItem{Name: "Veggie Surprise", Price: 5.0}, IsVegetarian: models.BoolPtr(true)},
	}
	corrections := []Correction{{Name: "Veggie Surprise", IsVegetarian: false}}

	result := Recompute(items, corrections)
	if len(result.VegetarianItems) != 0 {
		t.Fatalf("expected 0 vegetarian items, got %d", len(result.VegetarianItems))
	}
}

func TestRecompute_UncorrectedItemsKeepPriorLabel(t *testing.T) {
	items := []models.ClassifiedItem{
		{MenuItem: models.MenuItem{Name: "Salad", Price: 4.0}, IsVegetarian: models.BoolPtr(true)},
		{MenuItem: models.MenuItem{Name: "Steak", Price: 20.0}, IsVegetarian: models.BoolPtr(false)},
	}
	result := Recompute(items, nil)
	if len(result.VegetarianItems) != 1 || result.VegetarianItems[0].Name != "Salad" {
		t.Fatalf("expected only Salad carried over, got %+v", result.VegetarianItems)
	}
}

func TestRecompute_Idempotent(t *testing.T) {
	items := []models.ClassifiedItem{
		{MenuItem: models.MenuItem{Name: "Chef's Mystery Bowl", Price: 9.0}, IsVegetarian: nil},
	}
	corrections := []Correction{{Name: "Chef's Mystery Bowl", IsVegetarian: true}}

	first := Recompute(items, corrections)
	second := Recompute(items, corrections)
	if first.TotalSum != second.TotalSum || len(first.VegetarianItems) != len(second.VegetarianItems) {
		t.Fatalf("expected idempotent recompute, got %+v then %+v", first, second)
	}
}
