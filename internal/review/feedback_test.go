package review

import (
	"path/filepath"
	"testing"

	"veggiemenu/internal/calculator"
	"veggiemenu/pkg/logging"
)

func newTestLogger(t *testing.T) *logging.Logger {
	t.Helper()
	l, err := logging.NewLogger(logging.DefaultLogConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return l
}

func newTestLog(t *testing.T) *FeedbackLog {
	t.Helper()
	dir := t.TempDir()
	log, err := NewFeedbackLog(filepath.Join(dir, "nested", "feedback.jsonl"), newTestLogger(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return log
}

func TestFeedbackLog_AppendAndStats(t *testing.T) {
	log := newTestLog(t)
	log.Append("req-1", []calculator.Correction{
		{Name: "Tofu Bowl", IsVegetarian: true},
		{Name: "Beef Stew", IsVegetarian: false},
	})
	log.Append("req-2", []calculator.Correction{
		{Name: "Tofu Bowl", IsVegetarian: true},
	})

	stats, err := log.Stats()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalCorrections != 3 {
		t.Fatalf("expected 3 total corrections, got %d", stats.TotalCorrections)
	}
	if stats.UniqueDishes != 2 {
		t.Fatalf("expected 2 unique dishes, got %d", stats.UniqueDishes)
	}
	if stats.DishStats["Tofu Bowl"].VegCount != 2 {
		t.Fatalf("expected 2 veg corrections for Tofu Bowl, got %+v", stats.DishStats["Tofu Bowl"])
	}
	if stats.DishStats["Beef Stew"].NonVegCount != 1 {
		t.Fatalf("expected 1 non-veg correction for Beef Stew, got %+v", stats.DishStats["Beef Stew"])
	}
}

func TestFeedbackLog_StatsOnMissingFile(t *testing.T) {
	dir := t.TempDir()
	log, err := NewFeedbackLog(filepath.Join(dir, "never-written.jsonl"), newTestLogger(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stats, err := log.Stats()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalCorrections != 0 {
		t.Fatalf("expected zero corrections, got %d", stats.TotalCorrections)
	}
}

func TestFeedbackLog_RecentFeedbackCapsAtTwenty(t *testing.T) {
	log := newTestLog(t)
	for i := 0; i < 25; i++ {
		log.Append("req", []calculator.Correction{{Name: "Dish", IsVegetarian: true}})
	}
	stats, err := log.Stats()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stats.RecentFeedback) != 20 {
		t.Fatalf("expected 20 recent records, got %d", len(stats.RecentFeedback))
	}
}
