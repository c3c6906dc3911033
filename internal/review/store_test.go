package review

import (
	"testing"

	"veggiemenu/internal/models"
	"veggiemenu/pkg/errors"
)

func TestStore_PutGetClear(t *testing.T) {
	s := NewStore()
	items := []models.ClassifiedItem{{MenuItem: models.MenuItem{Name: "Tofu Bowl"}}}
	s.Put("req-1", items, models.PartialResult{TotalSum: 5})

	rec, ok := s.Get("req-1")
	if !ok || len(rec.Items) != 1 {
		t.Fatalf("expected pending review with 1 item, got %+v ok=%v", rec, ok)
	}

	s.Clear("req-1")
	if _, ok := s.Get("req-1"); ok {
		t.Fatalf("expected review to be cleared")
	}
}

func TestStore_Take_NotFound(t *testing.T) {
	s := NewStore()
	_, err := s.Take("missing")
	if !errors.Is(err, errors.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestStore_Take_RemovesAfterRead(t *testing.T) {
	s := NewStore()
	s.Put("req-1", nil, models.PartialResult{})

	if _, err := s.Take("req-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Take("req-1"); !errors.Is(err, errors.ErrNotFound) {
		t.Fatalf("expected second take to be not-found, got %v", err)
	}
}

func TestStore_Count(t *testing.T) {
	s := NewStore()
	s.Put("a", nil, models.PartialResult{})
	s.Put("b", nil, models.PartialResult{})
	if s.Count() != 2 {
		t.Fatalf("expected count 2, got %d", s.Count())
	}
}
