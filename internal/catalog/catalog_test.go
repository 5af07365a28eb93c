package catalog

import (
	"testing"

	"github.com/claude/liftlog/internal/models"
)

// TestParseCatalog verifies a well-formed catalog parses and lookups resolve
// the declared fields.
func TestParseCatalog(t *testing.T) {
	raw := []byte(`
exercises:
  - id: bench-press
    name: Bench Press
    category: Barbell
    default_bar_weight_kg: 20
  - id: pull-up
    name: Pull-Up
    category: Bodyweight
  - id: plank
    name: Plank
    category: Bodyweight
    is_timed: true
`)
	c, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}

	bench, ok := c.Lookup("bench-press")
	if !ok {
		t.Fatal("bench-press not found")
	}
	if bench.Category != models.CategoryBarbell || bench.DefaultBarWeightKg != 20 {
		t.Errorf("bench = %+v, want Barbell with 20 kg bar", bench)
	}

	plank, _ := c.Lookup("plank")
	if !plank.IsTimed {
		t.Error("plank should be timed")
	}

	if _, ok := c.Lookup("nonexistent"); ok {
		t.Error("unknown id should not resolve")
	}
}

// TestParseCatalogRejectsDuplicates verifies duplicate ids fail loading
// instead of silently shadowing an entry.
func TestParseCatalogRejectsDuplicates(t *testing.T) {
	raw := []byte(`
exercises:
  - id: squat
    name: Squat
    category: Barbell
  - id: squat
    name: Front Squat
    category: Barbell
`)
	if _, err := Parse(raw); err == nil {
		t.Fatal("expected error for duplicate id")
	}
}

// TestParseCatalogRequiresID verifies entries without an id are rejected.
func TestParseCatalogRequiresID(t *testing.T) {
	raw := []byte(`
exercises:
  - name: Mystery Movement
    category: Machine
`)
	if _, err := Parse(raw); err == nil {
		t.Fatal("expected error for missing id")
	}
}
