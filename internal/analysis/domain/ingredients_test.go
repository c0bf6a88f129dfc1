package domain

import (
	"strings"
	"testing"
)

func defaultCanonicalizer() Canonicalizer {
	return NewCanonicalizer(DefaultCanonicalizerConfig())
}

func TestCanonicalizeStripsHeaderAndDeduplicates(t *testing.T) {
	canon := defaultCanonicalizer()

	got := canon.Canonicalize("Ingredients: Water, WATER , Glycerin., Cu Dove Bar")

	want := []string{"Water", "Glycerin"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestCanonicalizePreservesFirstSeenOrder(t *testing.T) {
	canon := defaultCanonicalizer()

	got := canon.Canonicalize("Cetyl Alcohol, Glycerin, Fragrance, glycerin, Citric Acid")

	want := []string{"Cetyl Alcohol", "Glycerin", "Fragrance", "Citric Acid"}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestCanonicalizeDropsShortSegments(t *testing.T) {
	canon := defaultCanonicalizer()

	got := canon.Canonicalize("Aqua, SLS, ab, , Tocopherol")

	for _, ing := range got {
		if len(ing) <= 3 {
			t.Fatalf("entry %q at or below length threshold slipped through: %v", ing, got)
		}
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries (Aqua, Tocopherol), got %v", got)
	}
}

func TestCanonicalizeReplacesNewlinesAndCollapsesWhitespace(t *testing.T) {
	canon := defaultCanonicalizer()

	got := canon.Canonicalize("Sodium\nLaureth   Sulfate, Cocamidopropyl\nBetaine")

	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %v", got)
	}
	if got[0] != "Sodium Laureth Sulfate" {
		t.Fatalf("expected collapsed whitespace, got %q", got[0])
	}
	if got[1] != "Cocamidopropyl Betaine" {
		t.Fatalf("expected collapsed whitespace, got %q", got[1])
	}
}

func TestCanonicalizeEmptyInputIsValid(t *testing.T) {
	canon := defaultCanonicalizer()

	got := canon.Canonicalize("")
	if len(got) != 0 {
		t.Fatalf("expected empty result for empty input, got %v", got)
	}

	got = canon.Canonicalize("Ingredients: ... , .. , a")
	if len(got) != 0 {
		t.Fatalf("expected empty result for artifact-only input, got %v", got)
	}
}

func TestCanonicalizeNoCaseInsensitiveDuplicates(t *testing.T) {
	canon := defaultCanonicalizer()

	got := canon.Canonicalize("Niacinamide, NIACINAMIDE, niacinamide, Panthenol")

	seen := make(map[string]bool)
	for _, ing := range got {
		key := strings.ToLower(ing)
		if seen[key] {
			t.Fatalf("duplicate entry %q in %v", ing, got)
		}
		seen[key] = true
	}
}

func TestCanonicalizeConfigurableStripList(t *testing.T) {
	canon := NewCanonicalizer(CanonicalizerConfig{
		StripTerms:      []string{"Contents:", "Toothpaste"},
		ExcludePrefixes: []string{"net wt"},
		MinLength:       3,
	})

	got := canon.Canonicalize("Contents: Sorbitol, Toothpaste Hydrated Silica, Net Wt 100g")

	want := []string{"Sorbitol", "Hydrated Silica"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
