package domain

import (
	"strings"
	"testing"
)

func TestParseCategoryKnownValues(t *testing.T) {
	cases := []struct {
		in   string
		want Category
	}{
		{in: "cosmetics", want: CategoryCosmetics},
		{in: "Food", want: CategoryFood},
		{in: " HEALTHCARE ", want: CategoryHealthcare},
		{in: "processed", want: CategoryProcessed},
		{in: "general", want: CategoryGeneral},
	}

	for _, tc := range cases {
		if got := ParseCategory(tc.in); got != tc.want {
			t.Fatalf("ParseCategory(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestParseCategoryUnknownFallsBackToGeneral(t *testing.T) {
	for _, in := range []string{"aerospace", "", "  ", "c0smetics"} {
		if got := ParseCategory(in); got != CategoryGeneral {
			t.Fatalf("ParseCategory(%q): expected general, got %q", in, got)
		}
	}
}

func TestSelectPolicyNeverFails(t *testing.T) {
	policy := SelectPolicy(Category("aerospace"))

	if policy.Persona == "" || policy.ScoringRules == "" {
		t.Fatalf("expected a complete fallback policy, got %+v", policy)
	}
	if policy != SelectPolicy(CategoryGeneral) {
		t.Fatalf("expected unknown category to resolve to the general policy")
	}
}

func TestSelectPolicyDistinctPersonas(t *testing.T) {
	categories := []Category{
		CategoryCosmetics,
		CategoryFood,
		CategoryHealthcare,
		CategoryProcessed,
		CategoryGeneral,
	}

	seen := make(map[string]Category)
	for _, c := range categories {
		policy := SelectPolicy(c)
		if prev, dup := seen[policy.Persona]; dup {
			t.Fatalf("categories %q and %q share a persona", prev, c)
		}
		seen[policy.Persona] = c
	}
}

func TestScoringRulesSpellOutBands(t *testing.T) {
	rules := SelectPolicy(CategoryGeneral).ScoringRules

	for _, fragment := range []string{"BELOW 50", "50-79", "80-100"} {
		if !strings.Contains(rules, fragment) {
			t.Fatalf("scoring rules missing band %q: %s", fragment, rules)
		}
	}
}
