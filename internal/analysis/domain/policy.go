package domain

import "strings"

// Category selects the analysis policy for a product label.
type Category string

const (
	CategoryCosmetics  Category = "cosmetics"
	CategoryFood       Category = "food"
	CategoryHealthcare Category = "healthcare"
	CategoryProcessed  Category = "processed"
	CategoryGeneral    Category = "general"
)

// ParseCategory maps a caller-supplied category string to a known Category.
// Unknown or empty input resolves to CategoryGeneral; this is never an error.
func ParseCategory(s string) Category {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryCosmetics:
		return CategoryCosmetics
	case CategoryFood:
		return CategoryFood
	case CategoryHealthcare:
		return CategoryHealthcare
	case CategoryProcessed:
		return CategoryProcessed
	default:
		return CategoryGeneral
	}
}

// AnalysisPolicy is the persona and scrutiny rules applied for a category.
// Policies are immutable process-wide values, safe for concurrent reads.
type AnalysisPolicy struct {
	Persona       string
	ScrutinyFocus string
	ScoringRules  string
}

// scoringRules spells out the score bands explicitly. Without them the model
// drifts into a narrow always-moderate band regardless of composition.
const scoringRules = `Scoring rules (apply strictly):
- Score BELOW 50 if ANY ingredient is flagged hazardous, toxic, or banned in major markets.
- Score 50-79 for standard compositions containing common irritants or controversial additives.
- Score 80-100 ONLY for clean, organic, or demonstrably safe compositions.`

var (
	cosmeticsPolicy = AnalysisPolicy{
		Persona:       "You are an expert cosmetic ingredient analyst and dermatological safety consultant.",
		ScrutinyFocus: "Scrutinize sensitizers, allergens, comedogenic ingredients, endocrine disruptors (parabens, phthalates), formaldehyde releasers, and harsh surfactants. Consider skin type suitability.",
		ScoringRules:  scoringRules,
	}
	foodPolicy = AnalysisPolicy{
		Persona:       "You are an expert food safety analyst and registered nutritionist.",
		ScrutinyFocus: "Scrutinize artificial colors, preservatives, added sugars, sodium levels, allergens, and additives with controversial safety records (nitrites, BHA/BHT, artificial sweeteners).",
		ScoringRules:  scoringRules,
	}
	healthcarePolicy = AnalysisPolicy{
		Persona:       "You are an expert pharmaceutical ingredient analyst with clinical pharmacology training.",
		ScrutinyFocus: "Scrutinize active ingredients, excipients with known adverse effects, interaction-prone compounds, and ingredients contraindicated for pregnancy, children, or chronic conditions.",
		ScoringRules:  scoringRules,
	}
	processedPolicy = AnalysisPolicy{
		Persona:       "You are an expert analyst of ultra-processed food formulations.",
		ScrutinyFocus: "Scrutinize markers of ultra-processing: hydrogenated oils, trans fats, emulsifiers, flavor enhancers (MSG and analogues), refined starches, and industrial preservative systems.",
		ScoringRules:  scoringRules,
	}
	generalPolicy = AnalysisPolicy{
		Persona:       "You are an expert product ingredient analyzer covering cosmetics, food, and medicine.",
		ScrutinyFocus: "Scrutinize any ingredient with documented health risks, regulatory restrictions, or common sensitivity concerns.",
		ScoringRules:  scoringRules,
	}
)

// SelectPolicy returns the analysis policy for a category. Total lookup:
// the default arm makes the unknown-category path explicit instead of a
// runtime surprise.
func SelectPolicy(c Category) AnalysisPolicy {
	switch c {
	case CategoryCosmetics:
		return cosmeticsPolicy
	case CategoryFood:
		return foodPolicy
	case CategoryHealthcare:
		return healthcarePolicy
	case CategoryProcessed:
		return processedPolicy
	default:
		return generalPolicy
	}
}
