// Package domain contains the pure analysis types and logic for product
// label reports. Nothing in this package calls external services.
package domain

import "strings"

// RiskLevel is the categorical risk classification used throughout a report.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
)

// ParseRiskLevel normalizes a free-form risk label from the model.
// Unrecognized values resolve to Moderate rather than failing; the
// overall label is recomputed from the score anyway.
func ParseRiskLevel(s string) RiskLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return RiskLow
	case "high":
		return RiskHigh
	default:
		return RiskModerate
	}
}

// IngredientFinding is the per-ingredient assessment produced by the analyzer.
// Immutable once created.
type IngredientFinding struct {
	Name           string    `json:"name"`
	RiskLevel      RiskLevel `json:"risk_level"`
	Reason         string    `json:"reason"`
	RecommendedFor string    `json:"recommended_for,omitempty"`
	AvoidIf        string    `json:"avoid_if,omitempty"`
}

// SaferAlternative suggests a replacement product.
type SaferAlternative struct {
	ProductName string `json:"product_name"`
	WhyBetter   string `json:"why_better"`
}

// ProductReport is the top-level analysis result for one label scan.
// OverallProductRisk is always derived from SafetyScore via Reconcile;
// the label proposed by the model is advisory input only.
type ProductReport struct {
	SafetyScore             int                 `json:"safety_score"`
	OverallProductRisk      RiskLevel           `json:"overall_product_risk"`
	Ingredients             []IngredientFinding `json:"ingredients"`
	HighRiskIngredients     []string            `json:"high_risk_ingredients"`
	ModerateRiskIngredients []string            `json:"moderate_risk_ingredients"`
	LowRiskIngredients      []string            `json:"low_risk_ingredients"`
	NotRecommendedFor       []string            `json:"not_recommended_for"`
	DemographicReasons      string              `json:"demographic_reasons,omitempty"`
	SaferAlternatives       []SaferAlternative  `json:"safer_alternatives"`
}

// ChatContext is the read-only projection of a ProductReport that the
// caller supplies with a follow-up question. No server-side session
// state exists; the client carries the context.
type ChatContext struct {
	SafetyScore             int      `json:"safety_score"`
	OverallProductRisk      string   `json:"overall_product_risk"`
	HighRiskIngredients     []string `json:"high_risk_ingredients"`
	ModerateRiskIngredients []string `json:"moderate_risk_ingredients"`
}
