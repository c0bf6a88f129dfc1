package agent

import (
	"encoding/json"
	"strings"

	"github.com/archanaram372-sh/WhatIContain/internal/analysis/domain"
)

// SchemaKind enumerates the structural types the report schema uses.
type SchemaKind int

const (
	SchemaObject SchemaKind = iota
	SchemaArray
	SchemaString
	SchemaInteger
)

// Schema is a declarative structural constraint. It is deliberately
// vendor-neutral; serialization to the wire shape a specific capability
// demands lives next to that capability's client.
type Schema struct {
	Kind        SchemaKind
	Description string
	Properties  map[string]*Schema
	Required    []string
	Items       *Schema
	Enum        []string
}

var riskLevelEnum = []string{"Low", "Moderate", "High"}

// reportSchema is the structural constraint for a ProductReport. Immutable,
// process-wide, safe for concurrent reads. Used both to steer generation
// and to know which fields are mandatory on receipt.
var reportSchema = &Schema{
	Kind: SchemaObject,
	Properties: map[string]*Schema{
		"safety_score": {
			Kind:        SchemaInteger,
			Description: "Overall safety score from 0 (hazardous) to 100 (clean)",
		},
		"overall_product_risk": {
			Kind: SchemaString,
			Enum: riskLevelEnum,
		},
		"ingredients": {
			Kind: SchemaArray,
			Items: &Schema{
				Kind: SchemaObject,
				Properties: map[string]*Schema{
					"name":            {Kind: SchemaString},
					"risk_level":      {Kind: SchemaString, Enum: riskLevelEnum},
					"reason":          {Kind: SchemaString, Description: "Short explanation of the risks"},
					"recommended_for": {Kind: SchemaString, Description: "Suitable skin type or user group"},
					"avoid_if":        {Kind: SchemaString, Description: "Who should avoid this ingredient"},
				},
				Required: []string{"name", "risk_level", "reason"},
			},
		},
		"high_risk_ingredients":     {Kind: SchemaArray, Items: &Schema{Kind: SchemaString}},
		"moderate_risk_ingredients": {Kind: SchemaArray, Items: &Schema{Kind: SchemaString}},
		"low_risk_ingredients":      {Kind: SchemaArray, Items: &Schema{Kind: SchemaString}},
		"not_recommended_for":       {Kind: SchemaArray, Items: &Schema{Kind: SchemaString}},
		"demographic_reasons":       {Kind: SchemaString, Description: "Why the product is unsuitable for the listed groups"},
		"safer_alternatives": {
			Kind: SchemaArray,
			Items: &Schema{
				Kind: SchemaObject,
				Properties: map[string]*Schema{
					"product_name": {Kind: SchemaString},
					"why_better":   {Kind: SchemaString},
				},
				Required: []string{"product_name", "why_better"},
			},
		},
	},
	// overall_product_risk is deliberately absent: the label is advisory
	// input and gets recomputed from the score after validation.
	Required: []string{
		"safety_score",
		"ingredients",
		"high_risk_ingredients",
		"moderate_risk_ingredients",
		"low_risk_ingredients",
	},
}

// ReportSchema returns the structural constraint for analysis responses.
func ReportSchema() *Schema {
	return reportSchema
}

// reportPayload mirrors ProductReport with pointer fields so that missing
// mandatory keys are distinguishable from present-but-empty ones.
type reportPayload struct {
	SafetyScore             *int                 `json:"safety_score"`
	OverallProductRisk      string               `json:"overall_product_risk"`
	Ingredients             *[]findingPayload    `json:"ingredients"`
	HighRiskIngredients     *[]string            `json:"high_risk_ingredients"`
	ModerateRiskIngredients *[]string            `json:"moderate_risk_ingredients"`
	LowRiskIngredients      *[]string            `json:"low_risk_ingredients"`
	NotRecommendedFor       []string             `json:"not_recommended_for"`
	DemographicReasons      string               `json:"demographic_reasons"`
	SaferAlternatives       []alternativePayload `json:"safer_alternatives"`
}

type findingPayload struct {
	Name           string `json:"name"`
	RiskLevel      string `json:"risk_level"`
	Reason         string `json:"reason"`
	RecommendedFor string `json:"recommended_for"`
	AvoidIf        string `json:"avoid_if"`
}

type alternativePayload struct {
	ProductName string `json:"product_name"`
	WhyBetter   string `json:"why_better"`
}

// DecodeReport validates a raw model response against the report schema's
// mandatory fields and converts it into a ProductReport. Any structural
// defect yields a typed malformed-report error, never a partial report.
func DecodeReport(raw []byte) (*domain.ProductReport, error) {
	var payload reportPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, domain.WrapError(domain.ErrMalformedReport, "response is not valid JSON", err)
	}

	if payload.SafetyScore == nil {
		return nil, domain.NewError(domain.ErrMalformedReport, "response is missing safety_score")
	}
	if *payload.SafetyScore < 0 || *payload.SafetyScore > 100 {
		return nil, domain.NewError(domain.ErrMalformedReport, "safety_score is outside the 0-100 range")
	}
	if payload.Ingredients == nil {
		return nil, domain.NewError(domain.ErrMalformedReport, "response is missing ingredients")
	}
	if payload.HighRiskIngredients == nil || payload.ModerateRiskIngredients == nil || payload.LowRiskIngredients == nil {
		return nil, domain.NewError(domain.ErrMalformedReport, "response is missing one or more risk groupings")
	}

	findings := make([]domain.IngredientFinding, 0, len(*payload.Ingredients))
	for _, f := range *payload.Ingredients {
		if strings.TrimSpace(f.Name) == "" {
			return nil, domain.NewError(domain.ErrMalformedReport, "ingredient finding is missing a name")
		}
		findings = append(findings, domain.IngredientFinding{
			Name:           f.Name,
			RiskLevel:      domain.ParseRiskLevel(f.RiskLevel),
			Reason:         f.Reason,
			RecommendedFor: f.RecommendedFor,
			AvoidIf:        f.AvoidIf,
		})
	}

	alternatives := make([]domain.SaferAlternative, 0, len(payload.SaferAlternatives))
	for _, alt := range payload.SaferAlternatives {
		alternatives = append(alternatives, domain.SaferAlternative{
			ProductName: alt.ProductName,
			WhyBetter:   alt.WhyBetter,
		})
	}

	return &domain.ProductReport{
		SafetyScore:             *payload.SafetyScore,
		OverallProductRisk:      domain.ParseRiskLevel(payload.OverallProductRisk),
		Ingredients:             findings,
		HighRiskIngredients:     dedupe(*payload.HighRiskIngredients),
		ModerateRiskIngredients: dedupe(*payload.ModerateRiskIngredients),
		LowRiskIngredients:      dedupe(*payload.LowRiskIngredients),
		NotRecommendedFor:       dedupe(payload.NotRecommendedFor),
		DemographicReasons:      payload.DemographicReasons,
		SaferAlternatives:       alternatives,
	}, nil
}

// dedupe preserves first-seen order under case-insensitive comparison.
// The report's risk groupings are ordered sets, not plain lists.
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}
