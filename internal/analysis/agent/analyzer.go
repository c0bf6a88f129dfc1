package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/archanaram372-sh/WhatIContain/internal/analysis/domain"
	"github.com/archanaram372-sh/WhatIContain/platform/logger"
)

// Analyzer is the analysis requester: it resolves the category policy,
// composes the instruction, issues exactly one generation call, and
// decodes the structured response. Retries, if ever wanted, belong to
// the caller, and only for transport failures.
type Analyzer struct {
	gen Generator
	log *logger.Logger
}

// NewAnalyzer creates an analysis requester on the given generator.
func NewAnalyzer(gen Generator, log *logger.Logger) *Analyzer {
	return &Analyzer{gen: gen, log: log}
}

// AnalyzeImage analyzes a label photo through the model's native vision
// capability: the image goes to the model as an inline blob together with
// the persona, scoring rules, and report schema.
func (a *Analyzer) AnalyzeImage(ctx context.Context, img Attachment, category string) (*domain.ProductReport, error) {
	policy := domain.SelectPolicy(domain.ParseCategory(category))
	prompt := buildImagePrompt(policy)

	raw, err := a.gen.GenerateStructured(ctx, prompt, ReportSchema(), []Attachment{img})
	if err != nil {
		a.log.ExternalCallError("gemini", "analyze_image", err)
		return nil, domain.WrapError(domain.ErrService, "ingredient analysis request failed", err)
	}

	return DecodeReport(raw)
}

// AnalyzeIngredients analyzes an already-canonicalized ingredient list,
// the path used when an OCR collaborator extracted the label text.
func (a *Analyzer) AnalyzeIngredients(ctx context.Context, ingredients []string, category string) (*domain.ProductReport, error) {
	policy := domain.SelectPolicy(domain.ParseCategory(category))
	prompt := buildIngredientsPrompt(policy, ingredients)

	raw, err := a.gen.GenerateStructured(ctx, prompt, ReportSchema(), nil)
	if err != nil {
		a.log.ExternalCallError("gemini", "analyze_ingredients", err)
		return nil, domain.WrapError(domain.ErrService, "ingredient analysis request failed", err)
	}

	return DecodeReport(raw)
}

const analysisTaskBlock = `For each ingredient:
- Give a risk level (Low/Moderate/High)
- A short explanation of the risks
- The suitable skin type or user group
- Who should avoid it

Then produce:
- A safety_score from 0 to 100 for the whole product
- The ingredient names grouped into high, moderate, and low risk lists
- Which demographics should not use this product, and why
- Safer alternative products where relevant`

func buildIngredientsPrompt(policy domain.AnalysisPolicy, ingredients []string) string {
	return fmt.Sprintf(`%s
%s

Analyze these ingredients: %s

%s

%s`,
		policy.Persona,
		policy.ScrutinyFocus,
		strings.Join(ingredients, ", "),
		analysisTaskBlock,
		policy.ScoringRules,
	)
}

func buildImagePrompt(policy domain.AnalysisPolicy) string {
	return fmt.Sprintf(`%s
%s

The attached photo shows a product label. Read the ingredient list from the
label, then analyze every ingredient you can identify.

%s

%s`,
		policy.Persona,
		policy.ScrutinyFocus,
		analysisTaskBlock,
		policy.ScoringRules,
	)
}
