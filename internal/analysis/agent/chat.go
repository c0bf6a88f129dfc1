package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/archanaram372-sh/WhatIContain/internal/analysis/domain"
	"github.com/archanaram372-sh/WhatIContain/platform/logger"
)

// ChatHandler answers follow-up questions scoped to a previously produced
// report. It never re-runs image analysis; the client supplies the report
// projection as context with each question.
type ChatHandler struct {
	gen Generator
	log *logger.Logger
}

// NewChatHandler creates a follow-up question handler.
func NewChatHandler(gen Generator, log *logger.Logger) *ChatHandler {
	return &ChatHandler{gen: gen, log: log}
}

// Answer issues exactly one free-text generation call with the report
// context embedded. A failed call yields a typed chat error; it is
// terminal for this question and never affects the report itself.
func (h *ChatHandler) Answer(ctx context.Context, question string, chatCtx domain.ChatContext, category string) (string, error) {
	prompt := buildChatPrompt(question, chatCtx, domain.ParseCategory(category))

	reply, err := h.gen.GenerateText(ctx, prompt)
	if err != nil {
		h.log.ExternalCallError("gemini", "chat", err)
		return "", domain.WrapError(domain.ErrChat, "follow-up request failed", err)
	}

	return strings.TrimSpace(reply), nil
}

func buildChatPrompt(question string, chatCtx domain.ChatContext, category domain.Category) string {
	return fmt.Sprintf(`You are an expert %s consultant.
The user is viewing a report for a product with:
- Safety Score: %d/100
- Risk Level: %s
- High Risk Ingredients: %s
- Moderate Risk Ingredients: %s

User Question: %s

Instructions:
1. Be concise and professional.
2. Focus on health and safety related to the ingredients.
3. If the question is unrelated to this product, politely redirect them.`,
		category,
		chatCtx.SafetyScore,
		chatCtx.OverallProductRisk,
		strings.Join(chatCtx.HighRiskIngredients, ", "),
		strings.Join(chatCtx.ModerateRiskIngredients, ", "),
		question,
	)
}
