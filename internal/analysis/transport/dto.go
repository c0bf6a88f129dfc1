// Package transport defines the request and response DTOs for the
// analysis module's HTTP surface.
package transport

// ChatContextRequest is the client-supplied projection of a prior report.
// The server keeps no session state; the client carries the context.
type ChatContextRequest struct {
	SafetyScore             int      `json:"safety_score" validate:"min=0,max=100"`
	OverallProductRisk      string   `json:"overall_product_risk" validate:"required"`
	HighRiskIngredients     []string `json:"high_risk_ingredients"`
	ModerateRiskIngredients []string `json:"moderate_risk_ingredients"`
}

// ChatRequest is a follow-up question about a previously analyzed product.
type ChatRequest struct {
	Question string             `json:"question" validate:"required,max=2000"`
	Context  ChatContextRequest `json:"context" validate:"required"`
	Category string             `json:"category" validate:"omitempty,max=64"`
}

// ChatResponse carries the consultant's reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}
