// Package analysis provides the label analysis bounded context module:
// image analysis, report production, and scoped follow-up chat.
package analysis

import (
	"github.com/archanaram372-sh/WhatIContain/internal/analysis/handler"
	"github.com/archanaram372-sh/WhatIContain/internal/analysis/service"
	apphttp "github.com/archanaram372-sh/WhatIContain/internal/http"
	"github.com/archanaram372-sh/WhatIContain/platform/validator"
)

// Module is the analysis bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule wires the analysis module from an already-constructed
// orchestrator service.
func NewModule(svc *service.Service, val *validator.Validator) *Module {
	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "analysis"
}

// Service returns the orchestrator for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts analysis routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	grp := ctx.API.Group("/analysis")
	grp.POST("", m.handler.Analyze)
	grp.POST("/chat", m.handler.Chat)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
