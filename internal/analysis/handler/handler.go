// Package handler exposes the analysis module over HTTP.
package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/archanaram372-sh/WhatIContain/internal/analysis/domain"
	"github.com/archanaram372-sh/WhatIContain/internal/analysis/service"
	"github.com/archanaram372-sh/WhatIContain/internal/analysis/transport"
	"github.com/archanaram372-sh/WhatIContain/platform/apperr"
	"github.com/archanaram372-sh/WhatIContain/platform/httpkit"
	"github.com/archanaram372-sh/WhatIContain/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgNoFile           = "no file uploaded"
)

// Handler handles HTTP requests for label analysis.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new analysis handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Analyze accepts a label photo and returns a safety report.
// POST /api/v1/analysis
func (h *Handler) Analyze(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgNoFile, nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "file is unreadable", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "file is unreadable", nil)
		return
	}

	upload := service.Upload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}

	report, err := h.svc.Analyze(c.Request.Context(), upload, c.PostForm("category"))
	if err != nil {
		httpkit.HandleError(c, toAppErr(err))
		return
	}
	httpkit.OK(c, report)
}

// Chat answers a follow-up question about a prior report.
// POST /api/v1/analysis/chat
func (h *Handler) Chat(c *gin.Context) {
	var req transport.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	chatCtx := domain.ChatContext{
		SafetyScore:             req.Context.SafetyScore,
		OverallProductRisk:      req.Context.OverallProductRisk,
		HighRiskIngredients:     req.Context.HighRiskIngredients,
		ModerateRiskIngredients: req.Context.ModerateRiskIngredients,
	}

	reply, err := h.svc.Chat(c.Request.Context(), req.Question, chatCtx, req.Category)
	if err != nil {
		httpkit.HandleError(c, toAppErr(err))
		return
	}
	httpkit.OK(c, transport.ChatResponse{Reply: reply})
}

// toAppErr converts typed analysis errors into the platform error type so
// the shared HTTP mapping applies. The analysis kind travels along in the
// response details.
func toAppErr(err error) error {
	var ae *domain.AnalysisError
	if !errors.As(err, &ae) {
		return apperr.Wrap(apperr.KindInternal, "analysis failed", err)
	}

	details := map[string]string{"kind": string(ae.Kind)}
	switch ae.Kind {
	case domain.ErrInput:
		return apperr.Wrap(apperr.KindBadRequest, ae.Message, err).WithDetails(details)
	case domain.ErrEmptyIngredients:
		return apperr.Wrap(apperr.KindUnprocessable, ae.Message, err).WithDetails(details)
	case domain.ErrExtraction, domain.ErrService, domain.ErrMalformedReport, domain.ErrChat:
		return apperr.Wrap(apperr.KindUpstream, ae.Message, err).WithDetails(details)
	default:
		return apperr.Wrap(apperr.KindInternal, ae.Message, err).WithDetails(details)
	}
}
