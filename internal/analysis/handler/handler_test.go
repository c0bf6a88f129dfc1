package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/archanaram372-sh/WhatIContain/internal/analysis/domain"
	"github.com/archanaram372-sh/WhatIContain/platform/apperr"
	"github.com/archanaram372-sh/WhatIContain/platform/validator"
)

func TestToAppErrStatusMapping(t *testing.T) {
	cases := []struct {
		kind       domain.ErrorKind
		wantStatus int
	}{
		{kind: domain.ErrInput, wantStatus: http.StatusBadRequest},
		{kind: domain.ErrEmptyIngredients, wantStatus: http.StatusUnprocessableEntity},
		{kind: domain.ErrExtraction, wantStatus: http.StatusBadGateway},
		{kind: domain.ErrService, wantStatus: http.StatusBadGateway},
		{kind: domain.ErrMalformedReport, wantStatus: http.StatusBadGateway},
		{kind: domain.ErrChat, wantStatus: http.StatusBadGateway},
	}

	for _, tc := range cases {
		mapped := toAppErr(domain.NewError(tc.kind, "boom"))

		ae, ok := mapped.(*apperr.Error)
		if !ok {
			t.Fatalf("kind %q: expected *apperr.Error, got %T", tc.kind, mapped)
		}
		if ae.HTTPStatus() != tc.wantStatus {
			t.Fatalf("kind %q: expected status %d, got %d", tc.kind, tc.wantStatus, ae.HTTPStatus())
		}

		details, ok := ae.Details.(map[string]string)
		if !ok || details["kind"] != string(tc.kind) {
			t.Fatalf("kind %q: expected kind in details, got %v", tc.kind, ae.Details)
		}
	}
}

func TestToAppErrUntypedFallsBackToInternal(t *testing.T) {
	mapped := toAppErr(errors.New("plain"))

	ae, ok := mapped.(*apperr.Error)
	if !ok {
		t.Fatalf("expected *apperr.Error, got %T", mapped)
	}
	if ae.Kind != apperr.KindInternal {
		t.Fatalf("expected internal kind, got %v", ae.Kind)
	}
}

func TestChatRejectsInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Neither body parsing nor validation reaches the service.
	h := New(nil, validator.New())

	cases := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{`},
		{name: "missing question", body: `{"context": {"safety_score": 50, "overall_product_risk": "Moderate"}}`},
		{name: "oversized question", body: `{"question": "` + strings.Repeat("a", 2100) + `", "context": {"safety_score": 50, "overall_product_risk": "Moderate"}}`},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/analysis/chat", strings.NewReader(tc.body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Chat(c)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d: %s", tc.name, w.Code, w.Body.String())
		}
	}
}

func TestAnalyzeRequiresFilePart(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := New(nil, validator.New())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/analysis", strings.NewReader(""))
	c.Request.Header.Set("Content-Type", "multipart/form-data; boundary=x")

	h.Analyze(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing file part, got %d: %s", w.Code, w.Body.String())
	}
}
