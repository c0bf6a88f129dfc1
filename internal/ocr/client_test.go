package ocr

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExtractTextSendsAuthorizedRequest(t *testing.T) {
	var gotPath, gotAuth, gotMIME string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")

		var req extractRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		gotMIME = req.MIMEType

		json.NewEncoder(w).Encode(extractResponse{Text: "Ingredients: Water, Glycerin"})
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL + "/", APIKey: "secret"})

	text, err := client.ExtractText(context.Background(), []byte{0xff, 0xd8}, "image/jpeg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if text != "Ingredients: Water, Glycerin" {
		t.Fatalf("unexpected text %q", text)
	}
	if gotPath != "/api/extract" {
		t.Fatalf("expected /api/extract, got %q", gotPath)
	}
	if gotAuth != "Bearer secret" {
		t.Fatalf("expected bearer auth, got %q", gotAuth)
	}
	if gotMIME != "image/jpeg" {
		t.Fatalf("expected mime type passthrough, got %q", gotMIME)
	}
}

func TestExtractTextRejectsEmptyImage(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://127.0.0.1:1"})

	if _, err := client.ExtractText(context.Background(), nil, "image/png"); err == nil {
		t.Fatalf("expected an error for an empty image")
	}
}

func TestExtractTextSurfacesServiceFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})

	if _, err := client.ExtractText(context.Background(), []byte{1}, "image/png"); err == nil {
		t.Fatalf("expected an error for a 503 response")
	}
}
