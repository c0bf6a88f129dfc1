// Package ocr provides a client for an external text-extraction service.
// It is only used when the deployment prefers a dedicated OCR step over
// the model's native vision capability.
package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is an HTTP client for the OCR service.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Config configures the OCR client.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// NewClient creates a new OCR service client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type extractRequest struct {
	Image    []byte `json:"image"`
	MIMEType string `json:"mime_type"`
}

type extractResponse struct {
	Text string `json:"text"`
}

// ExtractText sends an image to the OCR service and returns the raw
// recognized text. The text is unclean by design; canonicalization is
// the pipeline's job.
func (c *Client) ExtractText(ctx context.Context, image []byte, mimeType string) (string, error) {
	if len(image) == 0 {
		return "", fmt.Errorf("image is required")
	}

	bodyBytes, err := json.Marshal(extractRequest{Image: image, MIMEType: mimeType})
	if err != nil {
		return "", fmt.Errorf("failed to marshal extract request: %w", err)
	}

	url := c.baseURL + "/api/extract"
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create extract request: %w", err)
	}

	request.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		request.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("extract request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("OCR service returned %d: %s", resp.StatusCode, string(body))
	}

	var result extractResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode extract response: %w", err)
	}

	return result.Text, nil
}
