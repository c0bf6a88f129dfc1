// Package agent talks to the external generative AI capability. It owns
// prompt composition, the report schema constraint, and response decoding.
package agent

import "context"

// Attachment is a binary blob (label photo) forwarded to the model.
type Attachment struct {
	MIMEType string // e.g. "image/jpeg", "image/png"
	Data     []byte // Raw image bytes
	Filename string // Original filename (optional)
}

// Generator is the minimal contract on the generative capability: given a
// prompt and an optional structural constraint, return a value conforming
// to the constraint, or fail. Each call is a single attempt; retries, if
// any, belong to the caller.
type Generator interface {
	// GenerateStructured issues one schema-constrained call and returns
	// the raw JSON response body.
	GenerateStructured(ctx context.Context, prompt string, schema *Schema, attachments []Attachment) ([]byte, error)
	// GenerateText issues one free-text call and returns the reply.
	GenerateText(ctx context.Context, prompt string) (string, error)
}
