package agent

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// GeminiGenerator implements Generator on top of the Gemini API. The
// model call is blocking; every call gets a bounded deadline so a stuck
// upstream surfaces as a timeout error instead of hanging the request.
type GeminiGenerator struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiGenerator wraps an initialized genai client.
func NewGeminiGenerator(client *genai.Client, model string, timeout time.Duration) *GeminiGenerator {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &GeminiGenerator{
		client:  client,
		model:   model,
		timeout: timeout,
	}
}

// GenerateStructured issues one constrained generation call. Attachments
// are sent as inline blobs ahead of the prompt text.
func (g *GeminiGenerator) GenerateStructured(ctx context.Context, prompt string, schema *Schema, attachments []Attachment) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	parts := make([]*genai.Part, 0, len(attachments)+1)
	for _, att := range attachments {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{
				MIMEType: att.MIMEType,
				Data:     att.Data,
			},
		})
	}
	parts = append(parts, genai.NewPartFromText(prompt))

	contents := []*genai.Content{{
		Role:  "user",
		Parts: parts,
	}}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   toGenaiSchema(schema),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	return []byte(resp.Text()), nil
}

// GenerateText issues one unconstrained generation call.
func (g *GeminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{genai.NewPartFromText(prompt)},
	}}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	return resp.Text(), nil
}

// toGenaiSchema serializes the vendor-neutral schema into the wire shape
// the Gemini API demands. Kept here so the report types never import the
// schema library.
func toGenaiSchema(s *Schema) *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{
		Description: s.Description,
		Required:    s.Required,
		Enum:        s.Enum,
	}

	switch s.Kind {
	case SchemaObject:
		out.Type = genai.TypeObject
	case SchemaArray:
		out.Type = genai.TypeArray
	case SchemaInteger:
		out.Type = genai.TypeInteger
	default:
		out.Type = genai.TypeString
	}

	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGenaiSchema(prop)
		}
	}
	if s.Items != nil {
		out.Items = toGenaiSchema(s.Items)
	}

	return out
}
