// Package service orchestrates the label analysis pipeline: upload
// staging, text extraction, the model call, schema validation, and score
// reconciliation. Every failure maps to one typed analysis error.
package service

import (
	"bytes"
	"context"
	"net/http"

	"github.com/rwcarlsen/goexif/exif"

	"github.com/archanaram372-sh/WhatIContain/internal/adapters/storage"
	"github.com/archanaram372-sh/WhatIContain/internal/analysis/agent"
	"github.com/archanaram372-sh/WhatIContain/internal/analysis/domain"
	"github.com/archanaram372-sh/WhatIContain/platform/logger"
	"github.com/archanaram372-sh/WhatIContain/platform/sanitize"
)

// TextExtractor is the OCR collaborator contract. A nil extractor means
// the pipeline sends the label image to the model's native vision
// capability instead of running OCR first.
type TextExtractor interface {
	ExtractText(ctx context.Context, image []byte, mimeType string) (string, error)
}

// Upload is one label image as received from the route layer.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Deps contains the orchestrator's collaborators. Constructed once at
// startup and passed in; nothing here is re-initialized per request.
type Deps struct {
	Analyzer      *agent.Analyzer
	Chat          *agent.ChatHandler
	Extractor     TextExtractor
	Staging       storage.StagingService
	UploadBucket  string
	Canonicalizer domain.Canonicalizer
	Logger        *logger.Logger
}

// Service sequences the analysis pipeline for one request at a time.
// It holds no mutable state, so concurrent requests are independent.
type Service struct {
	analyzer  *agent.Analyzer
	chat      *agent.ChatHandler
	extractor TextExtractor
	staging   storage.StagingService
	bucket    string
	canon     domain.Canonicalizer
	log       *logger.Logger
}

// New creates the analysis orchestrator.
func New(deps Deps) *Service {
	return &Service{
		analyzer:  deps.Analyzer,
		chat:      deps.Chat,
		extractor: deps.Extractor,
		staging:   deps.Staging,
		bucket:    deps.UploadBucket,
		canon:     deps.Canonicalizer,
		log:       deps.Logger,
	}
}

// Analyze runs the full pipeline for one uploaded label image and returns
// a reconciled report. The staged copy of the image is released exactly
// once on every exit path.
func (s *Service) Analyze(ctx context.Context, up Upload, category string) (*domain.ProductReport, error) {
	if len(up.Data) == 0 {
		return nil, domain.NewError(domain.ErrInput, "no image supplied")
	}

	contentType := up.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(up.Data)
	}
	if err := s.staging.ValidateContentType(contentType); err != nil {
		return nil, domain.WrapError(domain.ErrInput, "unsupported image format", err)
	}
	if err := s.staging.ValidateFileSize(int64(len(up.Data))); err != nil {
		return nil, domain.WrapError(domain.ErrInput, "image rejected", err)
	}

	s.logImageMetadata(ctx, up)

	key, err := s.staging.StoreUpload(ctx, s.bucket, up.Filename, contentType, up.Data)
	if err != nil {
		return nil, domain.WrapError(domain.ErrService, "failed to stage upload", err)
	}
	defer func() {
		// Cleanup must run even when the request context is already
		// canceled. A failed release is logged and swallowed; it never
		// overrides the primary outcome.
		if removeErr := s.staging.Remove(context.WithoutCancel(ctx), s.bucket, key); removeErr != nil {
			s.log.WithContext(ctx).StorageError("remove_staged_upload", removeErr)
		}
	}()

	report, err := s.produceReport(ctx, up, contentType, category)
	if err != nil {
		return nil, err
	}

	domain.Reconcile(report)
	s.log.WithContext(ctx).AnalysisEvent("report_produced", category, len(report.Ingredients))
	return report, nil
}

func (s *Service) produceReport(ctx context.Context, up Upload, contentType, category string) (*domain.ProductReport, error) {
	if s.extractor == nil {
		return s.analyzer.AnalyzeImage(ctx, agent.Attachment{
			MIMEType: contentType,
			Data:     up.Data,
			Filename: up.Filename,
		}, category)
	}

	text, err := s.extractor.ExtractText(ctx, up.Data, contentType)
	if err != nil {
		return nil, domain.WrapError(domain.ErrExtraction, "text extraction failed", err)
	}

	ingredients := s.canon.Canonicalize(text)
	s.log.WithContext(ctx).AnalysisEvent("ingredients_canonicalized", category, len(ingredients))
	if len(ingredients) == 0 {
		return nil, domain.NewError(domain.ErrEmptyIngredients, "no ingredients detected")
	}

	return s.analyzer.AnalyzeIngredients(ctx, ingredients, category)
}

// Chat answers a follow-up question against a previously produced report.
func (s *Service) Chat(ctx context.Context, question string, chatCtx domain.ChatContext, category string) (string, error) {
	question = sanitize.Text(question)
	if question == "" {
		return "", domain.NewError(domain.ErrInput, "question is required")
	}
	return s.chat.Answer(ctx, question, chatCtx, category)
}

// logImageMetadata records EXIF capture info when present. Most label
// photos carry none; decode failure is not an error.
func (s *Service) logImageMetadata(ctx context.Context, up Upload) {
	x, err := exif.Decode(bytes.NewReader(up.Data))
	if err != nil {
		return
	}
	if captured, err := x.DateTime(); err == nil {
		s.log.WithContext(ctx).Info("label_image_metadata",
			"filename", up.Filename,
			"captured_at", captured.String(),
		)
	}
}
