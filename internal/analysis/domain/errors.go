package domain

import "fmt"

// ErrorKind classifies analysis failures. Every failure the pipeline can
// produce maps to exactly one kind; the HTTP layer maps kinds to statuses.
type ErrorKind string

const (
	// ErrInput — no image supplied, or image unreadable/unsupported.
	ErrInput ErrorKind = "input"
	// ErrExtraction — OCR or native-vision extraction failed.
	ErrExtraction ErrorKind = "extraction"
	// ErrEmptyIngredients — canonicalization yielded zero ingredients.
	ErrEmptyIngredients ErrorKind = "empty_ingredients"
	// ErrService — the AI capability was unreachable, timed out, or failed.
	ErrService ErrorKind = "service"
	// ErrMalformedReport — the AI response did not conform to the report schema.
	ErrMalformedReport ErrorKind = "malformed_report"
	// ErrChat — the follow-up call failed; never affects prior reports.
	ErrChat ErrorKind = "chat"
)

// AnalysisError is the uniform failure shape for the analysis pipeline.
type AnalysisError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AnalysisError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// NewError creates a typed analysis error.
func NewError(kind ErrorKind, message string) *AnalysisError {
	return &AnalysisError{Kind: kind, Message: message}
}

// WrapError creates a typed analysis error around an underlying cause.
func WrapError(kind ErrorKind, message string, err error) *AnalysisError {
	return &AnalysisError{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind from an error, or "" if it is not an AnalysisError.
func KindOf(err error) ErrorKind {
	if e, ok := err.(*AnalysisError); ok {
		return e.Kind
	}
	return ""
}
