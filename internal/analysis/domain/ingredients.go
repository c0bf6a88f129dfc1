package domain

import "strings"

// CanonicalizerConfig controls how raw extracted label text is cleaned.
// The strip and exclusion lists are configuration rather than constants so
// the pipeline can adapt to other label layouts.
type CanonicalizerConfig struct {
	// StripTerms are removed from the text before splitting, e.g. the
	// "Ingredients:" header and product-type words that OCR bleeds into
	// the ingredient run-on.
	StripTerms []string
	// ExcludePrefixes drop any segment starting with one of these
	// (case-insensitive). Used for known OCR artifacts.
	ExcludePrefixes []string
	// MinLength drops segments at or below this trimmed length.
	MinLength int
}

// DefaultCanonicalizerConfig matches the shampoo/conditioner labels the
// system was originally tuned on.
func DefaultCanonicalizerConfig() CanonicalizerConfig {
	return CanonicalizerConfig{
		StripTerms:      []string{"Ingredients:", "Shampoo", "Conditioner"},
		ExcludePrefixes: []string{"cu dove"},
		MinLength:       3,
	}
}

// Canonicalizer normalizes raw OCR text into a deduplicated ordered list
// of ingredient names.
type Canonicalizer struct {
	cfg CanonicalizerConfig
}

// NewCanonicalizer creates a canonicalizer with the given configuration.
// A zero MinLength falls back to the default threshold.
func NewCanonicalizer(cfg CanonicalizerConfig) Canonicalizer {
	if cfg.MinLength == 0 {
		cfg.MinLength = 3
	}
	return Canonicalizer{cfg: cfg}
}

// Canonicalize turns raw extracted text into clean ingredient names.
// Guarantees: no empty entries, no case-insensitive duplicates, no entries
// at or below the length threshold, first-seen order preserved. An empty
// result is valid; the caller decides whether that fails the request.
func (c Canonicalizer) Canonicalize(raw string) []string {
	text := strings.ReplaceAll(raw, "\n", " ")
	for _, term := range c.cfg.StripTerms {
		text = strings.ReplaceAll(text, term, "")
	}

	segments := strings.Split(text, ",")

	cleaned := make([]string, 0, len(segments))
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		seg = strings.ReplaceAll(seg, ".", "")
		seg = strings.Join(strings.Fields(seg), " ")

		if len(seg) <= c.cfg.MinLength {
			continue
		}
		if c.excluded(seg) {
			continue
		}
		cleaned = append(cleaned, seg)
	}

	seen := make(map[string]struct{}, len(cleaned))
	unique := make([]string, 0, len(cleaned))
	for _, ing := range cleaned {
		key := strings.ToLower(ing)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, ing)
	}

	return unique
}

func (c Canonicalizer) excluded(segment string) bool {
	lower := strings.ToLower(segment)
	for _, prefix := range c.cfg.ExcludePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}
