// Package engine defines the narrow contracts this gateway consumes from the
// external translation engine, together with a remote HTTP implementation and
// a local language detector.
package engine

import "context"

// Engine is the canonical translate operation. How the engine pivots between
// languages, loads models, or schedules workers is invisible to this layer.
type Engine interface {
	// Translate translates text from source to target. Source may be
	// "auto". When markup is true the text is treated as HTML/XML and tag
	// structure is preserved.
	Translate(ctx context.Context, source, target, text string, markup bool) (string, error)

	// SupportedLanguages lists the canonical tags the engine can handle.
	SupportedLanguages(ctx context.Context) ([]string, error)

	// LanguagePairs lists supported directions as "<from>_<to>" strings.
	LanguagePairs(ctx context.Context) ([]string, error)
}

// Detection is the result of a confidence-aware language detection.
type Detection struct {
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
}

// Detector identifies the language of a text sample.
type Detector interface {
	Detect(ctx context.Context, text string) (string, error)

	// DetectWithConfidence reports the best candidate with its confidence.
	// A candidate below minConfidence is reported as "und".
	DetectWithConfidence(ctx context.Context, text string, minConfidence float64) (Detection, error)
}
