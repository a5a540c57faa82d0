package engine

import (
	"context"
	"strings"
	"sync"

	lingua "github.com/pemistahl/lingua-go"
)

// undetermined is returned when no language can be identified.
const undetermined = "und"

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// linguaDetector builds its model set lazily on first use; construction is
// expensive and the detector is safe for concurrent use.
func getDetector() lingua.LanguageDetector {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			Build()
	})
	return detector
}

// LinguaDetector implements Detector with a local statistical model, so
// detection works without a round trip to the upstream engine.
type LinguaDetector struct{}

// NewLinguaDetector creates a local language detector.
func NewLinguaDetector() *LinguaDetector {
	return &LinguaDetector{}
}

// Detect implements Detector.
func (d *LinguaDetector) Detect(_ context.Context, text string) (string, error) {
	sample := strings.TrimSpace(text)
	if sample == "" {
		return undetermined, nil
	}

	detected, exists := getDetector().DetectLanguageOf(sample)
	if !exists {
		return undetermined, nil
	}
	return isoCode(detected), nil
}

// DetectWithConfidence implements Detector.
func (d *LinguaDetector) DetectWithConfidence(_ context.Context, text string, minConfidence float64) (Detection, error) {
	sample := strings.TrimSpace(text)
	if sample == "" {
		return Detection{Language: undetermined}, nil
	}

	values := getDetector().ComputeLanguageConfidenceValues(sample)
	if len(values) == 0 {
		return Detection{Language: undetermined}, nil
	}

	best := values[0]
	result := Detection{
		Language:   isoCode(best.Language()),
		Confidence: best.Value(),
	}
	if result.Confidence < minConfidence {
		result.Language = undetermined
	}
	return result, nil
}

func isoCode(l lingua.Language) string {
	return strings.ToLower(l.IsoCode639_1().String())
}
