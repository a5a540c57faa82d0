package engine

import (
	"context"
	"errors"
	"sync"
)

// ErrMockFailure is returned by a MockEngine for texts registered via FailOn.
var ErrMockFailure = errors.New("mock engine failure")

// MockEngine is a deterministic Engine for tests. It prefixes translated
// text with "mock:" and can be told to fail for specific inputs.
type MockEngine struct {
	mu        sync.Mutex
	failTexts map[string]struct{}
	calls     []string

	Languages []string
	Pairs     []string
}

// NewMockEngine creates a mock engine with a small default language set.
func NewMockEngine() *MockEngine {
	return &MockEngine{
		failTexts: make(map[string]struct{}),
		Languages: []string{"en", "zh-Hans", "ja", "ko"},
		Pairs:     []string{"en_zh-Hans", "zh-Hans_en", "en_ja", "ja_en"},
	}
}

// FailOn makes Translate fail for the given input text.
func (m *MockEngine) FailOn(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failTexts[text] = struct{}{}
}

// Calls returns the texts passed to Translate so far, in order.
func (m *MockEngine) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// Translate implements Engine.
func (m *MockEngine) Translate(_ context.Context, _, _, text string, _ bool) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, text)
	if _, shouldFail := m.failTexts[text]; shouldFail {
		return "", ErrMockFailure
	}
	return "mock:" + text, nil
}

// SupportedLanguages implements Engine.
func (m *MockEngine) SupportedLanguages(_ context.Context) ([]string, error) {
	return m.Languages, nil
}

// LanguagePairs implements Engine.
func (m *MockEngine) LanguagePairs(_ context.Context) ([]string, error) {
	return m.Pairs, nil
}

// MockDetector is a deterministic Detector for tests.
type MockDetector struct {
	Result     string
	Confidence float64
}

// Detect implements Detector.
func (d *MockDetector) Detect(_ context.Context, _ string) (string, error) {
	return d.Result, nil
}

// DetectWithConfidence implements Detector.
func (d *MockDetector) DetectWithConfidence(_ context.Context, _ string, minConfidence float64) (Detection, error) {
	language := d.Result
	if d.Confidence < minConfidence {
		language = undetermined
	}
	return Detection{Language: language, Confidence: d.Confidence}, nil
}
