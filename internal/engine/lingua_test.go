package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinguaDetect(t *testing.T) {
	d := NewLinguaDetector()

	language, err := d.Detect(context.Background(), "The quick brown fox jumps over the lazy dog.")
	require.NoError(t, err)
	assert.Equal(t, "en", language)

	language, err = d.Detect(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "und", language)

	language, err = d.Detect(context.Background(), "   \n  ")
	require.NoError(t, err)
	assert.Equal(t, "und", language)
}

func TestLinguaDetectWithConfidence(t *testing.T) {
	d := NewLinguaDetector()

	detection, err := d.DetectWithConfidence(context.Background(), "The quick brown fox jumps over the lazy dog.", 0)
	require.NoError(t, err)
	assert.Equal(t, "en", detection.Language)
	assert.Greater(t, detection.Confidence, 0.0)

	// an impossible floor forces the undetermined result
	detection, err = d.DetectWithConfidence(context.Background(), "The quick brown fox jumps over the lazy dog.", 1.1)
	require.NoError(t, err)
	assert.Equal(t, "und", detection.Language)

	detection, err = d.DetectWithConfidence(context.Background(), "", 0)
	require.NoError(t, err)
	assert.Equal(t, "und", detection.Language)
}
