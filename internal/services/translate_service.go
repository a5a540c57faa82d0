// Package services contains the canonical translate operation that every
// protocol adapter funnels into.
package services

import (
	"context"
	"strconv"

	"trans-gate/internal/cache"
	"trans-gate/internal/engine"
)

// TranslateService puts the result cache in front of the external translation
// engine. Every adapter calls TranslateWithPivot with canonical language tags.
type TranslateService struct {
	engine engine.Engine
	cache  *cache.ResultCache
}

// NewTranslateService creates the canonical translate service.
func NewTranslateService(e engine.Engine, resultCache *cache.ResultCache) *TranslateService {
	return &TranslateService{
		engine: e,
		cache:  resultCache,
	}
}

// TranslateWithPivot translates text through the canonical
// (source, target, text, markup) operation, consulting the result cache first.
// Cache writes are idempotent, so an orphaned write after client disconnect
// is harmless.
func (s *TranslateService) TranslateWithPivot(ctx context.Context, source, target, text string, markup bool) (string, error) {
	args := []string{source, target, text, strconv.FormatBool(markup)}

	if cached, hit := s.cache.Lookup(args...); hit {
		return cached, nil
	}

	result, err := s.engine.Translate(ctx, source, target, text, markup)
	if err != nil {
		return "", err
	}

	s.cache.Store(result, args...)
	return result, nil
}
