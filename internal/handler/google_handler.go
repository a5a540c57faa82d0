package handler

import (
	"net/http"

	app_errors "trans-gate/internal/errors"
	"trans-gate/internal/langcode"
	"trans-gate/internal/payload"
	"trans-gate/internal/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// bcp47ToGoogleLang maps canonical tags back to Google's legacy region codes.
var bcp47ToGoogleLang = map[string]string{
	"zh-Hans": "zh-CN",
	"zh-Hant": "zh-TW",
}

type googleTranslation struct {
	TranslatedText         string `json:"translatedText"`
	DetectedSourceLanguage string `json:"detectedSourceLanguage,omitempty"`
}

// GoogleTranslate implements the Google Translate v2 request shape.
func (s *Server) GoogleTranslate(c *gin.Context) {
	body, apiErr := payload.Parse(c, payload.ParseOptions{})
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}

	queries, _, apiErr := body.RequireStringOrArray("q")
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	source, apiErr := body.RequireString("source")
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	target, apiErr := body.RequireString("target")
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	format, _, apiErr := body.OptionalString("format")
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}

	sourceTag := langcode.Normalize(source)
	targetTag := langcode.Normalize(target)
	isHTML := format == "html"

	translations := make([]googleTranslation, 0, len(queries))
	for _, query := range queries {
		result, err := s.TranslateService.TranslateWithPivot(c.Request.Context(), sourceTag, targetTag, query, isHTML)
		if err != nil {
			logrus.Errorf("Translation failed: %v", err)
			response.Error(c, app_errors.NewAPIError(app_errors.ErrBadGateway, err.Error()))
			return
		}
		translations = append(translations, googleTranslation{
			TranslatedText:         result,
			DetectedSourceLanguage: source,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"translations": translations},
	})
}

// GoogleTranslateSingle implements the legacy translate_a/single GET endpoint
// used by browser extensions. The nested-array response shape is part of the
// protocol and must stay byte-compatible.
func (s *Server) GoogleTranslateSingle(c *gin.Context) {
	sl := c.Query("sl")
	if sl == "" {
		sl = langcode.Auto
	}
	tl := c.Query("tl")
	q := c.Query("q")

	if tl == "" || q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing tl or q query parameter"})
		return
	}

	sourceTag := langcode.Normalize(sl)
	targetTag := langcode.Normalize(tl)

	result, err := s.TranslateService.TranslateWithPivot(c.Request.Context(), sourceTag, targetTag, q, false)
	if err != nil {
		logrus.Errorf("Translation failed: %v", err)
		response.Error(c, app_errors.NewAPIError(app_errors.ErrBadGateway, err.Error()))
		return
	}

	detectedLang := sourceTag
	if mapped, ok := bcp47ToGoogleLang[sourceTag]; ok {
		detectedLang = mapped
	}

	c.JSON(http.StatusOK, []any{
		[]any{[]any{result, q, nil, nil, 1}},
		nil,
		detectedLang,
		nil,
		nil,
		nil,
		nil,
		[]any{},
	})
}
