package handler

import (
	"net/http"

	"trans-gate/internal/auth"
	app_errors "trans-gate/internal/errors"
	"trans-gate/internal/langcode"
	"trans-gate/internal/payload"
	"trans-gate/internal/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type immeTranslation struct {
	DetectedSourceLang string `json:"detected_source_lang"`
	Text               string `json:"text"`
}

// ImmeTranslate implements the Immersive-Translate custom-API request shape.
// Engine failures on individual items fall back to the original text so one
// bad paragraph cannot sink a whole page.
func (s *Server) ImmeTranslate(c *gin.Context) {
	body, apiErr := payload.Parse(c, payload.ParseOptions{})
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}

	if secret := s.Settings.APIToken(); secret != "" {
		if !auth.TokensEqual(c.Query("token"), secret) {
			response.Error(c, app_errors.ErrUnauthorized)
			return
		}
	}

	targetLangRaw, apiErr := body.RequireString("target_lang")
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	sourceLangInput, _, apiErr := body.OptionalString("source_lang")
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	textList, apiErr := body.RequireStringArray("text_list")
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}

	targetLang := langcode.Normalize(targetLangRaw)

	translations := make([]immeTranslation, 0, len(textList))
	for i, text := range textList {
		if text == "" {
			translations = append(translations, immeTranslation{
				DetectedSourceLang: sourceLangInput,
				Text:               "",
			})
			continue
		}

		result, err := s.TranslateService.TranslateWithPivot(c.Request.Context(), langcode.Auto, targetLang, text, false)
		if err != nil {
			logrus.Errorf("Imme translation failed at index %d: %v", i, err)
			result = text
		}

		translations = append(translations, immeTranslation{
			DetectedSourceLang: sourceLangInput,
			Text:               result,
		})
	}

	c.JSON(http.StatusOK, gin.H{"translations": translations})
}
