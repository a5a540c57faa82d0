package handler

import (
	"math/rand"
	"net/http"
	"strings"

	"trans-gate/internal/auth"
	app_errors "trans-gate/internal/errors"
	"trans-gate/internal/langcode"
	"trans-gate/internal/payload"
	"trans-gate/internal/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// deeplxToken extracts the credential for the DeepLX scheme. A bare
// Authorization value counts as the token when no Bearer prefix is present.
func deeplxToken(c *gin.Context) string {
	if authorization := c.GetHeader("Authorization"); authorization != "" {
		if token, ok := strings.CutPrefix(authorization, "Bearer "); ok {
			return token
		}
		return authorization
	}
	return c.Query("token")
}

// DeepLXTranslate implements the DeepLX free-endpoint request shape.
func (s *Server) DeepLXTranslate(c *gin.Context) {
	body, apiErr := payload.Parse(c, payload.ParseOptions{})
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}

	if secret := s.Settings.APIToken(); secret != "" {
		if !auth.TokensEqual(deeplxToken(c), secret) {
			response.Error(c, app_errors.ErrUnauthorized)
			return
		}
	}

	sourceLangInput, _, apiErr := body.OptionalString("source_lang")
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	targetLangRaw, apiErr := body.RequireString("target_lang")
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	text, apiErr := body.RequireString("text")
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}

	sourceLang := langcode.Auto
	if sourceLangInput != "" {
		sourceLang = langcode.Normalize(sourceLangInput)
	}
	targetLang := langcode.Normalize(targetLangRaw)

	result, err := s.TranslateService.TranslateWithPivot(c.Request.Context(), sourceLang, targetLang, text, false)
	if err != nil {
		logrus.Errorf("Translation failed: %v", err)
		response.Error(c, app_errors.NewAPIError(app_errors.ErrBadGateway, err.Error()))
		return
	}

	// The id and method fields are compatibility decoration expected by
	// DeepLX clients.
	c.JSON(http.StatusOK, gin.H{
		"alternatives": []string{},
		"code":         200,
		"data":         result,
		"id":           rand.Int63n(10_000_000_000),
		"method":       "Free",
		"source_lang":  strings.ToUpper(sourceLang),
		"target_lang":  strings.ToUpper(targetLang),
	})
}
