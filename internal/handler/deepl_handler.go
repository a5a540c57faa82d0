package handler

import (
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

// bcp47ToDeeplLang maps canonical tags to DeepL's language identifiers for the
// detected-source echo.
var bcp47ToDeeplLang = map[string]string{
	"no":      "NB",
	"zh-Hans": "ZH",
	"zh-CN":   "ZH-CN",
	"zh-Hant": "ZH-TW",
	"zh-TW":   "ZH-TW",
}

type deeplTranslation struct {
	DetectedSourceLanguage string `json:"detected_source_language"`
	Text                   string `json:"text"`
}

// deeplToken extracts the credential from an Authorization header using
// DeepL's own scheme. The vendor prefix wins over Bearer.
func deeplToken(authorization string) string {
	if authorization == "" {
		return ""
	}
	if token, ok := strings.CutPrefix(authorization, "DeepL-Auth-Key "); ok {
		return token
	}
	return strings.TrimPrefix(authorization, "Bearer ")
}

// DeepLTranslate implements the DeepL v2 translate request shape.
func (s *Server) DeepLTranslate(c *gin.Context) {
	body, apiErr := payload.Parse(c, payload.ParseOptions{})
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}

	if secret := s.Settings.APIToken(); secret != "" {
		token := deeplToken(c.GetHeader("Authorization"))
		if !auth.TokensEqual(token, secret) {
			response.Error(c, app_errors.ErrUnauthorized)
			return
		}
	}

	texts, _, apiErr := body.RequireStringOrArray("text")
	if apiErr != nil {
		response.Error(c, apiErr)
		return
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
	tagHandling, _, apiErr := body.OptionalString("tag_handling")
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}

	sourceLang := langcode.Auto
	if sourceLangInput != "" {
		sourceLang = langcode.Normalize(sourceLangInput)
	}
	targetLang := langcode.Normalize(targetLangRaw)
	isHTML := tagHandling == "html" || tagHandling == "xml"

	translations := make([]deeplTranslation, 0, len(texts))
	for _, item := range texts {
		result, err := s.TranslateService.TranslateWithPivot(c.Request.Context(), sourceLang, targetLang, item, isHTML)
		if err != nil {
			logrus.Errorf("Translation failed: %v", err)
			response.Error(c, app_errors.NewAPIError(app_errors.ErrBadGateway, err.Error()))
			return
		}

		detectedLang := sourceLangInput
		if detectedLang == "" {
			if mapped, ok := bcp47ToDeeplLang[sourceLang]; ok {
				detectedLang = mapped
			} else {
				detectedLang = strings.ToUpper(sourceLang)
			}
		}

		translations = append(translations, deeplTranslation{
			DetectedSourceLanguage: detectedLang,
			Text:                   result,
		})
	}

	c.JSON(http.StatusOK, gin.H{"translations": translations})
}
