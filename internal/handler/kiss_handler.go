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

type kissTranslation struct {
	Text string `json:"text"`
	Src  string `json:"src"`
}

// KissTranslate implements the Kiss Translator request shape. Which of the
// mutually exclusive text and texts fields is present decides whether the
// response is a single object or a batch.
func (s *Server) KissTranslate(c *gin.Context) {
	body, apiErr := payload.Parse(c, payload.ParseOptions{})
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}

	from, apiErr := body.RequireString("from")
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	to, apiErr := body.RequireString("to")
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	texts, hasTexts, apiErr := body.OptionalStringArray("texts")
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	text, hasText, apiErr := body.OptionalString("text")
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}

	fromLang := langcode.Normalize(from)
	toLang := langcode.Normalize(to)

	if hasTexts && len(texts) > 0 {
		translations := make([]kissTranslation, 0, len(texts))
		for _, item := range texts {
			result, err := s.TranslateService.TranslateWithPivot(c.Request.Context(), fromLang, toLang, item, false)
			if err != nil {
				logrus.Errorf("Translation failed: %v", err)
				response.Error(c, app_errors.NewAPIError(app_errors.ErrBadGateway, err.Error()))
				return
			}
			translations = append(translations, kissTranslation{Text: result, Src: from})
		}
		c.JSON(http.StatusOK, gin.H{"translations": translations})
		return
	}

	if hasText {
		result, err := s.TranslateService.TranslateWithPivot(c.Request.Context(), fromLang, toLang, text, false)
		if err != nil {
			logrus.Errorf("Translation failed: %v", err)
			response.Error(c, app_errors.NewAPIError(app_errors.ErrBadGateway, err.Error()))
			return
		}
		c.JSON(http.StatusOK, kissTranslation{Text: result, Src: from})
		return
	}

	response.Error(c, app_errors.NewValidationError(`Either "text" must be provided or "texts" must be a non-empty array`))
}
