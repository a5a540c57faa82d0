package handler

import (
	"net/http"
	"strings"

	app_errors "trans-gate/internal/errors"
	"trans-gate/internal/langcode"
	"trans-gate/internal/payload"
	"trans-gate/internal/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// languagePair is one supported translation direction.
type languagePair struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Languages lists the languages and directed pairs the backend supports.
func (s *Server) Languages(c *gin.Context) {
	languages, err := s.Engine.SupportedLanguages(c.Request.Context())
	if err != nil {
		logrus.Errorf("Failed to list languages: %v", err)
		response.Error(c, app_errors.NewAPIError(app_errors.ErrBadGateway, err.Error()))
		return
	}

	rawPairs, err := s.Engine.LanguagePairs(c.Request.Context())
	if err != nil {
		logrus.Errorf("Failed to list language pairs: %v", err)
		response.Error(c, app_errors.NewAPIError(app_errors.ErrBadGateway, err.Error()))
		return
	}

	pairs := make([]languagePair, 0, len(rawPairs))
	for _, raw := range rawPairs {
		from, to, ok := strings.Cut(raw, "_")
		if !ok {
			continue
		}
		pairs = append(pairs, languagePair{From: from, To: to})
	}

	c.JSON(http.StatusOK, gin.H{
		"languages": languages,
		"pairs":     pairs,
	})
}

// Detect identifies the language of a piece of text.
func (s *Server) Detect(c *gin.Context) {
	body, apiErr := payload.Parse(c, payload.ParseOptions{})
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}

	text, apiErr := body.RequireString("text")
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}

	minConfidence, hasMin, apiErr := body.OptionalNumber("minConfidence")
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}

	if hasMin {
		detection, err := s.Detector.DetectWithConfidence(c.Request.Context(), text, minConfidence)
		if err != nil {
			logrus.Errorf("Language detection failed: %v", err)
			response.Error(c, app_errors.NewAPIError(app_errors.ErrInternalServer, err.Error()))
			return
		}
		c.JSON(http.StatusOK, detection)
		return
	}

	language, err := s.Detector.Detect(c.Request.Context(), text)
	if err != nil {
		logrus.Errorf("Language detection failed: %v", err)
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInternalServer, err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"language": language})
}

// Translate handles the generic translation operation.
func (s *Server) Translate(c *gin.Context) {
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
	text, apiErr := body.RequireString("text")
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	html, _, apiErr := body.OptionalBool("html")
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}

	result, err := s.TranslateService.TranslateWithPivot(
		c.Request.Context(),
		langcode.Normalize(from),
		langcode.Normalize(to),
		text,
		html,
	)
	if err != nil {
		logrus.Errorf("Translation failed: %v", err)
		response.Error(c, app_errors.NewAPIError(app_errors.ErrBadGateway, err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// TranslateBatch translates an ordered list of texts in one request.
func (s *Server) TranslateBatch(c *gin.Context) {
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
	texts, apiErr := body.RequireStringArray("texts")
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	html, _, apiErr := body.OptionalBool("html")
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}

	source := langcode.Normalize(from)
	target := langcode.Normalize(to)

	results := make([]string, 0, len(texts))
	for _, text := range texts {
		result, err := s.TranslateService.TranslateWithPivot(c.Request.Context(), source, target, text, html)
		if err != nil {
			logrus.Errorf("Batch translation failed: %v", err)
			response.Error(c, app_errors.NewAPIError(app_errors.ErrBadGateway, err.Error()))
			return
		}
		results = append(results, result)
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}
