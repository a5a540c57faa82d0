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

// The selection-translator protocol names languages in Chinese. Unknown names
// pass through unchanged in both directions.
var hcfyLangToBCP47 = map[string]string{
	"中文(简体)": "zh-Hans",
	"中文(繁体)": "zh-Hant",
	"英语":     "en",
	"日语":     "ja",
	"韩语":     "ko",
	"法语":     "fr",
	"德语":     "de",
	"西班牙语":   "es",
	"俄语":     "ru",
	"意大利语":   "it",
	"葡萄牙语":   "pt",
}

var bcp47ToHcfyLang = map[string]string{
	"zh-Hans": "中文(简体)",
	"zh-CN":   "中文(简体)",
	"zh-Hant": "中文(繁体)",
	"zh-TW":   "中文(繁体)",
	"en":      "英语",
	"ja":      "日语",
	"ko":      "韩语",
	"fr":      "法语",
	"de":      "德语",
	"es":      "西班牙语",
	"ru":      "俄语",
	"it":      "意大利语",
	"pt":      "葡萄牙语",
}

func hcfyLangName(tag string) string {
	if name, ok := bcp47ToHcfyLang[tag]; ok {
		return name
	}
	return tag
}

func hcfyLangTag(name string) string {
	if tag, ok := hcfyLangToBCP47[name]; ok {
		return tag
	}
	return name
}

// HcfyTranslate implements the selection-translator request shape. The input
// is one string of newline-separated paragraphs, translated line by line.
func (s *Server) HcfyTranslate(c *gin.Context) {
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
	destination, apiErr := body.RequireStringArray("destination")
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	sourceInput, _, apiErr := body.OptionalString("source")
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}

	if len(destination) == 0 {
		response.Error(c, app_errors.NewValidationError(`"destination" must contain at least one item`))
		return
	}

	sourceLang := langcode.Auto
	if sourceInput != "" {
		sourceLang = hcfyLangTag(sourceInput)
	}

	targetLang := hcfyLangTag(destination[0])

	detectedSourceLang := sourceLang
	if sourceLang == langcode.Auto {
		detectedSourceLang = langcode.DetectScript(text)
	}

	// Same-language tie-break: when the detected source matches the first
	// destination and an alternative exists, translate into that instead.
	if detectedSourceLang == targetLang && len(destination) > 1 {
		targetLang = hcfyLangTag(destination[1])
	}

	paragraphs := strings.Split(text, "\n")
	results := make([]string, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		if strings.TrimSpace(paragraph) == "" {
			results = append(results, "")
			continue
		}

		result, err := s.TranslateService.TranslateWithPivot(c.Request.Context(), detectedSourceLang, targetLang, paragraph, false)
		if err != nil {
			logrus.Errorf("Translation failed: %v", err)
			response.Error(c, app_errors.NewAPIError(app_errors.ErrBadGateway, err.Error()))
			return
		}
		results = append(results, result)
	}

	c.JSON(http.StatusOK, gin.H{
		"text":   text,
		"from":   hcfyLangName(detectedSourceLang),
		"to":     destination[0],
		"result": results,
	})
}
