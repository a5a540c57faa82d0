// Package langcode maps protocol-specific language tags onto one canonical
// BCP-47-style tag space.
package langcode

import (
	"strings"

	"golang.org/x/text/language"
)

// Auto is the sentinel tag requesting source-language auto-detection.
const Auto = "auto"

// Normalize canonicalizes an arbitrary language tag: casing is normalized
// ("EN" -> "en", "zh-hans" -> "zh-Hans") and underscore separators are
// accepted ("zh_CN" -> "zh-CN"). Tags that cannot be parsed pass through
// unchanged, so genuinely invalid tags are rejected by the translation
// engine rather than the gateway. Normalize is idempotent on canonical tags.
func Normalize(tag string) string {
	trimmed := strings.TrimSpace(tag)
	if trimmed == "" {
		return trimmed
	}
	if strings.EqualFold(trimmed, Auto) {
		return Auto
	}

	parsed, err := language.Parse(trimmed)
	if err != nil {
		return trimmed
	}
	return parsed.String()
}
