package langcode

// Script-range source-language detection for protocols that omit an explicit
// source language. The ranges are checked in a fixed order: CJK Unified
// Ideographs before Hiragana/Katakana before Hangul Syllables, so mixed
// Chinese/Japanese text classifies as Chinese. Text matching none of the
// ranges defaults to English.

func containsHan(text string) bool {
	for _, r := range text {
		if r >= 0x4E00 && r <= 0x9FFF {
			return true
		}
	}
	return false
}

func containsKana(text string) bool {
	for _, r := range text {
		if (r >= 0x3040 && r <= 0x309F) || (r >= 0x30A0 && r <= 0x30FF) {
			return true
		}
	}
	return false
}

func containsHangul(text string) bool {
	for _, r := range text {
		if r >= 0xAC00 && r <= 0xD7AF {
			return true
		}
	}
	return false
}

// DetectScript classifies text by Unicode code-point ranges and returns the
// canonical tag of the first matching script.
func DetectScript(text string) string {
	switch {
	case containsHan(text):
		return "zh-Hans"
	case containsKana(text):
		return "ja"
	case containsHangul(text):
		return "ko"
	default:
		return "en"
	}
}
