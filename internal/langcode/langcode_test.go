package langcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want string
	}{
		{name: "lowercases language", tag: "EN", want: "en"},
		{name: "canonical passes through", tag: "en", want: "en"},
		{name: "script casing fixed", tag: "zh-hans", want: "zh-Hans"},
		{name: "uppercase script fixed", tag: "ZH-HANS", want: "zh-Hans"},
		{name: "underscore separator", tag: "zh_CN", want: "zh-CN"},
		{name: "region uppercased", tag: "pt-br", want: "pt-BR"},
		{name: "auto sentinel", tag: "AUTO", want: Auto},
		{name: "empty", tag: "", want: ""},
		{name: "whitespace trimmed", tag: " en ", want: "en"},
		{name: "unparseable passes through", tag: "not a tag!", want: "not a tag!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.tag)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Normalize(got), "Normalize must be idempotent")
		})
	}
}

func TestDetectScript(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "chinese", text: "你好世界", want: "zh-Hans"},
		{name: "japanese hiragana", text: "こんにちは", want: "ja"},
		{name: "japanese katakana", text: "カタカナ", want: "ja"},
		{name: "korean", text: "안녕하세요", want: "ko"},
		{name: "latin", text: "hello world", want: "en"},
		{name: "empty", text: "", want: "en"},
		// han is checked before kana, so mixed kanji/kana text
		// classifies as Chinese
		{name: "kanji with kana", text: "日本語です", want: "zh-Hans"},
		{name: "latin with korean", text: "hello 안녕", want: "ko"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectScript(tt.text))
		})
	}
}
