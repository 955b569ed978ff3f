package srt

import (
	"testing"

	"golang.org/x/text/language"
)

func TestDetectLanguage(t *testing.T) {
	doc := Document{Subtitles: []Subtitle{
		{Text: "Hello, world!"},
		{Text: "こんにちは、世界!"},
		{Text: "こんにちは、世界!"},
		{Text: "Привет, мир!"},
	}}

	if lang := DetectLanguage(doc); lang != language.Japanese {
		t.Errorf("expected ja, got %s", lang)
	}
}

func TestDetectLanguageEmptyDocument(t *testing.T) {
	if lang := DetectLanguage(Document{}); lang != language.Und {
		t.Errorf("expected und, got %s", lang)
	}

	onlyEmptyText := Document{Subtitles: []Subtitle{{Number: 1}}}
	if lang := DetectLanguage(onlyEmptyText); lang != language.Und {
		t.Errorf("expected und, got %s", lang)
	}
}
