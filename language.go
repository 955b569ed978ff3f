package srt

import (
	"github.com/abadojack/whatlanggo"
	"golang.org/x/text/language"
)

// DetectLanguage guesses the dominant language of a document's caption text
// by detecting each subtitle individually and taking the most frequent
// result. An empty document yields language.Und.
func DetectLanguage(doc Document) language.Tag {
	if len(doc.Subtitles) == 0 {
		return language.Und
	}

	langMap := make(map[string]int)
	for _, sub := range doc.Subtitles {
		if sub.Text == "" {
			continue
		}
		lang := whatlanggo.DetectLang(sub.Text).Iso6391()
		langMap[lang]++
	}
	if len(langMap) == 0 {
		return language.Und
	}

	var topLang string
	var topCount int
	for lang, count := range langMap {
		if count > topCount {
			topLang = lang
			topCount = count
		}
	}

	return language.All.Make(topLang)
}
