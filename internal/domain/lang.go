package domain

import (
	"strings"

	"golang.org/x/text/language"
)

// NormalizeLang parses a BCP 47 language tag and returns its canonical form,
// so "ZH-hans" and "zh-Hans" are stored the same way.
func NormalizeLang(lang string) (string, error) {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return "", NewValidationError("lang", "cannot be empty")
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return "", NewValidationError("lang", "is not a valid language tag")
	}
	return tag.String(), nil
}
