// Package tokenize splits reading texts into words for the reader view and
// for matching against the vocabulary.
package tokenize

import (
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Token is one word of a text.
type Token struct {
	Text       string `json:"text"`       // as written
	Normalized string `json:"normalized"` // lower-cased for lookups
	Start      int    `json:"start"`      // byte offset into the source text
	End        int    `json:"end"`
}

// Tokenize returns the word-like segments of text, using Unicode word
// boundaries (UAX #29). Punctuation, symbols and whitespace are dropped.
// lang selects the casing rules; an unparseable tag falls back to und.
func Tokenize(text, lang string) []Token {
	caser := newCaser(lang)

	var (
		tokens []Token
		word   string
		offset int
		state  = -1
	)
	rest := text
	for len(rest) > 0 {
		word, rest, state = uniseg.FirstWordInString(rest, state)
		start := offset
		offset += len(word)

		if !isWordLike(word) {
			continue
		}
		tokens = append(tokens, Token{
			Text:       word,
			Normalized: caser.String(word),
			Start:      start,
			End:        offset,
		})
	}
	return tokens
}

// Normalize lower-cases term with the casing rules for lang, so a vocabulary
// term and a token from the same language compare equal.
func Normalize(term, lang string) string {
	return newCaser(lang).String(term)
}

func newCaser(lang string) cases.Caser {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.Und
	}
	return cases.Lower(tag)
}

// isWordLike reports whether a segment contains a letter or a number,
// mirroring the isWordLike flag of word segmenters.
func isWordLike(segment string) bool {
	for _, r := range segment {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}
