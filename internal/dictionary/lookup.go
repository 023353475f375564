package dictionary

import (
	"context"
	"fmt"
	"strings"
)

// Source names the dictionary an entry came from.
type Source string

const (
	SourceDictionaryAPI  Source = "dictionaryapi"
	SourceFreeDictionary Source = "freedictionary"
	SourceWiktionaryREST Source = "wiktionary-rest"
	SourceWiktionaryAPI  Source = "wiktionary-api"
)

// Entry is what a dictionary knows about a term.
type Entry struct {
	Term       string   `json:"term"`
	Lang       string   `json:"lang"`
	Definition string   `json:"definition"`
	Examples   []string `json:"examples"`
	Source     Source   `json:"source"`
}

// Clone returns a deep copy of e.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	out := *e
	out.Examples = append([]string{}, e.Examples...)
	return &out
}

// Lookup finds dictionary entries.
type Lookup interface {
	// Lookup returns the entry for term in lang.
	// It returns ErrNotFound when no source knows the term and
	// ErrLookupFailed (possibly wrapped) when the sources could not be asked.
	Lookup(ctx context.Context, term, lang string) (*Entry, error)
}

// Query is a validated lookup request.
type Query struct {
	Term string
	Lang string
}

// NewQuery trims term and lang and rejects empty values.
func NewQuery(term, lang string) (Query, error) {
	q := Query{Term: strings.TrimSpace(term), Lang: strings.TrimSpace(lang)}
	if q.Term == "" {
		return Query{}, fmt.Errorf("%w: term cannot be empty", ErrInvalidQuery)
	}
	if q.Lang == "" {
		return Query{}, fmt.Errorf("%w: language cannot be empty", ErrInvalidQuery)
	}
	return q, nil
}

// Key identifies the query in a cache. Case is ignored.
func (q Query) Key() string {
	return strings.ToLower(q.Lang) + ":" + strings.ToLower(q.Term)
}
