package webdict

import (
	"context"
	"net/url"
	"strings"

	"github.com/phrazzld/leflux-api/internal/dictionary"
)

// maxExamples bounds the examples kept from one entry.
const maxExamples = 3

// entriesPayload is the dictionaryapi.dev response, shared by its mirrors.
type entriesPayload []struct {
	Meanings []struct {
		Definitions []struct {
			Definition string `json:"definition"`
			Example    string `json:"example"`
		} `json:"definitions"`
	} `json:"meanings"`
}

func (c *Client) entriesAPI(base string) func(ctx context.Context, term, lang string) (*dictionary.Entry, error) {
	return func(ctx context.Context, term, lang string) (*dictionary.Entry, error) {
		endpoint := base + "/api/v2/entries/" + url.PathEscape(lang) + "/" + url.PathEscape(term)

		var payload entriesPayload
		if err := c.getJSON(ctx, endpoint, &payload); err != nil {
			return nil, err
		}
		if len(payload) == 0 || len(payload[0].Meanings) == 0 {
			return nil, errMiss
		}

		defs := payload[0].Meanings[0].Definitions
		if len(defs) == 0 || strings.TrimSpace(defs[0].Definition) == "" {
			return nil, errMiss
		}
		entry := &dictionary.Entry{Definition: strings.TrimSpace(defs[0].Definition)}
		for _, d := range defs {
			entry.Examples = appendExample(entry.Examples, d.Example)
		}
		return entry, nil
	}
}

// wiktionaryDefinitions is the REST definition payload, keyed by language.
type wiktionaryDefinitions map[string][]struct {
	Definitions []struct {
		Definition string   `json:"definition"`
		Examples   []string `json:"examples"`
	} `json:"definitions"`
}

func (c *Client) wiktionaryREST(base string) func(ctx context.Context, term, lang string) (*dictionary.Entry, error) {
	return func(ctx context.Context, term, lang string) (*dictionary.Entry, error) {
		endpoint := wiktionaryBase(base, lang) + "/api/rest_v1/page/definition/" +
			url.PathEscape(term) + "?redirect=true"

		var payload wiktionaryDefinitions
		if err := c.getJSON(ctx, endpoint, &payload); err != nil {
			return nil, err
		}
		usages := payload[lang]
		if len(usages) == 0 || len(usages[0].Definitions) == 0 {
			return nil, errMiss
		}

		first := usages[0].Definitions[0]
		definition := stripHTML(first.Definition)
		if definition == "" {
			return nil, errMiss
		}
		entry := &dictionary.Entry{Definition: definition}
		for _, ex := range first.Examples {
			entry.Examples = appendExample(entry.Examples, stripHTML(ex))
		}
		return entry, nil
	}
}

// extractPayload is the action API query result for prop=extracts.
type extractPayload struct {
	Query struct {
		Pages map[string]struct {
			Extract string `json:"extract"`
		} `json:"pages"`
	} `json:"query"`
}

// wiktionaryAPI reads the plain-text intro of the term's page. The first
// line is taken as the definition and the next two as examples.
func (c *Client) wiktionaryAPI(base string) func(ctx context.Context, term, lang string) (*dictionary.Entry, error) {
	return func(ctx context.Context, term, lang string) (*dictionary.Entry, error) {
		params := url.Values{
			"action":      {"query"},
			"format":      {"json"},
			"prop":        {"extracts"},
			"titles":      {term},
			"redirects":   {"1"},
			"explaintext": {"1"},
			"exintro":     {"1"},
		}
		endpoint := wiktionaryBase(base, lang) + "/w/api.php?" + params.Encode()

		var payload extractPayload
		if err := c.getJSON(ctx, endpoint, &payload); err != nil {
			return nil, err
		}

		for _, page := range payload.Query.Pages {
			var lines []string
			for _, line := range strings.Split(page.Extract, "\n") {
				if line = strings.TrimSpace(line); line != "" {
					lines = append(lines, line)
				}
			}
			if len(lines) == 0 {
				continue
			}
			entry := &dictionary.Entry{Definition: lines[0]}
			for _, ex := range lines[1:min(len(lines), 3)] {
				entry.Examples = appendExample(entry.Examples, ex)
			}
			return entry, nil
		}
		return nil, errMiss
	}
}

// wiktionaryBase fills the {lang} subdomain placeholder.
func wiktionaryBase(base, lang string) string {
	return strings.ReplaceAll(base, "{lang}", lang)
}

func appendExample(examples []string, example string) []string {
	example = strings.TrimSpace(example)
	if example == "" || len(examples) >= maxExamples {
		return examples
	}
	return append(examples, example)
}
