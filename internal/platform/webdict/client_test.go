package webdict

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/phrazzld/leflux-api/internal/config"
	"github.com/phrazzld/leflux-api/internal/dictionary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSources serves each public dictionary under its own path prefix.
// Unset handlers answer 404.
type fakeSources struct {
	dictAPI, freeDict, wiktREST, wiktAPI http.HandlerFunc

	mu   sync.Mutex
	hits []string
}

func (f *fakeSources) start(t *testing.T) *httptest.Server {
	t.Helper()

	route := func(name string, h *http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			f.hits = append(f.hits, name+" "+r.URL.Path)
			f.mu.Unlock()

			assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
			if *h == nil {
				http.NotFound(w, r)
				return
			}
			(*h)(w, r)
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/dict/api/v2/entries/{lang}/{term}", route("dict", &f.dictAPI))
	mux.HandleFunc("/free/api/v2/entries/{lang}/{term}", route("free", &f.freeDict))
	mux.HandleFunc("/wikt/{lang}/api/rest_v1/page/definition/{term}", route("rest", &f.wiktREST))
	mux.HandleFunc("/wikt/{lang}/w/api.php", route("api", &f.wiktAPI))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func (f *fakeSources) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.hits...)
}

func testConfig(srv *httptest.Server) config.DictionaryConfig {
	return config.DictionaryConfig{
		Enabled:           true,
		Timeout:           2 * time.Second,
		DictionaryAPIURL:  srv.URL + "/dict",
		FreeDictionaryURL: srv.URL + "/free/",
		WiktionaryURL:     srv.URL + "/wikt/{lang}",
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeJSON(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}
}

func TestLookupDictionaryAPI(t *testing.T) {
	t.Parallel()

	fake := &fakeSources{dictAPI: writeJSON(`[{"word":"gato","meanings":[{"definitions":[
		{"definition":" Mamífero felino doméstico. ","example":"O gato dorme."},
		{"definition":"Pessoa ágil.","example":""},
		{"definition":"Erro.","example":"Que gato!"}]}]}]`)}
	srv := fake.start(t)

	entry, err := NewClient(testConfig(srv), testLogger()).Lookup(context.Background(), " gato ", "pt-BR")
	require.NoError(t, err)

	assert.Equal(t, &dictionary.Entry{
		Term:       "gato",
		Lang:       "pt-BR",
		Definition: "Mamífero felino doméstico.",
		Examples:   []string{"O gato dorme.", "Que gato!"},
		Source:     dictionary.SourceDictionaryAPI,
	}, entry)
	assert.Equal(t, []string{"dict /dict/api/v2/entries/pt/gato"}, fake.calls())
}

func TestLookupFallsThroughSources(t *testing.T) {
	t.Parallel()

	t.Run("free dictionary after a miss", func(t *testing.T) {
		t.Parallel()
		fake := &fakeSources{
			dictAPI:  writeJSON(`[]`),
			freeDict: writeJSON(`[{"meanings":[{"definitions":[{"definition":"A dog."}]}]}]`),
		}
		srv := fake.start(t)

		entry, err := NewClient(testConfig(srv), testLogger()).Lookup(context.Background(), "dog", "en")
		require.NoError(t, err)
		assert.Equal(t, dictionary.SourceFreeDictionary, entry.Source)
		assert.Equal(t, "A dog.", entry.Definition)
		assert.Empty(t, entry.Examples)
	})

	t.Run("wiktionary definitions strip markup", func(t *testing.T) {
		t.Parallel()
		fake := &fakeSources{wiktREST: writeJSON(`{
			"en":[{"definitions":[{"definition":"wrong language"}]}],
			"pt":[{"partOfSpeech":"Noun","definitions":[{
				"definition":"<a href=\"/wiki/saudade\">Sentimento</a> de falta &amp; nostalgia",
				"examples":["<i>Tenho</i> saudade.",""]}]}]}`)}
		srv := fake.start(t)

		entry, err := NewClient(testConfig(srv), testLogger()).Lookup(context.Background(), "saudade", "pt")
		require.NoError(t, err)
		assert.Equal(t, dictionary.SourceWiktionaryREST, entry.Source)
		assert.Equal(t, "Sentimento de falta & nostalgia", entry.Definition)
		assert.Equal(t, []string{"Tenho saudade."}, entry.Examples)
		assert.Equal(t, []string{
			"dict /dict/api/v2/entries/pt/saudade",
			"free /free/api/v2/entries/pt/saudade",
			"rest /wikt/pt/api/rest_v1/page/definition/saudade",
		}, fake.calls())
	})

	t.Run("wiktionary page extract last", func(t *testing.T) {
		t.Parallel()
		fake := &fakeSources{
			wiktREST: writeJSON(`{"de":[]}`),
			wiktAPI: func(w http.ResponseWriter, r *http.Request) {
				q := r.URL.Query()
				assert.Equal(t, "query", q.Get("action"))
				assert.Equal(t, "extracts", q.Get("prop"))
				assert.Equal(t, "Hund", q.Get("titles"))
				writeJSON(`{"query":{"pages":{"123":{"extract":
					"Haustier aus der Familie der Hunde.\n\n Der Hund bellt. \nEin großer Hund.\nDritte Zeile."}}}}`)(w, r)
			},
		}
		srv := fake.start(t)

		entry, err := NewClient(testConfig(srv), testLogger()).Lookup(context.Background(), "Hund", "de-AT")
		require.NoError(t, err)
		assert.Equal(t, dictionary.SourceWiktionaryAPI, entry.Source)
		assert.Equal(t, "de-AT", entry.Lang)
		assert.Equal(t, "Haustier aus der Familie der Hunde.", entry.Definition)
		assert.Equal(t, []string{"Der Hund bellt.", "Ein großer Hund."}, entry.Examples)
	})
}

func TestLookupNotFound(t *testing.T) {
	t.Parallel()

	fake := &fakeSources{wiktAPI: writeJSON(`{"query":{"pages":{"-1":{"missing":""}}}}`)}
	srv := fake.start(t)

	_, err := NewClient(testConfig(srv), testLogger()).Lookup(context.Background(), "xyzzy", "en")
	require.ErrorIs(t, err, dictionary.ErrNotFound)
	assert.NotErrorIs(t, err, dictionary.ErrLookupFailed)
	assert.Len(t, fake.calls(), 4)
}

func TestLookupSourceFailures(t *testing.T) {
	t.Parallel()

	broken := func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}

	t.Run("failure then hit", func(t *testing.T) {
		t.Parallel()
		fake := &fakeSources{
			dictAPI:  broken,
			freeDict: writeJSON(`not json`),
			wiktREST: writeJSON(`{"fr":[{"definitions":[{"definition":"Petit félin."}]}]}`),
		}
		srv := fake.start(t)

		entry, err := NewClient(testConfig(srv), testLogger()).Lookup(context.Background(), "chat", "fr")
		require.NoError(t, err)
		assert.Equal(t, dictionary.SourceWiktionaryREST, entry.Source)
	})

	t.Run("failure and misses", func(t *testing.T) {
		t.Parallel()
		fake := &fakeSources{dictAPI: broken}
		srv := fake.start(t)

		_, err := NewClient(testConfig(srv), testLogger()).Lookup(context.Background(), "chat", "fr")
		require.ErrorIs(t, err, dictionary.ErrLookupFailed)
		assert.Contains(t, err.Error(), "502")
	})

	t.Run("cancelled context stops the chain", func(t *testing.T) {
		t.Parallel()
		fake := &fakeSources{}
		srv := fake.start(t)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewClient(testConfig(srv), testLogger()).Lookup(ctx, "chat", "fr")
		require.ErrorIs(t, err, dictionary.ErrLookupFailed)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, fake.calls())
	})
}

func TestLookupSkipsUnconfiguredSources(t *testing.T) {
	t.Parallel()

	fake := &fakeSources{}
	srv := fake.start(t)
	cfg := testConfig(srv)
	cfg.FreeDictionaryURL = ""
	cfg.WiktionaryURL = ""

	_, err := NewClient(cfg, testLogger()).Lookup(context.Background(), "perro", "es")
	require.ErrorIs(t, err, dictionary.ErrNotFound)
	assert.Equal(t, []string{"dict /dict/api/v2/entries/es/perro"}, fake.calls())
}

func TestLookupRejectsEmptyQuery(t *testing.T) {
	t.Parallel()

	_, err := NewClient(config.DictionaryConfig{}, nil).Lookup(context.Background(), "", "es")
	assert.ErrorIs(t, err, dictionary.ErrInvalidQuery)
}

func TestBaseLanguage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "pt", baseLanguage("pt-BR"))
	assert.Equal(t, "zh", baseLanguage("zh-Hans"))
	assert.Equal(t, "en", baseLanguage("EN"))
	assert.Equal(t, "not a tag", baseLanguage("NOT A TAG"))
}

func TestStripHTML(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		in       string
		expected string
	}{
		{name: "plain", in: "plain text", expected: "plain text"},
		{name: "inline tags", in: `<b>bold</b> and <a href="#">link</a>`, expected: "bold and link"},
		{name: "entities", in: "caf&eacute; &lt;3", expected: "café <3"},
		{name: "block tags separate words", in: "one<br>two<p>three</p>", expected: "one two three"},
		{name: "whitespace collapses", in: "  a \n\t b  ", expected: "a b"},
		{name: "empty", in: "<span></span>", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, stripHTML(tc.in))
		})
	}
}
