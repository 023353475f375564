package webdict

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/phrazzld/leflux-api/internal/config"
	"github.com/phrazzld/leflux-api/internal/dictionary"
	"github.com/phrazzld/leflux-api/internal/platform/logger"
	"github.com/phrazzld/leflux-api/internal/redact"
	"golang.org/x/text/language"
)

const (
	userAgent = "leflux-api/1.0 (vocabulary lookup)"

	// maxBodyBytes bounds every response body read from a source.
	maxBodyBytes = 1 << 20

	defaultTimeout = 8 * time.Second
)

// errMiss marks a source that answered but does not know the term.
var errMiss = errors.New("term not in source")

// source fetches one dictionary. lang is a base language subtag.
type source struct {
	name  dictionary.Source
	fetch func(ctx context.Context, term, lang string) (*dictionary.Entry, error)
}

// Client implements dictionary.Lookup over HTTP.
type Client struct {
	http    *http.Client
	logger  *slog.Logger
	timeout time.Duration
	sources []source
}

var _ dictionary.Lookup = (*Client)(nil)

// NewClient creates a Client for the sources configured in cfg. Sources
// with an empty URL are skipped. If log is nil, slog.Default is used.
func NewClient(cfg config.DictionaryConfig, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := &Client{
		http:    &http.Client{},
		logger:  log.With(slog.String("component", "webdict")),
		timeout: timeout,
	}

	if base := strings.TrimRight(cfg.DictionaryAPIURL, "/"); base != "" {
		c.sources = append(c.sources, source{
			name:  dictionary.SourceDictionaryAPI,
			fetch: c.entriesAPI(base),
		})
	}
	if base := strings.TrimRight(cfg.FreeDictionaryURL, "/"); base != "" {
		c.sources = append(c.sources, source{
			name:  dictionary.SourceFreeDictionary,
			fetch: c.entriesAPI(base),
		})
	}
	if base := strings.TrimRight(cfg.WiktionaryURL, "/"); base != "" {
		c.sources = append(c.sources,
			source{name: dictionary.SourceWiktionaryREST, fetch: c.wiktionaryREST(base)},
			source{name: dictionary.SourceWiktionaryAPI, fetch: c.wiktionaryAPI(base)},
		)
	}
	return c
}

// Lookup implements dictionary.Lookup.
func (c *Client) Lookup(ctx context.Context, term, lang string) (*dictionary.Entry, error) {
	log := logger.FromContextOrDefault(ctx, c.logger)

	q, err := dictionary.NewQuery(term, lang)
	if err != nil {
		return nil, err
	}
	base := baseLanguage(q.Lang)

	var firstErr error
	for _, src := range c.sources {
		entry, err := src.fetch(ctx, q.Term, base)
		switch {
		case err == nil:
			entry.Term = q.Term
			entry.Lang = q.Lang
			entry.Source = src.name
			if entry.Examples == nil {
				entry.Examples = []string{}
			}
			log.Debug("dictionary entry found",
				slog.String("source", string(src.name)),
				slog.String("lang", q.Lang))
			return entry, nil
		case errors.Is(err, errMiss):
			continue
		case ctx.Err() != nil:
			return nil, fmt.Errorf("%w: %w", dictionary.ErrLookupFailed, ctx.Err())
		default:
			log.Debug("dictionary source failed",
				slog.String("source", string(src.name)),
				slog.String("error", redact.Error(err)))
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: %w", src.name, err)
			}
		}
	}

	if firstErr != nil {
		return nil, fmt.Errorf("%w: %w", dictionary.ErrLookupFailed, firstErr)
	}
	return nil, fmt.Errorf("%w: %s (%s)", dictionary.ErrNotFound, q.Term, q.Lang)
}

// getJSON decodes the body of a GET to rawURL into out. A 404 is a miss.
func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	body := io.LimitReader(resp.Body, maxBodyBytes)
	switch {
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, body)
		return errMiss
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		_, _ = io.Copy(io.Discard, body)
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// baseLanguage reduces a tag such as "pt-BR" to the subtag the public
// dictionaries are keyed by.
func baseLanguage(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return strings.ToLower(lang)
	}
	base, _ := tag.Base()
	return base.String()
}
