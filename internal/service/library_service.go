package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/leflux-api/internal/domain"
	"github.com/phrazzld/leflux-api/internal/domain/srs"
	"github.com/phrazzld/leflux-api/internal/platform/logger"
	"github.com/phrazzld/leflux-api/internal/store"
	"github.com/phrazzld/leflux-api/internal/tokenize"
)

// CreateTextInput holds the fields for a new library text.
type CreateTextInput struct {
	Title    string
	Lang     string
	Content  string
	CoverURL string
}

// TextUpdate holds optional changes to a text. Nil fields are left alone.
type TextUpdate struct {
	Title    *string
	Content  *string
	CoverURL *string
}

// ReaderToken is a word of a text annotated with vocabulary knowledge.
type ReaderToken struct {
	tokenize.Token
	EntryID *uuid.UUID `json:"entry_id,omitempty"`
	Stage   srs.Stage  `json:"stage,omitempty"`
}

// ReaderView is a tokenized text ready for the reader.
type ReaderView struct {
	TextID  uuid.UUID     `json:"text_id"`
	Lang    string        `json:"lang"`
	Tokens  []ReaderToken `json:"tokens"`
	Known   int           `json:"known"`   // tokens with a vocabulary entry
	Unknown int           `json:"unknown"` // distinct words without one
}

// LibraryService manages reading texts.
type LibraryService interface {
	Create(ctx context.Context, in CreateTextInput) (*domain.TextItem, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.TextItem, error)
	List(ctx context.Context, lang string) ([]*domain.TextItem, error)
	Update(ctx context.Context, id uuid.UUID, update TextUpdate) (*domain.TextItem, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// UpdateProgress records how far the learner has read, in percent.
	UpdateProgress(ctx context.Context, id uuid.UUID, progress int) (*domain.TextItem, error)

	// Tokens splits a text into words and marks the ones already in the
	// vocabulary.
	Tokens(ctx context.Context, id uuid.UUID) (*ReaderView, error)
}

type libraryService struct {
	texts  store.TextStore
	vocab  store.VocabStore
	now    func() time.Time
	logger *slog.Logger
}

var _ LibraryService = (*libraryService)(nil)

// NewLibraryService creates a LibraryService.
func NewLibraryService(texts store.TextStore, vocab store.VocabStore, logger *slog.Logger) LibraryService {
	if texts == nil {
		panic("text store cannot be nil")
	}
	if vocab == nil {
		panic("vocab store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &libraryService{
		texts:  texts,
		vocab:  vocab,
		now:    time.Now,
		logger: logger.With(slog.String("component", "library_service")),
	}
}

// Create implements LibraryService.Create
func (s *libraryService) Create(ctx context.Context, in CreateTextInput) (*domain.TextItem, error) {
	item, err := domain.NewTextItem(in.Title, in.Lang, in.Content, s.now())
	if err != nil {
		return nil, err
	}
	item.CoverURL = strings.TrimSpace(in.CoverURL)

	if err := s.texts.Create(ctx, item); err != nil {
		return nil, NewServiceError("library", "create", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("text added to library",
		slog.String("text_id", item.ID.String()),
		slog.String("lang", item.Lang))
	return item, nil
}

// Get implements LibraryService.Get
func (s *libraryService) Get(ctx context.Context, id uuid.UUID) (*domain.TextItem, error) {
	return s.texts.Get(ctx, id)
}

// List implements LibraryService.List
func (s *libraryService) List(ctx context.Context, lang string) ([]*domain.TextItem, error) {
	if lang != "" {
		normalized, err := domain.NormalizeLang(lang)
		if err != nil {
			return nil, err
		}
		lang = normalized
	}
	return s.texts.List(ctx, lang)
}

// Update implements LibraryService.Update
func (s *libraryService) Update(ctx context.Context, id uuid.UUID, update TextUpdate) (*domain.TextItem, error) {
	item, err := s.texts.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		item.Title = strings.TrimSpace(*update.Title)
	}
	if update.Content != nil {
		item.Content = *update.Content
	}
	if update.CoverURL != nil {
		item.CoverURL = strings.TrimSpace(*update.CoverURL)
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	item.UpdatedAt = s.now().UTC()

	if err := s.texts.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete implements LibraryService.Delete
func (s *libraryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.texts.Delete(ctx, id)
}

// UpdateProgress implements LibraryService.UpdateProgress
func (s *libraryService) UpdateProgress(ctx context.Context, id uuid.UUID, progress int) (*domain.TextItem, error) {
	item, err := s.texts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := item.UpdateProgress(progress, s.now()); err != nil {
		return nil, err
	}
	if err := s.texts.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Tokens implements LibraryService.Tokens
func (s *libraryService) Tokens(ctx context.Context, id uuid.UUID) (*ReaderView, error) {
	item, err := s.texts.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	entries, err := s.vocab.List(ctx, store.VocabFilter{Lang: item.Lang})
	if err != nil {
		return nil, NewServiceError("library", "tokens", err)
	}

	known := make(map[string]*domain.VocabEntry, len(entries))
	for _, e := range entries {
		known[tokenize.Normalize(e.Term, e.Lang)] = e
	}

	view := &ReaderView{
		TextID: item.ID,
		Lang:   item.Lang,
		Tokens: []ReaderToken{},
	}
	unknown := make(map[string]struct{})
	for _, tok := range tokenize.Tokenize(item.Content, item.Lang) {
		rt := ReaderToken{Token: tok}
		if e, ok := known[tok.Normalized]; ok {
			id := e.ID
			rt.EntryID = &id
			rt.Stage = e.SRS.Stage
			view.Known++
		} else {
			unknown[tok.Normalized] = struct{}{}
		}
		view.Tokens = append(view.Tokens, rt)
	}
	view.Unknown = len(unknown)

	return view, nil
}
