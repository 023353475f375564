package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/leflux-api/internal/dictionary"
	"github.com/phrazzld/leflux-api/internal/domain"
	"github.com/phrazzld/leflux-api/internal/domain/srs"
	"github.com/phrazzld/leflux-api/internal/platform/logger"
	"github.com/phrazzld/leflux-api/internal/redact"
	"github.com/phrazzld/leflux-api/internal/store"
)

// DefaultHistoryLimit bounds review history queries.
const DefaultHistoryLimit = 50

// AddVocabInput holds the fields for a new vocabulary entry.
type AddVocabInput struct {
	Term        string
	Lang        string
	Definition  string
	Translation string
	Examples    []string
	AudioURL    string
	ImageURL    string
}

// VocabUpdate holds optional changes to an entry. Nil fields are left alone.
type VocabUpdate struct {
	Definition  *string
	Translation *string
	Examples    []string // nil keeps the current examples
	AudioURL    *string
	ImageURL    *string
}

// VocabService manages the learner's vocabulary.
type VocabService interface {
	// Add creates an entry that is due immediately. An empty definition or
	// example list is filled from the dictionary when one is configured; a
	// failed lookup never blocks the add.
	// Returns store.ErrTermExists if the term is already saved for the language.
	Add(ctx context.Context, in AddVocabInput) (*domain.VocabEntry, error)

	// Get returns one entry.
	Get(ctx context.Context, id uuid.UUID) (*domain.VocabEntry, error)

	// List returns entries matching filter.
	List(ctx context.Context, filter store.VocabFilter) ([]*domain.VocabEntry, error)

	// Update changes descriptive fields. Scheduling state is never touched.
	Update(ctx context.Context, id uuid.UUID, update VocabUpdate) (*domain.VocabEntry, error)

	// Delete removes an entry and its review history.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddSentence records a learner sentence and bumps the produced counter.
	AddSentence(ctx context.Context, id uuid.UUID, sentence string) (*domain.VocabEntry, error)

	// Postpone pushes the next review back by whole days.
	Postpone(ctx context.Context, id uuid.UUID, days int) (*domain.VocabEntry, error)

	// History returns the most recent review logs of an entry.
	History(ctx context.Context, id uuid.UUID, limit int) ([]*domain.ReviewLog, error)

	// Lookup asks the dictionary about a term without saving anything.
	// Returns ErrDictionaryDisabled when no dictionary is configured.
	Lookup(ctx context.Context, term, lang string) (*dictionary.Entry, error)
}

type vocabService struct {
	vocab     store.VocabStore
	logs      store.ReviewLogStore
	scheduler srs.Service
	lookup    dictionary.Lookup
	runTx     TxRunner
	now       func() time.Time
	logger    *slog.Logger
}

var _ VocabService = (*vocabService)(nil)

// NewVocabService creates a VocabService. lookup may be nil, which
// disables dictionary suggestions.
func NewVocabService(
	vocab store.VocabStore,
	logs store.ReviewLogStore,
	scheduler srs.Service,
	lookup dictionary.Lookup,
	runTx TxRunner,
	logger *slog.Logger,
) VocabService {
	if vocab == nil {
		panic("vocab store cannot be nil")
	}
	if logs == nil {
		panic("review log store cannot be nil")
	}
	if scheduler == nil {
		panic("scheduler cannot be nil")
	}
	if runTx == nil {
		panic("tx runner cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &vocabService{
		vocab:     vocab,
		logs:      logs,
		scheduler: scheduler,
		lookup:    lookup,
		runTx:     runTx,
		now:       time.Now,
		logger:    logger.With(slog.String("component", "vocab_service")),
	}
}

// Add implements VocabService.Add
func (s *vocabService) Add(ctx context.Context, in AddVocabInput) (*domain.VocabEntry, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	now := s.now()

	entry, err := domain.NewVocabEntry(in.Term, in.Lang, now)
	if err != nil {
		return nil, err
	}
	entry.SRS = s.scheduler.NewState(now.UTC())
	entry.Definition = strings.TrimSpace(in.Definition)
	entry.Translation = strings.TrimSpace(in.Translation)
	entry.Examples = cleanList(in.Examples)
	entry.AudioURL = strings.TrimSpace(in.AudioURL)
	entry.ImageURL = strings.TrimSpace(in.ImageURL)
	s.fillFromDictionary(ctx, entry)

	if err := s.vocab.Create(ctx, entry); err != nil {
		if store.IsDuplicateError(err) {
			return nil, err
		}
		return nil, NewServiceError("vocab", "add", err)
	}

	log.Info("vocabulary entry added",
		slog.String("entry_id", entry.ID.String()),
		slog.String("lang", entry.Lang))
	return entry, nil
}

// Get implements VocabService.Get
func (s *vocabService) Get(ctx context.Context, id uuid.UUID) (*domain.VocabEntry, error) {
	return s.vocab.Get(ctx, id)
}

// List implements VocabService.List
func (s *vocabService) List(ctx context.Context, filter store.VocabFilter) ([]*domain.VocabEntry, error) {
	if filter.Stage != "" && !filter.Stage.IsValid() {
		return nil, domain.NewValidationError("stage", "is not a known stage")
	}
	if filter.Lang != "" {
		lang, err := domain.NormalizeLang(filter.Lang)
		if err != nil {
			return nil, err
		}
		filter.Lang = lang
	}
	return s.vocab.List(ctx, filter)
}

// Update implements VocabService.Update
func (s *vocabService) Update(ctx context.Context, id uuid.UUID, update VocabUpdate) (*domain.VocabEntry, error) {
	return s.modify(ctx, id, "update", func(entry *domain.VocabEntry, now time.Time) error {
		if update.Definition != nil {
			entry.Definition = strings.TrimSpace(*update.Definition)
		}
		if update.Translation != nil {
			entry.Translation = strings.TrimSpace(*update.Translation)
		}
		if update.Examples != nil {
			entry.Examples = cleanList(update.Examples)
		}
		if update.AudioURL != nil {
			entry.AudioURL = strings.TrimSpace(*update.AudioURL)
		}
		if update.ImageURL != nil {
			entry.ImageURL = strings.TrimSpace(*update.ImageURL)
		}
		entry.UpdatedAt = now.UTC()
		return nil
	})
}

// Delete implements VocabService.Delete
func (s *vocabService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.vocab.Delete(ctx, id); err != nil {
		return err
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("vocabulary entry deleted",
		slog.String("entry_id", id.String()))
	return nil
}

// AddSentence implements VocabService.AddSentence
func (s *vocabService) AddSentence(ctx context.Context, id uuid.UUID, sentence string) (*domain.VocabEntry, error) {
	return s.modify(ctx, id, "add_sentence", func(entry *domain.VocabEntry, now time.Time) error {
		return entry.AddSentence(sentence, now)
	})
}

// Postpone implements VocabService.Postpone
func (s *vocabService) Postpone(ctx context.Context, id uuid.UUID, days int) (*domain.VocabEntry, error) {
	return s.modify(ctx, id, "postpone", func(entry *domain.VocabEntry, now time.Time) error {
		next, err := s.scheduler.Postpone(entry.SRS, days)
		if err != nil {
			return err
		}
		entry.ApplyReview(next, now)
		return nil
	})
}

// History implements VocabService.History
func (s *vocabService) History(ctx context.Context, id uuid.UUID, limit int) ([]*domain.ReviewLog, error) {
	if _, err := s.vocab.Get(ctx, id); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > DefaultHistoryLimit {
		limit = DefaultHistoryLimit
	}
	return s.logs.ListByEntry(ctx, id, limit)
}

// Lookup implements VocabService.Lookup
func (s *vocabService) Lookup(ctx context.Context, term, lang string) (*dictionary.Entry, error) {
	if s.lookup == nil {
		return nil, ErrDictionaryDisabled
	}
	q, err := dictionary.NewQuery(term, lang)
	if err != nil {
		return nil, err
	}
	normalized, err := domain.NormalizeLang(q.Lang)
	if err != nil {
		return nil, err
	}
	return s.lookup.Lookup(ctx, q.Term, normalized)
}

// fillFromDictionary sets the definition and examples of entry when they
// are empty. Fields the learner supplied are kept.
func (s *vocabService) fillFromDictionary(ctx context.Context, entry *domain.VocabEntry) {
	if s.lookup == nil || (entry.Definition != "" && len(entry.Examples) > 0) {
		return
	}

	found, err := s.lookup.Lookup(ctx, entry.Term, entry.Lang)
	if err != nil {
		log := logger.FromContextOrDefault(ctx, s.logger)
		if errors.Is(err, dictionary.ErrNotFound) {
			log.Debug("no dictionary entry for new term", slog.String("lang", entry.Lang))
			return
		}
		log.Warn("dictionary lookup failed, adding entry without suggestions",
			slog.String("lang", entry.Lang),
			slog.String("error", redact.Error(err)))
		return
	}

	if entry.Definition == "" {
		entry.Definition = strings.TrimSpace(found.Definition)
	}
	if len(entry.Examples) == 0 {
		entry.Examples = cleanList(found.Examples)
	}
}

// modify loads an entry under a row lock, applies fn and saves the result.
func (s *vocabService) modify(
	ctx context.Context,
	id uuid.UUID,
	operation string,
	fn func(entry *domain.VocabEntry, now time.Time) error,
) (*domain.VocabEntry, error) {
	var updated *domain.VocabEntry
	err := s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		vocab := s.vocab.WithTx(tx)

		entry, err := vocab.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := fn(entry, s.now()); err != nil {
			return err
		}
		if err := vocab.Update(ctx, entry); err != nil {
			return err
		}
		updated = entry
		return nil
	})
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Debug("vocabulary change rejected",
			slog.String("operation", operation),
			slog.String("entry_id", id.String()),
			slog.String("error", redact.Error(err)))
		return nil, err
	}
	return updated, nil
}

// cleanList trims items and drops empty ones. The result is never nil.
func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
