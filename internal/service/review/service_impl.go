package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/leflux-api/internal/config"
	"github.com/phrazzld/leflux-api/internal/domain"
	"github.com/phrazzld/leflux-api/internal/domain/srs"
	"github.com/phrazzld/leflux-api/internal/platform/logger"
	"github.com/phrazzld/leflux-api/internal/redact"
	"github.com/phrazzld/leflux-api/internal/service"
	"github.com/phrazzld/leflux-api/internal/store"
)

// Verify interface compliance at compile time
var _ Service = (*serviceImpl)(nil)

type serviceImpl struct {
	vocab     store.VocabStore
	logs      store.ReviewLogStore
	scheduler srs.Service
	runTx     service.TxRunner
	limits    config.ReviewConfig
	logger    *slog.Logger
}

// NewService creates a review Service.
func NewService(
	vocab store.VocabStore,
	logs store.ReviewLogStore,
	scheduler srs.Service,
	runTx service.TxRunner,
	limits config.ReviewConfig,
	logger *slog.Logger,
) Service {
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
	if limits.DefaultSessionSize <= 0 {
		limits.DefaultSessionSize = 20
	}
	if limits.MaxSessionSize < limits.DefaultSessionSize {
		limits.MaxSessionSize = limits.DefaultSessionSize
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &serviceImpl{
		vocab:     vocab,
		logs:      logs,
		scheduler: scheduler,
		runTx:     runTx,
		limits:    limits,
		logger:    logger.With(slog.String("component", "review_service")),
	}
}

// StartSession implements Service.StartSession.
func (s *serviceImpl) StartSession(ctx context.Context, limit int, now time.Time) (*Session, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	switch {
	case limit <= 0:
		limit = s.limits.DefaultSessionSize
	case limit > s.limits.MaxSessionSize:
		limit = s.limits.MaxSessionSize
	}

	entries, err := s.vocab.ListDue(ctx, now, limit)
	if err != nil {
		return nil, newServiceError("start_session", "failed to list due entries", err)
	}
	due, err := s.vocab.CountDue(ctx, now)
	if err != nil {
		return nil, newServiceError("start_session", "failed to count due entries", err)
	}

	log.Debug("review session started",
		slog.Int("limit", limit),
		slog.Int("entries", len(entries)),
		slog.Int("due", due))

	return &Session{Entries: entries, Due: due}, nil
}

// SubmitAnswer implements Service.SubmitAnswer.
func (s *serviceImpl) SubmitAnswer(
	ctx context.Context,
	entryID uuid.UUID,
	answer Answer,
	now time.Time,
) (*Result, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := srs.ValidateGrade(answer.Grade); err != nil {
		log.Warn("invalid review grade",
			slog.String("entry_id", entryID.String()),
			slog.Int("grade", int(answer.Grade)))
		return nil, fmt.Errorf("%w: %w", ErrInvalidAnswer, err)
	}

	// Whitespace-only sentences count as no sentence.
	sentence := strings.TrimSpace(answer.Sentence)

	var result *Result
	err := s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		vocab := s.vocab.WithTx(tx)
		logs := s.logs.WithTx(tx)

		entry, err := vocab.GetForUpdate(ctx, entryID)
		if err != nil {
			return err
		}

		next, err := s.scheduler.Review(entry.SRS, answer.Grade, now)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAnswer, err)
		}
		entry.ApplyReview(next, now)

		if sentence != "" {
			if err := entry.AddSentence(sentence, now); err != nil {
				return err
			}
		}

		if err := vocab.Update(ctx, entry); err != nil {
			return fmt.Errorf("failed to update entry: %w", err)
		}

		reviewLog := domain.NewReviewLog(entry, answer.Grade, sentence, now)
		if err := logs.Create(ctx, reviewLog); err != nil {
			return fmt.Errorf("failed to write review log: %w", err)
		}

		result = &Result{Entry: entry, Log: reviewLog}
		return nil
	})

	if err != nil {
		if errors.Is(err, store.ErrVocabNotFound) ||
			errors.Is(err, ErrInvalidAnswer) ||
			errors.Is(err, domain.ErrValidation) {
			return nil, err
		}

		log.Error("failed to submit answer",
			slog.String("error", redact.Error(err)),
			slog.String("entry_id", entryID.String()))
		return nil, newServiceError("submit_answer", "failed to record review", err)
	}

	log.Debug("review answer recorded",
		slog.String("entry_id", entryID.String()),
		slog.String("grade", answer.Grade.String()),
		slog.Float64("ease", result.Entry.SRS.Ease),
		slog.Int("interval", result.Entry.SRS.Interval),
		slog.String("stage", string(result.Entry.SRS.Stage)),
		slog.Time("next_review", result.Entry.SRS.NextReview))

	return result, nil
}

// Stats implements Service.Stats.
func (s *serviceImpl) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	byStage, err := s.vocab.CountByStage(ctx)
	if err != nil {
		return nil, newServiceError("stats", "failed to count stages", err)
	}
	due, err := s.vocab.CountDue(ctx, now)
	if err != nil {
		return nil, newServiceError("stats", "failed to count due entries", err)
	}

	stats := &Stats{
		Due:     due,
		ByStage: make(map[srs.Stage]int, 3),
	}
	for _, stage := range []srs.Stage{srs.StageNew, srs.StageLearning, srs.StageMastered} {
		stats.ByStage[stage] = byStage[stage]
		stats.Total += byStage[stage]
	}
	return stats, nil
}
