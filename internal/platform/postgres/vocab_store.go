package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/leflux-api/internal/domain"
	"github.com/phrazzld/leflux-api/internal/domain/srs"
	"github.com/phrazzld/leflux-api/internal/platform/logger"
	"github.com/phrazzld/leflux-api/internal/store"
)

// PostgresVocabStore implements store.VocabStore.
type PostgresVocabStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresVocabStore creates a vocabulary store on db, which may be a
// connection pool or a transaction. If logger is nil, slog.Default is used.
func NewPostgresVocabStore(db store.DBTX, logger *slog.Logger) *PostgresVocabStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresVocabStore{
		db:     db,
		logger: logger.With(slog.String("component", "vocab_store")),
	}
}

var _ store.VocabStore = (*PostgresVocabStore)(nil)

// Create implements store.VocabStore.Create
func (s *PostgresVocabStore) Create(ctx context.Context, entry *domain.VocabEntry) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := entry.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO vocab_entries (` + vocabColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`
	_, err := s.db.ExecContext(ctx, query,
		entry.ID,
		entry.Term,
		entry.Lang,
		entry.Definition,
		entry.Translation,
		nonNil(entry.Examples),
		entry.AudioURL,
		entry.ImageURL,
		nonNil(entry.UserSentences),
		entry.SRS.Ease,
		entry.SRS.Interval,
		entry.SRS.NextReview,
		entry.SRS.CorrectStreak,
		entry.SRS.Reviews,
		entry.SRS.Produced,
		string(entry.SRS.Stage),
		entry.CreatedAt,
		entry.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("duplicate vocabulary entry",
				slog.String("term", entry.Term),
				slog.String("lang", entry.Lang))
		} else {
			log.Error("failed to create vocabulary entry",
				slog.String("error", err.Error()),
				slog.String("entry_id", entry.ID.String()))
		}
		return MapUniqueViolation(err, store.ErrTermExists)
	}

	log.Debug("vocabulary entry created", slog.String("entry_id", entry.ID.String()))
	return nil
}

// Get implements store.VocabStore.Get
func (s *PostgresVocabStore) Get(ctx context.Context, id uuid.UUID) (*domain.VocabEntry, error) {
	return s.get(ctx, id, false)
}

// GetForUpdate implements store.VocabStore.GetForUpdate
func (s *PostgresVocabStore) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.VocabEntry, error) {
	return s.get(ctx, id, true)
}

func (s *PostgresVocabStore) get(ctx context.Context, id uuid.UUID, lock bool) (*domain.VocabEntry, error) {
	query := `SELECT ` + vocabColumns + ` FROM vocab_entries WHERE id = $1`
	if lock {
		query += ` FOR UPDATE`
	}

	entry, err := scanVocabEntry(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrVocabNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to get vocabulary entry",
			slog.String("error", err.Error()),
			slog.String("entry_id", id.String()))
		return nil, MapError(err)
	}
	return entry, nil
}

// Update implements store.VocabStore.Update
func (s *PostgresVocabStore) Update(ctx context.Context, entry *domain.VocabEntry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE vocab_entries SET
			term = $2, lang = $3, definition = $4, translation = $5, examples = $6,
			audio_url = $7, image_url = $8, user_sentences = $9, ease = $10,
			interval_days = $11, next_review_at = $12, correct_streak = $13,
			reviews = $14, produced = $15, stage = $16, updated_at = $17
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query,
		entry.ID,
		entry.Term,
		entry.Lang,
		entry.Definition,
		entry.Translation,
		nonNil(entry.Examples),
		entry.AudioURL,
		entry.ImageURL,
		nonNil(entry.UserSentences),
		entry.SRS.Ease,
		entry.SRS.Interval,
		entry.SRS.NextReview,
		entry.SRS.CorrectStreak,
		entry.SRS.Reviews,
		entry.SRS.Produced,
		string(entry.SRS.Stage),
		entry.UpdatedAt,
	)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to update vocabulary entry",
			slog.String("error", err.Error()),
			slog.String("entry_id", entry.ID.String()))
		return MapUniqueViolation(err, store.ErrTermExists)
	}

	return CheckRowsAffected(result, store.ErrVocabNotFound)
}

// Delete implements store.VocabStore.Delete
func (s *PostgresVocabStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM vocab_entries WHERE id = $1`, id)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to delete vocabulary entry",
			slog.String("error", err.Error()),
			slog.String("entry_id", id.String()))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrVocabNotFound)
}

// List implements store.VocabStore.List
func (s *PostgresVocabStore) List(ctx context.Context, filter store.VocabFilter) ([]*domain.VocabEntry, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.Stage != "" {
		args = append(args, string(filter.Stage))
		conditions = append(conditions, fmt.Sprintf("stage = $%d", len(args)))
	}
	if filter.Lang != "" {
		args = append(args, filter.Lang)
		conditions = append(conditions, fmt.Sprintf("lang = $%d", len(args)))
	}

	var b strings.Builder
	b.WriteString(`SELECT ` + vocabColumns + ` FROM vocab_entries`)
	if len(conditions) > 0 {
		b.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	b.WriteString(" ORDER BY created_at DESC, id")
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		fmt.Fprintf(&b, " LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		fmt.Fprintf(&b, " OFFSET $%d", len(args))
	}

	rows, err := s.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, MapError(err)
	}
	entries, err := collectRows(rows, scanVocabEntry)
	if err != nil {
		return nil, MapError(err)
	}
	return entries, nil
}

// ListDue implements store.VocabStore.ListDue
func (s *PostgresVocabStore) ListDue(ctx context.Context, now time.Time, limit int) ([]*domain.VocabEntry, error) {
	query := `
		SELECT ` + vocabColumns + `
		FROM vocab_entries
		WHERE next_review_at <= $1
		ORDER BY next_review_at ASC, created_at ASC
		LIMIT $2
	`
	rows, err := s.db.QueryContext(ctx, query, now, limit)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list due entries",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	entries, err := collectRows(rows, scanVocabEntry)
	if err != nil {
		return nil, MapError(err)
	}
	return entries, nil
}

// CountByStage implements store.VocabStore.CountByStage
func (s *PostgresVocabStore) CountByStage(ctx context.Context) (map[srs.Stage]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT stage, COUNT(*) FROM vocab_entries GROUP BY stage`)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[srs.Stage]int)
	for rows.Next() {
		var (
			stage string
			count int
		)
		if err := rows.Scan(&stage, &count); err != nil {
			return nil, MapError(err)
		}
		counts[srs.Stage(stage)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return counts, nil
}

// CountDue implements store.VocabStore.CountDue
func (s *PostgresVocabStore) CountDue(ctx context.Context, now time.Time) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM vocab_entries WHERE next_review_at <= $1`, now).Scan(&count)
	if err != nil {
		return 0, MapError(err)
	}
	return count, nil
}

// WithTx implements store.VocabStore.WithTx
func (s *PostgresVocabStore) WithTx(tx *sql.Tx) store.VocabStore {
	return &PostgresVocabStore{
		db:     tx,
		logger: s.logger,
	}
}
