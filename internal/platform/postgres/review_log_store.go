package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/leflux-api/internal/domain"
	"github.com/phrazzld/leflux-api/internal/platform/logger"
	"github.com/phrazzld/leflux-api/internal/store"
)

// PostgresReviewLogStore implements store.ReviewLogStore.
type PostgresReviewLogStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresReviewLogStore creates a review history store on db.
func NewPostgresReviewLogStore(db store.DBTX, logger *slog.Logger) *PostgresReviewLogStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresReviewLogStore{
		db:     db,
		logger: logger.With(slog.String("component", "review_log_store")),
	}
}

var _ store.ReviewLogStore = (*PostgresReviewLogStore)(nil)

// Create implements store.ReviewLogStore.Create
func (s *PostgresReviewLogStore) Create(ctx context.Context, log *domain.ReviewLog) error {
	query := `
		INSERT INTO review_logs (` + reviewLogColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(ctx, query,
		log.ID, log.EntryID, log.Term, int(log.Grade), log.UserSentence,
		log.Interval, log.Ease, string(log.Stage), log.ReviewedAt)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to create review log",
			slog.String("error", err.Error()),
			slog.String("entry_id", log.EntryID.String()))
		if IsForeignKeyViolation(err) {
			return store.ErrVocabNotFound
		}
		return MapError(err)
	}
	return nil
}

// ListByEntry implements store.ReviewLogStore.ListByEntry
func (s *PostgresReviewLogStore) ListByEntry(ctx context.Context, entryID uuid.UUID, limit int) ([]*domain.ReviewLog, error) {
	query := `
		SELECT ` + reviewLogColumns + `
		FROM review_logs
		WHERE entry_id = $1
		ORDER BY reviewed_at DESC, id
		LIMIT $2
	`
	rows, err := s.db.QueryContext(ctx, query, entryID, limit)
	if err != nil {
		return nil, MapError(err)
	}
	logs, err := collectRows(rows, scanReviewLog)
	if err != nil {
		return nil, MapError(err)
	}
	return logs, nil
}

// WithTx implements store.ReviewLogStore.WithTx
func (s *PostgresReviewLogStore) WithTx(tx *sql.Tx) store.ReviewLogStore {
	return &PostgresReviewLogStore{
		db:     tx,
		logger: s.logger,
	}
}
