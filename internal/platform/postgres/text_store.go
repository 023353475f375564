package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/leflux-api/internal/domain"
	"github.com/phrazzld/leflux-api/internal/platform/logger"
	"github.com/phrazzld/leflux-api/internal/store"
)

// PostgresTextStore implements store.TextStore.
type PostgresTextStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTextStore creates a library text store on db.
func NewPostgresTextStore(db store.DBTX, logger *slog.Logger) *PostgresTextStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresTextStore{
		db:     db,
		logger: logger.With(slog.String("component", "text_store")),
	}
}

var _ store.TextStore = (*PostgresTextStore)(nil)

// Create implements store.TextStore.Create
func (s *PostgresTextStore) Create(ctx context.Context, text *domain.TextItem) error {
	if err := text.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO texts (` + textColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(ctx, query,
		text.ID, text.Title, text.Lang, text.Content, text.CoverURL,
		text.Progress, text.CreatedAt, text.UpdatedAt)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to create text",
			slog.String("error", err.Error()),
			slog.String("text_id", text.ID.String()))
		return MapError(err)
	}
	return nil
}

// Get implements store.TextStore.Get
func (s *PostgresTextStore) Get(ctx context.Context, id uuid.UUID) (*domain.TextItem, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+textColumns+` FROM texts WHERE id = $1`, id)
	item, err := scanTextItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTextNotFound
		}
		return nil, MapError(err)
	}
	return item, nil
}

// Update implements store.TextStore.Update
func (s *PostgresTextStore) Update(ctx context.Context, text *domain.TextItem) error {
	if err := text.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE texts SET
			title = $2, lang = $3, content = $4, cover_url = $5, progress = $6, updated_at = $7
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query,
		text.ID, text.Title, text.Lang, text.Content, text.CoverURL, text.Progress, text.UpdatedAt)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to update text",
			slog.String("error", err.Error()),
			slog.String("text_id", text.ID.String()))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrTextNotFound)
}

// Delete implements store.TextStore.Delete
func (s *PostgresTextStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM texts WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrTextNotFound)
}

// List implements store.TextStore.List
func (s *PostgresTextStore) List(ctx context.Context, lang string) ([]*domain.TextItem, error) {
	query := `SELECT ` + textColumns + ` FROM texts`
	var args []any
	if lang != "" {
		query += ` WHERE lang = $1`
		args = append(args, lang)
	}
	query += ` ORDER BY created_at DESC, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err)
	}
	items, err := collectRows(rows, scanTextItem)
	if err != nil {
		return nil, MapError(err)
	}
	return items, nil
}

// WithTx implements store.TextStore.WithTx
func (s *PostgresTextStore) WithTx(tx *sql.Tx) store.TextStore {
	return &PostgresTextStore{
		db:     tx,
		logger: s.logger,
	}
}
