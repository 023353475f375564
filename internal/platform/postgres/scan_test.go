package postgres_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/phrazzld/leflux-api/internal/platform/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyListsAreNotNil(t *testing.T) {
	t.Parallel()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM vocab_entries").WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery("FROM texts").WillReturnRows(sqlmock.NewRows([]string{"id"}))

	entries, err := postgres.NewPostgresVocabStore(db, log).ListDue(context.Background(), time.Now(), 10)
	require.NoError(t, err)
	require.NotNil(t, entries)
	assert.Empty(t, entries)

	encoded, err := json.Marshal(entries)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(encoded))

	texts, err := postgres.NewPostgresTextStore(db, log).List(context.Background(), "")
	require.NoError(t, err)
	require.NotNil(t, texts)
	assert.Empty(t, texts)

	assert.NoError(t, mock.ExpectationsWereMet())
}
