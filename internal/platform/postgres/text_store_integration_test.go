//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/phrazzld/leflux-api/internal/domain"
	"github.com/phrazzld/leflux-api/internal/domain/srs"
	"github.com/phrazzld/leflux-api/internal/platform/postgres"
	"github.com/phrazzld/leflux-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresTextStore_CRUD(t *testing.T) {
	db := getTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	withTx(t, db, func(t *testing.T, tx *sql.Tx) {
		texts := postgres.NewPostgresTextStore(tx, nil)

		item, err := domain.NewTextItem("El gato", "es", "El gato duerme en la casa.", now)
		require.NoError(t, err)
		require.NoError(t, texts.Create(ctx, item))

		got, err := texts.Get(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, item.Title, got.Title)
		assert.Equal(t, 0, got.Progress)

		require.NoError(t, got.UpdateProgress(40, now))
		require.NoError(t, texts.Update(ctx, got))

		list, err := texts.List(ctx, "es")
		require.NoError(t, err)
		var found bool
		for _, listed := range list {
			if listed.ID == item.ID {
				found = true
				assert.Equal(t, 40, listed.Progress)
			}
		}
		assert.True(t, found)

		require.NoError(t, texts.Delete(ctx, item.ID))
		_, err = texts.Get(ctx, item.ID)
		assert.ErrorIs(t, err, store.ErrTextNotFound)
	})
}

func TestPostgresReviewLogStore(t *testing.T) {
	db := getTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	withTx(t, db, func(t *testing.T, tx *sql.Tx) {
		vocab := postgres.NewPostgresVocabStore(tx, nil)
		logs := postgres.NewPostgresReviewLogStore(tx, nil)

		entry := newEntry(t, "perro", now)
		require.NoError(t, vocab.Create(ctx, entry))

		for i, grade := range []srs.Grade{srs.GradeEasy, srs.GradeFail} {
			next, err := srs.Review(entry.SRS, grade, now)
			require.NoError(t, err)
			entry.ApplyReview(next, now)
			log := domain.NewReviewLog(entry, grade, "", now.Add(time.Duration(i)*time.Minute))
			require.NoError(t, logs.Create(ctx, log))
		}

		history, err := logs.ListByEntry(ctx, entry.ID, 10)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, srs.GradeFail, history[0].Grade, "most recent first")
		assert.Equal(t, srs.GradeEasy, history[1].Grade)

		orphan := domain.NewReviewLog(newEntry(t, "gato", now), srs.GradeHard, "", now)
		assert.ErrorIs(t, logs.Create(ctx, orphan), store.ErrVocabNotFound)
	})
}
