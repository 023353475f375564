package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/leflux-api/internal/domain"
	"github.com/phrazzld/leflux-api/internal/domain/srs"
	"github.com/phrazzld/leflux-api/internal/mocks"
	"github.com/phrazzld/leflux-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLibraryService(texts *mocks.MockTextStore, vocab *mocks.MockVocabStore) *libraryService {
	svc := NewLibraryService(texts, vocab, nil).(*libraryService)
	svc.now = func() time.Time { return testNow }
	return svc
}

func testText(t *testing.T, content string) *domain.TextItem {
	t.Helper()
	item, err := domain.NewTextItem("El gato", "es", content, testNow.Add(-time.Hour))
	require.NoError(t, err)
	return item
}

func TestLibraryServiceCreate(t *testing.T) {
	t.Parallel()

	texts := &mocks.MockTextStore{}
	svc := newTestLibraryService(texts, &mocks.MockVocabStore{})

	item, err := svc.Create(context.Background(), CreateTextInput{
		Title:    " Mi día ",
		Lang:     "es",
		Content:  "Hoy es lunes.",
		CoverURL: " https://example.com/c.png ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Mi día", item.Title)
	assert.Equal(t, "https://example.com/c.png", item.CoverURL)
	assert.Equal(t, 0, item.Progress)
	require.Len(t, texts.Created, 1)

	_, err = svc.Create(context.Background(), CreateTextInput{Title: "x", Lang: "es", Content: "  "})
	assert.True(t, errors.Is(err, domain.ErrEmptyContent))
	assert.Len(t, texts.Created, 1)
}

func TestLibraryServiceUpdate(t *testing.T) {
	t.Parallel()

	item := testText(t, "Hola.")
	texts := &mocks.MockTextStore{
		GetFn: func(ctx context.Context, id uuid.UUID) (*domain.TextItem, error) { return item, nil },
	}
	svc := newTestLibraryService(texts, &mocks.MockVocabStore{})

	title := "Nuevo"
	updated, err := svc.Update(context.Background(), item.ID, TextUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Nuevo", updated.Title)
	assert.Equal(t, "Hola.", updated.Content)
	assert.Equal(t, testNow, updated.UpdatedAt)

	empty := ""
	_, err = svc.Update(context.Background(), item.ID, TextUpdate{Title: &empty})
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestLibraryServiceUpdateProgress(t *testing.T) {
	t.Parallel()

	item := testText(t, "Hola.")
	texts := &mocks.MockTextStore{
		GetFn: func(ctx context.Context, id uuid.UUID) (*domain.TextItem, error) { return item, nil },
	}
	svc := newTestLibraryService(texts, &mocks.MockVocabStore{})

	updated, err := svc.UpdateProgress(context.Background(), item.ID, 55)
	require.NoError(t, err)
	assert.Equal(t, 55, updated.Progress)

	_, err = svc.UpdateProgress(context.Background(), item.ID, 101)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Len(t, texts.Updated, 1)

	_, err = newTestLibraryService(&mocks.MockTextStore{}, &mocks.MockVocabStore{}).
		UpdateProgress(context.Background(), uuid.New(), 10)
	assert.True(t, errors.Is(err, store.ErrTextNotFound))
}

func TestLibraryServiceTokens(t *testing.T) {
	t.Parallel()

	item := testText(t, "El Gato come. ¡El gato duerme!")
	gato := testEntry(t, "gato")
	gato.SRS.Stage = srs.StageLearning

	var gotFilter store.VocabFilter
	texts := &mocks.MockTextStore{
		GetFn: func(ctx context.Context, id uuid.UUID) (*domain.TextItem, error) { return item, nil },
	}
	vocab := &mocks.MockVocabStore{
		ListFn: func(ctx context.Context, filter store.VocabFilter) ([]*domain.VocabEntry, error) {
			gotFilter = filter
			return []*domain.VocabEntry{gato}, nil
		},
	}
	svc := newTestLibraryService(texts, vocab)

	view, err := svc.Tokens(context.Background(), item.ID)
	require.NoError(t, err)

	assert.Equal(t, "es", gotFilter.Lang)
	require.Len(t, view.Tokens, 6)

	words := make([]string, 0, len(view.Tokens))
	for _, tok := range view.Tokens {
		words = append(words, tok.Normalized)
	}
	assert.Equal(t, []string{"el", "gato", "come", "el", "gato", "duerme"}, words)

	assert.Equal(t, "Gato", view.Tokens[1].Text)
	require.NotNil(t, view.Tokens[1].EntryID)
	assert.Equal(t, gato.ID, *view.Tokens[1].EntryID)
	assert.Equal(t, srs.StageLearning, view.Tokens[1].Stage)
	assert.Nil(t, view.Tokens[0].EntryID)

	assert.Equal(t, 2, view.Known)
	assert.Equal(t, 3, view.Unknown) // el, come, duerme
}
