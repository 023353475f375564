package api

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/leflux-api/internal/dictionary"
	"github.com/phrazzld/leflux-api/internal/domain"
	"github.com/phrazzld/leflux-api/internal/service"
	"github.com/phrazzld/leflux-api/internal/service/review"
	"github.com/phrazzld/leflux-api/internal/store"
)

type mockVocabService struct {
	AddFn         func(ctx context.Context, in service.AddVocabInput) (*domain.VocabEntry, error)
	GetFn         func(ctx context.Context, id uuid.UUID) (*domain.VocabEntry, error)
	ListFn        func(ctx context.Context, filter store.VocabFilter) ([]*domain.VocabEntry, error)
	UpdateFn      func(ctx context.Context, id uuid.UUID, update service.VocabUpdate) (*domain.VocabEntry, error)
	DeleteFn      func(ctx context.Context, id uuid.UUID) error
	AddSentenceFn func(ctx context.Context, id uuid.UUID, sentence string) (*domain.VocabEntry, error)
	PostponeFn    func(ctx context.Context, id uuid.UUID, days int) (*domain.VocabEntry, error)
	HistoryFn     func(ctx context.Context, id uuid.UUID, limit int) ([]*domain.ReviewLog, error)
	LookupFn      func(ctx context.Context, term, lang string) (*dictionary.Entry, error)
}

func (m *mockVocabService) Add(ctx context.Context, in service.AddVocabInput) (*domain.VocabEntry, error) {
	return m.AddFn(ctx, in)
}

func (m *mockVocabService) Get(ctx context.Context, id uuid.UUID) (*domain.VocabEntry, error) {
	return m.GetFn(ctx, id)
}

func (m *mockVocabService) List(ctx context.Context, filter store.VocabFilter) ([]*domain.VocabEntry, error) {
	return m.ListFn(ctx, filter)
}

func (m *mockVocabService) Update(ctx context.Context, id uuid.UUID, update service.VocabUpdate) (*domain.VocabEntry, error) {
	return m.UpdateFn(ctx, id, update)
}

func (m *mockVocabService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFn(ctx, id)
}

func (m *mockVocabService) AddSentence(ctx context.Context, id uuid.UUID, sentence string) (*domain.VocabEntry, error) {
	return m.AddSentenceFn(ctx, id, sentence)
}

func (m *mockVocabService) Postpone(ctx context.Context, id uuid.UUID, days int) (*domain.VocabEntry, error) {
	return m.PostponeFn(ctx, id, days)
}

func (m *mockVocabService) History(ctx context.Context, id uuid.UUID, limit int) ([]*domain.ReviewLog, error) {
	return m.HistoryFn(ctx, id, limit)
}

func (m *mockVocabService) Lookup(ctx context.Context, term, lang string) (*dictionary.Entry, error) {
	return m.LookupFn(ctx, term, lang)
}

type mockReviewService struct {
	StartSessionFn func(ctx context.Context, limit int, now time.Time) (*review.Session, error)
	SubmitAnswerFn func(ctx context.Context, entryID uuid.UUID, answer review.Answer, now time.Time) (*review.Result, error)
	StatsFn        func(ctx context.Context, now time.Time) (*review.Stats, error)
}

func (m *mockReviewService) StartSession(ctx context.Context, limit int, now time.Time) (*review.Session, error) {
	return m.StartSessionFn(ctx, limit, now)
}

func (m *mockReviewService) SubmitAnswer(
	ctx context.Context,
	entryID uuid.UUID,
	answer review.Answer,
	now time.Time,
) (*review.Result, error) {
	return m.SubmitAnswerFn(ctx, entryID, answer, now)
}

func (m *mockReviewService) Stats(ctx context.Context, now time.Time) (*review.Stats, error) {
	return m.StatsFn(ctx, now)
}

type mockLibraryService struct {
	CreateFn         func(ctx context.Context, in service.CreateTextInput) (*domain.TextItem, error)
	GetFn            func(ctx context.Context, id uuid.UUID) (*domain.TextItem, error)
	ListFn           func(ctx context.Context, lang string) ([]*domain.TextItem, error)
	UpdateFn         func(ctx context.Context, id uuid.UUID, update service.TextUpdate) (*domain.TextItem, error)
	DeleteFn         func(ctx context.Context, id uuid.UUID) error
	UpdateProgressFn func(ctx context.Context, id uuid.UUID, progress int) (*domain.TextItem, error)
	TokensFn         func(ctx context.Context, id uuid.UUID) (*service.ReaderView, error)
}

func (m *mockLibraryService) Create(ctx context.Context, in service.CreateTextInput) (*domain.TextItem, error) {
	return m.CreateFn(ctx, in)
}

func (m *mockLibraryService) Get(ctx context.Context, id uuid.UUID) (*domain.TextItem, error) {
	return m.GetFn(ctx, id)
}

func (m *mockLibraryService) List(ctx context.Context, lang string) ([]*domain.TextItem, error) {
	return m.ListFn(ctx, lang)
}

func (m *mockLibraryService) Update(ctx context.Context, id uuid.UUID, update service.TextUpdate) (*domain.TextItem, error) {
	return m.UpdateFn(ctx, id, update)
}

func (m *mockLibraryService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFn(ctx, id)
}

func (m *mockLibraryService) UpdateProgress(ctx context.Context, id uuid.UUID, progress int) (*domain.TextItem, error) {
	return m.UpdateProgressFn(ctx, id, progress)
}

func (m *mockLibraryService) Tokens(ctx context.Context, id uuid.UUID) (*service.ReaderView, error) {
	return m.TokensFn(ctx, id)
}

type mockStoryService struct {
	GenerateFn func(ctx context.Context, req service.StoryRequest) (*service.StoryResult, error)
}

func (m *mockStoryService) Generate(ctx context.Context, req service.StoryRequest) (*service.StoryResult, error) {
	return m.GenerateFn(ctx, req)
}

type stubPinger struct{ err error }

func (p stubPinger) PingContext(context.Context) error { return p.err }
