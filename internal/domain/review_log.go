package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/leflux-api/internal/domain/srs"
)

// ReviewLog is one answered review. It keeps the grade and the state the
// scheduler produced so the history can be shown without recomputation.
type ReviewLog struct {
	ID           uuid.UUID `json:"id"`
	EntryID      uuid.UUID `json:"entry_id"`
	Term         string    `json:"term"`
	Grade        srs.Grade `json:"grade"`
	UserSentence string    `json:"user_sentence,omitempty"`
	Interval     int       `json:"interval"`
	Ease         float64   `json:"ease"`
	Stage        srs.Stage `json:"stage"`
	ReviewedAt   time.Time `json:"reviewed_at"`
}

// NewReviewLog builds a log record for entry after its state was updated.
// The sentence is trimmed the same way VocabEntry.AddSentence trims it.
func NewReviewLog(entry *VocabEntry, grade srs.Grade, sentence string, now time.Time) *ReviewLog {
	return &ReviewLog{
		ID:           uuid.New(),
		EntryID:      entry.ID,
		Term:         entry.Term,
		Grade:        grade,
		UserSentence: strings.TrimSpace(sentence),
		Interval:     entry.SRS.Interval,
		Ease:         entry.SRS.Ease,
		Stage:        entry.SRS.Stage,
		ReviewedAt:   now.UTC(),
	}
}
