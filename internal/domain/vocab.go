package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/phrazzld/leflux-api/internal/domain/srs"
)

// Field limits for vocabulary entries.
const (
	MaxTermLength     = 200
	MaxSentenceLength = 1000
)

// VocabEntry is a word or phrase the learner is studying, together with its
// scheduling state.
type VocabEntry struct {
	ID            uuid.UUID `json:"id"`
	Term          string    `json:"term"`
	Lang          string    `json:"lang"`
	Definition    string    `json:"definition,omitempty"`
	Translation   string    `json:"translation,omitempty"`
	Examples      []string  `json:"examples"`
	AudioURL      string    `json:"audio_url,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
	UserSentences []string  `json:"user_sentences"`
	SRS           srs.State `json:"srs"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewVocabEntry creates a new entry for term in lang. The entry is due
// immediately and starts in the "new" stage.
func NewVocabEntry(term, lang string, now time.Time) (*VocabEntry, error) {
	normalized, err := NormalizeLang(lang)
	if err != nil {
		return nil, err
	}

	now = now.UTC()
	entry := &VocabEntry{
		ID:            uuid.New(),
		Term:          strings.TrimSpace(term),
		Lang:          normalized,
		Examples:      []string{},
		UserSentences: []string{},
		SRS:           srs.NewState(now),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	return entry, nil
}

// Validate checks if the VocabEntry has valid data.
func (v *VocabEntry) Validate() error {
	if v.ID == uuid.Nil {
		return ErrInvalidID
	}

	if v.Term == "" {
		return NewValidationError("term", "cannot be empty")
	}
	if utf8.RuneCountInString(v.Term) > MaxTermLength {
		return NewValidationError("term", "is too long")
	}

	if v.Lang == "" {
		return NewValidationError("lang", "cannot be empty")
	}

	if !v.SRS.Stage.IsValid() {
		return NewValidationError("srs.stage", "is not a known stage")
	}
	if v.SRS.Interval < 0 {
		return NewValidationError("srs.interval", "cannot be negative")
	}
	if v.SRS.Ease <= 0 {
		return NewValidationError("srs.ease", "must be positive")
	}

	return nil
}

// AddSentence records a sentence the learner produced with this entry and
// bumps the produced counter.
func (v *VocabEntry) AddSentence(sentence string, now time.Time) error {
	sentence = strings.TrimSpace(sentence)
	if sentence == "" {
		return NewValidationError("sentence", "cannot be empty")
	}
	if utf8.RuneCountInString(sentence) > MaxSentenceLength {
		return NewValidationError("sentence", "is too long")
	}

	v.UserSentences = append(v.UserSentences, sentence)
	v.SRS.Produced++
	v.UpdatedAt = now.UTC()
	return nil
}

// ApplyReview replaces the scheduling state after a review.
func (v *VocabEntry) ApplyReview(state srs.State, now time.Time) {
	v.SRS = state
	v.UpdatedAt = now.UTC()
}
