package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxTitleLength limits library text titles.
const MaxTitleLength = 300

// TextItem is a reading text in the learner's library.
type TextItem struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Lang      string    `json:"lang"`
	Content   string    `json:"content"`
	CoverURL  string    `json:"cover_url,omitempty"`
	Progress  int       `json:"progress"` // percent read, 0-100
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTextItem creates a new library text with zero progress.
func NewTextItem(title, lang, content string, now time.Time) (*TextItem, error) {
	normalized, err := NormalizeLang(lang)
	if err != nil {
		return nil, err
	}

	now = now.UTC()
	item := &TextItem{
		ID:        uuid.New(),
		Title:     strings.TrimSpace(title),
		Lang:      normalized,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks if the TextItem has valid data.
func (t *TextItem) Validate() error {
	if t.ID == uuid.Nil {
		return ErrInvalidID
	}
	if t.Title == "" {
		return NewValidationError("title", "cannot be empty")
	}
	if len([]rune(t.Title)) > MaxTitleLength {
		return NewValidationError("title", "is too long")
	}
	if t.Lang == "" {
		return NewValidationError("lang", "cannot be empty")
	}
	if strings.TrimSpace(t.Content) == "" {
		return ErrEmptyContent
	}
	if t.Progress < 0 || t.Progress > 100 {
		return NewValidationError("progress", "must be between 0 and 100")
	}
	return nil
}

// UpdateProgress sets the reading progress percentage.
func (t *TextItem) UpdateProgress(progress int, now time.Time) error {
	if progress < 0 || progress > 100 {
		return NewValidationError("progress", "must be between 0 and 100")
	}
	t.Progress = progress
	t.UpdatedAt = now.UTC()
	return nil
}
