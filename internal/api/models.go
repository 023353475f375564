package api

import (
	"github.com/phrazzld/leflux-api/internal/domain/srs"
)

// Common request/response structures

// CreateVocabRequest defines the payload for POST /api/vocab.
type CreateVocabRequest struct {
	Term        string   `json:"term"        validate:"required,max=200"`
	Lang        string   `json:"lang"        validate:"required"`
	Definition  string   `json:"definition"  validate:"max=2000"`
	Translation string   `json:"translation" validate:"max=500"`
	Examples    []string `json:"examples"    validate:"max=20,dive,max=1000"`
	AudioURL    string   `json:"audio_url"   validate:"omitempty,url"`
	ImageURL    string   `json:"image_url"   validate:"omitempty,url"`
}

// UpdateVocabRequest defines the payload for PUT /api/vocab/{id}. Omitted
// fields are left unchanged.
type UpdateVocabRequest struct {
	Definition  *string  `json:"definition"  validate:"omitempty,max=2000"`
	Translation *string  `json:"translation" validate:"omitempty,max=500"`
	Examples    []string `json:"examples"    validate:"omitempty,max=20,dive,max=1000"`
	AudioURL    *string  `json:"audio_url"   validate:"omitempty,url"`
	ImageURL    *string  `json:"image_url"   validate:"omitempty,url"`
}

// SentenceRequest defines the payload for POST /api/vocab/{id}/sentences.
type SentenceRequest struct {
	Sentence string `json:"sentence" validate:"required,max=1000"`
}

// PostponeRequest defines the payload for POST /api/vocab/{id}/postpone.
type PostponeRequest struct {
	Days int `json:"days" validate:"required,min=1,max=365"`
}

// AnswerRequest defines the payload for POST /api/review/{id}/answer.
// Grade is a pointer so that 0 (fail) can be told apart from a missing value.
type AnswerRequest struct {
	Grade    *srs.Grade `json:"grade"    validate:"required"`
	Sentence string     `json:"sentence" validate:"max=1000"`
}

// CreateTextRequest defines the payload for POST /api/texts.
type CreateTextRequest struct {
	Title    string `json:"title"     validate:"required,max=300"`
	Lang     string `json:"lang"      validate:"required"`
	Content  string `json:"content"   validate:"required"`
	CoverURL string `json:"cover_url" validate:"omitempty,url"`
}

// UpdateTextRequest defines the payload for PUT /api/texts/{id}.
type UpdateTextRequest struct {
	Title    *string `json:"title"     validate:"omitempty,max=300"`
	Content  *string `json:"content"`
	CoverURL *string `json:"cover_url" validate:"omitempty,url"`
}

// ProgressRequest defines the payload for PUT /api/texts/{id}/progress.
// Progress is a pointer so that 0 is accepted.
type ProgressRequest struct {
	Progress *int `json:"progress" validate:"required,min=0,max=100"`
}

// StoryRequest defines the payload for POST /api/stories.
type StoryRequest struct {
	Idea          string `json:"idea"           validate:"required,max=500"`
	Language      string `json:"language"       validate:"required"`
	MaxCharacters int    `json:"max_characters" validate:"gte=0"`
	Save          bool   `json:"save"`
	Title         string `json:"title"          validate:"max=300"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
