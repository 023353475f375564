package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/phrazzld/leflux-api/internal/domain"
	"github.com/phrazzld/leflux-api/internal/domain/srs"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

const vocabColumns = `id, term, lang, definition, translation, examples, audio_url, image_url,
	user_sentences, ease, interval_days, next_review_at, correct_streak, reviews, produced,
	stage, created_at, updated_at`

func scanVocabEntry(row rowScanner) (*domain.VocabEntry, error) {
	var (
		entry     domain.VocabEntry
		examples  []string
		sentences []string
		stage     string
		next      time.Time
	)

	// text[] columns arrive in their wire form through database/sql; the
	// pgtype map decodes them into slices.
	m := pgtype.NewMap()
	err := row.Scan(
		&entry.ID,
		&entry.Term,
		&entry.Lang,
		&entry.Definition,
		&entry.Translation,
		m.SQLScanner(&examples),
		&entry.AudioURL,
		&entry.ImageURL,
		m.SQLScanner(&sentences),
		&entry.SRS.Ease,
		&entry.SRS.Interval,
		&next,
		&entry.SRS.CorrectStreak,
		&entry.SRS.Reviews,
		&entry.SRS.Produced,
		&stage,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.SRS.Stage = srs.Stage(stage)
	if !entry.SRS.Stage.IsValid() {
		return nil, fmt.Errorf("unknown stage %q stored for entry %s", stage, entry.ID)
	}
	entry.SRS.NextReview = next.UTC()
	entry.CreatedAt = entry.CreatedAt.UTC()
	entry.UpdatedAt = entry.UpdatedAt.UTC()
	entry.Examples = nonNil(examples)
	entry.UserSentences = nonNil(sentences)

	return &entry, nil
}

const textColumns = `id, title, lang, content, cover_url, progress, created_at, updated_at`

func scanTextItem(row rowScanner) (*domain.TextItem, error) {
	var item domain.TextItem
	err := row.Scan(
		&item.ID,
		&item.Title,
		&item.Lang,
		&item.Content,
		&item.CoverURL,
		&item.Progress,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	item.CreatedAt = item.CreatedAt.UTC()
	item.UpdatedAt = item.UpdatedAt.UTC()
	return &item, nil
}

const reviewLogColumns = `id, entry_id, term, grade, user_sentence, interval_days, ease, stage, reviewed_at`

func scanReviewLog(row rowScanner) (*domain.ReviewLog, error) {
	var (
		log   domain.ReviewLog
		grade int
		stage string
	)
	err := row.Scan(
		&log.ID,
		&log.EntryID,
		&log.Term,
		&grade,
		&log.UserSentence,
		&log.Interval,
		&log.Ease,
		&stage,
		&log.ReviewedAt,
	)
	if err != nil {
		return nil, err
	}
	log.Grade = srs.Grade(grade)
	log.Stage = srs.Stage(stage)
	log.ReviewedAt = log.ReviewedAt.UTC()
	return &log, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// collectRows drains rows with scan. It closes rows. An empty result is a
// non-nil empty slice so it encodes as [] rather than null.
func collectRows[T any](rows *sql.Rows, scan func(rowScanner) (T, error)) ([]T, error) {
	defer func() { _ = rows.Close() }()

	out := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
