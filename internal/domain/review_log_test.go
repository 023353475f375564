package domain

import (
	"testing"
	"time"

	"github.com/phrazzld/leflux-api/internal/domain/srs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReviewLog(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 5, 18, 30, 0, 0, time.FixedZone("BRT", -3*3600))

	entry, err := NewVocabEntry("saudade", "pt", now)
	require.NoError(t, err)
	require.NoError(t, entry.AddSentence("  Sinto saudade de casa. ", now))

	log := NewReviewLog(entry, srs.GradeHard, "  Sinto saudade de casa. ", now)

	assert.Equal(t, entry.ID, log.EntryID)
	assert.Equal(t, "saudade", log.Term)
	assert.Equal(t, srs.GradeHard, log.Grade)
	assert.Equal(t, entry.UserSentences[0], log.UserSentence)
	assert.Equal(t, "Sinto saudade de casa.", log.UserSentence)
	assert.Equal(t, time.UTC, log.ReviewedAt.Location())
	assert.True(t, log.ReviewedAt.Equal(now))
}
