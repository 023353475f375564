package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTextItem(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	item, err := NewTextItem("El gato", "es", "El gato duerme.", now)
	require.NoError(t, err)
	assert.Equal(t, 0, item.Progress)
	assert.Equal(t, "es", item.Lang)

	_, err = NewTextItem("", "es", "content", now)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewTextItem("Title", "es", "   ", now)
	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestTextItemUpdateProgress(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	item, err := NewTextItem("El gato", "es", "El gato duerme.", now)
	require.NoError(t, err)

	testCases := []struct {
		progress int
		wantErr  bool
	}{
		{progress: 0},
		{progress: 55},
		{progress: 100},
		{progress: -1, wantErr: true},
		{progress: 101, wantErr: true},
	}

	for _, tc := range testCases {
		err := item.UpdateProgress(tc.progress, now)
		if tc.wantErr {
			assert.ErrorIs(t, err, ErrValidation, "progress %d", tc.progress)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.progress, item.Progress)
	}
}
