package generation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoryPromptValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		prompt   StoryPrompt
		wantErr  bool
		wantChar int
	}{
		{name: "valid", prompt: StoryPrompt{Idea: "a lost umbrella", Language: "es", MaxChars: 500}, wantChar: 500},
		{name: "short length is raised", prompt: StoryPrompt{Idea: "rain", Language: "fr", MaxChars: 40}, wantChar: MinStoryChars},
		{name: "zero length is raised", prompt: StoryPrompt{Idea: "rain", Language: "fr"}, wantChar: MinStoryChars},
		{name: "blank idea", prompt: StoryPrompt{Idea: "   ", Language: "fr"}, wantErr: true},
		{name: "missing language", prompt: StoryPrompt{Idea: "rain"}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.prompt
			err := p.Validate()
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidPrompt))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantChar, p.MaxChars)
		})
	}
}
