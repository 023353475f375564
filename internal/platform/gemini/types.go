package gemini

import (
	"context"
	"strings"
	"text/template"

	"google.golang.org/genai"
)

// contentGenerator is the part of the genai client the generator uses.
// *genai.Models satisfies it.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// promptData represents the data passed to the prompt template
type promptData struct {
	Idea     string
	Language string
	MaxChars int
}

const storyPromptText = `Respond only in {{.Language}}. ` +
	`Write a vivid but concise story in {{.Language}}. ` +
	`Target roughly {{.MaxChars}} characters. ` +
	`Keep sentences clear for language learners and favour concrete imagery. ` +
	`Story brief: {{.Idea}} ` +
	`Limit the response to about {{.MaxChars}} characters.`

var storyPrompt = template.Must(template.New("story").Parse(storyPromptText))

func renderPrompt(data promptData) (string, error) {
	var sb strings.Builder
	if err := storyPrompt.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
