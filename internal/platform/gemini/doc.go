// Package gemini provides an implementation of the generation.StoryGenerator
// interface backed by Google's Gemini API.
//
// It is an infrastructure adapter: the prompt is rendered from a template,
// sent through the google.golang.org/genai client and the response text is
// returned to the story service. Safety blocks and empty answers are
// translated into the generation package's sentinel errors.
package gemini
