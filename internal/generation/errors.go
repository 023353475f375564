package generation

import "errors"

// Common errors returned by story generators
var (
	// ErrGenerationFailed is returned when the model call fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate story")

	// ErrContentBlocked is returned when the model blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrEmptyResponse is returned when the model answers without any text
	ErrEmptyResponse = errors.New("language model returned an empty story")

	// ErrInvalidPrompt is returned when a story prompt has no idea or language
	ErrInvalidPrompt = errors.New("invalid story prompt")
)
