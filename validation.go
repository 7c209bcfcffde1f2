package mascotgen

import "errors"

// ErrEmptyPrompt is returned when a prompt is empty.
var ErrEmptyPrompt = errors.New("prompt cannot be empty")

// ValidatePrompt validates a text prompt. Prompt content is passed to the
// vendor verbatim; only structural emptiness is checked here.
func ValidatePrompt(prompt string) error {
	if prompt == "" {
		return ErrEmptyPrompt
	}
	return nil
}
