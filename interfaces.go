// Package mascotgen turns a text prompt into a PNG file via Google's
// generative-image APIs. Two transports implement the same capability:
// the Gemini SDK (provider/gemini) and the raw Imagen predict endpoint
// (provider/imagen).
package mascotgen

import "context"

// ImageGenerator is the core interface for image generation transports.
// Implement this interface to add support for new models or backends.
//
// The first model returned by Models() is considered the default model.
type ImageGenerator interface {
	// Generate creates images from a text prompt.
	//
	// A response that parsed cleanly but carried no image payload is NOT an
	// error: Generate returns a result with an empty Images slice and the
	// raw response body in Raw so callers can report it.
	Generate(ctx context.Context, prompt string, genConfig *GenerateConfig) (*GenerateResult, error)

	// Models returns the model definitions supported by this transport.
	// The first model in the list is the default.
	Models() []ModelInfo

	// Close releases any resources held by the generator.
	Close() error
}
