package mascotgen

import "time"

// Model represents a specific image generation model.
type Model string

// AspectRatio represents the aspect ratio for generated images.
type AspectRatio string

const (
	AspectRatio1x1  AspectRatio = "1:1"
	AspectRatio16x9 AspectRatio = "16:9"
	AspectRatio9x16 AspectRatio = "9:16"
	AspectRatio4x3  AspectRatio = "4:3"
	AspectRatio3x4  AspectRatio = "3:4"
)

// GenerateConfig holds configuration options for image generation.
type GenerateConfig struct {
	// Model to use for generation (if empty, uses manager's default)
	Model Model

	// AspectRatio of the output image
	AspectRatio AspectRatio

	// SampleCount is the number of images requested (1-4 typically)
	SampleCount int

	// OutputMIMEType of the generated images (e.g. "image/png")
	OutputMIMEType string

	// Rate Limiting
	// WaitOnRateLimit, if true, causes the Manager to wait and retry when
	// rate limited. If false, a RateLimitError is returned immediately.
	WaitOnRateLimit bool

	// MaxWaitDuration is the maximum time to wait when WaitOnRateLimit is true.
	// Zero means no limit.
	MaxWaitDuration time.Duration
}

// WithModel returns a copy of the config with the specified model.
func (c *GenerateConfig) WithModel(model Model) *GenerateConfig {
	if c == nil {
		return &GenerateConfig{Model: model}
	}
	cX := *c
	cX.Model = model
	return &cX
}

// DefaultConfig returns a GenerateConfig matching the CLI defaults:
// one square PNG.
func DefaultConfig() *GenerateConfig {
	return &GenerateConfig{
		SampleCount:    1,
		AspectRatio:    AspectRatio1x1,
		OutputMIMEType: "image/png",
	}
}

// String returns the aspect ratio as sent to the API.
func (a AspectRatio) String() string {
	return string(a)
}

// String returns the model identifier.
func (m Model) String() string {
	return string(m)
}
