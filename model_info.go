package mascotgen

// RateLimits defines rate limiting parameters for a model.
type RateLimits struct {
	TokensPerMinute   int
	RequestsPerMinute int
}

// ImageConstraints defines supported image configurations for a model.
type ImageConstraints struct {
	SupportedAspectRatios []AspectRatio
	MaxOutputImages       int
}

// ModelInfo contains complete metadata for a model.
type ModelInfo struct {
	// Identity
	Name         string   // Public model name (e.g., "imagen-4")
	Provider     Provider // Which provider serves this model
	APIModelName string   // Actual API name (e.g., "imagen-4.0-generate-001")

	// Constraints
	ImageConstraints ImageConstraints

	// Rate Limits
	RateLimits RateLimits
}
