package gemini

import "github.com/mhpenta/mascotgen"

// FlashExpInfo is the model info for the experimental Gemini Flash image
// model. It returns generated images as inline data parts inside regular
// content candidates rather than as Imagen-style predictions.
var FlashExpInfo = mascotgen.ModelInfo{
	Name:         "gemini-flash-exp",
	Provider:     mascotgen.ProviderGeminiAPI,
	APIModelName: APIModelFlashExp,

	ImageConstraints: mascotgen.ImageConstraints{
		SupportedAspectRatios: []mascotgen.AspectRatio{
			mascotgen.AspectRatio1x1,
			mascotgen.AspectRatio16x9,
			mascotgen.AspectRatio9x16,
			mascotgen.AspectRatio4x3,
			mascotgen.AspectRatio3x4,
		},
		MaxOutputImages: 1,
	},

	RateLimits: mascotgen.RateLimits{
		TokensPerMinute:   1000000,
		RequestsPerMinute: 10,
	},
}
