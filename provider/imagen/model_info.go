package imagen

import "github.com/mhpenta/mascotgen"

// Imagen4Info is the model info for Imagen 4. Results arrive as
// base64-encoded predictions rather than inline content parts.
var Imagen4Info = mascotgen.ModelInfo{
	Name:         "imagen-4",
	Provider:     mascotgen.ProviderImagenAPI,
	APIModelName: APIModelImagen4,

	ImageConstraints: mascotgen.ImageConstraints{
		SupportedAspectRatios: []mascotgen.AspectRatio{
			mascotgen.AspectRatio1x1,
			mascotgen.AspectRatio16x9,
			mascotgen.AspectRatio9x16,
			mascotgen.AspectRatio4x3,
			mascotgen.AspectRatio3x4,
		},
		MaxOutputImages: 4,
	},

	RateLimits: mascotgen.RateLimits{
		TokensPerMinute:   1000000,
		RequestsPerMinute: 20,
	},
}
