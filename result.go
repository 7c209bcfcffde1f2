package mascotgen

// GeneratedImage represents a single generated image result.
type GeneratedImage struct {
	// Data contains the raw image bytes
	Data []byte

	// MIMEType of the generated image
	MIMEType string

	// Index is the position in a multi-image result (0-indexed)
	Index int
}

// GenerateResult holds the complete result of an image generation request.
//
// A result with an empty Images slice means the vendor responded but produced
// no image; Raw then holds the response body for diagnosis.
type GenerateResult struct {
	// Images contains all generated images, in response order
	Images []GeneratedImage

	// Raw is the raw response body, kept for diagnostics when no image
	// payload was present
	Raw string

	// UsageMetadata contains token/billing information, if reported
	UsageMetadata *UsageMetadata
}

// HasImage reports whether the result carries at least one image payload.
func (r *GenerateResult) HasImage() bool {
	return r != nil && len(r.Images) > 0
}

// UsageMetadata contains usage information for billing and monitoring.
type UsageMetadata struct {
	PromptTokens     int
	CandidatesTokens int
	TotalTokens      int
	ImageCount       int
}
