package imagen

// predictRequest is the Imagen predict payload. Field order and names are
// part of the vendor wire contract and must not change.
type predictRequest struct {
	Instances  []instance `json:"instances"`
	Parameters parameters `json:"parameters"`
}

type instance struct {
	Prompt string `json:"prompt"`
}

type parameters struct {
	SampleCount   int           `json:"sampleCount"`
	AspectRatio   string        `json:"aspectRatio"`
	OutputOptions outputOptions `json:"outputOptions"`
}

type outputOptions struct {
	MimeType string `json:"mimeType"`
}

// predictResponse is the Imagen predict success body.
type predictResponse struct {
	Predictions []prediction `json:"predictions"`
}

// prediction is one generated-image result entry.
type prediction struct {
	MimeType           string `json:"mimeType"`
	BytesBase64Encoded string `json:"bytesBase64Encoded"`
}
