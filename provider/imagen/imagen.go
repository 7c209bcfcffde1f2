// Package imagen provides an ImageGenerator implementation that talks to
// the Imagen predict endpoint of the Gemini API directly over HTTP,
// without the SDK.
package imagen

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/mhpenta/mascotgen"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"

	// APIModelImagen4 is the Imagen 4 generation model.
	APIModelImagen4 = "imagen-4.0-generate-001"
)

// Generator implements mascotgen.ImageGenerator over raw HTTP.
type Generator struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Ensure Generator implements the interface.
var _ mascotgen.ImageGenerator = (*Generator)(nil)

// Option customizes the Generator.
type Option func(*Generator)

// WithBaseURL overrides the API base URL (primarily for tests).
func WithBaseURL(baseURL string) Option {
	return func(g *Generator) {
		g.baseURL = baseURL
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(g *Generator) {
		g.httpClient = client
	}
}

// APIKeyFromEnv returns the API key from the GEMINI_API_KEY environment
// variable. This transport does not read GOOGLE_API_KEY.
func APIKeyFromEnv() string {
	return os.Getenv("GEMINI_API_KEY")
}

// New creates a Generator. The key is passed to the endpoint as a query
// parameter on every request and is not validated here.
func New(apiKey string, opts ...Option) (*Generator, error) {
	if apiKey == "" {
		return nil, mascotgen.ErrMissingAPIKey
	}

	g := &Generator{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 2 * time.Minute},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Generate creates images from a text prompt via one POST to the predict
// endpoint. Non-200 responses come back as *mascotgen.HTTPError carrying the
// literal status code and body; a 200 without predictions is a normal result
// with zero images and the body in Raw.
func (g *Generator) Generate(ctx context.Context, prompt string, config *mascotgen.GenerateConfig) (*mascotgen.GenerateResult, error) {
	if err := mascotgen.ValidatePrompt(prompt); err != nil {
		return nil, err
	}

	if config == nil {
		config = mascotgen.DefaultConfig()
	}

	body, err := json.Marshal(buildRequest(prompt, config))
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:predict?key=%s",
		g.baseURL, g.resolveModel(config), url.QueryEscape(g.apiKey))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("predict request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &mascotgen.HTTPError{
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	return parseResponse(respBody)
}

// Models returns the model definitions supported by this provider.
func (g *Generator) Models() []mascotgen.ModelInfo {
	return []mascotgen.ModelInfo{
		Imagen4Info,
	}
}

// Close releases any resources held by the generator.
func (g *Generator) Close() error {
	g.httpClient.CloseIdleConnections()
	return nil
}

func (g *Generator) resolveModel(config *mascotgen.GenerateConfig) string {
	if config != nil && config.Model != "" {
		return string(config.Model)
	}
	return APIModelImagen4
}

func buildRequest(prompt string, config *mascotgen.GenerateConfig) *predictRequest {
	sampleCount := config.SampleCount
	if sampleCount <= 0 {
		sampleCount = 1
	}
	aspectRatio := config.AspectRatio
	if aspectRatio == "" {
		aspectRatio = mascotgen.AspectRatio1x1
	}
	mimeType := config.OutputMIMEType
	if mimeType == "" {
		mimeType = "image/png"
	}

	return &predictRequest{
		Instances: []instance{{Prompt: prompt}},
		Parameters: parameters{
			SampleCount:   sampleCount,
			AspectRatio:   aspectRatio.String(),
			OutputOptions: outputOptions{MimeType: mimeType},
		},
	}
}

// parseResponse decodes every prediction's base64 payload in order.
func parseResponse(body []byte) (*mascotgen.GenerateResult, error) {
	var resp predictResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	result := &mascotgen.GenerateResult{
		Images: make([]mascotgen.GeneratedImage, 0, len(resp.Predictions)),
	}

	for i, pred := range resp.Predictions {
		if pred.BytesBase64Encoded == "" {
			continue
		}

		data, err := base64.StdEncoding.DecodeString(pred.BytesBase64Encoded)
		if err != nil {
			return nil, fmt.Errorf("decoding prediction %d: %w", i, err)
		}

		mimeType := pred.MimeType
		if mimeType == "" {
			mimeType = "image/png"
		}

		result.Images = append(result.Images, mascotgen.GeneratedImage{
			Data:     data,
			MIMEType: mimeType,
			Index:    i,
		})
	}

	if len(result.Images) == 0 {
		result.Raw = string(body)
	}

	return result, nil
}
