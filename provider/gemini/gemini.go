// Package gemini provides an ImageGenerator implementation using Google's
// Gemini API via the official Go SDK: https://github.com/googleapis/go-genai
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mhpenta/mascotgen"
	"google.golang.org/genai"
)

// APIModelFlashExp is the experimental Gemini Flash model with image output.
const APIModelFlashExp = "gemini-2.0-flash-exp"

// Generator implements mascotgen.ImageGenerator using the Gemini SDK.
type Generator struct {
	client *genai.Client
}

// Ensure Generator implements the interface.
var _ mascotgen.ImageGenerator = (*Generator)(nil)

// APIKeyFromEnv returns the API key from the environment.
// GOOGLE_API_KEY wins over GEMINI_API_KEY; empty means neither is set.
func APIKeyFromEnv() string {
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("GEMINI_API_KEY")
}

// New creates a Generator for the Gemini API backend.
// An empty apiKey lets the SDK fall back to the GOOGLE_API_KEY or
// GEMINI_API_KEY environment variables; an invalid credential is surfaced
// by the SDK at call time, not validated here.
func New(ctx context.Context, apiKey string) (*Generator, error) {
	clientCfg := &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
	}
	if apiKey != "" {
		clientCfg.APIKey = apiKey
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Generator{client: client}, nil
}

// Generate creates images from a text prompt.
func (g *Generator) Generate(ctx context.Context, prompt string, config *mascotgen.GenerateConfig) (*mascotgen.GenerateResult, error) {
	if err := mascotgen.ValidatePrompt(prompt); err != nil {
		return nil, err
	}

	if config == nil {
		config = mascotgen.DefaultConfig()
	}

	modelName := g.resolveModel(config)

	contents := []*genai.Content{
		{
			Parts: []*genai.Part{
				{Text: prompt},
			},
		},
	}

	genConfig := &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	}
	if config.AspectRatio != "" {
		genConfig.ImageConfig = &genai.ImageConfig{
			AspectRatio: config.AspectRatio.String(),
		}
	}

	result, err := g.client.Models.GenerateContent(ctx, modelName, contents, genConfig)
	if err != nil {
		if rlErr := checkRateLimitError(err, modelName); rlErr != nil {
			return nil, rlErr
		}
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	return parseResult(result)
}

// Models returns the model definitions supported by this provider.
func (g *Generator) Models() []mascotgen.ModelInfo {
	return []mascotgen.ModelInfo{
		FlashExpInfo,
	}
}

// Close releases any resources held by the generator.
func (g *Generator) Close() error {
	// The genai.Client doesn't require explicit closing in the current SDK
	return nil
}

// resolveModel determines which API model name to use.
func (g *Generator) resolveModel(config *mascotgen.GenerateConfig) string {
	if config != nil && config.Model != "" {
		return string(config.Model)
	}
	return APIModelFlashExp
}

// parseResult converts a Gemini response to our result type. Every inline
// image payload is decoded in candidate/part order; a response without any
// is a normal result with the serialized response kept for diagnostics.
func parseResult(result *genai.GenerateContentResponse) (*mascotgen.GenerateResult, error) {
	genResult := &mascotgen.GenerateResult{
		Images: make([]mascotgen.GeneratedImage, 0),
	}
	if result == nil {
		return genResult, nil
	}

	imageIndex := 0
	for _, candidate := range result.Candidates {
		if candidate.Content == nil {
			continue
		}

		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && part.InlineData.Data != nil {
				genResult.Images = append(genResult.Images, mascotgen.GeneratedImage{
					Data:     part.InlineData.Data,
					MIMEType: part.InlineData.MIMEType,
					Index:    imageIndex,
				})
				imageIndex++
			}
		}
	}

	if len(genResult.Images) == 0 {
		if raw, err := json.Marshal(result); err == nil {
			genResult.Raw = string(raw)
		}
	}

	if result.UsageMetadata != nil {
		genResult.UsageMetadata = &mascotgen.UsageMetadata{
			PromptTokens:     int(result.UsageMetadata.PromptTokenCount),
			CandidatesTokens: int(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(result.UsageMetadata.TotalTokenCount),
			ImageCount:       len(genResult.Images),
		}
	}

	return genResult, nil
}

// checkRateLimitError checks if an error from the Gemini API is a rate limit
// error. If so, it wraps it in a RateLimitError for standardized handling;
// otherwise returns nil and the caller keeps the original error.
func checkRateLimitError(err error, model string) error {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return nil
	}

	if apiErr.Code != 429 && apiErr.Status != "RESOURCE_EXHAUSTED" {
		return nil
	}

	return &mascotgen.RateLimitError{
		RetryAfter: 60 * time.Second, // The API doesn't reliably provide Retry-After
		LimitType:  "requests",
		Model:      model,
		Err:        err,
	}
}
