package gemini

import (
	"testing"

	"github.com/mhpenta/mascotgen"
	"google.golang.org/genai"
)

func TestParseResult_InlineDataInOrder(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{
						{Text: "Here is your mascot:"},
						{InlineData: &genai.Blob{Data: []byte("first"), MIMEType: "image/png"}},
						{InlineData: &genai.Blob{Data: []byte("second"), MIMEType: "image/png"}},
					},
				},
			},
		},
	}

	result, err := parseResult(resp)
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Images) != 2 {
		t.Fatalf("len(Images) = %d, want 2", len(result.Images))
	}
	if string(result.Images[0].Data) != "first" {
		t.Errorf("Images[0] = %q, want first", result.Images[0].Data)
	}
	if result.Images[0].Index != 0 || result.Images[1].Index != 1 {
		t.Error("image indices should follow part order")
	}
	if result.Raw != "" {
		t.Error("Raw should be empty when images are present")
	}
}

func TestParseResult_NoImageKeepsRawResponse(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{
						{Text: "I can't draw that."},
					},
				},
			},
		},
	}

	result, err := parseResult(resp)
	if err != nil {
		t.Fatal(err)
	}

	if result.HasImage() {
		t.Error("expected no images")
	}
	if result.Raw == "" {
		t.Error("Raw should carry the serialized response for diagnostics")
	}
}

func TestParseResult_NilCandidateContent(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: nil}},
	}

	result, err := parseResult(resp)
	if err != nil {
		t.Fatal(err)
	}
	if result.HasImage() {
		t.Error("expected no images")
	}
}

func TestParseResult_UsageMetadata(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{
						{InlineData: &genai.Blob{Data: []byte("img"), MIMEType: "image/png"}},
					},
				},
			},
		},
		UsageMetadata: &genai.GenerateContentResponseUsageMetadata{
			PromptTokenCount:     10,
			CandidatesTokenCount: 20,
			TotalTokenCount:      30,
		},
	}

	result, err := parseResult(resp)
	if err != nil {
		t.Fatal(err)
	}

	if result.UsageMetadata == nil {
		t.Fatal("expected usage metadata")
	}
	if result.UsageMetadata.TotalTokens != 30 {
		t.Errorf("TotalTokens = %d, want 30", result.UsageMetadata.TotalTokens)
	}
	if result.UsageMetadata.ImageCount != 1 {
		t.Errorf("ImageCount = %d, want 1", result.UsageMetadata.ImageCount)
	}
}

func TestResolveModel(t *testing.T) {
	g := &Generator{}

	if got := g.resolveModel(mascotgen.DefaultConfig()); got != APIModelFlashExp {
		t.Errorf("default model = %q, want %q", got, APIModelFlashExp)
	}
	if got := g.resolveModel(&mascotgen.GenerateConfig{Model: "custom"}); got != "custom" {
		t.Errorf("model = %q, want custom", got)
	}
}

func TestAPIKeyFromEnv(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	if got := APIKeyFromEnv(); got != "gemini-key" {
		t.Errorf("key = %q, want gemini-key", got)
	}

	// GOOGLE_API_KEY wins when both are set.
	t.Setenv("GOOGLE_API_KEY", "google-key")
	if got := APIKeyFromEnv(); got != "google-key" {
		t.Errorf("key = %q, want google-key", got)
	}
}
