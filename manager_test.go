package mascotgen

import (
	"context"
	"errors"
	"testing"

	"github.com/mhpenta/mascotgen/ratelimiter"
)

func testModels() []ModelInfo {
	return []ModelInfo{
		{
			Name:         "test-model",
			Provider:     "test-provider",
			APIModelName: "test-model-api",
		},
	}
}

func TestManager_Generate_RoutesToProvider(t *testing.T) {
	var gotPrompt string
	var gotModel Model
	mockGen := &MockImageGenerator{
		ModelsFunc: testModels,
		GenerateFunc: func(ctx context.Context, prompt string, config *GenerateConfig) (*GenerateResult, error) {
			gotPrompt = prompt
			gotModel = config.Model
			return &GenerateResult{
				Images: []GeneratedImage{{Data: []byte("fake-image"), MIMEType: "image/png"}},
			}, nil
		},
	}

	manager := NewManager(mockGen)
	defer manager.Close()

	result, err := manager.Generate(context.Background(), "red fox logo", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPrompt != "red fox logo" {
		t.Errorf("prompt = %q", gotPrompt)
	}
	// The manager rewrites the public name to the API model name.
	if gotModel != "test-model-api" {
		t.Errorf("model = %q, want test-model-api", gotModel)
	}
	if !result.HasImage() {
		t.Error("expected an image")
	}
}

func TestManager_Generate_DefaultsToFirstModel(t *testing.T) {
	mockGen := &MockImageGenerator{
		ModelsFunc: func() []ModelInfo {
			return []ModelInfo{
				{Name: "first", Provider: "p", APIModelName: "first-api"},
				{Name: "second", Provider: "p", APIModelName: "second-api"},
			}
		},
		GenerateFunc: func(ctx context.Context, prompt string, config *GenerateConfig) (*GenerateResult, error) {
			if config.Model != "first-api" {
				t.Errorf("model = %q, want first-api", config.Model)
			}
			return &GenerateResult{}, nil
		},
	}

	manager := NewManager(mockGen)
	defer manager.Close()

	if _, err := manager.Generate(context.Background(), "hello", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestManager_ModelAccessors(t *testing.T) {
	manager := NewManager(&MockImageGenerator{ModelsFunc: testModels})
	defer manager.Close()

	models := manager.ListModels()
	if len(models) != 1 || models[0] != "test-model" {
		t.Errorf("ListModels = %v", models)
	}

	info, ok := manager.GetModelInfo("test-model")
	if !ok || info.APIModelName != "test-model-api" {
		t.Errorf("GetModelInfo = %+v, %v", info, ok)
	}

	if _, ok := manager.GetModelInfo("missing"); ok {
		t.Error("expected missing model to be absent")
	}

	if infos := manager.Models(); len(infos) != 1 {
		t.Errorf("Models() = %v", infos)
	}
}

func TestManager_Generate_UnknownModel(t *testing.T) {
	manager := NewManager(&MockImageGenerator{ModelsFunc: testModels})
	defer manager.Close()

	_, err := manager.Generate(context.Background(), "hello", &GenerateConfig{Model: "nope"})
	if !errors.Is(err, ErrModelNotRegistered) {
		t.Errorf("err = %v, want ErrModelNotRegistered", err)
	}
}

func TestManager_Generate_RateLimit(t *testing.T) {
	mockGen := &MockImageGenerator{
		ModelsFunc: func() []ModelInfo {
			return []ModelInfo{
				{
					Name:         "test-model",
					Provider:     "test-provider",
					APIModelName: "test-model-api",
					RateLimits: RateLimits{
						TokensPerMinute:   100, // Small limit for testing
						RequestsPerMinute: 10,
					},
				},
			}
		},
		GenerateFunc: func(ctx context.Context, prompt string, config *GenerateConfig) (*GenerateResult, error) {
			return &GenerateResult{
				Images: []GeneratedImage{{Data: []byte("fake-image")}},
			}, nil
		},
	}

	manager := NewManager(mockGen)
	defer manager.Close()

	ctx := context.Background()
	// ~3 estimated tokens + 100 overhead = 103 > the 100 token budget.
	prompt := "test prompt"

	_, err := manager.Generate(ctx, prompt, &GenerateConfig{Model: "test-model"})
	if err == nil {
		t.Error("expected rate limit error, got nil")
	} else if !IsRateLimitError(err) {
		t.Errorf("expected RateLimitError, got %T: %v", err, err)
	}

	// A larger budget lets the same request through.
	manager.SetRateLimiter("test-model", ratelimiter.New(200, 10))

	result, err := manager.Generate(ctx, prompt, &GenerateConfig{Model: "test-model"})
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if len(result.Images) == 0 {
		t.Error("expected images, got none")
	}
}

func TestManager_SaveResult(t *testing.T) {
	manager := NewManager(&MockImageGenerator{ModelsFunc: testModels})
	defer manager.Close()

	result := &GenerateResult{Images: []GeneratedImage{{Data: []byte("png"), MIMEType: "image/png"}}}

	// No storage configured.
	if _, err := manager.SaveResult(context.Background(), result, "out.png"); !errors.Is(err, ErrStorageNotConfigured) {
		t.Errorf("err = %v, want ErrStorageNotConfigured", err)
	}

	dir := t.TempDir()
	manager.SetStorage(NewDirStorage(dir))

	path, err := manager.SaveResult(context.Background(), result, "out.png")
	if err != nil {
		t.Fatalf("SaveResult: %v", err)
	}
	if path == "" {
		t.Error("expected saved path")
	}
}

func TestManager_Close_PropagatesErrors(t *testing.T) {
	closeErr := errors.New("close failed")
	manager := NewManager(&MockImageGenerator{
		ModelsFunc: testModels,
		CloseFunc:  func() error { return closeErr },
	})

	if err := manager.Close(); !errors.Is(err, closeErr) {
		t.Errorf("err = %v, want close failure", err)
	}
}
