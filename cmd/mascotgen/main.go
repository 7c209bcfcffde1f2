// Mascotgen generates a PNG from a text prompt using the Gemini SDK
// transport.
//
// Usage: mascotgen [prompt] [output]
//
// Credentials come from GOOGLE_API_KEY, falling back to GEMINI_API_KEY.
package main

import (
	"context"
	"os"

	"github.com/mhpenta/mascotgen"
	"github.com/mhpenta/mascotgen/internal/cli"
	"github.com/mhpenta/mascotgen/provider/gemini"
)

func main() {
	app := cli.NewApp(
		"mascotgen",
		"Generate a mascot image from a text prompt (Gemini SDK)",
		func(ctx context.Context) (mascotgen.ImageGenerator, error) {
			return gemini.New(ctx, gemini.APIKeyFromEnv())
		},
		cli.WithEmptyResultMessage("No image generated"),
	)

	if err := app.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
