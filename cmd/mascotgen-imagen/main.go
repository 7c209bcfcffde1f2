// Mascotgen-imagen generates a PNG from a text prompt by calling the
// Imagen predict endpoint directly over HTTP.
//
// Usage: mascotgen-imagen [prompt] [output]
//
// Credentials come from GEMINI_API_KEY only.
package main

import (
	"context"
	"os"

	"github.com/mhpenta/mascotgen"
	"github.com/mhpenta/mascotgen/internal/cli"
	"github.com/mhpenta/mascotgen/provider/imagen"
)

func main() {
	app := cli.NewApp(
		"mascotgen-imagen",
		"Generate a mascot image from a text prompt (Imagen HTTP API)",
		func(ctx context.Context) (mascotgen.ImageGenerator, error) {
			return imagen.New(imagen.APIKeyFromEnv())
		},
		cli.WithEmptyResultMessage("No image in response"),
	)

	if err := app.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
