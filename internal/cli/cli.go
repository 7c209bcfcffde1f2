// Package cli implements the shared command surface of the mascotgen
// binaries: one positional prompt, one positional output path, both
// optional.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mhpenta/mascotgen"
)

// Command-contract defaults.
const (
	DefaultPrompt = "Cute mascot character"
	DefaultOutput = "output.png"
)

// GeneratorFactory creates the transport a binary runs with.
type GeneratorFactory func(ctx context.Context) (mascotgen.ImageGenerator, error)

// AppOption customizes App dependencies.
type AppOption func(*App)

// App holds CLI state and runtime dependencies.
type App struct {
	root *cobra.Command

	newGenerator GeneratorFactory
	stdout       io.Writer
	stderr       io.Writer
	cfgPath      string

	// emptyMessage is printed when the vendor responds without an image
	// payload; each transport keeps its historical wording.
	emptyMessage string
}

// WithStdout redirects user-facing output (primarily for tests).
func WithStdout(w io.Writer) AppOption {
	return func(a *App) {
		if w != nil {
			a.stdout = w
		}
	}
}

// WithStderr redirects log output.
func WithStderr(w io.Writer) AppOption {
	return func(a *App) {
		if w != nil {
			a.stderr = w
		}
	}
}

// WithConfigPath overrides the config file location.
func WithConfigPath(path string) AppOption {
	return func(a *App) {
		a.cfgPath = path
	}
}

// WithEmptyResultMessage sets the diagnostic printed when no image payload
// is present in a successful response.
func WithEmptyResultMessage(msg string) AppOption {
	return func(a *App) {
		a.emptyMessage = msg
	}
}

// NewApp builds the command for one transport binary.
func NewApp(name, short string, factory GeneratorFactory, opts ...AppOption) *App {
	a := &App{
		newGenerator: factory,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		cfgPath:      DefaultConfigPath(),
		emptyMessage: "No image generated",
	}
	for _, opt := range opts {
		opt(a)
	}

	a.root = &cobra.Command{
		Use:          fmt.Sprintf("%s [prompt] [output]", name),
		Short:        short,
		Args:         cobra.MaximumNArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), args)
		},
	}
	a.root.SetOut(a.stdout)
	a.root.SetErr(a.stderr)

	return a
}

// SetArgs overrides the command-line arguments (primarily for tests).
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// Execute runs the command.
func (a *App) Execute(ctx context.Context) error {
	return a.root.ExecuteContext(ctx)
}

// run is the whole pipeline: one request, one decode, at most one write.
func (a *App) run(ctx context.Context, args []string) error {
	prompt := DefaultPrompt
	if len(args) > 0 && args[0] != "" {
		prompt = args[0]
	}
	output := DefaultOutput
	if len(args) > 1 && args[1] != "" {
		output = args[1]
	}

	cfg, err := LoadConfig(a.cfgPath)
	if err != nil {
		return err
	}

	genConfig := mascotgen.DefaultConfig()
	genConfig.OutputMIMEType = mascotgen.GetMIMEType(output)
	if cfg.AspectRatio != "" {
		genConfig.AspectRatio = mascotgen.AspectRatio(cfg.AspectRatio)
	}
	if cfg.Model != "" {
		genConfig = genConfig.WithModel(mascotgen.Model(cfg.Model))
	}

	gen, err := a.newGenerator(ctx)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	manager := mascotgen.NewManager(gen,
		mascotgen.WithLogger(logger),
		mascotgen.WithStorage(mascotgen.NewDirStorage("")),
	)
	defer manager.Close()

	result, err := manager.Generate(ctx, prompt, genConfig)
	if err != nil {
		// Non-200 vendor responses are a printed diagnostic, not a crash.
		if httpErr, ok := mascotgen.IsHTTPError(err); ok {
			fmt.Fprintf(a.stdout, "Error: %d\n", httpErr.StatusCode)
			fmt.Fprintln(a.stdout, httpErr.Body)
			return nil
		}
		return err
	}

	if !result.HasImage() {
		fmt.Fprintln(a.stdout, a.emptyMessage)
		fmt.Fprintln(a.stdout, result.Raw)
		return nil
	}

	path, err := manager.SaveResult(ctx, result, output)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Saved to %s\n", path)
	return nil
}
