package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/shorts"
	shortshttp "github.com/fwojciec/shorts/http"
	"github.com/fwojciec/shorts/rod"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// WorkDir anchors relative config and output paths. Set before calling Run().
	WorkDir string

	// NewFetcher is used instead of the HTTP or browser fetcher when set.
	NewFetcher func(cfg NetworkConfig, logger *slog.Logger) (shorts.Fetcher, error)
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return &Main{WorkDir: wd}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("shorts"),
		kong.Description("Collect metadata of short videos listed under a hashtag"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	newFetcher := m.NewFetcher
	if newFetcher == nil {
		newFetcher = NewFetcher
	}

	deps := &Dependencies{
		Ctx:        ctx,
		Stdout:     stdout,
		Stderr:     stderr,
		Logger:     NewLogger(stderr, cli.Verbose),
		WorkDir:    m.WorkDir,
		NewFetcher: newFetcher,
	}

	return kongCtx.Run(deps)
}

// NewLogger returns a text logger on w. Verbosity 0 logs warnings, 1 adds
// info and 2 or more adds debug output.
func NewLogger(w io.Writer, verbosity int) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbosity == 1:
		level = slog.LevelInfo
	case verbosity >= 2:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewFetcher builds the HTTP fetcher, or the headless browser fetcher when
// cfg.Browser is set.
func NewFetcher(cfg NetworkConfig, logger *slog.Logger) (shorts.Fetcher, error) {
	if cfg.Browser {
		f, err := rod.NewFetcher(
			rod.WithFetchTimeout(cfg.TimeoutDuration()),
			rod.WithUserAgent(cfg.UserAgent),
			rod.WithAcceptLanguage(cfg.AcceptLanguage),
		)
		if err != nil {
			logger.Error("Chrome or Chromium must be installed for --browser")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		return f, nil
	}

	return shortshttp.NewFetcher(
		shortshttp.WithTimeout(cfg.TimeoutDuration()),
		shortshttp.WithUserAgent(cfg.UserAgent),
		shortshttp.WithAcceptLanguage(cfg.AcceptLanguage),
	), nil
}
