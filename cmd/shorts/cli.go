package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/shorts"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	WorkDir string

	// NewFetcher builds the page fetcher for the network settings.
	NewFetcher func(cfg NetworkConfig, logger *slog.Logger) (shorts.Fetcher, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose int `short:"v" type:"counter" help:"Increase verbosity (-v info, -vv debug)"`

	Search SearchCmd `cmd:"" default:"withargs" help:"Scrape shorts for a hashtag (default command)"`
	Runs   RunsCmd   `cmd:"" help:"List runs archived in a SQLite output file"`
}

// SearchCmd is the default command. Flags override values from the config
// file.
type SearchCmd struct {
	Hashtag     string  `help:"Hashtag to search, with or without the leading #"`
	MaxItems    *int    `name:"max-items" help:"Maximum number of shorts to retrieve"`
	Format      string  `help:"Output format: json, csv, xml or sqlite"`
	Output      string  `help:"Output file path"`
	Config      string  `help:"Path to a YAML or JSON config file (default: shorts.yaml)"`
	Browser     bool    `help:"Render pages in headless Chrome"`
	Concurrency *int    `short:"c" help:"Number of shorts fetched in parallel"`
	Retries     *int    `help:"Retries per page after a failed fetch"`
	RateLimit   float64 `name:"rate-limit" help:"Requests per second to each host (0 disables)"`
}

// RunsCmd lists archived runs, prints the records of one run, or deletes
// one run.
type RunsCmd struct {
	DB      string `arg:"" help:"SQLite file written with --format sqlite"`
	Hashtag string `help:"Only list runs for this hashtag"`
	Limit   int    `short:"n" default:"20" help:"Maximum number of runs to list"`
	ID      string `name:"id" xor:"target" help:"Print the records of this run as JSON"`
	Delete  string `name:"delete" xor:"target" help:"Delete this run and its records"`
	Force   bool   `help:"Confirm --delete"`
}
