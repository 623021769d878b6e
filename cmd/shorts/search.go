package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/shorts"
	"github.com/fwojciec/shorts/crawl"
	shortscsv "github.com/fwojciec/shorts/csv"
	"github.com/fwojciec/shorts/etree"
	"github.com/fwojciec/shorts/fs"
	shortsjson "github.com/fwojciec/shorts/json"
	shortsregexp "github.com/fwojciec/shorts/regexp"
	shortsslog "github.com/fwojciec/shorts/slog"
	"github.com/fwojciec/shorts/sqlite"
)

// progressURLWidth bounds item URLs in progress lines.
const progressURLWidth = 60

// progressReporter prints one line per processed short to w.
func progressReporter(w io.Writer) crawl.ProgressFunc {
	return func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(w, "Found %d shorts\n", event.Total)
		case crawl.ProgressCompleted:
			fmt.Fprintf(w, "  [%d/%d] %s\n", event.Completed, event.Total, crawl.TruncateURL(event.URL, progressURLWidth))
		case crawl.ProgressFailed:
			fmt.Fprintf(w, "  [%d/%d] skip %s: %v\n", event.Completed, event.Total, crawl.TruncateURL(event.URL, progressURLWidth), event.Error)
		case crawl.ProgressFinished:
			// Summary printed after export
		}
	}
}

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	cfg, err := c.loadConfig(deps)
	if err != nil {
		return err
	}
	c.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := deps.Logger
	outputPath := fs.ResolveOutputPath(deps.WorkDir, cfg.OutputPath())
	logger.Info("starting scrape",
		"hashtag", cfg.Hashtag,
		"max_items", cfg.MaxItems,
		"format", cfg.Output.Format,
		"output", outputPath,
	)

	fetcher, err := deps.NewFetcher(cfg.Network, logger)
	if err != nil {
		return err
	}
	defer fetcher.Close()

	extractor := NewExtractor()
	logger.Debug("extraction cascades",
		"title", extractor.Title.Names(),
		"views", extractor.Views.Names(),
	)

	pipeline := &crawl.Pipeline{
		Fetcher:     shortsslog.NewLoggingFetcher(fetcher, logger),
		IDs:         shortsregexp.NewIDExtractor(),
		Extractor:   shortsslog.NewLoggingExtractor(extractor, logger),
		RateLimiter: crawl.NewDomainLimiter(cfg.Network.RateLimit),
		Logger:      logger,
		Concurrency: cfg.Concurrency,
		RetryDelays: crawl.RetryDelays(cfg.Network.Retries),
	}

	result, err := pipeline.Search(deps.Ctx, cfg.Hashtag, cfg.MaxItems, progressReporter(deps.Stderr))
	if err != nil {
		return fmt.Errorf("scraping failed: %w", err)
	}

	if result.Empty() {
		logger.Warn("no shorts found", "hashtag", "#"+cfg.Hashtag)
	} else {
		logger.Info("collected records", "count", len(result.Records))
	}

	run := &shorts.Run{
		Hashtag:     cfg.Hashtag,
		ListingURL:  result.ListingURL,
		ListingHash: result.ListingHash,
		Discovered:  result.Discovered,
		Failed:      result.Failed,
	}

	if err := export(deps, cfg.Output.Format, outputPath, run, result.Records); err != nil {
		return fmt.Errorf("failed to export data: %w", err)
	}

	logger.Info("finished", "output", outputPath)
	fmt.Fprintf(deps.Stdout, "Scraped %d shorts for '#%s' -> %s\n", len(result.Records), cfg.Hashtag, outputPath)
	return nil
}

// loadConfig reads the --config file, or the default file when present.
func (c *SearchCmd) loadConfig(deps *Dependencies) (Config, error) {
	explicit := c.Config != ""
	path := c.Config
	if !explicit {
		path = DefaultConfigPath
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(deps.WorkDir, path)
	}

	cfg, found, err := LoadConfig(path, explicit)
	if err != nil {
		return Config{}, err
	}
	if found {
		deps.Logger.Info("loaded configuration", "path", path)
	} else {
		deps.Logger.Warn("no config file found, using built-in defaults", "path", path)
	}
	return cfg, nil
}

// apply overrides cfg with the flags that were given.
func (c *SearchCmd) apply(cfg *Config) {
	if c.Hashtag != "" {
		cfg.Hashtag = c.Hashtag
	}
	if c.MaxItems != nil {
		cfg.MaxItems = max(1, *c.MaxItems)
	}
	if c.Format != "" {
		cfg.Output.Format = c.Format
	}
	if c.Output != "" {
		cfg.Output.Path = c.Output
	}
	if c.Browser {
		cfg.Network.Browser = true
	}
	if c.Concurrency != nil {
		cfg.Concurrency = *c.Concurrency
	}
	if c.Retries != nil {
		cfg.Network.Retries = *c.Retries
	}
	if c.RateLimit != 0 {
		cfg.Network.RateLimit = c.RateLimit
	}
}

// export writes records with the exporter for format.
func export(deps *Dependencies, format, path string, run *shorts.Run, records []*shorts.Record) error {
	var exporter shorts.Exporter
	switch format {
	case shorts.FormatJSON:
		exporter = fs.NewFileExporter(path, shortsjson.NewEncoder())
	case shorts.FormatCSV:
		exporter = fs.NewFileExporter(path, shortscsv.NewEncoder())
	case shorts.FormatXML:
		exporter = fs.NewFileExporter(path, etree.NewEncoder())
	case shorts.FormatSQLite:
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
		db := sqlite.NewDB(path)
		if err := db.Open(); err != nil {
			return err
		}
		defer db.Close()
		exporter = sqlite.NewRecordService(db)
	default:
		return shorts.Errorf(shorts.EINVALID, "unsupported output format %q", format)
	}

	return shortsslog.NewLoggingExporter(exporter, deps.Logger).Export(deps.Ctx, run, records)
}
