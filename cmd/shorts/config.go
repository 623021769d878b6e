package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/shorts"
	shortshttp "github.com/fwojciec/shorts/http"
	"gopkg.in/yaml.v3"
)

// Built-in configuration defaults.
const (
	DefaultHashtag     = "amazing"
	DefaultMaxItems    = 50
	DefaultConcurrency = 1
	DefaultRetries     = 3
	DefaultTimeoutSec  = 15

	// DefaultConfigPath is looked up in the working directory when no
	// --config flag is given.
	DefaultConfigPath = "shorts.yaml"
)

// Config is the runner configuration, read from YAML or JSON.
type Config struct {
	Hashtag     string        `yaml:"hashtag" json:"hashtag"`
	MaxItems    int           `yaml:"max_items" json:"max_items"`
	Concurrency int           `yaml:"concurrency" json:"concurrency"`
	Output      OutputConfig  `yaml:"output" json:"output"`
	Network     NetworkConfig `yaml:"network" json:"network"`
}

// OutputConfig selects where and how records are written.
type OutputConfig struct {
	Format string `yaml:"format" json:"format"`
	// Path defaults to data/shorts_output.<ext> for the chosen format.
	Path string `yaml:"path" json:"path"`
}

// NetworkConfig configures page fetching.
type NetworkConfig struct {
	// Timeout is the per-request timeout in seconds, at least 5.
	Timeout        int     `yaml:"timeout" json:"timeout"`
	UserAgent      string  `yaml:"user_agent" json:"user_agent"`
	AcceptLanguage string  `yaml:"accept_language" json:"accept_language"`
	Browser        bool    `yaml:"browser" json:"browser"`
	RateLimit      float64 `yaml:"rate_limit" json:"rate_limit"`
	Retries        int     `yaml:"retries" json:"retries"`
}

// TimeoutDuration returns the request timeout clamped to the fetcher minimum.
func (n NetworkConfig) TimeoutDuration() time.Duration {
	return max(time.Duration(n.Timeout)*time.Second, shortshttp.MinFetchTimeout)
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	cfg := baseConfig()
	cfg.Hashtag = DefaultHashtag
	return cfg
}

// baseConfig holds the defaults applied under a loaded file. The hashtag
// has no default here so that a config file without one is rejected.
func baseConfig() Config {
	return Config{
		MaxItems:    DefaultMaxItems,
		Concurrency: DefaultConcurrency,
		Output: OutputConfig{
			Format: shorts.FormatJSON,
		},
		Network: NetworkConfig{
			Timeout:        DefaultTimeoutSec,
			UserAgent:      shortshttp.DefaultUserAgent,
			AcceptLanguage: shortshttp.DefaultAcceptLanguage,
			Retries:        DefaultRetries,
		},
	}
}

// ParseConfig decodes configuration over the base defaults. Files ending
// in .json are decoded as JSON, anything else as YAML. Unknown keys are
// rejected.
func ParseConfig(name string, data []byte) (Config, error) {
	cfg := baseConfig()

	var err error
	if strings.EqualFold(filepath.Ext(name), ".json") {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&cfg)
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&cfg)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return Config{}, shorts.Errorf(shorts.EINVALID, "invalid config: %v", err)
	}
	return cfg, nil
}

// LoadConfig reads the configuration at path. When explicit is false and
// the file does not exist, DefaultConfig is returned with found set to
// false. Any other read or parse failure is an error.
func LoadConfig(path string, explicit bool) (cfg Config, found bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return DefaultConfig(), false, nil
	}
	if err != nil {
		return Config{}, false, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg, err = ParseConfig(path, data)
	if err != nil {
		return Config{}, false, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, true, nil
}

// Validate normalizes the configuration and reports the first invalid
// setting as an EINVALID error.
func (c *Config) Validate() error {
	c.Hashtag = shorts.NormalizeHashtag(c.Hashtag)
	if c.Hashtag == "" {
		return shorts.Errorf(shorts.EINVALID, "no hashtag provided, use --hashtag or set it in the config file")
	}

	format, err := shorts.ParseFormat(c.Output.Format)
	if err != nil {
		return err
	}
	c.Output.Format = format

	c.MaxItems = max(1, c.MaxItems)
	c.Concurrency = max(1, c.Concurrency)

	if c.Network.RateLimit < 0 {
		return shorts.Errorf(shorts.EINVALID, "network.rate_limit must be non-negative")
	}
	if c.Network.Retries < 0 {
		return shorts.Errorf(shorts.EINVALID, "network.retries must be non-negative")
	}
	return nil
}

// OutputPath returns the configured output path, or the default file name
// for the output format.
func (c *Config) OutputPath() string {
	if c.Output.Path != "" {
		return c.Output.Path
	}
	return "data/shorts_output." + extension(c.Output.Format)
}

func extension(format string) string {
	if format == shorts.FormatSQLite {
		return "db"
	}
	return format
}
