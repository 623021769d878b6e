// Package http provides an HTTP-based implementation of shorts.Fetcher.
// Pages are fetched without executing JavaScript, which is enough for the
// JSON blobs embedded in listing and item pages.
package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/shorts"
	"golang.org/x/net/html/charset"
)

const (
	// DefaultFetchTimeout is the default timeout for HTTP requests.
	DefaultFetchTimeout = 15 * time.Second

	// MinFetchTimeout is the lower bound applied to configured timeouts.
	MinFetchTimeout = 5 * time.Second

	// DefaultUserAgent identifies as a desktop browser.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/124.0 Safari/537.36"

	// DefaultAcceptLanguage asks for English pages so view texts read "views".
	DefaultAcceptLanguage = "en-US,en;q=0.9"
)

// Ensure Fetcher implements shorts.Fetcher at compile time.
var _ shorts.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests.
type Fetcher struct {
	client         *http.Client
	timeout        time.Duration
	userAgent      string
	acceptLanguage string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Values below MinFetchTimeout are raised to it.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = max(d, MinFetchTimeout)
	}
}

// WithUserAgent sets the User-Agent header. An empty value keeps the default.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// WithAcceptLanguage sets the Accept-Language header. An empty value keeps
// the default.
func WithAcceptLanguage(lang string) Option {
	return func(f *Fetcher) {
		if lang != "" {
			f.acceptLanguage = lang
		}
	}
}

// WithClient sets the underlying HTTP client. Its Timeout is overwritten
// with the fetcher timeout.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:        DefaultFetchTimeout,
		userAgent:      DefaultUserAgent,
		acceptLanguage: DefaultAcceptLanguage,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{}
	}
	f.client.Timeout = f.timeout

	return f
}

// Timeout returns the effective request timeout.
func (f *Fetcher) Timeout() time.Duration {
	return f.timeout
}

// Fetch retrieves the HTML content from the given URL. The body is decoded
// to UTF-8 according to the response charset.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept-Language", f.acceptLanguage)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &shorts.StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return "", nil
	}

	r, err := charset.NewReader(bytes.NewReader(raw), resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", url, err)
	}

	body, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
