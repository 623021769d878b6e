package shorts

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Fetcher retrieves raw document text from URLs.
// Timeouts and the identity header are configured when the Fetcher is
// constructed. A Fetcher must be safe to reuse across sequential calls.
type Fetcher interface {
	// Fetch returns the document at url. A failed retrieval is always
	// reported as an error, so an empty string with a nil error is a
	// successfully fetched empty document.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (doc string, err error)

	// Close releases resources held by the Fetcher.
	Close() error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

// StatusError reports a response with a status other than 200.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}

// Temporary reports whether a later attempt may succeed: 429 and 5xx.
func (e *StatusError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// IsRetryable reports whether a failed fetch is worth another attempt.
// Cancellation and permanent status errors are not. Any other error,
// timeouts included, is treated as a transient transport failure.
func IsRetryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Temporary()
	}
	return true
}
