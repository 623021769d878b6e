package crawl

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/shorts"
)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// RetryDelays returns the first n default delays. n is clamped to
// [0, len(DefaultRetryDelays())].
func RetryDelays(n int) []time.Duration {
	delays := DefaultRetryDelays()
	n = max(0, min(n, len(delays)))
	return delays[:n]
}

// FetchWithRetry fetches url, retrying once per entry in delays after
// waiting that long. An empty delays slice means a single attempt.
// Errors that shorts.IsRetryable rejects end the loop immediately.
// Retries are logged at debug level when logger is not nil.
func FetchWithRetry(ctx context.Context, fetcher shorts.Fetcher, url string, delays []time.Duration, logger *slog.Logger) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		doc, err := fetcher.Fetch(ctx, url)
		if err == nil {
			return doc, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 || !shorts.IsRetryable(err) {
			break
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		if logger != nil {
			logger.Debug("retry fetch",
				"url", url,
				"attempt", attempt+2,
				"err", err,
			)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
