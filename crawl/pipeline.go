// Package crawl provides the extraction pipeline. It coordinates
// identifier discovery on a listing page, fetching of each item page,
// field extraction and record assembly.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/fwojciec/shorts"
	"golang.org/x/sync/errgroup"
)

// Pipeline turns a listing document into an ordered sequence of records.
//
// Items are processed strictly one after another unless Concurrency is
// greater than one. Either way records are returned in discovery order and
// carry contiguous sequence numbers starting at 1.
type Pipeline struct {
	Fetcher     shorts.Fetcher
	IDs         shorts.IDExtractor
	Extractor   shorts.Extractor
	RateLimiter shorts.DomainLimiter
	Logger      *slog.Logger
	Concurrency int

	// RetryDelays are the waits between fetch attempts of a single page.
	// Nil means DefaultRetryDelays; an empty slice disables retries.
	RetryDelays []time.Duration
}

// Result holds the outcome of a pipeline run.
type Result struct {
	Records []*shorts.Record

	// Discovered is the number of distinct identifiers on the listing.
	Discovered int
	// Attempted is the number of items processed after bounding.
	Attempted int
	// Failed is the number of items skipped because of errors.
	Failed int

	ListingURL  string
	ListingHash string
}

// Empty reports whether the run produced no records.
func (r *Result) Empty() bool {
	return len(r.Records) == 0
}

// ProgressEvent reports progress during a pipeline run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	ItemID    string
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting pipeline progress.
// Calls are serialized.
type ProgressFunc func(event ProgressEvent)

// itemResult holds the outcome of processing a single item.
type itemResult struct {
	id      string
	extract *shorts.ExtractResult
	err     error
}

// Bound truncates ids to at most maxItems entries. maxItems below 1 is
// treated as 1.
func Bound(ids []string, maxItems int) []string {
	maxItems = max(1, maxItems)
	if len(ids) <= maxItems {
		return ids
	}
	return ids[:maxItems]
}

// Search fetches the listing page for hashtag and runs the pipeline on it.
// Failing to fetch the listing is returned as an error since no progress is
// possible without it.
func (p *Pipeline) Search(ctx context.Context, hashtag string, maxItems int, progress ProgressFunc) (*Result, error) {
	tag := shorts.NormalizeHashtag(hashtag)
	if tag == "" {
		return nil, shorts.Errorf(shorts.EINVALID, "hashtag must not be empty")
	}

	listingURL := shorts.ListingURL(tag)
	p.logger().Info("searching shorts", "hashtag", tag, "url", listingURL)

	listing, err := FetchWithRetry(ctx, p.Fetcher, listingURL, p.retryDelays(), p.logger())
	if err != nil {
		return nil, fmt.Errorf("fetching listing for #%s: %w", tag, err)
	}

	result, err := p.Run(ctx, listing, maxItems, progress)
	if result != nil {
		result.ListingURL = listingURL
		result.ListingHash = ComputeHash(listing)
	}
	return result, err
}

// Run discovers identifiers in the listing document, bounds them to
// maxItems and processes each item. Items that fail to fetch or extract are
// logged and skipped without consuming a sequence number. Only context
// cancellation is returned as an error, together with the records built so far.
func (p *Pipeline) Run(ctx context.Context, listing string, maxItems int, progress ProgressFunc) (*Result, error) {
	logger := p.logger()

	discovered := p.IDs.ExtractIDs(listing)
	result := &Result{
		Records:    []*shorts.Record{},
		Discovered: len(discovered),
	}
	if len(discovered) == 0 {
		logger.Warn("no shorts found on listing")
		return result, nil
	}

	ids := Bound(discovered, maxItems)
	result.Attempted = len(ids)
	logger.Debug("discovered shorts", "count", len(discovered), "bounded", len(ids))

	var mu sync.Mutex
	completed := 0
	report := func(event ProgressEvent) {
		if progress == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if event.Type == ProgressCompleted || event.Type == ProgressFailed {
			completed++
			event.Completed = completed
		}
		progress(event)
	}

	report(ProgressEvent{Type: ProgressStarted, Total: len(ids)})

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	results := make([]itemResult, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, id := range ids {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			r := p.processItem(gctx, id)
			results[i] = r

			event := ProgressEvent{
				Type:   ProgressCompleted,
				Total:  len(ids),
				ItemID: id,
				URL:    shorts.ItemURL(id),
				Error:  r.err,
			}
			if r.err != nil {
				event.Type = ProgressFailed
			}
			report(event)
			return nil
		})
	}
	_ = g.Wait()

	for _, r := range results {
		if r.id == "" {
			continue
		}
		if r.err != nil {
			result.Failed++
			logger.Warn("skipping short", "id", r.id, "err", r.err)
			continue
		}
		seq := len(result.Records) + 1
		rec := shorts.BuildRecord(seq, r.id, r.extract.Title, shorts.ViewsFromMatch(r.extract.Views))
		result.Records = append(result.Records, rec)
	}

	report(ProgressEvent{Type: ProgressFinished, Completed: len(ids), Total: len(ids)})

	if err := ctx.Err(); err != nil {
		return result, err
	}

	if result.Empty() {
		logger.Warn("no shorts could be processed", "attempted", result.Attempted, "failed", result.Failed)
	} else {
		logger.Info("finished parsing shorts", "records", len(result.Records), "failed", result.Failed)
	}
	return result, nil
}

// processItem fetches and extracts a single item.
func (p *Pipeline) processItem(ctx context.Context, id string) itemResult {
	result := itemResult{id: id}
	itemURL := shorts.ItemURL(id)

	if err := ctx.Err(); err != nil {
		result.err = err
		return result
	}

	if p.RateLimiter != nil {
		if err := p.RateLimiter.Wait(ctx, hostOf(itemURL)); err != nil {
			result.err = err
			return result
		}
	}

	doc, err := FetchWithRetry(ctx, p.Fetcher, itemURL, p.retryDelays(), p.logger())
	if err != nil {
		result.err = err
		return result
	}

	extracted, err := p.Extractor.Extract(doc)
	if err != nil {
		result.err = fmt.Errorf("extracting %s: %w", id, err)
		return result
	}

	if extracted == nil {
		extracted = &shorts.ExtractResult{}
	}
	result.extract = extracted
	return result
}

func (p *Pipeline) retryDelays() []time.Duration {
	if p.RetryDelays == nil {
		return DefaultRetryDelays()
	}
	return p.RetryDelays
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}
