package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/kjarman/uscf-history/internal/diag"
)

const (
	UserAgent = "uscf-history/1.0 (github.com/kjarman/uscf-history)"

	DefaultTimeout    = 15 * time.Second
	DefaultMaxRetries = 3
	// DefaultDelay is the fixed pause before every attempt. The MSA server
	// throttles aggressive clients, so the first attempt waits too.
	DefaultDelay = 1 * time.Second
)

// Fetcher retrieves document bodies with a fixed-delay retry policy. There is
// no exponential backoff and no caching across calls.
type Fetcher struct {
	client     *http.Client
	delay      time.Duration
	maxRetries int
	reporter   diag.Reporter
}

// New creates a Fetcher. timeout bounds each individual attempt; maxRetries
// is the total attempt count and is clamped to at least one.
func New(timeout, delay time.Duration, maxRetries int, reporter diag.Reporter) *Fetcher {
	if maxRetries < 1 {
		maxRetries = 1
	}
	if reporter == nil {
		reporter = diag.Discard
	}
	return &Fetcher{
		client:     &http.Client{Timeout: timeout},
		delay:      delay,
		maxRetries: maxRetries,
		reporter:   reporter,
	}
}

// Fetch retrieves the body at rawURL, retrying transient failures (network
// errors, timeouts, non-200 statuses) up to the configured attempt count.
// Exhausting every attempt returns the final error.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	var body string
	attempt := 0

	op := func() error {
		attempt++
		select {
		case <-ctx.Done():
			return backoff.Permanent(ctx.Err())
		case <-time.After(f.delay):
		}

		f.reporter.Debug("fetching", diag.Fields{
			"url":     rawURL,
			"attempt": attempt,
			"max":     f.maxRetries,
		})

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}
		req.Header.Set("User-Agent", UserAgent)

		resp, err := f.client.Do(req)
		if err != nil {
			f.reporter.Debug("fetch attempt failed", diag.Fields{"url": rawURL, "error": err.Error()})
			return fmt.Errorf("fetching page: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			f.reporter.Debug("fetch attempt failed", diag.Fields{"url": rawURL, "status": resp.StatusCode})
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading body: %w", err)
		}
		body = string(data)
		return nil
	}

	// The inter-attempt delay lives inside op so the first attempt pauses as
	// well; backoff only supplies the attempt cap and permanent-error cutoff.
	policy := backoff.WithMaxRetries(&backoff.ZeroBackOff{}, uint64(f.maxRetries-1))
	if err := backoff.Retry(op, policy); err != nil {
		return "", fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	return body, nil
}
