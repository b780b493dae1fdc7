package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/chromedp/chromedp"
)

const (
	DefaultTimeout   = 60 * time.Second
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36"

	// contentSelector is the container that appears once the history
	// table has rendered.
	contentSelector = "#primary"

	maxAttempts = 3
)

// Fetcher drives a headless browser to render event history pages.
type Fetcher struct {
	userAgent string
	timeout   time.Duration
}

// New creates a Fetcher. Zero-valued arguments fall back to the defaults.
func New(userAgent string, timeout time.Duration) *Fetcher {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		userAgent: userAgent,
		timeout:   timeout,
	}
}

// Fetch navigates to the given event history URL and returns the rendered
// page markup. Transient navigation failures are retried with exponential
// backoff; ctx cancels the whole operation.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.UserAgent(f.userAgent),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	var html string
	attempt := func() error {
		// Fresh tab per attempt so a wedged navigation doesn't poison
		// the retry.
		tabCtx, cancelTab := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
		defer cancelTab()
		tabCtx, cancelTimeout := context.WithTimeout(tabCtx, f.timeout)
		defer cancelTimeout()

		return chromedp.Run(tabCtx,
			chromedp.Navigate(url),
			chromedp.WaitVisible(contentSelector, chromedp.ByQuery),
			chromedp.OuterHTML("html", &html, chromedp.ByQuery),
		)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxAttempts-1), ctx)
	if err := backoff.Retry(attempt, policy); err != nil {
		return "", fmt.Errorf("loading %s: %w (check your connection; otherwise the bot may have been detected)", url, err)
	}

	return html, nil
}
