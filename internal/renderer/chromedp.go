// Package renderer drives a headless Chrome instance to load a page and
// extract its visible text.
package renderer

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"
)

const defaultTimeout = 60 * time.Second

// Chrome renders pages headlessly. Every Render call starts a fresh browser
// and tears it down before returning, on success and failure alike.
type Chrome struct {
	timeout time.Duration
}

func NewChrome(timeout time.Duration) *Chrome {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Chrome{timeout: timeout}
}

func (c *Chrome) Render(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", "new"),
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var text string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Text("body", &text, chromedp.ByQuery),
	)
	if err != nil {
		return "", err
	}
	return text, nil
}
