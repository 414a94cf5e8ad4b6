// Package fetch - browser.go renders client-side job boards in a headless
// browser when the static HTML carries no posting text.
package fetch

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// minPostingTextLength is the shortest extracted text accepted from a static
// fetch. Anything shorter is treated as an unrendered SPA shell rather than a
// real job description.
const minPostingTextLength = 500

// renderSettleDelay gives client-side boards time to inject the posting body
// after the description container first appears.
const renderSettleDelay = 2 * time.Second

// ShouldUseBrowser reports whether the statically fetched posting text is too
// short to be a real description, meaning the board likely renders
// client-side and needs a browser pass.
func ShouldUseBrowser(extractedText string) bool {
	return len(strings.TrimSpace(extractedText)) < minPostingTextLength
}

// renderWaitSelector returns the element whose appearance signals that the
// posting description has rendered on a known board. Unknown boards get no
// targeted wait, only the settle delay.
func renderWaitSelector(platform Platform) string {
	switch platform {
	case PlatformGreenhouse:
		return ".job__description, .job-post-container"
	case PlatformLever:
		return ".posting-page, .posting-description"
	case PlatformWorkday:
		return "[data-automation-id='jobDescription']"
	default:
		return ""
	}
}

// RenderPosting loads a posting URL in headless Chrome and returns the
// rendered HTML. On a recognized board it waits for that board's description
// container before reading the DOM. Requires Chrome/Chromium on the system.
func RenderPosting(ctx context.Context, urlStr string, platform Platform, timeout time.Duration, verbose bool) (string, error) {
	if verbose {
		log.Printf("[BROWSER] Rendering %s posting: %s", platform, urlStr)
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	waitFor := renderWaitSelector(platform)

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(urlStr),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			if waitFor == "" {
				return nil
			}
			// Bounded wait; a board that changed its markup still falls
			// through to the settle delay instead of eating the full timeout.
			waitCtx, cancel := context.WithTimeout(ctx, renderSettleDelay)
			defer cancel()
			_ = chromedp.WaitVisible(waitFor, chromedp.ByQuery).Do(waitCtx)
			return nil
		}),
		chromedp.Sleep(renderSettleDelay),
		chromedp.ActionFunc(func(ctx context.Context) error {
			// Dismiss cookie banners that overlay the description.
			_ = chromedp.Click(`button[id*="accept"], button[class*="accept"]`, chromedp.NodeVisible).Do(ctx)
			return nil
		}),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	if verbose {
		log.Printf("[BROWSER] Rendered HTML: %d bytes", len(html))
	}
	return html, nil
}
