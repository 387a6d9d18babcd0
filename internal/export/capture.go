package export

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/chromedp"
)

// A4 portrait at 96 CSS dpi. The capture viewport matches the page width so
// the raster maps 1:1 onto the composed pages.
const (
	defaultViewportWidth  = 794
	defaultViewportHeight = 1123
	defaultCaptureScale   = 2
	defaultCaptureTimeout = 30 * time.Second
)

// percentEncodeForDataURL encodes a string for use in a data URL.
// Unlike url.QueryEscape, this properly encodes spaces as %20 for data URLs.
func percentEncodeForDataURL(s string) string {
	var result strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == '-', r == '_', r == '.', r == '~':
			// Unreserved characters per RFC 3986
			result.WriteRune(r)
		case r == ' ':
			// Space must be encoded as %20 in data URLs, not +
			result.WriteString("%20")
		default:
			for _, b := range []byte(string(r)) {
				result.WriteString(fmt.Sprintf("%%%02X", b))
			}
		}
	}
	return result.String()
}

// ChromeCapturer rasterizes documents with headless Chrome. There is exactly
// one rendering surface per capture call, so callers doing bulk work must
// invoke Capture strictly sequentially.
type ChromeCapturer struct {
	// Scale is the raster upscale factor for print fidelity.
	Scale float64
	// ViewportWidth is the emulated page width in CSS pixels.
	ViewportWidth int
	// Timeout bounds one capture attempt.
	Timeout time.Duration
	// SettleDelay is an extra wait after the document reports ready.
	// Readiness is already awaited explicitly, so the default of zero is
	// fine; the knob exists for pages with slow late-loading imagery.
	SettleDelay time.Duration
}

// NewChromeCapturer returns a capturer with the standard 2x print scale.
func NewChromeCapturer() *ChromeCapturer {
	return &ChromeCapturer{
		Scale:         defaultCaptureScale,
		ViewportWidth: defaultViewportWidth,
		Timeout:       defaultCaptureTimeout,
	}
}

// Capture renders html on a fresh headless-Chrome surface and returns the
// full-page PNG at the configured scale. The document is navigated to as a
// data URL and the screenshot is taken only after the body reports ready, so
// the returned pixels always reflect the requested document.
func (c *ChromeCapturer) Capture(ctx context.Context, html string) ([]byte, error) {
	if _, err := exec.LookPath("chromium-browser"); err != nil {
		if _, fallbackErr := exec.LookPath("chromium"); fallbackErr != nil {
			return nil, fmt.Errorf("%w: chromium not installed", ErrCaptureDependencyMissing)
		}
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaultCaptureTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-setuid-sandbox", true),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	taskCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	scale := c.Scale
	if scale <= 0 {
		scale = defaultCaptureScale
	}
	width := c.ViewportWidth
	if width <= 0 {
		width = defaultViewportWidth
	}

	dataURL := "data:text/html;charset=utf-8," + percentEncodeForDataURL(html)

	tasks := chromedp.Tasks{
		chromedp.EmulateViewport(int64(width), defaultViewportHeight, chromedp.EmulateScale(scale)),
		// Data-URL pages screenshot with a transparent surface by default,
		// which composes as black on the PDF page.
		chromedp.ActionFunc(func(ctx context.Context) error {
			return emulation.SetDefaultBackgroundColorOverride().
				WithColor(&cdp.RGBA{R: 255, G: 255, B: 255, A: 1}).
				Do(ctx)
		}),
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body"),
	}
	if c.SettleDelay > 0 {
		tasks = append(tasks, chromedp.Sleep(c.SettleDelay))
	}

	var raster []byte
	tasks = append(tasks, chromedp.FullScreenshot(&raster, 100))

	if err := chromedp.Run(taskCtx, tasks); err != nil {
		return nil, fmt.Errorf("chrome capture failed: %w", err)
	}
	return raster, nil
}
