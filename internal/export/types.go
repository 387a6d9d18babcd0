// Package export turns rendered documents into PDF byte streams and packages
// bulk exports into a single ZIP, with optional spreadsheet recaps.
package export

import (
	"context"
	"errors"
)

// Capturer rasterizes a rendered HTML document into a PNG image. Capture is
// inherently asynchronous and non-instant; implementations must not return
// before the document has fully committed to the rendering surface.
type Capturer interface {
	Capture(ctx context.Context, html string) ([]byte, error)
}

// Composer lays raster images out onto fixed-size pages and returns the PDF
// bytes.
type Composer interface {
	Compose(images [][]byte) ([]byte, error)
}

// Progress reports bulk-export advancement as (completed, total). It fires
// once per report, in order, before that report's capture begins.
type Progress func(completed, total int)

// Result contains one export output.
type Result struct {
	Data     []byte
	Filename string
	MimeType string
}

var (
	// ErrCaptureDependencyMissing indicates the rasterization runtime is
	// unavailable.
	ErrCaptureDependencyMissing = errors.New("export capture dependency missing")
	// ErrNoReports indicates a bulk export was requested for an empty
	// selection.
	ErrNoReports = errors.New("export has no reports")
)
