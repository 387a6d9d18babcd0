package export

import (
	"bytes"
	"fmt"
	"image/png"
	"math"

	"github.com/jung-kurt/gofpdf"
)

// A4 portrait in millimeters.
const (
	pageWidthMM  = 210.0
	pageHeightMM = 297.0
)

// PDFComposer places each raster image onto as many A4 portrait pages as its
// height needs: the full image is drawn on every page, shifted upward by one
// page height each time, so each page shows the next vertical band. The
// paginator is deliberately simple and may split a table row or photo across
// a page boundary.
type PDFComposer struct{}

func (PDFComposer) Compose(images [][]byte) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	for i, raster := range images {
		cfg, err := png.DecodeConfig(bytes.NewReader(raster))
		if err != nil {
			return nil, fmt.Errorf("decode raster %d: %w", i, err)
		}
		if cfg.Width <= 0 || cfg.Height <= 0 {
			return nil, fmt.Errorf("raster %d has empty dimensions", i)
		}

		name := fmt.Sprintf("raster-%d", i)
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(raster))

		imageHeight := float64(cfg.Height) * pageWidthMM / float64(cfg.Width)
		for page := 0; page < pageCount(imageHeight); page++ {
			pdf.AddPage()
			pdf.ImageOptions(name, 0, -float64(page)*pageHeightMM, pageWidthMM, imageHeight, false, opts, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("assemble pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// pageCount returns ceil(imageHeight / pageHeight), at least 1.
func pageCount(imageHeight float64) int {
	pages := int(math.Ceil(imageHeight / pageHeightMM))
	if pages < 1 {
		return 1
	}
	return pages
}
