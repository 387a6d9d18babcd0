package export

import (
	"context"
	"fmt"
	"strings"
	"time"

	"restops/engine/internal/catalog"
	"restops/engine/internal/model"
	"restops/engine/internal/render"
)

// Service drives single and bulk exports. Bulk export is strictly sequential:
// the capturer owns the one rendering surface, and the next report is only
// rendered after the previous capture has committed.
type Service struct {
	capture Capturer
	compose Composer
}

// NewService wires the capture and composition capabilities.
func NewService(capture Capturer, compose Composer) *Service {
	return &Service{capture: capture, compose: compose}
}

// ReportPDF exports one archived report.
func (s *Service) ReportPDF(ctx context.Context, r model.Report) (*Result, error) {
	data, err := s.renderPDF(ctx, render.FromReport(r))
	if err != nil {
		return nil, err
	}
	return &Result{
		Data:     data,
		Filename: fmt.Sprintf("Laporan_%s_%s_%s.pdf", r.ArchiveLocation, r.ArchiveFolder, r.ID),
		MimeType: "application/pdf",
	}, nil
}

// LivePDF exports the current drafts without archiving them.
func (s *Service) LivePDF(ctx context.Context, src render.Source, now time.Time) (*Result, error) {
	data, err := s.renderPDF(ctx, src)
	if err != nil {
		return nil, err
	}
	return &Result{
		Data:     data,
		Filename: fmt.Sprintf("Laporan_Harian_%s.pdf", catalog.ISODate(now)),
		MimeType: "application/pdf",
	}, nil
}

// BulkZip exports the given reports, in order, into one ZIP archive. The
// progress callback fires as (i+1, total) before report i is captured. Any
// capture or composition failure aborts the whole batch; there is no
// partial-success continuation.
func (s *Service) BulkZip(ctx context.Context, reports []model.Report, month time.Month, year int, progress Progress) (*Result, error) {
	if len(reports) == 0 {
		return nil, ErrNoReports
	}

	folder := archiveName(month, year)
	builder := NewZipBuilder()

	total := len(reports)
	for i, r := range reports {
		if progress != nil {
			progress(i+1, total)
		}

		data, err := s.renderPDF(ctx, render.FromReport(r))
		if err != nil {
			return nil, fmt.Errorf("export report %s: %w", r.ID, err)
		}
		if err := builder.Add(folder+"/"+entryName(r), data); err != nil {
			return nil, err
		}
	}

	data, err := builder.Finalize()
	if err != nil {
		return nil, err
	}
	return &Result{
		Data:     data,
		Filename: folder + ".zip",
		MimeType: "application/zip",
	}, nil
}

func (s *Service) renderPDF(ctx context.Context, src render.Source) ([]byte, error) {
	html, err := render.HTML(src)
	if err != nil {
		return nil, err
	}
	raster, err := s.capture.Capture(ctx, html)
	if err != nil {
		return nil, fmt.Errorf("capture document: %w", err)
	}
	data, err := s.compose.Compose([][]byte{raster})
	if err != nil {
		return nil, fmt.Errorf("compose document: %w", err)
	}
	return data, nil
}

// entryName is the deterministic per-report filename inside the bulk archive.
func entryName(r model.Report) string {
	date := strings.ReplaceAll(r.DateFormatted, " ", "_")
	return fmt.Sprintf("%s_%s_%s_%s.pdf", date, r.ArchiveLocation, r.ArchiveFolder, r.ID)
}

func archiveName(month time.Month, year int) string {
	return fmt.Sprintf("Arsip_Laporan_%s_%d", catalog.MonthName(month), year)
}
