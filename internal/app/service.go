// Package app is the composition root the embedding UI talks to: it wires the
// draft store, the archive, the audit trail and the export pipeline, and
// exposes every user-triggered effect.
package app

import (
	"context"
	"fmt"
	"time"

	"restops/engine/internal/archive"
	"restops/engine/internal/audit"
	"restops/engine/internal/catalog"
	"restops/engine/internal/config"
	"restops/engine/internal/export"
	"restops/engine/internal/model"
	"restops/engine/internal/render"
	"restops/engine/internal/report"
	"restops/engine/internal/state"
	"restops/engine/internal/validate"
)

type Service struct {
	cfg      config.Config
	drafts   *state.Store
	archive  *archive.Store
	trail    *audit.Trail
	exporter *export.Service
	clock    func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock substitutes the time source.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

// New assembles a Service over the given persistence port and export
// pipeline. The audit trail is enabled when cfg.AuditDir is non-empty.
func New(cfg config.Config, kv state.KV, exporter *export.Service, opts ...Option) *Service {
	s := &Service{
		cfg:      cfg,
		archive:  archive.New(kv),
		exporter: exporter,
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.drafts = state.New(kv,
		state.WithClock(s.clock),
		state.WithMaxPhotos(cfg.MaxPhotos),
	)
	if cfg.AuditDir != "" {
		s.trail = audit.New(cfg.AuditDir)
	}
	return s
}

// Bootstrap loads persisted state, runs the day-rollover check and prepares
// the audit trail. It must run before any widget reads state.
func (s *Service) Bootstrap(ctx context.Context) error {
	if err := s.drafts.Load(ctx); err != nil {
		return fmt.Errorf("load drafts: %w", err)
	}
	if err := s.archive.Load(ctx); err != nil {
		return fmt.Errorf("load archive: %w", err)
	}
	if s.trail != nil {
		if err := s.trail.Ensure(); err != nil {
			return fmt.Errorf("prepare audit trail: %w", err)
		}
	}
	return nil
}

// DisplayDate returns today's formatted date shown in the UI header.
func (s *Service) DisplayDate() string {
	return s.drafts.DisplayDate()
}

// Checklist returns the current checklist state.
func (s *Service) Checklist() model.ChecklistState {
	return s.drafts.Checklist()
}

// ToggleCheck flips one checklist item.
func (s *Service) ToggleCheck(ctx context.Context, itemID string) error {
	return s.drafts.Toggle(ctx, itemID)
}

// QcDraft returns the current QC draft.
func (s *Service) QcDraft() model.QcLog {
	return s.drafts.Qc()
}

// SetQcField assigns one QC field.
func (s *Service) SetQcField(ctx context.Context, field model.QcField, value string) error {
	return s.drafts.SetQcField(ctx, field, value)
}

// CleaningDraft returns the current cleaning draft.
func (s *Service) CleaningDraft() model.CleaningLog {
	return s.drafts.Cleaning()
}

// SetCleaningField assigns one cleaning field.
func (s *Service) SetCleaningField(ctx context.Context, field model.CleaningField, value string) error {
	return s.drafts.SetCleaningField(ctx, field, value)
}

// SetCleaningPhotos replaces one photo gallery.
func (s *Service) SetCleaningPhotos(ctx context.Context, phase model.PhotoPhase, photos []string) error {
	return s.drafts.SetCleaningPhotos(ctx, phase, photos)
}

// RemoveCleaningPhoto drops one photo by index.
func (s *Service) RemoveCleaningPhoto(ctx context.Context, phase model.PhotoPhase, index int) error {
	return s.drafts.RemoveCleaningPhoto(ctx, phase, index)
}

// ResetDrafts clears today's drafts; the archive is untouched.
func (s *Service) ResetDrafts(ctx context.Context) error {
	return s.drafts.Reset(ctx)
}

// ShiftProgress returns the completion percentage for one shift's checklist;
// unknown keys report 0.
func (s *Service) ShiftProgress(shiftKey string) int {
	shift, ok := catalog.ShiftByKey(shiftKey)
	if !ok {
		return 0
	}
	return validate.ShiftProgress(shift, s.drafts.Checklist())
}

// QcComplete reports whether the QC draft is ready to present as complete.
func (s *Service) QcComplete() bool {
	return validate.QcComplete(s.drafts.Qc())
}

// CleaningComplete reports whether the cleaning draft is ready to present as
// complete.
func (s *Service) CleaningComplete() bool {
	return validate.CleaningComplete(s.drafts.Cleaning())
}

// SaveReport freezes the current drafts into an immutable report archived
// under the given branch location and shift folder. The drafts stay as they
// are; saving never resets them.
func (s *Service) SaveReport(ctx context.Context, location, folder string) (model.Report, error) {
	if !catalog.ValidLocation(location) {
		return model.Report{}, fmt.Errorf("%w: %s", ErrUnknownLocation, location)
	}
	if !catalog.ValidFolder(folder) {
		return model.Report{}, fmt.Errorf("%w: %s", ErrUnknownFolder, folder)
	}

	r := report.Build(
		s.drafts.Checklist(), s.drafts.Qc(), s.drafts.Cleaning(),
		location, folder, s.drafts.DisplayDate(), s.clock(),
	)
	if err := s.archive.Save(ctx, r); err != nil {
		return model.Report{}, err
	}
	if err := s.recordAudit("Save report " + r.ID); err != nil {
		return r, err
	}
	return r, nil
}

// DeleteReport removes one report from the archive; an unknown id is a no-op.
func (s *Service) DeleteReport(ctx context.Context, id string) error {
	if err := s.archive.Delete(ctx, id); err != nil {
		return err
	}
	return s.recordAudit("Delete report " + id)
}

// Archive returns all saved reports, newest first.
func (s *Service) Archive() []model.Report {
	return s.archive.All()
}

// ReportsForMonth filters the archive by creation month and year.
func (s *Service) ReportsForMonth(month time.Month, year int) []model.Report {
	return s.archive.QueryByMonth(month, year)
}

// AuditHistory lists recorded archive snapshots, newest first.
func (s *Service) AuditHistory(limit int) ([]audit.CommitInfo, error) {
	if s.trail == nil {
		return nil, nil
	}
	return s.trail.History(limit)
}

// ExportLive exports the current drafts as a PDF without archiving them.
func (s *Service) ExportLive(ctx context.Context) (*export.Result, error) {
	src := render.FromDrafts(
		s.drafts.Checklist(), s.drafts.Qc(), s.drafts.Cleaning(), s.drafts.DisplayDate(),
	)
	return s.exporter.LivePDF(ctx, src, s.clock())
}

// ExportReport exports one archived report as a PDF.
func (s *Service) ExportReport(ctx context.Context, id string) (*export.Result, error) {
	r, ok := s.archive.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrReportNotFound, id)
	}
	return s.exporter.ReportPDF(ctx, r)
}

// ExportMonth bulk-exports the month's reports into one ZIP. A failure on any
// report aborts the whole batch.
func (s *Service) ExportMonth(ctx context.Context, month time.Month, year int, progress export.Progress) (*export.Result, error) {
	return s.exporter.BulkZip(ctx, s.archive.QueryByMonth(month, year), month, year, progress)
}

// ExportMonthSummary renders the month's reports as a recap spreadsheet.
func (s *Service) ExportMonthSummary(month time.Month, year int) (*export.Result, error) {
	return export.MonthlySummary(s.archive.QueryByMonth(month, year), month, year)
}

func (s *Service) recordAudit(action string) error {
	if s.trail == nil {
		return nil
	}
	if _, err := s.trail.Record(action, s.archive.All()); err != nil {
		return fmt.Errorf("record audit: %w", err)
	}
	return nil
}
