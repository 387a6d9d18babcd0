package state

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"restops/engine/internal/catalog"
	"restops/engine/internal/model"
)

// DefaultMaxPhotos bounds each cleaning photo gallery unless configured
// otherwise.
const DefaultMaxPhotos = 10

// Store holds the three live drafts. Every mutation synchronously re-persists
// that draft's full value under its storage key; the store itself performs no
// validation, it accepts whatever the widgets hand it.
type Store struct {
	kv        KV
	clock     func() time.Time
	maxPhotos int

	mu          sync.Mutex
	checks      model.ChecklistState
	qc          model.QcLog
	cleaning    model.CleaningLog
	displayDate string
}

// Option configures a Store.
type Option func(*Store)

// WithClock substitutes the time source, used by tests and the day-rollover
// check.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) { s.clock = clock }
}

// WithMaxPhotos overrides the per-gallery photo bound.
func WithMaxPhotos(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxPhotos = n
		}
	}
}

// New creates a Store over the given persistence port. Call Load before any
// read.
func New(kv KV, opts ...Option) *Store {
	s := &Store{
		kv:        kv,
		clock:     time.Now,
		maxPhotos: DefaultMaxPhotos,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func defaultQc(isoDate string) model.QcLog {
	return model.QcLog{ReportDate: isoDate}
}

func defaultCleaning(isoDate string) model.CleaningLog {
	return model.CleaningLog{
		ReportDate:   isoDate,
		PhotosBefore: []string{},
		PhotosAfter:  []string{},
	}
}

// Load runs the day-rollover check and initializes the drafts. When the
// persisted date marker differs from today's display date all three drafts are
// reset to defaults stamped with today's ISO date and the marker is rewritten;
// otherwise each draft is loaded from storage, defaulting any that is absent
// or unreadable. The archive is never touched here.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	s.displayDate = catalog.DisplayDate(now)
	iso := catalog.ISODate(now)

	savedDate, _, err := s.kv.Get(ctx, KeyDate)
	if err != nil {
		return fmt.Errorf("read date marker: %w", err)
	}

	if savedDate != s.displayDate {
		s.checks = model.ChecklistState{}
		s.qc = defaultQc(iso)
		s.cleaning = defaultCleaning(iso)
		if err := s.kv.Set(ctx, KeyDate, s.displayDate); err != nil {
			return fmt.Errorf("write date marker: %w", err)
		}
		return s.persistAllLocked(ctx)
	}

	s.checks = loadDraft(ctx, s.kv, KeyChecks, model.ChecklistState{})
	s.qc = loadDraft(ctx, s.kv, KeyQcLog, defaultQc(iso))
	s.cleaning = loadDraft(ctx, s.kv, KeyCleaning, defaultCleaning(iso))
	return nil
}

// loadDraft reads and decodes one persisted draft, falling back to def when
// the key is absent or holds malformed JSON. Read errors never propagate to
// the caller.
func loadDraft[T any](ctx context.Context, kv KV, key string, def T) T {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil || !ok {
		return def
	}
	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return def
	}
	return value
}

// DisplayDate returns today's formatted date as captured at Load.
func (s *Store) DisplayDate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.displayDate
}

// Checklist returns a copy of the current checklist state.
func (s *Store) Checklist() model.ChecklistState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checks.Clone()
}

// Toggle flips one checklist item and persists the checklist.
func (s *Store) Toggle(ctx context.Context, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checks == nil {
		s.checks = model.ChecklistState{}
	}
	s.checks[itemID] = !s.checks[itemID]
	return s.persistLocked(ctx, KeyChecks, s.checks)
}

// Qc returns a copy of the current QC draft.
func (s *Store) Qc() model.QcLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.qc.Clone()
}

// SetQcField assigns one QC field and persists the draft.
func (s *Store) SetQcField(ctx context.Context, field model.QcField, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.qc.Set(field, value); err != nil {
		return err
	}
	return s.persistLocked(ctx, KeyQcLog, s.qc)
}

// Cleaning returns a copy of the current cleaning draft.
func (s *Store) Cleaning() model.CleaningLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cleaning.Clone()
}

// SetCleaningField assigns one cleaning field and persists the draft.
func (s *Store) SetCleaningField(ctx context.Context, field model.CleaningField, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.cleaning.Set(field, value); err != nil {
		return err
	}
	return s.persistLocked(ctx, KeyCleaning, s.cleaning)
}

// SetCleaningPhotos replaces one photo gallery, clamped to the configured
// maximum, and persists the draft.
func (s *Store) SetCleaningPhotos(ctx context.Context, phase model.PhotoPhase, photos []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clamped := append([]string{}, photos...)
	if len(clamped) > s.maxPhotos {
		clamped = clamped[:s.maxPhotos]
	}
	switch phase {
	case model.PhotosBefore:
		s.cleaning.PhotosBefore = clamped
	case model.PhotosAfter:
		s.cleaning.PhotosAfter = clamped
	default:
		return fmt.Errorf("unknown photo phase %q", phase)
	}
	return s.persistLocked(ctx, KeyCleaning, s.cleaning)
}

// RemoveCleaningPhoto drops one photo by index; an out-of-range index is a
// no-op.
func (s *Store) RemoveCleaningPhoto(ctx context.Context, phase model.PhotoPhase, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var gallery *[]string
	switch phase {
	case model.PhotosBefore:
		gallery = &s.cleaning.PhotosBefore
	case model.PhotosAfter:
		gallery = &s.cleaning.PhotosAfter
	default:
		return fmt.Errorf("unknown photo phase %q", phase)
	}
	if index < 0 || index >= len(*gallery) {
		return nil
	}
	*gallery = append((*gallery)[:index], (*gallery)[index+1:]...)
	return s.persistLocked(ctx, KeyCleaning, s.cleaning)
}

// Reset clears today's drafts without touching the archive. As in the
// original tool the QC draft is re-dated to today while the cleaning draft
// keeps its report date and only loses its contents.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	iso := catalog.ISODate(s.clock())
	s.checks = model.ChecklistState{}
	s.qc = defaultQc(iso)

	keepDate := s.cleaning.ReportDate
	s.cleaning = defaultCleaning(iso)
	s.cleaning.ReportDate = keepDate

	return s.persistAllLocked(ctx)
}

func (s *Store) persistAllLocked(ctx context.Context) error {
	if err := s.persistLocked(ctx, KeyChecks, s.checks); err != nil {
		return err
	}
	if err := s.persistLocked(ctx, KeyQcLog, s.qc); err != nil {
		return err
	}
	return s.persistLocked(ctx, KeyCleaning, s.cleaning)
}

func (s *Store) persistLocked(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, string(payload)); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}
