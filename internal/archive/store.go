// Package archive keeps the saved reports: an append-only (plus explicit
// delete) sequence persisted as one JSON array, newest first.
package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"restops/engine/internal/model"
	"restops/engine/internal/state"
)

// Store is the report archive over a key-value persistence port. Insertion
// order is authoritative: new reports are prepended and queries never resort.
type Store struct {
	kv state.KV

	mu      sync.Mutex
	reports []model.Report
}

// New creates a Store over the given port. Call Load before any read.
func New(kv state.KV) *Store {
	return &Store{kv: kv}
}

// Load reads the persisted archive. An absent or malformed value starts an
// empty archive rather than failing.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.kv.Get(ctx, state.KeyHistory)
	if err != nil {
		return fmt.Errorf("read archive: %w", err)
	}
	if !ok {
		s.reports = nil
		return nil
	}
	var reports []model.Report
	if err := json.Unmarshal([]byte(raw), &reports); err != nil {
		s.reports = nil
		return nil
	}
	s.reports = reports
	return nil
}

// Save prepends the report and persists the full archive.
func (s *Store) Save(ctx context.Context, r model.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reports = append([]model.Report{r.Clone()}, s.reports...)
	return s.persistLocked(ctx)
}

// Delete removes the report with the given id, if present, and persists.
// Deleting an unknown id is a no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.reports[:0]
	removed := false
	for _, r := range s.reports {
		if !removed && r.ID == id {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	if !removed {
		return nil
	}
	s.reports = kept
	return s.persistLocked(ctx)
}

// All returns a copy of the archive in stored order.
func (s *Store) All() []model.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAll(s.reports)
}

// QueryByMonth filters by the calendar month and year of each report's
// creation timestamp in local time, preserving stored order.
func (s *Store) QueryByMonth(month time.Month, year int) []model.Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Report
	for _, r := range s.reports {
		created := time.UnixMilli(r.Timestamp).Local()
		if created.Month() == month && created.Year() == year {
			out = append(out, r.Clone())
		}
	}
	return out
}

// Get returns the report with the given id.
func (s *Store) Get(id string) (model.Report, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.reports {
		if r.ID == id {
			return r.Clone(), true
		}
	}
	return model.Report{}, false
}

// Persist rewrites the stored archive, the shutdown bridge for embedders that
// batch writes elsewhere.
func (s *Store) Persist(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLocked(ctx)
}

func (s *Store) persistLocked(ctx context.Context) error {
	reports := s.reports
	if reports == nil {
		reports = []model.Report{}
	}
	payload, err := json.Marshal(reports)
	if err != nil {
		return fmt.Errorf("marshal archive: %w", err)
	}
	if err := s.kv.Set(ctx, state.KeyHistory, string(payload)); err != nil {
		return fmt.Errorf("persist archive: %w", err)
	}
	return nil
}

func cloneAll(reports []model.Report) []model.Report {
	out := make([]model.Report, len(reports))
	for i, r := range reports {
		out[i] = r.Clone()
	}
	return out
}
