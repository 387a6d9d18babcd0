// Package state holds the live form drafts and the key-value persistence
// ports they are mirrored into.
package state

import (
	"context"
	"sync"
)

// Storage keys, one per persisted value. The names are part of the on-disk
// format and must not change.
const (
	KeyChecks   = "restoOps_checks"
	KeyQcLog    = "restoOps_qcLog"
	KeyCleaning = "restoOps_cleaning"
	KeyDate     = "restoOps_date"
	KeyHistory  = "restoOps_history"
)

// KV is the persistence port: a string-valued key-value store. Writing then
// reading back a key yields exactly the written value.
type KV interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// MemKV is an in-memory KV for tests and embedders that opt out of
// persistence.
type MemKV struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemKV returns an empty in-memory store.
func NewMemKV() *MemKV {
	return &MemKV{values: make(map[string]string)}
}

func (m *MemKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
