package util

import (
	"strings"
	"testing"
	"time"
)

func TestNewReportIDFormat(t *testing.T) {
	now := time.Date(2025, time.January, 2, 9, 30, 0, 0, time.Local)
	id := NewReportID(now)
	if !strings.HasPrefix(id, "2025-01-02-") {
		t.Errorf("id = %q, want date prefix", id)
	}
}

func TestNewReportIDUniqueWithinMillisecond(t *testing.T) {
	now := time.Date(2025, time.January, 2, 9, 30, 0, 0, time.Local)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewReportID(now)
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
