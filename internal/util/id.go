// Package util holds small shared helpers.
package util

import (
	"fmt"
	"sync"
	"time"
)

var (
	idMu     sync.Mutex
	lastTick int64
)

// NewReportID derives a report id from the creation date and instant:
// "2025-01-02-1735800000123". A process-wide strictly increasing tick
// guarantees that two saves in the same millisecond still get distinct ids.
func NewReportID(now time.Time) string {
	idMu.Lock()
	defer idMu.Unlock()

	tick := now.UnixMilli()
	if tick <= lastTick {
		tick = lastTick + 1
	}
	lastTick = tick

	return fmt.Sprintf("%s-%d", now.Format("2006-01-02"), tick)
}
