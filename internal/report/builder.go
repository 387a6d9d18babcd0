// Package report freezes the live drafts into an immutable Report.
package report

import (
	"time"

	"restops/engine/internal/model"
	"restops/engine/internal/util"
)

// Build snapshots the three drafts into a Report archived under the given
// location and folder. Every draft is deep-copied: mutating the sources after
// Build must never be observable through the returned Report. dateFormatted is
// the display date currently shown to the user, captured as-is rather than
// recomputed later.
func Build(checks model.ChecklistState, qc model.QcLog, cleaning model.CleaningLog,
	location, folder, dateFormatted string, now time.Time) model.Report {
	return model.Report{
		ID:              util.NewReportID(now),
		DateFormatted:   dateFormatted,
		Checks:          checks.Clone(),
		Qc:              qc.Clone(),
		Cleaning:        cleaning.Clone(),
		Timestamp:       now.UnixMilli(),
		ArchiveLocation: location,
		ArchiveFolder:   folder,
	}
}
