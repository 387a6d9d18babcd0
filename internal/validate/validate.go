// Package validate holds the pure completeness predicates for the three
// drafts. Nothing here blocks a save; the results only drive the "ready"
// affirmations in the embedding UI.
package validate

import (
	"math"

	"restops/engine/internal/catalog"
	"restops/engine/internal/model"
)

// ShiftProgress returns the rounded completion percentage for one shift's
// checklist. A shift with no items reports 0.
func ShiftProgress(shift catalog.Shift, checks model.ChecklistState) int {
	total := len(shift.Items)
	if total == 0 {
		return 0
	}
	completed := 0
	for _, item := range shift.Items {
		if checks[item.ID] {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

// QcComplete reports whether every required QC field is filled in. Notes is
// the only optional field.
func QcComplete(q model.QcLog) bool {
	return q.BranchName != "" &&
		q.ReportDate != "" &&
		q.Shift != "" &&
		q.MenuName != "" &&
		q.Taste != "" &&
		q.Texture != "" &&
		q.Plating != "" &&
		q.ChefSignature != "" &&
		q.SupervisorSignature != ""
}

// CleaningComplete reports whether every required cleaning field is filled in.
// The photo galleries may be empty.
func CleaningComplete(c model.CleaningLog) bool {
	return c.Area != "" &&
		c.ReportDate != "" &&
		c.Shift != "" &&
		c.TimeBefore != "" &&
		c.TimeAfter != "" &&
		c.Description != "" &&
		c.SupervisorSignature != ""
}
