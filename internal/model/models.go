// Package model defines the draft records edited during the day and the
// immutable Report snapshot they are frozen into.
package model

// ChecklistState maps a checklist item id to its checked flag. Ids that are
// absent count as unchecked.
type ChecklistState map[string]bool

// Clone returns an independent copy of the state.
func (c ChecklistState) Clone() ChecklistState {
	out := make(ChecklistState, len(c))
	for id, checked := range c {
		out[id] = checked
	}
	return out
}

// QcLog is the daily test-food quality-control draft. Signature fields hold an
// opaque encoded image produced by the signature widget; empty means unsigned.
type QcLog struct {
	BranchName          string `json:"branchName"`
	ReportDate          string `json:"reportDate"`
	Shift               string `json:"shift"`
	MenuName            string `json:"menuName"`
	Taste               string `json:"taste"`
	Texture             string `json:"texture"`
	Plating             string `json:"plating"`
	Notes               string `json:"notes"`
	ChefSignature       string `json:"chefSignature"`
	SupervisorSignature string `json:"supervisorSignature"`
}

// Clone returns an independent copy of the draft.
func (q QcLog) Clone() QcLog {
	return q
}

// CleaningLog is the daily outlet cleaning draft. Photo slices hold opaque
// encoded images from the photo widget, in upload order.
type CleaningLog struct {
	Area                string   `json:"area"`
	ReportDate          string   `json:"reportDate"`
	Shift               string   `json:"shift"`
	TimeBefore          string   `json:"timeBefore"`
	TimeAfter           string   `json:"timeAfter"`
	Description         string   `json:"description"`
	PhotosBefore        []string `json:"photosBefore"`
	PhotosAfter         []string `json:"photosAfter"`
	SupervisorSignature string   `json:"supervisorSignature"`
}

// Clone returns an independent copy of the draft, photo slices included.
func (c CleaningLog) Clone() CleaningLog {
	out := c
	out.PhotosBefore = append([]string(nil), c.PhotosBefore...)
	out.PhotosAfter = append([]string(nil), c.PhotosAfter...)
	return out
}

// Report is a frozen snapshot of the three drafts plus archive metadata.
// Once built it shares no mutable state with the live drafts and is never
// modified again.
type Report struct {
	ID              string         `json:"id"`
	DateFormatted   string         `json:"dateFormatted"`
	Checks          ChecklistState `json:"checks"`
	Qc              QcLog          `json:"qc"`
	Cleaning        CleaningLog    `json:"cleaning"`
	Timestamp       int64          `json:"timestamp"`
	ArchiveLocation string         `json:"archiveLocation"`
	ArchiveFolder   string         `json:"archiveFolder"`
}

// Clone returns an independent copy of the report.
func (r Report) Clone() Report {
	out := r
	out.Checks = r.Checks.Clone()
	out.Qc = r.Qc.Clone()
	out.Cleaning = r.Cleaning.Clone()
	return out
}
