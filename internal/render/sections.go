// Package render projects a report (or the live drafts) into a print-ready
// HTML document. Projection is a pure function to a tagged section list; the
// HTML rendering of each section kind lives in the template.
package render

import (
	"restops/engine/internal/catalog"
	"restops/engine/internal/model"
)

// Source is the renderer's input: either a frozen report or a snapshot of the
// live drafts.
type Source struct {
	Checks   model.ChecklistState
	Qc       model.QcLog
	Cleaning model.CleaningLog
	Date     string
	Location string
	Folder   string
}

// FromReport adapts an archived report.
func FromReport(r model.Report) Source {
	return Source{
		Checks:   r.Checks,
		Qc:       r.Qc,
		Cleaning: r.Cleaning,
		Date:     r.DateFormatted,
		Location: r.ArchiveLocation,
		Folder:   r.ArchiveFolder,
	}
}

// FromDrafts adapts the live drafts. The location and folder slots show the
// live-report markers since nothing has been archived yet.
func FromDrafts(checks model.ChecklistState, qc model.QcLog, cleaning model.CleaningLog, displayDate string) Source {
	return Source{
		Checks:   checks,
		Qc:       qc,
		Cleaning: cleaning,
		Date:     displayDate,
		Location: "Laporan Langsung",
		Folder:   "-",
	}
}

// SectionKind tags one document section.
type SectionKind int

const (
	SectionChecklist SectionKind = iota
	SectionQc
	SectionCleaning
	SectionPlaceholder
)

// ChecklistLine is one rendered checklist row.
type ChecklistLine struct {
	ID      string
	Text    string
	Checked bool
}

// ChecklistShift is one shift block inside the checklist section. Only shifts
// with at least one checked item are included, but within an included shift
// every catalog item renders, checked or not, in catalog order.
type ChecklistShift struct {
	Title string
	Lines []ChecklistLine
}

// Section is one tagged document section; exactly one payload is set
// according to Kind.
type Section struct {
	Kind      SectionKind
	Checklist []ChecklistShift
	Qc        *model.QcLog
	Cleaning  *model.CleaningLog
}

// Sections computes the document's section list. A section is included only
// when it has data: a checklist shift needs one checked item, the QC section
// needs a menu name, the cleaning section needs an area. When nothing
// qualifies the single placeholder section is returned instead.
func Sections(src Source) []Section {
	var sections []Section

	var shifts []ChecklistShift
	for _, shift := range catalog.Shifts() {
		if !shiftHasData(shift, src.Checks) {
			continue
		}
		block := ChecklistShift{Title: shift.Title}
		for _, item := range shift.Items {
			block.Lines = append(block.Lines, ChecklistLine{
				ID:      item.ID,
				Text:    item.Text,
				Checked: src.Checks[item.ID],
			})
		}
		shifts = append(shifts, block)
	}
	if len(shifts) > 0 {
		sections = append(sections, Section{Kind: SectionChecklist, Checklist: shifts})
	}

	if src.Qc.MenuName != "" {
		qc := src.Qc.Clone()
		sections = append(sections, Section{Kind: SectionQc, Qc: &qc})
	}

	if src.Cleaning.Area != "" {
		cleaning := src.Cleaning.Clone()
		sections = append(sections, Section{Kind: SectionCleaning, Cleaning: &cleaning})
	}

	if len(sections) == 0 {
		return []Section{{Kind: SectionPlaceholder}}
	}
	return sections
}

func shiftHasData(shift catalog.Shift, checks model.ChecklistState) bool {
	for _, item := range shift.Items {
		if checks[item.ID] {
			return true
		}
	}
	return false
}
