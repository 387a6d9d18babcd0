package model

import "fmt"

// QcField enumerates the settable fields of a QcLog.
type QcField string

const (
	QcBranchName          QcField = "branchName"
	QcReportDate          QcField = "reportDate"
	QcShift               QcField = "shift"
	QcMenuName            QcField = "menuName"
	QcTaste               QcField = "taste"
	QcTexture             QcField = "texture"
	QcPlating             QcField = "plating"
	QcNotes               QcField = "notes"
	QcChefSignature       QcField = "chefSignature"
	QcSupervisorSignature QcField = "supervisorSignature"
)

// Set assigns value to the named field.
func (q *QcLog) Set(field QcField, value string) error {
	switch field {
	case QcBranchName:
		q.BranchName = value
	case QcReportDate:
		q.ReportDate = value
	case QcShift:
		q.Shift = value
	case QcMenuName:
		q.MenuName = value
	case QcTaste:
		q.Taste = value
	case QcTexture:
		q.Texture = value
	case QcPlating:
		q.Plating = value
	case QcNotes:
		q.Notes = value
	case QcChefSignature:
		q.ChefSignature = value
	case QcSupervisorSignature:
		q.SupervisorSignature = value
	default:
		return fmt.Errorf("unknown qc field %q", field)
	}
	return nil
}

// CleaningField enumerates the settable scalar fields of a CleaningLog.
// Photo lists have their own operations on the state store.
type CleaningField string

const (
	CleaningArea                CleaningField = "area"
	CleaningReportDate          CleaningField = "reportDate"
	CleaningShift               CleaningField = "shift"
	CleaningTimeBefore          CleaningField = "timeBefore"
	CleaningTimeAfter           CleaningField = "timeAfter"
	CleaningDescription         CleaningField = "description"
	CleaningSupervisorSignature CleaningField = "supervisorSignature"
)

// Set assigns value to the named field.
func (c *CleaningLog) Set(field CleaningField, value string) error {
	switch field {
	case CleaningArea:
		c.Area = value
	case CleaningReportDate:
		c.ReportDate = value
	case CleaningShift:
		c.Shift = value
	case CleaningTimeBefore:
		c.TimeBefore = value
	case CleaningTimeAfter:
		c.TimeAfter = value
	case CleaningDescription:
		c.Description = value
	case CleaningSupervisorSignature:
		c.SupervisorSignature = value
	default:
		return fmt.Errorf("unknown cleaning field %q", field)
	}
	return nil
}

// PhotoPhase selects one of the two cleaning photo galleries.
type PhotoPhase string

const (
	PhotosBefore PhotoPhase = "before"
	PhotosAfter  PhotoPhase = "after"
)
