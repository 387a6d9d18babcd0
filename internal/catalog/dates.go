package catalog

import (
	"fmt"
	"time"
)

var monthNames = []string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

var dayNames = []string{
	"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu",
}

// MonthName returns the Indonesian name for a calendar month.
func MonthName(m time.Month) string {
	return monthNames[int(m)-1]
}

// DisplayDate formats t the way the report header and the day-rollover marker
// expect it, e.g. "Kamis, 1 Januari 2025".
func DisplayDate(t time.Time) string {
	return fmt.Sprintf("%s, %d %s %d",
		dayNames[int(t.Weekday())], t.Day(), MonthName(t.Month()), t.Year())
}

// ISODate formats t as YYYY-MM-DD, the value stored in draft date fields.
func ISODate(t time.Time) string {
	return t.Format("2006-01-02")
}
