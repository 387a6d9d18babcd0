package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"restops/engine/internal/catalog"
	"restops/engine/internal/model"
	"restops/engine/internal/validate"
)

const summarySheet = "Ringkasan"

// MonthlySummary renders the filtered archive as a recap spreadsheet: one row
// per report with per-shift checklist progress and the QC and cleaning
// completion flags.
func MonthlySummary(reports []model.Report, month time.Month, year int) (*Result, error) {
	if len(reports) == 0 {
		return nil, ErrNoReports
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("name summary sheet: %w", err)
	}

	headers := []string{
		"No", "Tanggal", "Lokasi", "Folder",
		"Progress Pagi (%)", "Progress Siang (%)", "Progress Malam (%)",
		"Menu QC", "QC Lengkap", "Area Kebersihan", "Kebersihan Lengkap",
	}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("summary header cell: %w", err)
		}
		if err := f.SetCellValue(summarySheet, cell, h); err != nil {
			return nil, fmt.Errorf("write summary header: %w", err)
		}
	}

	shifts := catalog.Shifts()
	for i, r := range reports {
		row := []any{
			i + 1, r.DateFormatted, r.ArchiveLocation, r.ArchiveFolder,
		}
		for _, shift := range shifts {
			row = append(row, validate.ShiftProgress(shift, r.Checks))
		}
		row = append(row,
			r.Qc.MenuName, yesNo(validate.QcComplete(r.Qc)),
			r.Cleaning.Area, yesNo(validate.CleaningComplete(r.Cleaning)),
		)
		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("summary cell: %w", err)
			}
			if err := f.SetCellValue(summarySheet, cell, v); err != nil {
				return nil, fmt.Errorf("write summary row %d: %w", i+1, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("assemble spreadsheet: %w", err)
	}
	return &Result{
		Data:     buf.Bytes(),
		Filename: fmt.Sprintf("Rekap_Laporan_%s_%d.xlsx", catalog.MonthName(month), year),
		MimeType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	}, nil
}

func yesNo(v bool) string {
	if v {
		return "Ya"
	}
	return "Tidak"
}
