package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"restops/engine/internal/model"
)

//go:embed templates/report.html
var templateFS embed.FS

var reportTemplate = template.Must(
	template.New("report").Funcs(template.FuncMap{
		"orDash": func(s string) string {
			if s == "" {
				return "-"
			}
			return s
		},
		// Signature and photo values are data URLs produced by the capture
		// widgets; html/template would otherwise neuter them.
		"imageURL": func(s string) template.URL {
			return template.URL(s)
		},
	}).ParseFS(templateFS, "templates/report.html"),
)

type documentData struct {
	Location    string
	Folder      string
	Date        string
	Placeholder bool
	Checklist   []ChecklistShift
	Qc          *model.QcLog
	Cleaning    *model.CleaningLog
}

// HTML renders the source into the print document. The section list decides
// what appears; an all-empty source yields the placeholder document.
func HTML(src Source) (string, error) {
	data := documentData{
		Location: src.Location,
		Folder:   src.Folder,
		Date:     src.Date,
	}
	for _, section := range Sections(src) {
		switch section.Kind {
		case SectionChecklist:
			data.Checklist = section.Checklist
		case SectionQc:
			data.Qc = section.Qc
		case SectionCleaning:
			data.Cleaning = section.Cleaning
		case SectionPlaceholder:
			data.Placeholder = true
		}
	}

	var buf bytes.Buffer
	if err := reportTemplate.ExecuteTemplate(&buf, "report.html", data); err != nil {
		return "", fmt.Errorf("render document: %w", err)
	}
	return buf.String(), nil
}
