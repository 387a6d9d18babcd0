package render

import (
	"strings"
	"testing"

	"restops/engine/internal/model"
)

func emptySource() Source {
	return Source{
		Checks:   model.ChecklistState{},
		Date:     "Kamis, 2 Januari 2025",
		Location: "Cimahi 1",
		Folder:   "Pagi",
	}
}

func TestSectionsPlaceholderWhenEmpty(t *testing.T) {
	got := Sections(emptySource())
	if len(got) != 1 || got[0].Kind != SectionPlaceholder {
		t.Fatalf("empty source must yield exactly the placeholder section, got %v", got)
	}
}

func TestSectionsChecklistShiftNeedsCheckedItem(t *testing.T) {
	src := emptySource()
	src.Checks = model.ChecklistState{"s3": true, "p1": false}

	got := Sections(src)
	if len(got) != 1 || got[0].Kind != SectionChecklist {
		t.Fatalf("want single checklist section, got %v", got)
	}
	shifts := got[0].Checklist
	if len(shifts) != 1 {
		t.Fatalf("only the siang shift has data, got %d shifts", len(shifts))
	}
	if shifts[0].Title != "Shift Siang (Operasional)" {
		t.Errorf("shift title = %q", shifts[0].Title)
	}
	// The included shift renders every catalog item, checked or not.
	if len(shifts[0].Lines) != 9 {
		t.Errorf("siang shift lines = %d, want 9", len(shifts[0].Lines))
	}
	checked := 0
	for _, line := range shifts[0].Lines {
		if line.Checked {
			checked++
		}
	}
	if checked != 1 {
		t.Errorf("checked lines = %d, want 1", checked)
	}
}

func TestSectionsShiftOrderFollowsCatalog(t *testing.T) {
	src := emptySource()
	src.Checks = model.ChecklistState{"m1": true, "p1": true}

	got := Sections(src)
	if len(got) != 1 {
		t.Fatalf("got %d sections", len(got))
	}
	shifts := got[0].Checklist
	if len(shifts) != 2 {
		t.Fatalf("got %d shifts", len(shifts))
	}
	if shifts[0].Title != "Shift Pagi (Persiapan)" || shifts[1].Title != "Shift Malam (Closing)" {
		t.Errorf("shift order wrong: %q, %q", shifts[0].Title, shifts[1].Title)
	}
}

func TestSectionsQcNeedsMenuName(t *testing.T) {
	src := emptySource()
	src.Qc = model.QcLog{Taste: "Enak", Notes: "catatan"}
	if got := Sections(src); got[0].Kind != SectionPlaceholder {
		t.Errorf("qc without menu name must not qualify: %v", got)
	}

	src.Qc.MenuName = "Rendang"
	got := Sections(src)
	if len(got) != 1 || got[0].Kind != SectionQc {
		t.Fatalf("want single qc section, got %v", got)
	}
	if got[0].Qc.MenuName != "Rendang" {
		t.Errorf("qc payload = %+v", got[0].Qc)
	}
}

func TestSectionsCleaningNeedsArea(t *testing.T) {
	src := emptySource()
	src.Cleaning = model.CleaningLog{Description: "lantai"}
	if got := Sections(src); got[0].Kind != SectionPlaceholder {
		t.Errorf("cleaning without area must not qualify: %v", got)
	}

	src.Cleaning.Area = "Dapur"
	got := Sections(src)
	if len(got) != 1 || got[0].Kind != SectionCleaning {
		t.Fatalf("want single cleaning section, got %v", got)
	}
}

func TestSectionsAllThree(t *testing.T) {
	src := emptySource()
	src.Checks = model.ChecklistState{"p1": true}
	src.Qc = model.QcLog{MenuName: "Soto"}
	src.Cleaning = model.CleaningLog{Area: "Toilet"}

	got := Sections(src)
	if len(got) != 3 {
		t.Fatalf("got %d sections, want 3", len(got))
	}
	wantKinds := []SectionKind{SectionChecklist, SectionQc, SectionCleaning}
	for i, want := range wantKinds {
		if got[i].Kind != want {
			t.Errorf("section %d kind = %v, want %v", i, got[i].Kind, want)
		}
	}
}

func TestHTMLPlaceholderDocument(t *testing.T) {
	html, err := HTML(emptySource())
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	if !strings.Contains(html, "Tidak ada data checklist") {
		t.Error("placeholder text missing")
	}
	if strings.Contains(html, "Ringkasan Checklist") || strings.Contains(html, "Quality Control") {
		t.Error("empty document must not render data sections")
	}
	// Header always renders.
	for _, want := range []string{"Cimahi 1", "Pagi", "Kamis, 2 Januari 2025", "Management Hj. Maya"} {
		if !strings.Contains(html, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestHTMLChecklistMarks(t *testing.T) {
	src := emptySource()
	src.Checks = model.ChecklistState{"p1": true}

	html, err := HTML(src)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, "[&#10003;]") {
		t.Error("checked mark missing")
	}
	if !strings.Contains(html, "[ ]") {
		t.Error("unchecked mark missing")
	}
	if !strings.Contains(html, "Berdoa serta briefing staf") {
		t.Error("item text missing")
	}
}

func TestHTMLCleaningEmptyGalleryMarker(t *testing.T) {
	src := emptySource()
	src.Cleaning = model.CleaningLog{Area: "Dapur"}

	html, err := HTML(src)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(html, "Tidak ada foto"); got != 2 {
		t.Errorf("empty gallery markers = %d, want 2", got)
	}
}

func TestHTMLKeepsImageDataURLs(t *testing.T) {
	src := emptySource()
	src.Qc = model.QcLog{
		MenuName:      "Soto",
		ChefSignature: "data:image/png;base64,AAAA",
	}
	src.Cleaning = model.CleaningLog{
		Area:         "Dapur",
		PhotosBefore: []string{"data:image/jpeg;base64,BBBB"},
	}

	html, err := HTML(src)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, `src="data:image/png;base64,AAAA"`) {
		t.Error("signature data url was escaped or dropped")
	}
	if !strings.Contains(html, `src="data:image/jpeg;base64,BBBB"`) {
		t.Error("photo data url was escaped or dropped")
	}
}

func TestHTMLEmptyFieldsRenderDash(t *testing.T) {
	src := emptySource()
	src.Qc = model.QcLog{MenuName: "Soto"}

	html, err := HTML(src)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, "<td>-</td>") {
		t.Error("empty fields should render as a dash")
	}
}

func TestFromReport(t *testing.T) {
	r := model.Report{
		DateFormatted:   "Jumat, 3 Januari 2025",
		ArchiveLocation: "Pasteur",
		ArchiveFolder:   "Malam",
		Qc:              model.QcLog{MenuName: "Rendang"},
	}
	src := FromReport(r)
	if src.Date != r.DateFormatted || src.Location != "Pasteur" || src.Folder != "Malam" {
		t.Errorf("FromReport = %+v", src)
	}
}

func TestFromDraftsUsesLiveMarkers(t *testing.T) {
	src := FromDrafts(model.ChecklistState{}, model.QcLog{}, model.CleaningLog{}, "Kamis, 2 Januari 2025")
	if src.Location != "Laporan Langsung" || src.Folder != "-" {
		t.Errorf("live markers = %q / %q", src.Location, src.Folder)
	}
}
