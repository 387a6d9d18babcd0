package report

import (
	"strings"
	"testing"
	"time"

	"restops/engine/internal/model"
)

func TestBuildDeepCopiesDrafts(t *testing.T) {
	checks := model.ChecklistState{"p1": true, "p2": false}
	qc := model.QcLog{MenuName: "Rendang", Taste: "Gurih"}
	cleaning := model.CleaningLog{
		Area:         "Dapur Utama",
		PhotosBefore: []string{"photo-a"},
		PhotosAfter:  []string{"photo-b"},
	}

	now := time.Date(2025, time.January, 2, 10, 30, 0, 0, time.Local)
	r := Build(checks, qc, cleaning, "Cimahi 1", "Pagi", "Kamis, 2 Januari 2025", now)

	// Mutate every source after the build.
	checks["p1"] = false
	checks["p3"] = true
	qc.MenuName = "Soto"
	cleaning.Area = "Toilet"
	cleaning.PhotosBefore[0] = "tampered"
	cleaning.PhotosAfter = append(cleaning.PhotosAfter, "extra")

	if !r.Checks["p1"] || r.Checks["p3"] {
		t.Error("checklist mutation leaked into report")
	}
	if r.Qc.MenuName != "Rendang" {
		t.Errorf("qc mutation leaked into report: %q", r.Qc.MenuName)
	}
	if r.Cleaning.Area != "Dapur Utama" {
		t.Errorf("cleaning mutation leaked into report: %q", r.Cleaning.Area)
	}
	if r.Cleaning.PhotosBefore[0] != "photo-a" {
		t.Errorf("photo mutation leaked into report: %q", r.Cleaning.PhotosBefore[0])
	}
	if len(r.Cleaning.PhotosAfter) != 1 {
		t.Errorf("photo append leaked into report: %d entries", len(r.Cleaning.PhotosAfter))
	}
}

func TestBuildMetadata(t *testing.T) {
	now := time.Date(2025, time.March, 15, 18, 0, 0, 0, time.Local)
	r := Build(model.ChecklistState{}, model.QcLog{}, model.CleaningLog{},
		"Pasteur", "Malam", "Sabtu, 15 Maret 2025", now)

	if !strings.HasPrefix(r.ID, "2025-03-15-") {
		t.Errorf("id %q missing date prefix", r.ID)
	}
	if r.DateFormatted != "Sabtu, 15 Maret 2025" {
		t.Errorf("dateFormatted = %q", r.DateFormatted)
	}
	if r.Timestamp != now.UnixMilli() {
		t.Errorf("timestamp = %d, want %d", r.Timestamp, now.UnixMilli())
	}
	if r.ArchiveLocation != "Pasteur" || r.ArchiveFolder != "Malam" {
		t.Errorf("archive metadata = %q/%q", r.ArchiveLocation, r.ArchiveFolder)
	}
}

func TestBuildSameInstantIDsDiffer(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.Local)
	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		r := Build(model.ChecklistState{}, model.QcLog{}, model.CleaningLog{},
			"Cimahi 2", "Siang", "Minggu, 1 Juni 2025", now)
		if seen[r.ID] {
			t.Fatalf("duplicate id %q for same-instant saves", r.ID)
		}
		seen[r.ID] = true
	}
}
