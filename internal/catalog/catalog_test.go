package catalog

import (
	"testing"
	"time"
)

func TestShiftsCatalog(t *testing.T) {
	all := Shifts()
	if len(all) != 3 {
		t.Fatalf("shifts = %d, want 3", len(all))
	}
	wantCounts := map[string]int{"pagi": 7, "siang": 9, "malam": 8}
	for _, shift := range all {
		if got := wantCounts[shift.Key]; len(shift.Items) != got {
			t.Errorf("shift %s items = %d, want %d", shift.Key, len(shift.Items), got)
		}
	}
}

func TestShiftByKey(t *testing.T) {
	shift, ok := ShiftByKey("siang")
	if !ok || shift.Title != "Shift Siang (Operasional)" {
		t.Errorf("ShiftByKey(siang) = %+v, %v", shift, ok)
	}
	if _, ok := ShiftByKey("lembur"); ok {
		t.Error("unknown key should not resolve")
	}
}

func TestValidLocationAndFolder(t *testing.T) {
	for _, l := range Locations {
		if !ValidLocation(l) {
			t.Errorf("ValidLocation(%q) = false", l)
		}
	}
	if ValidLocation("Bandung") {
		t.Error("unknown location accepted")
	}
	for _, f := range Folders {
		if !ValidFolder(f) {
			t.Errorf("ValidFolder(%q) = false", f)
		}
	}
	if ValidFolder("Subuh") {
		t.Error("unknown folder accepted")
	}
}

func TestDisplayDate(t *testing.T) {
	tests := []struct {
		t    time.Time
		want string
	}{
		{time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local), "Rabu, 1 Januari 2025"},
		{time.Date(2025, time.January, 2, 23, 59, 0, 0, time.Local), "Kamis, 2 Januari 2025"},
		{time.Date(2024, time.August, 17, 12, 0, 0, 0, time.Local), "Sabtu, 17 Agustus 2024"},
	}
	for _, tt := range tests {
		if got := DisplayDate(tt.t); got != tt.want {
			t.Errorf("DisplayDate(%v) = %q, want %q", tt.t, got, tt.want)
		}
	}
}

func TestISODate(t *testing.T) {
	got := ISODate(time.Date(2025, time.March, 7, 10, 30, 0, 0, time.Local))
	if got != "2025-03-07" {
		t.Errorf("ISODate = %q", got)
	}
}

func TestMonthName(t *testing.T) {
	if got := MonthName(time.January); got != "Januari" {
		t.Errorf("MonthName(January) = %q", got)
	}
	if got := MonthName(time.December); got != "Desember" {
		t.Errorf("MonthName(December) = %q", got)
	}
}
