// Package catalog holds the compiled-in operational data: the three shift
// checklists, branch locations, archive folders and the Indonesian calendar
// names used for display dates. Nothing here is mutated at runtime.
package catalog

// ChecklistItem is one line of a shift checklist.
type ChecklistItem struct {
	ID   string
	Text string
}

// Shift is an ordered checklist for one operational shift.
type Shift struct {
	Key   string
	Title string
	Items []ChecklistItem
}

var shifts = []Shift{
	{
		Key:   "pagi",
		Title: "Shift Pagi (Persiapan)",
		Items: []ChecklistItem{
			{ID: "p1", Text: "Berdoa serta briefing staf & pembagian tugas harian"},
			{ID: "p2", Text: "Bersihkan area makan, dapur, toilet, wastafel, dan peralatan makan"},
			{ID: "p3", Text: "Cek stok bahan baku, lakukan FIFO (First In First Out)"},
			{ID: "p4", Text: "Periksa kualitas bahan segar (sayur, daging, ikan, bumbu)"},
			{ID: "p5", Text: "Siapkan peralatan dapur & alat saji dalam kondisi bersih dan siap pakai"},
			{ID: "p6", Text: "Pastikan kompor, gas, kulkas, freezer, dan peralatan listrik berfungsi normal"},
			{ID: "p7", Text: "Pastikan kebersihan & kerapian seragam staf (APD: apron, masker, sarung tangan, penutup kepala)"},
		},
	},
	{
		Key:   "siang",
		Title: "Shift Siang (Operasional)",
		Items: []ChecklistItem{
			{ID: "s1", Text: "Laporan stok & cek ketersediaan stok"},
			{ID: "s2", Text: "Melayani pelanggan sesuai SOP (3S: Senyum, Salam, Sapa)"},
			{ID: "s3", Text: "Catat pesanan dengan jelas dan ulangi untuk konfirmasi"},
			{ID: "s4", Text: "Produksi makanan sesuai SOP resep & standar porsi"},
			{ID: "s5", Text: "Lakukan Test Food (Isi detail di menu Log QC)"},
			{ID: "s6", Text: "Sajikan makanan sesuai standar (panas/ hangat, rapi, bersih)"},
			{ID: "s7", Text: "Kontrol kualitas rasa & kebersihan secara berkala"},
			{ID: "s8", Text: "Catat transaksi berjalan di kasir"},
			{ID: "s9", Text: "Cek toilet & area makan minimal setiap 2 jam"},
		},
	},
	{
		Key:   "malam",
		Title: "Shift Malam (Closing)",
		Items: []ChecklistItem{
			{ID: "m1", Text: "Matikan kompor, gas, listrik, AC, dan alat dapur lain yang tidak dipakai"},
			{ID: "m2", Text: "Bersihkan dapur (lantai, meja, kompor, peralatan masak), area makan, dan toilet"},
			{ID: "m3", Text: "Simpan bahan sesuai kategori: dingin (chiller), beku (freezer), kering (rak)"},
			{ID: "m4", Text: "Catat sisa stok bahan & input ke laporan harian"},
			{ID: "m5", Text: "Rekap transaksi penjualan harian (kasir)"},
			{ID: "m6", Text: "Buat laporan harian (penjualan, stok, komplain, test food)"},
			{ID: "m7", Text: "Pastikan pintu, jendela, dan akses masuk terkunci & aman"},
			{ID: "m8", Text: "Lakukan serah terima catatan untuk shift esok hari"},
		},
	},
}

// Shifts returns the operational shifts in display order.
func Shifts() []Shift {
	return shifts
}

// ShiftByKey returns the shift with the given key.
func ShiftByKey(key string) (Shift, bool) {
	for _, s := range shifts {
		if s.Key == key {
			return s, true
		}
	}
	return Shift{}, false
}

// Locations are the branch names a report can be archived under.
var Locations = []string{"Cimahi 1", "Cimahi 2", "Pasteur"}

// Folders are the shift folders a report can be archived under.
var Folders = []string{"Pagi", "Siang", "Malam"}

// QcShifts are the selectable shifts on the QC form.
var QcShifts = []string{"Pagi", "Siang", "Malam"}

// CleaningShifts are the selectable cleaning windows on the cleaning form.
var CleaningShifts = []string{
	"Pagi (08.15 - 09.00)",
	"Siang-Sore (14.30 - 17.00)",
	"Malam (20.30 - 21.00)",
}

// ValidLocation reports whether name is one of the archive locations.
func ValidLocation(name string) bool {
	for _, l := range Locations {
		if l == name {
			return true
		}
	}
	return false
}

// ValidFolder reports whether name is one of the archive folders.
func ValidFolder(name string) bool {
	for _, f := range Folders {
		if f == name {
			return true
		}
	}
	return false
}
