package model

import "gorm.io/gorm"

// Penilaian kinerja karyawan, workflow dua tahap (PJO Site -> HR Site).
type Penilaian struct {
	gorm.Model
	NIK        string `json:"nik" gorm:"column:nik;index;not null"`
	Nama       string `json:"nama"` // snapshot
	Site       string `json:"site"`
	Departemen string `json:"departemen"`
	Periode    string `json:"periode"` // contoh: 2026-S1
	Skor       int    `json:"skor"`
	Catatan    string `json:"catatan"`

	Status      string `json:"status" gorm:"index;default:pending_pjo"`
	DinilaiOleh string `json:"dinilai_oleh"` // NIK penilai awal
}
