package model

import (
	"time"

	"gorm.io/gorm"
)

// RiwayatApproval adalah ledger append-only per pengajuan. Satu entri per
// transisi yang berhasil; percobaan yang gagal tidak meninggalkan jejak.
// Nama dan role approver di-snapshot supaya timeline tetap benar walau
// data org approver berubah belakangan.
type RiwayatApproval struct {
	gorm.Model
	PengajuanCutiID uint      `json:"pengajuan_cuti_id" gorm:"index;not null"`
	NIKApprover     string    `json:"nik_approver"`
	NamaApprover    string    `json:"nama_approver"`
	RoleApprover    string    `json:"role_approver"`
	Aksi            string    `json:"aksi"`
	Catatan         string    `json:"catatan"`
	Timestamp       time.Time `json:"timestamp"`
}

// RiwayatPenilaian: bentuk yang sama untuk workflow penilaian.
type RiwayatPenilaian struct {
	gorm.Model
	PenilaianID  uint      `json:"penilaian_id" gorm:"index;not null"`
	NIKApprover  string    `json:"nik_approver"`
	NamaApprover string    `json:"nama_approver"`
	RoleApprover string    `json:"role_approver"`
	Aksi         string    `json:"aksi"`
	Catatan      string    `json:"catatan"`
	Timestamp    time.Time `json:"timestamp"`
}
