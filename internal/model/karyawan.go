package model

import "gorm.io/gorm"

// Karyawan sekaligus berperan sebagai direktori identitas: NIK ->
// {nama, role, site, departemen, jabatan}. Data org di-snapshot ke
// pengajuan saat submit, jadi mutasi karyawan tidak mengubah riwayat.
type Karyawan struct {
	gorm.Model
	NIK        string `json:"nik" gorm:"column:nik;unique;not null"`
	Nama       string `json:"nama"`
	Password   string `json:"-"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Site       string `json:"site"`
	Departemen string `json:"departemen"`
	Jabatan    string `json:"jabatan"`
	IsActive   bool   `json:"is_active" gorm:"default:true"`
}
