package model

import "gorm.io/gorm"

// PengajuanCuti adalah state mutable satu permohonan cuti. Status hanya
// diubah lewat engine workflow (decide) dan sub-workflow ticketing;
// tidak ada update status langsung dari handler.
type PengajuanCuti struct {
	gorm.Model
	NIK        string `json:"nik" gorm:"column:nik;index;not null"`
	Nama       string `json:"nama"`       // snapshot saat submit
	Site       string `json:"site"`       // snapshot
	Departemen string `json:"departemen"` // snapshot
	Jabatan    string `json:"jabatan"`    // snapshot

	JenisCuti        string `json:"jenis_cuti"` // tahunan / periodik
	TanggalPengajuan string `json:"tanggal_pengajuan"`
	TanggalMulai     string `json:"tanggal_mulai"`
	TanggalSelesai   string `json:"tanggal_selesai"`
	JumlahHari       int    `json:"jumlah_hari"`
	BerangkatDari    string `json:"berangkat_dari"`
	Tujuan           string `json:"tujuan"`
	SisaCutiTahunan  int    `json:"sisa_cuti_tahunan"` // snapshot kuota, tidak dihitung ulang
	Alasan           string `json:"alasan"`
	Keterangan       string `json:"keterangan"`

	Status       string `json:"status" gorm:"index;default:pending_dic"`
	DiajukanOleh string `json:"diajukan_oleh"` // bisa beda dengan NIK (pengajuan diwakilkan)

	// Fakta tiket, sumbu terpisah dari Status.
	KodeBooking    string `json:"kode_booking"`
	TiketBerangkat string `json:"tiket_berangkat" gorm:"default:none"`
	TiketBalik     string `json:"tiket_balik" gorm:"default:none"`
	Maskapai       string `json:"maskapai"`
	JamPenerbangan string `json:"jam_penerbangan"`
}

// ButuhTiket melaporkan apakah pengajuan ini perlu diurus HR Ticketing.
// Cuti periodik selalu pakai tiket; selain itu dilihat dari rute yang
// diisi pemohon.
func (p *PengajuanCuti) ButuhTiket() bool {
	return p.JenisCuti == "periodik" || p.Tujuan != ""
}
