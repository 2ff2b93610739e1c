package workflow

import (
	"fmt"
	"time"
)

// Keputusan adalah hasil validasi satu aksi approval: status tujuan dan
// aksi riwayat yang harus dicatat. Engine ini murni; persist + append
// riwayat dilakukan caller dalam satu transaksi.
type Keputusan struct {
	Berikutnya Status
	Riwayat    AksiRiwayat
}

// Putuskan memvalidasi aksi approve/reject dari actor terhadap pengajuan
// dengan status, site, dan departemen tertentu. butuhTiket menentukan
// hasil approve di tahap HR HO (processing vs approved).
//
// Urutan pengecekan mengikuti kontrak decide: transisi dulu, baru role,
// baru cakupan. Gagal di sini tidak mengubah state apa pun.
func Putuskan(saatIni Status, site, departemen string, butuhTiket bool, actor Actor, aksi Aksi) (Keputusan, error) {
	aturan, ok := AturanUntuk(saatIni)
	if !ok {
		// Terminal atau sudah di tahap ticketing; bukan urusan decide.
		return Keputusan{}, fmt.Errorf("%w: status %s", ErrInvalidTransition, saatIni)
	}

	if actor.Role != aturan.Role {
		return Keputusan{}, fmt.Errorf("%w: role %s tidak bisa memutus tahap ini", ErrForbidden, actor.Role)
	}
	if aturan.CocokSite && actor.Site != site {
		return Keputusan{}, fmt.Errorf("%w: beda site", ErrForbidden)
	}
	if aturan.CocokDept && actor.Departemen != departemen {
		return Keputusan{}, fmt.Errorf("%w: beda departemen", ErrForbidden)
	}

	switch aksi {
	case AksiApprove:
		berikutnya := aturan.Disetujui
		if butuhTiket && aturan.DisetujuiTiket != "" {
			berikutnya = aturan.DisetujuiTiket
		}
		return Keputusan{Berikutnya: berikutnya, Riwayat: RiwayatApproved}, nil
	case AksiReject:
		return Keputusan{Berikutnya: aturan.Ditolak, Riwayat: RiwayatRejected}, nil
	default:
		return Keputusan{}, fmt.Errorf("%w: aksi %q tidak dikenal", ErrValidation, aksi)
	}
}

const formatTanggal = "2006-01-02"

// ValidasiPengajuan memeriksa kelengkapan draft pengajuan cuti sebelum
// disimpan. Tanggal dipakai format YYYY-MM-DD seperti di seluruh API.
func ValidasiPengajuan(nik, jenis, tanggalPengajuan, mulai, selesai string) error {
	if nik == "" {
		return fmt.Errorf("%w: nik wajib diisi", ErrValidation)
	}
	if jenis == "" {
		return fmt.Errorf("%w: jenis cuti wajib diisi", ErrValidation)
	}
	if tanggalPengajuan == "" {
		return fmt.Errorf("%w: tanggal pengajuan wajib diisi", ErrValidation)
	}
	tMulai, err := time.Parse(formatTanggal, mulai)
	if err != nil {
		return fmt.Errorf("%w: tanggal mulai salah format", ErrValidation)
	}
	tSelesai, err := time.Parse(formatTanggal, selesai)
	if err != nil {
		return fmt.Errorf("%w: tanggal selesai salah format", ErrValidation)
	}
	if tSelesai.Before(tMulai) {
		return fmt.Errorf("%w: tanggal selesai sebelum tanggal mulai", ErrValidation)
	}
	return nil
}
