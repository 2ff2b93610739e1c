package workflow

// StatusEfektif menghitung label status tampilan dari gabungan status utama
// dan kedua status tiket. Murni untuk display/report, tidak pernah dipakai
// untuk otorisasi. Urutan prioritas persis seperti di bawah: fakta tiket
// menang atas status mentah.
func StatusEfektif(status Status, berangkat, balik StatusTiket) string {
	switch {
	case berangkat == TiketTerbit && balik == TiketTerbit:
		return "Tiket Lengkap"
	case berangkat == TiketTerbit:
		return "Tiket Berangkat Terbit"
	case balik == TiketTerbit:
		return "Tiket Balik Terbit"
	case status == StatusProcessing:
		return "Di Proses HR Ticketing"
	case status == StatusApproved:
		return "Cuti Lokal Disetujui"
	default:
		return status.Label()
	}
}
