package workflow

import "fmt"

// Leg penerbangan yang ditangani HR Ticketing.
type Leg string

const (
	LegBerangkat Leg = "departure"
	LegBalik     Leg = "return"
)

// ValidasiTerbitTiket memeriksa apakah actor boleh menerbitkan tiket untuk
// leg tertentu pada pengajuan dengan status saat ini. Penerbitan ulang leg
// yang sama diperbolehkan (overwrite metadata + entri riwayat baru).
func ValidasiTerbitTiket(saatIni Status, actor Actor, leg Leg) error {
	if actor.Role != RoleHRTicketing {
		return fmt.Errorf("%w: hanya hr_ticketing yang menerbitkan tiket", ErrForbidden)
	}
	if saatIni != StatusProcessing {
		return fmt.Errorf("%w: pengajuan tidak sedang di proses ticketing", ErrInvalidTransition)
	}
	if leg != LegBerangkat && leg != LegBalik {
		return fmt.Errorf("%w: leg %q tidak dikenal", ErrValidation, leg)
	}
	return nil
}

// RiwayatUntukLeg memetakan leg ke aksi riwayatnya.
func RiwayatUntukLeg(leg Leg) AksiRiwayat {
	if leg == LegBalik {
		return RiwayatTiketBalik
	}
	return RiwayatTiketBerangkat
}
