package workflow

import "fmt"

// Status penilaian kinerja: varian dua tahap dari workflow cuti.
// PJO Site menilai dulu, lalu HR Site; ditolak bisa dari kedua tahap.
type StatusPenilaian string

const (
	PenilaianPendingPJO    StatusPenilaian = "pending_pjo"
	PenilaianPendingHRSite StatusPenilaian = "pending_hr_site"
	PenilaianApproved      StatusPenilaian = "approved"
	PenilaianRejected      StatusPenilaian = "rejected"
)

type aturanPenilaian struct {
	Role      string
	Disetujui StatusPenilaian
}

// Tahap penilaian hanya digate role, tanpa pencocokan site/departemen.
var transisiPenilaian = map[StatusPenilaian]aturanPenilaian{
	PenilaianPendingPJO:    {Role: RolePJOSite, Disetujui: PenilaianPendingHRSite},
	PenilaianPendingHRSite: {Role: RoleHRSite, Disetujui: PenilaianApproved},
}

var labelPenilaian = map[StatusPenilaian]string{
	PenilaianPendingPJO:    "Menunggu Penilaian PJO Site",
	PenilaianPendingHRSite: "Menunggu Verifikasi HR Site",
	PenilaianApproved:      "Disetujui",
	PenilaianRejected:      "Ditolak",
}

func (s StatusPenilaian) Label() string {
	if l, ok := labelPenilaian[s]; ok {
		return l
	}
	return string(s)
}

// PutuskanPenilaian memvalidasi aksi approver pada satu penilaian.
func PutuskanPenilaian(saatIni StatusPenilaian, actor Actor, aksi Aksi) (StatusPenilaian, AksiRiwayat, error) {
	aturan, ok := transisiPenilaian[saatIni]
	if !ok {
		return "", "", fmt.Errorf("%w: status %s", ErrInvalidTransition, saatIni)
	}
	if actor.Role != aturan.Role {
		return "", "", fmt.Errorf("%w: role %s tidak bisa memutus tahap ini", ErrForbidden, actor.Role)
	}
	switch aksi {
	case AksiApprove:
		return aturan.Disetujui, RiwayatApproved, nil
	case AksiReject:
		return PenilaianRejected, RiwayatRejected, nil
	default:
		return "", "", fmt.Errorf("%w: aksi %q tidak dikenal", ErrValidation, aksi)
	}
}

// StatusPendingPenilaian memetakan role ke tahap penilaian yang dia tangani.
func StatusPendingPenilaian(role string) (StatusPenilaian, bool) {
	for status, aturan := range transisiPenilaian {
		if aturan.Role == role {
			return status, true
		}
	}
	return "", false
}
