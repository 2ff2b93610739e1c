package workflow

// Status utama pengajuan cuti. Urutan approval: DIC -> PJO Site -> HR HO.
// Pengajuan yang butuh tiket lanjut ke "processing" (ditangani HR Ticketing),
// cuti lokal langsung terminal "approved".
type Status string

const (
	StatusPendingDIC   Status = "pending_dic"
	StatusPendingPJO   Status = "pending_pjo"
	StatusPendingHRHO  Status = "pending_hr_ho"
	StatusApproved     Status = "approved"
	StatusProcessing   Status = "processing"
	StatusRejectedDIC  Status = "rejected_dic"
	StatusRejectedPJO  Status = "rejected_pjo"
	StatusRejectedHRHO Status = "rejected_hr_ho"
)

// Status tiket per leg (berangkat / balik). Sumbu ini independen dari
// Status utama; gabungan keduanya dihitung di StatusEfektif.
type StatusTiket string

const (
	TiketBelumTerbit StatusTiket = "none"
	TiketTerbit      StatusTiket = "issued"
)

// Role yang dikenal workflow.
const (
	RoleKaryawan    = "karyawan"
	RoleDIC         = "dic"
	RolePJOSite     = "pjo_site"
	RoleHRHO        = "hr_ho"
	RoleHRSite      = "hr_site"
	RoleHRTicketing = "hr_ticketing"
)

// Aksi yang bisa diambil approver pada satu tahap.
type Aksi string

const (
	AksiApprove Aksi = "approve"
	AksiReject  Aksi = "reject"
)

// AksiRiwayat adalah nilai kolom aksi pada entri riwayat approval.
type AksiRiwayat string

const (
	RiwayatApproved       AksiRiwayat = "approved"
	RiwayatRejected       AksiRiwayat = "rejected"
	RiwayatTiketBerangkat AksiRiwayat = "ticket_departure_issued"
	RiwayatTiketBalik     AksiRiwayat = "ticket_return_issued"
	RiwayatTiketLengkap   AksiRiwayat = "ticket_issued_full"
)

var statusTerminal = map[Status]bool{
	StatusApproved:     true,
	StatusRejectedDIC:  true,
	StatusRejectedPJO:  true,
	StatusRejectedHRHO: true,
}

// Terminal melaporkan apakah status sudah final (tidak ada decide lagi).
// Catatan: "processing" bukan terminal tapi juga tidak punya baris transisi;
// tahap itu milik sub-workflow ticketing.
func (s Status) Terminal() bool {
	return statusTerminal[s]
}

// Ditolak melaporkan apakah status termasuk cabang penolakan.
func (s Status) Ditolak() bool {
	return s == StatusRejectedDIC || s == StatusRejectedPJO || s == StatusRejectedHRHO
}

var labelStatus = map[Status]string{
	StatusPendingDIC:  "Menunggu Approval DIC",
	StatusPendingPJO:  "Menunggu Approval PJO Site",
	StatusPendingHRHO: "Menunggu Approval HR HO",
	StatusApproved:    "Disetujui",
	StatusProcessing:  "Di Proses HR Ticketing",
}

// Label mengembalikan label tampilan untuk status. Semua cabang rejected
// ditampilkan generik sebagai "Ditolak".
func (s Status) Label() string {
	if s.Ditolak() {
		return "Ditolak"
	}
	if l, ok := labelStatus[s]; ok {
		return l
	}
	return string(s)
}

// Actor adalah principal yang sudah terautentikasi, dibentuk dari claims
// JWT. Tidak pernah disimpan; hanya snapshot-nya yang masuk riwayat.
type Actor struct {
	NIK        string
	Nama       string
	Role       string
	Site       string
	Departemen string
}
