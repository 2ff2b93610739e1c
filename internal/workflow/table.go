package workflow

// AturanTransisi adalah satu baris tabel transisi: siapa yang boleh
// memutus pada status ini, cakupan yang harus cocok, dan status hasilnya.
type AturanTransisi struct {
	Role           string
	CocokSite      bool
	CocokDept      bool
	Disetujui      Status
	DisetujuiTiket Status // hasil approve kalau pengajuan butuh tiket (kosong = sama dengan Disetujui)
	Ditolak        Status
}

// Tabel transisi pengajuan cuti. Satu-satunya sumber kebenaran untuk
// engine dan query view; jangan duplikasi aturan ini di handler.
var transisiCuti = map[Status]AturanTransisi{
	StatusPendingDIC: {
		Role:      RoleDIC,
		CocokSite: true,
		CocokDept: true,
		Disetujui: StatusPendingPJO,
		Ditolak:   StatusRejectedDIC,
	},
	StatusPendingPJO: {
		Role:      RolePJOSite,
		CocokSite: true,
		Disetujui: StatusPendingHRHO,
		Ditolak:   StatusRejectedPJO,
	},
	StatusPendingHRHO: {
		Role:           RoleHRHO,
		Disetujui:      StatusApproved,
		DisetujuiTiket: StatusProcessing,
		Ditolak:        StatusRejectedHRHO,
	},
}

// AturanUntuk mengembalikan baris tabel untuk status saat ini.
func AturanUntuk(s Status) (AturanTransisi, bool) {
	r, ok := transisiCuti[s]
	return r, ok
}

// ViewRole memetakan role ke status pending yang dia tangani plus cakupan
// filternya, diturunkan dari tabel transisi supaya view tidak menyimpang
// dari engine. HR Ticketing ditangani khusus karena tahapnya ada di
// sub-workflow, bukan di tabel.
type ViewRole struct {
	StatusPending Status
	CocokSite     bool
	CocokDept     bool
	SemuaStatus   []Status // untuk mode "all": baris yang sudah lewat tahap role ini
}

var viewPerRole = map[string]ViewRole{
	RoleDIC: {
		StatusPending: StatusPendingDIC,
		CocokSite:     true,
		CocokDept:     true,
		SemuaStatus: []Status{
			StatusPendingDIC, StatusPendingPJO, StatusPendingHRHO,
			StatusApproved, StatusProcessing,
			StatusRejectedDIC, StatusRejectedPJO, StatusRejectedHRHO,
		},
	},
	RolePJOSite: {
		StatusPending: StatusPendingPJO,
		CocokSite:     true,
		SemuaStatus: []Status{
			StatusPendingPJO, StatusPendingHRHO,
			StatusApproved, StatusProcessing,
			StatusRejectedPJO, StatusRejectedHRHO,
		},
	},
	RoleHRHO: {
		StatusPending: StatusPendingHRHO,
		SemuaStatus: []Status{
			StatusPendingHRHO, StatusApproved, StatusProcessing,
			StatusRejectedHRHO,
		},
	},
	RoleHRTicketing: {
		StatusPending: StatusProcessing,
		SemuaStatus:   []Status{StatusProcessing},
	},
}

// ViewUntukRole mengembalikan definisi view untuk role approver.
func ViewUntukRole(role string) (ViewRole, bool) {
	v, ok := viewPerRole[role]
	return v, ok
}

func init() {
	// Pastikan view pending konsisten dengan tabel transisi.
	for role, v := range viewPerRole {
		if role == RoleHRTicketing {
			continue
		}
		r, ok := transisiCuti[v.StatusPending]
		if !ok || r.Role != role || r.CocokSite != v.CocokSite || r.CocokDept != v.CocokDept {
			panic("workflow: view role tidak sinkron dengan tabel transisi: " + role)
		}
	}
}
