package usecase

import (
	"errors"
	"testing"
	"time"

	"sistem-cuti-backend/internal/model"
	"sistem-cuti-backend/internal/repository"
	"sistem-cuti-backend/internal/workflow"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func bukaDBTest(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("buka sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&model.Karyawan{},
		&model.PengajuanCuti{},
		&model.RiwayatApproval{},
		&model.Penilaian{},
		&model.RiwayatPenilaian{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

var (
	pemohon   = workflow.Actor{NIK: "100001", Nama: "Budi Santoso", Role: workflow.RoleKaryawan, Site: "SITE-A", Departemen: "PRODUKSI"}
	dic       = workflow.Actor{NIK: "100002", Nama: "Siti Rahma", Role: workflow.RoleDIC, Site: "SITE-A", Departemen: "PRODUKSI"}
	pjo       = workflow.Actor{NIK: "100003", Nama: "Agus Wijaya", Role: workflow.RolePJOSite, Site: "SITE-A", Departemen: "MANAGEMENT"}
	hrHO      = workflow.Actor{NIK: "100004", Nama: "Dewi Lestari", Role: workflow.RoleHRHO, Site: "HO", Departemen: "HR"}
	ticketing = workflow.Actor{NIK: "100005", Nama: "Rina Kurnia", Role: workflow.RoleHRTicketing, Site: "HO", Departemen: "HR"}
)

func siapkanCuti(t *testing.T) (*CutiUsecase, repository.CutiRepository, *gorm.DB) {
	t.Helper()
	db := bukaDBTest(t)
	db.Create(&model.Karyawan{
		NIK: pemohon.NIK, Nama: pemohon.Nama, Role: pemohon.Role,
		Site: pemohon.Site, Departemen: pemohon.Departemen, Jabatan: "Operator",
		Email: "budi@perusahaan.co.id", IsActive: true,
	})
	repo := repository.NewCutiRepository(db)
	uc := NewCutiUsecase(repo, repository.NewKaryawanRepository(db), nil)
	return uc, repo, db
}

func ajukanCutiLokal(t *testing.T, uc *CutiUsecase) *model.PengajuanCuti {
	t.Helper()
	p, err := uc.Ajukan(AjukanCutiInput{
		NIK:              pemohon.NIK,
		JenisCuti:        "tahunan",
		TanggalPengajuan: "2026-08-01",
		TanggalMulai:     "2026-09-01",
		TanggalSelesai:   "2026-09-05",
		JumlahHari:       5,
		SisaCutiTahunan:  7,
		Alasan:           "Keperluan keluarga",
	})
	if err != nil {
		t.Fatalf("Ajukan: %v", err)
	}
	return p
}

func ajukanCutiPeriodik(t *testing.T, uc *CutiUsecase) *model.PengajuanCuti {
	t.Helper()
	p, err := uc.Ajukan(AjukanCutiInput{
		NIK:              pemohon.NIK,
		JenisCuti:        "periodik",
		TanggalPengajuan: "2026-08-01",
		TanggalMulai:     "2026-09-01",
		TanggalSelesai:   "2026-09-14",
		JumlahHari:       14,
		BerangkatDari:    "Balikpapan",
		Tujuan:           "Surabaya",
		Alasan:           "Cuti periodik roster",
	})
	if err != nil {
		t.Fatalf("Ajukan periodik: %v", err)
	}
	return p
}

func TestAjukanValidasi(t *testing.T) {
	uc, _, _ := siapkanCuti(t)

	_, err := uc.Ajukan(AjukanCutiInput{NIK: pemohon.NIK, JenisCuti: "tahunan", TanggalPengajuan: "2026-08-01", TanggalMulai: "2026-09-10", TanggalSelesai: "2026-09-01"})
	if !errors.Is(err, workflow.ErrValidation) {
		t.Fatalf("rentang tanggal terbalik: mau ErrValidation, dapat %v", err)
	}

	_, err = uc.Ajukan(AjukanCutiInput{NIK: "999999", JenisCuti: "tahunan", TanggalPengajuan: "2026-08-01", TanggalMulai: "2026-09-01", TanggalSelesai: "2026-09-05"})
	if !errors.Is(err, workflow.ErrValidation) {
		t.Fatalf("karyawan tak dikenal: mau ErrValidation, dapat %v", err)
	}
}

func TestAjukanSnapshotDanStatusAwal(t *testing.T) {
	uc, _, _ := siapkanCuti(t)
	p := ajukanCutiLokal(t, uc)

	if p.Status != string(workflow.StatusPendingDIC) {
		t.Fatalf("status awal = %s", p.Status)
	}
	if p.Site != "SITE-A" || p.Departemen != "PRODUKSI" || p.Jabatan != "Operator" || p.Nama != pemohon.Nama {
		t.Fatalf("snapshot org salah: %+v", p)
	}
	if p.DiajukanOleh != pemohon.NIK {
		t.Fatalf("pengajuan sendiri: diajukan_oleh = %s", p.DiajukanOleh)
	}

	// Submit tidak menulis riwayat; ledger mulai dari approval pertama.
	riwayat, err := uc.Riwayat(p.ID)
	if err != nil {
		t.Fatalf("Riwayat: %v", err)
	}
	if len(riwayat) != 0 {
		t.Fatalf("riwayat setelah submit = %d, mau 0", len(riwayat))
	}
}

func TestAjukanDiwakilkan(t *testing.T) {
	uc, _, _ := siapkanCuti(t)
	p, err := uc.Ajukan(AjukanCutiInput{
		NIK:              pemohon.NIK,
		JenisCuti:        "tahunan",
		TanggalPengajuan: "2026-08-01",
		TanggalMulai:     "2026-09-01",
		TanggalSelesai:   "2026-09-05",
		DiajukanOleh:     "100002",
	})
	if err != nil {
		t.Fatalf("Ajukan: %v", err)
	}
	if p.DiajukanOleh != "100002" || p.NIK != pemohon.NIK {
		t.Fatalf("pengajuan diwakilkan salah: %+v", p)
	}
}

// Skenario A: cuti lokal disetujui berantai DIC -> PJO -> HR HO.
func TestAlurCutiLokalDisetujui(t *testing.T) {
	uc, _, _ := siapkanCuti(t)
	p := ajukanCutiLokal(t, uc)

	langkah := []struct {
		actor workflow.Actor
		mau   workflow.Status
	}{
		{dic, workflow.StatusPendingPJO},
		{pjo, workflow.StatusPendingHRHO},
		{hrHO, workflow.StatusApproved},
	}
	for _, l := range langkah {
		hasil, entri, err := uc.Putuskan(p.ID, l.actor, workflow.AksiApprove, "ok")
		if err != nil {
			t.Fatalf("Putuskan oleh %s: %v", l.actor.Role, err)
		}
		if hasil.Status != string(l.mau) {
			t.Fatalf("oleh %s: status = %s, mau %s", l.actor.Role, hasil.Status, l.mau)
		}
		if entri.NIKApprover != l.actor.NIK || entri.NamaApprover != l.actor.Nama || entri.RoleApprover != l.actor.Role {
			t.Fatalf("snapshot approver salah: %+v", entri)
		}
	}

	riwayat, _ := uc.Riwayat(p.ID)
	if len(riwayat) != 3 {
		t.Fatalf("riwayat = %d, mau 3", len(riwayat))
	}

	akhir, _ := uc.Detail(p.ID)
	label := workflow.StatusEfektif(workflow.Status(akhir.Status), workflow.StatusTiket(akhir.TiketBerangkat), workflow.StatusTiket(akhir.TiketBalik))
	if label != "Cuti Lokal Disetujui" {
		t.Fatalf("status efektif = %q", label)
	}
}

// Skenario B: DIC beda departemen ditolak tanpa efek samping.
func TestDICDepartemenLainForbidden(t *testing.T) {
	uc, _, _ := siapkanCuti(t)
	p := ajukanCutiLokal(t, uc)

	dicLain := dic
	dicLain.Departemen = "LOGISTIK"
	_, _, err := uc.Putuskan(p.ID, dicLain, workflow.AksiApprove, "")
	if !errors.Is(err, workflow.ErrForbidden) {
		t.Fatalf("mau ErrForbidden, dapat %v", err)
	}

	akhir, _ := uc.Detail(p.ID)
	if akhir.Status != string(workflow.StatusPendingDIC) {
		t.Fatalf("status berubah jadi %s padahal gagal", akhir.Status)
	}
	riwayat, _ := uc.Riwayat(p.ID)
	if len(riwayat) != 0 {
		t.Fatalf("gagal tidak boleh meninggalkan riwayat, dapat %d", len(riwayat))
	}
}

// Skenario C: pengajuan dengan tiket sampai "Tiket Lengkap".
func TestAlurTiketSampaiLengkap(t *testing.T) {
	uc, _, _ := siapkanCuti(t)
	p := ajukanCutiPeriodik(t, uc)

	for _, actor := range []workflow.Actor{dic, pjo, hrHO} {
		if _, _, err := uc.Putuskan(p.ID, actor, workflow.AksiApprove, ""); err != nil {
			t.Fatalf("approve %s: %v", actor.Role, err)
		}
	}
	hasil, _ := uc.Detail(p.ID)
	if hasil.Status != string(workflow.StatusProcessing) {
		t.Fatalf("butuh tiket harus ke processing, dapat %s", hasil.Status)
	}

	// Leg berangkat
	hasil, _, err := uc.TerbitkanTiket(p.ID, ticketing, TerbitkanTiketInput{
		Leg: string(workflow.LegBerangkat), Maskapai: "Garuda", JamPenerbangan: "08:15",
	})
	if err != nil {
		t.Fatalf("terbit berangkat: %v", err)
	}
	if hasil.KodeBooking == "" {
		t.Fatal("penerbitan pertama harus menetapkan kode booking")
	}
	kode := hasil.KodeBooking
	label := workflow.StatusEfektif(workflow.Status(hasil.Status), workflow.StatusTiket(hasil.TiketBerangkat), workflow.StatusTiket(hasil.TiketBalik))
	if label != "Tiket Berangkat Terbit" {
		t.Fatalf("status efektif = %q", label)
	}

	// Leg balik: kode booking dipakai ulang, entri full muncul
	hasil, _, err = uc.TerbitkanTiket(p.ID, ticketing, TerbitkanTiketInput{
		Leg: string(workflow.LegBalik), Maskapai: "Garuda", JamPenerbangan: "17:40",
	})
	if err != nil {
		t.Fatalf("terbit balik: %v", err)
	}
	if hasil.KodeBooking != kode {
		t.Fatalf("kode booking berubah: %s -> %s", kode, hasil.KodeBooking)
	}
	label = workflow.StatusEfektif(workflow.Status(hasil.Status), workflow.StatusTiket(hasil.TiketBerangkat), workflow.StatusTiket(hasil.TiketBalik))
	if label != "Tiket Lengkap" {
		t.Fatalf("status efektif = %q", label)
	}
	if hasil.Status != string(workflow.StatusProcessing) {
		t.Fatalf("status utama tidak boleh keluar dari processing, dapat %s", hasil.Status)
	}

	riwayat, _ := uc.Riwayat(p.ID)
	// 3 approval + berangkat + balik + ticket_issued_full
	if len(riwayat) != 6 {
		t.Fatalf("riwayat = %d, mau 6", len(riwayat))
	}
	adaFull := false
	for _, r := range riwayat {
		if r.Aksi == string(workflow.RiwayatTiketLengkap) {
			adaFull = true
		}
	}
	if !adaFull {
		t.Fatal("entri ticket_issued_full tidak ditemukan")
	}
	// Entri leg dan entri full berbagi timestamp; urutan harus tetap
	// stabil: full selalu setelah leg yang melengkapinya.
	if riwayat[4].Aksi != string(workflow.RiwayatTiketBalik) || riwayat[5].Aksi != string(workflow.RiwayatTiketLengkap) {
		t.Fatalf("urutan riwayat tidak stabil: %s lalu %s", riwayat[4].Aksi, riwayat[5].Aksi)
	}
}

func TestTerbitUlangLegMenimpaDanTimelineDedup(t *testing.T) {
	uc, _, _ := siapkanCuti(t)
	p := ajukanCutiPeriodik(t, uc)
	for _, actor := range []workflow.Actor{dic, pjo, hrHO} {
		if _, _, err := uc.Putuskan(p.ID, actor, workflow.AksiApprove, ""); err != nil {
			t.Fatalf("approve %s: %v", actor.Role, err)
		}
	}

	if _, _, err := uc.TerbitkanTiket(p.ID, ticketing, TerbitkanTiketInput{Leg: "departure", Maskapai: "Garuda", JamPenerbangan: "08:15"}); err != nil {
		t.Fatalf("terbit pertama: %v", err)
	}
	// Terbit ulang leg yang sama dengan maskapai baru
	hasil, _, err := uc.TerbitkanTiket(p.ID, ticketing, TerbitkanTiketInput{Leg: "departure", Maskapai: "Citilink", JamPenerbangan: "10:30"})
	if err != nil {
		t.Fatalf("terbit ulang: %v", err)
	}
	if hasil.Maskapai != "Citilink" {
		t.Fatalf("metadata tidak tertimpa: %s", hasil.Maskapai)
	}

	riwayat, _ := uc.Riwayat(p.ID)
	if len(riwayat) != 5 { // 3 approval + 2x departure, tanpa full
		t.Fatalf("riwayat = %d, mau 5", len(riwayat))
	}
	for _, r := range riwayat {
		if r.Aksi == string(workflow.RiwayatTiketLengkap) {
			t.Fatal("terbit ulang satu leg tidak boleh memunculkan ticket_issued_full")
		}
	}

	timeline, err := uc.Timeline(p.ID)
	if err != nil {
		t.Fatalf("Timeline: %v", err)
	}
	// approved + ticket_departure_issued, masing-masing satu entri terbaru
	if len(timeline) != 2 {
		t.Fatalf("timeline = %d, mau 2", len(timeline))
	}
	var terakhirDeparture uint
	for _, r := range riwayat {
		if r.Aksi == string(workflow.RiwayatTiketBerangkat) {
			terakhirDeparture = r.ID
		}
	}
	for _, r := range timeline {
		if r.Aksi == string(workflow.RiwayatTiketBerangkat) && r.ID != terakhirDeparture {
			t.Fatalf("entri timeline departure harus yang terbaru: %d != %d", r.ID, terakhirDeparture)
		}
	}
}

// Dua penerbitan leg yang saling menyela: masing-masing pihak membaca
// pengajuan saat leg lain masih none, lalu commit. Keputusan entri
// ticket_issued_full diambil di dalam transaksi dari baris yang sudah
// terupdate, jadi tetap muncul tepat satu entri full.
func TestTerbitTiketMenyelaTetapSatuFull(t *testing.T) {
	uc, repo, _ := siapkanCuti(t)
	p := ajukanCutiPeriodik(t, uc)
	for _, actor := range []workflow.Actor{dic, pjo, hrHO} {
		if _, _, err := uc.Putuskan(p.ID, actor, workflow.AksiApprove, ""); err != nil {
			t.Fatalf("approve %s: %v", actor.Role, err)
		}
	}

	// Kedua pihak menyusun perubahan dari pembacaan basi (leg lain none),
	// lalu commit bergantian lewat jalur repo yang sama dengan usecase.
	terbitkan := func(leg workflow.Leg, kolom string) []model.RiwayatApproval {
		t.Helper()
		ditulis, err := repo.UpdateTiketDenganRiwayat(p.ID, map[string]interface{}{
			kolom:             string(workflow.TiketTerbit),
			"kode_booking":    "GA123XY",
			"maskapai":        "Garuda",
			"jam_penerbangan": "08:15",
		}, model.RiwayatApproval{
			PengajuanCutiID: p.ID,
			NIKApprover:     ticketing.NIK,
			NamaApprover:    ticketing.Nama,
			RoleApprover:    ticketing.Role,
			Aksi:            string(workflow.RiwayatUntukLeg(leg)),
			Catatan:         "GA123XY",
			Timestamp:       time.Now(),
		})
		if err != nil {
			t.Fatalf("terbit %s: %v", leg, err)
		}
		return ditulis
	}

	pertama := terbitkan(workflow.LegBerangkat, "tiket_berangkat")
	if len(pertama) != 1 {
		t.Fatalf("penerbitan pertama menulis %d entri, mau 1", len(pertama))
	}
	kedua := terbitkan(workflow.LegBalik, "tiket_balik")
	if len(kedua) != 2 || kedua[1].Aksi != string(workflow.RiwayatTiketLengkap) {
		t.Fatalf("penerbitan kedua harus menulis leg + full, dapat %+v", kedua)
	}

	akhir, _ := uc.Detail(p.ID)
	if akhir.TiketBerangkat != string(workflow.TiketTerbit) || akhir.TiketBalik != string(workflow.TiketTerbit) {
		t.Fatalf("kedua leg harus issued: %+v", akhir)
	}
	riwayat, _ := uc.Riwayat(p.ID)
	jumlahFull := 0
	for _, r := range riwayat {
		if r.Aksi == string(workflow.RiwayatTiketLengkap) {
			jumlahFull++
		}
	}
	if jumlahFull != 1 {
		t.Fatalf("entri ticket_issued_full = %d, mau tepat 1", jumlahFull)
	}
	// 3 approval + berangkat + balik + full
	if len(riwayat) != 6 {
		t.Fatalf("riwayat = %d, mau 6", len(riwayat))
	}
}

func TestTerbitkanTiketGagal(t *testing.T) {
	uc, _, _ := siapkanCuti(t)
	p := ajukanCutiPeriodik(t, uc)

	// Belum processing
	if _, _, err := uc.TerbitkanTiket(p.ID, ticketing, TerbitkanTiketInput{Leg: "departure"}); !errors.Is(err, workflow.ErrInvalidTransition) {
		t.Fatalf("belum processing: mau ErrInvalidTransition, dapat %v", err)
	}

	for _, actor := range []workflow.Actor{dic, pjo, hrHO} {
		uc.Putuskan(p.ID, actor, workflow.AksiApprove, "")
	}

	// Role salah
	if _, _, err := uc.TerbitkanTiket(p.ID, hrHO, TerbitkanTiketInput{Leg: "departure"}); !errors.Is(err, workflow.ErrForbidden) {
		t.Fatalf("role salah: mau ErrForbidden, dapat %v", err)
	}
}

// Skenario D: reject di tahap PJO mengunci pengajuan.
func TestRejectPJOTerminal(t *testing.T) {
	uc, _, _ := siapkanCuti(t)
	p := ajukanCutiLokal(t, uc)

	if _, _, err := uc.Putuskan(p.ID, dic, workflow.AksiApprove, ""); err != nil {
		t.Fatalf("approve dic: %v", err)
	}
	hasil, _, err := uc.Putuskan(p.ID, pjo, workflow.AksiReject, "kuota site penuh")
	if err != nil {
		t.Fatalf("reject pjo: %v", err)
	}
	if hasil.Status != string(workflow.StatusRejectedPJO) {
		t.Fatalf("status = %s", hasil.Status)
	}

	for _, actor := range []workflow.Actor{dic, pjo, hrHO} {
		for _, aksi := range []workflow.Aksi{workflow.AksiApprove, workflow.AksiReject} {
			if _, _, err := uc.Putuskan(p.ID, actor, aksi, ""); !errors.Is(err, workflow.ErrInvalidTransition) {
				t.Fatalf("%s/%s setelah rejected: mau ErrInvalidTransition, dapat %v", actor.Role, aksi, err)
			}
		}
	}
}

// Precondition basi: dua keputusan dengan titik awal sama, hanya satu menang.
func TestCompareAndSwapKalahBalapan(t *testing.T) {
	uc, repo, _ := siapkanCuti(t)
	p := ajukanCutiLokal(t, uc)

	if _, _, err := uc.Putuskan(p.ID, dic, workflow.AksiApprove, ""); err != nil {
		t.Fatalf("pemenang: %v", err)
	}

	// Pihak kedua masih memegang precondition pending_dic yang sudah basi.
	entri := model.RiwayatApproval{PengajuanCutiID: p.ID, NIKApprover: dic.NIK, Aksi: string(workflow.RiwayatApproved)}
	err := repo.UpdateStatusDenganRiwayat(p.ID, workflow.StatusPendingDIC, workflow.StatusRejectedDIC, &entri)
	if !errors.Is(err, workflow.ErrInvalidTransition) {
		t.Fatalf("mau ErrInvalidTransition, dapat %v", err)
	}

	akhir, _ := uc.Detail(p.ID)
	if akhir.Status != string(workflow.StatusPendingPJO) {
		t.Fatalf("hasil pemenang tertimpa: %s", akhir.Status)
	}
	riwayat, _ := uc.Riwayat(p.ID)
	if len(riwayat) != 1 {
		t.Fatalf("riwayat = %d, mau 1 (yang kalah tidak menulis)", len(riwayat))
	}
}

func TestUntukRoleViewPendingDanAll(t *testing.T) {
	uc, _, db := siapkanCuti(t)

	// Pemohon kedua di site lain
	db.Create(&model.Karyawan{NIK: "200001", Nama: "Joko", Role: workflow.RoleKaryawan, Site: "SITE-B", Departemen: "PRODUKSI", IsActive: true})

	p1 := ajukanCutiLokal(t, uc) // SITE-A / PRODUKSI
	if _, err := uc.Ajukan(AjukanCutiInput{NIK: "200001", JenisCuti: "tahunan", TanggalPengajuan: "2026-08-01", TanggalMulai: "2026-09-01", TanggalSelesai: "2026-09-03"}); err != nil {
		t.Fatalf("ajukan site B: %v", err)
	}

	// View DIC SITE-A/PRODUKSI hanya melihat p1
	list, err := uc.UntukRole(dic, "pending")
	if err != nil {
		t.Fatalf("UntukRole dic: %v", err)
	}
	if len(list) != 1 || list[0].ID != p1.ID {
		t.Fatalf("view dic salah: %d baris", len(list))
	}

	// Setelah DIC approve, pending DIC kosong tapi mode all masih melihatnya
	uc.Putuskan(p1.ID, dic, workflow.AksiApprove, "")
	list, _ = uc.UntukRole(dic, "pending")
	if len(list) != 0 {
		t.Fatalf("pending dic setelah approve = %d", len(list))
	}
	list, _ = uc.UntukRole(dic, "all")
	if len(list) != 1 {
		t.Fatalf("mode all dic = %d, mau 1", len(list))
	}

	// Sekarang giliran PJO site A
	list, _ = uc.UntukRole(pjo, "pending")
	if len(list) != 1 || list[0].ID != p1.ID {
		t.Fatalf("view pjo salah: %d baris", len(list))
	}

	// HR HO global belum kebagian
	list, _ = uc.UntukRole(hrHO, "pending")
	if len(list) != 0 {
		t.Fatalf("hr_ho pending = %d, mau 0", len(list))
	}

	// Role tanpa view
	if _, err := uc.UntukRole(pemohon, "pending"); !errors.Is(err, workflow.ErrForbidden) {
		t.Fatalf("karyawan: mau ErrForbidden, dapat %v", err)
	}
}

func TestPutuskanTidakDitemukan(t *testing.T) {
	uc, _, _ := siapkanCuti(t)
	if _, _, err := uc.Putuskan(9999, dic, workflow.AksiApprove, ""); !errors.Is(err, workflow.ErrNotFound) {
		t.Fatalf("mau ErrNotFound, dapat %v", err)
	}
	if _, err := uc.Riwayat(9999); !errors.Is(err, workflow.ErrNotFound) {
		t.Fatalf("riwayat: mau ErrNotFound, dapat %v", err)
	}
}
