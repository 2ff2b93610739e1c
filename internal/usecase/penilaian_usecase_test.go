package usecase

import (
	"errors"
	"testing"

	"sistem-cuti-backend/internal/model"
	"sistem-cuti-backend/internal/repository"
	"sistem-cuti-backend/internal/workflow"
)

var hrSite = workflow.Actor{NIK: "100006", Nama: "Tono Prasetyo", Role: workflow.RoleHRSite, Site: "SITE-A", Departemen: "HR"}

func siapkanPenilaian(t *testing.T) *PenilaianUsecase {
	t.Helper()
	db := bukaDBTest(t)
	db.Create(&model.Karyawan{
		NIK: pemohon.NIK, Nama: pemohon.Nama, Role: pemohon.Role,
		Site: pemohon.Site, Departemen: pemohon.Departemen, IsActive: true,
	})
	return NewPenilaianUsecase(repository.NewPenilaianRepository(db), repository.NewKaryawanRepository(db))
}

func TestAlurPenilaianDisetujui(t *testing.T) {
	uc := siapkanPenilaian(t)

	p, err := uc.Ajukan(AjukanPenilaianInput{NIK: pemohon.NIK, Periode: "2026-S1", Skor: 87, Catatan: "Kinerja baik"}, pjo)
	if err != nil {
		t.Fatalf("Ajukan: %v", err)
	}
	if p.Status != string(workflow.PenilaianPendingPJO) || p.DinilaiOleh != pjo.NIK {
		t.Fatalf("penilaian awal salah: %+v", p)
	}

	if _, _, err := uc.Putuskan(p.ID, pjo, workflow.AksiApprove, "lanjut"); err != nil {
		t.Fatalf("approve pjo: %v", err)
	}
	hasil, entri, err := uc.Putuskan(p.ID, hrSite, workflow.AksiApprove, "verifikasi ok")
	if err != nil {
		t.Fatalf("approve hr_site: %v", err)
	}
	if hasil.Status != string(workflow.PenilaianApproved) {
		t.Fatalf("status akhir = %s", hasil.Status)
	}
	if entri.RoleApprover != workflow.RoleHRSite || entri.PenilaianID != p.ID {
		t.Fatalf("entri riwayat salah: %+v", entri)
	}

	riwayat, _ := uc.Riwayat(p.ID)
	if len(riwayat) != 2 {
		t.Fatalf("riwayat = %d, mau 2", len(riwayat))
	}
}

func TestPenilaianDitolakDanTerkunci(t *testing.T) {
	uc := siapkanPenilaian(t)

	p, _ := uc.Ajukan(AjukanPenilaianInput{NIK: pemohon.NIK, Periode: "2026-S1", Skor: 55}, pjo)
	hasil, _, err := uc.Putuskan(p.ID, pjo, workflow.AksiReject, "data kurang")
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if hasil.Status != string(workflow.PenilaianRejected) {
		t.Fatalf("status = %s", hasil.Status)
	}

	if _, _, err := uc.Putuskan(p.ID, hrSite, workflow.AksiApprove, ""); !errors.Is(err, workflow.ErrInvalidTransition) {
		t.Fatalf("setelah rejected: mau ErrInvalidTransition, dapat %v", err)
	}
}

func TestPenilaianRoleSalah(t *testing.T) {
	uc := siapkanPenilaian(t)

	p, _ := uc.Ajukan(AjukanPenilaianInput{NIK: pemohon.NIK, Periode: "2026-S1", Skor: 70}, pjo)
	if _, _, err := uc.Putuskan(p.ID, hrSite, workflow.AksiApprove, ""); !errors.Is(err, workflow.ErrForbidden) {
		t.Fatalf("hr_site di tahap pjo: mau ErrForbidden, dapat %v", err)
	}

	hasil, _ := uc.repo.GetByID(p.ID)
	if hasil.Status != string(workflow.PenilaianPendingPJO) {
		t.Fatalf("status berubah padahal gagal: %s", hasil.Status)
	}
}

func TestPenilaianPendingPerRole(t *testing.T) {
	uc := siapkanPenilaian(t)

	p, _ := uc.Ajukan(AjukanPenilaianInput{NIK: pemohon.NIK, Periode: "2026-S1", Skor: 70}, pjo)

	list, err := uc.Pending(pjo)
	if err != nil || len(list) != 1 {
		t.Fatalf("pending pjo: %d/%v", len(list), err)
	}
	list, _ = uc.Pending(hrSite)
	if len(list) != 0 {
		t.Fatalf("pending hr_site sebelum tahap pjo selesai = %d", len(list))
	}

	uc.Putuskan(p.ID, pjo, workflow.AksiApprove, "")
	list, _ = uc.Pending(hrSite)
	if len(list) != 1 {
		t.Fatalf("pending hr_site = %d, mau 1", len(list))
	}

	if _, err := uc.Pending(dic); !errors.Is(err, workflow.ErrForbidden) {
		t.Fatalf("dic tidak menangani penilaian: %v", err)
	}
}
