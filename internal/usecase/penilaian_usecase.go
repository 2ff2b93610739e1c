package usecase

import (
	"errors"
	"fmt"
	"time"

	"sistem-cuti-backend/internal/model"
	"sistem-cuti-backend/internal/repository"
	"sistem-cuti-backend/internal/workflow"

	"gorm.io/gorm"
)

// PenilaianUsecase: workflow penilaian kinerja, dua tahap (PJO Site lalu
// HR Site). Pola sama dengan cuti, tanpa ticketing dan tanpa cakupan site.
type PenilaianUsecase struct {
	repo         repository.PenilaianRepository
	karyawanRepo repository.KaryawanRepository
}

func NewPenilaianUsecase(repo repository.PenilaianRepository, karyawanRepo repository.KaryawanRepository) *PenilaianUsecase {
	return &PenilaianUsecase{repo: repo, karyawanRepo: karyawanRepo}
}

type AjukanPenilaianInput struct {
	NIK     string `json:"nik"`
	Periode string `json:"periode"`
	Skor    int    `json:"skor"`
	Catatan string `json:"catatan"`
}

func (u *PenilaianUsecase) Ajukan(input AjukanPenilaianInput, penilai workflow.Actor) (*model.Penilaian, error) {
	if input.NIK == "" {
		return nil, fmt.Errorf("%w: nik wajib diisi", workflow.ErrValidation)
	}
	if input.Periode == "" {
		return nil, fmt.Errorf("%w: periode wajib diisi", workflow.ErrValidation)
	}

	k, err := u.karyawanRepo.FindByNIK(input.NIK)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: karyawan %s tidak terdaftar", workflow.ErrValidation, input.NIK)
		}
		return nil, petakanErrStore(err)
	}

	p := model.Penilaian{
		NIK:         k.NIK,
		Nama:        k.Nama,
		Site:        k.Site,
		Departemen:  k.Departemen,
		Periode:     input.Periode,
		Skor:        input.Skor,
		Catatan:     input.Catatan,
		Status:      string(workflow.PenilaianPendingPJO),
		DinilaiOleh: penilai.NIK,
	}
	if err := u.repo.Create(&p); err != nil {
		return nil, petakanErrStore(err)
	}
	return &p, nil
}

func (u *PenilaianUsecase) Putuskan(id uint, actor workflow.Actor, aksi workflow.Aksi, catatan string) (*model.Penilaian, *model.RiwayatPenilaian, error) {
	p, err := u.repo.GetByID(id)
	if err != nil {
		return nil, nil, petakanErrStore(err)
	}

	saatIni := workflow.StatusPenilaian(p.Status)
	berikutnya, aksiRiwayat, err := workflow.PutuskanPenilaian(saatIni, actor, aksi)
	if err != nil {
		return nil, nil, err
	}

	riwayat := model.RiwayatPenilaian{
		PenilaianID:  p.ID,
		NIKApprover:  actor.NIK,
		NamaApprover: actor.Nama,
		RoleApprover: actor.Role,
		Aksi:         string(aksiRiwayat),
		Catatan:      catatan,
		Timestamp:    time.Now(),
	}
	if err := u.repo.UpdateStatusDenganRiwayat(p.ID, saatIni, berikutnya, &riwayat); err != nil {
		return nil, nil, petakanErrStore(err)
	}
	p.Status = string(berikutnya)
	return p, &riwayat, nil
}

// Pending mengembalikan penilaian yang menunggu keputusan role actor.
func (u *PenilaianUsecase) Pending(actor workflow.Actor) ([]model.Penilaian, error) {
	status, ok := workflow.StatusPendingPenilaian(actor.Role)
	if !ok {
		return nil, fmt.Errorf("%w: role %s tidak menangani penilaian", workflow.ErrForbidden, actor.Role)
	}
	list, err := u.repo.PendingUntukStatus(status)
	if err != nil {
		return nil, petakanErrStore(err)
	}
	return list, nil
}

func (u *PenilaianUsecase) Riwayat(id uint) ([]model.RiwayatPenilaian, error) {
	if _, err := u.repo.GetByID(id); err != nil {
		return nil, petakanErrStore(err)
	}
	list, err := u.repo.Riwayat(id)
	if err != nil {
		return nil, petakanErrStore(err)
	}
	return list, nil
}
