package repository

import (
	"fmt"

	"sistem-cuti-backend/internal/model"
	"sistem-cuti-backend/internal/workflow"

	"gorm.io/gorm"
)

type PenilaianRepository interface {
	Create(p *model.Penilaian) error
	GetByID(id uint) (*model.Penilaian, error)
	UpdateStatusDenganRiwayat(id uint, dari, ke workflow.StatusPenilaian, riwayat *model.RiwayatPenilaian) error
	PendingUntukStatus(status workflow.StatusPenilaian) ([]model.Penilaian, error)
	Riwayat(penilaianID uint) ([]model.RiwayatPenilaian, error)
}

type penilaianRepository struct {
	db *gorm.DB
}

func NewPenilaianRepository(db *gorm.DB) PenilaianRepository {
	return &penilaianRepository{db}
}

func (r *penilaianRepository) Create(p *model.Penilaian) error {
	return r.db.Create(p).Error
}

func (r *penilaianRepository) GetByID(id uint) (*model.Penilaian, error) {
	var p model.Penilaian
	err := r.db.First(&p, id).Error
	return &p, err
}

func (r *penilaianRepository) UpdateStatusDenganRiwayat(id uint, dari, ke workflow.StatusPenilaian, riwayat *model.RiwayatPenilaian) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Penilaian{}).
			Where("id = ? AND status = ?", id, dari).
			Update("status", ke)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: status sudah berubah dari %s", workflow.ErrInvalidTransition, dari)
		}
		return tx.Create(riwayat).Error
	})
}

func (r *penilaianRepository) PendingUntukStatus(status workflow.StatusPenilaian) ([]model.Penilaian, error) {
	var list []model.Penilaian
	err := r.db.Where("status = ?", status).Order("created_at asc").Find(&list).Error
	return list, err
}

func (r *penilaianRepository) Riwayat(penilaianID uint) ([]model.RiwayatPenilaian, error) {
	var list []model.RiwayatPenilaian
	err := r.db.Where("penilaian_id = ?", penilaianID).
		Order("timestamp asc, id asc").
		Find(&list).Error
	return list, err
}
