package repository

import (
	"sistem-cuti-backend/internal/model"

	"gorm.io/gorm"
)

type KaryawanRepository interface {
	Create(k *model.Karyawan) error
	FindByNIK(nik string) (*model.Karyawan, error)
	FindByID(id uint) (*model.Karyawan, error)
}

type karyawanRepository struct {
	db *gorm.DB
}

func NewKaryawanRepository(db *gorm.DB) KaryawanRepository {
	return &karyawanRepository{db}
}

func (r *karyawanRepository) Create(k *model.Karyawan) error {
	return r.db.Create(k).Error
}

func (r *karyawanRepository) FindByNIK(nik string) (*model.Karyawan, error) {
	var k model.Karyawan
	err := r.db.Where("nik = ?", nik).First(&k).Error
	return &k, err
}

func (r *karyawanRepository) FindByID(id uint) (*model.Karyawan, error) {
	var k model.Karyawan
	err := r.db.First(&k, id).Error
	return &k, err
}
