package repository

import (
	"fmt"

	"sistem-cuti-backend/internal/model"
	"sistem-cuti-backend/internal/workflow"

	"gorm.io/gorm"
)

type CutiRepository interface {
	Create(p *model.PengajuanCuti) error
	GetByID(id uint) (*model.PengajuanCuti, error)
	GetByNIK(nik string) ([]model.PengajuanCuti, error)

	// UpdateStatusDenganRiwayat mengganti status dari `dari` ke `ke` dan
	// menulis satu entri riwayat dalam satu transaksi. Compare-and-swap:
	// kalau status sudah bukan `dari` (kalah balapan / double submit),
	// kembalikan workflow.ErrInvalidTransition tanpa menulis apa pun.
	UpdateStatusDenganRiwayat(id uint, dari, ke workflow.Status, riwayat *model.RiwayatApproval) error

	// UpdateTiketDenganRiwayat menulis field tiket plus entri riwayat leg
	// dalam satu transaksi, digate status processing. Entri sintetis
	// ticket_issued_full diputuskan DI DALAM transaksi dari baris yang
	// sudah terupdate; mengembalikan semua entri yang ditulis.
	UpdateTiketDenganRiwayat(id uint, perubahan map[string]interface{}, entriLeg model.RiwayatApproval) ([]model.RiwayatApproval, error)

	PendingUntukView(v workflow.ViewRole, site, departemen string) ([]model.PengajuanCuti, error)
	SemuaUntukView(v workflow.ViewRole, site, departemen string) ([]model.PengajuanCuti, error)
	Riwayat(pengajuanID uint) ([]model.RiwayatApproval, error)
}

type cutiRepository struct {
	db *gorm.DB
}

func NewCutiRepository(db *gorm.DB) CutiRepository {
	return &cutiRepository{db}
}

func (r *cutiRepository) Create(p *model.PengajuanCuti) error {
	return r.db.Create(p).Error
}

func (r *cutiRepository) GetByID(id uint) (*model.PengajuanCuti, error) {
	var p model.PengajuanCuti
	err := r.db.First(&p, id).Error
	return &p, err
}

func (r *cutiRepository) GetByNIK(nik string) ([]model.PengajuanCuti, error) {
	var list []model.PengajuanCuti
	err := r.db.Where("nik = ?", nik).Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *cutiRepository) UpdateStatusDenganRiwayat(id uint, dari, ke workflow.Status, riwayat *model.RiwayatApproval) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.PengajuanCuti{}).
			Where("id = ? AND status = ?", id, dari).
			Update("status", ke)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Precondition basi: pengajuan sudah diputus pihak lain.
			return fmt.Errorf("%w: status sudah berubah dari %s", workflow.ErrInvalidTransition, dari)
		}
		return tx.Create(riwayat).Error
	})
}

func (r *cutiRepository) UpdateTiketDenganRiwayat(id uint, perubahan map[string]interface{}, entriLeg model.RiwayatApproval) ([]model.RiwayatApproval, error) {
	var hasil []model.RiwayatApproval
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.PengajuanCuti{}).
			Where("id = ? AND status = ?", id, workflow.StatusProcessing).
			Updates(perubahan)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: pengajuan tidak sedang di proses ticketing", workflow.ErrInvalidTransition)
		}
		if err := tx.Create(&entriLeg).Error; err != nil {
			return err
		}
		hasil = append(hasil, entriLeg)

		// Keputusan "tiket lengkap" diambil dari baris yang sudah terupdate
		// di dalam transaksi ini, bukan dari pembacaan caller sebelum
		// transaksi: dua penerbitan leg yang saling menyela tetap
		// menghasilkan tepat satu entri ticket_issued_full.
		var p model.PengajuanCuti
		if err := tx.First(&p, id).Error; err != nil {
			return err
		}
		if p.TiketBerangkat != string(workflow.TiketTerbit) || p.TiketBalik != string(workflow.TiketTerbit) {
			return nil
		}
		var jumlahFull int64
		if err := tx.Model(&model.RiwayatApproval{}).
			Where("pengajuan_cuti_id = ? AND aksi = ?", id, workflow.RiwayatTiketLengkap).
			Count(&jumlahFull).Error; err != nil {
			return err
		}
		if jumlahFull > 0 {
			return nil
		}
		full := entriLeg
		full.Model = gorm.Model{}
		full.Aksi = string(workflow.RiwayatTiketLengkap)
		if err := tx.Create(&full).Error; err != nil {
			return err
		}
		hasil = append(hasil, full)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return hasil, nil
}

func (r *cutiRepository) PendingUntukView(v workflow.ViewRole, site, departemen string) ([]model.PengajuanCuti, error) {
	q := r.db.Where("status = ?", v.StatusPending)
	q = scopeView(q, v, site, departemen)
	var list []model.PengajuanCuti
	err := q.Order("created_at asc").Find(&list).Error
	return list, err
}

func (r *cutiRepository) SemuaUntukView(v workflow.ViewRole, site, departemen string) ([]model.PengajuanCuti, error) {
	q := r.db.Where("status IN ?", v.SemuaStatus)
	q = scopeView(q, v, site, departemen)
	var list []model.PengajuanCuti
	err := q.Order("created_at desc").Find(&list).Error
	return list, err
}

func scopeView(q *gorm.DB, v workflow.ViewRole, site, departemen string) *gorm.DB {
	if v.CocokSite {
		q = q.Where("site = ?", site)
	}
	if v.CocokDept {
		q = q.Where("departemen = ?", departemen)
	}
	return q
}

func (r *cutiRepository) Riwayat(pengajuanID uint) ([]model.RiwayatApproval, error) {
	var list []model.RiwayatApproval
	// id sebagai pengurut kedua: entri leg dan entri full dari satu
	// panggilan berbagi timestamp yang sama.
	err := r.db.Where("pengajuan_cuti_id = ?", pengajuanID).
		Order("timestamp asc, id asc").
		Find(&list).Error
	return list, err
}
