package usecase

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"sistem-cuti-backend/internal/mailer"
	"sistem-cuti-backend/internal/model"
	"sistem-cuti-backend/internal/repository"
	"sistem-cuti-backend/internal/workflow"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CutiUsecase mengorkestrasi engine workflow dengan store: load pengajuan,
// minta keputusan ke engine (murni), lalu commit status + riwayat dalam
// satu transaksi lewat repository.
type CutiUsecase struct {
	repo         repository.CutiRepository
	karyawanRepo repository.KaryawanRepository
	mail         *mailer.Mailer
}

func NewCutiUsecase(repo repository.CutiRepository, karyawanRepo repository.KaryawanRepository, mail *mailer.Mailer) *CutiUsecase {
	return &CutiUsecase{repo: repo, karyawanRepo: karyawanRepo, mail: mail}
}

type AjukanCutiInput struct {
	NIK              string `json:"nik"`
	JenisCuti        string `json:"jenis_cuti"`
	TanggalPengajuan string `json:"tanggal_pengajuan"`
	TanggalMulai     string `json:"tanggal_mulai"`
	TanggalSelesai   string `json:"tanggal_selesai"`
	JumlahHari       int    `json:"jumlah_hari"`
	BerangkatDari    string `json:"berangkat_dari"`
	Tujuan           string `json:"tujuan"`
	SisaCutiTahunan  int    `json:"sisa_cuti_tahunan"`
	Alasan           string `json:"alasan"`
	Keterangan       string `json:"keterangan"`
	DiajukanOleh     string `json:"diajukan_oleh"` // kosong = diajukan sendiri
}

// Ajukan membuat pengajuan baru di status pending_dic. Data org pemohon
// di-snapshot dari direktori karyawan. Submit sendiri tidak menulis
// riwayat; ledger mulai dari aksi approval pertama.
func (u *CutiUsecase) Ajukan(input AjukanCutiInput) (*model.PengajuanCuti, error) {
	if err := workflow.ValidasiPengajuan(input.NIK, input.JenisCuti, input.TanggalPengajuan, input.TanggalMulai, input.TanggalSelesai); err != nil {
		return nil, err
	}

	k, err := u.karyawanRepo.FindByNIK(input.NIK)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: karyawan %s tidak terdaftar", workflow.ErrValidation, input.NIK)
		}
		return nil, petakanErrStore(err)
	}

	diajukanOleh := input.DiajukanOleh
	if diajukanOleh == "" {
		diajukanOleh = input.NIK
	}

	p := model.PengajuanCuti{
		NIK:              k.NIK,
		Nama:             k.Nama,
		Site:             k.Site,
		Departemen:       k.Departemen,
		Jabatan:          k.Jabatan,
		JenisCuti:        input.JenisCuti,
		TanggalPengajuan: input.TanggalPengajuan,
		TanggalMulai:     input.TanggalMulai,
		TanggalSelesai:   input.TanggalSelesai,
		JumlahHari:       input.JumlahHari,
		BerangkatDari:    input.BerangkatDari,
		Tujuan:           input.Tujuan,
		SisaCutiTahunan:  input.SisaCutiTahunan,
		Alasan:           input.Alasan,
		Keterangan:       input.Keterangan,
		Status:           string(workflow.StatusPendingDIC),
		DiajukanOleh:     diajukanOleh,
		TiketBerangkat:   string(workflow.TiketBelumTerbit),
		TiketBalik:       string(workflow.TiketBelumTerbit),
	}
	if err := u.repo.Create(&p); err != nil {
		return nil, petakanErrStore(err)
	}
	return &p, nil
}

// Putuskan menjalankan satu langkah approval. Engine memvalidasi role +
// cakupan actor terhadap tabel transisi; commit-nya compare-and-swap di
// store, jadi dua approver yang balapan di pengajuan yang sama hanya satu
// yang menang.
func (u *CutiUsecase) Putuskan(id uint, actor workflow.Actor, aksi workflow.Aksi, catatan string) (*model.PengajuanCuti, *model.RiwayatApproval, error) {
	p, err := u.repo.GetByID(id)
	if err != nil {
		return nil, nil, petakanErrStore(err)
	}

	saatIni := workflow.Status(p.Status)
	keputusan, err := workflow.Putuskan(saatIni, p.Site, p.Departemen, p.ButuhTiket(), actor, aksi)
	if err != nil {
		return nil, nil, err
	}

	riwayat := model.RiwayatApproval{
		PengajuanCutiID: p.ID,
		NIKApprover:     actor.NIK,
		NamaApprover:    actor.Nama,
		RoleApprover:    actor.Role,
		Aksi:            string(keputusan.Riwayat),
		Catatan:         catatan,
		Timestamp:       time.Now(),
	}
	if err := u.repo.UpdateStatusDenganRiwayat(p.ID, saatIni, keputusan.Berikutnya, &riwayat); err != nil {
		return nil, nil, petakanErrStore(err)
	}
	p.Status = string(keputusan.Berikutnya)

	if keputusan.Berikutnya.Terminal() {
		go u.kirimNotifikasi(p)
	}
	return p, &riwayat, nil
}

type TerbitkanTiketInput struct {
	Leg            string `json:"leg"` // departure / return
	KodeBooking    string `json:"kode_booking"`
	Maskapai       string `json:"maskapai"`
	JamPenerbangan string `json:"jam_penerbangan"`
}

// TerbitkanTiket menerbitkan satu leg tiket untuk pengajuan berstatus
// processing. Penerbitan pertama menetapkan kode booking (dipakai ulang
// oleh leg berikutnya kecuali dioverride); penerbitan ulang leg yang sama
// menimpa metadata dan tetap menambah entri riwayat baru.
func (u *CutiUsecase) TerbitkanTiket(id uint, actor workflow.Actor, input TerbitkanTiketInput) (*model.PengajuanCuti, []model.RiwayatApproval, error) {
	p, err := u.repo.GetByID(id)
	if err != nil {
		return nil, nil, petakanErrStore(err)
	}

	leg := workflow.Leg(input.Leg)
	if err := workflow.ValidasiTerbitTiket(workflow.Status(p.Status), actor, leg); err != nil {
		return nil, nil, err
	}

	kode := input.KodeBooking
	if kode == "" {
		kode = p.KodeBooking
	}
	if kode == "" {
		kode = kodeBookingBaru()
	}

	kolomLeg := "tiket_berangkat"
	if leg == workflow.LegBalik {
		kolomLeg = "tiket_balik"
	}

	perubahan := map[string]interface{}{
		kolomLeg:          string(workflow.TiketTerbit),
		"kode_booking":    kode,
		"maskapai":        input.Maskapai,
		"jam_penerbangan": input.JamPenerbangan,
	}

	entriLeg := model.RiwayatApproval{
		PengajuanCutiID: p.ID,
		NIKApprover:     actor.NIK,
		NamaApprover:    actor.Nama,
		RoleApprover:    actor.Role,
		Aksi:            string(workflow.RiwayatUntukLeg(leg)),
		Catatan:         kode,
		Timestamp:       time.Now(),
	}

	// Entri ticket_issued_full diputuskan repository di dalam transaksi,
	// dari baris yang sudah terupdate; pembacaan p di atas bisa saja basi
	// kalau ada penerbitan leg lain yang menyela.
	riwayat, err := u.repo.UpdateTiketDenganRiwayat(p.ID, perubahan, entriLeg)
	if err != nil {
		return nil, nil, petakanErrStore(err)
	}

	if leg == workflow.LegBalik {
		p.TiketBalik = string(workflow.TiketTerbit)
	} else {
		p.TiketBerangkat = string(workflow.TiketTerbit)
	}
	p.KodeBooking = kode
	p.Maskapai = input.Maskapai
	p.JamPenerbangan = input.JamPenerbangan
	return p, riwayat, nil
}

// UntukRole menjawab "apa yang pending untuk role ini" (mode pending) atau
// seluruh pengajuan yang sudah lewat tahap role tersebut (mode all),
// dengan cakupan site/departemen mengikuti tabel transisi.
func (u *CutiUsecase) UntukRole(actor workflow.Actor, mode string) ([]model.PengajuanCuti, error) {
	v, ok := workflow.ViewUntukRole(actor.Role)
	if !ok {
		return nil, fmt.Errorf("%w: role %s tidak punya view approval", workflow.ErrForbidden, actor.Role)
	}
	var (
		list []model.PengajuanCuti
		err  error
	)
	if mode == "all" {
		list, err = u.repo.SemuaUntukView(v, actor.Site, actor.Departemen)
	} else {
		list, err = u.repo.PendingUntukView(v, actor.Site, actor.Departemen)
	}
	if err != nil {
		return nil, petakanErrStore(err)
	}
	return list, nil
}

// Detail mengambil satu pengajuan berdasarkan id.
func (u *CutiUsecase) Detail(id uint) (*model.PengajuanCuti, error) {
	p, err := u.repo.GetByID(id)
	if err != nil {
		return nil, petakanErrStore(err)
	}
	return p, nil
}

// MilikKaryawan mengambil seluruh pengajuan seorang karyawan.
func (u *CutiUsecase) MilikKaryawan(nik string) ([]model.PengajuanCuti, error) {
	list, err := u.repo.GetByNIK(nik)
	if err != nil {
		return nil, petakanErrStore(err)
	}
	return list, nil
}

// Riwayat mengembalikan ledger lengkap satu pengajuan, urut naik.
func (u *CutiUsecase) Riwayat(id uint) ([]model.RiwayatApproval, error) {
	if _, err := u.repo.GetByID(id); err != nil {
		return nil, petakanErrStore(err)
	}
	list, err := u.repo.Riwayat(id)
	if err != nil {
		return nil, petakanErrStore(err)
	}
	return list, nil
}

// Timeline adalah riwayat yang sudah direduksi satu entri per jenis aksi
// (entri terbaru menang) untuk tampilan. Ledger tersimpan tidak disentuh.
func (u *CutiUsecase) Timeline(id uint) ([]model.RiwayatApproval, error) {
	list, err := u.Riwayat(id)
	if err != nil {
		return nil, err
	}
	return workflow.TerakhirPerKunci(list, func(r model.RiwayatApproval) string { return r.Aksi }), nil
}

func (u *CutiUsecase) kirimNotifikasi(p *model.PengajuanCuti) {
	if !u.mail.Aktif() {
		return
	}
	k, err := u.karyawanRepo.FindByNIK(p.NIK)
	if err != nil {
		return
	}
	label := workflow.StatusEfektif(workflow.Status(p.Status), workflow.StatusTiket(p.TiketBerangkat), workflow.StatusTiket(p.TiketBalik))
	if err := u.mail.KirimStatusCuti(k.Email, k.Nama, label); err != nil {
		log.Println("Gagal kirim email notifikasi:", err)
	}
}

func kodeBookingBaru() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

// petakanErrStore menerjemahkan error gorm ke taksonomi workflow. Error
// yang sudah bertipe workflow diteruskan apa adanya.
func petakanErrStore(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", workflow.ErrNotFound, err)
	case errors.Is(err, workflow.ErrInvalidTransition),
		errors.Is(err, workflow.ErrForbidden),
		errors.Is(err, workflow.ErrValidation),
		errors.Is(err, workflow.ErrNotFound):
		return err
	default:
		return fmt.Errorf("%w: %v", workflow.ErrStoreUnavailable, err)
	}
}
