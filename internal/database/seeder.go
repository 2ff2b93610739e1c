package database

import (
	"log"

	"sistem-cuti-backend/internal/model"
	"sistem-cuti-backend/internal/workflow"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAll mengisi akun awal: satu karyawan per role workflow supaya chain
// approval bisa langsung dicoba. Password default semua "rahasia123".
func SeedAll(db *gorm.DB) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.DefaultCost)

	akun := []model.Karyawan{
		{NIK: "100001", Nama: "Budi Santoso", Role: workflow.RoleKaryawan, Site: "SITE-A", Departemen: "PRODUKSI", Jabatan: "Operator"},
		{NIK: "100002", Nama: "Siti Rahma", Role: workflow.RoleDIC, Site: "SITE-A", Departemen: "PRODUKSI", Jabatan: "DIC Produksi"},
		{NIK: "100003", Nama: "Agus Wijaya", Role: workflow.RolePJOSite, Site: "SITE-A", Departemen: "MANAGEMENT", Jabatan: "PJO Site A"},
		{NIK: "100004", Nama: "Dewi Lestari", Role: workflow.RoleHRHO, Site: "HO", Departemen: "HR", Jabatan: "HR Head Office"},
		{NIK: "100005", Nama: "Rina Kurnia", Role: workflow.RoleHRTicketing, Site: "HO", Departemen: "HR", Jabatan: "HR Ticketing"},
		{NIK: "100006", Nama: "Tono Prasetyo", Role: workflow.RoleHRSite, Site: "SITE-A", Departemen: "HR", Jabatan: "HR Site A"},
	}

	for _, k := range akun {
		k.Password = string(hashed)
		k.Email = k.NIK + "@perusahaan.co.id"
		k.IsActive = true
		if err := db.FirstOrCreate(&k, model.Karyawan{NIK: k.NIK}).Error; err != nil {
			log.Println("Gagal seed karyawan", k.NIK, ":", err)
		}
	}

	log.Println("Seeding selesai: akun default siap dipakai")
}
