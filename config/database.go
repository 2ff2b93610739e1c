package config

import (
	"fmt"

	"sistem-cuti-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		GetEnv("DB_USER", "root"),
		GetEnv("DB_PASS", ""),
		GetEnv("DB_HOST", "127.0.0.1"),
		GetEnv("DB_PORT", "3306"),
		GetEnv("DB_NAME", "sistem_cuti"),
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Gagal koneksi ke database!")
	}

	fmt.Println("Koneksi Database Berhasil!")

	// Auto Migration berdasarkan struct di folder model
	db.AutoMigrate(&model.Karyawan{})
	db.AutoMigrate(&model.PengajuanCuti{})
	db.AutoMigrate(&model.RiwayatApproval{})
	db.AutoMigrate(&model.Penilaian{})
	db.AutoMigrate(&model.RiwayatPenilaian{})

	DB = db
}
