package main

import (
	"fmt"

	"sistem-cuti-backend/config"
	"sistem-cuti-backend/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}
	config.ConnectDB()
	database.SeedAll(config.DB)
}
