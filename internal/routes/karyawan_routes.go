package routes

import (
	"sistem-cuti-backend/internal/handler"
	"sistem-cuti-backend/internal/middleware"
	"sistem-cuti-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupKaryawanRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewKaryawanRepository(db)
	hdl := handler.NewKaryawanHandler(repo)

	api := app.Group("/api/karyawan")

	api.Post("/login", hdl.Login)
	api.Get("/profile", middleware.Auth, hdl.Profile)
}
