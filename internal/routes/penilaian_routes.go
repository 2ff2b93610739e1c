package routes

import (
	"sistem-cuti-backend/internal/handler"
	"sistem-cuti-backend/internal/middleware"
	"sistem-cuti-backend/internal/repository"
	"sistem-cuti-backend/internal/usecase"
	"sistem-cuti-backend/internal/workflow"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPenilaianRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewPenilaianRepository(db)
	karyawanRepo := repository.NewKaryawanRepository(db)
	uc := usecase.NewPenilaianUsecase(repo, karyawanRepo)
	hdl := handler.NewPenilaianHandler(uc)

	api := app.Group("/api/penilaian", middleware.Auth)

	api.Post("/", middleware.Role(workflow.RolePJOSite), hdl.Ajukan)
	api.Get("/pending", hdl.Pending)
	api.Get("/:id/riwayat", hdl.Riwayat)
	api.Post("/:id/putusan", middleware.Role(workflow.RolePJOSite, workflow.RoleHRSite), hdl.Putuskan)
}
