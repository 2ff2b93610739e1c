package routes

import (
	"sistem-cuti-backend/internal/handler"
	"sistem-cuti-backend/internal/mailer"
	"sistem-cuti-backend/internal/middleware"
	"sistem-cuti-backend/internal/repository"
	"sistem-cuti-backend/internal/usecase"
	"sistem-cuti-backend/internal/workflow"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupCutiRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewCutiRepository(db)
	karyawanRepo := repository.NewKaryawanRepository(db)
	uc := usecase.NewCutiUsecase(repo, karyawanRepo, mailer.NewFromEnv())
	hdl := handler.NewCutiHandler(uc)

	api := app.Group("/api/cuti", middleware.Auth)

	// Endpoint untuk karyawan
	api.Post("/", hdl.Ajukan)
	api.Get("/saya", hdl.MilikSaya)
	api.Get("/:id", hdl.Detail)
	api.Get("/:id/riwayat", hdl.Riwayat)
	api.Get("/:id/timeline", hdl.Timeline)

	// Endpoint untuk approver (gate per tahap ada di engine workflow)
	api.Get("/approval/daftar", hdl.Approval)
	api.Post("/:id/putusan", middleware.Role(workflow.RoleDIC, workflow.RolePJOSite, workflow.RoleHRHO), hdl.Putuskan)

	// Endpoint untuk HR Ticketing
	api.Post("/:id/tiket", middleware.Role(workflow.RoleHRTicketing), hdl.TerbitkanTiket)
}
