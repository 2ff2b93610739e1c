package handler

import (
	"errors"
	"log"

	"sistem-cuti-backend/internal/model"
	"sistem-cuti-backend/internal/workflow"

	"github.com/gofiber/fiber/v2"
)

// actorDari membentuk Actor workflow dari claims yang diset middleware Auth.
func actorDari(c *fiber.Ctx) workflow.Actor {
	ambil := func(key string) string {
		v, _ := c.Locals(key).(string)
		return v
	}
	return workflow.Actor{
		NIK:        ambil("nik"),
		Nama:       ambil("nama"),
		Role:       ambil("role"),
		Site:       ambil("site"),
		Departemen: ambil("departemen"),
	}
}

// jawabError memetakan taksonomi error workflow ke HTTP status. Ditolak /
// forbidden adalah outcome normal, bukan server error; hanya kegagalan
// store dan error tak dikenal yang jadi 5xx.
func jawabError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, workflow.ErrValidation):
		status = fiber.StatusBadRequest
	case errors.Is(err, workflow.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, workflow.ErrForbidden):
		status = fiber.StatusForbidden
	case errors.Is(err, workflow.ErrInvalidTransition):
		status = fiber.StatusConflict
	case errors.Is(err, workflow.ErrStoreUnavailable):
		status = fiber.StatusServiceUnavailable
	}
	if status >= 500 {
		log.Println("Error server:", err)
		return c.Status(status).JSON(fiber.Map{"error": "Terjadi kesalahan di server"})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// pengajuanJSON menyertakan status efektif (gabungan status + tiket) di
// samping data mentah.
func pengajuanJSON(p model.PengajuanCuti) fiber.Map {
	return fiber.Map{
		"pengajuan": p,
		"status_efektif": workflow.StatusEfektif(
			workflow.Status(p.Status),
			workflow.StatusTiket(p.TiketBerangkat),
			workflow.StatusTiket(p.TiketBalik),
		),
	}
}

func daftarPengajuanJSON(list []model.PengajuanCuti) []fiber.Map {
	hasil := make([]fiber.Map, 0, len(list))
	for _, p := range list {
		hasil = append(hasil, pengajuanJSON(p))
	}
	return hasil
}
