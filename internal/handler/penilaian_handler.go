package handler

import (
	"strconv"

	"sistem-cuti-backend/internal/usecase"
	"sistem-cuti-backend/internal/workflow"

	"github.com/gofiber/fiber/v2"
)

type PenilaianHandler struct {
	uc *usecase.PenilaianUsecase
}

func NewPenilaianHandler(uc *usecase.PenilaianUsecase) *PenilaianHandler {
	return &PenilaianHandler{uc: uc}
}

func (h *PenilaianHandler) Ajukan(c *fiber.Ctx) error {
	var input usecase.AjukanPenilaianInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	p, err := h.uc.Ajukan(input, actorDari(c))
	if err != nil {
		return jawabError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Penilaian berhasil dibuat",
		"data":    p,
	})
}

func (h *PenilaianHandler) Putuskan(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	var req PutusanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	p, riwayat, err := h.uc.Putuskan(uint(id), actorDari(c), workflow.Aksi(req.Aksi), req.Catatan)
	if err != nil {
		return jawabError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Status penilaian berhasil diperbarui",
		"data":    p,
		"riwayat": riwayat,
	})
}

func (h *PenilaianHandler) Pending(c *fiber.Ctx) error {
	list, err := h.uc.Pending(actorDari(c))
	if err != nil {
		return jawabError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil daftar penilaian",
		"data":    list,
	})
}

func (h *PenilaianHandler) Riwayat(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	list, err := h.uc.Riwayat(uint(id))
	if err != nil {
		return jawabError(c, err)
	}
	return c.JSON(fiber.Map{"data": list})
}
