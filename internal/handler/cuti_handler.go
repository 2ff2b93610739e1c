package handler

import (
	"strconv"

	"sistem-cuti-backend/internal/usecase"
	"sistem-cuti-backend/internal/workflow"

	"github.com/gofiber/fiber/v2"
)

type CutiHandler struct {
	uc *usecase.CutiUsecase
}

func NewCutiHandler(uc *usecase.CutiUsecase) *CutiHandler {
	return &CutiHandler{uc: uc}
}

// Ajukan: karyawan (atau admin yang mewakilkan) membuat pengajuan baru.
func (h *CutiHandler) Ajukan(c *fiber.Ctx) error {
	var input usecase.AjukanCutiInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	actor := actorDari(c)
	if input.NIK == "" {
		input.NIK = actor.NIK
	}
	if input.NIK != actor.NIK {
		// Pengajuan diwakilkan: catat siapa yang menginput.
		input.DiajukanOleh = actor.NIK
	}

	p, err := h.uc.Ajukan(input)
	if err != nil {
		return jawabError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Pengajuan cuti berhasil dikirim",
		"data":    pengajuanJSON(*p),
	})
}

type PutusanRequest struct {
	Aksi    string `json:"aksi"` // approve / reject
	Catatan string `json:"catatan"`
}

// Putuskan: satu langkah approval oleh DIC / PJO Site / HR HO sesuai tahap.
func (h *CutiHandler) Putuskan(c *fiber.Ctx) error {
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
		"message": "Status pengajuan berhasil diperbarui",
		"data":    pengajuanJSON(*p),
		"riwayat": riwayat,
	})
}

// TerbitkanTiket: HR Ticketing menerbitkan tiket berangkat / balik.
func (h *CutiHandler) TerbitkanTiket(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	var input usecase.TerbitkanTiketInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	p, riwayat, err := h.uc.TerbitkanTiket(uint(id), actorDari(c), input)
	if err != nil {
		return jawabError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Tiket berhasil diterbitkan",
		"data":    pengajuanJSON(*p),
		"riwayat": riwayat,
	})
}

// Approval: daftar pengajuan untuk role approver yang login.
// ?mode=pending (default) atau ?mode=all untuk riwayat tahap.
func (h *CutiHandler) Approval(c *fiber.Ctx) error {
	list, err := h.uc.UntukRole(actorDari(c), c.Query("mode", "pending"))
	if err != nil {
		return jawabError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil daftar pengajuan",
		"data":    daftarPengajuanJSON(list),
	})
}

// MilikSaya: riwayat pengajuan karyawan yang login.
func (h *CutiHandler) MilikSaya(c *fiber.Ctx) error {
	list, err := h.uc.MilikKaryawan(actorDari(c).NIK)
	if err != nil {
		return jawabError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil riwayat pengajuan",
		"data":    daftarPengajuanJSON(list),
	})
}

func (h *CutiHandler) Detail(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	p, err := h.uc.Detail(uint(id))
	if err != nil {
		return jawabError(c, err)
	}
	return c.JSON(fiber.Map{"data": pengajuanJSON(*p)})
}

// Riwayat: ledger approval lengkap, urut naik.
func (h *CutiHandler) Riwayat(c *fiber.Ctx) error {
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

// Timeline: riwayat yang direduksi satu entri per jenis aksi untuk tampilan.
func (h *CutiHandler) Timeline(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	list, err := h.uc.Timeline(uint(id))
	if err != nil {
		return jawabError(c, err)
	}
	return c.JSON(fiber.Map{"data": list})
}
