package handler

import (
	"time"

	"sistem-cuti-backend/internal/middleware"
	"sistem-cuti-backend/internal/model"
	"sistem-cuti-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type KaryawanHandler struct {
	repo repository.KaryawanRepository
}

func NewKaryawanHandler(repo repository.KaryawanRepository) *KaryawanHandler {
	return &KaryawanHandler{repo: repo}
}

type LoginRequest struct {
	NIK      string `json:"nik"`
	Password string `json:"password"`
}

func (h *KaryawanHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	// 1. Cari karyawan by NIK
	k, err := h.repo.FindByNIK(req.NIK)
	if err != nil || !k.IsActive {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "NIK atau Password salah"})
	}

	// 2. Cek password
	if err := bcrypt.CompareHashAndPassword([]byte(k.Password), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "NIK atau Password salah"})
	}

	// 3. Generate token JWT dengan claims yang dipakai workflow
	token, err := buatToken(k)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat token"})
	}

	return c.JSON(fiber.Map{
		"message": "Login berhasil",
		"token":   token,
		"data": fiber.Map{
			"nik":        k.NIK,
			"nama":       k.Nama,
			"role":       k.Role,
			"site":       k.Site,
			"departemen": k.Departemen,
			"jabatan":    k.Jabatan,
		},
	})
}

func (h *KaryawanHandler) Profile(c *fiber.Ctx) error {
	nik, _ := c.Locals("nik").(string)
	k, err := h.repo.FindByNIK(nik)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Karyawan tidak ditemukan"})
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil profil",
		"data":    k,
	})
}

func buatToken(k *model.Karyawan) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    float64(k.ID),
		"nik":        k.NIK,
		"nama":       k.Nama,
		"role":       k.Role,
		"site":       k.Site,
		"departemen": k.Departemen,
		"exp":        time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(middleware.SecretJWT())
}
