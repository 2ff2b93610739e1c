package middleware

import (
	"strings"

	"sistem-cuti-backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// SecretJWT dibaca dari env. Default hanya untuk dev lokal.
func SecretJWT() []byte {
	return []byte(config.GetEnv("JWT_SECRET", "rahasia-dev-jangan-dipakai-produksi"))
}

func Auth(c *fiber.Ctx) error {
	// 1. Ambil token dari Header Authorization ("Bearer <token>")
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token tidak ditemukan"})
	}

	tokenString := strings.Replace(authHeader, "Bearer ", "", 1)

	// 2. Parse dan validasi token
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return SecretJWT(), nil
	})
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token tidak valid atau kadaluwarsa"})
	}

	// 3. Simpan claims ke Context; handler membentuk Actor workflow dari sini
	claims := token.Claims.(jwt.MapClaims)
	c.Locals("user_id", claims["user_id"])
	c.Locals("nik", claims["nik"])
	c.Locals("nama", claims["nama"])
	c.Locals("role", claims["role"])
	c.Locals("site", claims["site"])
	c.Locals("departemen", claims["departemen"])

	return c.Next()
}
