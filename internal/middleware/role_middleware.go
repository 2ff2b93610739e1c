package middleware

import "github.com/gofiber/fiber/v2"

// Role membatasi route untuk role tertentu. Gate halus per tahap tetap di
// engine workflow; ini hanya pagar kasar di level route.
func Role(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userRole, ok := c.Locals("role").(string)
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak: Role tidak valid"})
		}

		for _, role := range allowedRoles {
			if role == userRole {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak: Role Anda tidak berhak"})
	}
}
