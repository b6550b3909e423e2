package candidatoauth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/vinculohr/vinculo/pkg/kernel"
)

// Middleware validates candidato portal tokens
func Middleware(tokenService *CandidatoTokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Missing authorization header")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid authorization format")
		}

		claims, err := tokenService.ValidateCandidatoToken(parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
		}

		c.Locals("candidato_id", claims.CandidatoID)
		c.Locals("candidato_email", claims.Email)

		return c.Next()
	}
}

// GetCandidatoID extracts the candidato ID from context
func GetCandidatoID(c *fiber.Ctx) (kernel.CandidatoID, bool) {
	candidatoID, ok := c.Locals("candidato_id").(kernel.CandidatoID)
	return candidatoID, ok
}

// GetCandidatoEmail extracts the candidato email from context
func GetCandidatoEmail(c *fiber.Ctx) (kernel.Email, bool) {
	email, ok := c.Locals("candidato_email").(kernel.Email)
	return email, ok
}
