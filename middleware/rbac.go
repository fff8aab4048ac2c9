package middleware

import (
	"github.com/farel129/bapelit-be-sub000/models"
	"github.com/farel129/bapelit-be-sub000/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func RequireRole(allowedRoles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals(ContextClaimsKey).(*utils.JWTClaims)
		if !ok {
			return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
		}
		for _, role := range allowedRoles {
			if claims.Role == role {
				return c.Next()
			}
		}
		return c.Status(403).JSON(fiber.Map{"error": "Forbidden"})
	}
}

func RequireKepala() fiber.Handler { return RequireRole(models.RoleKepala, models.RoleAdmin) }
func RequireAtasan() fiber.Handler { return RequireRole(models.RoleKabid, models.RoleSekretaris) }
func RequireStaf() fiber.Handler   { return RequireRole(models.RoleStaf) }
func RequireAdmin() fiber.Handler  { return RequireRole(models.RoleAdmin) }

// GetUserFromContext rebuilds the acting user from the verified claims. The
// identity travels in the token, so no extra query is needed per request.
func GetUserFromContext(c *fiber.Ctx) (*models.User, error) {
	claims, ok := c.Locals(ContextClaimsKey).(*utils.JWTClaims)
	if !ok {
		return nil, fiber.ErrUnauthorized
	}
	return &models.User{
		Model:   gorm.Model{ID: claims.UserID},
		Role:    claims.Role,
		Email:   claims.Email,
		Name:    claims.Name,
		Jabatan: claims.Jabatan,
		Bidang:  claims.Bidang,
	}, nil
}
