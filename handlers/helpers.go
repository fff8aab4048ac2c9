package handlers

import (
	"github.com/farel129/bapelit-be-sub000/middleware"
	"github.com/farel129/bapelit-be-sub000/utils"

	"github.com/gofiber/fiber/v2"
)

func getClaims(c *fiber.Ctx) (*utils.JWTClaims, error) {
	claims, ok := middleware.GetJWTClaims(c)
	if !ok {
		return nil, fiber.ErrUnauthorized
	}
	return claims, nil
}
