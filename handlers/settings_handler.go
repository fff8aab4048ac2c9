package handlers

import (
	"strings"

	"github.com/farel129/bapelit-be-sub000/config"
	"github.com/farel129/bapelit-be-sub000/dto"
	"github.com/farel129/bapelit-be-sub000/dto/users"
	"github.com/farel129/bapelit-be-sub000/models"
	"github.com/farel129/bapelit-be-sub000/utils"

	"github.com/gofiber/fiber/v2"
)

// GET /api/v1/profile
func GetMyProfile(c *fiber.Ctx) error {
	claims, err := getClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "unauthenticated")
	}

	var user models.User
	if err := config.DB.First(&user, claims.UserID).Error; err != nil {
		return utils.NotFound(c, "user tidak ditemukan")
	}

	return utils.OK(c, "profile retrieved", dto.NewUserSummary(user))
}

// PUT /api/v1/profile
func UpdateMyProfile(c *fiber.Ctx) error {
	claims, err := getClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "unauthenticated")
	}

	var req users.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body", err.Error())
	}
	if strings.TrimSpace(req.Name) == "" {
		return utils.BadRequest(c, "name harus diisi", nil)
	}

	var user models.User
	if err := config.DB.First(&user, claims.UserID).Error; err != nil {
		return utils.NotFound(c, "user tidak ditemukan")
	}

	user.Name = strings.TrimSpace(req.Name)
	user.Jabatan = strings.TrimSpace(req.Jabatan)
	user.Bidang = strings.TrimSpace(req.Bidang)

	if err := config.DB.Save(&user).Error; err != nil {
		return utils.InternalServerError(c, "failed to update profile")
	}

	return utils.OK(c, "profile updated", dto.NewUserSummary(user))
}

// PUT /api/v1/profile/password
func ChangePassword(c *fiber.Ctx) error {
	claims, err := getClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "unauthenticated")
	}

	var req users.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body", err.Error())
	}
	if errs := req.Validate(); len(errs) > 0 {
		return utils.BadRequest(c, "validation failed", errs)
	}

	var user models.User
	if err := config.DB.First(&user, claims.UserID).Error; err != nil {
		return utils.NotFound(c, "user tidak ditemukan")
	}

	if !utils.CheckPassword(user.PasswordHash, req.OldPassword) {
		return utils.Unauthorized(c, "password lama salah")
	}

	newHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return utils.InternalServerError(c, "failed to hash password")
	}

	if err := config.DB.Model(&user).Update("password_hash", newHash).Error; err != nil {
		return utils.InternalServerError(c, "failed to change password")
	}

	return utils.OK(c, "password berhasil diubah", nil)
}
