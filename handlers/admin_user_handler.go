package handlers

import (
	"errors"
	"strings"

	"github.com/farel129/bapelit-be-sub000/config"
	"github.com/farel129/bapelit-be-sub000/dto/users"
	"github.com/farel129/bapelit-be-sub000/models"
	"github.com/farel129/bapelit-be-sub000/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// POST /api/v1/admin/users
func AdminCreateUser(c *fiber.Ctx) error {
	var req users.AdminUserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body", err.Error())
	}
	if errs := req.Validate(); len(errs) > 0 {
		return utils.BadRequest(c, "validation failed", errs)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return utils.InternalServerError(c, "failed to hash password")
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Role:         req.Role,
		Jabatan:      strings.TrimSpace(req.Jabatan),
		Bidang:       strings.TrimSpace(req.Bidang),
	}

	if err := config.DB.Create(&user).Error; err != nil {
		if utils.IsDuplicateError(err) {
			return utils.Conflict(c, "email sudah terdaftar")
		}
		return utils.InternalServerError(c, "failed to create user")
	}

	return utils.Created(c, "user berhasil dibuat", users.NewAdminUserResponse(user))
}

// GET /api/v1/admin/users?page=&limit=&role=&bidang=&q=
func AdminListUsers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := config.DB.Model(&models.User{})

	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	if bidang := c.Query("bidang"); bidang != "" {
		query = query.Where("bidang = ?", bidang)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.InternalServerError(c, "failed to count users")
	}

	var list []models.User
	if err := query.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&list).Error; err != nil {
		return utils.InternalServerError(c, "failed to fetch users")
	}

	resp := make([]users.AdminUserResponse, 0, len(list))
	for _, u := range list {
		resp = append(resp, users.NewAdminUserResponse(u))
	}

	return utils.PaginatedResponse(c, fiber.StatusOK, "users retrieved", resp, utils.PaginationMeta{
		Page:  page,
		Limit: limit,
		Total: total,
	})
}

// GET /api/v1/admin/users/:id
func AdminGetUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.BadRequest(c, "invalid user id", nil)
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "user tidak ditemukan")
		}
		return utils.InternalServerError(c, "failed to fetch user")
	}

	return utils.OK(c, "user retrieved", users.NewAdminUserResponse(user))
}

// PUT /api/v1/admin/users/:id
func AdminUpdateUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.BadRequest(c, "invalid user id", nil)
	}

	var req users.AdminUserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body", err.Error())
	}
	if errs := req.Validate(); len(errs) > 0 {
		return utils.BadRequest(c, "validation failed", errs)
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "user tidak ditemukan")
		}
		return utils.InternalServerError(c, "failed to fetch user")
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Jabatan != nil {
		user.Jabatan = strings.TrimSpace(*req.Jabatan)
	}
	if req.Bidang != nil {
		user.Bidang = strings.TrimSpace(*req.Bidang)
	}
	if req.Password != nil && strings.TrimSpace(*req.Password) != "" {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return utils.InternalServerError(c, "failed to hash password")
		}
		user.PasswordHash = hash
	}

	if err := config.DB.Save(&user).Error; err != nil {
		if utils.IsDuplicateError(err) {
			return utils.Conflict(c, "email sudah terdaftar")
		}
		return utils.InternalServerError(c, "failed to update user")
	}

	return utils.OK(c, "user berhasil diperbarui", users.NewAdminUserResponse(user))
}

// DELETE /api/v1/admin/users/:id
func AdminDeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.BadRequest(c, "invalid user id", nil)
	}

	res := config.DB.Delete(&models.User{}, id)
	if res.Error != nil {
		return utils.InternalServerError(c, "failed to delete user")
	}
	if res.RowsAffected == 0 {
		return utils.NotFound(c, "user tidak ditemukan")
	}

	return utils.OK(c, "user berhasil dihapus", nil)
}
