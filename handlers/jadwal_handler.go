package handlers

import (
	"errors"
	"time"

	"github.com/farel129/bapelit-be-sub000/config"
	"github.com/farel129/bapelit-be-sub000/dto/jadwal"
	"github.com/farel129/bapelit-be-sub000/models"
	"github.com/farel129/bapelit-be-sub000/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// POST /api/v1/jadwal
func CreateJadwal(c *fiber.Ctx) error {
	claims, err := getClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "unauthenticated")
	}

	var req jadwal.CreateJadwalRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body", err.Error())
	}
	if errs := req.Validate(); len(errs) > 0 {
		return utils.BadRequest(c, "validation failed", errs)
	}

	j := req.ToModel(claims.UserID)
	if err := config.DB.Create(&j).Error; err != nil {
		return utils.InternalServerError(c, "failed to create jadwal")
	}

	return utils.Created(c, "jadwal berhasil dibuat", j)
}

// GET /api/v1/jadwal?dari=&sampai=
//
// Tanpa filter: agenda yang belum lewat, terdekat dulu.
func ListJadwal(c *fiber.Ctx) error {
	query := config.DB.Model(&models.JadwalAcara{})

	dari := c.Query("dari")
	sampai := c.Query("sampai")
	switch {
	case dari != "" || sampai != "":
		if dari != "" {
			if t, err := time.Parse("2006-01-02", dari); err == nil {
				query = query.Where("mulai >= ?", t)
			}
		}
		if sampai != "" {
			if t, err := time.Parse("2006-01-02", sampai); err == nil {
				query = query.Where("mulai < ?", t.AddDate(0, 0, 1))
			}
		}
	default:
		query = query.Where("selesai >= ?", time.Now())
	}

	var list []models.JadwalAcara
	if err := query.Order("mulai ASC").Find(&list).Error; err != nil {
		return utils.InternalServerError(c, "failed to fetch jadwal")
	}

	return utils.OK(c, "jadwal retrieved", list)
}

// GET /api/v1/jadwal/:id
func GetJadwal(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.BadRequest(c, "invalid jadwal id", nil)
	}

	var j models.JadwalAcara
	if err := config.DB.First(&j, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "jadwal tidak ditemukan")
		}
		return utils.InternalServerError(c, "failed to fetch jadwal")
	}

	return utils.OK(c, "jadwal retrieved", j)
}

// PUT /api/v1/jadwal/:id
func UpdateJadwal(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.BadRequest(c, "invalid jadwal id", nil)
	}

	var req jadwal.UpdateJadwalRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body", err.Error())
	}
	if errs := req.Validate(); len(errs) > 0 {
		return utils.BadRequest(c, "validation failed", errs)
	}

	var j models.JadwalAcara
	if err := config.DB.First(&j, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "jadwal tidak ditemukan")
		}
		return utils.InternalServerError(c, "failed to fetch jadwal")
	}

	jadwal.ApplyUpdate(&j, &req)
	if !j.Selesai.After(j.Mulai) {
		return utils.BadRequest(c, "validation failed", map[string]string{
			"selesai": "selesai must be after mulai",
		})
	}

	if err := config.DB.Save(&j).Error; err != nil {
		return utils.InternalServerError(c, "failed to update jadwal")
	}

	return utils.OK(c, "jadwal berhasil diperbarui", j)
}

// DELETE /api/v1/jadwal/:id
func DeleteJadwal(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.BadRequest(c, "invalid jadwal id", nil)
	}

	res := config.DB.Delete(&models.JadwalAcara{}, "id = ?", id)
	if res.Error != nil {
		return utils.InternalServerError(c, "failed to delete jadwal")
	}
	if res.RowsAffected == 0 {
		return utils.NotFound(c, "jadwal tidak ditemukan")
	}

	return utils.OK(c, "jadwal berhasil dihapus", nil)
}
