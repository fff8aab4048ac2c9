package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/farel129/bapelit-be-sub000/config"
	"github.com/farel129/bapelit-be-sub000/dto/bukutamu"
	"github.com/farel129/bapelit-be-sub000/models"
	"github.com/farel129/bapelit-be-sub000/utils"
	"github.com/farel129/bapelit-be-sub000/utils/places"
	"github.com/farel129/bapelit-be-sub000/utils/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var allowedFotoExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// POST /api/v1/buku-tamu  (public, multipart: form fields + optional "foto")
func CheckInBukuTamu(c *fiber.Ctx) error {
	var req bukutamu.CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body", err.Error())
	}
	if errs := req.Validate(); len(errs) > 0 {
		return utils.BadRequest(c, "validation failed", errs)
	}

	b := req.ToModel()

	if fh, err := c.FormFile("foto"); err == nil && fh != nil {
		ext := strings.ToLower(filepath.Ext(fh.Filename))
		if !allowedFotoExt[ext] {
			return utils.BadRequest(c, "validation failed", map[string]string{
				"foto": fmt.Sprintf("tipe file %s tidak didukung", ext),
			})
		}
		if fh.Size > 5*1024*1024 {
			return utils.BadRequest(c, "validation failed", map[string]string{
				"foto": "ukuran foto maksimal 5MB",
			})
		}

		key := fmt.Sprintf("buku-tamu/%d/%s%s", time.Now().Year(), uuid.NewString(), ext)
		if _, err := storage.UploadFile(c.Context(), fh, key); err != nil {
			return utils.InternalServerError(c, "failed to upload foto")
		}
		b.FotoPath = key
	}

	if err := config.DB.Create(&b).Error; err != nil {
		if b.FotoPath != "" {
			storage.DeleteFiles(context.Background(), []string{b.FotoPath})
		}
		return utils.InternalServerError(c, "failed to record guest")
	}

	attachBukuTamuURL(&b)
	return utils.Created(c, "selamat datang, kunjungan anda tercatat", b)
}

// GET /api/v1/buku-tamu?page=&limit=&tanggal=&q=
func ListBukuTamu(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := config.DB.Model(&models.BukuTamu{})

	if tanggal := c.Query("tanggal"); tanggal != "" {
		if day, err := time.Parse("2006-01-02", tanggal); err == nil {
			query = query.Where("created_at >= ? AND created_at < ?", day, day.AddDate(0, 0, 1))
		}
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		query = query.Where("nama ILIKE ? OR instansi ILIKE ? OR keperluan ILIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.InternalServerError(c, "failed to count buku tamu")
	}

	var list []models.BukuTamu
	if err := query.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&list).Error; err != nil {
		return utils.InternalServerError(c, "failed to fetch buku tamu")
	}

	for i := range list {
		attachBukuTamuURL(&list[i])
	}

	return utils.PaginatedResponse(c, fiber.StatusOK, "buku tamu retrieved", list, utils.PaginationMeta{
		Page:  page,
		Limit: limit,
		Total: total,
	})
}

// GET /api/v1/buku-tamu/:id
func GetBukuTamu(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.BadRequest(c, "invalid buku tamu id", nil)
	}

	var b models.BukuTamu
	if err := config.DB.First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "data tamu tidak ditemukan")
		}
		return utils.InternalServerError(c, "failed to fetch buku tamu")
	}

	attachBukuTamuURL(&b)
	return utils.OK(c, "buku tamu retrieved", b)
}

// DELETE /api/v1/buku-tamu/:id
func DeleteBukuTamu(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.BadRequest(c, "invalid buku tamu id", nil)
	}

	var b models.BukuTamu
	if err := config.DB.First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "data tamu tidak ditemukan")
		}
		return utils.InternalServerError(c, "failed to fetch buku tamu")
	}

	if err := config.DB.Delete(&b).Error; err != nil {
		return utils.InternalServerError(c, "failed to delete buku tamu")
	}

	if b.FotoPath != "" {
		storage.DeleteFiles(context.Background(), []string{b.FotoPath})
	}
	return utils.OK(c, "data tamu berhasil dihapus", nil)
}

// GET /api/v1/buku-tamu/places?q=  (public)
//
// Proxy ke API pencarian tempat untuk autocomplete kolom instansi, supaya
// API key tidak pernah sampai ke browser.
func SearchPlaces(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if len(q) < 3 {
		return utils.BadRequest(c, "query minimal 3 karakter", nil)
	}

	appCfg := config.LoadAppConfig()
	results, err := places.NewClient(appCfg.PlacesAPIURL, appCfg.PlacesAPIKey).Search(c.Context(), q)
	if err != nil {
		log.Printf("places search %q: %v", q, err)
		return utils.InternalServerError(c, "failed to search places")
	}

	return utils.OK(c, "places retrieved", results)
}

func attachBukuTamuURL(b *models.BukuTamu) {
	if b.FotoPath == "" {
		return
	}
	url, err := storage.GetPresignedURL(b.FotoPath)
	if err != nil {
		log.Printf("presign foto tamu %s: %v", b.FotoPath, err)
		return
	}
	b.FotoURL = url
}
