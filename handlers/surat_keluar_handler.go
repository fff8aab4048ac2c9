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
	"github.com/farel129/bapelit-be-sub000/dto/surat"
	"github.com/farel129/bapelit-be-sub000/models"
	"github.com/farel129/bapelit-be-sub000/utils"
	"github.com/farel129/bapelit-be-sub000/utils/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// POST /api/v1/surat-keluar  (multipart: metadata fields + optional "file")
func CreateSuratKeluar(c *fiber.Ctx) error {
	claims, err := getClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "unauthenticated")
	}

	var req surat.CreateSuratKeluarRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body", err.Error())
	}
	if errs := req.Validate(); len(errs) > 0 {
		return utils.BadRequest(c, "validation failed", errs)
	}

	s := req.ToModel(claims.UserID)

	if fh, err := c.FormFile("file"); err == nil && fh != nil {
		ext := strings.ToLower(filepath.Ext(fh.Filename))
		if !allowedLampiranExt[ext] {
			return utils.BadRequest(c, "validation failed", map[string]string{
				"file": fmt.Sprintf("tipe file %s tidak didukung", ext),
			})
		}
		if fh.Size > 10*1024*1024 {
			return utils.BadRequest(c, "validation failed", map[string]string{
				"file": "ukuran file maksimal 10MB",
			})
		}

		key := fmt.Sprintf("surat-keluar/%d/%s%s", time.Now().Year(), uuid.NewString(), ext)
		if _, err := storage.UploadFile(c.Context(), fh, key); err != nil {
			return utils.InternalServerError(c, "failed to upload file")
		}
		s.FilePath = key
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		nomor, err := utils.GenerateNomorAgenda(tx, utils.AgendaSuratKeluar)
		if err != nil {
			return err
		}
		s.NomorAgenda = nomor
		return tx.Create(&s).Error
	})
	if err != nil {
		if s.FilePath != "" {
			storage.DeleteFiles(context.Background(), []string{s.FilePath})
		}
		return utils.InternalServerError(c, "failed to create surat keluar")
	}

	attachSuratKeluarURL(&s)
	return utils.Created(c, "surat keluar berhasil dicatat", s)
}

// GET /api/v1/surat-keluar?page=&limit=&sifat=&q=
func ListSuratKeluar(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := config.DB.Model(&models.SuratKeluar{})

	if sifat := c.Query("sifat"); sifat != "" {
		query = query.Where("sifat = ?", sifat)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		query = query.Where("perihal ILIKE ? OR tujuan_instansi ILIKE ? OR nomor_surat ILIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.InternalServerError(c, "failed to count surat keluar")
	}

	var list []models.SuratKeluar
	if err := query.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&list).Error; err != nil {
		return utils.InternalServerError(c, "failed to fetch surat keluar")
	}

	for i := range list {
		attachSuratKeluarURL(&list[i])
	}

	return utils.PaginatedResponse(c, fiber.StatusOK, "surat keluar retrieved", list, utils.PaginationMeta{
		Page:  page,
		Limit: limit,
		Total: total,
	})
}

// GET /api/v1/surat-keluar/:id
func GetSuratKeluar(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.BadRequest(c, "invalid surat id", nil)
	}

	var s models.SuratKeluar
	if err := config.DB.Preload("CreatedBy").First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "surat keluar tidak ditemukan")
		}
		return utils.InternalServerError(c, "failed to fetch surat keluar")
	}

	attachSuratKeluarURL(&s)
	return utils.OK(c, "surat keluar retrieved", s)
}

// PUT /api/v1/surat-keluar/:id
func UpdateSuratKeluar(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.BadRequest(c, "invalid surat id", nil)
	}

	var req surat.UpdateSuratKeluarRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body", err.Error())
	}
	if errs := req.Validate(); len(errs) > 0 {
		return utils.BadRequest(c, "validation failed", errs)
	}

	var s models.SuratKeluar
	if err := config.DB.First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "surat keluar tidak ditemukan")
		}
		return utils.InternalServerError(c, "failed to fetch surat keluar")
	}

	surat.ApplyUpdateKeluar(&s, &req)
	if err := config.DB.Save(&s).Error; err != nil {
		return utils.InternalServerError(c, "failed to update surat keluar")
	}

	return utils.OK(c, "surat keluar berhasil diperbarui", s)
}

// DELETE /api/v1/surat-keluar/:id
func DeleteSuratKeluar(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.BadRequest(c, "invalid surat id", nil)
	}

	var s models.SuratKeluar
	if err := config.DB.First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "surat keluar tidak ditemukan")
		}
		return utils.InternalServerError(c, "failed to fetch surat keluar")
	}

	if err := config.DB.Delete(&s).Error; err != nil {
		return utils.InternalServerError(c, "failed to delete surat keluar")
	}

	if s.FilePath != "" {
		storage.DeleteFiles(context.Background(), []string{s.FilePath})
	}
	return utils.OK(c, "surat keluar berhasil dihapus", nil)
}

func attachSuratKeluarURL(s *models.SuratKeluar) {
	if s.FilePath == "" {
		return
	}
	url, err := storage.GetPresignedURL(s.FilePath)
	if err != nil {
		log.Printf("presign surat keluar %s: %v", s.FilePath, err)
		return
	}
	s.FileURL = url
}
