package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
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

const maxLampiranPerSurat = 10

var allowedLampiranExt = map[string]bool{
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

func validateLampiran(files []*multipart.FileHeader) map[string]string {
	errs := make(map[string]string)
	if len(files) > maxLampiranPerSurat {
		errs["lampiran"] = fmt.Sprintf("maksimal %d file per surat", maxLampiranPerSurat)
		return errs
	}
	for _, f := range files {
		ext := strings.ToLower(filepath.Ext(f.Filename))
		if !allowedLampiranExt[ext] {
			errs["lampiran"] = fmt.Sprintf("tipe file %s tidak didukung", ext)
			return errs
		}
		if f.Size > 10*1024*1024 {
			errs["lampiran"] = "ukuran file maksimal 10MB"
			return errs
		}
	}
	return errs
}

// POST /api/v1/surat-masuk  (multipart: metadata fields + lampiran files)
func CreateSuratMasuk(c *fiber.Ctx) error {
	claims, err := getClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "unauthenticated")
	}

	var req surat.CreateSuratMasukRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body", err.Error())
	}
	if errs := req.Validate(); len(errs) > 0 {
		return utils.BadRequest(c, "validation failed", errs)
	}

	var lampiran []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		lampiran = form.File["lampiran"]
	}
	if errs := validateLampiran(lampiran); len(errs) > 0 {
		return utils.BadRequest(c, "validation failed", errs)
	}

	s := req.ToModel(claims.UserID)

	// Upload dulu ke object storage, baru tulis baris di DB. Kalau DB gagal,
	// file yang sudah terlanjur naik dihapus lagi (best effort).
	uploadedKeys := make([]string, 0, len(lampiran))
	rows := make([]models.SuratMasukLampiran, 0, len(lampiran))
	for i, f := range lampiran {
		key := fmt.Sprintf("surat-masuk/%d/%s-%d%s",
			time.Now().Year(), uuid.NewString(), i, strings.ToLower(filepath.Ext(f.Filename)))
		if _, err := storage.UploadFile(c.Context(), f, key); err != nil {
			storage.DeleteFiles(context.Background(), uploadedKeys)
			return utils.InternalServerError(c, "failed to upload lampiran")
		}
		uploadedKeys = append(uploadedKeys, key)
		rows = append(rows, models.SuratMasukLampiran{FilePath: key})
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		nomor, err := utils.GenerateNomorAgenda(tx, utils.AgendaSuratMasuk)
		if err != nil {
			return err
		}
		s.NomorAgenda = nomor
		s.Lampiran = rows
		return tx.Create(&s).Error
	})
	if err != nil {
		storage.DeleteFiles(context.Background(), uploadedKeys)
		return utils.InternalServerError(c, "failed to create surat masuk")
	}

	attachLampiranURLs(&s)
	return utils.Created(c, "surat masuk berhasil dicatat", s)
}

// GET /api/v1/surat-masuk?page=&limit=&sifat=&q=&belum_disposisi=
func ListSuratMasuk(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := config.DB.Model(&models.SuratMasuk{})

	if sifat := c.Query("sifat"); sifat != "" {
		query = query.Where("sifat = ?", sifat)
	}
	if c.Query("belum_disposisi") == "true" {
		query = query.Where("sudah_disposisi = ?", false)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		query = query.Where("perihal ILIKE ? OR asal_instansi ILIKE ? OR nomor_surat ILIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.InternalServerError(c, "failed to count surat masuk")
	}

	var list []models.SuratMasuk
	if err := query.Preload("Lampiran").
		Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&list).Error; err != nil {
		return utils.InternalServerError(c, "failed to fetch surat masuk")
	}

	for i := range list {
		attachLampiranURLs(&list[i])
	}

	return utils.PaginatedResponse(c, fiber.StatusOK, "surat masuk retrieved", list, utils.PaginationMeta{
		Page:  page,
		Limit: limit,
		Total: total,
	})
}

// GET /api/v1/surat-masuk/:id
func GetSuratMasuk(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.BadRequest(c, "invalid surat id", nil)
	}

	var s models.SuratMasuk
	if err := config.DB.Preload("Lampiran").Preload("CreatedBy").First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "surat masuk tidak ditemukan")
		}
		return utils.InternalServerError(c, "failed to fetch surat masuk")
	}

	attachLampiranURLs(&s)
	return utils.OK(c, "surat masuk retrieved", s)
}

// PUT /api/v1/surat-masuk/:id
func UpdateSuratMasuk(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.BadRequest(c, "invalid surat id", nil)
	}

	var req surat.UpdateSuratMasukRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body", err.Error())
	}
	if errs := req.Validate(); len(errs) > 0 {
		return utils.BadRequest(c, "validation failed", errs)
	}

	var s models.SuratMasuk
	if err := config.DB.First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "surat masuk tidak ditemukan")
		}
		return utils.InternalServerError(c, "failed to fetch surat masuk")
	}

	surat.ApplyUpdateMasuk(&s, &req)
	if err := config.DB.Save(&s).Error; err != nil {
		return utils.InternalServerError(c, "failed to update surat masuk")
	}

	return utils.OK(c, "surat masuk berhasil diperbarui", s)
}

// DELETE /api/v1/surat-masuk/:id
//
// Refuses while a disposition still references the letter; delete the
// disposition first so its audit trail goes with it.
func DeleteSuratMasuk(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.BadRequest(c, "invalid surat id", nil)
	}

	var s models.SuratMasuk
	if err := config.DB.Preload("Lampiran").First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "surat masuk tidak ditemukan")
		}
		return utils.InternalServerError(c, "failed to fetch surat masuk")
	}

	var disposisiCount int64
	if err := config.DB.Model(&models.Disposisi{}).
		Where("surat_masuk_id = ?", id).
		Count(&disposisiCount).Error; err != nil {
		return utils.InternalServerError(c, "failed to check disposisi")
	}
	if disposisiCount > 0 {
		return utils.Conflict(c, "surat masih memiliki disposisi, hapus disposisi terlebih dahulu")
	}

	keys := make([]string, 0, len(s.Lampiran))
	for _, l := range s.Lampiran {
		keys = append(keys, l.FilePath)
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("surat_masuk_id = ?", id).Delete(&models.SuratMasukLampiran{}).Error; err != nil {
			return err
		}
		return tx.Delete(&s).Error
	})
	if err != nil {
		return utils.InternalServerError(c, "failed to delete surat masuk")
	}

	storage.DeleteFiles(context.Background(), keys)
	return utils.OK(c, "surat masuk berhasil dihapus", nil)
}

func attachLampiranURLs(s *models.SuratMasuk) {
	for i := range s.Lampiran {
		url, err := storage.GetPresignedURL(s.Lampiran[i].FilePath)
		if err != nil {
			log.Printf("presign lampiran %s: %v", s.Lampiran[i].FilePath, err)
			continue
		}
		s.Lampiran[i].FileURL = url
	}
}
