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
	"github.com/farel129/bapelit-be-sub000/dto/dokumentasi"
	"github.com/farel129/bapelit-be-sub000/middleware"
	"github.com/farel129/bapelit-be-sub000/models"
	"github.com/farel129/bapelit-be-sub000/utils"
	"github.com/farel129/bapelit-be-sub000/utils/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// POST /api/v1/dokumentasi  (multipart: judul, deskripsi + fotos)
func CreateDokumentasi(c *fiber.Ctx) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "unauthenticated")
	}

	var req dokumentasi.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body", err.Error())
	}
	if errs := req.Validate(); len(errs) > 0 {
		return utils.BadRequest(c, "validation failed", errs)
	}

	var uploadedKeys []string
	var fotos []models.DokumentasiFoto
	if form, err := c.MultipartForm(); err == nil && form != nil {
		files := form.File["fotos"]
		if len(files) > maxLampiranPerSurat {
			return utils.BadRequest(c, "validation failed", map[string]string{
				"fotos": fmt.Sprintf("maksimal %d foto per post", maxLampiranPerSurat),
			})
		}
		for i, f := range files {
			ext := strings.ToLower(filepath.Ext(f.Filename))
			if !allowedFotoExt[ext] {
				return utils.BadRequest(c, "validation failed", map[string]string{
					"fotos": fmt.Sprintf("tipe file %s tidak didukung", ext),
				})
			}
			key := fmt.Sprintf("dokumentasi/%d/%s-%d%s",
				time.Now().Year(), uuid.NewString(), i, ext)
			if _, err := storage.UploadFile(c.Context(), f, key); err != nil {
				storage.DeleteFiles(context.Background(), uploadedKeys)
				return utils.InternalServerError(c, "failed to upload foto")
			}
			uploadedKeys = append(uploadedKeys, key)
			fotos = append(fotos, models.DokumentasiFoto{FilePath: key})
		}
	}

	d := req.ToModel(actor.ID)
	d.Fotos = fotos
	if err := config.DB.Create(&d).Error; err != nil {
		storage.DeleteFiles(context.Background(), uploadedKeys)
		return utils.InternalServerError(c, "failed to create dokumentasi")
	}

	attachDokumentasiURLs(&d)
	return utils.Created(c, "dokumentasi berhasil dibuat", dokumentasi.NewPostResponse(&d, 0, 0, false))
}

// GET /api/v1/dokumentasi?page=&limit=
func ListDokumentasi(c *fiber.Ctx) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "unauthenticated")
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	var total int64
	if err := config.DB.Model(&models.Dokumentasi{}).Count(&total).Error; err != nil {
		return utils.InternalServerError(c, "failed to count dokumentasi")
	}

	var posts []models.Dokumentasi
	if err := config.DB.Preload("Fotos").Preload("User").
		Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&posts).Error; err != nil {
		return utils.InternalServerError(c, "failed to fetch dokumentasi")
	}

	resp := make([]dokumentasi.PostResponse, 0, len(posts))
	for i := range posts {
		attachDokumentasiURLs(&posts[i])
		likeCount, commentCount, likedByMe := dokumentasiCounters(posts[i].ID, actor.ID)
		resp = append(resp, dokumentasi.NewPostResponse(&posts[i], likeCount, commentCount, likedByMe))
	}

	return utils.PaginatedResponse(c, fiber.StatusOK, "dokumentasi retrieved", resp, utils.PaginationMeta{
		Page:  page,
		Limit: limit,
		Total: total,
	})
}

// GET /api/v1/dokumentasi/:id — detail post beserta komentarnya.
func GetDokumentasi(c *fiber.Ctx) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "unauthenticated")
	}

	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.BadRequest(c, "invalid dokumentasi id", nil)
	}

	var d models.Dokumentasi
	if err := config.DB.Preload("Fotos").Preload("User").First(&d, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "dokumentasi tidak ditemukan")
		}
		return utils.InternalServerError(c, "failed to fetch dokumentasi")
	}

	var comments []models.DokumentasiKomentar
	if err := config.DB.Where("dokumentasi_id = ?", id).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return utils.InternalServerError(c, "failed to fetch komentar")
	}

	attachDokumentasiURLs(&d)
	likeCount, commentCount, likedByMe := dokumentasiCounters(d.ID, actor.ID)

	return utils.OK(c, "dokumentasi retrieved", fiber.Map{
		"post":     dokumentasi.NewPostResponse(&d, likeCount, commentCount, likedByMe),
		"komentar": dokumentasi.NewCommentResponses(comments),
	})
}

// POST /api/v1/dokumentasi/:id/like — toggle; like kedua kali berarti batal.
func LikeDokumentasi(c *fiber.Ctx) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "unauthenticated")
	}

	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.BadRequest(c, "invalid dokumentasi id", nil)
	}

	var d models.Dokumentasi
	if err := config.DB.First(&d, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "dokumentasi tidak ditemukan")
		}
		return utils.InternalServerError(c, "failed to fetch dokumentasi")
	}

	res := config.DB.Where("dokumentasi_id = ? AND user_id = ?", id, actor.ID).
		Delete(&models.DokumentasiLike{})
	if res.Error != nil {
		return utils.InternalServerError(c, "failed to toggle like")
	}
	if res.RowsAffected > 0 {
		return utils.OK(c, "like dibatalkan", fiber.Map{"liked": false})
	}

	like := models.DokumentasiLike{DokumentasiID: id, UserID: actor.ID}
	if err := config.DB.Create(&like).Error; err != nil {
		// Balapan dengan request like lain dari user yang sama.
		if utils.IsDuplicateError(err) {
			return utils.OK(c, "sudah dilike", fiber.Map{"liked": true})
		}
		return utils.InternalServerError(c, "failed to toggle like")
	}
	return utils.OK(c, "dokumentasi dilike", fiber.Map{"liked": true})
}

// POST /api/v1/dokumentasi/:id/komentar
func CommentDokumentasi(c *fiber.Ctx) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "unauthenticated")
	}

	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.BadRequest(c, "invalid dokumentasi id", nil)
	}

	var req dokumentasi.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body", err.Error())
	}
	if errs := req.Validate(); len(errs) > 0 {
		return utils.BadRequest(c, "validation failed", errs)
	}

	var d models.Dokumentasi
	if err := config.DB.First(&d, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "dokumentasi tidak ditemukan")
		}
		return utils.InternalServerError(c, "failed to fetch dokumentasi")
	}

	komentar := models.DokumentasiKomentar{
		DokumentasiID: id,
		UserID:        actor.ID,
		Nama:          actor.Name,
		Isi:           strings.TrimSpace(req.Isi),
	}
	if err := config.DB.Create(&komentar).Error; err != nil {
		return utils.InternalServerError(c, "failed to create komentar")
	}

	return utils.Created(c, "komentar berhasil dikirim", dokumentasi.NewCommentResponses(
		[]models.DokumentasiKomentar{komentar})[0])
}

// DELETE /api/v1/dokumentasi/:id — pemilik post atau admin.
func DeleteDokumentasi(c *fiber.Ctx) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "unauthenticated")
	}

	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.BadRequest(c, "invalid dokumentasi id", nil)
	}

	var d models.Dokumentasi
	if err := config.DB.Preload("Fotos").First(&d, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "dokumentasi tidak ditemukan")
		}
		return utils.InternalServerError(c, "failed to fetch dokumentasi")
	}

	if d.UserID != actor.ID && !actor.IsAdmin() {
		return utils.Forbidden(c, "anda tidak berwenang menghapus post ini")
	}

	keys := make([]string, 0, len(d.Fotos))
	for _, f := range d.Fotos {
		keys = append(keys, f.FilePath)
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("dokumentasi_id = ?", id).Delete(&models.DokumentasiLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("dokumentasi_id = ?", id).Delete(&models.DokumentasiKomentar{}).Error; err != nil {
			return err
		}
		if err := tx.Where("dokumentasi_id = ?", id).Delete(&models.DokumentasiFoto{}).Error; err != nil {
			return err
		}
		return tx.Delete(&d).Error
	})
	if err != nil {
		return utils.InternalServerError(c, "failed to delete dokumentasi")
	}

	storage.DeleteFiles(context.Background(), keys)
	return utils.OK(c, "dokumentasi berhasil dihapus", nil)
}

func dokumentasiCounters(postID string, userID uint) (likeCount, commentCount int64, likedByMe bool) {
	config.DB.Model(&models.DokumentasiLike{}).Where("dokumentasi_id = ?", postID).Count(&likeCount)
	config.DB.Model(&models.DokumentasiKomentar{}).Where("dokumentasi_id = ?", postID).Count(&commentCount)

	var mine int64
	config.DB.Model(&models.DokumentasiLike{}).
		Where("dokumentasi_id = ? AND user_id = ?", postID, userID).
		Count(&mine)
	return likeCount, commentCount, mine > 0
}

func attachDokumentasiURLs(d *models.Dokumentasi) {
	for i := range d.Fotos {
		url, err := storage.GetPresignedURL(d.Fotos[i].FilePath)
		if err != nil {
			log.Printf("presign dokumentasi foto %s: %v", d.Fotos[i].FilePath, err)
			continue
		}
		d.Fotos[i].FileURL = url
	}
}
