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
	"github.com/farel129/bapelit-be-sub000/middleware"
	"github.com/farel129/bapelit-be-sub000/models"
	"github.com/farel129/bapelit-be-sub000/services"
	"github.com/farel129/bapelit-be-sub000/utils"
	"github.com/farel129/bapelit-be-sub000/utils/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// POST /api/v1/disposisi/feedback/:disposisiId  (multipart: isi + files)
//
// Hanya staf yang memegang disposisi tersebut yang boleh mengirim feedback.
func CreateFeedback(c *fiber.Ctx) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "unauthenticated")
	}

	disposisiID := c.Params("disposisiId")
	if _, err := uuid.Parse(disposisiID); err != nil {
		return utils.BadRequest(c, "invalid disposisi id", nil)
	}

	isi := strings.TrimSpace(c.FormValue("isi"))
	if isi == "" {
		return utils.BadRequest(c, "validation failed", map[string]string{"isi": "isi is required"})
	}

	d, err := disposisiSvc().Get(disposisiID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFound(c, "disposisi tidak ditemukan")
		}
		return utils.InternalServerError(c, "failed to fetch disposisi")
	}
	if d.DiteruskanKepadaUserID == nil || *d.DiteruskanKepadaUserID != actor.ID {
		return utils.Forbidden(c, "disposisi ini bukan untuk anda")
	}

	var uploadedKeys []string
	var rows []models.FeedbackFile
	if form, err := c.MultipartForm(); err == nil && form != nil {
		files := form.File["files"]
		if errs := validateLampiran(files); len(errs) > 0 {
			return utils.BadRequest(c, "validation failed", errs)
		}
		for i, f := range files {
			key := fmt.Sprintf("feedback/%d/%s-%d%s",
				time.Now().Year(), uuid.NewString(), i, strings.ToLower(filepath.Ext(f.Filename)))
			if _, err := storage.UploadFile(c.Context(), f, key); err != nil {
				storage.DeleteFiles(context.Background(), uploadedKeys)
				return utils.InternalServerError(c, "failed to upload file")
			}
			uploadedKeys = append(uploadedKeys, key)
			rows = append(rows, models.FeedbackFile{FilePath: key})
		}
	}

	fb := models.FeedbackDisposisi{
		DisposisiID: disposisiID,
		UserID:      actor.ID,
		Nama:        actor.Name,
		Jabatan:     actor.Jabatan,
		Isi:         isi,
		Files:       rows,
	}
	if err := config.DB.Create(&fb).Error; err != nil {
		storage.DeleteFiles(context.Background(), uploadedKeys)
		return utils.InternalServerError(c, "failed to create feedback")
	}

	attachFeedbackURLs(&fb)
	return utils.Created(c, "feedback berhasil dikirim", fb)
}

// GET /api/v1/disposisi/feedback/:disposisiId
func ListFeedback(c *fiber.Ctx) error {
	disposisiID := c.Params("disposisiId")
	if _, err := uuid.Parse(disposisiID); err != nil {
		return utils.BadRequest(c, "invalid disposisi id", nil)
	}

	if _, err := disposisiSvc().Get(disposisiID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFound(c, "disposisi tidak ditemukan")
		}
		return utils.InternalServerError(c, "failed to fetch disposisi")
	}

	var list []models.FeedbackDisposisi
	if err := config.DB.Preload("Files").
		Where("disposisi_id = ?", disposisiID).
		Order("created_at ASC").
		Find(&list).Error; err != nil {
		return utils.InternalServerError(c, "failed to fetch feedback")
	}

	for i := range list {
		attachFeedbackURLs(&list[i])
	}
	return utils.OK(c, "feedback retrieved", list)
}

// DELETE /api/v1/disposisi/feedback/:feedbackId — pemilik atau admin.
func DeleteFeedback(c *fiber.Ctx) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "unauthenticated")
	}

	feedbackID := c.Params("feedbackId")
	if _, err := uuid.Parse(feedbackID); err != nil {
		return utils.BadRequest(c, "invalid feedback id", nil)
	}

	var fb models.FeedbackDisposisi
	if err := config.DB.Preload("Files").First(&fb, "id = ?", feedbackID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "feedback tidak ditemukan")
		}
		return utils.InternalServerError(c, "failed to fetch feedback")
	}

	if fb.UserID != actor.ID && !actor.IsAdmin() {
		return utils.Forbidden(c, "anda tidak berwenang menghapus feedback ini")
	}

	keys := make([]string, 0, len(fb.Files))
	for _, f := range fb.Files {
		keys = append(keys, f.FilePath)
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("feedback_id = ?", fb.ID).Delete(&models.FeedbackFile{}).Error; err != nil {
			return err
		}
		return tx.Delete(&fb).Error
	})
	if err != nil {
		return utils.InternalServerError(c, "failed to delete feedback")
	}

	storage.DeleteFiles(context.Background(), keys)
	return utils.OK(c, "feedback berhasil dihapus", nil)
}

func attachFeedbackURLs(fb *models.FeedbackDisposisi) {
	for i := range fb.Files {
		url, err := storage.GetPresignedURL(fb.Files[i].FilePath)
		if err != nil {
			log.Printf("presign feedback file %s: %v", fb.Files[i].FilePath, err)
			continue
		}
		fb.Files[i].FileURL = url
	}
}
