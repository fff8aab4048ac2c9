package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/farel129/bapelit-be-sub000/config"
	"github.com/farel129/bapelit-be-sub000/dto/disposisi"
	"github.com/farel129/bapelit-be-sub000/middleware"
	"github.com/farel129/bapelit-be-sub000/models"
	"github.com/farel129/bapelit-be-sub000/services"
	"github.com/farel129/bapelit-be-sub000/utils"
	"github.com/farel129/bapelit-be-sub000/utils/events"
	"github.com/farel129/bapelit-be-sub000/utils/pdfgen"
	"github.com/farel129/bapelit-be-sub000/utils/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func disposisiSvc() *services.DisposisiService {
	return services.NewDisposisiService(config.DB)
}

// publishDisposisiEvent drops the event when the bus is full rather than
// block the request; notifikasi email bersifat best effort.
func publishDisposisiEvent(ev events.DisposisiEvent) {
	select {
	case events.DisposisiEventBus <- ev:
	default:
		log.Printf("disposisi event bus full, dropping %s for %s", ev.Type, ev.Disposisi.ID)
	}
}

// disposisiEventEmails resolves who gets notified about a disposition: the
// named target when a forward picked one, otherwise every user holding the
// jabatan the disposition currently addresses.
func disposisiEventEmails(db *gorm.DB, d *models.Disposisi, target *models.User) []string {
	if target != nil {
		return []string{target.Email}
	}

	var recipients []models.User
	if err := db.Where("jabatan = ?", d.DisposisiKepadaJabatan).Find(&recipients).Error; err != nil {
		log.Printf("lookup recipients for jabatan %q: %v", d.DisposisiKepadaJabatan, err)
		return nil
	}

	emails := make([]string, 0, len(recipients))
	for _, r := range recipients {
		emails = append(emails, r.Email)
	}
	return emails
}

// POST /api/v1/disposisi/:suratId  (kepala)
func CreateDisposisi(c *fiber.Ctx) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "unauthenticated")
	}

	suratID := c.Params("suratId")
	if _, err := uuid.Parse(suratID); err != nil {
		return utils.BadRequest(c, "invalid surat id", nil)
	}

	var req disposisi.CreateDisposisiRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body", err.Error())
	}
	if errs := req.Validate(); len(errs) > 0 {
		return utils.BadRequest(c, "validation failed", errs)
	}

	var surat models.SuratMasuk
	if err := config.DB.First(&surat, "id = ?", suratID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "surat masuk tidak ditemukan")
		}
		return utils.InternalServerError(c, "failed to fetch surat masuk")
	}

	d := req.ToModel()
	if err := disposisiSvc().Create(actor, &surat, &d); err != nil {
		if errors.Is(err, services.ErrConflict) {
			return utils.Conflict(c, "surat sudah memiliki disposisi aktif")
		}
		return utils.InternalServerError(c, "failed to create disposisi")
	}

	// Beritahu semua user yang memegang jabatan tujuan.
	for _, email := range disposisiEventEmails(config.DB, &d, nil) {
		publishDisposisiEvent(events.DisposisiEvent{
			Type:        events.DisposisiCreated,
			Disposisi:   d,
			TargetEmail: email,
		})
	}

	return utils.Created(c, "disposisi berhasil dibuat", disposisi.NewDisposisiResponse(&d))
}

// GET /api/v1/disposisi/kepala  — semua disposisi, untuk pimpinan dan admin.
func ListDisposisiKepala(c *fiber.Ctx) error {
	return listDisposisi(c, config.DB.Model(&models.Disposisi{}))
}

// GET /api/v1/disposisi/atasan — disposisi yang dialamatkan ke jabatan saya.
func ListDisposisiAtasan(c *fiber.Ctx) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "unauthenticated")
	}
	return listDisposisi(c, config.DB.Model(&models.Disposisi{}).
		Where("disposisi_kepada_jabatan = ?", actor.Jabatan))
}

// GET /api/v1/disposisi/bawahan — disposisi yang diteruskan ke saya.
func ListDisposisiBawahan(c *fiber.Ctx) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "unauthenticated")
	}
	return listDisposisi(c, config.DB.Model(&models.Disposisi{}).
		Where("diteruskan_kepada_user_id = ?", actor.ID))
}

func listDisposisi(c *fiber.Ctx, query *gorm.DB) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if sifat := c.Query("sifat"); sifat != "" {
		query = query.Where("sifat = ?", sifat)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		query = query.Where("perihal ILIKE ? OR asal_instansi ILIKE ? OR nomor_surat ILIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.InternalServerError(c, "failed to count disposisi")
	}

	var list []models.Disposisi
	if err := query.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&list).Error; err != nil {
		return utils.InternalServerError(c, "failed to fetch disposisi")
	}

	resp := make([]disposisi.DisposisiResponse, 0, len(list))
	for i := range list {
		resp = append(resp, disposisi.NewDisposisiResponse(&list[i]))
	}

	return utils.PaginatedResponse(c, fiber.StatusOK, "disposisi retrieved", resp, utils.PaginationMeta{
		Page:  page,
		Limit: limit,
		Total: total,
	})
}

// GET /api/v1/disposisi/detail/:id
func GetDisposisi(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.BadRequest(c, "invalid disposisi id", nil)
	}

	d, err := disposisiSvc().Get(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFound(c, "disposisi tidak ditemukan")
		}
		return utils.InternalServerError(c, "failed to fetch disposisi")
	}

	return utils.OK(c, "disposisi retrieved", disposisi.NewDisposisiResponse(d))
}

// DELETE /api/v1/disposisi/kepala/:id
//
// Urutan cascade: file feedback di object storage dihapus dulu (best effort,
// kegagalan hanya dicatat), lalu semua baris turunannya dalam satu transaksi.
func DeleteDisposisi(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.BadRequest(c, "invalid disposisi id", nil)
	}

	svc := disposisiSvc()
	d, err := svc.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFound(c, "disposisi tidak ditemukan")
		}
		return utils.InternalServerError(c, "failed to fetch disposisi")
	}

	keys, err := svc.FeedbackFileKeys(id)
	if err != nil {
		return utils.InternalServerError(c, "failed to collect feedback files")
	}
	storage.DeleteFiles(context.Background(), keys)

	if err := svc.Delete(d); err != nil {
		return utils.InternalServerError(c, "failed to delete disposisi")
	}

	return utils.OK(c, "disposisi berhasil dihapus", nil)
}

// GET /api/v1/disposisi/download-pdf/:id
func DownloadDisposisiPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.BadRequest(c, "invalid disposisi id", nil)
	}

	svc := disposisiSvc()
	d, err := svc.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFound(c, "disposisi tidak ditemukan")
		}
		return utils.InternalServerError(c, "failed to fetch disposisi")
	}

	logs, err := svc.Logs(id)
	if err != nil {
		return utils.InternalServerError(c, "failed to fetch log disposisi")
	}

	appCfg := config.LoadAppConfig()
	pdf, err := pdfgen.NewClient(appCfg.PDFRenderURL).RenderDisposisi(c.Context(), d, logs)
	if err != nil {
		log.Printf("render disposisi pdf %s: %v", id, err)
		return utils.InternalServerError(c, "failed to render PDF")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="disposisi-%s.pdf"`, d.NomorSurat))
	return c.Send(pdf)
}
