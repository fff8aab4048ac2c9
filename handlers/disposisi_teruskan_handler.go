package handlers

import (
	"errors"

	"github.com/farel129/bapelit-be-sub000/config"
	"github.com/farel129/bapelit-be-sub000/dto/disposisi"
	"github.com/farel129/bapelit-be-sub000/middleware"
	"github.com/farel129/bapelit-be-sub000/models"
	"github.com/farel129/bapelit-be-sub000/services"
	"github.com/farel129/bapelit-be-sub000/utils"
	"github.com/farel129/bapelit-be-sub000/utils/events"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// POST /api/v1/disposisi/atasan/:role/teruskan/:disposisiId
//
// :role di path harus cocok dengan role pemanggil; mencegah frontend kabid
// memanggil endpoint sekretaris dan sebaliknya.
func TeruskanDisposisi(c *fiber.Ctx) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "unauthenticated")
	}

	roleParam := models.Role(c.Params("role"))
	if roleParam != models.RoleKabid && roleParam != models.RoleSekretaris {
		return utils.BadRequest(c, "role harus kabid atau sekretaris", nil)
	}
	if actor.Role != roleParam {
		return utils.Forbidden(c, "role pada path tidak sesuai dengan akun anda")
	}

	id := c.Params("disposisiId")
	if _, err := uuid.Parse(id); err != nil {
		return utils.BadRequest(c, "invalid disposisi id", nil)
	}

	var req disposisi.TeruskanRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body", err.Error())
	}
	if errs := req.Validate(); len(errs) > 0 {
		return utils.BadRequest(c, "validation failed", errs)
	}

	d, target, err := disposisiSvc().Teruskan(actor, id, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return utils.NotFound(c, "disposisi atau user tujuan tidak ditemukan")
		case errors.Is(err, services.ErrForbidden):
			return utils.Forbidden(c, "anda tidak berwenang meneruskan disposisi ini")
		case errors.Is(err, services.ErrValidation):
			return utils.BadRequest(c, "penerusan tidak valid", nil)
		default:
			return utils.InternalServerError(c, "failed to forward disposisi")
		}
	}

	// Penerusan ke jabatan tidak menyebut orang; kabari semua pemegang
	// jabatan tujuan, sama seperti saat disposisi diterbitkan.
	for _, email := range disposisiEventEmails(config.DB, d, target) {
		publishDisposisiEvent(events.DisposisiEvent{
			Type:        events.DisposisiDiteruskan,
			Disposisi:   *d,
			TargetEmail: email,
		})
	}

	return utils.OK(c, "disposisi berhasil diteruskan", disposisi.NewDisposisiResponse(d))
}
