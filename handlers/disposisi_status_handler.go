package handlers

import (
	"errors"

	"github.com/farel129/bapelit-be-sub000/dto/disposisi"
	"github.com/farel129/bapelit-be-sub000/middleware"
	"github.com/farel129/bapelit-be-sub000/services"
	"github.com/farel129/bapelit-be-sub000/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// advanceDisposisi runs one track transition and translates the outcome to
// HTTP. Transisi yang tidak berlaku bukan error: 200 dengan success=false.
func advanceDisposisi(c *fiber.Ctx, track services.Track, aksi services.Aksi, paramName string) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "unauthenticated")
	}

	id := c.Params(paramName)
	if _, err := uuid.Parse(id); err != nil {
		return utils.BadRequest(c, "invalid disposisi id", nil)
	}

	d, outcome, err := disposisiSvc().AdvanceTrack(actor, track, id, aksi)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return utils.NotFound(c, "disposisi tidak ditemukan")
		case errors.Is(err, services.ErrForbidden):
			return utils.Forbidden(c, "disposisi ini bukan untuk anda")
		default:
			return utils.InternalServerError(c, "failed to update status disposisi")
		}
	}

	resp := disposisi.NewDisposisiResponse(d)
	if !outcome.Changed {
		return utils.Unchanged(c, outcome.Message, resp)
	}
	return utils.OK(c, "status disposisi diperbarui", resp)
}

// PUT /api/v1/disposisi/kabid/baca/:id
func KabidBacaDisposisi(c *fiber.Ctx) error {
	return advanceDisposisi(c, services.TrackKabid, services.AksiBaca, "id")
}

// PUT /api/v1/disposisi/kabid/terima/:id
func KabidTerimaDisposisi(c *fiber.Ctx) error {
	return advanceDisposisi(c, services.TrackKabid, services.AksiTerima, "id")
}

// PUT /api/v1/disposisi/sekretaris/baca/:id
func SekretarisBacaDisposisi(c *fiber.Ctx) error {
	return advanceDisposisi(c, services.TrackSekretaris, services.AksiBaca, "id")
}

// PUT /api/v1/disposisi/sekretaris/terima/:id
func SekretarisTerimaDisposisi(c *fiber.Ctx) error {
	return advanceDisposisi(c, services.TrackSekretaris, services.AksiTerima, "id")
}

// PUT /api/v1/disposisi/bawahan/baca/:disposisiId
func BawahanBacaDisposisi(c *fiber.Ctx) error {
	return advanceDisposisi(c, services.TrackBawahan, services.AksiBaca, "disposisiId")
}

// PUT /api/v1/disposisi/bawahan/terima/:disposisiId
func BawahanTerimaDisposisi(c *fiber.Ctx) error {
	return advanceDisposisi(c, services.TrackBawahan, services.AksiTerima, "disposisiId")
}

// PUT /api/v1/disposisi/bawahan/proses/:disposisiId
func BawahanProsesDisposisi(c *fiber.Ctx) error {
	return advanceDisposisi(c, services.TrackBawahan, services.AksiProses, "disposisiId")
}

// PUT /api/v1/disposisi/bawahan/selesai/:disposisiId
func BawahanSelesaiDisposisi(c *fiber.Ctx) error {
	return advanceDisposisi(c, services.TrackBawahan, services.AksiSelesai, "disposisiId")
}

// GET /api/v1/disposisi/logs/:disposisiId
func GetDisposisiLogs(c *fiber.Ctx) error {
	id := c.Params("disposisiId")
	if _, err := uuid.Parse(id); err != nil {
		return utils.BadRequest(c, "invalid disposisi id", nil)
	}

	svc := disposisiSvc()
	if _, err := svc.Get(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFound(c, "disposisi tidak ditemukan")
		}
		return utils.InternalServerError(c, "failed to fetch disposisi")
	}

	logs, err := svc.Logs(id)
	if err != nil {
		return utils.InternalServerError(c, "failed to fetch log disposisi")
	}

	return utils.OK(c, "log disposisi retrieved", disposisi.NewLogResponses(logs))
}
