package disposisi

import (
	"strings"

	"github.com/farel129/bapelit-be-sub000/models"
)

// ToModel maps the create request onto a disposition. Reference fields from
// the letter and sender identity are filled by the service.
func (r *CreateDisposisiRequest) ToModel() models.Disposisi {
	sifat := models.SifatBiasa
	if r.Sifat != "" {
		sifat = models.SifatSurat(r.Sifat)
	}

	return models.Disposisi{
		Sifat:                  sifat,
		Perihal:                strings.TrimSpace(r.Perihal),
		DisposisiKepadaJabatan: strings.TrimSpace(r.DisposisiKepadaJabatan),
		DenganHormatHarap:      strings.TrimSpace(r.DenganHormatHarap),
		Catatan:                strings.TrimSpace(r.Catatan),
	}
}
