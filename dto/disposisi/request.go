package disposisi

import (
	"strings"

	"github.com/farel129/bapelit-be-sub000/models"
	"github.com/farel129/bapelit-be-sub000/services"
)

// CreateDisposisiRequest - Req kepala menerbitkan disposisi untuk satu surat masuk
type CreateDisposisiRequest struct {
	Sifat                  string `json:"sifat" form:"sifat"`
	Perihal                string `json:"perihal" form:"perihal"`
	DisposisiKepadaJabatan string `json:"disposisi_kepada_jabatan" form:"disposisi_kepada_jabatan"`
	DenganHormatHarap      string `json:"dengan_hormat_harap" form:"dengan_hormat_harap"`
	Catatan                string `json:"catatan" form:"catatan"`
}

func (r *CreateDisposisiRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Perihal) == "" {
		errors["perihal"] = "perihal is required"
	}
	if strings.TrimSpace(r.DenganHormatHarap) == "" {
		errors["dengan_hormat_harap"] = "dengan_hormat_harap is required"
	}
	if strings.TrimSpace(r.DisposisiKepadaJabatan) == "" {
		errors["disposisi_kepada_jabatan"] = "disposisi_kepada_jabatan is required"
	}
	if r.Sifat != "" && !models.SifatSurat(r.Sifat).IsValid() {
		errors["sifat"] = "sifat must be biasa, segera, penting, or rahasia"
	}

	return errors
}

// TeruskanRequest - Req atasan meneruskan disposisi
type TeruskanRequest struct {
	TipePenerusan string `json:"tipe_penerusan" form:"tipe_penerusan"`
	KepadaJabatan string `json:"kepada_jabatan" form:"kepada_jabatan"`
	KepadaUserID  uint   `json:"kepada_user_id" form:"kepada_user_id"`
	Catatan       string `json:"catatan" form:"catatan"`
}

func (r *TeruskanRequest) Validate() map[string]string {
	errors := make(map[string]string)

	tipe := services.TipePenerusan(r.TipePenerusan)
	if !tipe.IsValid() {
		errors["tipe_penerusan"] = "tipe_penerusan must be jabatan or user"
		return errors
	}

	switch tipe {
	case services.TeruskanKeJabatan:
		if strings.TrimSpace(r.KepadaJabatan) == "" {
			errors["kepada_jabatan"] = "kepada_jabatan is required"
		}
	case services.TeruskanKeUser:
		if r.KepadaUserID == 0 {
			errors["kepada_user_id"] = "kepada_user_id is required"
		}
	}

	return errors
}

func (r *TeruskanRequest) ToParams() services.TeruskanParams {
	return services.TeruskanParams{
		Tipe:          services.TipePenerusan(r.TipePenerusan),
		KepadaJabatan: strings.TrimSpace(r.KepadaJabatan),
		KepadaUserID:  r.KepadaUserID,
		Catatan:       strings.TrimSpace(r.Catatan),
	}
}
