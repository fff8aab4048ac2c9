package jadwal

import (
	"strings"
	"time"

	"github.com/farel129/bapelit-be-sub000/models"
)

type CreateJadwalRequest struct {
	Judul     string `json:"judul" form:"judul"`
	Deskripsi string `json:"deskripsi" form:"deskripsi"`
	Lokasi    string `json:"lokasi" form:"lokasi"`
	Mulai     string `json:"mulai" form:"mulai"`     // RFC3339
	Selesai   string `json:"selesai" form:"selesai"` // RFC3339
}

type UpdateJadwalRequest struct {
	Judul     *string `json:"judul" form:"judul"`
	Deskripsi *string `json:"deskripsi" form:"deskripsi"`
	Lokasi    *string `json:"lokasi" form:"lokasi"`
	Mulai     *string `json:"mulai" form:"mulai"`
	Selesai   *string `json:"selesai" form:"selesai"`
}

func (r *CreateJadwalRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Judul) == "" {
		errors["judul"] = "judul is required"
	}

	mulai, errMulai := time.Parse(time.RFC3339, r.Mulai)
	if errMulai != nil {
		errors["mulai"] = "mulai must be an RFC3339 timestamp"
	}
	selesai, errSelesai := time.Parse(time.RFC3339, r.Selesai)
	if errSelesai != nil {
		errors["selesai"] = "selesai must be an RFC3339 timestamp"
	}
	if errMulai == nil && errSelesai == nil && !selesai.After(mulai) {
		errors["selesai"] = "selesai must be after mulai"
	}

	return errors
}

func (r *UpdateJadwalRequest) Validate() map[string]string {
	errors := make(map[string]string)
	if r.Mulai != nil {
		if _, err := time.Parse(time.RFC3339, *r.Mulai); err != nil {
			errors["mulai"] = "mulai must be an RFC3339 timestamp"
		}
	}
	if r.Selesai != nil {
		if _, err := time.Parse(time.RFC3339, *r.Selesai); err != nil {
			errors["selesai"] = "selesai must be an RFC3339 timestamp"
		}
	}
	return errors
}

func (r *CreateJadwalRequest) ToModel(userID uint) models.JadwalAcara {
	mulai, _ := time.Parse(time.RFC3339, r.Mulai)
	selesai, _ := time.Parse(time.RFC3339, r.Selesai)

	return models.JadwalAcara{
		Judul:       strings.TrimSpace(r.Judul),
		Deskripsi:   strings.TrimSpace(r.Deskripsi),
		Lokasi:      strings.TrimSpace(r.Lokasi),
		Mulai:       mulai,
		Selesai:     selesai,
		CreatedByID: &userID,
	}
}

func ApplyUpdate(j *models.JadwalAcara, req *UpdateJadwalRequest) {
	if j == nil || req == nil {
		return
	}

	if req.Judul != nil {
		j.Judul = strings.TrimSpace(*req.Judul)
	}
	if req.Deskripsi != nil {
		j.Deskripsi = strings.TrimSpace(*req.Deskripsi)
	}
	if req.Lokasi != nil {
		j.Lokasi = strings.TrimSpace(*req.Lokasi)
	}
	if req.Mulai != nil {
		if t, err := time.Parse(time.RFC3339, *req.Mulai); err == nil {
			j.Mulai = t
		}
	}
	if req.Selesai != nil {
		if t, err := time.Parse(time.RFC3339, *req.Selesai); err == nil {
			j.Selesai = t
		}
	}
}
