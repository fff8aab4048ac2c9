package bukutamu

import (
	"strings"

	"github.com/farel129/bapelit-be-sub000/models"
)

// CheckInRequest - form buku tamu yang diisi tamu sendiri (tanpa login)
type CheckInRequest struct {
	Nama      string `json:"nama" form:"nama"`
	Instansi  string `json:"instansi" form:"instansi"`
	NoHP      string `json:"no_hp" form:"no_hp"`
	Keperluan string `json:"keperluan" form:"keperluan"`
	Ditemui   string `json:"ditemui" form:"ditemui"`
}

func (r *CheckInRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Nama) == "" {
		errors["nama"] = "nama is required"
	}
	if strings.TrimSpace(r.Keperluan) == "" {
		errors["keperluan"] = "keperluan is required"
	}

	return errors
}

func (r *CheckInRequest) ToModel() models.BukuTamu {
	return models.BukuTamu{
		Nama:      strings.TrimSpace(r.Nama),
		Instansi:  strings.TrimSpace(r.Instansi),
		NoHP:      strings.TrimSpace(r.NoHP),
		Keperluan: strings.TrimSpace(r.Keperluan),
		Ditemui:   strings.TrimSpace(r.Ditemui),
	}
}
