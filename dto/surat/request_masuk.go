package surat

import (
	"strings"

	"github.com/farel129/bapelit-be-sub000/models"
)

// CreateSuratMasukRequest - Req pencatatan surat masuk baru
type CreateSuratMasukRequest struct {
	NomorSurat   string `json:"nomor_surat" form:"nomor_surat"`
	AsalInstansi string `json:"asal_instansi" form:"asal_instansi"`
	Perihal      string `json:"perihal" form:"perihal"`
	Sifat        string `json:"sifat" form:"sifat"`
	TanggalSurat string `json:"tanggal_surat" form:"tanggal_surat"` // YYYY-MM-DD
	DiterimaTgl  string `json:"diterima_tanggal" form:"diterima_tanggal"`
	Keterangan   string `json:"keterangan" form:"keterangan"`
}

// UpdateSuratMasukRequest - Req edit metadata surat masuk
type UpdateSuratMasukRequest struct {
	NomorSurat   *string `json:"nomor_surat" form:"nomor_surat"`
	AsalInstansi *string `json:"asal_instansi" form:"asal_instansi"`
	Perihal      *string `json:"perihal" form:"perihal"`
	Sifat        *string `json:"sifat" form:"sifat"`
	TanggalSurat *string `json:"tanggal_surat" form:"tanggal_surat"`
	DiterimaTgl  *string `json:"diterima_tanggal" form:"diterima_tanggal"`
	Keterangan   *string `json:"keterangan" form:"keterangan"`
}

func (r *CreateSuratMasukRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.NomorSurat) == "" {
		errors["nomor_surat"] = "nomor_surat is required"
	}
	if strings.TrimSpace(r.AsalInstansi) == "" {
		errors["asal_instansi"] = "asal_instansi is required"
	}
	if strings.TrimSpace(r.Perihal) == "" {
		errors["perihal"] = "perihal is required"
	}
	if r.Sifat != "" && !models.SifatSurat(r.Sifat).IsValid() {
		errors["sifat"] = "sifat must be biasa, segera, penting, or rahasia"
	}

	return errors
}

func (r *UpdateSuratMasukRequest) Validate() map[string]string {
	errors := make(map[string]string)
	if r.Sifat != nil && *r.Sifat != "" && !models.SifatSurat(*r.Sifat).IsValid() {
		errors["sifat"] = "sifat must be biasa, segera, penting, or rahasia"
	}
	return errors
}
