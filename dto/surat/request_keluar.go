package surat

import (
	"strings"

	"github.com/farel129/bapelit-be-sub000/models"
)

// CreateSuratKeluarRequest - Req pencatatan surat keluar
type CreateSuratKeluarRequest struct {
	NomorSurat     string `json:"nomor_surat" form:"nomor_surat"`
	TujuanInstansi string `json:"tujuan_instansi" form:"tujuan_instansi"`
	Perihal        string `json:"perihal" form:"perihal"`
	Sifat          string `json:"sifat" form:"sifat"`
	TanggalSurat   string `json:"tanggal_surat" form:"tanggal_surat"` // YYYY-MM-DD
	Keterangan     string `json:"keterangan" form:"keterangan"`
}

type UpdateSuratKeluarRequest struct {
	NomorSurat     *string `json:"nomor_surat" form:"nomor_surat"`
	TujuanInstansi *string `json:"tujuan_instansi" form:"tujuan_instansi"`
	Perihal        *string `json:"perihal" form:"perihal"`
	Sifat          *string `json:"sifat" form:"sifat"`
	TanggalSurat   *string `json:"tanggal_surat" form:"tanggal_surat"`
	Keterangan     *string `json:"keterangan" form:"keterangan"`
}

func (r *CreateSuratKeluarRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.NomorSurat) == "" {
		errors["nomor_surat"] = "nomor_surat is required"
	}
	if strings.TrimSpace(r.TujuanInstansi) == "" {
		errors["tujuan_instansi"] = "tujuan_instansi is required"
	}
	if strings.TrimSpace(r.Perihal) == "" {
		errors["perihal"] = "perihal is required"
	}
	if r.Sifat != "" && !models.SifatSurat(r.Sifat).IsValid() {
		errors["sifat"] = "sifat must be biasa, segera, penting, or rahasia"
	}

	return errors
}

func (r *UpdateSuratKeluarRequest) Validate() map[string]string {
	errors := make(map[string]string)
	if r.Sifat != nil && *r.Sifat != "" && !models.SifatSurat(*r.Sifat).IsValid() {
		errors["sifat"] = "sifat must be biasa, segera, penting, or rahasia"
	}
	return errors
}

func (r *CreateSuratKeluarRequest) ToModel(userID uint) models.SuratKeluar {
	sifat := models.SifatBiasa
	if r.Sifat != "" {
		sifat = models.SifatSurat(r.Sifat)
	}

	return models.SuratKeluar{
		NomorSurat:     strings.TrimSpace(r.NomorSurat),
		TujuanInstansi: strings.TrimSpace(r.TujuanInstansi),
		Perihal:        strings.TrimSpace(r.Perihal),
		Sifat:          sifat,
		TanggalSurat:   parseDate(r.TanggalSurat),
		Keterangan:     strings.TrimSpace(r.Keterangan),
		CreatedByID:    &userID,
	}
}

func ApplyUpdateKeluar(s *models.SuratKeluar, req *UpdateSuratKeluarRequest) {
	if s == nil || req == nil {
		return
	}

	if req.NomorSurat != nil {
		s.NomorSurat = strings.TrimSpace(*req.NomorSurat)
	}
	if req.TujuanInstansi != nil {
		s.TujuanInstansi = strings.TrimSpace(*req.TujuanInstansi)
	}
	if req.Perihal != nil {
		s.Perihal = strings.TrimSpace(*req.Perihal)
	}
	if req.Sifat != nil && *req.Sifat != "" {
		s.Sifat = models.SifatSurat(*req.Sifat)
	}
	if req.Keterangan != nil {
		s.Keterangan = strings.TrimSpace(*req.Keterangan)
	}
	if req.TanggalSurat != nil {
		if t := parseDate(*req.TanggalSurat); t != nil {
			s.TanggalSurat = t
		}
	}
}
