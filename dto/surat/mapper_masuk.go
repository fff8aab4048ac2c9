package surat

import (
	"strings"
	"time"

	"github.com/farel129/bapelit-be-sub000/models"
)

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t
	}
	return nil
}

func (r *CreateSuratMasukRequest) ToModel(userID uint) models.SuratMasuk {
	sifat := models.SifatBiasa
	if r.Sifat != "" {
		sifat = models.SifatSurat(r.Sifat)
	}

	return models.SuratMasuk{
		NomorSurat:   strings.TrimSpace(r.NomorSurat),
		AsalInstansi: strings.TrimSpace(r.AsalInstansi),
		Perihal:      strings.TrimSpace(r.Perihal),
		Sifat:        sifat,
		TanggalSurat: parseDate(r.TanggalSurat),
		DiterimaTgl:  parseDate(r.DiterimaTgl),
		Keterangan:   strings.TrimSpace(r.Keterangan),
		CreatedByID:  &userID,
	}
}

func ApplyUpdateMasuk(s *models.SuratMasuk, req *UpdateSuratMasukRequest) {
	if s == nil || req == nil {
		return
	}

	if req.NomorSurat != nil {
		s.NomorSurat = strings.TrimSpace(*req.NomorSurat)
	}
	if req.AsalInstansi != nil {
		s.AsalInstansi = strings.TrimSpace(*req.AsalInstansi)
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
	if req.DiterimaTgl != nil {
		if t := parseDate(*req.DiterimaTgl); t != nil {
			s.DiterimaTgl = t
		}
	}
}
