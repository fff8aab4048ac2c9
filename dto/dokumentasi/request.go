package dokumentasi

import (
	"strings"

	"github.com/farel129/bapelit-be-sub000/models"
)

type CreatePostRequest struct {
	Judul     string `json:"judul" form:"judul"`
	Deskripsi string `json:"deskripsi" form:"deskripsi"`
}

func (r *CreatePostRequest) Validate() map[string]string {
	errors := make(map[string]string)
	if strings.TrimSpace(r.Judul) == "" {
		errors["judul"] = "judul is required"
	}
	return errors
}

func (r *CreatePostRequest) ToModel(userID uint) models.Dokumentasi {
	return models.Dokumentasi{
		UserID:    userID,
		Judul:     strings.TrimSpace(r.Judul),
		Deskripsi: strings.TrimSpace(r.Deskripsi),
	}
}

type CommentRequest struct {
	Isi string `json:"isi" form:"isi"`
}

func (r *CommentRequest) Validate() map[string]string {
	errors := make(map[string]string)
	if strings.TrimSpace(r.Isi) == "" {
		errors["isi"] = "isi is required"
	}
	return errors
}
