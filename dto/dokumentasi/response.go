package dokumentasi

import (
	"time"

	"github.com/farel129/bapelit-be-sub000/models"
)

type FotoResponse struct {
	ID      uint   `json:"id"`
	FileURL string `json:"file_url"`
}

type PostResponse struct {
	ID           string         `json:"id"`
	UserID       uint           `json:"user_id"`
	UserName     string         `json:"user_name,omitempty"`
	Judul        string         `json:"judul"`
	Deskripsi    string         `json:"deskripsi"`
	Fotos        []FotoResponse `json:"fotos"`
	LikeCount    int64          `json:"like_count"`
	CommentCount int64          `json:"comment_count"`
	LikedByMe    bool           `json:"liked_by_me"`
	CreatedAt    time.Time      `json:"created_at"`
}

func NewPostResponse(d *models.Dokumentasi, likeCount, commentCount int64, likedByMe bool) PostResponse {
	resp := PostResponse{
		ID:           d.ID,
		UserID:       d.UserID,
		Judul:        d.Judul,
		Deskripsi:    d.Deskripsi,
		LikeCount:    likeCount,
		CommentCount: commentCount,
		LikedByMe:    likedByMe,
		CreatedAt:    d.CreatedAt,
		Fotos:        make([]FotoResponse, 0, len(d.Fotos)),
	}
	if d.User != nil {
		resp.UserName = d.User.Name
	}
	for _, f := range d.Fotos {
		resp.Fotos = append(resp.Fotos, FotoResponse{ID: f.ID, FileURL: f.FileURL})
	}
	return resp
}

type CommentResponse struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Nama      string    `json:"nama"`
	Isi       string    `json:"isi"`
	CreatedAt time.Time `json:"created_at"`
}

func NewCommentResponses(comments []models.DokumentasiKomentar) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, k := range comments {
		out = append(out, CommentResponse{
			ID:        k.ID,
			UserID:    k.UserID,
			Nama:      k.Nama,
			Isi:       k.Isi,
			CreatedAt: k.CreatedAt,
		})
	}
	return out
}
