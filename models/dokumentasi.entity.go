package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Dokumentasi is one post in the activity-documentation feed.
type Dokumentasi struct {
	ID        string `gorm:"type:char(36);primaryKey" json:"id"`
	UserID    uint   `gorm:"not null;index" json:"user_id"`
	Judul     string `gorm:"type:varchar(255);not null" json:"judul"`
	Deskripsi string `gorm:"type:text" json:"deskripsi"`

	User     *User                 `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Fotos    []DokumentasiFoto     `gorm:"foreignKey:DokumentasiID;constraint:OnDelete:CASCADE" json:"fotos,omitempty"`
	Likes    []DokumentasiLike     `gorm:"foreignKey:DokumentasiID;constraint:OnDelete:CASCADE" json:"-"`
	Komentar []DokumentasiKomentar `gorm:"foreignKey:DokumentasiID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Dokumentasi) TableName() string {
	return "dokumentasi"
}

func (d *Dokumentasi) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return
}

type DokumentasiFoto struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	DokumentasiID string    `gorm:"type:char(36);not null;index" json:"dokumentasi_id"`
	FilePath      string    `gorm:"type:varchar(255);not null" json:"file_path"`
	FileURL       string    `gorm:"type:varchar(500)" json:"file_url"`
	CreatedAt     time.Time `json:"created_at"`
}

func (DokumentasiFoto) TableName() string {
	return "dokumentasi_foto"
}

// DokumentasiLike is unique per (post, user).
type DokumentasiLike struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	DokumentasiID string    `gorm:"type:char(36);not null;uniqueIndex:idx_dok_like" json:"dokumentasi_id"`
	UserID        uint      `gorm:"not null;uniqueIndex:idx_dok_like" json:"user_id"`
	CreatedAt     time.Time `json:"created_at"`
}

func (DokumentasiLike) TableName() string {
	return "dokumentasi_likes"
}

type DokumentasiKomentar struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	DokumentasiID string    `gorm:"type:char(36);not null;index" json:"dokumentasi_id"`
	UserID        uint      `gorm:"not null" json:"user_id"`
	Nama          string    `gorm:"type:varchar(150)" json:"nama"`
	Isi           string    `gorm:"type:text;not null" json:"isi"`
	CreatedAt     time.Time `json:"created_at"`
}

func (DokumentasiKomentar) TableName() string {
	return "dokumentasi_komentar"
}
