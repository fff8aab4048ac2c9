package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BukuTamu struct {
	ID        string `gorm:"type:char(36);primaryKey" json:"id"`
	Nama      string `gorm:"type:varchar(150);not null" json:"nama"`
	Instansi  string `gorm:"type:varchar(200)" json:"instansi"`
	NoHP      string `gorm:"type:varchar(30)" json:"no_hp"`
	Keperluan string `gorm:"type:text;not null" json:"keperluan"`
	Ditemui   string `gorm:"type:varchar(150)" json:"ditemui"`
	FotoPath  string `gorm:"type:varchar(255)" json:"foto_path"`
	FotoURL   string `gorm:"type:varchar(500)" json:"foto_url"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (BukuTamu) TableName() string {
	return "buku_tamu"
}

func (b *BukuTamu) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return
}
