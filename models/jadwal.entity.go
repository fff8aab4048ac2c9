package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JadwalAcara struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	Judul     string    `gorm:"type:varchar(255);not null" json:"judul"`
	Deskripsi string    `gorm:"type:text" json:"deskripsi"`
	Lokasi    string    `gorm:"type:varchar(255)" json:"lokasi"`
	Mulai     time.Time `gorm:"not null;index" json:"mulai"`
	Selesai   time.Time `gorm:"not null" json:"selesai"`

	CreatedByID *uint `gorm:"index" json:"created_by_id"`
	CreatedBy   *User `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (JadwalAcara) TableName() string {
	return "jadwal_acara"
}

func (j *JadwalAcara) BeforeCreate(tx *gorm.DB) (err error) {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return
}
