package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SuratKeluar struct {
	ID             string     `gorm:"type:char(36);primaryKey" json:"id"`
	NomorSurat     string     `gorm:"type:varchar(100);index" json:"nomor_surat"`
	NomorAgenda    string     `gorm:"type:varchar(100);index" json:"nomor_agenda"`
	TujuanInstansi string     `gorm:"type:varchar(200);index" json:"tujuan_instansi"`
	Perihal        string     `gorm:"type:varchar(255)" json:"perihal"`
	Sifat          SifatSurat `gorm:"type:varchar(30);default:'biasa'" json:"sifat"`
	TanggalSurat   *time.Time `gorm:"type:date" json:"tanggal_surat"`
	Keterangan     string     `gorm:"type:text" json:"keterangan"`
	FilePath       string     `gorm:"type:varchar(255)" json:"file_path"`
	FileURL        string     `gorm:"type:varchar(500)" json:"file_url"`

	CreatedByID *uint `gorm:"index" json:"created_by_id"`
	CreatedBy   *User `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SuratKeluar) TableName() string {
	return "surat_keluar"
}

func (s *SuratKeluar) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return
}
