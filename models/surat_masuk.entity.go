package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SifatSurat string

const (
	SifatBiasa   SifatSurat = "biasa"
	SifatSegera  SifatSurat = "segera"
	SifatPenting SifatSurat = "penting"
	SifatRahasia SifatSurat = "rahasia"
)

func (s SifatSurat) IsValid() bool {
	switch s {
	case SifatBiasa, SifatSegera, SifatPenting, SifatRahasia:
		return true
	default:
		return false
	}
}

type SuratMasuk struct {
	ID           string     `gorm:"type:char(36);primaryKey" json:"id"`
	NomorSurat   string     `gorm:"type:varchar(100);index" json:"nomor_surat"`
	NomorAgenda  string     `gorm:"type:varchar(100);index" json:"nomor_agenda"`
	AsalInstansi string     `gorm:"type:varchar(200);index" json:"asal_instansi"`
	Perihal      string     `gorm:"type:varchar(255)" json:"perihal"`
	Sifat        SifatSurat `gorm:"type:varchar(30);default:'biasa'" json:"sifat"`
	TanggalSurat *time.Time `gorm:"type:date" json:"tanggal_surat"`
	DiterimaTgl  *time.Time `gorm:"type:date;index" json:"diterima_tanggal"`
	Keterangan   string     `gorm:"type:text" json:"keterangan"`

	// Flipped true when a disposition is issued for this letter, back to
	// false when that disposition is deleted.
	SudahDisposisi bool `gorm:"not null;default:false;index" json:"sudah_disposisi"`

	CreatedByID *uint `gorm:"index" json:"created_by_id"`
	CreatedBy   *User `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`

	Lampiran []SuratMasukLampiran `gorm:"foreignKey:SuratMasukID;constraint:OnDelete:CASCADE" json:"lampiran,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SuratMasuk) TableName() string {
	return "surat_masuk"
}

func (s *SuratMasuk) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return
}

// SuratMasukLampiran is one stored scan/photo of an incoming letter.
type SuratMasukLampiran struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SuratMasukID string    `gorm:"type:char(36);not null;index" json:"surat_masuk_id"`
	FilePath     string    `gorm:"type:varchar(255);not null" json:"file_path"`
	FileURL      string    `gorm:"type:varchar(500)" json:"file_url"`
	CreatedAt    time.Time `json:"created_at"`
}

func (SuratMasukLampiran) TableName() string {
	return "surat_masuk_lampiran"
}
