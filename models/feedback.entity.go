package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeedbackDisposisi is a follow-up report filed by the staff member who
// handled a disposition, with optional file attachments.
type FeedbackDisposisi struct {
	ID          string `gorm:"type:char(36);primaryKey" json:"id"`
	DisposisiID string `gorm:"type:char(36);not null;index" json:"disposisi_id"`
	UserID      uint   `gorm:"not null;index" json:"user_id"`
	Nama        string `gorm:"type:varchar(150)" json:"nama"`
	Jabatan     string `gorm:"type:varchar(150)" json:"jabatan"`
	Isi         string `gorm:"type:text;not null" json:"isi"`

	Files []FeedbackFile `gorm:"foreignKey:FeedbackID;constraint:OnDelete:CASCADE" json:"files,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (FeedbackDisposisi) TableName() string {
	return "feedback_disposisi"
}

func (f *FeedbackDisposisi) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return
}

type FeedbackFile struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FeedbackID string    `gorm:"type:char(36);not null;index" json:"feedback_id"`
	FilePath   string    `gorm:"type:varchar(255);not null" json:"file_path"`
	FileURL    string    `gorm:"type:varchar(500)" json:"file_url"`
	CreatedAt  time.Time `json:"created_at"`
}

func (FeedbackFile) TableName() string {
	return "feedback_files"
}
