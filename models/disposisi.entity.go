package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatusDisposisi is the closed set of states a disposition (or one of its
// per-actor tracks) can be in. Values are stored and exposed verbatim, so
// they keep the Indonesian wording the frontend displays.
type StatusDisposisi string

const (
	StatusDibuat      StatusDisposisi = "dibuat"
	StatusBelumDibaca StatusDisposisi = "belum dibaca"
	StatusDibaca      StatusDisposisi = "dibaca"
	StatusDiteruskan  StatusDisposisi = "diteruskan"
	StatusDiterima    StatusDisposisi = "diterima"
	StatusDiproses    StatusDisposisi = "diproses"
	StatusSelesai     StatusDisposisi = "selesai"
)

func (s StatusDisposisi) IsValid() bool {
	switch s {
	case StatusDibuat, StatusBelumDibaca, StatusDibaca, StatusDiteruskan,
		StatusDiterima, StatusDiproses, StatusSelesai:
		return true
	default:
		return false
	}
}

// Disposisi routes one incoming letter from the office head to a jabatan and,
// after forwarding, optionally to a named subordinate. The reference fields
// copied from the letter (nomor/asal/tanggal) are immutable once created.
//
// Status terletak di empat kolom: `status` mengikuti posisi dokumen dalam
// rantai routing, sedangkan status_dari_kabid / status_dari_sekretaris /
// status_dari_bawahan melacak rantai baca-terima masing-masing aktor secara
// independen.
type Disposisi struct {
	ID           string `gorm:"type:char(36);primaryKey" json:"id"`
	SuratMasukID string `gorm:"type:char(36);not null;index" json:"surat_masuk_id"`

	// Immutable reference copies from the source letter.
	NomorSurat   string     `gorm:"type:varchar(100)" json:"nomor_surat"`
	AsalInstansi string     `gorm:"type:varchar(200)" json:"asal_instansi"`
	TanggalSurat *time.Time `gorm:"type:date" json:"tanggal_surat"`

	Sifat             SifatSurat `gorm:"type:varchar(30);default:'biasa'" json:"sifat"`
	Perihal           string     `gorm:"type:varchar(255);not null" json:"perihal"`
	DenganHormatHarap string     `gorm:"type:text;not null" json:"dengan_hormat_harap"`
	Catatan           string     `gorm:"type:text" json:"catatan"`

	// Sender identity (the office head who issued the disposition).
	DariUserID  uint   `gorm:"not null;index" json:"dari_user_id"`
	DariNama    string `gorm:"type:varchar(150)" json:"dari_nama"`
	DariJabatan string `gorm:"type:varchar(150)" json:"dari_jabatan"`

	// Current jabatan-level target.
	DisposisiKepadaJabatan string `gorm:"type:varchar(150);not null;index" json:"disposisi_kepada_jabatan"`

	// Set only after a superior forwards to a named subordinate.
	DiteruskanKepadaUserID  *uint  `gorm:"index" json:"diteruskan_kepada_user_id"`
	DiteruskanKepadaNama    string `gorm:"type:varchar(150)" json:"diteruskan_kepada_nama"`
	DiteruskanKepadaJabatan string `gorm:"type:varchar(150)" json:"diteruskan_kepada_jabatan"`

	Status               StatusDisposisi `gorm:"type:varchar(30);not null;index" json:"status"`
	StatusDariKabid      StatusDisposisi `gorm:"type:varchar(30);not null" json:"status_dari_kabid"`
	StatusDariSekretaris StatusDisposisi `gorm:"type:varchar(30);not null" json:"status_dari_sekretaris"`
	StatusDariBawahan    StatusDisposisi `gorm:"type:varchar(30);not null" json:"status_dari_bawahan"`

	SuratMasuk *SuratMasuk `gorm:"foreignKey:SuratMasukID" json:"surat_masuk,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Disposisi) TableName() string {
	return "disposisi"
}

func (d *Disposisi) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return
}

// LogDisposisi is the append-only audit trail: one row per successful state
// transition, never updated, deleted only when the parent disposition goes.
type LogDisposisi struct {
	ID          string          `gorm:"type:char(36);primaryKey" json:"id"`
	DisposisiID string          `gorm:"type:char(36);not null;index" json:"disposisi_id"`
	Status      StatusDisposisi `gorm:"type:varchar(30);not null" json:"status"`

	OlehUserID  uint   `gorm:"not null" json:"oleh_user_id"`
	OlehNama    string `gorm:"type:varchar(150)" json:"oleh_nama"`
	OlehJabatan string `gorm:"type:varchar(150)" json:"oleh_jabatan"`

	KepadaUserID *uint  `json:"kepada_user_id"`
	KepadaNama   string `gorm:"type:varchar(150)" json:"kepada_nama"`

	Catatan   string    `gorm:"type:text" json:"catatan"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (LogDisposisi) TableName() string {
	return "log_disposisi"
}

func (l *LogDisposisi) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return
}
