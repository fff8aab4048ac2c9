package events

import (
	"github.com/farel129/bapelit-be-sub000/models"
)

// DisposisiEventType mendefinisikan jenis event siklus hidup disposisi
type DisposisiEventType string

const (
	// DisposisiCreated dipublikasikan saat kepala menerbitkan disposisi baru
	DisposisiCreated DisposisiEventType = "DisposisiCreated"

	// DisposisiDiteruskan dipublikasikan saat atasan meneruskan disposisi
	// ke jabatan lain atau ke staf tertentu
	DisposisiDiteruskan DisposisiEventType = "DisposisiDiteruskan"
)

// DisposisiEvent adalah payload untuk event disposisi
type DisposisiEvent struct {
	Type      DisposisiEventType
	Disposisi models.Disposisi

	// Email penerima berikutnya; kosong jika penerusan hanya ke jabatan
	// dan penerimanya belum diketahui per orang.
	TargetEmail string
}

// DisposisiEventBus menampung event untuk notifier. Buffered agar handler
// API tidak pernah menunggu pengiriman email.
var DisposisiEventBus = make(chan DisposisiEvent, 100)
