package main

import (
	"log"

	"github.com/farel129/bapelit-be-sub000/config"
	"github.com/farel129/bapelit-be-sub000/models"
)

func main() {
	db := config.ConnectDB()
	if err := db.AutoMigrate(
		&models.User{},
		&models.PasswordResetToken{},
		&models.SuratMasuk{},
		&models.SuratMasukLampiran{},
		&models.SuratKeluar{},
		&models.Disposisi{},
		&models.LogDisposisi{},
		&models.FeedbackDisposisi{},
		&models.FeedbackFile{},
		&models.BukuTamu{},
		&models.Dokumentasi{},
		&models.DokumentasiFoto{},
		&models.DokumentasiLike{},
		&models.DokumentasiKomentar{},
		&models.JadwalAcara{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("✅ Migration completed")
}
