package routes

import (
	"github.com/farel129/bapelit-be-sub000/handlers"
	"github.com/farel129/bapelit-be-sub000/middleware"
	"github.com/farel129/bapelit-be-sub000/models"

	"github.com/gofiber/fiber/v2"
)

func Register(app *fiber.App) {
	api := app.Group("/api/v1")

	// Auth
	api.Post("/auth/login", handlers.Login)
	api.Post("/auth/refresh", handlers.RefreshToken)
	api.Post("/auth/forgot-password", handlers.RequestPasswordReset)
	api.Post("/auth/reset-password", handlers.ResetPassword)

	// Buku tamu: check-in dan pencarian instansi terbuka untuk tamu,
	// sisanya khusus pegawai.
	api.Post("/buku-tamu", handlers.CheckInBukuTamu)
	api.Get("/buku-tamu/places", handlers.SearchPlaces)

	authed := api.Group("", middleware.RequireAuth())

	// Profil sendiri
	authed.Get("/profile", handlers.GetMyProfile)
	authed.Put("/profile", handlers.UpdateMyProfile)
	authed.Put("/profile/password", handlers.ChangePassword)

	// ----- ADMIN USERS CRUD -----
	admin := authed.Group("/admin", middleware.RequireAdmin())
	admin.Post("/users", handlers.AdminCreateUser)
	admin.Get("/users", handlers.AdminListUsers) // ?page=&limit=&role=&bidang=&q=
	admin.Get("/users/:id", handlers.AdminGetUser)
	admin.Put("/users/:id", handlers.AdminUpdateUser)
	admin.Delete("/users/:id", handlers.AdminDeleteUser)

	// Surat masuk
	authed.Post("/surat-masuk", handlers.CreateSuratMasuk)
	authed.Get("/surat-masuk", handlers.ListSuratMasuk)
	authed.Get("/surat-masuk/:id", handlers.GetSuratMasuk)
	authed.Put("/surat-masuk/:id", handlers.UpdateSuratMasuk)
	authed.Delete("/surat-masuk/:id", handlers.DeleteSuratMasuk)

	// Surat keluar
	authed.Post("/surat-keluar", handlers.CreateSuratKeluar)
	authed.Get("/surat-keluar", handlers.ListSuratKeluar)
	authed.Get("/surat-keluar/:id", handlers.GetSuratKeluar)
	authed.Put("/surat-keluar/:id", handlers.UpdateSuratKeluar)
	authed.Delete("/surat-keluar/:id", handlers.DeleteSuratKeluar)

	// ----- DISPOSISI -----
	disposisi := authed.Group("/disposisi")

	// Kepala menerbitkan dan menghapus; daftar lengkap juga untuk admin.
	disposisi.Post("/:suratId", middleware.RequireKepala(), handlers.CreateDisposisi)
	disposisi.Get("/kepala", middleware.RequireKepala(), handlers.ListDisposisiKepala)
	disposisi.Delete("/kepala/:id", middleware.RequireKepala(), handlers.DeleteDisposisi)

	// Daftar per peran
	disposisi.Get("/atasan", middleware.RequireAtasan(), handlers.ListDisposisiAtasan)
	disposisi.Get("/bawahan", middleware.RequireStaf(), handlers.ListDisposisiBawahan)

	disposisi.Get("/detail/:id", handlers.GetDisposisi)
	disposisi.Get("/logs/:disposisiId", handlers.GetDisposisiLogs)
	disposisi.Get("/download-pdf/:id", handlers.DownloadDisposisiPDF)

	// Jalur status kabid / sekretaris
	disposisi.Put("/kabid/baca/:id", middleware.RequireRole(models.RoleKabid), handlers.KabidBacaDisposisi)
	disposisi.Put("/kabid/terima/:id", middleware.RequireRole(models.RoleKabid), handlers.KabidTerimaDisposisi)
	disposisi.Put("/sekretaris/baca/:id", middleware.RequireRole(models.RoleSekretaris), handlers.SekretarisBacaDisposisi)
	disposisi.Put("/sekretaris/terima/:id", middleware.RequireRole(models.RoleSekretaris), handlers.SekretarisTerimaDisposisi)

	// Penerusan oleh atasan
	disposisi.Post("/atasan/:role/teruskan/:disposisiId", middleware.RequireAtasan(), handlers.TeruskanDisposisi)

	// Jalur status bawahan
	disposisi.Put("/bawahan/baca/:disposisiId", middleware.RequireStaf(), handlers.BawahanBacaDisposisi)
	disposisi.Put("/bawahan/terima/:disposisiId", middleware.RequireStaf(), handlers.BawahanTerimaDisposisi)
	disposisi.Put("/bawahan/proses/:disposisiId", middleware.RequireStaf(), handlers.BawahanProsesDisposisi)
	disposisi.Put("/bawahan/selesai/:disposisiId", middleware.RequireStaf(), handlers.BawahanSelesaiDisposisi)

	// Feedback staf atas disposisi yang dikerjakannya
	disposisi.Post("/feedback/:disposisiId", middleware.RequireStaf(), handlers.CreateFeedback)
	disposisi.Get("/feedback/:disposisiId", handlers.ListFeedback)
	disposisi.Delete("/feedback/:feedbackId", handlers.DeleteFeedback)

	// Buku tamu (sisi pegawai)
	authed.Get("/buku-tamu", handlers.ListBukuTamu)
	authed.Get("/buku-tamu/:id", handlers.GetBukuTamu)
	authed.Delete("/buku-tamu/:id", handlers.DeleteBukuTamu)

	// Dokumentasi kegiatan
	authed.Post("/dokumentasi", handlers.CreateDokumentasi)
	authed.Get("/dokumentasi", handlers.ListDokumentasi)
	authed.Get("/dokumentasi/:id", handlers.GetDokumentasi)
	authed.Post("/dokumentasi/:id/like", handlers.LikeDokumentasi)
	authed.Post("/dokumentasi/:id/komentar", handlers.CommentDokumentasi)
	authed.Delete("/dokumentasi/:id", handlers.DeleteDokumentasi)

	// Jadwal acara
	authed.Post("/jadwal", handlers.CreateJadwal)
	authed.Get("/jadwal", handlers.ListJadwal)
	authed.Get("/jadwal/:id", handlers.GetJadwal)
	authed.Put("/jadwal/:id", handlers.UpdateJadwal)
	authed.Delete("/jadwal/:id", handlers.DeleteJadwal)
}
