package services

import (
	"testing"

	"github.com/farel129/bapelit-be-sub000/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.SuratMasuk{},
		&models.Disposisi{},
		&models.LogDisposisi{},
		&models.FeedbackDisposisi{},
		&models.FeedbackFile{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string, role models.Role, jabatan, bidang string) *models.User {
	t.Helper()

	u := models.User{
		Name:         name,
		Email:        name + "@bapelit.go.id",
		PasswordHash: "x",
		Role:         role,
		Jabatan:      jabatan,
		Bidang:       bidang,
	}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func seedSurat(t *testing.T, db *gorm.DB) *models.SuratMasuk {
	t.Helper()

	s := models.SuratMasuk{
		NomorSurat:   "005/123/2026",
		AsalInstansi: "Dinas Kominfo",
		Perihal:      "Undangan rapat koordinasi",
		Sifat:        models.SifatBiasa,
	}
	require.NoError(t, db.Create(&s).Error)
	return &s
}

func countLogs(t *testing.T, db *gorm.DB, disposisiID string) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(&models.LogDisposisi{}).
		Where("disposisi_id = ?", disposisiID).
		Count(&n).Error)
	return n
}

func createDisposisi(t *testing.T, db *gorm.DB, kepala *models.User, surat *models.SuratMasuk, jabatan string) *models.Disposisi {
	t.Helper()

	d := models.Disposisi{
		Sifat:                  models.SifatSegera,
		Perihal:                surat.Perihal,
		DenganHormatHarap:      "Hadiri dan laporkan hasilnya",
		DisposisiKepadaJabatan: jabatan,
	}
	require.NoError(t, NewDisposisiService(db).Create(kepala, surat, &d))
	return &d
}

func TestCreateFlagsSuratAndWritesOneLog(t *testing.T) {
	db := newTestDB(t)
	kepala := seedUser(t, db, "kepala", models.RoleKepala, "Kepala Badan", "")
	surat := seedSurat(t, db)

	d := createDisposisi(t, db, kepala, surat, "Kepala Bidang Litbang")

	assert.Equal(t, models.StatusBelumDibaca, d.Status)
	assert.Equal(t, models.StatusBelumDibaca, d.StatusDariKabid)
	assert.Equal(t, models.StatusBelumDibaca, d.StatusDariSekretaris)
	assert.Equal(t, models.StatusBelumDibaca, d.StatusDariBawahan)
	assert.Equal(t, surat.NomorSurat, d.NomorSurat)
	assert.Equal(t, kepala.ID, d.DariUserID)

	var reloaded models.SuratMasuk
	require.NoError(t, db.First(&reloaded, "id = ?", surat.ID).Error)
	assert.True(t, reloaded.SudahDisposisi)

	var logs []models.LogDisposisi
	require.NoError(t, db.Where("disposisi_id = ?", d.ID).Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, models.StatusDibuat, logs[0].Status)
	assert.Equal(t, kepala.ID, logs[0].OlehUserID)
}

func TestCreateRejectsSecondDisposisi(t *testing.T) {
	db := newTestDB(t)
	kepala := seedUser(t, db, "kepala", models.RoleKepala, "Kepala Badan", "")
	surat := seedSurat(t, db)

	createDisposisi(t, db, kepala, surat, "Sekretaris")

	second := models.Disposisi{
		Perihal:                surat.Perihal,
		DenganHormatHarap:      "Tindak lanjuti",
		DisposisiKepadaJabatan: "Sekretaris",
	}
	var fresh models.SuratMasuk
	require.NoError(t, db.First(&fresh, "id = ?", surat.ID).Error)
	assert.ErrorIs(t, NewDisposisiService(db).Create(kepala, &fresh, &second), ErrConflict)
}

func TestCreateGuardCatchesStaleSurat(t *testing.T) {
	// Caller yang masih memegang salinan lama (flag false) tetap tertolak
	// oleh conditional update di dalam transaksi.
	db := newTestDB(t)
	kepala := seedUser(t, db, "kepala", models.RoleKepala, "Kepala Badan", "")
	surat := seedSurat(t, db)
	stale := *surat

	createDisposisi(t, db, kepala, surat, "Sekretaris")

	second := models.Disposisi{
		Perihal:                surat.Perihal,
		DenganHormatHarap:      "Tindak lanjuti",
		DisposisiKepadaJabatan: "Sekretaris",
	}
	err := NewDisposisiService(db).Create(kepala, &stale, &second)
	assert.ErrorIs(t, err, ErrConflict)

	// Rollback: disposisi kedua tidak boleh tersimpan.
	var n int64
	require.NoError(t, db.Model(&models.Disposisi{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestAdvanceTrackWritesExactlyOneLog(t *testing.T) {
	db := newTestDB(t)
	kepala := seedUser(t, db, "kepala", models.RoleKepala, "Kepala Badan", "")
	kabid := seedUser(t, db, "kabid", models.RoleKabid, "Kepala Bidang Litbang", "Litbang")
	surat := seedSurat(t, db)
	d := createDisposisi(t, db, kepala, surat, kabid.Jabatan)

	svc := NewDisposisiService(db)
	updated, outcome, err := svc.AdvanceTrack(kabid, TrackKabid, d.ID, AksiBaca)
	require.NoError(t, err)
	assert.True(t, outcome.Changed)
	assert.Equal(t, models.StatusDibaca, updated.StatusDariKabid)

	assert.Equal(t, int64(2), countLogs(t, db, d.ID)) // dibuat + dibaca

	var entry models.LogDisposisi
	require.NoError(t, db.Where("disposisi_id = ? AND status = ?", d.ID, models.StatusDibaca).
		First(&entry).Error)
	assert.Equal(t, kabid.ID, entry.OlehUserID)
}

func TestAdvanceTrackRefusedWritesNoLog(t *testing.T) {
	db := newTestDB(t)
	kepala := seedUser(t, db, "kepala", models.RoleKepala, "Kepala Badan", "")
	kabid := seedUser(t, db, "kabid", models.RoleKabid, "Kepala Bidang Litbang", "Litbang")
	surat := seedSurat(t, db)
	d := createDisposisi(t, db, kepala, surat, kabid.Jabatan)

	// terima langsung dari belum dibaca tidak berlaku
	updated, outcome, err := NewDisposisiService(db).AdvanceTrack(kabid, TrackKabid, d.ID, AksiTerima)
	require.NoError(t, err)
	assert.False(t, outcome.Changed)
	assert.NotEmpty(t, outcome.Message)
	assert.Equal(t, models.StatusBelumDibaca, updated.StatusDariKabid)

	assert.Equal(t, int64(1), countLogs(t, db, d.ID)) // hanya dibuat
}

func TestAdvanceTrackWrongJabatanForbidden(t *testing.T) {
	db := newTestDB(t)
	kepala := seedUser(t, db, "kepala", models.RoleKepala, "Kepala Badan", "")
	kabid := seedUser(t, db, "kabid", models.RoleKabid, "Kepala Bidang Litbang", "Litbang")
	lain := seedUser(t, db, "kabid-lain", models.RoleKabid, "Kepala Bidang Anggaran", "Anggaran")
	surat := seedSurat(t, db)
	d := createDisposisi(t, db, kepala, surat, kabid.Jabatan)

	_, _, err := NewDisposisiService(db).AdvanceTrack(lain, TrackKabid, d.ID, AksiBaca)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, int64(1), countLogs(t, db, d.ID))
}

func TestAdvanceTrackWrongStafForbidden(t *testing.T) {
	db := newTestDB(t)
	kepala := seedUser(t, db, "kepala", models.RoleKepala, "Kepala Badan", "")
	kabid := seedUser(t, db, "kabid", models.RoleKabid, "Kepala Bidang Litbang", "Litbang")
	staf := seedUser(t, db, "staf", models.RoleStaf, "Analis Perencanaan", "Litbang")
	penyusup := seedUser(t, db, "staf-lain", models.RoleStaf, "Analis Data", "Litbang")
	surat := seedSurat(t, db)
	d := createDisposisi(t, db, kepala, surat, kabid.Jabatan)

	svc := NewDisposisiService(db)
	_, _, err := svc.Teruskan(kabid, d.ID, TeruskanParams{Tipe: TeruskanKeUser, KepadaUserID: staf.ID})
	require.NoError(t, err)

	// Staf lain yang bukan penerima penerusan ditolak.
	_, _, err = svc.AdvanceTrack(penyusup, TrackBawahan, d.ID, AksiBaca)
	assert.ErrorIs(t, err, ErrForbidden)

	// Penerima yang benar lolos.
	_, outcome, err := svc.AdvanceTrack(staf, TrackBawahan, d.ID, AksiBaca)
	require.NoError(t, err)
	assert.True(t, outcome.Changed)
}

func TestTeruskanKeUserUpdatesRouting(t *testing.T) {
	db := newTestDB(t)
	kepala := seedUser(t, db, "kepala", models.RoleKepala, "Kepala Badan", "")
	kabid := seedUser(t, db, "kabid", models.RoleKabid, "Kepala Bidang Litbang", "Litbang")
	staf := seedUser(t, db, "staf", models.RoleStaf, "Analis Perencanaan", "Litbang")
	surat := seedSurat(t, db)
	d := createDisposisi(t, db, kepala, surat, kabid.Jabatan)

	forwarded, target, err := NewDisposisiService(db).Teruskan(kabid, d.ID, TeruskanParams{
		Tipe:         TeruskanKeUser,
		KepadaUserID: staf.ID,
		Catatan:      "mohon ditindaklanjuti",
	})
	require.NoError(t, err)
	require.NotNil(t, target)
	assert.Equal(t, staf.ID, target.ID)

	assert.Equal(t, models.StatusDiteruskan, forwarded.Status)
	assert.Equal(t, models.StatusDiteruskan, forwarded.StatusDariKabid)
	assert.Equal(t, models.StatusBelumDibaca, forwarded.StatusDariBawahan)
	require.NotNil(t, forwarded.DiteruskanKepadaUserID)
	assert.Equal(t, staf.ID, *forwarded.DiteruskanKepadaUserID)
	assert.Equal(t, staf.Name, forwarded.DiteruskanKepadaNama)

	var entry models.LogDisposisi
	require.NoError(t, db.Where("disposisi_id = ? AND status = ?", d.ID, models.StatusDiteruskan).
		First(&entry).Error)
	require.NotNil(t, entry.KepadaUserID)
	assert.Equal(t, staf.ID, *entry.KepadaUserID)
	assert.Equal(t, "mohon ditindaklanjuti", entry.Catatan)
}

func TestTeruskanRejections(t *testing.T) {
	db := newTestDB(t)
	kepala := seedUser(t, db, "kepala", models.RoleKepala, "Kepala Badan", "")
	kabid := seedUser(t, db, "kabid", models.RoleKabid, "Kepala Bidang Litbang", "Litbang")
	sekretarisLain := seedUser(t, db, "sek", models.RoleSekretaris, "Sekretaris", "")
	stafLintasBidang := seedUser(t, db, "staf-anggaran", models.RoleStaf, "Analis Anggaran", "Anggaran")
	surat := seedSurat(t, db)
	d := createDisposisi(t, db, kepala, surat, kabid.Jabatan)

	svc := NewDisposisiService(db)

	// Bukan pemegang jabatan tujuan.
	_, _, err := svc.Teruskan(sekretarisLain, d.ID, TeruskanParams{Tipe: TeruskanKeJabatan, KepadaJabatan: "Kepala Bidang Anggaran"})
	assert.ErrorIs(t, err, ErrForbidden)

	// Mode jabatan khusus sekretaris.
	_, _, err = svc.Teruskan(kabid, d.ID, TeruskanParams{Tipe: TeruskanKeJabatan, KepadaJabatan: "Sekretaris"})
	assert.ErrorIs(t, err, ErrForbidden)

	// Kabid tidak boleh menunjuk staf bidang lain.
	_, _, err = svc.Teruskan(kabid, d.ID, TeruskanParams{Tipe: TeruskanKeUser, KepadaUserID: stafLintasBidang.ID})
	assert.ErrorIs(t, err, ErrForbidden)

	// Target harus staf.
	_, _, err = svc.Teruskan(kabid, d.ID, TeruskanParams{Tipe: TeruskanKeUser, KepadaUserID: sekretarisLain.ID})
	assert.ErrorIs(t, err, ErrValidation)

	// Tidak ada penolakan yang meninggalkan log penerusan.
	assert.Equal(t, int64(1), countLogs(t, db, d.ID))
}

func TestDeleteCascadesAndResetsFlag(t *testing.T) {
	db := newTestDB(t)
	kepala := seedUser(t, db, "kepala", models.RoleKepala, "Kepala Badan", "")
	kabid := seedUser(t, db, "kabid", models.RoleKabid, "Kepala Bidang Litbang", "Litbang")
	staf := seedUser(t, db, "staf", models.RoleStaf, "Analis Perencanaan", "Litbang")
	surat := seedSurat(t, db)
	d := createDisposisi(t, db, kepala, surat, kabid.Jabatan)

	svc := NewDisposisiService(db)
	_, _, err := svc.Teruskan(kabid, d.ID, TeruskanParams{Tipe: TeruskanKeUser, KepadaUserID: staf.ID})
	require.NoError(t, err)

	fb := models.FeedbackDisposisi{
		DisposisiID: d.ID,
		UserID:      staf.ID,
		Nama:        staf.Name,
		Isi:         "sudah dikerjakan",
		Files:       []models.FeedbackFile{{FilePath: "feedback/2026/laporan.pdf"}},
	}
	require.NoError(t, db.Create(&fb).Error)

	keys, err := svc.FeedbackFileKeys(d.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"feedback/2026/laporan.pdf"}, keys)

	loaded, err := svc.Get(d.ID)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(loaded))

	for _, check := range []struct {
		name  string
		model interface{}
	}{
		{"feedback_files", &models.FeedbackFile{}},
		{"feedback_disposisi", &models.FeedbackDisposisi{}},
		{"log_disposisi", &models.LogDisposisi{}},
		{"disposisi", &models.Disposisi{}},
	} {
		var n int64
		require.NoError(t, db.Model(check.model).Count(&n).Error)
		assert.Zero(t, n, "%s harus kosong setelah delete", check.name)
	}

	var reloaded models.SuratMasuk
	require.NoError(t, db.First(&reloaded, "id = ?", surat.ID).Error)
	assert.False(t, reloaded.SudahDisposisi)
}
