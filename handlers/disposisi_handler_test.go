package handlers

import (
	"testing"

	"github.com/farel129/bapelit-be-sub000/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	return db
}

func addUser(t *testing.T, db *gorm.DB, email, jabatan string) *models.User {
	t.Helper()

	u := models.User{
		Name:         email,
		Email:        email,
		PasswordHash: "x",
		Role:         models.RoleKabid,
		Jabatan:      jabatan,
	}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func TestDisposisiEventEmailsNamedTarget(t *testing.T) {
	db := newUserDB(t)
	target := addUser(t, db, "budi@bapelit.go.id", "Analis Perencanaan")
	addUser(t, db, "lain@bapelit.go.id", "Analis Perencanaan")

	d := &models.Disposisi{DisposisiKepadaJabatan: "Analis Perencanaan"}

	// Target bernama menang atas pencarian per jabatan.
	emails := disposisiEventEmails(db, d, target)
	assert.Equal(t, []string{"budi@bapelit.go.id"}, emails)
}

func TestDisposisiEventEmailsJabatanHolders(t *testing.T) {
	db := newUserDB(t)
	addUser(t, db, "kabid1@bapelit.go.id", "Kepala Bidang Litbang")
	addUser(t, db, "kabid2@bapelit.go.id", "Kepala Bidang Litbang")
	addUser(t, db, "anggaran@bapelit.go.id", "Kepala Bidang Anggaran")

	d := &models.Disposisi{DisposisiKepadaJabatan: "Kepala Bidang Litbang"}

	emails := disposisiEventEmails(db, d, nil)
	assert.ElementsMatch(t, []string{"kabid1@bapelit.go.id", "kabid2@bapelit.go.id"}, emails)
}

func TestDisposisiEventEmailsNoHolders(t *testing.T) {
	db := newUserDB(t)

	d := &models.Disposisi{DisposisiKepadaJabatan: "Kepala Bidang Litbang"}
	assert.Empty(t, disposisiEventEmails(db, d, nil))
}
