package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusDisposisiIsValid(t *testing.T) {
	for _, s := range []StatusDisposisi{
		StatusDibuat, StatusBelumDibaca, StatusDibaca, StatusDiteruskan,
		StatusDiterima, StatusDiproses, StatusSelesai,
	} {
		assert.True(t, s.IsValid(), "status %q", s)
	}

	assert.False(t, StatusDisposisi("pending").IsValid())
	assert.False(t, StatusDisposisi("").IsValid())
}

func TestRoleHelpers(t *testing.T) {
	kabid := User{Role: RoleKabid}
	assert.True(t, kabid.IsKabid())
	assert.True(t, kabid.IsAtasan())
	assert.False(t, kabid.IsStaf())

	sekretaris := User{Role: RoleSekretaris}
	assert.True(t, sekretaris.IsSekretaris())
	assert.True(t, sekretaris.IsAtasan())

	staf := User{Role: RoleStaf}
	assert.True(t, staf.IsStaf())
	assert.False(t, staf.IsAtasan())

	kepala := User{Role: RoleKepala}
	assert.True(t, kepala.IsKepala())

	admin := User{Role: RoleAdmin}
	assert.True(t, admin.IsAdmin())
}

func TestSifatSuratIsValid(t *testing.T) {
	for _, s := range []SifatSurat{SifatBiasa, SifatSegera, SifatPenting, SifatRahasia} {
		assert.True(t, s.IsValid(), "sifat %q", s)
	}
	assert.False(t, SifatSurat("urgent").IsValid())
}
