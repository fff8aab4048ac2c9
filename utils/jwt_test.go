package utils

import (
	"testing"

	"github.com/farel129/bapelit-be-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testUser() models.User {
	return models.User{
		Model:   gorm.Model{ID: 12},
		Name:    "Siti Rahma",
		Email:   "siti@bapelit.go.id",
		Role:    models.RoleKabid,
		Jabatan: "Kepala Bidang Litbang",
		Bidang:  "Litbang",
	}
}

func TestAccessTokenRoundtrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := testUser()
	token, claims, err := GenerateAccessToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotNil(t, claims)

	parsed, err := VerifyAccessToken(token)
	require.NoError(t, err)

	assert.Equal(t, user.ID, parsed.UserID)
	assert.Equal(t, user.Role, parsed.Role)
	assert.Equal(t, user.Email, parsed.Email)
	assert.Equal(t, user.Name, parsed.Name)
	assert.Equal(t, user.Jabatan, parsed.Jabatan)
	assert.Equal(t, user.Bidang, parsed.Bidang)
	assert.Equal(t, "access", parsed.TokenType)
}

func TestRefreshTokenRejectedAsAccessToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, _, err := GenerateRefreshToken(testUser())
	require.NoError(t, err)

	_, err = VerifyAccessToken(token)
	assert.Error(t, err)
}

func TestVerifyAccessTokenGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := VerifyAccessToken("")
	assert.Error(t, err)

	_, err = VerifyAccessToken("not.a.jwt")
	assert.Error(t, err)
}
