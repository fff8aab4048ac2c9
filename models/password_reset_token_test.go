package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPasswordResetTokenValidate(t *testing.T) {
	now := time.Now()

	fresh := PasswordResetToken{ExpiresAt: now.Add(time.Hour)}
	assert.NoError(t, fresh.Validate(now))

	used := PasswordResetToken{ExpiresAt: now.Add(time.Hour), Used: true}
	assert.ErrorIs(t, used.Validate(now), ErrResetTokenUsed)

	expired := PasswordResetToken{ExpiresAt: now.Add(-time.Minute)}
	assert.ErrorIs(t, expired.Validate(now), ErrResetTokenExpired)

	// Expiry boundary counts as expired.
	boundary := PasswordResetToken{ExpiresAt: now}
	assert.ErrorIs(t, boundary.Validate(now), ErrResetTokenExpired)
}
