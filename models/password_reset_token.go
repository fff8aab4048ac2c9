package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrResetTokenExpired = errors.New("password reset token expired")
	ErrResetTokenUsed    = errors.New("password reset token already used")
)

const PasswordResetTokenTTL = time.Hour

// PasswordResetToken stores only the SHA-256 hash of the emailed token.
type PasswordResetToken struct {
	gorm.Model
	UserID    uint      `gorm:"not null;index"`
	TokenHash string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
	Used      bool      `gorm:"not null;default:false"`
	UsedAt    *time.Time

	User User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (PasswordResetToken) TableName() string {
	return "password_reset_tokens"
}

func (t PasswordResetToken) Validate(now time.Time) error {
	if t.Used {
		return ErrResetTokenUsed
	}
	if !now.Before(t.ExpiresAt) {
		return ErrResetTokenExpired
	}
	return nil
}

// Consume marks the token used. The guarded update keeps two concurrent
// submissions of the same token from both succeeding.
func (t *PasswordResetToken) Consume(tx *gorm.DB, now time.Time) error {
	if err := t.Validate(now); err != nil {
		return err
	}

	res := tx.Model(&PasswordResetToken{}).
		Where("id = ? AND used = ? AND expires_at > ?", t.ID, false, now).
		Updates(map[string]any{"used": true, "used_at": &now})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrResetTokenUsed
	}

	t.Used = true
	t.UsedAt = &now
	return nil
}
