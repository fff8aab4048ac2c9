package handlers

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/mail"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/farel129/bapelit-be-sub000/config"
	"github.com/farel129/bapelit-be-sub000/dto"
	"github.com/farel129/bapelit-be-sub000/models"
	"github.com/farel129/bapelit-be-sub000/utils"
	"github.com/farel129/bapelit-be-sub000/utils/mailer"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// POST /api/v1/auth/login
func Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body", err.Error())
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return utils.BadRequest(c, "email dan password harus diisi", nil)
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Unauthorized(c, "email atau password salah")
		}
		return utils.InternalServerError(c, "failed to look up user")
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return utils.Unauthorized(c, "email atau password salah")
	}

	access, claims, err := utils.GenerateAccessToken(user)
	if err != nil {
		return utils.InternalServerError(c, "failed to generate token")
	}
	refresh, _, err := utils.GenerateRefreshToken(user)
	if err != nil {
		return utils.InternalServerError(c, "failed to generate token")
	}

	return utils.OK(c, "login berhasil", dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresAt:    claims.ExpiresAt.Time,
		User:         dto.NewUserSummary(user),
	})
}

// POST /api/v1/auth/refresh
func RefreshToken(c *fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body", err.Error())
	}

	claims, err := utils.VerifyRefreshToken(req.RefreshToken)
	if err != nil {
		return utils.Unauthorized(c, "invalid or expired refresh token")
	}

	var user models.User
	if err := config.DB.First(&user, claims.UserID).Error; err != nil {
		return utils.Unauthorized(c, "user no longer exists")
	}

	access, newClaims, err := utils.GenerateAccessToken(user)
	if err != nil {
		return utils.InternalServerError(c, "failed to generate token")
	}

	return utils.OK(c, "token refreshed", dto.RefreshTokenResponse{
		AccessToken: access,
		TokenType:   "Bearer",
		ExpiresAt:   newClaims.ExpiresAt.Time,
	})
}

// POST /api/v1/auth/forgot-password
func RequestPasswordReset(c *fiber.Ctx) error {
	var req dto.PasswordResetRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return utils.BadRequest(c, "invalid JSON body", nil)
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" {
		return utils.BadRequest(c, "email is required", nil)
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return utils.BadRequest(c, "invalid email format", nil)
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Jangan bocorkan email mana yang terdaftar
			return utils.OK(c, "If the email exists, a reset link has been sent", nil)
		}
		return utils.InternalServerError(c, "failed to look up user")
	}

	rawToken, tokenHash, err := generateResetToken()
	if err != nil {
		return utils.InternalServerError(c, "failed to generate token")
	}

	resetToken := models.PasswordResetToken{
		UserID:    user.ID,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(models.PasswordResetTokenTTL),
	}
	if err := config.DB.Create(&resetToken).Error; err != nil {
		return utils.InternalServerError(c, "failed to store reset token")
	}

	mailClient := mailer.NewClient(config.LoadEmailConfig())
	if err := mailClient.SendPasswordResetEmail(user.Email, buildResetLink(rawToken)); err != nil {
		return utils.InternalServerError(c, "failed to send reset email")
	}

	return utils.OK(c, "If the email exists, a reset link has been sent", nil)
}

// POST /api/v1/auth/reset-password
func ResetPassword(c *fiber.Ctx) error {
	var req dto.PasswordResetSubmission
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body", err.Error())
	}

	if strings.TrimSpace(req.Token) == "" {
		return utils.BadRequest(c, "token is required", nil)
	}
	if len(req.Password) < 8 {
		return utils.BadRequest(c, "password must be at least 8 characters", nil)
	}
	if req.Password != req.ConfirmPassword {
		return utils.BadRequest(c, "password confirmation does not match", nil)
	}

	sum := sha256.Sum256([]byte(req.Token))
	tokenHash := hex.EncodeToString(sum[:])

	var token models.PasswordResetToken
	if err := config.DB.Where("token_hash = ?", tokenHash).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.BadRequest(c, "invalid or expired token", nil)
		}
		return utils.InternalServerError(c, "failed to look up token")
	}

	newHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return utils.InternalServerError(c, "failed to hash password")
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := token.Consume(tx, time.Now()); err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ?", token.UserID).
			Update("password_hash", newHash).Error
	})
	if err != nil {
		if errors.Is(err, models.ErrResetTokenUsed) || errors.Is(err, models.ErrResetTokenExpired) {
			return utils.BadRequest(c, "invalid or expired token", nil)
		}
		return utils.InternalServerError(c, "failed to reset password")
	}

	return utils.OK(c, "password has been reset", nil)
}

func generateResetToken() (string, string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", "", err
	}
	raw := hex.EncodeToString(tokenBytes)
	sum := sha256.Sum256([]byte(raw))
	return raw, hex.EncodeToString(sum[:]), nil
}

func buildResetLink(token string) string {
	base := os.Getenv("PASSWORD_RESET_URL")
	if base == "" {
		base = "/auth/reset-password"
	}

	escaped := url.QueryEscape(token)
	if strings.Contains(base, "?") {
		return base + "&token=" + escaped
	}
	return base + "?token=" + escaped
}
