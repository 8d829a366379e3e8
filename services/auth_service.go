package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"hotel-admin/models"
	"hotel-admin/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrSessionExpired     = errors.New("session_expired")
)

// AuthService owns login sessions: opaque tokens stored server-side, the same
// contract the old panel had with PHP sessions.
type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

func generateTokenHex(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func sessionTTL() time.Duration {
	raw := utils.EnvOrDefault("SESSION_TTL_HOURS", "24")
	hours, err := strconv.Atoi(raw)
	if err != nil || hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

// Login accepts username or email. Inactive accounts cannot log in.
func (s *AuthService) Login(username, password string) (*models.Session, *models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, nil, ErrInvalidCredentials
	}

	var user models.User
	err := s.DB.
		Where("(username = ? OR email = ?) AND is_active = ?", username, username, true).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}

	token, err := generateTokenHex(32)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	session := models.Session{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: time.Now().UTC().Add(sessionTTL()),
	}
	if err := s.DB.Create(&session).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to create session: %w", err)
	}

	// Opportunistic cleanup; stale rows are harmless but pile up.
	s.DB.Where("expires_at < ?", time.Now().UTC()).Delete(&models.Session{})

	return &session, &user, nil
}

// ValidateToken resolves a bearer token to its user, rejecting expired
// sessions and deactivated accounts.
func (s *AuthService) ValidateToken(token string) (*models.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrSessionExpired
	}

	var session models.Session
	err := s.DB.Preload("User").
		Where("token = ? AND expires_at > ?", token, time.Now().UTC()).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("failed to validate session: %w", err)
	}

	if session.User.ID == 0 || !session.User.IsActive {
		return nil, ErrSessionExpired
	}
	user := session.User
	return &user, nil
}

// Logout revokes the presented session. Unknown tokens are not an error.
func (s *AuthService) Logout(token string) error {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	if err := s.DB.Where("token = ?", token).Delete(&models.Session{}).Error; err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}
