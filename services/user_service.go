package services

import (
	"errors"
	"fmt"
	"strings"

	"hotel-admin/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user_not_found")
	ErrDuplicateUser     = errors.New("duplicate_user")
	ErrMissingUserFields = errors.New("missing_user_fields")
	ErrCannotDeleteSelf  = errors.New("cannot_delete_self")
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

type UserInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
	IsActive *bool  `json:"is_active"`
}

func (s *UserService) GetAll() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Order("username ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}
	return users, nil
}

// Create adds a staff account. The role is forced to staff: admins are seeded,
// never created through this form.
func (s *UserService) Create(in UserInput) (*models.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)
	if username == "" || email == "" || in.Password == "" {
		return nil, ErrMissingUserFields
	}

	var count int64
	if err := s.DB.Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check user uniqueness: %w", err)
	}
	if count > 0 {
		return nil, ErrDuplicateUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username: username,
		Email:    email,
		FullName: strings.TrimSpace(in.FullName),
		Password: string(hash),
		Role:     models.RoleStaff,
		IsActive: in.IsActive == nil || *in.IsActive,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		if isDuplicateEntry(err) {
			return nil, ErrDuplicateUser
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// Update edits account fields. The role is immutable here; a blank password
// leaves the stored hash untouched.
func (s *UserService) Update(id uint, in UserInput) (*models.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)
	if username == "" || email == "" {
		return nil, ErrMissingUserFields
	}

	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user %d: %w", id, err)
	}

	var count int64
	if err := s.DB.Model(&models.User{}).
		Where("(username = ? OR email = ?) AND id <> ?", username, email, id).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check user uniqueness: %w", err)
	}
	if count > 0 {
		return nil, ErrDuplicateUser
	}

	updates := map[string]interface{}{
		"username":  username,
		"email":     email,
		"full_name": strings.TrimSpace(in.FullName),
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		updates["password"] = string(hash)
	}

	if err := s.DB.Model(&user).Updates(updates).Error; err != nil {
		if isDuplicateEntry(err) {
			return nil, ErrDuplicateUser
		}
		return nil, fmt.Errorf("failed to update user %d: %w", id, err)
	}

	if err := s.DB.First(&user, id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload user: %w", err)
	}
	return &user, nil
}

func (s *UserService) Delete(id, currentUserID uint) error {
	if id == currentUserID {
		return ErrCannotDeleteSelf
	}
	result := s.DB.Delete(&models.User{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
