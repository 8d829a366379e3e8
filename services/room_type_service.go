package services

import (
	"errors"
	"fmt"
	"strings"

	"hotel-admin/models"

	"gorm.io/gorm"
)

var (
	ErrRoomTypeNotFound      = errors.New("room_type_not_found")
	ErrDuplicateRoomTypeName = errors.New("duplicate_room_type_name")
	ErrNegativeNightlyRate   = errors.New("negative_nightly_rate")
	ErrRoomTypeNameRequired  = errors.New("room_type_name_required")
)

type RoomTypeService struct {
	DB *gorm.DB
}

func NewRoomTypeService(db *gorm.DB) *RoomTypeService {
	return &RoomTypeService{DB: db}
}

func (s *RoomTypeService) GetAll() ([]models.RoomType, error) {
	var types []models.RoomType
	if err := s.DB.Order("name ASC").Find(&types).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve room types: %w", err)
	}
	return types, nil
}

func (s *RoomTypeService) Create(rt *models.RoomType) error {
	rt.Name = strings.TrimSpace(rt.Name)
	if rt.Name == "" {
		return ErrRoomTypeNameRequired
	}
	if rt.PricePerNight < 0 {
		return ErrNegativeNightlyRate
	}

	if err := s.DB.Create(rt).Error; err != nil {
		if isDuplicateEntry(err) {
			return ErrDuplicateRoomTypeName
		}
		return fmt.Errorf("failed to create room type: %w", err)
	}
	return nil
}

func (s *RoomTypeService) Update(id uint, rt models.RoomType) (*models.RoomType, error) {
	rt.Name = strings.TrimSpace(rt.Name)
	if rt.Name == "" {
		return nil, ErrRoomTypeNameRequired
	}
	if rt.PricePerNight < 0 {
		return nil, ErrNegativeNightlyRate
	}

	var existing models.RoomType
	if err := s.DB.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, fmt.Errorf("failed to find room type %d: %w", id, err)
	}

	updates := map[string]interface{}{
		"name":            rt.Name,
		"description":     rt.Description,
		"price_per_night": rt.PricePerNight,
	}
	if rt.Amenities != nil {
		updates["amenities"] = rt.Amenities
	}
	if err := s.DB.Model(&existing).Updates(updates).Error; err != nil {
		if isDuplicateEntry(err) {
			return nil, ErrDuplicateRoomTypeName
		}
		return nil, fmt.Errorf("failed to update room type %d: %w", id, err)
	}

	if err := s.DB.First(&existing, id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload room type: %w", err)
	}
	return &existing, nil
}

// Delete removes a room type and detaches any rooms still assigned to it.
// Returns how many rooms were detached so the caller can warn the operator.
func (s *RoomTypeService) Delete(id uint) (int64, error) {
	var detached int64

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Room{}).
			Where("room_type_id = ?", id).
			Update("room_type_id", nil)
		if result.Error != nil {
			return fmt.Errorf("failed to detach rooms: %w", result.Error)
		}
		detached = result.RowsAffected

		del := tx.Delete(&models.RoomType{}, id)
		if del.Error != nil {
			return fmt.Errorf("failed to delete room type %d: %w", id, del.Error)
		}
		if del.RowsAffected == 0 {
			return ErrRoomTypeNotFound
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return detached, nil
}
