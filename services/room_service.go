package services

import (
	"errors"
	"fmt"
	"strings"

	"hotel-admin/models"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRoomNotFound        = errors.New("room_not_found")
	ErrDuplicateRoomNumber = errors.New("duplicate_room_number")
	ErrInvalidRoomType     = errors.New("invalid_room_type")
	ErrRoomNumberRequired  = errors.New("room_number_required")
)

// isDuplicateEntry detects a MySQL unique violation (error 1062), with a text
// fallback for other drivers in local setups.
func isDuplicateEntry(err error) bool {
	if err == nil {
		return false
	}
	if merr, ok := err.(*mysql.MySQLError); ok {
		return merr.Number == 1062
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Preload("RoomType").Order("room_number ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	return rooms, nil
}

// GetBookable lists rooms the booking form may offer: everything except rooms
// under maintenance.
func (s *RoomService) GetBookable() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Preload("RoomType").
		Where("status <> ?", models.RoomMaintenance).
		Order("room_number ASC").
		Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookable rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) Create(room *models.Room) error {
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" {
		return ErrRoomNumberRequired
	}
	if room.Status == "" {
		room.Status = models.RoomAvailable
	}

	// Reject a dangling FK up front instead of surfacing a constraint error.
	if room.RoomTypeID != nil {
		var rt models.RoomType
		if err := s.DB.First(&rt, *room.RoomTypeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidRoomType
			}
			return fmt.Errorf("failed to check room type %d: %w", *room.RoomTypeID, err)
		}
	}

	if err := s.DB.Create(room).Error; err != nil {
		if isDuplicateEntry(err) {
			return ErrDuplicateRoomNumber
		}
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

func (s *RoomService) Update(id uint, updates map[string]interface{}) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to find room %d: %w", id, err)
	}

	// Protect identity and bookkeeping columns from form payloads.
	delete(updates, "id")
	delete(updates, "created_at")
	delete(updates, "updated_at")
	delete(updates, "deleted_at")

	if v, ok := updates["room_type_id"]; ok && v != nil {
		var rt models.RoomType
		if err := s.DB.First(&rt, "id = ?", v).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidRoomType
			}
			return nil, fmt.Errorf("failed to check room type: %w", err)
		}
	}

	if err := s.DB.Model(&room).Updates(updates).Error; err != nil {
		if isDuplicateEntry(err) {
			return nil, ErrDuplicateRoomNumber
		}
		return nil, fmt.Errorf("failed to update room %d: %w", id, err)
	}

	if err := s.DB.Preload("RoomType").First(&room, id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload room: %w", err)
	}
	return &room, nil
}

func (s *RoomService) Delete(id uint) error {
	result := s.DB.Delete(&models.Room{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete room %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}
