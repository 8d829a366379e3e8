package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoomAvailable   = "available"
	RoomOccupied    = "occupied"
	RoomMaintenance = "maintenance"
)

type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Nullable so deleting a room type detaches rooms instead of blocking.
	RoomTypeID *uint `gorm:"column:room_type_id;index" json:"room_type_id,omitempty"`

	RoomNumber  string `gorm:"column:room_number;uniqueIndex;type:varchar(50)" json:"room_number"`
	Status      string `gorm:"size:32;default:available" json:"status"`
	Description string `gorm:"type:text" json:"description"`

	RoomType RoomType `gorm:"foreignKey:RoomTypeID" json:"room_type,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
