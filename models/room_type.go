package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RoomType carries the nightly rate. Bookings are priced off the type, not the
// room, so a room without a type has no resolvable rate.
type RoomType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name          string         `gorm:"uniqueIndex;size:150" json:"name"`
	Description   string         `gorm:"type:text" json:"description"`
	PricePerNight float64        `gorm:"column:price_per_night" json:"price_per_night"`
	Amenities     datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
