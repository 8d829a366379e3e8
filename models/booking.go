package models

import (
	"time"

	"gorm.io/gorm"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ReferenceCode string `gorm:"column:reference_code;size:64;index" json:"reference_code,omitempty"`

	// Staff member who recorded the booking; nullable for direct/guest bookings.
	UserID *uint `gorm:"column:user_id;index" json:"user_id,omitempty"`

	GuestName  string `gorm:"column:guest_name;size:255" json:"guest_name"`
	GuestEmail string `gorm:"column:guest_email;size:150" json:"guest_email"`
	GuestPhone string `gorm:"column:guest_phone;size:50" json:"guest_phone,omitempty"`

	RoomID       *uint      `gorm:"column:room_id;index" json:"room_id,omitempty"`
	CheckInDate  *time.Time `gorm:"column:check_in_date" json:"check_in_date,omitempty"`
	CheckOutDate *time.Time `gorm:"column:check_out_date" json:"check_out_date,omitempty"`
	Nights       int        `gorm:"column:nights" json:"nights"`
	TotalPrice   float64    `gorm:"column:total_price" json:"total_price"`
	Status       string     `gorm:"column:status;size:32" json:"status"`
	Notes        string     `gorm:"type:text" json:"notes,omitempty"`

	Room Room  `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
	User *User `gorm:"foreignKey:UserID;references:ID" json:"booked_by,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
