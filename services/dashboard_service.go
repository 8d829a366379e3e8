package services

import (
	"fmt"
	"time"

	"hotel-admin/models"

	"gorm.io/gorm"
)

type DashboardStats struct {
	TotalBookings  int64 `json:"total_bookings"`
	AvailableRooms int64 `json:"available_rooms"`
	OccupiedRooms  int64 `json:"occupied_rooms"`
}

type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

// Stats assembles the landing-page counters. "Occupied" means a room with a
// confirmed booking whose range spans today.
func (s *DashboardService) Stats() (DashboardStats, error) {
	var stats DashboardStats

	if err := s.DB.Model(&models.Booking{}).Count(&stats.TotalBookings).Error; err != nil {
		return stats, fmt.Errorf("failed to count bookings: %w", err)
	}

	if err := s.DB.Model(&models.Room{}).
		Where("status = ?", models.RoomAvailable).
		Count(&stats.AvailableRooms).Error; err != nil {
		return stats, fmt.Errorf("failed to count available rooms: %w", err)
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if err := s.DB.Model(&models.Room{}).
		Distinct("rooms.id").
		Joins("JOIN bookings ON bookings.room_id = rooms.id AND bookings.deleted_at IS NULL").
		Where("bookings.check_in_date <= ? AND bookings.check_out_date >= ?", today, today).
		Where("bookings.status = ?", StatusConfirmed).
		Count(&stats.OccupiedRooms).Error; err != nil {
		return stats, fmt.Errorf("failed to count occupied rooms: %w", err)
	}

	return stats, nil
}
