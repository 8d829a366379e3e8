// services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hotel-admin/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrBookingNotFound = errors.New("booking_not_found")

// BookingService wraps *gorm.DB for booking CRUD. It also backs the admission
// engine's two lookups, so the engine stays free of storage concerns.
type BookingService struct {
	DB     *gorm.DB
	Engine *AdmissionEngine
}

func NewBookingService(db *gorm.DB) *BookingService {
	s := &BookingService{DB: db}
	s.Engine = NewAdmissionEngine(s, s)
	return s
}

// NightlyRate implements RateSource: room -> room type -> price_per_night.
func (s *BookingService) NightlyRate(roomID uint) (float64, error) {
	var row struct {
		PricePerNight float64
	}
	err := s.DB.Model(&models.Room{}).
		Select("room_types.price_per_night AS price_per_night").
		Joins("JOIN room_types ON room_types.id = rooms.room_type_id AND room_types.deleted_at IS NULL").
		Where("rooms.id = ?", roomID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrRateUnavailable
		}
		return 0, fmt.Errorf("rate lookup for room %d: %w", roomID, err)
	}
	return row.PricePerNight, nil
}

// CountConflicts implements ConflictCounter with the half-open overlap rule:
// two stays conflict iff NOT (check_out <= in OR check_in >= out).
func (s *BookingService) CountConflicts(roomID uint, checkIn, checkOut time.Time, excludeBookingID uint) (int64, error) {
	q := s.DB.Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Where("status IN ?", BlockingStatuses).
		Where("NOT (check_out_date <= ? OR check_in_date >= ?)", checkIn, checkOut)
	if excludeBookingID != 0 {
		q = q.Where("id <> ?", excludeBookingID)
	}

	var n int64
	if err := q.Count(&n).Error; err != nil {
		return 0, fmt.Errorf("conflict count for room %d: %w", roomID, err)
	}
	return n, nil
}

// BookingInput is the raw form payload for create and update.
type BookingInput struct {
	GuestName  string   `json:"guest_name"`
	GuestEmail string   `json:"guest_email"`
	GuestPhone string   `json:"guest_phone"`
	RoomID     uint     `json:"room_id"`
	CheckIn    string   `json:"check_in_date"`
	CheckOut   string   `json:"check_out_date"`
	Status     string   `json:"status"`
	Notes      string   `json:"notes"`
	TotalPrice *float64 `json:"total_price"`
}

func parseBookingDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}

// admitInput validates the form payload and runs the candidate through the
// engine. excludeBookingID is the booking being edited, zero for creates.
func (s *BookingService) admitInput(in BookingInput, excludeBookingID uint) (AdmissionResult, time.Time, time.Time, error) {
	var zero time.Time

	if strings.TrimSpace(in.GuestName) == "" || strings.TrimSpace(in.GuestEmail) == "" {
		return AdmissionResult{}, zero, zero, &AdmissionRejectedError{Reason: RejectInvalidInput}
	}
	if in.RoomID == 0 || in.CheckIn == "" || in.CheckOut == "" || in.Status == "" {
		return AdmissionResult{}, zero, zero, &AdmissionRejectedError{Reason: RejectInvalidInput}
	}

	checkIn, err := parseBookingDate(in.CheckIn)
	if err != nil {
		return AdmissionResult{}, zero, zero, &AdmissionRejectedError{Reason: RejectInvalidInput}
	}
	checkOut, err := parseBookingDate(in.CheckOut)
	if err != nil {
		return AdmissionResult{}, zero, zero, &AdmissionRejectedError{Reason: RejectInvalidInput}
	}

	res := s.Engine.Admit(BookingCandidate{
		RoomID:           in.RoomID,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		Status:           in.Status,
		ManualPrice:      in.TotalPrice,
		ExcludeBookingID: excludeBookingID,
	})
	if !res.Accepted {
		return AdmissionResult{}, zero, zero, &AdmissionRejectedError{Reason: res.Reason}
	}
	return res, checkIn, checkOut, nil
}

func newReferenceCode() string {
	return "BK-" + strings.ToUpper(uuid.NewString()[:8])
}

// Create admits the candidate and persists it. userID records which staff
// member entered the booking.
func (s *BookingService) Create(in BookingInput, userID *uint) (*models.Booking, error) {
	res, checkIn, checkOut, err := s.admitInput(in, 0)
	if err != nil {
		return nil, err
	}

	roomID := in.RoomID
	booking := models.Booking{
		ReferenceCode: newReferenceCode(),
		UserID:        userID,
		GuestName:     strings.TrimSpace(in.GuestName),
		GuestEmail:    strings.TrimSpace(in.GuestEmail),
		GuestPhone:    strings.TrimSpace(in.GuestPhone),
		RoomID:        &roomID,
		CheckInDate:   &checkIn,
		CheckOutDate:  &checkOut,
		Nights:        res.Nights,
		TotalPrice:    res.TotalPrice,
		Status:        in.Status,
		Notes:         in.Notes,
	}

	if err := s.DB.Create(&booking).Error; err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if err := s.DB.Preload("Room.RoomType").Preload("User").First(&booking, booking.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload booking: %w", err)
	}
	return &booking, nil
}

// Update re-admits the edited candidate with the booking excluded from its own
// overlap check, then overwrites the record.
func (s *BookingService) Update(id uint, in BookingInput) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to find booking %d: %w", id, err)
	}

	res, checkIn, checkOut, err := s.admitInput(in, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"guest_name":     strings.TrimSpace(in.GuestName),
		"guest_email":    strings.TrimSpace(in.GuestEmail),
		"guest_phone":    strings.TrimSpace(in.GuestPhone),
		"room_id":        in.RoomID,
		"check_in_date":  checkIn,
		"check_out_date": checkOut,
		"nights":         res.Nights,
		"total_price":    res.TotalPrice,
		"status":         in.Status,
		"notes":          in.Notes,
	}
	if err := s.DB.Model(&booking).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update booking %d: %w", id, err)
	}

	if err := s.DB.Preload("Room.RoomType").Preload("User").First(&booking, id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload booking: %w", err)
	}
	return &booking, nil
}

// GetAllWithRelations lists bookings the way the admin table shows them:
// newest stays first.
func (s *BookingService) GetAllWithRelations() ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.
		Preload("Room.RoomType").
		Preload("User").
		Order("check_in_date DESC, id DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return list, nil
}

func (s *BookingService) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("Room.RoomType").Preload("User").First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to retrieve booking %d: %w", id, err)
	}
	return &booking, nil
}

func (s *BookingService) Delete(id uint) error {
	result := s.DB.Delete(&models.Booking{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete booking %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}
