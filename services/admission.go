// services/admission.go
package services

import (
	"errors"
	"fmt"
	"log"
	"time"
)

// ErrRateUnavailable means a room's nightly rate could not be resolved:
// unknown room, or its room type was deleted or never set. It never reaches
// the caller of Admit; pricing degrades to 0.00 instead.
var ErrRateUnavailable = errors.New("rate_unavailable")

// Booking statuses as stored in the bookings table. Only pending and confirmed
// hold a room; cancelled and completed bookings leave it free.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// BlockingStatuses are the statuses that count against room availability.
var BlockingStatuses = []string{StatusPending, StatusConfirmed}

func IsValidBookingStatus(status string) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// RateSource resolves a room to its nightly rate (room -> room type ->
// price_per_night). Returns ErrRateUnavailable when the room is unknown or
// has no type assigned.
type RateSource interface {
	NightlyRate(roomID uint) (float64, error)
}

// ConflictCounter counts existing bookings on a room whose date range
// intersects [checkIn, checkOut) and whose status blocks the room.
// excludeBookingID, when non-zero, removes that booking from the conflict set
// so an edited booking does not collide with itself.
type ConflictCounter interface {
	CountConflicts(roomID uint, checkIn, checkOut time.Time, excludeBookingID uint) (int64, error)
}

type RejectReason string

const (
	RejectInvalidInput     RejectReason = "invalid_input"
	RejectInvalidDateRange RejectReason = "invalid_date_range"
	RejectInvalidPrice     RejectReason = "invalid_price"
	RejectRoomUnavailable  RejectReason = "room_unavailable"
)

// BookingCandidate is the ephemeral form input for a new or edited booking.
// It has no identity until admitted and persisted.
type BookingCandidate struct {
	RoomID           uint
	CheckIn          time.Time
	CheckOut         time.Time
	Status           string
	ManualPrice      *float64
	ExcludeBookingID uint
}

type AdmissionResult struct {
	Accepted   bool
	Reason     RejectReason
	Nights     int
	TotalPrice float64
}

// AdmissionRejectedError carries a rejection reason to the handler layer.
type AdmissionRejectedError struct {
	Reason RejectReason
}

func (e *AdmissionRejectedError) Error() string {
	return fmt.Sprintf("booking rejected: %s", e.Reason)
}

// AdmissionEngine decides whether a candidate booking may be accepted and what
// it costs. It is stateless; both lookups hit storage through the injected
// collaborators. The availability check is a point-in-time snapshot — closing
// the race between check and insert is the storage layer's problem.
type AdmissionEngine struct {
	rates     RateSource
	conflicts ConflictCounter
}

func NewAdmissionEngine(rates RateSource, conflicts ConflictCounter) *AdmissionEngine {
	return &AdmissionEngine{rates: rates, conflicts: conflicts}
}

// ComputeNights returns the number of nights between two calendar dates.
// Timestamps are truncated to day boundaries first. A 1-night stay is
// check-in D, check-out D+1; an equal or inverted range yields 0, never a
// negative number.
func ComputeNights(checkIn, checkOut time.Time) int {
	in := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	out := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, time.UTC)
	if !out.After(in) {
		return 0
	}
	return int(out.Sub(in).Hours() / 24)
}

// ComputePrice resolves the total price for a stay. A manually entered price
// wins over the computed one; Admit decides whether the value is acceptable
// for the candidate's status. Without an override the price is
// rate * nights, degrading to 0.00 when the room has no resolvable rate
// rather than blocking the booking.
func (e *AdmissionEngine) ComputePrice(roomID uint, nights int, manualPrice *float64) float64 {
	if manualPrice != nil {
		return *manualPrice
	}
	if nights <= 0 || roomID == 0 {
		return 0.00
	}
	rate, err := e.rates.NightlyRate(roomID)
	if err != nil {
		log.Printf("⚠️ nightly rate lookup failed for room %d: %v", roomID, err)
		return 0.00
	}
	return rate * float64(nights)
}

// IsRoomAvailable reports whether the room is free of blocking bookings over
// [checkIn, checkOut). Back-to-back stays are allowed: the checkout day itself
// is not occupied. A lookup failure counts as unavailable.
func (e *AdmissionEngine) IsRoomAvailable(roomID uint, checkIn, checkOut time.Time, excludeBookingID uint) bool {
	n, err := e.conflicts.CountConflicts(roomID, checkIn, checkOut, excludeBookingID)
	if err != nil {
		log.Printf("❌ availability lookup failed for room %d: %v", roomID, err)
		return false
	}
	return n == 0
}

// Admit runs the admission checks in order: structural validation first, the
// availability lookup (the only external round-trip) last.
func (e *AdmissionEngine) Admit(c BookingCandidate) AdmissionResult {
	if c.RoomID == 0 || c.CheckIn.IsZero() || c.CheckOut.IsZero() || !IsValidBookingStatus(c.Status) {
		return AdmissionResult{Reason: RejectInvalidInput}
	}

	nights := ComputeNights(c.CheckIn, c.CheckOut)
	if nights <= 0 {
		return AdmissionResult{Reason: RejectInvalidDateRange}
	}

	price := e.ComputePrice(c.RoomID, nights, c.ManualPrice)
	// Cancelled bookings tolerate a negative price; everything else must
	// cost at least zero.
	if price < 0 && c.Status != StatusCancelled {
		return AdmissionResult{Reason: RejectInvalidPrice}
	}

	if !e.IsRoomAvailable(c.RoomID, c.CheckIn, c.CheckOut, c.ExcludeBookingID) {
		return AdmissionResult{Reason: RejectRoomUnavailable}
	}

	return AdmissionResult{Accepted: true, Nights: nights, TotalPrice: price}
}
