package controllers

import (
	"errors"
	"log"
	"net/http"

	"hotel-admin/middleware"
	"hotel-admin/services"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Service *services.BookingService
}

func NewBookingController(service *services.BookingService) *BookingController {
	return &BookingController{Service: service}
}

// rejectionStatus maps an admission rejection to an HTTP status and the
// operator-facing message shown in the booking form.
func rejectionStatus(reason services.RejectReason) (int, string) {
	switch reason {
	case services.RejectInvalidInput:
		return http.StatusUnprocessableEntity, "Guest name, email, room, check-in/out dates, and status are required."
	case services.RejectInvalidDateRange:
		return http.StatusUnprocessableEntity, "Check-out date must be after check-in date."
	case services.RejectInvalidPrice:
		return http.StatusUnprocessableEntity, "Total price must be valid. Please check room price or enter manually."
	case services.RejectRoomUnavailable:
		return http.StatusConflict, "Selected room is not available for the chosen dates."
	}
	return http.StatusUnprocessableEntity, "Booking was rejected."
}

func (bc *BookingController) GetBookings(c *gin.Context) {
	bookings, err := bc.Service.GetAllWithRelations()
	if err != nil {
		log.Printf("❌ failed to list bookings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not retrieve bookings list."})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (bc *BookingController) GetBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := bc.Service.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found."})
			return
		}
		log.Printf("❌ failed to load booking %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not retrieve booking."})
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (bc *BookingController) CreateBooking(c *gin.Context) {
	var input services.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	var userID *uint
	if user := middleware.CurrentUser(c); user != nil {
		userID = &user.ID
	}

	booking, err := bc.Service.Create(input, userID)
	if err != nil {
		var rejected *services.AdmissionRejectedError
		if errors.As(err, &rejected) {
			status, message := rejectionStatus(rejected.Reason)
			c.JSON(status, gin.H{"error": message, "reason": rejected.Reason})
			return
		}
		log.Printf("❌ failed to create booking: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add booking. Please try again."})
		return
	}

	c.JSON(http.StatusCreated, booking)
}

func (bc *BookingController) UpdateBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input services.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	booking, err := bc.Service.Update(id, input)
	if err != nil {
		var rejected *services.AdmissionRejectedError
		switch {
		case errors.Is(err, services.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found."})
		case errors.As(err, &rejected):
			status, message := rejectionStatus(rejected.Reason)
			c.JSON(status, gin.H{"error": message, "reason": rejected.Reason})
		default:
			log.Printf("❌ failed to update booking %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking. Please try again."})
		}
		return
	}

	c.JSON(http.StatusOK, booking)
}

func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := bc.Service.Delete(id); err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found or already deleted."})
			return
		}
		log.Printf("❌ failed to delete booking %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete booking."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully."})
}
