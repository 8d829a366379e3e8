package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"hotel-admin/models"
	"hotel-admin/services"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Service *services.RoomService
}

func NewRoomController(service *services.RoomService) *RoomController {
	return &RoomController{Service: service}
}

func (rc *RoomController) GetRooms(c *gin.Context) {
	rooms, err := rc.Service.GetAll()
	if err != nil {
		log.Printf("❌ failed to list rooms: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not retrieve rooms list."})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetBookableRooms feeds the booking form dropdown: rooms not under
// maintenance, each with its type and nightly rate.
func (rc *RoomController) GetBookableRooms(c *gin.Context) {
	rooms, err := rc.Service.GetBookable()
	if err != nil {
		log.Printf("❌ failed to list bookable rooms: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not retrieve rooms list for forms."})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (rc *RoomController) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	if err := rc.Service.Create(&room); err != nil {
		switch {
		case errors.Is(err, services.ErrRoomNumberRequired):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Room number is required."})
		case errors.Is(err, services.ErrInvalidRoomType):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid room type provided."})
		case errors.Is(err, services.ErrDuplicateRoomNumber):
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Room number '%s' already exists.", room.RoomNumber)})
		default:
			log.Printf("❌ failed to create room: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add room. Please try again."})
		}
		return
	}

	c.JSON(http.StatusCreated, room)
}

func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	room, err := rc.Service.Update(id, updates)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found."})
		case errors.Is(err, services.ErrInvalidRoomType):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid room type provided."})
		case errors.Is(err, services.ErrDuplicateRoomNumber):
			c.JSON(http.StatusConflict, gin.H{"error": "Room number already exists for another room."})
		default:
			log.Printf("❌ failed to update room %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update room. Please try again."})
		}
		return
	}

	c.JSON(http.StatusOK, room)
}

func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := rc.Service.Delete(id); err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found or already deleted."})
			return
		}
		log.Printf("❌ failed to delete room %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete room. The room might be in use."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Room deleted successfully."})
}
