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

type RoomTypeController struct {
	Service *services.RoomTypeService
}

func NewRoomTypeController(service *services.RoomTypeService) *RoomTypeController {
	return &RoomTypeController{Service: service}
}

func (rtc *RoomTypeController) GetRoomTypes(c *gin.Context) {
	types, err := rtc.Service.GetAll()
	if err != nil {
		log.Printf("❌ failed to list room types: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not retrieve room types."})
		return
	}
	c.JSON(http.StatusOK, types)
}

func (rtc *RoomTypeController) CreateRoomType(c *gin.Context) {
	var rt models.RoomType
	if err := c.ShouldBindJSON(&rt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	if err := rtc.Service.Create(&rt); err != nil {
		switch {
		case errors.Is(err, services.ErrRoomTypeNameRequired), errors.Is(err, services.ErrNegativeNightlyRate):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Room type name and a valid non-negative price per night are required."})
		case errors.Is(err, services.ErrDuplicateRoomTypeName):
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Room type name '%s' already exists.", rt.Name)})
		default:
			log.Printf("❌ failed to create room type: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add room type. Please try again."})
		}
		return
	}

	c.JSON(http.StatusCreated, rt)
}

func (rtc *RoomTypeController) UpdateRoomType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var rt models.RoomType
	if err := c.ShouldBindJSON(&rt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	updated, err := rtc.Service.Update(id, rt)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRoomTypeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Room type not found."})
		case errors.Is(err, services.ErrRoomTypeNameRequired), errors.Is(err, services.ErrNegativeNightlyRate):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Room type name and a valid non-negative price per night are required."})
		case errors.Is(err, services.ErrDuplicateRoomTypeName):
			c.JSON(http.StatusConflict, gin.H{"error": "Room type name already exists for another type."})
		default:
			log.Printf("❌ failed to update room type %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update room type. Please try again."})
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (rtc *RoomTypeController) DeleteRoomType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	detached, err := rtc.Service.Delete(id)
	if err != nil {
		if errors.Is(err, services.ErrRoomTypeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room type not found or already deleted."})
			return
		}
		log.Printf("❌ failed to delete room type %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete room type."})
		return
	}

	message := "Room type deleted successfully."
	if detached > 0 {
		message = fmt.Sprintf("%d room(s) were detached from this type. %s", detached, message)
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "detached_rooms": detached})
}
