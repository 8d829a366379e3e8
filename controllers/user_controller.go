package controllers

import (
	"errors"
	"log"
	"net/http"

	"hotel-admin/middleware"
	"hotel-admin/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{Service: service}
}

func (uc *UserController) GetUsers(c *gin.Context) {
	users, err := uc.Service.GetAll()
	if err != nil {
		log.Printf("❌ failed to list users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not retrieve users list."})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (uc *UserController) CreateUser(c *gin.Context) {
	var input services.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	user, err := uc.Service.Create(input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingUserFields):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Username, email, and password are required."})
		case errors.Is(err, services.ErrDuplicateUser):
			c.JSON(http.StatusConflict, gin.H{"error": "Username or email already exists."})
		default:
			log.Printf("❌ failed to create user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add user. Please try again."})
		}
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (uc *UserController) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input services.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	user, err := uc.Service.Update(id, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
		case errors.Is(err, services.ErrMissingUserFields):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Username and email are required."})
		case errors.Is(err, services.ErrDuplicateUser):
			c.JSON(http.StatusConflict, gin.H{"error": "Username or email already exists for another user."})
		default:
			log.Printf("❌ failed to update user %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user. Please try again."})
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

func (uc *UserController) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	current := middleware.CurrentUser(c)
	if current == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	if err := uc.Service.Delete(id, current.ID); err != nil {
		switch {
		case errors.Is(err, services.ErrCannotDeleteSelf):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "You cannot delete your own account."})
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found or already deleted."})
		default:
			log.Printf("❌ failed to delete user %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully."})
}
