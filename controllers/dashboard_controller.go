package controllers

import (
	"log"
	"net/http"

	"hotel-admin/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Service *services.DashboardService
}

func NewDashboardController(service *services.DashboardService) *DashboardController {
	return &DashboardController{Service: service}
}

func (dc *DashboardController) GetStats(c *gin.Context) {
	stats, err := dc.Service.Stats()
	if err != nil {
		log.Printf("❌ failed to load dashboard stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not retrieve dashboard statistics."})
		return
	}
	c.JSON(http.StatusOK, stats)
}
