package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-admin/controllers"
	"hotel-admin/middleware"
	"hotel-admin/models"
	"hotel-admin/services"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	authService *services.AuthService,
	ac *controllers.AuthController,
	bc *controllers.BookingController,
	rc *controllers.RoomController,
	rtc *controllers.RoomTypeController,
	uc *controllers.UserController,
	dc *controllers.DashboardController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", ac.Login)
			auth.POST("/logout", ac.Logout)
		}

		// Everything below mirrors the old panel's session gate: no page
		// without a live login.
		authorized := api.Group("")
		authorized.Use(middleware.RequireSession(authService))
		{
			authorized.GET("/dashboard", dc.GetStats)

			bookings := authorized.Group("/bookings")
			{
				bookings.GET("", bc.GetBookings)
				bookings.GET("/:id", bc.GetBooking)
				bookings.POST("", bc.CreateBooking)
				bookings.PUT("/:id", bc.UpdateBooking)
				bookings.DELETE("/:id", bc.DeleteBooking)
			}

			rooms := authorized.Group("/rooms")
			{
				rooms.GET("", rc.GetRooms)

				// must stay before /:id style routes if any are added
				rooms.GET("/bookable", rc.GetBookableRooms)

				rooms.POST("", rc.CreateRoom)
				rooms.PUT("/:id", rc.UpdateRoom)
				rooms.PATCH("/:id", rc.UpdateRoom)
				rooms.DELETE("/:id", rc.DeleteRoom)
			}

			roomTypes := authorized.Group("/room-types")
			{
				roomTypes.GET("", rtc.GetRoomTypes)
				roomTypes.POST("", rtc.CreateRoomType)
				roomTypes.PUT("/:id", rtc.UpdateRoomType)
				roomTypes.DELETE("/:id", rtc.DeleteRoomType)
			}

			users := authorized.Group("/users")
			users.Use(middleware.RequireRole(models.RoleAdmin))
			{
				users.GET("", uc.GetUsers)
				users.POST("", uc.CreateUser)
				users.PUT("/:id", uc.UpdateUser)
				users.DELETE("/:id", uc.DeleteUser)
			}
		}
	}

	return r
}
