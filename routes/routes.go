package routes

import (
	"net/http"

	"github.com/yansanity1998/ojt-hours-tracker/config"
	"github.com/yansanity1998/ojt-hours-tracker/controllers"
	"github.com/yansanity1998/ojt-hours-tracker/middlewares"
	"github.com/yansanity1998/ojt-hours-tracker/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(rt *services.RealtimeHub, ps *services.PushService) *gin.Engine {
	r := gin.Default()
	_ = r.SetTrustedProxies(nil)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.App.CORSOrigins,
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: true,
	}))

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/user/profile", controllers.GetProfile)
		api.PUT("/user/profile", controllers.UpdateProfile)
		api.DELETE("/user", controllers.DeleteAccount)

		api.GET("/settings", controllers.GetSettings)
		api.PUT("/settings", controllers.UpdateSettings)

		api.GET("/entries", controllers.ListEntries)
		api.POST("/entries", controllers.AddEntry)
		api.PUT("/entries/:id", controllers.UpdateEntry)
		api.DELETE("/entries/:id", controllers.DeleteEntry)

		api.POST("/clock/toggle", controllers.ClockToggle)
		api.GET("/clock/status", controllers.ClockStatus)

		api.GET("/progress", controllers.GetProgress)

		api.GET("/notes", controllers.ListNotes)
		api.POST("/notes", controllers.AddNote)
		api.PUT("/notes/:id", controllers.UpdateNote)
		api.DELETE("/notes/:id", controllers.DeleteNote)

		api.GET("/notifications", controllers.ListNotifications)
		api.DELETE("/notifications", controllers.ClearNotifications)

		api.GET("/places/search", controllers.SearchPlaces)

		if ps != nil {
			dc := controllers.NewDeviceController(ps)
			api.POST("/devices", dc.RegisterDevice)
			api.POST("/devices/toggle", dc.TogglePush)
		}

		rc := controllers.NewRealtimeController(rt)
		api.GET("/ws/notifications", rc.NotificationsWS)
	}

	return r
}
