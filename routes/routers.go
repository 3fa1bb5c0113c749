package routes

import (
	"net/http"
	"time"

	"attendbot/config"
	"attendbot/controllers"
	middlewares "attendbot/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes gắn toàn bộ route của bot lên router
func SetupRoutes(router *gin.Engine, app *config.App) error {
	publicKey, err := middlewares.ParsePublicKey(app.Config.DiscordPublicKey)
	if err != nil {
		return err
	}

	router.Use(middlewares.RequestIDMiddleware())

	interactionController := controllers.NewInteractionController(app.Dispatcher, app.Logger, time.Now)
	attendanceController := controllers.NewAttendanceController(app.Reports, app.Attendance)
	notificationController := controllers.NewNotificationController(app.Logger, app.Melody)

	router.POST("/interactions", middlewares.DiscordSignatureMiddleware(publicKey), interactionController.HandleInteraction)

	v1 := router.Group("/api/v1", config.CORS(app.Config.CORSAllowedOrigins), middlewares.ErrorHandler(app.Logger))
	v1.GET("/attendance/open", attendanceController.GetOpenSessions)
	v1.GET("/attendance/:userId/report", attendanceController.GetReport)
	v1.POST("/notify", notificationController.NotifyAll)
	v1.POST("/notify/:userId", notificationController.NotifyUser)

	router.GET("/ws", notificationController.HandleWebSocket)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return nil
}
