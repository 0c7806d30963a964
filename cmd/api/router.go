package api

import (
	"net/http"

	authDelivery "b4nkd-backend/internal/auth/delivery"
	categoryDelivery "b4nkd-backend/internal/category/delivery"
	deviceDelivery "b4nkd-backend/internal/device/delivery"
	notificationDelivery "b4nkd-backend/internal/notification/delivery"
	"b4nkd-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config, deviceHandler *deviceDelivery.DeviceHandler, categoryHandler *categoryDelivery.CategoryHandler, notificationHandler *notificationDelivery.NotificationHandler) {
	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		auth := authDelivery.AuthMiddleware(cfg.JWTSecret)

		// FCM token registry routes (protected)
		fcm := api.Group("/fcmtoken")
		fcm.Use(auth)
		{
			fcm.POST("/add", deviceHandler.AddToken)
			fcm.GET("/all", deviceHandler.GetAllTokens)
		}

		// User category routes (protected)
		categories := api.Group("/categories")
		categories.Use(auth)
		{
			categories.GET("", categoryHandler.GetCategories)
		}

		// Notification store + delivery routes (protected)
		notifications := api.Group("/notifications-table")
		notifications.Use(auth)
		{
			notifications.POST("/create", notificationHandler.CreateNotification)
			notifications.GET("/get-list", notificationHandler.GetNotifications)
			notifications.GET("/get-by-id/:id", notificationHandler.GetNotificationByID)
			notifications.PUT("/:id", notificationHandler.UpdateNotification)
			notifications.DELETE("/:id", notificationHandler.DeleteNotification)
			notifications.POST("/send", notificationHandler.SendBroadcast)
			notifications.POST("/send-category", notificationHandler.SendToCategory)
			notifications.POST("/send-users", notificationHandler.SendToUsers)
		}

		// Transaction alert feeds (protected)
		alerts := api.Group("/notification")
		alerts.Use(auth)
		{
			alerts.GET("/transactions", notificationHandler.GetLargeTransactions)
			alerts.POST("/same-transactions", notificationHandler.GetSameHourTransactions)
		}
	}
}
