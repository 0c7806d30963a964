package api

import (
	categoryDelivery "b4nkd-backend/internal/category/delivery"
	categoryUsecase "b4nkd-backend/internal/category/usecase"
	deviceDelivery "b4nkd-backend/internal/device/delivery"
	deviceUsecase "b4nkd-backend/internal/device/usecase"
	notificationDelivery "b4nkd-backend/internal/notification/delivery"
	notificationUsecase "b4nkd-backend/internal/notification/usecase"
	"b4nkd-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	config              *config.Config
	deviceHandler       *deviceDelivery.DeviceHandler
	categoryHandler     *categoryDelivery.CategoryHandler
	notificationHandler *notificationDelivery.NotificationHandler
}

func NewHandler(cfg *config.Config, deviceUc deviceUsecase.DeviceUsecase, categoryUc categoryUsecase.CategoryUsecase, notificationUc notificationUsecase.NotificationUsecase) *Handler {
	return &Handler{
		config:              cfg,
		deviceHandler:       deviceDelivery.NewDeviceHandler(deviceUc),
		categoryHandler:     categoryDelivery.NewCategoryHandler(categoryUc),
		notificationHandler: notificationDelivery.NewNotificationHandler(notificationUc),
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.config, h.deviceHandler, h.categoryHandler, h.notificationHandler)

	return r.Run(addr)
}
