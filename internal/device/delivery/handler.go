package delivery

import (
	"errors"
	"net/http"

	auditdomain "b4nkd-backend/internal/audit/domain"
	"b4nkd-backend/internal/device/dto"
	"b4nkd-backend/internal/device/usecase"

	"github.com/gin-gonic/gin"
)

type DeviceHandler struct {
	deviceUsecase usecase.DeviceUsecase
}

func NewDeviceHandler(deviceUsecase usecase.DeviceUsecase) *DeviceHandler {
	return &DeviceHandler{
		deviceUsecase: deviceUsecase,
	}
}

func (h *DeviceHandler) AddToken(c *gin.Context) {
	var req dto.AddTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Token is required and must be a non-empty string.",
		})
		return
	}

	info := auditdomain.RequestInfo{
		IPAddress: c.ClientIP(),
		Device:    c.Request.UserAgent(),
	}

	record, reassigned, err := h.deviceUsecase.Register(req.Token, req.UserID, info)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidToken):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Token is required and must be a non-empty string.",
			})
		case errors.Is(err, usecase.ErrAlreadyRegistered):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "This token is already registered.",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Something went wrong while adding the FCM token.",
			})
		}
		return
	}

	message := "FCM Token added successfully."
	if reassigned {
		message = "FCM Token updated with new user ID."
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"data":    record,
	})
}

func (h *DeviceHandler) GetAllTokens(c *gin.Context) {
	tokens, err := h.deviceUsecase.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Something went wrong while fetching FCM tokens.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "FCM Tokens retrieved successfully.",
		"data":    tokens,
	})
}
