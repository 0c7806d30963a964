package delivery

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	auditdomain "b4nkd-backend/internal/audit/domain"
	categorydomain "b4nkd-backend/internal/category/domain"
	"b4nkd-backend/internal/notification/domain"
	"b4nkd-backend/internal/notification/dto"
	"b4nkd-backend/internal/notification/usecase"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationUsecase usecase.NotificationUsecase
}

func NewNotificationHandler(notificationUsecase usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{
		notificationUsecase: notificationUsecase,
	}
}

func requestInfo(c *gin.Context) auditdomain.RequestInfo {
	return auditdomain.RequestInfo{
		IPAddress: c.ClientIP(),
		Device:    c.Request.UserAgent(),
	}
}

func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	var req dto.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Title and description are required.",
		})
		return
	}

	notification, err := h.notificationUsecase.CreateNotification(
		req.Title, req.Description, req.Image, c.GetString("userID"), requestInfo(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to create notification.",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Notification created successfully.",
		"data":    notification,
	})
}

func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	page := 1
	limit := 10
	if parsed, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && parsed > 0 {
		page = parsed
	}
	if parsed, err := strconv.Atoi(c.DefaultQuery("limit", "10")); err == nil && parsed > 0 {
		limit = parsed
	}

	notifications, total, err := h.notificationUsecase.GetNotifications(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to retrieve notifications.",
		})
		return
	}

	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Notifications retrieved successfully.",
		"data":        notifications,
		"total":       total,
		"currentPage": page,
		"totalPages":  totalPages,
	})
}

func (h *NotificationHandler) GetNotificationByID(c *gin.Context) {
	notification, err := h.notificationUsecase.GetNotificationByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to retrieve notification.",
		})
		return
	}
	if notification == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Notification not found.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Notification retrieved successfully.",
		"data":    notification,
	})
}

func (h *NotificationHandler) UpdateNotification(c *gin.Context) {
	var req dto.UpdateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body.",
		})
		return
	}

	notification, err := h.notificationUsecase.UpdateNotification(c.Param("id"), usecase.NotificationUpdateRequest{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
	}, c.GetString("userID"), requestInfo(c))
	if err != nil {
		if errors.Is(err, usecase.ErrNotificationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Notification not found.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update notification.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Notification updated successfully.",
		"data":    notification,
	})
}

func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	deleted, err := h.notificationUsecase.DeleteNotification(c.Param("id"), c.GetString("userID"), requestInfo(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to delete notification.",
		})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Notification not found.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Notification deleted successfully.",
	})
}

func (h *NotificationHandler) SendBroadcast(c *gin.Context) {
	var req dto.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "notificationId is required.",
		})
		return
	}

	h.deliver(c, req.NotificationID, domain.Broadcast{})
}

func (h *NotificationHandler) SendToCategory(c *gin.Context) {
	var req dto.SendCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "notificationId and category are required.",
		})
		return
	}

	category, ok := categorydomain.ParseCategory(req.Category)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Unknown category: " + req.Category,
		})
		return
	}

	h.deliver(c, req.NotificationID, domain.ByCategory{Category: category})
}

func (h *NotificationHandler) SendToUsers(c *gin.Context) {
	var req dto.SendUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "notificationId and a non-empty userIds array are required.",
		})
		return
	}

	h.deliver(c, req.NotificationID, domain.ByUsers{UserIDs: req.UserIDs})
}

func (h *NotificationHandler) deliver(c *gin.Context, notificationID string, mode domain.TargetingMode) {
	outcome, err := h.notificationUsecase.Deliver(c.Request.Context(), notificationID, mode)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotificationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Notification not found.",
			})
		case errors.Is(err, usecase.ErrAllDispatchesFailed):
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": outcome.Message,
				"data":    outcome,
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Failed to send notification.",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": outcome.Message,
		"data":    outcome,
	})
}

func (h *NotificationHandler) GetLargeTransactions(c *gin.Context) {
	alerts, err := h.notificationUsecase.LargeTransactionAlerts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to retrieve transactions.",
		})
		return
	}
	if len(alerts) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "No transactions found with amount greater than or equal to 10000.",
			"data":    alerts,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Transactions retrieved successfully.",
		"data":    alerts,
	})
}

func (h *NotificationHandler) GetSameHourTransactions(c *gin.Context) {
	var req dto.SameTransactionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "currentTime is required.",
		})
		return
	}

	currentTime, err := time.Parse(time.RFC3339, req.CurrentTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "currentTime must be a valid RFC3339 timestamp.",
		})
		return
	}

	alerts, err := h.notificationUsecase.RecentTransactionAlerts(currentTime)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to retrieve transactions.",
		})
		return
	}
	if len(alerts) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "No transactions found within the last hour.",
			"data":    alerts,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Transactions retrieved successfully.",
		"data":    alerts,
	})
}
