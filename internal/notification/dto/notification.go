package dto

type CreateNotificationRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Image       string `json:"image"`
}

type UpdateNotificationRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

type SendRequest struct {
	NotificationID string `json:"notificationId" binding:"required"`
}

type SendCategoryRequest struct {
	NotificationID string `json:"notificationId" binding:"required"`
	Category       string `json:"category" binding:"required"`
}

type SendUsersRequest struct {
	NotificationID string   `json:"notificationId" binding:"required"`
	UserIDs        []string `json:"userIds" binding:"required,min=1"`
}

type SameTransactionsRequest struct {
	CurrentTime string `json:"currentTime" binding:"required"`
}
