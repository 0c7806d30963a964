package usecase

import (
	"context"
	"errors"
	"time"

	auditdomain "b4nkd-backend/internal/audit/domain"
	"b4nkd-backend/internal/notification/domain"
	"b4nkd-backend/pkg/fcm"
)

var (
	// ErrNotificationNotFound is returned when the notification id resolves
	// to nothing; no dispatch is attempted in that case
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrAllDispatchesFailed is returned when every dispatch of a non-empty
	// target set was rejected. Token cleanup has already run when this is
	// returned, and the outcome carries the full counts.
	ErrAllDispatchesFailed = errors.New("failed to send notification to any device")
)

// Gateway is the push gateway contract: one token, one payload, one outcome
// per call.
type Gateway interface {
	SendToDevice(ctx context.Context, token string, notification fcm.NotificationData) error
}

// NotificationUpdateRequest contains optional fields for updating a notification
type NotificationUpdateRequest struct {
	Title       *string
	Description *string
	Image       *string
}

// NotificationUsecase owns the notification store and the delivery engine.
type NotificationUsecase interface {
	// CreateNotification stores a new notification record
	CreateNotification(title, description, image, actor string, info auditdomain.RequestInfo) (*domain.Notification, error)

	// GetNotifications returns one page of notifications with the total count
	GetNotifications(page, limit int) ([]*domain.Notification, int64, error)

	// GetNotificationByID returns a notification; (nil, nil) when absent
	GetNotificationByID(id string) (*domain.Notification, error)

	// UpdateNotification applies partial updates to a notification
	UpdateNotification(id string, updates NotificationUpdateRequest, actor string, info auditdomain.RequestInfo) (*domain.Notification, error)

	// DeleteNotification removes a notification; reports whether it existed
	DeleteNotification(id, actor string, info auditdomain.RequestInfo) (bool, error)

	// Deliver resolves the target token set for the given mode, dispatches
	// the notification concurrently to every token, prunes tokens whose
	// dispatch was rejected, and returns the aggregated outcome. A non-nil
	// outcome accompanies ErrAllDispatchesFailed.
	Deliver(ctx context.Context, notificationID string, mode domain.TargetingMode) (*domain.DeliveryOutcome, error)

	// LargeTransactionAlerts returns ledger entries at or above the alert
	// threshold, joined with profile names
	LargeTransactionAlerts() ([]domain.TransactionAlert, error)

	// RecentTransactionAlerts returns ledger entries from the hour before
	// the given time, joined with profile names
	RecentTransactionAlerts(currentTime time.Time) ([]domain.TransactionAlert, error)
}
