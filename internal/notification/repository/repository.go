package repository

import "b4nkd-backend/internal/notification/domain"

// NotificationRepository defines the interface for notification persistence
type NotificationRepository interface {
	// Create stores a new notification
	Create(notification *domain.Notification) error

	// FindByID finds a notification by id; (nil, nil) when absent
	FindByID(id string) (*domain.Notification, error)

	// FindPage returns one page of notifications, newest first, with the
	// total count
	FindPage(page, limit int) ([]*domain.Notification, int64, error)

	// Update saves changes to an existing notification
	Update(notification *domain.Notification) error

	// Delete removes a notification by id; reports whether a row was removed
	Delete(id string) (bool, error)
}
