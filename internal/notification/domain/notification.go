package domain

import "time"

// Notification is an authored notification record. Deliveries read a
// snapshot of it; the record itself is managed by the admin CRUD endpoints.
type Notification struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
