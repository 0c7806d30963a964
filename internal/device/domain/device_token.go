package domain

import "time"

// DeviceToken maps a push-gateway token to one installed app instance and,
// once the device has authenticated, to the user who owns it. The token
// value is globally unique: re-registering an existing token updates its
// owner instead of creating a second row.
type DeviceToken struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Token     string    `json:"token" gorm:"uniqueIndex;not null"`
	UserID    string    `json:"user_id" gorm:"index"` // empty until the device authenticates
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
