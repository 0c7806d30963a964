package domain

import "time"

// SystemLog records a mutating operation for the audit trail: who did what,
// from where, and the data involved.
type SystemLog struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	Operation     string    `json:"operation" gorm:"index;not null"` // e.g. CREATE_FCM_TOKEN, UPDATE
	OperationBy   string    `json:"operation_by" gorm:"index"`       // acting user id, may be empty
	Key           string    `json:"key"`                             // operation identifier, e.g. add-fcm-token
	IPAddress     string    `json:"ip_address"`
	Device        string    `json:"device"`
	OperationData string    `json:"operation_data" gorm:"type:text"` // JSON snapshot
	CreatedAt     time.Time `json:"created_at"`
}

// RequestInfo carries caller metadata attached to audit entries.
type RequestInfo struct {
	IPAddress string
	Device    string
}
