package domain

import "time"

// TransactionAlert is one row of the operator-facing transaction feeds:
// large transactions and recent-hour activity, joined with profile names.
type TransactionAlert struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
	Action    string    `json:"action"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
}
