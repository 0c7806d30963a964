package domain

import "time"

// FlowType tags a ledger entry as money coming in or one of the three spend
// classifications.
type FlowType string

const (
	FlowIncome  FlowType = "Income"
	FlowNeeds   FlowType = "Needs"
	FlowWants   FlowType = "Wants"
	FlowSavings FlowType = "Savings"
)

// SpendFlows are the flow types summed into a user's expense total.
var SpendFlows = []FlowType{FlowNeeds, FlowWants, FlowSavings}

// Transaction is one ledger entry. The ledger is written by the transaction
// ingestion subsystem; this service only aggregates it.
type Transaction struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	UserID          string    `json:"user_id" gorm:"index;not null"`
	Amount          float64   `json:"amount" gorm:"not null"`
	FlowType        FlowType  `json:"flow_type" gorm:"index;not null"`
	TransactionDate time.Time `json:"transaction_date" gorm:"index"`
	CreatedAt       time.Time `json:"created_at"`
}

// UserFlow is the per-user aggregate of income against spend.
type UserFlow struct {
	UserID  string  `json:"user_id"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}
