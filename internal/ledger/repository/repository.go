package repository

import (
	"time"

	"b4nkd-backend/internal/ledger/domain"
)

// TransactionRepository defines the read-side interface over the ledger
type TransactionRepository interface {
	// SumFlowsByUser groups all ledger entries by user, summing income-flow
	// amounts into Income and spend-flow amounts into Expense. Users with no
	// entries do not appear.
	SumFlowsByUser() ([]domain.UserFlow, error)

	// FindAboveAmount returns entries with amount >= min, newest first
	FindAboveAmount(min float64) ([]*domain.Transaction, error)

	// FindInWindow returns entries with from <= transaction_date < to
	FindInWindow(from, to time.Time) ([]*domain.Transaction, error)
}
