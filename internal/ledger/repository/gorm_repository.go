package repository

import (
	"time"

	"b4nkd-backend/internal/ledger/domain"

	"gorm.io/gorm"
)

// gormTransactionRepository implements TransactionRepository using GORM
type gormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GORM-based TransactionRepository
func NewGormTransactionRepository(db *gorm.DB) TransactionRepository {
	return &gormTransactionRepository{db: db}
}

func (r *gormTransactionRepository) SumFlowsByUser() ([]domain.UserFlow, error) {
	var flows []domain.UserFlow
	err := r.db.Model(&domain.Transaction{}).
		Select(
			"user_id, "+
				"SUM(CASE WHEN flow_type = ? THEN amount ELSE 0 END) AS income, "+
				"SUM(CASE WHEN flow_type IN (?, ?, ?) THEN amount ELSE 0 END) AS expense",
			domain.FlowIncome, domain.FlowNeeds, domain.FlowWants, domain.FlowSavings,
		).
		Group("user_id").
		Scan(&flows).Error
	if err != nil {
		return nil, err
	}
	return flows, nil
}

func (r *gormTransactionRepository) FindAboveAmount(min float64) ([]*domain.Transaction, error) {
	var entries []*domain.Transaction
	err := r.db.Where("amount >= ?", min).
		Order("transaction_date DESC").
		Find(&entries).Error
	return entries, err
}

func (r *gormTransactionRepository) FindInWindow(from, to time.Time) ([]*domain.Transaction, error) {
	var entries []*domain.Transaction
	err := r.db.Where("transaction_date >= ? AND transaction_date < ?", from, to).
		Order("transaction_date DESC").
		Find(&entries).Error
	return entries, err
}
