package models

import (
	"github.com/financecoach/backend/internal/finance"
	"github.com/financecoach/backend/internal/types"
	"gorm.io/gorm"
)

// Snapshot loads everything the analytics need for one month.
// For the zero month, all transactions are used.
func Snapshot(db *gorm.DB, month types.Month) (finance.Snapshot, error) {
	settings, err := GetSettings(db)
	if err != nil {
		return finance.Snapshot{}, err
	}

	overrides, err := Overrides(db)
	if err != nil {
		return finance.Snapshot{}, err
	}

	var stored []Transaction
	err = InMonth(db, month).Order("transactions.date ASC, transactions.created_at ASC").Find(&stored).Error
	if err != nil {
		return finance.Snapshot{}, err
	}

	transactions := make([]finance.Transaction, 0, len(stored))
	for _, t := range stored {
		transactions = append(transactions, t.Finance())
	}

	return finance.Snapshot{
		Transactions: transactions,
		Budget: finance.BudgetConfig{
			MonthlyBudget: settings.MonthlyBudget,
			Overrides:     overrides,
		},
		Income:    settings.Income,
		DebtScore: settings.DebtScore,
	}, nil
}
