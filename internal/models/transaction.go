package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/financecoach/backend/internal/finance"
	"github.com/financecoach/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is a single expense.
//
// The category is assigned once on creation and never changes.
type Transaction struct {
	DefaultModel
	Date        time.Time       `gorm:"index"` // Time of day is only used for sorting
	Description string          `gorm:"index"`
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Category    finance.Category
}

// AfterFind enforces dates to be in UTC.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.Timestamps.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return
}

// BeforeCreate
//   - generates the ID
//   - trims whitespace from the description
//   - rejects negative amounts
//   - defaults the date to now and sets its timezone to UTC
//   - categorizes the transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) (err error) {
	err = t.DefaultModel.BeforeCreate(tx)
	if err != nil {
		return err
	}

	t.Description = strings.TrimSpace(t.Description)

	if t.Amount.IsNegative() {
		return fmt.Errorf("%w, got %s", ErrNegativeAmount, t.Amount)
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	t.Category = finance.Categorize(t.Description)
	return nil
}

// Finance returns the transaction as used in the analytics.
func (t Transaction) Finance() finance.Transaction {
	return finance.Transaction{
		Date:        t.Date,
		Description: t.Description,
		Amount:      t.Amount,
		Category:    t.Category,
	}
}

// InMonth restricts a query on transactions to the month. The zero month does not restrict the query.
func InMonth(db *gorm.DB, month types.Month) *gorm.DB {
	if month.IsZero() {
		return db
	}

	start := time.Time(month)
	return db.
		Where("transactions.date >= date(?)", start).
		Where("transactions.date < date(?)", start.AddDate(0, 1, 0))
}

// CreateTransactions stores all transactions in one database transaction.
// If any of them can not be stored, none are.
func CreateTransactions(db *gorm.DB, transactions []finance.Transaction) ([]Transaction, error) {
	created := make([]Transaction, 0, len(transactions))

	err := InTransaction(db, func(tx *gorm.DB) error {
		for _, t := range transactions {
			m := Transaction{
				Date:        t.Date,
				Description: t.Description,
				Amount:      t.Amount,
			}

			if err := tx.Create(&m).Error; err != nil {
				return err
			}

			created = append(created, m)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}
