package models

import (
	"fmt"

	"github.com/financecoach/backend/internal/finance"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BudgetLimit overrides the limit for a single category.
type BudgetLimit struct {
	Category finance.Category `gorm:"primaryKey"`
	Amount   decimal.Decimal  `gorm:"type:DECIMAL(20,8)"`
	Timestamps
}

// BeforeSave rejects negative limits.
func (b *BudgetLimit) BeforeSave(_ *gorm.DB) error {
	if b.Amount.IsNegative() {
		return fmt.Errorf("%w: the budget for %s must not be negative", finance.ErrInvalidInput, b.Category)
	}

	return nil
}

// Overrides returns all configured limit overrides.
func Overrides(db *gorm.DB) (finance.Budgets, error) {
	var limits []BudgetLimit
	err := db.Find(&limits).Error
	if err != nil {
		return nil, err
	}

	overrides := finance.Budgets{}
	for _, l := range limits {
		overrides[l.Category] = l.Amount
	}

	return overrides, nil
}

// SetOverride creates or replaces the limit override for the category.
// A nil amount removes the override.
func SetOverride(db *gorm.DB, category finance.Category, amount *decimal.Decimal) error {
	if amount == nil {
		return db.Where(&BudgetLimit{Category: category}).Delete(&BudgetLimit{}).Error
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
	}).Create(&BudgetLimit{Category: category, Amount: *amount}).Error
}
