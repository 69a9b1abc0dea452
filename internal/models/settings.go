package models

import (
	"fmt"
	"time"

	"github.com/financecoach/backend/internal/finance"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// settingsID is the primary key of the only Settings row.
const settingsID = 1

// Settings holds the values the analytics need besides the transactions.
type Settings struct {
	ID            uint            `gorm:"primaryKey" json:"-"`
	Income        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	MonthlyBudget decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Zero means that the default limits are used
	DebtScore     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	UpdatedAt     time.Time
}

// DefaultSettings are stored when the settings are read for the first time.
// The server replaces them with the configured values on startup.
var DefaultSettings = Settings{
	Income:        decimal.NewFromInt(25000),
	MonthlyBudget: decimal.Zero,
	DebtScore:     finance.DefaultDebtScore,
}

// BeforeSave validates the settings.
func (s *Settings) BeforeSave(_ *gorm.DB) error {
	if !s.Income.IsPositive() {
		return fmt.Errorf("%w: income must be positive, got %s", finance.ErrInvalidConfiguration, s.Income)
	}

	if s.MonthlyBudget.IsNegative() {
		return fmt.Errorf("%w: the monthly budget must not be negative", finance.ErrInvalidInput)
	}

	if s.DebtScore.IsNegative() || s.DebtScore.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: the debt score must be between 0 and 1, got %s", finance.ErrInvalidConfiguration, s.DebtScore)
	}

	s.ID = settingsID
	return nil
}

// AfterFind enforces the timestamp to be in UTC.
func (s *Settings) AfterFind(_ *gorm.DB) error {
	s.UpdatedAt = s.UpdatedAt.In(time.UTC)
	return nil
}

// GetSettings returns the stored settings, seeding DefaultSettings if there are none.
func GetSettings(db *gorm.DB) (Settings, error) {
	var s Settings
	err := db.Attrs(DefaultSettings).FirstOrCreate(&s, Settings{ID: settingsID}).Error
	if err != nil {
		return Settings{}, err
	}

	return s, nil
}

// UpdateSettings persists the settings.
func UpdateSettings(db *gorm.DB, s Settings) (Settings, error) {
	s.ID = settingsID

	err := db.Save(&s).Error
	if err != nil {
		return Settings{}, err
	}

	return s, nil
}
