package v1

import (
	"github.com/financecoach/backend/internal/finance"
	"github.com/financecoach/backend/internal/types"
	"github.com/shopspring/decimal"
)

type BudgetEditable struct {
	MonthlyBudget *decimal.Decimal            `json:"monthlyBudget" example:"5000"`                     // Monthly budget split evenly between the categories with spend. 0 uses the default limits
	Overrides     map[string]*decimal.Decimal `json:"overrides" example:"Food:2500,Entertainment:null"` // Fixed limits per category. null removes the override
}

// Budget is the budget configuration and the limits resulting from it.
type Budget struct {
	Month         types.Month     `json:"month" example:"2024-02"`      // The month the limits were computed for. null for all transactions
	MonthlyBudget decimal.Decimal `json:"monthlyBudget" example:"5000"` // The configured monthly budget
	Overrides     finance.Budgets `json:"overrides"`                    // Limits set explicitly per category
	Limits        finance.Budgets `json:"limits"`                       // The effective limit of every category
	Total         decimal.Decimal `json:"total" example:"5000"`         // Sum of all effective limits
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                                    // Data for the budget
	Error *string `json:"error" example:"invalid input: the budget for Food must not be negative"` // The error, if any occurred
}
