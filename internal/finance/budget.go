package finance

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Status is the budget adherence of a single category.
type Status string

const (
	Within Status = "within"
	Over   Status = "over"
)

// Budgets maps categories to their monetary limit.
type Budgets map[Category]decimal.Decimal

// DefaultLimits are the seed values for the per-category limits.
// They only apply when neither a monthly budget nor an override is configured.
var DefaultLimits = Budgets{
	Food:          decimal.NewFromInt(2000),
	Transport:     decimal.NewFromInt(800),
	Entertainment: decimal.NewFromInt(1500),
	Utilities:     decimal.NewFromInt(1200),
	Other:         decimal.NewFromInt(500),
}

// Total returns the sum of all limits.
func (b Budgets) Total() decimal.Decimal {
	total := decimal.Zero
	for _, v := range b {
		total = total.Add(v)
	}

	return total
}

// BudgetConfig is the user editable budget configuration.
type BudgetConfig struct {
	MonthlyBudget decimal.Decimal
	Overrides     Budgets
}

// Validate rejects negative budget values.
func (c BudgetConfig) Validate() error {
	if c.MonthlyBudget.IsNegative() {
		return fmt.Errorf("%w: the monthly budget must not be negative", ErrInvalidInput)
	}

	for category, limit := range c.Overrides {
		if limit.IsNegative() {
			return fmt.Errorf("%w: the budget for %s must not be negative", ErrInvalidInput, category)
		}
	}

	return nil
}

// Limits returns the effective per-category limits for the active categories.
//
// With a monthly budget set, it is split evenly (rounded down to whole units)
// between the active categories. Without one, DefaultLimits are used.
// Overrides take precedence in both cases.
func (c BudgetConfig) Limits(active []Category) Budgets {
	limits := Budgets{}

	if c.MonthlyBudget.IsPositive() {
		if len(active) > 0 {
			share := c.MonthlyBudget.Div(decimal.NewFromInt(int64(len(active)))).Floor()
			for _, category := range active {
				limits[category] = share
			}
		}
	} else {
		for category, limit := range DefaultLimits {
			limits[category] = limit
		}
	}

	for category, limit := range c.Overrides {
		limits[category] = limit
	}

	return limits
}

// CategoryEvaluation is the budget adherence for one category.
type CategoryEvaluation struct {
	Category Category
	Spent    decimal.Decimal
	Budget   decimal.Decimal
	Status   Status
	OverBy   decimal.Decimal
}

// Evaluation is the result of comparing a summary against budgets.
type Evaluation struct {
	Categories  []CategoryEvaluation
	TotalSpent  decimal.Decimal
	TotalBudget decimal.Decimal
	Overspent   decimal.Decimal
}

// Evaluate compares the spend of every category in the summary with its budget.
//
// Categories missing from budgets have a limit of zero, so any spend is over budget.
func Evaluate(summary Summary, budgets Budgets) Evaluation {
	e := Evaluation{
		Categories:  make([]CategoryEvaluation, 0, len(summary)),
		TotalSpent:  summary.Total(),
		TotalBudget: budgets.Total(),
	}

	for _, category := range summary.Categories() {
		spent := summary.Get(category)
		budget, ok := budgets[category]
		if !ok {
			budget = decimal.Zero
		}

		ce := CategoryEvaluation{
			Category: category,
			Spent:    spent,
			Budget:   budget,
			Status:   Within,
			OverBy:   decimal.Zero,
		}

		if spent.GreaterThan(budget) {
			ce.Status = Over
			ce.OverBy = spent.Sub(budget)
		}

		e.Categories = append(e.Categories, ce)
	}

	e.Overspent = decimal.Max(decimal.Zero, e.TotalSpent.Sub(e.TotalBudget))

	return e
}

// Find returns the evaluation for a category and whether it is present.
func (e Evaluation) Find(c Category) (CategoryEvaluation, bool) {
	for _, ce := range e.Categories {
		if ce.Category == c {
			return ce, true
		}
	}

	return CategoryEvaluation{}, false
}
