package finance

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Projection is the outcome of a what-if spending reduction.
type Projection struct {
	Category           Category
	CategorySpend      decimal.Decimal
	NewCategorySpend   decimal.Decimal
	NewTotalSpent      decimal.Decimal
	NewSavings         decimal.Decimal
	NewSavingsRate     decimal.Decimal
	CurrentSavingsRate decimal.Decimal
	Improves           bool
}

// Simulate projects totals and savings after reducing the spend in one category.
//
// The reduction is subtracted from the overall total as given, even where it exceeds
// the category spend. The category spend itself never drops below zero.
// The baseline is not modified.
func Simulate(baseline Summary, category Category, reduction, income, currentTotalSpent decimal.Decimal) (Projection, error) {
	if reduction.IsNegative() {
		return Projection{}, fmt.Errorf("%w: the reduction must not be negative, got %s", ErrInvalidInput, reduction)
	}

	if !income.IsPositive() {
		return Projection{}, fmt.Errorf("%w: income must be positive, got %s", ErrInvalidConfiguration, income)
	}

	spend := baseline.Get(category)
	newTotal := currentTotalSpent.Sub(reduction)
	newSavings := income.Sub(newTotal)
	currentRate := income.Sub(currentTotalSpent).Div(income)
	newRate := newSavings.Div(income)

	return Projection{
		Category:           category,
		CategorySpend:      spend,
		NewCategorySpend:   decimal.Max(decimal.Zero, spend.Sub(reduction)),
		NewTotalSpent:      newTotal,
		NewSavings:         newSavings,
		NewSavingsRate:     newRate,
		CurrentSavingsRate: currentRate,
		Improves:           newRate.GreaterThanOrEqual(currentRate),
	}, nil
}

// GoalPlan is the monthly saving needed to reach a goal.
type GoalPlan struct {
	GoalAmount      decimal.Decimal
	Months          int
	RequiredMonthly decimal.Decimal
	CurrentSavings  decimal.Decimal
	OnTrack         bool
}

// PlanGoal computes how much needs to be saved per month to reach goalAmount
// within the given number of months.
func PlanGoal(goalAmount decimal.Decimal, months int, currentSavings decimal.Decimal) (GoalPlan, error) {
	if months <= 0 {
		return GoalPlan{}, fmt.Errorf("%w: the time horizon must be at least one month, got %d", ErrInvalidInput, months)
	}

	if goalAmount.IsNegative() {
		return GoalPlan{}, fmt.Errorf("%w: the goal amount must not be negative, got %s", ErrInvalidInput, goalAmount)
	}

	required := goalAmount.Div(decimal.NewFromInt(int64(months)))

	return GoalPlan{
		GoalAmount:      goalAmount,
		Months:          months,
		RequiredMonthly: required,
		CurrentSavings:  currentSavings,
		OnTrack:         currentSavings.GreaterThanOrEqual(required),
	}, nil
}
