package finance

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Tier is the qualitative classification of a health score.
type Tier string

const (
	Excellent Tier = "Excellent"
	Fair      Tier = "Fair"
	Poor      Tier = "Poor"
	Critical  Tier = "Critical"
)

// DefaultDebtScore is used until debts are tracked.
var DefaultDebtScore = decimal.NewFromFloat(0.5)

var (
	weightSavings   = decimal.NewFromFloat(0.4)
	weightBudget    = decimal.NewFromFloat(0.3)
	weightEmergency = decimal.NewFromFloat(0.2)
	weightDebt      = decimal.NewFromFloat(0.1)

	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// HealthScoreInputs are all values the health score is computed from.
type HealthScoreInputs struct {
	Income      decimal.Decimal
	TotalSpent  decimal.Decimal
	Savings     decimal.Decimal
	SavingsRate decimal.Decimal
	TotalBudget decimal.Decimal
	Overspent   decimal.Decimal
	DebtScore   decimal.Decimal
}

// NewHealthScoreInputs derives the inputs from the income and a budget evaluation.
func NewHealthScoreInputs(income decimal.Decimal, evaluation Evaluation, debtScore decimal.Decimal) (HealthScoreInputs, error) {
	if !income.IsPositive() {
		return HealthScoreInputs{}, fmt.Errorf("%w: income must be positive, got %s", ErrInvalidConfiguration, income)
	}

	savings := income.Sub(evaluation.TotalSpent)

	return HealthScoreInputs{
		Income:      income,
		TotalSpent:  evaluation.TotalSpent,
		Savings:     savings,
		SavingsRate: savings.Div(income),
		TotalBudget: evaluation.TotalBudget,
		Overspent:   evaluation.Overspent,
		DebtScore:   debtScore,
	}, nil
}

// HealthScore is the weighted composite of the sub-scores.
type HealthScore struct {
	Score          decimal.Decimal
	Tier           Tier
	SavingsScore   decimal.Decimal
	BudgetScore    decimal.Decimal
	EmergencyScore decimal.Decimal
	DebtScore      decimal.Decimal
}

// Score computes the financial health score in [0, 100] and its tier.
func Score(in HealthScoreInputs) (HealthScore, error) {
	if !in.Income.IsPositive() {
		return HealthScore{}, fmt.Errorf("%w: income must be positive, got %s", ErrInvalidConfiguration, in.Income)
	}

	if in.DebtScore.IsNegative() || in.DebtScore.GreaterThan(one) {
		return HealthScore{}, fmt.Errorf("%w: the debt score must be between 0 and 1, got %s", ErrInvalidConfiguration, in.DebtScore)
	}

	h := HealthScore{
		SavingsScore:   clamp(in.Savings.Div(in.Income)),
		BudgetScore:    budgetScore(in.Overspent, in.TotalBudget),
		EmergencyScore: emergencyScore(in.Savings, in.TotalSpent),
		DebtScore:      in.DebtScore,
	}

	h.Score = hundred.Mul(
		weightSavings.Mul(h.SavingsScore).
			Add(weightBudget.Mul(h.BudgetScore)).
			Add(weightEmergency.Mul(h.EmergencyScore)).
			Add(weightDebt.Mul(h.DebtScore)),
	)
	h.Tier = tierFor(h.Score)

	return h, nil
}

func budgetScore(overspent, totalBudget decimal.Decimal) decimal.Decimal {
	ratio := decimal.Zero
	if !totalBudget.IsZero() {
		ratio = overspent.Div(totalBudget)
	}

	switch {
	case !ratio.IsPositive():
		return decimal.NewFromInt(1)
	case ratio.LessThanOrEqual(decimal.NewFromFloat(0.10)):
		return decimal.NewFromFloat(0.7)
	case ratio.LessThanOrEqual(decimal.NewFromFloat(0.25)):
		return decimal.NewFromFloat(0.4)
	default:
		return decimal.NewFromFloat(0.1)
	}
}

// emergencyScore measures how many of three months of spend the savings cover.
// Without spend, the fund counts as fully covered.
func emergencyScore(savings, totalSpent decimal.Decimal) decimal.Decimal {
	if totalSpent.IsZero() {
		return one
	}

	return clamp(savings.Div(totalSpent.Mul(decimal.NewFromInt(3))))
}

func tierFor(score decimal.Decimal) Tier {
	switch {
	case score.GreaterThanOrEqual(decimal.NewFromInt(75)):
		return Excellent
	case score.GreaterThanOrEqual(decimal.NewFromInt(55)):
		return Fair
	case score.GreaterThanOrEqual(decimal.NewFromInt(35)):
		return Poor
	default:
		return Critical
	}
}

// clamp limits d to [0, 1].
func clamp(d decimal.Decimal) decimal.Decimal {
	return decimal.Min(one, decimal.Max(decimal.Zero, d))
}
