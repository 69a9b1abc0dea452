package finance

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Snapshot is the complete state a report is computed from.
type Snapshot struct {
	Transactions []Transaction
	Budget       BudgetConfig
	Income       decimal.Decimal
	DebtScore    decimal.Decimal
}

// Report contains every derived value of a snapshot.
type Report struct {
	Summary         Summary
	Limits          Budgets
	Evaluation      Evaluation
	Inputs          HealthScoreInputs
	Health          HealthScore
	Discipline      string
	Recommendations []Recommendation
}

// Analyze runs one full computation pass over the snapshot.
// Each derived value is computed exactly once and passed on to the steps needing it.
func Analyze(s Snapshot) (Report, error) {
	if err := s.Budget.Validate(); err != nil {
		return Report{}, err
	}

	summary := Aggregate(s.Transactions)
	limits := s.Budget.Limits(summary.Categories())
	evaluation := Evaluate(summary, limits)

	inputs, err := NewHealthScoreInputs(s.Income, evaluation, s.DebtScore)
	if err != nil {
		return Report{}, err
	}

	health, err := Score(inputs)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Summary:         summary,
		Limits:          limits,
		Evaluation:      evaluation,
		Inputs:          inputs,
		Health:          health,
		Discipline:      Discipline(inputs.SavingsRate),
		Recommendations: Recommend(evaluation),
	}, nil
}

// Discipline describes the savings rate in words.
func Discipline(savingsRate decimal.Decimal) string {
	switch {
	case savingsRate.GreaterThanOrEqual(decimal.NewFromFloat(0.30)):
		return "Excellent – Strong savings discipline"
	case savingsRate.GreaterThanOrEqual(decimal.NewFromFloat(0.20)):
		return "Good – On track but can optimize"
	case savingsRate.GreaterThanOrEqual(decimal.NewFromFloat(0.10)):
		return "Risk – Low savings, reduce discretionary spend"
	default:
		return "Critical – Immediate spending control needed"
	}
}

// Recommendation is a suggestion derived from the budget evaluation.
type Recommendation struct {
	Code    string `json:"code" example:"reduce-entertainment"`
	Message string `json:"message" example:"Reduce entertainment expenses to improve savings."`
}

var printer = message.NewPrinter(language.English)

// formatAmount formats a non-negative amount with thousands separators and two decimals.
// The integer part is grouped by the printer, the fraction is taken from the decimal
// so that large amounts stay exact.
func formatAmount(d decimal.Decimal) string {
	d = d.Round(2)
	fraction := d.Sub(d.Truncate(0)).Abs().StringFixed(2)

	return printer.Sprintf("%d", d.IntPart()) + strings.TrimPrefix(fraction, "0")
}

// Recommend returns suggestions for the categories over budget.
// Setting aside a fifth of the income is always recommended.
func Recommend(e Evaluation) []Recommendation {
	var out []Recommendation

	if ce, ok := e.Find(Entertainment); ok && ce.Status == Over {
		out = append(out, Recommendation{
			Code:    "reduce-entertainment",
			Message: printer.Sprintf("Reduce entertainment expenses to improve savings. You are %s over budget.", formatAmount(ce.OverBy)),
		})
	}

	if ce, ok := e.Find(Food); ok && ce.Status == Over {
		out = append(out, Recommendation{
			Code:    "cook-at-home",
			Message: printer.Sprintf("Consider home-cooked meals to lower food spending. You are %s over budget.", formatAmount(ce.OverBy)),
		})
	}

	return append(out, Recommendation{
		Code:    "save-20-percent",
		Message: "Set aside at least 20% of monthly income as savings.",
	})
}
