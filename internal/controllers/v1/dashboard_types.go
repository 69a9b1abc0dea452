package v1

import (
	"github.com/financecoach/backend/internal/finance"
	"github.com/financecoach/backend/internal/types"
	"github.com/shopspring/decimal"
)

// CategorySpend is the total spend of one category.
type CategorySpend struct {
	Category finance.Category `json:"category" example:"Food"`
	Amount   decimal.Decimal  `json:"amount" example:"1450.75"`
	Share    decimal.Decimal  `json:"share" example:"0.42"` // Fraction of the total spend
}

// CategoryEvaluation is the budget adherence of one category.
type CategoryEvaluation struct {
	Category finance.Category `json:"category" example:"Entertainment"`
	Spent    decimal.Decimal  `json:"spent" example:"1800"`
	Budget   decimal.Decimal  `json:"budget" example:"1500"`
	Status   finance.Status   `json:"status" example:"over" enums:"within,over"`
	OverBy   decimal.Decimal  `json:"overBy" example:"300"` // Amount above the budget, 0 when within
}

type HealthScore struct {
	Score          decimal.Decimal `json:"score" example:"72.5"` // Overall score from 0 to 100
	Tier           finance.Tier    `json:"tier" example:"Fair" enums:"Excellent,Fair,Poor,Critical"`
	SavingsScore   decimal.Decimal `json:"savingsScore" example:"1"`
	BudgetScore    decimal.Decimal `json:"budgetScore" example:"0.8"`
	EmergencyScore decimal.Decimal `json:"emergencyScore" example:"1"`
	DebtScore      decimal.Decimal `json:"debtScore" example:"0.5"`
}

// Dashboard is the complete analysis of the transactions of a month.
type Dashboard struct {
	Month           types.Month              `json:"month" example:"2024-02"` // The month analyzed. null for all transactions
	Summary         []CategorySpend          `json:"summary"`                 // Spend per category with at least one transaction
	Evaluation      []CategoryEvaluation     `json:"evaluation"`              // Budget adherence per category with at least one transaction
	Limits          finance.Budgets          `json:"limits"`                  // The effective limit of every category
	Income          decimal.Decimal          `json:"income" example:"25000"`
	TotalSpent      decimal.Decimal          `json:"totalSpent" example:"3450.75"`
	TotalBudget     decimal.Decimal          `json:"totalBudget" example:"6000"`
	Overspent       decimal.Decimal          `json:"overspent" example:"0"` // Amount the total spend exceeds the total budget
	Savings         decimal.Decimal          `json:"savings" example:"21549.25"`
	SavingsRate     decimal.Decimal          `json:"savingsRate" example:"0.86"`
	Health          HealthScore              `json:"health"`
	Discipline      string                   `json:"discipline" example:"Excellent – Strong savings discipline"`
	Recommendations []finance.Recommendation `json:"recommendations"`
}

func newDashboard(month types.Month, r finance.Report) Dashboard {
	shares := r.Summary.Shares()

	summary := make([]CategorySpend, 0, len(r.Summary))
	for _, category := range r.Summary.Categories() {
		summary = append(summary, CategorySpend{
			Category: category,
			Amount:   r.Summary.Get(category),
			Share:    shares[category],
		})
	}

	evaluation := make([]CategoryEvaluation, 0, len(r.Evaluation.Categories))
	for _, ce := range r.Evaluation.Categories {
		evaluation = append(evaluation, CategoryEvaluation{
			Category: ce.Category,
			Spent:    ce.Spent,
			Budget:   ce.Budget,
			Status:   ce.Status,
			OverBy:   ce.OverBy,
		})
	}

	return Dashboard{
		Month:       month,
		Summary:     summary,
		Evaluation:  evaluation,
		Limits:      r.Limits,
		Income:      r.Inputs.Income,
		TotalSpent:  r.Inputs.TotalSpent,
		TotalBudget: r.Inputs.TotalBudget,
		Overspent:   r.Inputs.Overspent,
		Savings:     r.Inputs.Savings,
		SavingsRate: r.Inputs.SavingsRate,
		Health: HealthScore{
			Score:          r.Health.Score,
			Tier:           r.Health.Tier,
			SavingsScore:   r.Health.SavingsScore,
			BudgetScore:    r.Health.BudgetScore,
			EmergencyScore: r.Health.EmergencyScore,
			DebtScore:      r.Health.DebtScore,
		},
		Discipline:      r.Discipline,
		Recommendations: r.Recommendations,
	}
}

type DashboardResponse struct {
	Data  *Dashboard `json:"data"`                                                                  // Data for the dashboard
	Error *string    `json:"error" example:"invalid configuration: income must be positive, got 0"` // The error, if any occurred
}
