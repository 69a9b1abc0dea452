package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/financecoach/backend/internal/finance"
	"github.com/financecoach/backend/internal/importer"
	"github.com/financecoach/backend/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type reportCmd struct {
	File          string            `short:"f" required:"" type:"existingfile" help:"CSV file with the columns Date, Description and Amount."`
	Month         string            `help:"Only use transactions of this month (YYYY-MM)."`
	Income        decimal.Decimal   `default:"25000" help:"Monthly income."`
	MonthlyBudget decimal.Decimal   `name:"monthly-budget" default:"0" help:"Total monthly budget, split evenly between the categories with spend. 0 uses the default limits."`
	Limit         map[string]string `help:"Budget limit for a category, e.g. Food=2000. Can be repeated."`
	DebtScore     decimal.Decimal   `name:"debt-score" default:"0.5" help:"Debt sub-score between 0 and 1."`

	SimulateCategory  string          `name:"simulate-category" help:"Category to simulate a spending reduction for."`
	SimulateReduction decimal.Decimal `name:"simulate-reduction" default:"0" help:"Amount to reduce the simulated category by."`

	Goal   decimal.Decimal `default:"0" help:"Savings goal to plan for."`
	Months int             `default:"0" help:"Months to reach the savings goal in."`

	LogFormat string `name:"log-format" default:"human" enum:"human,json" help:"Format of log output (${enum})."`
}

type categoryLine struct {
	Category finance.Category `json:"category"`
	Spent    decimal.Decimal  `json:"spent"`
	Share    decimal.Decimal  `json:"share"`
	Budget   decimal.Decimal  `json:"budget"`
	Status   finance.Status   `json:"status"`
	OverBy   decimal.Decimal  `json:"overBy"`
}

type healthLine struct {
	Score          decimal.Decimal `json:"score"`
	Tier           finance.Tier    `json:"tier"`
	SavingsScore   decimal.Decimal `json:"savingsScore"`
	BudgetScore    decimal.Decimal `json:"budgetScore"`
	EmergencyScore decimal.Decimal `json:"emergencyScore"`
	DebtScore      decimal.Decimal `json:"debtScore"`
}

type simulationLine struct {
	Category         finance.Category `json:"category"`
	Reduction        decimal.Decimal  `json:"reduction"`
	NewCategorySpend decimal.Decimal  `json:"newCategorySpend"`
	NewTotalSpent    decimal.Decimal  `json:"newTotalSpent"`
	NewSavings       decimal.Decimal  `json:"newSavings"`
	NewSavingsRate   decimal.Decimal  `json:"newSavingsRate"`
	Improves         bool             `json:"improves"`
}

type goalLine struct {
	GoalAmount      decimal.Decimal `json:"goalAmount"`
	Months          int             `json:"months"`
	RequiredMonthly decimal.Decimal `json:"requiredMonthly"`
	OnTrack         bool            `json:"onTrack"`
}

type output struct {
	Month           string                   `json:"month,omitempty"`
	Transactions    int                      `json:"transactions"`
	Categories      []categoryLine           `json:"categories"`
	Income          decimal.Decimal          `json:"income"`
	TotalSpent      decimal.Decimal          `json:"totalSpent"`
	TotalBudget     decimal.Decimal          `json:"totalBudget"`
	Overspent       decimal.Decimal          `json:"overspent"`
	Savings         decimal.Decimal          `json:"savings"`
	SavingsRate     decimal.Decimal          `json:"savingsRate"`
	Health          healthLine               `json:"health"`
	Discipline      string                   `json:"discipline"`
	Recommendations []finance.Recommendation `json:"recommendations"`
	Simulation      *simulationLine          `json:"simulation,omitempty"`
	GoalPlan        *goalLine                `json:"goalPlan,omitempty"`
}

// budget converts the command line limits to the budget configuration.
func (r reportCmd) budget() (finance.BudgetConfig, error) {
	config := finance.BudgetConfig{
		MonthlyBudget: r.MonthlyBudget,
		Overrides:     finance.Budgets{},
	}

	for name, value := range r.Limit {
		category, err := finance.ParseCategory(name)
		if err != nil {
			return finance.BudgetConfig{}, err
		}

		limit, err := decimal.NewFromString(value)
		if err != nil {
			return finance.BudgetConfig{}, fmt.Errorf("%w: the limit for %s is not a number: %q", finance.ErrInvalidInput, category, value)
		}
		config.Overrides[category] = limit
	}

	return config, nil
}

func (r reportCmd) transactions() ([]finance.Transaction, error) {
	f, err := os.Open(r.File)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	transactions, err := importer.ParseCSV(f)
	if err != nil {
		return nil, err
	}

	if r.Month == "" {
		return transactions, nil
	}

	month, err := types.ParseMonth(r.Month)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", finance.ErrInvalidInput, err)
	}

	filtered := make([]finance.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if month.Contains(t.Date) {
			filtered = append(filtered, t)
		}
	}

	return filtered, nil
}

// run computes the report and writes it as indented JSON to w.
func (r reportCmd) run(w io.Writer) error {
	budget, err := r.budget()
	if err != nil {
		return err
	}

	transactions, err := r.transactions()
	if err != nil {
		return err
	}
	log.Debug().Int("count", len(transactions)).Str("file", r.File).Msg("Parsed transactions")

	report, err := finance.Analyze(finance.Snapshot{
		Transactions: transactions,
		Budget:       budget,
		Income:       r.Income,
		DebtScore:    r.DebtScore,
	})
	if err != nil {
		return err
	}

	out := output{
		Month:           r.Month,
		Transactions:    len(transactions),
		Categories:      make([]categoryLine, 0, len(report.Evaluation.Categories)),
		Income:          report.Inputs.Income,
		TotalSpent:      report.Inputs.TotalSpent,
		TotalBudget:     report.Inputs.TotalBudget,
		Overspent:       report.Inputs.Overspent,
		Savings:         report.Inputs.Savings,
		SavingsRate:     report.Inputs.SavingsRate.Round(4),
		Discipline:      report.Discipline,
		Recommendations: report.Recommendations,
		Health: healthLine{
			Score:          report.Health.Score.Round(2),
			Tier:           report.Health.Tier,
			SavingsScore:   report.Health.SavingsScore.Round(4),
			BudgetScore:    report.Health.BudgetScore,
			EmergencyScore: report.Health.EmergencyScore.Round(4),
			DebtScore:      report.Health.DebtScore,
		},
	}

	shares := report.Summary.Shares()
	for _, e := range report.Evaluation.Categories {
		out.Categories = append(out.Categories, categoryLine{
			Category: e.Category,
			Spent:    e.Spent,
			Share:    shares[e.Category].Round(4),
			Budget:   e.Budget,
			Status:   e.Status,
			OverBy:   e.OverBy,
		})
	}

	if r.SimulateCategory != "" {
		category, err := finance.ParseCategory(r.SimulateCategory)
		if err != nil {
			return err
		}

		p, err := finance.Simulate(report.Summary, category, r.SimulateReduction, report.Inputs.Income, report.Inputs.TotalSpent)
		if err != nil {
			return err
		}

		out.Simulation = &simulationLine{
			Category:         p.Category,
			Reduction:        r.SimulateReduction,
			NewCategorySpend: p.NewCategorySpend,
			NewTotalSpent:    p.NewTotalSpent,
			NewSavings:       p.NewSavings,
			NewSavingsRate:   p.NewSavingsRate.Round(4),
			Improves:         p.Improves,
		}
	}

	if !r.Goal.IsZero() || r.Months != 0 {
		plan, err := finance.PlanGoal(r.Goal, r.Months, report.Inputs.Savings)
		if err != nil {
			return err
		}

		out.GoalPlan = &goalLine{
			GoalAmount:      plan.GoalAmount,
			Months:          plan.Months,
			RequiredMonthly: plan.RequiredMonthly.Round(2),
			OnTrack:         plan.OnTrack,
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
