package v1

import (
	"net/http"

	"github.com/financecoach/backend/internal/finance"
	"github.com/financecoach/backend/internal/httputil"
	"github.com/financecoach/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type GoalPlanEditable struct {
	GoalAmount decimal.Decimal `json:"goalAmount" example:"50000" minimum:"0"` // Amount to save
	Months     int             `json:"months" example:"12" minimum:"1"`        // Time horizon in months
	Month      types.Month     `json:"month" example:"2024-02"`                // Month whose savings are compared against the plan. Defaults to all transactions
}

// GoalPlan is the monthly saving needed to reach a goal.
type GoalPlan struct {
	GoalAmount      decimal.Decimal `json:"goalAmount" example:"50000"`
	Months          int             `json:"months" example:"12"`
	RequiredMonthly decimal.Decimal `json:"requiredMonthly" example:"4166.67"` // Amount to save every month
	CurrentSavings  decimal.Decimal `json:"currentSavings" example:"21549.25"` // Income minus spend of the baseline
	OnTrack         bool            `json:"onTrack" example:"true"`            // Current savings cover the required monthly amount
}

type GoalPlanResponse struct {
	Data  *GoalPlan `json:"data"`                                                                              // Data for the goal plan
	Error *string   `json:"error" example:"invalid input: the time horizon must be at least one month, got 0"` // The error, if any occurred
}

// RegisterGoalPlanRoutes registers the routes for goal plans with
// the RouterGroup that is passed.
func RegisterGoalPlanRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsGoalPlans)
	r.POST("", CreateGoalPlan)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goal Plans
// @Success		204
// @Router			/v1/goal-plans [options]
func OptionsGoalPlans(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Plan a savings goal
// @Description	Computes the monthly saving needed to reach a goal and whether current savings are sufficient. Nothing is stored.
// @Tags			Goal Plans
// @Accept			json
// @Produce		json
// @Success		200		{object}	GoalPlanResponse
// @Failure		400		{object}	GoalPlanResponse
// @Failure		422		{object}	GoalPlanResponse
// @Failure		500		{object}	GoalPlanResponse
// @Param			goal	body		GoalPlanEditable	true	"Goal"
// @Router			/v1/goal-plans [post]
func CreateGoalPlan(c *gin.Context) {
	var editable GoalPlanEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalPlanResponse{
			Error: &e,
		})
		return
	}

	_, report, err := analyze(editable.Month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalPlanResponse{
			Error: &e,
		})
		return
	}

	plan, err := finance.PlanGoal(editable.GoalAmount, editable.Months, report.Inputs.Savings)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalPlanResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, GoalPlanResponse{Data: &GoalPlan{
		GoalAmount:      plan.GoalAmount,
		Months:          plan.Months,
		RequiredMonthly: plan.RequiredMonthly,
		CurrentSavings:  plan.CurrentSavings,
		OnTrack:         plan.OnTrack,
	}})
}
