package v1

import (
	"net/http"

	"github.com/financecoach/backend/internal/finance"
	"github.com/financecoach/backend/internal/httputil"
	"github.com/financecoach/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type SimulationEditable struct {
	Category  string          `json:"category" example:"Entertainment"`    // Category to reduce the spend in
	Reduction decimal.Decimal `json:"reduction" example:"500" minimum:"0"` // Amount to cut
	Month     types.Month     `json:"month" example:"2024-02"`             // Month to use as baseline. Defaults to all transactions
}

// Simulation is the projected outcome of a spending reduction.
type Simulation struct {
	Category           finance.Category `json:"category" example:"Entertainment"`
	CategorySpend      decimal.Decimal  `json:"categorySpend" example:"1800"`    // Spend in the category before the reduction
	NewCategorySpend   decimal.Decimal  `json:"newCategorySpend" example:"1300"` // Spend in the category after the reduction, never below 0
	NewTotalSpent      decimal.Decimal  `json:"newTotalSpent" example:"2950.75"`
	NewSavings         decimal.Decimal  `json:"newSavings" example:"22049.25"`
	NewSavingsRate     decimal.Decimal  `json:"newSavingsRate" example:"0.88"`
	CurrentSavingsRate decimal.Decimal  `json:"currentSavingsRate" example:"0.86"`
	Improves           bool             `json:"improves" example:"true"` // The new savings rate is at least the current one
}

type SimulationResponse struct {
	Data  *Simulation `json:"data"`                                                       // Data for the simulation
	Error *string     `json:"error" example:"invalid input: unknown category \"Travel\""` // The error, if any occurred
}

// RegisterSimulationRoutes registers the routes for simulations with
// the RouterGroup that is passed.
func RegisterSimulationRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSimulations)
	r.POST("", CreateSimulation)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Simulations
// @Success		204
// @Router			/v1/simulations [options]
func OptionsSimulations(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Simulate a spending reduction
// @Description	Projects total spend and savings after reducing the spend in one category. Nothing is stored.
// @Tags			Simulations
// @Accept			json
// @Produce		json
// @Success		200			{object}	SimulationResponse
// @Failure		400			{object}	SimulationResponse
// @Failure		422			{object}	SimulationResponse
// @Failure		500			{object}	SimulationResponse
// @Param			simulation	body		SimulationEditable	true	"Simulation"
// @Router			/v1/simulations [post]
func CreateSimulation(c *gin.Context) {
	var editable SimulationEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SimulationResponse{
			Error: &e,
		})
		return
	}

	category, err := finance.ParseCategory(editable.Category)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SimulationResponse{
			Error: &e,
		})
		return
	}

	snapshot, report, err := analyze(editable.Month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SimulationResponse{
			Error: &e,
		})
		return
	}

	p, err := finance.Simulate(report.Summary, category, editable.Reduction, snapshot.Income, report.Inputs.TotalSpent)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SimulationResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, SimulationResponse{Data: &Simulation{
		Category:           p.Category,
		CategorySpend:      p.CategorySpend,
		NewCategorySpend:   p.NewCategorySpend,
		NewTotalSpent:      p.NewTotalSpent,
		NewSavings:         p.NewSavings,
		NewSavingsRate:     p.NewSavingsRate,
		CurrentSavingsRate: p.CurrentSavingsRate,
		Improves:           p.Improves,
	}})
}
