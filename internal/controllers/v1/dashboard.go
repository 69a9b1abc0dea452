package v1

import (
	"net/http"

	"github.com/financecoach/backend/internal/finance"
	"github.com/financecoach/backend/internal/httputil"
	"github.com/financecoach/backend/internal/models"
	"github.com/financecoach/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDashboard)
	r.GET("", GetDashboard)
}

// analyze loads the snapshot for the month and computes the report from it.
func analyze(month types.Month) (finance.Snapshot, finance.Report, error) {
	snapshot, err := models.Snapshot(models.DB, month)
	if err != nil {
		return finance.Snapshot{}, finance.Report{}, err
	}

	report, err := finance.Analyze(snapshot)
	if err != nil {
		return finance.Snapshot{}, finance.Report{}, err
	}

	return snapshot, report, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns the spending summary, budget evaluation, financial health score and recommendations
// @Tags			Dashboard
// @Produce		json
// @Success		200		{object}	DashboardResponse
// @Failure		400		{object}	DashboardResponse
// @Failure		422		{object}	DashboardResponse
// @Failure		500		{object}	DashboardResponse
// @Param			month	query		string	false	"Analyze this month, YYYY-MM format. Defaults to all transactions"
// @Router			/v1/dashboard [get]
func GetDashboard(c *gin.Context) {
	var query QueryMonth
	if err := c.Bind(&query); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, DashboardResponse{
			Error: &e,
		})
		return
	}

	_, report, err := analyze(query.Month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &e,
		})
		return
	}

	healthScore.Observe(report.Health.Score.InexactFloat64())

	data := newDashboard(query.Month, report)
	c.JSON(http.StatusOK, DashboardResponse{Data: &data})
}
