package v1

import (
	"net/http"

	"github.com/financecoach/backend/internal/httputil"
	"github.com/financecoach/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type RootResponse struct {
	Links RootLinks `json:"links"` // Links for the v1 API
}

type RootLinks struct {
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions"` // URL of transaction list endpoint
	Import       string `json:"import" example:"https://example.com/api/v1/import"`             // URL of the CSV import endpoint
	Categories   string `json:"categories" example:"https://example.com/api/v1/categories"`     // URL of category list endpoint
	Budget       string `json:"budget" example:"https://example.com/api/v1/budget"`             // URL of the budget configuration
	Settings     string `json:"settings" example:"https://example.com/api/v1/settings"`         // URL of the settings
	Dashboard    string `json:"dashboard" example:"https://example.com/api/v1/dashboard"`       // URL of the dashboard report
	Simulations  string `json:"simulations" example:"https://example.com/api/v1/simulations"`   // URL of the what-if simulation endpoint
	GoalPlans    string `json:"goalPlans" example:"https://example.com/api/v1/goal-plans"`      // URL of the goal planning endpoint
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func RegisterRoutes(r *gin.RouterGroup) {
	{
		r.GET("", GetRoot)
		r.DELETE("", Cleanup)
		r.OPTIONS("", OptionsRoot)
	}

	RegisterTransactionRoutes(r.Group("/transactions"))
	RegisterImportRoutes(r.Group("/import"))
	RegisterCategoryRoutes(r.Group("/categories"))
	RegisterBudgetRoutes(r.Group("/budget"))
	RegisterSettingsRoutes(r.Group("/settings"))
	RegisterDashboardRoutes(r.Group("/dashboard"))
	RegisterSimulationRoutes(r.Group("/simulations"))
	RegisterGoalPlanRoutes(r.Group("/goal-plans"))
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	RootResponse
// @Router			/v1 [get]
func GetRoot(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Transactions: url + "/v1/transactions",
			Import:       url + "/v1/import",
			Categories:   url + "/v1/categories",
			Budget:       url + "/v1/budget",
			Settings:     url + "/v1/settings",
			Dashboard:    url + "/v1/dashboard",
			Simulations:  url + "/v1/simulations",
			GoalPlans:    url + "/v1/goal-plans",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}
