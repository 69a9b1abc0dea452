package v1

import (
	"net/http"
	"time"

	"github.com/financecoach/backend/internal/httputil"
	"github.com/financecoach/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

type SettingsEditable struct {
	Income        decimal.Decimal `json:"income" example:"25000" minimum:"0.00000001"`     // Monthly income. Must be positive
	MonthlyBudget decimal.Decimal `json:"monthlyBudget" example:"0" minimum:"0"`           // Monthly budget. 0 uses the default limits
	DebtScore     decimal.Decimal `json:"debtScore" example:"0.5" minimum:"0" maximum:"1"` // Debt component of the health score
}

// Settings is the representation of the settings in API v1.
type Settings struct {
	SettingsEditable
	UpdatedAt time.Time `json:"updatedAt" example:"2024-01-07T20:14:01.048145Z"` // Last time the settings were updated
}

func newSettings(s models.Settings) Settings {
	return Settings{
		SettingsEditable: SettingsEditable{
			Income:        s.Income,
			MonthlyBudget: s.MonthlyBudget,
			DebtScore:     s.DebtScore,
		},
		UpdatedAt: s.UpdatedAt,
	}
}

type SettingsResponse struct {
	Data  *Settings `json:"data"`                                                                  // Data for the settings
	Error *string   `json:"error" example:"invalid configuration: income must be positive, got 0"` // The error, if any occurred
}

// RegisterSettingsRoutes registers the routes for the settings with
// the RouterGroup that is passed.
func RegisterSettingsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSettings)
	r.GET("", GetSettings)
	r.PATCH("", UpdateSettings)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Router			/v1/settings [options]
func OptionsSettings(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get settings
// @Description	Returns income, monthly budget and debt score
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	SettingsResponse
// @Failure		500	{object}	SettingsResponse
// @Router			/v1/settings [get]
func GetSettings(c *gin.Context) {
	s, err := models.GetSettings(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	data := newSettings(s)
	c.JSON(http.StatusOK, SettingsResponse{Data: &data})
}

// @Summary		Update settings
// @Description	Updates the settings. Only values to be updated need to be specified.
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		200			{object}	SettingsResponse
// @Failure		400			{object}	SettingsResponse
// @Failure		422			{object}	SettingsResponse
// @Failure		500			{object}	SettingsResponse
// @Param			settings	body		SettingsEditable	true	"Settings"
// @Router			/v1/settings [patch]
func UpdateSettings(c *gin.Context) {
	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, SettingsEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	var update SettingsEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	s, err := models.GetSettings(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	if slices.Contains(updateFields, any("Income")) {
		s.Income = update.Income
	}

	if slices.Contains(updateFields, any("MonthlyBudget")) {
		s.MonthlyBudget = update.MonthlyBudget
	}

	if slices.Contains(updateFields, any("DebtScore")) {
		s.DebtScore = update.DebtScore
	}

	s, err = models.UpdateSettings(models.DB, s)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	data := newSettings(s)
	c.JSON(http.StatusOK, SettingsResponse{Data: &data})
}
