package v1

import (
	"fmt"
	"net/http"

	"github.com/financecoach/backend/internal/finance"
	"github.com/financecoach/backend/internal/httputil"
	"github.com/financecoach/backend/internal/models"
	"github.com/financecoach/backend/internal/types"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterBudgetRoutes registers the routes for the budget configuration with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBudget)
	r.GET("", GetBudget)
	r.PATCH("", UpdateBudget)
}

// budget computes the effective limits for the categories active in the month.
func budget(month types.Month) (Budget, error) {
	snapshot, err := models.Snapshot(models.DB, month)
	if err != nil {
		return Budget{}, err
	}

	summary := finance.Aggregate(snapshot.Transactions)
	limits := snapshot.Budget.Limits(summary.Categories())

	return Budget{
		Month:         month,
		MonthlyBudget: snapshot.Budget.MonthlyBudget,
		Overrides:     snapshot.Budget.Overrides,
		Limits:        limits,
		Total:         limits.Total(),
	}, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget
// @Success		204
// @Router			/v1/budget [options]
func OptionsBudget(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get budget
// @Description	Returns the budget configuration and the effective limit for every category
// @Tags			Budget
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			month	query		string	false	"Compute the limits for this month, YYYY-MM format"
// @Router			/v1/budget [get]
func GetBudget(c *gin.Context) {
	var query QueryMonth
	if err := c.Bind(&query); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{
			Error: &e,
		})
		return
	}

	data, err := budget(query.Month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Update budget
// @Description	Updates the monthly budget and the limit overrides. Only values to be updated need to be specified. Setting an override to null removes it.
// @Tags			Budget
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			month	query		string			false	"Compute the limits for this month, YYYY-MM format"
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budget [patch]
func UpdateBudget(c *gin.Context) {
	var query QueryMonth
	if err := c.ShouldBindQuery(&query); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{
			Error: &e,
		})
		return
	}

	var update BudgetEditable
	err := httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	// Validate all categories before anything is written
	overrides := make(map[finance.Category]string, len(update.Overrides))
	for name := range update.Overrides {
		category, err := finance.ParseCategory(name)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), BudgetResponse{
				Error: &e,
			})
			return
		}

		// Keys differing only in case would otherwise be applied in random order
		if previous, ok := overrides[category]; ok {
			e := fmt.Errorf("%w: the overrides %q and %q are both for %s", finance.ErrInvalidInput, previous, name, category).Error()
			c.JSON(http.StatusBadRequest, BudgetResponse{
				Error: &e,
			})
			return
		}
		overrides[category] = name
	}

	err = models.InTransaction(models.DB, func(tx *gorm.DB) error {
		if update.MonthlyBudget != nil {
			settings, err := models.GetSettings(tx)
			if err != nil {
				return err
			}

			settings.MonthlyBudget = *update.MonthlyBudget
			_, err = models.UpdateSettings(tx, settings)
			if err != nil {
				return err
			}
		}

		for category, name := range overrides {
			if err := models.SetOverride(tx, category, update.Overrides[name]); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	data, err := budget(query.Month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}
