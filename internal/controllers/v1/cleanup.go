package v1

import (
	"net/http"

	"github.com/financecoach/backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary		Delete everything
// @Description	Permanently deletes all transactions, budget overrides and settings. Settings fall back to the configured defaults.
// @Tags			v1
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
func Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.Bind(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errCleanupConfirmation.Error(),
		})
		return
	}

	resources := []any{
		models.Transaction{},
		models.BudgetLimit{},
		models.Settings{},
	}

	// Use a transaction so that we can roll back if errors happen
	err = models.InTransaction(models.DB, func(tx *gorm.DB) error {
		for _, model := range resources {
			err := tx.Unscoped().Where("true").Delete(&model).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
