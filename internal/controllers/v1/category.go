package v1

import (
	"net/http"

	"github.com/financecoach/backend/internal/finance"
	"github.com/financecoach/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

type CategoryListResponse struct {
	Data []finance.Rule `json:"data"` // Categories with the keywords assigning them, in the order they are matched
}

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCategories)
	r.GET("", GetCategories)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategories(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get categories
// @Description	Returns all categories and the keywords that assign them. Descriptions matching no keyword are categorized as Other.
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	data := finance.Rules()
	data = append(data, finance.Rule{Category: finance.Other, Keywords: []string{}})

	c.JSON(http.StatusOK, CategoryListResponse{Data: data})
}
