package v1

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/financecoach/backend/internal/httputil"
	"github.com/financecoach/backend/internal/importer"
	"github.com/financecoach/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RegisterImportRoutes registers the routes for imports with
// the RouterGroup that is passed.
func RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsImport)
	r.POST("", ImportCSV)
}

type ImportResponse struct {
	Data  []Transaction `json:"data"`                                                                                                  // The imported transactions
	Error *string       `json:"error" example:"malformed input: error in line 2 of the CSV: the amount must not be negative, got -20"` // The error, if any occurred
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(strings.ToLower(formFile.Filename), suffix) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, err
	}

	return f, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Import CSV
// @Description	Imports transactions from a CSV file with the columns Date, Description and Amount. Transactions are categorized by their description. If any row is malformed, nothing is imported.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	ImportResponse
// @Failure		400		{object}	ImportResponse
// @Failure		500		{object}	ImportResponse
// @Param			file	formData	file	true	"File to import"
// @Router			/v1/import [post]
func ImportCSV(c *gin.Context) {
	f, err := getUploadedFile(c, ".csv")
	if err != nil {
		imports.WithLabelValues("rejected").Inc()
		e := err.Error()
		c.JSON(status(err), ImportResponse{
			Error: &e,
		})
		return
	}
	defer f.Close()

	parsed, err := importer.ParseCSV(f)
	if err != nil {
		imports.WithLabelValues("malformed").Inc()
		e := err.Error()
		c.JSON(status(err), ImportResponse{
			Error: &e,
		})
		return
	}

	transactions, err := models.CreateTransactions(models.DB, parsed)
	if err != nil {
		imports.WithLabelValues("failed").Inc()
		e := err.Error()
		c.JSON(status(err), ImportResponse{
			Error: &e,
		})
		return
	}

	imports.WithLabelValues("success").Inc()
	log.Debug().Str("request-id", requestid.Get(c)).Int("count", len(transactions)).Msg("imported transactions")

	data := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		transactionsCreated.WithLabelValues(string(t.Category)).Inc()
		data = append(data, newTransaction(c, t))
	}

	c.JSON(http.StatusCreated, ImportResponse{Data: data})
}
