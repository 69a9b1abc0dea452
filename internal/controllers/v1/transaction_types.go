package v1

import (
	"fmt"
	"time"

	"github.com/financecoach/backend/internal/finance"
	"github.com/financecoach/backend/internal/models"
	"github.com/financecoach/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Date        time.Time `json:"date" example:"2024-02-03T12:00:00Z"` // Date of the transaction. Defaults to the time of creation. Time is only used for sorting
	Description string    `json:"description" example:"Grocery store"` // Free text description. The category is derived from it

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"14.03" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount spent
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Date:        editable.Date,
		Description: editable.Description,
		Amount:      editable.Amount,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Category finance.Category `json:"category" example:"Food"` // Category assigned from the description on creation
	Links    TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Date:        model.Date,
			Description: model.Description,
			Amount:      model.Amount,
		},
		Category: model.Category,
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the request body must not be empty"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                               // List of created Transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the amount of a transaction must not be negative"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                             // The Transaction data, if creation was successful
}

type TransactionQueryFilter struct {
	Month    types.Month     `form:"month" filterField:"false"`    // Year and month in YYYY-MM format
	Category string          `form:"category" filterField:"false"` // Name of the category, case insensitive
	Amount   decimal.Decimal `form:"amount"`                       // Exact amount
	Search   string          `form:"search" filterField:"false"`   // Description contains this string
	Offset   uint            `form:"offset" filterField:"false"`   // The offset of the first Transaction returned. Defaults to 0.
	Limit    int             `form:"limit" filterField:"false"`    // Maximum number of transactions to return. Defaults to 50.
}

// model returns the transaction to use in the gorm query.
//
// The category is parsed so that unknown categories are rejected instead of
// silently matching nothing.
func (f TransactionQueryFilter) model() (models.Transaction, error) {
	t := TransactionEditable{
		Amount: f.Amount,
	}.model()

	if f.Category != "" {
		category, err := finance.ParseCategory(f.Category)
		if err != nil {
			return models.Transaction{}, err
		}
		t.Category = category
	}

	return t, nil
}
