package v1_test

import (
	"net/http"
	"testing"
	"time"

	v1 "github.com/financecoach/backend/internal/controllers/v1"
	"github.com/financecoach/backend/internal/finance"
	"github.com/financecoach/backend/internal/httputil"
	"github.com/financecoach/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestTransactionsOptions verifies that the HTTP OPTIONS response for /v1/transactions/{id} is correct.
func (suite *TestSuiteStandard) TestTransactionsOptions() {
	tests := []struct {
		name     string        // Name for the test
		status   int           // Expected HTTP status
		id       string        // String to use as ID. Ignored when pathFunc is non-nil
		pathFunc func() string // Function returning the path
	}{
		{
			"Does not exist",
			http.StatusNotFound,
			uuid.New().String(),
			nil,
		},
		{
			"Invalid UUID",
			http.StatusBadRequest,
			"NotParseableAsUUID",
			nil,
		},
		{
			"Success",
			http.StatusNoContent,
			"",
			func() string {
				return createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromFloat(31)}).Data.Links.Self
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var p string
			if tt.pathFunc != nil {
				p = tt.pathFunc()
			} else {
				p = "http://example.com/v1/transactions/" + tt.id
			}

			r := test.Request(t, http.MethodOptions, p, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	tests := []struct {
		description string
		category    finance.Category
	}{
		{"Big Grocery Store", finance.Food},
		{"Uber ride", finance.Transport},
		{"MOVIE night", finance.Entertainment},
		{"Phone recharge", finance.Utilities},
		{"Bookstore", finance.Other},
		{"", finance.Other},
	}

	for _, tt := range tests {
		suite.T().Run(tt.description, func(t *testing.T) {
			r := createTestTransaction(t, v1.TransactionEditable{
				Date:        time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
				Description: tt.description,
				Amount:      decimal.NewFromFloat(12.5),
			})

			assert.Nil(t, r.Error)
			assert.Equal(t, tt.category, r.Data.Category)
			assert.True(t, r.Data.Amount.Equal(decimal.NewFromFloat(12.5)))
			assert.Equal(t, "http://example.com/v1/transactions/"+r.Data.ID.String(), r.Data.Links.Self)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsCreateDefaultDate() {
	before := time.Now().Add(-time.Second)
	r := createTestTransaction(suite.T(), v1.TransactionEditable{Description: "Bus ticket", Amount: decimal.NewFromInt(3)})

	suite.Assert().True(r.Data.Date.After(before), "Date must default to now, is %s", r.Data.Date)
}

// TestTransactionsCreateErrors verifies that the status is the highest status of all
// transactions and that no transaction is stored when any of them has an error.
func (suite *TestSuiteStandard) TestTransactionsCreateErrors() {
	reqBody := []v1.TransactionEditable{
		{Description: "Big Grocery Store", Amount: decimal.NewFromInt(1200)},
		{Description: "Refund", Amount: decimal.NewFromInt(-5)},
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", reqBody)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Nil(response.Data[0].Data)
	suite.Require().NotNil(response.Data[0].Error)
	suite.Assert().Contains(*response.Data[0].Error, "another transaction in the request has an error")
	suite.Require().NotNil(response.Data[1].Error)
	suite.Assert().Contains(*response.Data[1].Error, "must not be negative")

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Data, 0, "No transaction must be stored when one of them fails")
	suite.Assert().Equal(int64(0), list.Pagination.Total)
}

func (suite *TestSuiteStandard) TestTransactionsCreateBadRequest() {
	tests := []struct {
		name string
		body any
		err  string
	}{
		{"Empty body", "", httputil.ErrRequestBodyEmpty.Error()},
		{"Broken JSON", `[{"description": "Bus"`, httputil.ErrInvalidBody.Error()},
		{"Wrong type", `[{"description": 17}]`, "cannot unmarshal"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.TransactionCreateResponse
			test.DecodeResponse(t, &r, &response)
			assert.Contains(t, *response.Error, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGet() {
	created := createTestTransaction(suite.T(), v1.TransactionEditable{Description: "Electricity bill", Amount: decimal.NewFromInt(90)})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Success", created.Data.ID.String(), http.StatusOK},
		{"Does not exist", uuid.New().String(), http.StatusNotFound},
		{"Invalid UUID", "not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/transactions/"+tt.id, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.TransactionResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status != http.StatusOK {
				assert.NotNil(t, response.Error)
				return
			}

			assert.Equal(t, created.Data.ID, response.Data.ID)
			assert.Equal(t, finance.Utilities, response.Data.Category)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetNotFoundMessage() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions/"+uuid.New().String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("there is no transaction matching your query", *response.Error)
}

func (suite *TestSuiteStandard) TestTransactionsList() {
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), Description: "Big Grocery Store", Amount: decimal.NewFromInt(1200)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Date: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), Description: "Uber ride", Amount: decimal.NewFromInt(300)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), Description: "Movie night", Amount: decimal.NewFromInt(800)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Description: "Grocery delivery", Amount: decimal.NewFromInt(90)})

	tests := []struct {
		name  string
		query string
		len   int
		total int64
	}{
		{"All", "", 4, 4},
		{"Month", "month=2024-01", 3, 3},
		{"Other month", "month=2024-02", 1, 1},
		{"Empty month", "month=2023-12", 0, 0},
		{"Category", "category=food", 2, 2},
		{"Category and month", "category=Food&month=2024-02", 1, 1},
		{"Search", "search=grocery", 2, 2},
		{"Search no match", "search=salary", 0, 0},
		{"Amount", "amount=300", 1, 1},
		{"Limit", "limit=2", 2, 4},
		{"Offset", "offset=3", 1, 4},
		{"Offset and limit", "offset=1&limit=2", 2, 4},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/transactions?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Len(t, response.Data, tt.len)
			assert.Equal(t, tt.len, response.Pagination.Count)
			assert.Equal(t, tt.total, response.Pagination.Total)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsListOrder() {
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), Description: "First"})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), Description: "Last"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("Last", response.Data[0].Description)
	suite.Assert().Equal(50, response.Pagination.Limit)
}

func (suite *TestSuiteStandard) TestTransactionsListBadRequest() {
	tests := []struct {
		name  string
		query string
	}{
		{"Unknown category", "category=Travel"},
		{"Invalid month", "month=January"},
		{"Invalid offset", "offset=-1"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/transactions?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	created := createTestTransaction(suite.T(), v1.TransactionEditable{Description: "Bus", Amount: decimal.NewFromInt(2)})

	r := test.Request(suite.T(), http.MethodDelete, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionsDBError() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("an error occurred on the server during your request", *response.Error)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", []v1.TransactionEditable{{Description: "Bus"}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var createResponse v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &r, &createResponse)
	suite.Assert().Equal("an error occurred on the server during your request", *createResponse.Error)
}
