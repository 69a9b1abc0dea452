package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/financecoach/backend/internal/controllers/v1"
	"github.com/financecoach/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCleanup() {
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Description: "Grocery store", Amount: decimal.NewFromFloat(17.32)})

	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/budget", map[string]any{
		"overrides": map[string]any{"Food": 100},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/settings", map[string]any{"income": 1000})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// Delete
	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// Verify
	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var transactions v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &transactions)
	suite.Assert().Len(transactions.Data, 0)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budget", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var budget v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &budget)
	suite.Assert().Len(budget.Data.Overrides, 0)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/settings", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var settings v1.SettingsResponse
	test.DecodeResponse(suite.T(), &recorder, &settings)
	suite.Assert().True(settings.Data.Income.Equal(decimal.NewFromInt(25000)), "Income must be reset to the default, is %s", settings.Data.Income)
}

func (suite *TestSuiteStandard) TestCleanupFails() {
	tests := []struct {
		name string
		path string
	}{
		{"Invalid path", "confirm=2"},
		{"Confirmation wrong", "confirm=invalid-confirmation"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1?%s", tt.path), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestCleanupDBError() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}

