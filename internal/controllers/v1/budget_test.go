package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/financecoach/backend/internal/controllers/v1"
	"github.com/financecoach/backend/internal/finance"
	"github.com/financecoach/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// patchTestBudget updates the budget via the v1 API.
func patchTestBudget(t *testing.T, path string, body any, expectedStatus ...int) v1.BudgetResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusOK)
	}

	r := test.Request(t, http.MethodPatch, "http://example.com/v1/budget"+path, body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.BudgetResponse
	test.DecodeResponse(t, &r, &response)

	return response
}

func (suite *TestSuiteStandard) TestBudgetDefaults() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budget", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().True(response.Data.MonthlyBudget.IsZero())
	suite.Assert().True(response.Data.Month.IsZero())
	suite.Assert().Len(response.Data.Limits, len(finance.DefaultLimits))
	suite.Assert().True(response.Data.Limits[finance.Food].Equal(decimal.NewFromInt(2000)))
	suite.Assert().True(response.Data.Total.Equal(decimal.NewFromInt(6000)), "Total is %s", response.Data.Total)
}

// TestBudgetMonthlySplit verifies that the monthly budget is split between the
// categories with spend in the month only.
func (suite *TestSuiteStandard) TestBudgetMonthlySplit() {
	_ = importTestFile(suite.T(), "importer/transactions.csv")

	response := patchTestBudget(suite.T(), "?month=2024-01", map[string]any{"monthlyBudget": "3001"})

	suite.Assert().True(response.Data.MonthlyBudget.Equal(decimal.NewFromInt(3001)))
	suite.Require().Len(response.Data.Limits, 3)
	for category, limit := range response.Data.Limits {
		suite.Assert().True(limit.Equal(decimal.NewFromInt(1000)), "Limit for %s is %s", category, limit)
	}

	// No transactions, no active categories
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budget?month=2023-01", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var empty v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &empty)
	suite.Assert().Len(empty.Data.Limits, 0)
}

func (suite *TestSuiteStandard) TestBudgetOverrides() {
	response := patchTestBudget(suite.T(), "", map[string]any{
		"overrides": map[string]any{"food": "2500", "Other": "0"},
	})

	suite.Assert().True(response.Data.Overrides[finance.Food].Equal(decimal.NewFromInt(2500)))
	suite.Assert().True(response.Data.Limits[finance.Food].Equal(decimal.NewFromInt(2500)))
	suite.Assert().True(response.Data.Limits[finance.Other].IsZero())

	// Overriding again replaces the value
	response = patchTestBudget(suite.T(), "", map[string]any{
		"overrides": map[string]any{"Food": "1800"},
	})
	suite.Assert().True(response.Data.Limits[finance.Food].Equal(decimal.NewFromInt(1800)))
	suite.Assert().Len(response.Data.Overrides, 2)

	// null removes the override
	response = patchTestBudget(suite.T(), "", map[string]any{
		"overrides": map[string]any{"Food": nil},
	})
	suite.Assert().True(response.Data.Limits[finance.Food].Equal(decimal.NewFromInt(2000)))
	suite.Assert().Len(response.Data.Overrides, 1)
}

func (suite *TestSuiteStandard) TestBudgetUpdateFails() {
	tests := []struct {
		name string
		body any
		err  string
	}{
		{"Empty body", "", "must not be empty"},
		{"Unknown category", map[string]any{"overrides": map[string]any{"Travel": "100"}}, "unknown category"},
		{"Negative override", map[string]any{"overrides": map[string]any{"Food": "-1"}}, "must not be negative"},
		{"Negative monthly budget", map[string]any{"monthlyBudget": "-100"}, "must not be negative"},
		{"Same category twice", map[string]any{"overrides": map[string]any{"Food": "100", "food": "900"}}, "are both for Food"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			response := patchTestBudget(t, "", tt.body, http.StatusBadRequest)
			assert.Contains(t, *response.Error, tt.err)
		})
	}

	// Nothing was stored
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budget", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data.Overrides, 0)
	suite.Assert().True(response.Data.MonthlyBudget.IsZero())
}

// TestBudgetUpdateAtomic verifies that a failing override does not leave the monthly budget changed.
func (suite *TestSuiteStandard) TestBudgetUpdateAtomic() {
	_ = patchTestBudget(suite.T(), "", map[string]any{
		"monthlyBudget": "5000",
		"overrides":     map[string]any{"Food": "-1"},
	}, http.StatusBadRequest)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budget", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(response.Data.MonthlyBudget.IsZero())
}

// TestBudgetDuplicateOverridesRejected verifies that repeating the same request always
// gives the same result and never stores one of the conflicting values.
func (suite *TestSuiteStandard) TestBudgetDuplicateOverridesRejected() {
	for i := 0; i < 5; i++ {
		_ = patchTestBudget(suite.T(), "", map[string]any{
			"overrides": map[string]any{"Food": "100", "food": "900"},
		}, http.StatusBadRequest)
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budget", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Empty(response.Data.Overrides)
	suite.Assert().True(response.Data.Limits[finance.Food].Equal(decimal.NewFromInt(2000)))
}

func (suite *TestSuiteStandard) TestBudgetDBError() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budget", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	_ = patchTestBudget(suite.T(), "", map[string]any{"monthlyBudget": "5000"}, http.StatusInternalServerError)
}
