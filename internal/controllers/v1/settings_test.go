package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/financecoach/backend/internal/controllers/v1"
	"github.com/financecoach/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSettingsGet() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/settings", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SettingsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().True(response.Data.Income.Equal(decimal.NewFromInt(25000)))
	suite.Assert().True(response.Data.MonthlyBudget.IsZero())
	suite.Assert().True(response.Data.DebtScore.Equal(decimal.NewFromFloat(0.5)))
}

// TestSettingsUpdate verifies that only the fields in the request body are updated.
func (suite *TestSuiteStandard) TestSettingsUpdate() {
	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/settings", map[string]any{"income": "4000"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SettingsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().True(response.Data.Income.Equal(decimal.NewFromInt(4000)))
	suite.Assert().True(response.Data.DebtScore.Equal(decimal.NewFromFloat(0.5)), "Debt score must not change, is %s", response.Data.DebtScore)

	r = test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/settings", map[string]any{"debtScore": "0"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().True(response.Data.Income.Equal(decimal.NewFromInt(4000)))
	suite.Assert().True(response.Data.DebtScore.IsZero())
}

func (suite *TestSuiteStandard) TestSettingsUpdateFails() {
	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Empty body", "", http.StatusBadRequest},
		{"Broken JSON", `{"income": `, http.StatusBadRequest},
		{"Zero income", map[string]any{"income": "0"}, http.StatusUnprocessableEntity},
		{"Negative income", map[string]any{"income": "-1"}, http.StatusUnprocessableEntity},
		{"Debt score too high", map[string]any{"debtScore": "1.5"}, http.StatusUnprocessableEntity},
		{"Negative monthly budget", map[string]any{"monthlyBudget": "-1"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, "http://example.com/v1/settings", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.SettingsResponse
			test.DecodeResponse(t, &r, &response)
			assert.NotNil(t, response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestSettingsDBError() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/settings", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	r = test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/settings", map[string]any{"income": "4000"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
