package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/financecoach/backend/internal/controllers/v1"
	"github.com/financecoach/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func createTestGoalPlan(t *testing.T, body any, expectedStatus ...int) v1.GoalPlanResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusOK)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/goal-plans", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.GoalPlanResponse
	test.DecodeResponse(t, &r, &response)

	return response
}

func (suite *TestSuiteStandard) TestGoalPlan() {
	_ = importTestFile(suite.T(), "importer/transactions.csv")

	plan := createTestGoalPlan(suite.T(), map[string]any{
		"goalAmount": "50000",
		"months":     12,
		"month":      "2024-01",
	}).Data

	suite.Assert().Equal(12, plan.Months)
	suite.Assert().True(plan.RequiredMonthly.Round(2).Equal(decimal.NewFromFloat(4166.67)), "Required monthly is %s", plan.RequiredMonthly)
	suite.Assert().True(plan.CurrentSavings.Equal(decimal.NewFromInt(22700)))
	suite.Assert().True(plan.OnTrack)
}

func (suite *TestSuiteStandard) TestGoalPlanNotOnTrack() {
	_ = importTestFile(suite.T(), "importer/transactions.csv")

	plan := createTestGoalPlan(suite.T(), map[string]any{
		"goalAmount": "300000",
		"months":     12,
	}).Data

	suite.Assert().True(plan.RequiredMonthly.Equal(decimal.NewFromInt(25000)))
	suite.Assert().False(plan.OnTrack)
}

func (suite *TestSuiteStandard) TestGoalPlanFails() {
	tests := []struct {
		name string
		body any
		err  string
	}{
		{"Empty body", "", "must not be empty"},
		{"Zero months", map[string]any{"goalAmount": "1000", "months": 0}, "at least one month"},
		{"Negative months", map[string]any{"goalAmount": "1000", "months": -3}, "at least one month"},
		{"Negative goal", map[string]any{"goalAmount": "-1000", "months": 3}, "must not be negative"},
		{"Months not a number", map[string]any{"goalAmount": "1000", "months": "soon"}, "cannot unmarshal"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			response := createTestGoalPlan(t, tt.body, http.StatusBadRequest)
			assert.Contains(t, *response.Error, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalPlanDBError() {
	suite.CloseDB()

	_ = createTestGoalPlan(suite.T(), map[string]any{"goalAmount": "1000", "months": 3}, http.StatusInternalServerError)
}
