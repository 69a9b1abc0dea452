package v1_test

import (
	"net/http"
	"testing"
	"time"

	v1 "github.com/financecoach/backend/internal/controllers/v1"
	"github.com/financecoach/backend/internal/finance"
	"github.com/financecoach/backend/internal/models"
	"github.com/financecoach/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func getTestDashboard(t *testing.T, query string, expectedStatus ...int) v1.DashboardResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusOK)
	}

	r := test.Request(t, http.MethodGet, "http://example.com/v1/dashboard"+query, "")
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.DashboardResponse
	test.DecodeResponse(t, &r, &response)

	return response
}

// setIncome writes the income without validation to test the handling of invalid settings.
func (suite *TestSuiteStandard) setIncome(income string) error {
	_, err := models.GetSettings(models.DB)
	if err != nil {
		return err
	}

	return models.DB.Model(&models.Settings{}).Where("true").UpdateColumn("income", income).Error
}

// TestDashboardScenario imports three transactions and verifies the whole analysis.
func (suite *TestSuiteStandard) TestDashboardScenario() {
	_ = importTestFile(suite.T(), "importer/transactions.csv")

	response := getTestDashboard(suite.T(), "?month=2024-01")
	d := response.Data

	suite.Require().Len(d.Summary, 3)
	suite.Assert().Equal(finance.Food, d.Summary[0].Category)
	suite.Assert().True(d.Summary[0].Amount.Equal(decimal.NewFromInt(1200)))
	suite.Assert().Equal(finance.Transport, d.Summary[1].Category)
	suite.Assert().True(d.Summary[1].Amount.Equal(decimal.NewFromInt(300)))
	suite.Assert().Equal(finance.Entertainment, d.Summary[2].Category)
	suite.Assert().True(d.Summary[2].Amount.Equal(decimal.NewFromInt(800)))

	suite.Require().Len(d.Evaluation, 3)
	for _, ce := range d.Evaluation {
		suite.Assert().Equal(finance.Within, ce.Status, "%s is over budget", ce.Category)
	}

	suite.Assert().True(d.TotalSpent.Equal(decimal.NewFromInt(2300)))
	suite.Assert().True(d.Savings.Equal(decimal.NewFromInt(22700)))
	suite.Assert().True(d.SavingsRate.Equal(decimal.NewFromFloat(0.908)), "Savings rate is %s", d.SavingsRate)
	suite.Assert().Equal(finance.Excellent, d.Health.Tier)
	suite.Assert().Equal("Excellent – Strong savings discipline", d.Discipline)

	suite.Require().Len(d.Recommendations, 1)
	suite.Assert().Equal("save-20-percent", d.Recommendations[0].Code)

	suite.Assert().Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Time(d.Month))
}

func (suite *TestSuiteStandard) TestDashboardOverBudget() {
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Description: "Movie marathon", Amount: decimal.NewFromInt(1800)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Description: "Restaurant", Amount: decimal.NewFromInt(2100)})

	d := getTestDashboard(suite.T(), "").Data

	suite.Require().Len(d.Evaluation, 2)
	suite.Assert().Equal(finance.Over, d.Evaluation[0].Status)
	suite.Assert().True(d.Evaluation[0].OverBy.Equal(decimal.NewFromInt(100)), "Food is over by %s", d.Evaluation[0].OverBy)
	suite.Assert().Equal(finance.Over, d.Evaluation[1].Status)
	suite.Assert().True(d.Evaluation[1].OverBy.Equal(decimal.NewFromInt(300)))

	codes := make([]string, 0)
	for _, r := range d.Recommendations {
		codes = append(codes, r.Code)
	}
	suite.Assert().Equal([]string{"reduce-entertainment", "cook-at-home", "save-20-percent"}, codes)
}

func (suite *TestSuiteStandard) TestDashboardEmpty() {
	d := getTestDashboard(suite.T(), "").Data

	suite.Assert().Len(d.Summary, 0)
	suite.Assert().Len(d.Evaluation, 0)
	suite.Assert().True(d.TotalSpent.IsZero())
	suite.Assert().True(d.Savings.Equal(decimal.NewFromInt(25000)))
	suite.Assert().True(d.Month.IsZero())
}

// TestDashboardInvalidIncome verifies that a missing precondition is reported as 422.
func (suite *TestSuiteStandard) TestDashboardInvalidIncome() {
	suite.Require().Nil(suite.setIncome("0"))

	response := getTestDashboard(suite.T(), "", http.StatusUnprocessableEntity)
	suite.Assert().Contains(*response.Error, "income must be positive")
}

func (suite *TestSuiteStandard) TestDashboardFails() {
	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"Invalid month", "?month=2024-13", http.StatusBadRequest},
		{"Not a month", "?month=soon", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			response := getTestDashboard(t, tt.query, tt.status)
			assert.NotNil(t, response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestDashboardDBError() {
	suite.CloseDB()

	response := getTestDashboard(suite.T(), "", http.StatusInternalServerError)
	suite.Assert().Equal("an error occurred on the server during your request", *response.Error)
}
