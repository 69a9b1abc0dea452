package v1_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"testing"

	v1 "github.com/financecoach/backend/internal/controllers/v1"
	"github.com/financecoach/backend/internal/finance"
	"github.com/financecoach/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestImportCSV() {
	response := importTestFile(suite.T(), "importer/transactions.csv")

	suite.Require().Len(response.Data, 3)
	suite.Assert().Equal(finance.Food, response.Data[0].Category)
	suite.Assert().Equal(finance.Transport, response.Data[1].Category)
	suite.Assert().Equal(finance.Entertainment, response.Data[2].Category)
	suite.Assert().True(response.Data[0].Amount.Equal(decimal.NewFromInt(1200)))

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?month=2024-01", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Data, 3)
}

func (suite *TestSuiteStandard) TestImportCSVReordered() {
	response := importTestFile(suite.T(), "importer/reordered-columns.csv")

	suite.Require().Len(response.Data, 3)
	suite.Assert().Equal("Restaurant Roma", response.Data[0].Description)
	suite.Assert().Equal(finance.Food, response.Data[0].Category)
}

func (suite *TestSuiteStandard) TestImportCSVHeaderOnly() {
	response := importTestFile(suite.T(), "importer/header-only.csv")
	suite.Assert().Len(response.Data, 0)
}

// TestImportCSVMalformed verifies that nothing is stored when a file is malformed.
func (suite *TestSuiteStandard) TestImportCSVMalformed() {
	tests := []struct {
		file string
		err  string
	}{
		{"importer/empty.csv", "the file is empty"},
		{"importer/error-amount.csv", "could not be parsed to a decimal"},
		{"importer/error-date.csv", "could not parse date"},
		{"importer/error-field-count.csv", "could not read line in CSV"},
		{"importer/error-missing-column.csv", "required columns are missing"},
		{"importer/error-negative-amount.csv", "must not be negative"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.file, func(t *testing.T) {
			response := importTestFile(t, tt.file, http.StatusBadRequest)
			assert.Contains(t, *response.Error, tt.err)

			r := test.Request(t, http.MethodGet, "http://example.com/v1/transactions", "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var list v1.TransactionListResponse
			test.DecodeResponse(t, &r, &list)
			assert.Len(t, list.Data, 0, "Transactions were stored for malformed file %s", tt.file)
		})
	}
}

func (suite *TestSuiteStandard) TestImportNoFile() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("you must send a file to this endpoint", *response.Error)
}

func (suite *TestSuiteStandard) TestImportWrongSuffix() {
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	w, err := mw.CreateFormFile("file", "transactions.json")
	suite.Require().Nil(err)
	_, err = w.Write([]byte(`[]`))
	suite.Require().Nil(err)
	mw.Close()

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import", body, map[string]string{"Content-Type": mw.FormDataContentType()})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Contains(*response.Error, ".csv")
}

func (suite *TestSuiteStandard) TestImportDBError() {
	suite.CloseDB()

	response := importTestFile(suite.T(), "importer/transactions.csv", http.StatusInternalServerError)
	suite.Assert().NotNil(response.Error)
}
