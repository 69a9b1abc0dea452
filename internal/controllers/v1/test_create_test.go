package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/financecoach/backend/internal/controllers/v1"
	"github.com/financecoach/backend/test"
)

// createTestTransaction creates a test transaction via the v1 API.
func createTestTransaction(t *testing.T, transaction v1.TransactionEditable, expectedStatus ...int) v1.TransactionResponse {
	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	reqBody := []v1.TransactionEditable{transaction}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", reqBody)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var tr v1.TransactionCreateResponse
	test.DecodeResponse(t, &r, &tr)

	return tr.Data[0]
}

// importTestFile uploads a file from the testdata directory to the CSV import.
func importTestFile(t *testing.T, file string, expectedStatus ...int) v1.ImportResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body, headers := test.LoadTestFile(t, file)
	r := test.Request(t, http.MethodPost, "http://example.com/v1/import", body, headers)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var ir v1.ImportResponse
	test.DecodeResponse(t, &r, &ir)

	return ir
}
