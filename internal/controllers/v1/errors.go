package v1

import (
	"errors"
	"net/http"

	"github.com/financecoach/backend/internal/finance"
	"github.com/financecoach/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	// Income and debt score are preconditions of the analytics, not request input
	if errors.Is(err, finance.ErrInvalidConfiguration) {
		return http.StatusUnprocessableEntity
	}

	return http.StatusBadRequest
}

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)

// Transaction errors
var (
	errBatchRolledBack = errors.New("the transaction was not created because another transaction in the request has an error")
)

// Import errors
var (
	errNoFilePost      = errors.New("you must send a file to this endpoint")
	errWrongFileSuffix = errors.New("this endpoint only supports files of the following types")
)
