package models

import (
	"errors"
	"fmt"

	"github.com/financecoach/backend/internal/finance"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrNegativeAmount   = fmt.Errorf("%w: the amount of a transaction must not be negative", finance.ErrInvalidInput)
)
