package v1

import "github.com/financecoach/backend/internal/types"

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

type QueryMonth struct {
	Month types.Month `form:"month" example:"2024-02"` // Year and month in YYYY-MM format. Defaults to all transactions.
}
