package finance

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Transaction is a single categorized spending record.
type Transaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Category    Category
}

// NewTransaction validates the amount and categorizes the description.
func NewTransaction(date time.Time, description string, amount decimal.Decimal) (Transaction, error) {
	if amount.IsNegative() {
		return Transaction{}, fmt.Errorf("%w: amount must not be negative, got %s", ErrInvalidInput, amount)
	}

	return Transaction{
		Date:        date,
		Description: description,
		Amount:      amount,
		Category:    Categorize(description),
	}, nil
}

// Summary maps each category to the total spent in it.
//
// Categories without transactions are absent, use Get to read with a zero default.
type Summary map[Category]decimal.Decimal

// Aggregate groups the transactions by category and sums their amounts.
func Aggregate(transactions []Transaction) Summary {
	s := Summary{}
	for _, t := range transactions {
		s[t.Category] = s.Get(t.Category).Add(t.Amount)
	}

	return s
}

// Get returns the total for the category, zero if it has no transactions.
func (s Summary) Get(c Category) decimal.Decimal {
	if v, ok := s[c]; ok {
		return v
	}

	return decimal.Zero
}

// Total returns the sum over all categories.
func (s Summary) Total() decimal.Decimal {
	total := decimal.Zero
	for _, v := range s {
		total = total.Add(v)
	}

	return total
}

// Categories returns the categories present in the summary in canonical order.
func (s Summary) Categories() []Category {
	out := make([]Category, 0, len(s))
	for c := range s {
		out = append(out, c)
	}

	slices.SortFunc(out, func(a, b Category) int {
		return a.index() - b.index()
	})

	return out
}

// Shares returns the fraction of the total spend per category.
// With a total of zero, all shares are zero.
func (s Summary) Shares() map[Category]decimal.Decimal {
	total := s.Total()
	out := make(map[Category]decimal.Decimal, len(s))

	for c, v := range s {
		if total.IsZero() {
			out[c] = decimal.Zero
			continue
		}
		out[c] = v.Div(total)
	}

	return out
}
