// Package finance implements the analytics of Finance Coach: categorization,
// aggregation, budget evaluation, health scoring and scenario simulation.
//
// All functions in this package are pure. They operate on values passed in by
// the caller and never read ambient state.
package finance

import (
	"fmt"
	"strings"

	"github.com/ryanuber/go-glob"
)

// Category is one of the fixed spending categories a transaction is classified into.
type Category string

const (
	Food          Category = "Food"
	Transport     Category = "Transport"
	Entertainment Category = "Entertainment"
	Utilities     Category = "Utilities"
	Other         Category = "Other"
)

// Categories is the closed set of categories in canonical order.
var Categories = []Category{Food, Transport, Entertainment, Utilities, Other}

// Rule assigns a category to all descriptions containing one of its keywords.
type Rule struct {
	Category Category `json:"category" example:"Food"`
	Keywords []string `json:"keywords" example:"grocery,restaurant"`
}

// rules are evaluated in order, the first match wins.
var rules = []Rule{
	{Category: Food, Keywords: []string{"grocery", "restaurant"}},
	{Category: Transport, Keywords: []string{"bus", "uber"}},
	{Category: Entertainment, Keywords: []string{"movie", "shopping"}},
	{Category: Utilities, Keywords: []string{"bill", "recharge"}},
}

// Rules returns a copy of the keyword rules in priority order.
func Rules() []Rule {
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		out = append(out, Rule{
			Category: r.Category,
			Keywords: append([]string(nil), r.Keywords...),
		})
	}

	return out
}

// Categorize returns the category for a transaction description.
//
// Matching is a case insensitive substring test against the keyword rules.
// Descriptions that match no rule, including the empty description, are Other.
func Categorize(description string) Category {
	d := strings.ToLower(description)

	for _, rule := range rules {
		for _, keyword := range rule.Keywords {
			if glob.Glob("*"+keyword+"*", d) {
				return rule.Category
			}
		}
	}

	return Other
}

// ParseCategory returns the Category with the given name.
// The comparison is case insensitive.
func ParseCategory(name string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(string(c), strings.TrimSpace(name)) {
			return c, nil
		}
	}

	return "", fmt.Errorf("%w: unknown category %q", ErrInvalidInput, name)
}

// index returns the position of the category in the canonical order.
func (c Category) index() int {
	for i, cat := range Categories {
		if cat == c {
			return i
		}
	}

	return len(Categories)
}
