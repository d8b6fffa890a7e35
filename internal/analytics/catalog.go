// Package analytics implements the expense analytics and categorization
// engine.
//
// Every function in this package is pure: it operates on a snapshot of
// plain data passed in by the caller and returns a freshly computed
// result. There is no database access, no logging and no cross-call
// state, so repeated calls with the same snapshot always return the
// same result.
package analytics

import (
	"github.com/Kali-Thiresh-K/expense-tracker/internal/types"
	"github.com/shopspring/decimal"
)

// Expense is the snapshot record the analytics functions operate on.
type Expense struct {
	Title    string          `json:"title"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Date     types.Date      `json:"date"`
}

// Category is a spending bucket with presentation metadata and a budget.
//
// The budget is either a fixed amount or a fractional allocation of the
// total budget. A fixed budget takes precedence; when neither is set,
// the total budget is split evenly across the catalog.
type Category struct {
	Name       string          `json:"name"`
	Icon       string          `json:"icon"`
	Color      string          `json:"color"`
	Budget     decimal.Decimal `json:"budget"`     // Fixed monthly budget. Zero means unset.
	Allocation decimal.Decimal `json:"allocation"` // Fraction of the total budget. Zero means unset.
}

// FallbackCategory is the category name for expenses that match no
// classifier rule and for lookups of names missing from the catalog.
const FallbackCategory = "Other"

var fallbackCategory = Category{
	Name:  FallbackCategory,
	Icon:  "💰",
	Color: "hsl(215 16% 47%)",
}

var defaultCategories = []Category{
	{Name: "Food & Dining", Icon: "🍽️", Color: "hsl(25 95% 53%)", Budget: decimal.NewFromInt(5000)},
	{Name: "Transportation", Icon: "🚗", Color: "hsl(142 76% 36%)", Budget: decimal.NewFromInt(3000)},
	{Name: "Shopping", Icon: "🛍️", Color: "hsl(262 83% 58%)", Budget: decimal.NewFromInt(4000)},
	{Name: "Entertainment", Icon: "🎬", Color: "hsl(292 84% 61%)", Budget: decimal.NewFromInt(2000)},
	{Name: "Bills & Utilities", Icon: "💡", Color: "hsl(38 92% 50%)", Budget: decimal.NewFromInt(8000)},
	{Name: "Healthcare", Icon: "🏥", Color: "hsl(0 84% 60%)", Budget: decimal.NewFromInt(3000)},
	{Name: "Education", Icon: "📚", Color: "hsl(200 95% 40%)", Budget: decimal.NewFromInt(2000)},
	{Name: "Travel", Icon: "✈️", Color: "hsl(160 84% 39%)", Budget: decimal.NewFromInt(5000)},
}

// DefaultCategories returns the category catalog.
//
// The catalog is read-only at runtime, so callers get a fresh copy they
// are free to modify.
func DefaultCategories() []Category {
	categories := make([]Category, len(defaultCategories))
	copy(categories, defaultCategories)
	return categories
}

// DefaultTotalBudget returns the sum of the fixed budgets of the
// default catalog.
func DefaultTotalBudget() decimal.Decimal {
	var total decimal.Decimal
	for _, category := range defaultCategories {
		total = total.Add(category.Budget)
	}

	return total
}

// Lookup returns the catalog category with the given name.
//
// An unmatched name degrades gracefully to the fallback icon and color
// instead of erroring, keeping the name that was asked for.
func Lookup(categories []Category, name string) Category {
	for _, category := range categories {
		if category.Name == name {
			return category
		}
	}

	category := fallbackCategory
	category.Name = name
	return category
}
