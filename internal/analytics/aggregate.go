package analytics

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CategorySpending is the per-category rollup of a snapshot of expenses.
type CategorySpending struct {
	Category   string          `json:"category"`   // Name of the category
	Spent      decimal.Decimal `json:"spent"`      // Sum of the amounts of all expenses in the category
	Budget     decimal.Decimal `json:"budget"`     // The effective budget of the category
	Percentage decimal.Decimal `json:"percentage"` // Spent share of the budget in percent, capped at 100
	Color      string          `json:"color"`
	Icon       string          `json:"icon"`
}

// BudgetSnapshot summarizes a snapshot of expenses against the total budget.
type BudgetSnapshot struct {
	TotalBudget     decimal.Decimal `json:"totalBudget"`
	TotalSpent      decimal.Decimal `json:"totalSpent"`
	Remaining       decimal.Decimal `json:"remaining"`       // Negative when the budget is exceeded
	SpentPercentage decimal.Decimal `json:"spentPercentage"` // Spent share of the total budget in percent, not capped
}

// Aggregate computes the per-category spending rollup for a snapshot of
// expenses.
//
// It returns one entry per catalog category in catalog order, including
// categories without any spending. Filtering empty categories for
// display is the caller's concern.
//
// Expense category names are matched exactly and case-sensitively
// against the catalog. Expenses with an unmatched category contribute
// to no bucket. Amounts are summed as given, negative values included.
//
// The effective budget of a category is its fixed budget when one is
// set. Otherwise it is the category's allocation of the total budget,
// with the allocation defaulting to an even split across the catalog.
func Aggregate(expenses []Expense, categories []Category, totalBudget decimal.Decimal) []CategorySpending {
	spending := make([]CategorySpending, 0, len(categories))
	if len(categories) == 0 {
		return spending
	}

	defaultAllocation := decimal.NewFromInt(1).Div(decimal.NewFromInt(int64(len(categories))))

	for _, category := range categories {
		var spent decimal.Decimal
		for _, expense := range expenses {
			if expense.Category == category.Name {
				spent = spent.Add(expense.Amount)
			}
		}

		budget := category.Budget
		if !budget.IsPositive() {
			allocation := category.Allocation
			if !allocation.IsPositive() {
				allocation = defaultAllocation
			}
			budget = allocation.Mul(totalBudget)
		}

		// The positivity guard keeps the percentage defined for
		// categories without a budget
		var percentage decimal.Decimal
		if budget.IsPositive() {
			percentage = decimal.Min(hundred, spent.Mul(hundred).Div(budget))
		}

		spending = append(spending, CategorySpending{
			Category:   category.Name,
			Spent:      spent,
			Budget:     budget,
			Percentage: percentage,
			Color:      category.Color,
			Icon:       category.Icon,
		})
	}

	return spending
}

// Snapshot computes the budget summary for a snapshot of expenses.
func Snapshot(expenses []Expense, totalBudget decimal.Decimal) BudgetSnapshot {
	totalSpent := Sum(expenses)

	var percentage decimal.Decimal
	if totalBudget.IsPositive() {
		percentage = totalSpent.Mul(hundred).Div(totalBudget)
	}

	return BudgetSnapshot{
		TotalBudget:     totalBudget,
		TotalSpent:      totalSpent,
		Remaining:       totalBudget.Sub(totalSpent),
		SpentPercentage: percentage,
	}
}
