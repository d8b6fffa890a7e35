package analytics

import (
	"github.com/Kali-Thiresh-K/expense-tracker/internal/types"
	"github.com/shopspring/decimal"
)

// NoDay is the sentinel for grid cells before day 1 of the month.
// Valid day numbers start at 1, so 0 is never a real day.
const NoDay = 0

// FilterMonth returns the expenses whose date falls into the month.
func FilterMonth(expenses []Expense, month types.Month) []Expense {
	filtered := make([]Expense, 0, len(expenses))
	for _, expense := range expenses {
		if month.Contains(expense.Date) {
			filtered = append(filtered, expense)
		}
	}

	return filtered
}

// FilterYear returns the expenses whose date falls into the year.
func FilterYear(expenses []Expense, year int) []Expense {
	filtered := make([]Expense, 0, len(expenses))
	for _, expense := range expenses {
		if expense.Date.Year() == year {
			filtered = append(filtered, expense)
		}
	}

	return filtered
}

// Sum returns the sum of the expense amounts.
func Sum(expenses []Expense) decimal.Decimal {
	var sum decimal.Decimal
	for _, expense := range expenses {
		sum = sum.Add(expense.Amount)
	}

	return sum
}

// Grid builds the cell sequence for rendering a month as a
// Sunday-first calendar.
//
// The sequence starts with one NoDay cell for every weekday before
// day 1 of the month, followed by the day numbers 1 to the last day
// of the month.
func Grid(month types.Month) []int {
	offset := month.FirstWeekday()
	days := month.Days()

	grid := make([]int, 0, offset+days)
	for i := 0; i < offset; i++ {
		grid = append(grid, NoDay)
	}
	for day := 1; day <= days; day++ {
		grid = append(grid, day)
	}

	return grid
}

// GroupByDay buckets a single-month expense list by day of the month.
// Within a bucket, expenses keep their input order.
func GroupByDay(expenses []Expense) map[int][]Expense {
	buckets := make(map[int][]Expense)
	for _, expense := range expenses {
		day := expense.Date.Day()
		buckets[day] = append(buckets[day], expense)
	}

	return buckets
}
