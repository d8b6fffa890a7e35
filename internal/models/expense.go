package models

import (
	"strings"

	"github.com/Kali-Thiresh-K/expense-tracker/internal/analytics"
	"github.com/Kali-Thiresh-K/expense-tracker/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense represents a single spending event.
//
// The category is a soft reference into the category catalog: it is
// stored as the plain name and is not enforced by a foreign key, so an
// expense can outlive a catalog change without breaking.
type Expense struct {
	DefaultModel
	Title       string          `json:"title" example:"Dominos Pizza"`                                       // Title of the expense
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"450"`                      // The amount spent
	Category    string          `json:"category" example:"Food & Dining"`                                    // Name of the category the expense belongs to
	Date        types.Date      `json:"date" example:"2024-02-05"`                                           // Calendar date the expense occurred, distinct from CreatedAt
	Description string          `json:"description" example:"Team lunch, split the bill" default:""`         // Notes about the expense
}

// BeforeSave trims the free-text fields and defaults the date to today.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Title = strings.TrimSpace(e.Title)
	e.Description = strings.TrimSpace(e.Description)

	if e.Date.IsZero() {
		e.Date = types.Today()
	}

	return nil
}

// AfterSave validates the expense. This is the form-validation
// boundary: records that reach the analytics functions are well formed
// because they cannot be stored otherwise.
func (e *Expense) AfterSave(_ *gorm.DB) error {
	if e.Title == "" {
		return ErrExpenseTitleEmpty
	}

	if !decimal.Decimal.IsPositive(e.Amount) {
		return ErrExpenseAmountNotPositive
	}

	return nil
}

// Record returns the plain snapshot record for the analytics functions.
func (e Expense) Record() analytics.Expense {
	return analytics.Expense{
		Title:    e.Title,
		Amount:   e.Amount,
		Category: e.Category,
		Date:     e.Date,
	}
}

// Records converts a list of expenses into analytics snapshot records.
func Records(expenses []Expense) []analytics.Expense {
	records := make([]analytics.Expense, 0, len(expenses))
	for _, expense := range expenses {
		records = append(records, expense.Record())
	}

	return records
}
