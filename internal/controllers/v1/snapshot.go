package v1

import (
	"github.com/Kali-Thiresh-K/expense-tracker/internal/analytics"
	"github.com/Kali-Thiresh-K/expense-tracker/internal/models"
	"github.com/Kali-Thiresh-K/expense-tracker/internal/types"
)

// monthSnapshot loads the analytics records for all expenses in the
// month together with the budget setting.
func monthSnapshot(month types.Month) ([]analytics.Expense, models.BudgetSetting, error) {
	from := types.NewDate(month.Year(), month.Month(), 1)
	next := month.AddDate(0, 1)
	until := types.NewDate(next.Year(), next.Month(), 1)

	var expenses []models.Expense
	err := models.DB.
		Where("expenses.date >= date(?)", from).
		Where("expenses.date < date(?)", until).
		Find(&expenses).Error
	if err != nil {
		return nil, models.BudgetSetting{}, err
	}

	setting, err := models.Budget(models.DB)
	if err != nil {
		return nil, models.BudgetSetting{}, err
	}

	return models.Records(expenses), setting, nil
}

// yearExpenses loads the analytics records for all expenses in the year.
func yearExpenses(year int) ([]analytics.Expense, error) {
	var expenses []models.Expense
	err := models.DB.
		Where("expenses.date >= date(?)", types.NewDate(year, 1, 1)).
		Where("expenses.date < date(?)", types.NewDate(year+1, 1, 1)).
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return models.Records(expenses), nil
}
