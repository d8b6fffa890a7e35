package models

import (
	"github.com/Kali-Thiresh-K/expense-tracker/internal/analytics"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetSetting holds the total monthly budget. There is exactly one
// row; it is created with the catalog default the first time the
// budget is read.
type BudgetSetting struct {
	DefaultModel
	TotalBudget decimal.Decimal `json:"totalBudget" gorm:"type:DECIMAL(20,8)" example:"32000"` // The total monthly budget
}

// AfterSave validates the budget setting.
func (b *BudgetSetting) AfterSave(_ *gorm.DB) error {
	if b.TotalBudget.IsNegative() {
		return ErrBudgetNegative
	}

	return nil
}

// Budget returns the total monthly budget, creating the default
// setting if none is stored yet.
func Budget(db *gorm.DB) (BudgetSetting, error) {
	var setting BudgetSetting

	err := db.Attrs(BudgetSetting{TotalBudget: analytics.DefaultTotalBudget()}).FirstOrCreate(&setting).Error
	if err != nil {
		return BudgetSetting{}, err
	}

	return setting, nil
}

// SetBudget updates the total monthly budget.
func SetBudget(db *gorm.DB, total decimal.Decimal) (BudgetSetting, error) {
	setting, err := Budget(db)
	if err != nil {
		return BudgetSetting{}, err
	}

	// Select includes zero values, so the budget can be set to 0
	err = db.Model(&setting).Select("TotalBudget").Updates(BudgetSetting{TotalBudget: total}).Error
	if err != nil {
		return BudgetSetting{}, err
	}

	setting.TotalBudget = total
	return setting, nil
}
