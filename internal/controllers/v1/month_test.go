package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/Kali-Thiresh-K/expense-tracker/internal/controllers/v1"
	"github.com/Kali-Thiresh-K/expense-tracker/internal/types"
	"github.com/Kali-Thiresh-K/expense-tracker/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestMonthsOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/months", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestMonthsGet() {
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{
		Title:    "Dominos Pizza",
		Category: "Food & Dining",
		Amount:   decimal.NewFromInt(4500),
		Date:     types.NewDate(2024, 2, 5),
	})

	_ = createTestExpense(suite.T(), v1.ExpenseEditable{
		Title:    "Metro card",
		Category: "Transportation",
		Amount:   decimal.NewFromInt(500),
		Date:     types.NewDate(2024, 2, 17),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months?month=2024-02", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	assert.True(suite.T(), response.Data.Spent.Equal(decimal.NewFromInt(5000)), "Spent is %s", response.Data.Spent)
	assert.Equal(suite.T(), "₹5,000", response.Data.SpentDisplay)

	// The budget snapshot uses the default total budget
	assert.True(suite.T(), response.Data.Budget.TotalBudget.Equal(decimal.NewFromInt(32000)))
	assert.True(suite.T(), response.Data.Budget.Remaining.Equal(decimal.NewFromInt(27000)))

	// Food & Dining is at 90% of its 5000 budget
	food := response.Data.Categories[0]
	assert.Equal(suite.T(), "Food & Dining", food.Category)
	assert.True(suite.T(), food.Percentage.Equal(decimal.NewFromInt(90)), "Percentage is %s", food.Percentage)

	// 90% is over the warning threshold
	require.Len(suite.T(), response.Data.Insights, 1)
	assert.Contains(suite.T(), response.Data.Insights[0], "Food & Dining")
}

// TestMonthsGetEncouragement verifies that a month without overspending
// gets the encouragement message.
func (suite *TestSuiteStandard) TestMonthsGetEncouragement() {
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{
		Category: "Food & Dining",
		Amount:   decimal.NewFromInt(100),
		Date:     types.NewDate(2024, 2, 5),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months?month=2024-02", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data.Insights, 1)
	assert.Contains(suite.T(), response.Data.Insights[0], "Great job")
}

func (suite *TestSuiteStandard) TestMonthsGetInvalid() {
	tests := []struct {
		name  string
		query string
	}{
		{"Month not set", ""},
		{"Month unparseable", "month=awesome"},
		{"Month is a date", "month=2024-02-05"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/months?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestMonthsDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months?month=2024-02", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
