package v1_test

import (
	"net/http"
	"testing"
	"time"

	v1 "github.com/Kali-Thiresh-K/expense-tracker/internal/controllers/v1"
	"github.com/Kali-Thiresh-K/expense-tracker/internal/types"
	"github.com/Kali-Thiresh-K/expense-tracker/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestYearsOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/years", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestYearsGet() {
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{
		Amount: decimal.NewFromInt(450),
		Date:   types.NewDate(2024, 2, 5),
	})

	_ = createTestExpense(suite.T(), v1.ExpenseEditable{
		Amount: decimal.NewFromInt(550),
		Date:   types.NewDate(2024, 2, 17),
	})

	_ = createTestExpense(suite.T(), v1.ExpenseEditable{
		Amount: decimal.NewFromInt(2000),
		Date:   types.NewDate(2024, 11, 3),
	})

	// Outside the requested year
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{
		Amount: decimal.NewFromInt(9999),
		Date:   types.NewDate(2023, 12, 31),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/years?year=2024", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.YearResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	assert.Equal(suite.T(), 2024, response.Data.Year)
	assert.True(suite.T(), response.Data.Total.Equal(decimal.NewFromInt(3000)), "Total is %s", response.Data.Total)

	require.Len(suite.T(), response.Data.Months, 12)

	february := response.Data.Months[1]
	assert.True(suite.T(), february.Month.Equal(types.NewMonth(2024, time.February)))
	assert.True(suite.T(), february.Spent.Equal(decimal.NewFromInt(1000)), "Spent is %s", february.Spent)
	assert.Equal(suite.T(), 2, february.Count)

	november := response.Data.Months[10]
	assert.True(suite.T(), november.Spent.Equal(decimal.NewFromInt(2000)))
	assert.Equal(suite.T(), 1, november.Count)

	// Months without expenses are included with zero spending
	assert.True(suite.T(), response.Data.Months[0].Spent.IsZero())
	assert.Equal(suite.T(), 0, response.Data.Months[0].Count)
}

func (suite *TestSuiteStandard) TestYearsGetInvalid() {
	tests := []struct {
		name  string
		query string
	}{
		{"Year not set", ""},
		{"Year unparseable", "year=awesome"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/years?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}
