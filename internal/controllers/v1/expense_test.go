package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/Kali-Thiresh-K/expense-tracker/internal/controllers/v1"
	"github.com/Kali-Thiresh-K/expense-tracker/internal/models"
	"github.com/Kali-Thiresh-K/expense-tracker/internal/types"
	"github.com/Kali-Thiresh-K/expense-tracker/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestExpensesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestExpensesDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestExpense(t, v1.ExpenseEditable{Title: "Failing expense"}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/expenses", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.ExpenseListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestExpensesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestExpensesOptions() {
	tests := []struct {
		name   string
		id     string // path at the expenses endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No expense with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Expense exists", createTestExpense(suite.T(), v1.ExpenseEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/expenses", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesCreate() {
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{
		Title:    "Electricity bill",
		Amount:   decimal.NewFromInt(1200),
		Category: "Bills & Utilities",
		Date:     types.NewDate(2024, 2, 5),
	})

	assert.Equal(suite.T(), "Electricity bill", expense.Data.Title)
	assert.Equal(suite.T(), "Bills & Utilities", expense.Data.Category)
	assert.True(suite.T(), expense.Data.Amount.Equal(decimal.NewFromInt(1200)))
	assert.True(suite.T(), expense.Data.Date.Equal(types.NewDate(2024, 2, 5)))
	assert.NotEmpty(suite.T(), expense.Data.Links.Self)
}

// TestExpensesCreateSuggestsCategory verifies that an expense without a
// category is assigned the suggestion for its title.
func (suite *TestSuiteStandard) TestExpensesCreateSuggestsCategory() {
	tests := []struct {
		title    string
		category string
	}{
		{"Dominos Pizza", "Food & Dining"},
		{"Uber to airport", "Transportation"},
		{"Something else entirely", "Other"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.title, func(t *testing.T) {
			expense := createTestExpense(t, v1.ExpenseEditable{Title: tt.title})
			assert.Equal(t, tt.category, expense.Data.Category)
		})
	}
}

// TestExpensesCreateDefaultDate verifies that an expense without a date
// is recorded for today.
func (suite *TestSuiteStandard) TestExpensesCreateDefaultDate() {
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{Title: "No date set"})
	assert.True(suite.T(), expense.Data.Date.Equal(types.Today()), "Date is %s", expense.Data.Date)
}

func (suite *TestSuiteStandard) TestExpensesCreateInvalid() {
	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Broken body", `{ broken: "json`, http.StatusBadRequest},
		{"No body", "", http.StatusBadRequest},
		{"Not a list", v1.ExpenseEditable{Title: "Not a list"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/expenses", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestExpensesCreateInvalidAmount verifies that expenses with a
// non-positive amount are rejected.
func (suite *TestSuiteStandard) TestExpensesCreateInvalidAmount() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", []v1.ExpenseEditable{
		{Title: "Free lunch", Amount: decimal.Zero},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.ExpenseCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), *response.Data[0].Error, models.ErrExpenseAmountNotPositive.Error())
}

func (suite *TestSuiteStandard) TestExpensesGetFilter() {
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{
		Title:    "Dominos Pizza",
		Category: "Food & Dining",
		Amount:   decimal.NewFromInt(450),
		Date:     types.NewDate(2024, 2, 5),
	})

	_ = createTestExpense(suite.T(), v1.ExpenseEditable{
		Title:       "Metro card",
		Category:    "Transportation",
		Amount:      decimal.NewFromInt(500),
		Date:        types.NewDate(2024, 2, 17),
		Description: "Monthly recharge",
	})

	_ = createTestExpense(suite.T(), v1.ExpenseEditable{
		Title:    "New Year dinner",
		Category: "Food & Dining",
		Amount:   decimal.NewFromInt(2000),
		Date:     types.NewDate(2023, 12, 31),
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Category", "category=Food %26 Dining", 2},
		{"Category, unknown", "category=No such category", 0},
		{"Month", "month=2024-02", 2},
		{"Month, empty", "month=2021-01", 0},
		{"Year", "year=2024", 2},
		{"Year, earlier", "year=2023", 1},
		{"Search title", "search=pizza", 1},
		{"Search description", "search=recharge", 1},
		{"Search, no match", "search=helicopter", 0},
		{"Month and category", "month=2024-02&category=Transportation", 1},
		{"Limit", "limit=2", 2},
		{"Limit and offset", "limit=2&offset=2", 1},
		{"No filters", "", 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ExpenseListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.len, len(response.Data), "Wrong number of expenses for query %q", tt.query)
		})
	}
}

// TestExpensesGetMonthInvalid verifies that an unparseable month
// filter returns an error.
func (suite *TestSuiteStandard) TestExpensesGetMonthInvalid() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?month=February", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

// TestExpensesPagination verifies the pagination information for the
// expense list.
func (suite *TestSuiteStandard) TestExpensesPagination() {
	for i := 0; i < 5; i++ {
		_ = createTestExpense(suite.T(), v1.ExpenseEditable{Date: types.NewDate(2024, time.March, i+1)})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?limit=2&offset=1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), 2, response.Pagination.Count)
	assert.Equal(suite.T(), uint(1), response.Pagination.Offset)
	assert.Equal(suite.T(), 2, response.Pagination.Limit)
	assert.Equal(suite.T(), int64(5), response.Pagination.Total)
}

// TestExpensesGetSingle verifies that requests for the resource endpoints are
// handled correctly.
func (suite *TestSuiteStandard) TestExpensesGetSingle() {
	e := createTestExpense(suite.T(), v1.ExpenseEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing expense", e.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET No expense with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodPatch},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodDelete},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/expenses/%s", tt.id), "")

			var expense v1.ExpenseResponse
			test.DecodeResponse(t, &r, &expense)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesUpdate() {
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{
		Title:    "Dominos Pizza",
		Category: "Food & Dining",
		Amount:   decimal.NewFromInt(450),
	})

	r := test.Request(suite.T(), http.MethodPatch, expense.Data.Links.Self, map[string]any{
		"title":  "Dominos Pizza, family size",
		"amount": 650,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.Equal(suite.T(), "Dominos Pizza, family size", updated.Data.Title)
	assert.True(suite.T(), updated.Data.Amount.Equal(decimal.NewFromInt(650)))

	// Fields that were not in the body are unchanged
	assert.Equal(suite.T(), "Food & Dining", updated.Data.Category)
}

func (suite *TestSuiteStandard) TestExpensesUpdateTrims() {
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{
		Title: "Dominos Pizza",
	})

	r := test.Request(suite.T(), http.MethodPatch, expense.Data.Links.Self, map[string]any{
		"title":       "  Movie tickets  ",
		"description": "  IMAX  ",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), "Movie tickets", updated.Data.Title)
	assert.Equal(suite.T(), "IMAX", updated.Data.Description)

	// The trimmed values are what got stored
	r = test.Request(suite.T(), http.MethodGet, expense.Data.Links.Self, "")
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), "Movie tickets", updated.Data.Title)
	assert.Equal(suite.T(), "IMAX", updated.Data.Description)

	// A title that is empty after trimming is rejected like an empty one
	r = test.Request(suite.T(), http.MethodPatch, expense.Data.Links.Self, map[string]any{"title": "   "})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestExpensesUpdateInvalid() {
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Broken body", `{ broken: "json`, http.StatusBadRequest},
		{"Non-positive amount", map[string]any{"amount": -100}, http.StatusBadRequest},
		{"Empty title", map[string]any{"title": ""}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, expense.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesDelete() {
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{})

	r := test.Request(suite.T(), http.MethodDelete, expense.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// The expense is gone
	r = test.Request(suite.T(), http.MethodGet, expense.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// Deleting again fails
	r = test.Request(suite.T(), http.MethodDelete, expense.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
