package v1

import (
	"fmt"

	"github.com/Kali-Thiresh-K/expense-tracker/internal/models"
	"github.com/Kali-Thiresh-K/expense-tracker/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ExpenseEditable struct {
	Title       string          `json:"title" example:"Dominos Pizza" default:""`                                                               // Title of the expense
	Amount      decimal.Decimal `json:"amount" example:"450" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"`      // The amount spent
	Category    string          `json:"category" example:"Food & Dining" default:""`                                                            // Name of the category. Empty on creation means it is suggested from the title
	Date        types.Date      `json:"date" example:"2024-02-05"`                                                                              // Calendar date the expense occurred. Defaults to today
	Description string          `json:"description" example:"Team lunch, split the bill" default:""`                                            // Notes about the expense
}

// model returns the database resource for the API representation of the editable fields
func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		Title:       editable.Title,
		Amount:      editable.Amount,
		Category:    editable.Category,
		Date:        editable.Date,
		Description: editable.Description,
	}
}

type ExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/expenses/d1b4a3b5-fd97-4fa4-becf-ea08143a74e3"` // The Expense itself
}

type Expense struct {
	models.DefaultModel
	ExpenseEditable
	Links ExpenseLinks `json:"links"`
}

// newExpense returns the API v1 representation of the resource
func newExpense(c *gin.Context, model models.Expense) Expense {
	url := c.GetString(string(models.DBContextURL))

	return Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			Title:       model.Title,
			Amount:      model.Amount,
			Category:    model.Category,
			Date:        model.Date,
			Description: model.Description,
		},
		Links: ExpenseLinks{
			Self: fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
		},
	}
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ExpenseCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ExpenseResponse `json:"data"`                                                          // List of created resources
}

func (t *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, ExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExpenseResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Expense `json:"data"`                                                          // The resource
}

type ExpenseQueryFilter struct {
	Category string `form:"category"`                   // By exact category name
	Month    string `form:"month" filterField:"false"`  // Expenses in this month, YYYY-MM format
	Year     int    `form:"year" filterField:"false"`   // Expenses in this year
	Search   string `form:"search" filterField:"false"` // By string in title or description
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first expense returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of expenses to return. Defaults to 50.
}

// model returns the database filter for the query parameters.
//
// The string and meta fields are not set since they are
// handled in the controller function
func (f ExpenseQueryFilter) model() models.Expense {
	return models.Expense{
		Category: f.Category,
	}
}
