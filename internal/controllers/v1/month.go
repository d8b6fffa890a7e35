package v1

import (
	"net/http"

	"github.com/Kali-Thiresh-K/expense-tracker/internal/analytics"
	"github.com/Kali-Thiresh-K/expense-tracker/internal/httputil"
	"github.com/Kali-Thiresh-K/expense-tracker/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type MonthResponse struct {
	Data  *Month  `json:"data"`  // Data for the month
	Error *string `json:"error"` // The error, if any occurred
}

type Month struct {
	Month        types.Month                  `json:"month" example:"2024-02"`         // The month
	Spent        decimal.Decimal              `json:"spent" example:"12345.5"`         // The amount of money spent in this month
	SpentDisplay string                       `json:"spentDisplay" example:"₹12,345.5"` // The spent amount formatted for display
	Budget       analytics.BudgetSnapshot     `json:"budget"`                          // Spending summarized against the total budget
	Categories   []analytics.CategorySpending `json:"categories"`                      // Per-category spending for the month
	Insights     []string                     `json:"insights"`                        // Messages about categories running over their budget
}

// RegisterMonthRoutes registers the routes for months with
// the RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsMonth)
		r.GET("", GetMonth)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Months
// @Success		204
// @Router			/v1/months [options]
func OptionsMonth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get data about a month
// @Description	Returns the spending dashboard for a specific month.
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Router			/v1/months [get]
func GetMonth(c *gin.Context) {
	var query QueryMonth
	if err := c.Bind(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{
			Error: &s,
		})
		return
	}

	if query.Month == "" {
		s := errMonthNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{
			Error: &s,
		})
		return
	}

	month, err := types.ParseMonth(query.Month)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{
			Error: &s,
		})
		return
	}

	expenses, setting, err := monthSnapshot(month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	spending := analytics.Aggregate(expenses, analytics.DefaultCategories(), setting.TotalBudget)
	spent := analytics.Sum(expenses)

	c.JSON(http.StatusOK, MonthResponse{
		Data: &Month{
			Month:        month,
			Spent:        spent,
			SpentDisplay: analytics.FormatCurrency(spent, analytics.DefaultCurrencySymbol),
			Budget:       analytics.Snapshot(expenses, setting.TotalBudget),
			Categories:   spending,
			Insights:     analytics.Insights(spending),
		},
	})
}
