package v1

import (
	"net/http"
	"time"

	"github.com/Kali-Thiresh-K/expense-tracker/internal/analytics"
	"github.com/Kali-Thiresh-K/expense-tracker/internal/httputil"
	"github.com/Kali-Thiresh-K/expense-tracker/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type YearResponse struct {
	Data  *Year   `json:"data"`  // Data for the year
	Error *string `json:"error"` // The error, if any occurred
}

type Year struct {
	Year   int             `json:"year" example:"2024"`      // The year
	Total  decimal.Decimal `json:"total" example:"123456.5"` // Sum of all expenses in the year
	Months []YearMonth     `json:"months"`                   // Spending for each of the twelve months
}

type YearMonth struct {
	Month types.Month     `json:"month" example:"2024-02"` // The month
	Spent decimal.Decimal `json:"spent" example:"12345.5"` // Sum of the expenses in the month
	Count int             `json:"count" example:"23"`      // Number of expenses in the month
}

// RegisterYearRoutes registers the routes for years with
// the RouterGroup that is passed.
func RegisterYearRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsYear)
		r.GET("", GetYear)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Years
// @Success		204
// @Router			/v1/years [options]
func OptionsYear(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get data about a year
// @Description	Returns the total and the month-by-month spending breakdown for a year.
// @Tags			Years
// @Produce		json
// @Success		200		{object}	YearResponse
// @Failure		400		{object}	YearResponse
// @Failure		500		{object}	YearResponse
// @Param			year	query		int	true	"The year in YYYY format"
// @Router			/v1/years [get]
func GetYear(c *gin.Context) {
	var query QueryYear
	if err := c.Bind(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, YearResponse{
			Error: &s,
		})
		return
	}

	if query.Year == 0 {
		s := errYearNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, YearResponse{
			Error: &s,
		})
		return
	}

	expenses, err := yearExpenses(query.Year)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), YearResponse{
			Error: &s,
		})
		return
	}

	months := make([]YearMonth, 0, 12)
	for m := time.January; m <= time.December; m++ {
		month := types.NewMonth(query.Year, m)
		inMonth := analytics.FilterMonth(expenses, month)

		months = append(months, YearMonth{
			Month: month,
			Spent: analytics.Sum(inMonth),
			Count: len(inMonth),
		})
	}

	c.JSON(http.StatusOK, YearResponse{
		Data: &Year{
			Year:   query.Year,
			Total:  analytics.Sum(expenses),
			Months: months,
		},
	})
}
