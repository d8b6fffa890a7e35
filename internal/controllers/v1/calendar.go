package v1

import (
	"net/http"

	"github.com/Kali-Thiresh-K/expense-tracker/internal/analytics"
	"github.com/Kali-Thiresh-K/expense-tracker/internal/httputil"
	"github.com/Kali-Thiresh-K/expense-tracker/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CalendarResponse struct {
	Data  *Calendar `json:"data"`  // The calendar for the month
	Error *string   `json:"error"` // The error, if any occurred
}

type Calendar struct {
	Month   types.Month     `json:"month" example:"2024-02"` // The month
	Days    []CalendarDay   `json:"days"`                    // Grid cells in week rows, leading cells before the first day have day 0
	Total   decimal.Decimal `json:"total" example:"12345.5"` // Sum of all expenses in the month
	Average decimal.Decimal `json:"average" example:"450"`   // Average amount per expense in the month
}

type CalendarDay struct {
	Day    int             `json:"day" example:"14"`     // Day of the month, 0 for a leading blank cell
	Total  decimal.Decimal `json:"total" example:"450"`  // Sum of the expenses on this day
	Count  int             `json:"count" example:"2"`    // Number of expenses on this day
	Titles []string        `json:"titles"`               // Titles of the expenses on this day
}

// RegisterCalendarRoutes registers the routes for the calendar with
// the RouterGroup that is passed.
func RegisterCalendarRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsCalendar)
		r.GET("", GetCalendar)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Calendar
// @Success		204
// @Router			/v1/calendar [options]
func OptionsCalendar(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get the calendar for a month
// @Description	Returns the day-by-day spending calendar for a specific month.
// @Tags			Calendar
// @Produce		json
// @Success		200		{object}	CalendarResponse
// @Failure		400		{object}	CalendarResponse
// @Failure		500		{object}	CalendarResponse
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Router			/v1/calendar [get]
func GetCalendar(c *gin.Context) {
	var query QueryMonth
	if err := c.Bind(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CalendarResponse{
			Error: &s,
		})
		return
	}

	if query.Month == "" {
		s := errMonthNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, CalendarResponse{
			Error: &s,
		})
		return
	}

	month, err := types.ParseMonth(query.Month)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CalendarResponse{
			Error: &s,
		})
		return
	}

	expenses, _, err := monthSnapshot(month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CalendarResponse{
			Error: &s,
		})
		return
	}

	byDay := analytics.GroupByDay(expenses)

	days := make([]CalendarDay, 0, month.Days()+month.FirstWeekday())
	for _, day := range analytics.Grid(month) {
		cell := CalendarDay{Day: day}

		for _, expense := range byDay[day] {
			cell.Total = cell.Total.Add(expense.Amount)
			cell.Count++
			cell.Titles = append(cell.Titles, expense.Title)
		}

		days = append(days, cell)
	}

	total := analytics.Sum(expenses)

	average := decimal.Zero
	if len(expenses) > 0 {
		average = total.Div(decimal.NewFromInt(int64(len(expenses))))
	}

	c.JSON(http.StatusOK, CalendarResponse{
		Data: &Calendar{
			Month:   month,
			Days:    days,
			Total:   total,
			Average: average,
		},
	})
}
