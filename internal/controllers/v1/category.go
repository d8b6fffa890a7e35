package v1

import (
	"net/http"
	"time"

	"github.com/Kali-Thiresh-K/expense-tracker/internal/analytics"
	"github.com/Kali-Thiresh-K/expense-tracker/internal/httputil"
	"github.com/Kali-Thiresh-K/expense-tracker/internal/types"
	"github.com/gin-gonic/gin"
)

type CategoryListResponse struct {
	Data  []analytics.CategorySpending `json:"data"`                                               // Catalog categories with their spending in the current month
	Error *string                      `json:"error" example:"the month query parameter is wrong"` // The error, if any occurred
}

type SuggestionResponse struct {
	Data  *Suggestion `json:"data"`                                                    // The suggested category
	Error *string     `json:"error" example:"the title query parameter must be set"`   // The error, if any occurred
}

type Suggestion struct {
	Title    string `json:"title" example:"Dominos Pizza"`     // The title the suggestion is for
	Category string `json:"category" example:"Food & Dining"`  // Name of the suggested category
	Icon     string `json:"icon" example:"🍽️"`                // Icon of the suggested category
	Color    string `json:"color" example:"hsl(24 95% 53%)"`   // Color of the suggested category
}

type QueryTitle struct {
	Title string `form:"title" example:"Dominos Pizza"` // The expense title to suggest a category for
}

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", GetCategories)
	}
	{
		r.OPTIONS("/suggest", OptionsCategorySuggest)
		r.GET("/suggest", GetCategorySuggestion)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories/suggest [options]
func OptionsCategorySuggest(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get categories
// @Description	Returns the category catalog with the spending for a month. Defaults to the current month.
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		400	{object}	CategoryListResponse
// @Failure		500	{object}	CategoryListResponse
// @Param			month	query	string	false	"The month in YYYY-MM format. Defaults to the current month."
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	var query QueryMonth
	if err := c.Bind(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CategoryListResponse{
			Error: &s,
		})
		return
	}

	month := types.MonthOf(time.Now())
	if query.Month != "" {
		m, err := types.ParseMonth(query.Month)
		if err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, CategoryListResponse{
				Error: &s,
			})
			return
		}
		month = m
	}

	expenses, setting, err := monthSnapshot(month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &s,
		})
		return
	}

	spending := analytics.Aggregate(expenses, analytics.DefaultCategories(), setting.TotalBudget)

	c.JSON(http.StatusOK, CategoryListResponse{Data: spending})
}

// @Summary		Suggest a category
// @Description	Suggests a category for an expense title
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	SuggestionResponse
// @Failure		400	{object}	SuggestionResponse
// @Param			title	query	string	true	"The expense title to suggest a category for"
// @Router			/v1/categories/suggest [get]
func GetCategorySuggestion(c *gin.Context) {
	var query QueryTitle
	if err := c.Bind(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SuggestionResponse{
			Error: &s,
		})
		return
	}

	if query.Title == "" {
		s := errTitleNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, SuggestionResponse{
			Error: &s,
		})
		return
	}

	name := analytics.Classify(query.Title)
	category := analytics.Lookup(analytics.DefaultCategories(), name)

	c.JSON(http.StatusOK, SuggestionResponse{
		Data: &Suggestion{
			Title:    query.Title,
			Category: name,
			Icon:     category.Icon,
			Color:    category.Color,
		},
	})
}
