package v1

import (
	"net/http"

	"github.com/Kali-Thiresh-K/expense-tracker/internal/httputil"
	"github.com/Kali-Thiresh-K/expense-tracker/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Expenses   string `json:"expenses" example:"https://example.com/api/v1/expenses"`     // URL of Expense collection endpoint
	Categories string `json:"categories" example:"https://example.com/api/v1/categories"` // URL of the category catalog endpoint
	Months     string `json:"months" example:"https://example.com/api/v1/months"`         // URL of the month dashboard endpoint
	Calendar   string `json:"calendar" example:"https://example.com/api/v1/calendar"`     // URL of the calendar endpoint
	Years      string `json:"years" example:"https://example.com/api/v1/years"`           // URL of the year breakdown endpoint
	Budget     string `json:"budget" example:"https://example.com/api/v1/budget"`         // URL of the budget setting endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Expenses:   url + "/v1/expenses",
			Categories: url + "/v1/categories",
			Months:     url + "/v1/months",
			Calendar:   url + "/v1/calendar",
			Years:      url + "/v1/years",
			Budget:     url + "/v1/budget",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
