package v1

import (
	"net/http"

	"github.com/Kali-Thiresh-K/expense-tracker/internal/httputil"
	"github.com/Kali-Thiresh-K/expense-tracker/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BudgetEditable struct {
	TotalBudget decimal.Decimal `json:"totalBudget" example:"32000" minimum:"0" multipleOf:"0.00000001"` // The total budget all categories share
}

type Budget struct {
	models.DefaultModel
	BudgetEditable
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                      // The budget setting
	Error *string `json:"error" example:"the total budget must not be negative"` // The error, if any occurred
}

// newBudget returns the API v1 representation of the resource
func newBudget(model models.BudgetSetting) Budget {
	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			TotalBudget: model.TotalBudget,
		},
	}
}

// RegisterBudgetRoutes registers the routes for the budget setting with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsBudget)
		r.GET("", GetBudget)
		r.PATCH("", UpdateBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget
// @Success		204
// @Router			/v1/budget [options]
func OptionsBudget(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get the budget
// @Description	Returns the total budget setting
// @Tags			Budget
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Router			/v1/budget [get]
func GetBudget(c *gin.Context) {
	setting, err := models.Budget(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	data := newBudget(setting)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Update the budget
// @Description	Updates the total budget setting
// @Tags			Budget
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budget [patch]
func UpdateBudget(c *gin.Context) {
	var data BudgetEditable
	err := httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	setting, err := models.SetBudget(models.DB, data.TotalBudget)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	apiResource := newBudget(setting)
	c.JSON(http.StatusOK, BudgetResponse{Data: &apiResource})
}
