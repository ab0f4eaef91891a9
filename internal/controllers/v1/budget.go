package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mi-finanzas/backend/internal/httputil"
	"github.com/mi-finanzas/backend/internal/ledger"
	"github.com/mi-finanzas/backend/internal/models"
	"github.com/mi-finanzas/backend/internal/types"
	"github.com/shopspring/decimal"
)

// BudgetEditable is the assigned amount for one month and category.
type BudgetEditable struct {
	Assigned decimal.Decimal `json:"asignado" example:"200000"`
}

// CategoryData is one category's budget entry as served by the API,
// with the spent percentage precomputed.
type CategoryData struct {
	Assigned   decimal.Decimal `json:"asignado" example:"200000"`
	Spent      decimal.Decimal `json:"gastado" example:"150000"`
	Percentage int64           `json:"porcentaje" example:"75"`
}

// MonthData is one month's budget table.
type MonthData struct {
	Month      types.Month                     `json:"mes" example:"2025-06"`
	Categories map[types.Category]CategoryData `json:"categorias"`
	Surplus    decimal.Decimal                 `json:"excedente" example:"0"`
}

type MonthResponse struct {
	Error *string    `json:"error"` // The error, if any occurred
	Data  *MonthData `json:"data"`  // The month
}

type BudgetEntryResponse struct {
	Error *string             `json:"error"` // The error, if any occurred
	Data  *models.BudgetEntry `json:"data"`  // The updated entry
}

func RegisterMonthRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/:month", OptionsMonth)
		r.GET("/:month", GetMonth)
	}
	{
		r.OPTIONS("/:month/categories/:category", OptionsMonthCategory)
		r.PUT("/:month/categories/:category", SetBudget)
	}
}

// uriMonthCategory binds the month and category path segments.
type uriMonthCategory struct {
	Month    string `uri:"month" binding:"required" example:"2025-06"`
	Category string `uri:"category" binding:"required" example:"alimentacion"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Param			month	path	URIMonth	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/months/{month} [options]
func OptionsMonth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Param			month		path	string	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			category	path	string	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/months/{month}/categories/{category} [options]
func OptionsMonthCategory(c *gin.Context) {
	httputil.OptionsPut(c)
}

// @Summary		Get a month
// @Description	Returns the month's budget table with a row for every category, whether budgeted or not, plus the month's surplus bucket
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/months/{month} [get]
func GetMonth(c *gin.Context) {
	var uri URIMonth
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{Error: &e})
		return
	}

	month, err := types.ParseMonth(uri.Month)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{Error: &e})
		return
	}

	state, err := models.LoadState()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{Error: &e})
		return
	}

	data := MonthData{
		Month:      month,
		Categories: make(map[types.Category]CategoryData, len(types.Categories())),
	}

	var budget models.MonthBudget
	if b, ok := state.Budgets[month]; ok {
		budget = *b
	}
	data.Surplus = budget.Surplus

	// Every category gets a row so clients do not have to special-case
	// unbudgeted ones.
	for _, category := range types.Categories() {
		entry := budget.Categories[category]
		data.Categories[category] = CategoryData{
			Assigned:   entry.Assigned,
			Spent:      entry.Spent,
			Percentage: ledger.CategoryPercentage(entry.Spent, entry.Assigned),
		}
	}

	c.JSON(http.StatusOK, MonthResponse{Data: &data})
}

// @Summary		Set a budget
// @Description	Sets the assigned amount for a month and category. The spent column is recomputed from the expense records.
// @Tags			Months
// @Produce		json
// @Success		200			{object}	BudgetEntryResponse
// @Failure		400			{object}	BudgetEntryResponse
// @Failure		500			{object}	BudgetEntryResponse
// @Param			month		path		string			true	"The month in YYYY-MM format"
// @Param			category	path		string			true	"The category"
// @Param			budget		body		BudgetEditable	true	"Budget"
// @Router			/v1/months/{month}/categories/{category} [put]
func SetBudget(c *gin.Context) {
	var uri uriMonthCategory
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, BudgetEntryResponse{Error: &e})
		return
	}

	month, err := types.ParseMonth(uri.Month)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, BudgetEntryResponse{Error: &e})
		return
	}

	var editable BudgetEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetEntryResponse{Error: &e})
		return
	}

	state, err := models.LoadState()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetEntryResponse{Error: &e})
		return
	}

	entry, err := ledger.SetBudget(state, month, types.Category(uri.Category), editable.Assigned)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetEntryResponse{Error: &e})
		return
	}

	if err := models.SaveState(state); err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetEntryResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, BudgetEntryResponse{Data: &entry})
}
