package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mi-finanzas/backend/internal/httputil"
	"github.com/mi-finanzas/backend/internal/ledger"
	"github.com/mi-finanzas/backend/internal/models"
	"github.com/shopspring/decimal"
)

// IncomeEditable is an income as posted by a client.
type IncomeEditable struct {
	Amount decimal.Decimal `json:"monto" example:"1000000"`
	Date   string          `json:"fecha" example:"2025-06-01"` // YYYY-MM-DD
}

type IncomeResponse struct {
	Error *string        `json:"error"` // The error, if any occurred
	Data  *models.Income `json:"data"`  // The resource
}

type IncomeListResponse struct {
	Error *string         `json:"error"` // The error, if any occurred
	Data  []models.Income `json:"data"`  // List of resources
}

func RegisterIncomeRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsIncomes)
		r.GET("", GetIncomes)
		r.POST("", CreateIncome)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Router			/v1/incomes [options]
func OptionsIncomes(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Create an income
// @Description	Records an income. Incomes are append-only.
// @Tags			Incomes
// @Produce		json
// @Success		201		{object}	IncomeResponse
// @Failure		400		{object}	IncomeResponse
// @Failure		500		{object}	IncomeResponse
// @Param			income	body		IncomeEditable	true	"Income"
// @Router			/v1/incomes [post]
func CreateIncome(c *gin.Context) {
	var editable IncomeEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{Error: &e})
		return
	}

	state, err := models.LoadState()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{Error: &e})
		return
	}

	income, err := ledger.AddIncome(state, editable.Amount, editable.Date)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{Error: &e})
		return
	}

	if err := models.SaveState(state); err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, IncomeResponse{Data: &income})
}

// @Summary		Get incomes
// @Description	Returns the list of all recorded incomes
// @Tags			Incomes
// @Produce		json
// @Success		200	{object}	IncomeListResponse
// @Failure		500	{object}	IncomeListResponse
// @Router			/v1/incomes [get]
func GetIncomes(c *gin.Context) {
	state, err := models.LoadState()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, IncomeListResponse{Data: state.Incomes})
}
