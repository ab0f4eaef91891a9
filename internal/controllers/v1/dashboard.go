package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mi-finanzas/backend/internal/format"
	"github.com/mi-finanzas/backend/internal/httputil"
	"github.com/mi-finanzas/backend/internal/models"
	"github.com/shopspring/decimal"
)

// DashboardData is the all-time summary shown on the start screen.
type DashboardData struct {
	IncomeTotal  decimal.Decimal `json:"ingresosTotales" example:"1000000"`
	ExpenseTotal decimal.Decimal `json:"gastosTotales" example:"650000"`
	Balance      decimal.Decimal `json:"balance" example:"350000"`
	SpentPercent decimal.Decimal `json:"porcentajeGastado" example:"65"`
	Status       string          `json:"estado" example:"yellow"`
	BalanceLabel string          `json:"balanceFormateado" example:"$350.000"`
	PercentLabel string          `json:"porcentajeFormateado" example:"65%"`
}

type DashboardResponse struct {
	Error *string        `json:"error"` // The error, if any occurred
	Data  *DashboardData `json:"data"`  // The summary
}

func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDashboard)
	r.GET("", GetDashboard)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// statusFor maps the spent percentage to a traffic light.
func statusFor(spentPercent decimal.Decimal) string {
	switch {
	case spentPercent.GreaterThanOrEqual(hundredPercent):
		return "red"
	case spentPercent.GreaterThanOrEqual(warningThreshold):
		return "yellow"
	default:
		return "green"
	}
}

var (
	hundredPercent   = decimal.NewFromInt(100)
	warningThreshold = decimal.NewFromInt(70)
)

// @Summary		Get the dashboard
// @Description	Returns the all-time income and expense totals, the balance and a traffic-light status for how much of the income is spent
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		500	{object}	DashboardResponse
// @Router			/v1/dashboard [get]
func GetDashboard(c *gin.Context) {
	state, err := models.LoadState()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &e})
		return
	}

	incomeTotal := state.IncomeTotal()
	expenseTotal := state.ExpenseTotal()
	balance := incomeTotal.Sub(expenseTotal)

	spentPercent := decimal.Zero
	if incomeTotal.IsPositive() {
		spentPercent = expenseTotal.Div(incomeTotal).Mul(hundredPercent)
	}

	data := DashboardData{
		IncomeTotal:  incomeTotal,
		ExpenseTotal: expenseTotal,
		Balance:      balance,
		SpentPercent: spentPercent,
		Status:       statusFor(spentPercent),
		BalanceLabel: format.Currency(balance, state.Currency),
		PercentLabel: format.Percentage(spentPercent),
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: &data})
}
