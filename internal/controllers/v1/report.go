package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mi-finanzas/backend/internal/format"
	"github.com/mi-finanzas/backend/internal/httputil"
	"github.com/mi-finanzas/backend/internal/ledger"
	"github.com/mi-finanzas/backend/internal/models"
	"github.com/mi-finanzas/backend/internal/types"
	"github.com/shopspring/decimal"
)

// ReportRow is one category's line in the monthly report.
type ReportRow struct {
	Category   types.Category  `json:"categoria" example:"alimentacion"`
	Assigned   decimal.Decimal `json:"asignado" example:"200000"`
	Spent      decimal.Decimal `json:"gastado" example:"170000"`
	Percentage int64           `json:"porcentaje" example:"85"`
	Color      string          `json:"color" example:"yellow"`
	SpentLabel string          `json:"gastadoFormateado" example:"$170.000"`
}

// ReportData is the monthly spending report.
type ReportData struct {
	Month     types.Month     `json:"mes" example:"2025-06"`
	MonthName string          `json:"nombreMes" example:"Junio 2025"`
	Total     decimal.Decimal `json:"total" example:"650000"`
	Rows      []ReportRow     `json:"filas"`
}

type ReportResponse struct {
	Error *string     `json:"error"` // The error, if any occurred
	Data  *ReportData `json:"data"`  // The report
}

func RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:month", OptionsReport)
	r.GET("/:month", GetReport)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Param			month	path	URIMonth	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/reports/{month} [options]
func OptionsReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// rowColor maps a spent percentage to the report color class.
func rowColor(percentage int64) string {
	switch {
	case percentage > 100:
		return "red"
	case percentage > 80:
		return "yellow"
	default:
		return "green"
	}
}

// @Summary		Get a monthly report
// @Description	Returns the month's spending per category with the percentage of the assigned budget used and a color class per row
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	ReportResponse
// @Failure		400		{object}	ReportResponse
// @Failure		500		{object}	ReportResponse
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/reports/{month} [get]
func GetReport(c *gin.Context) {
	var uri URIMonth
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ReportResponse{Error: &e})
		return
	}

	month, err := types.ParseMonth(uri.Month)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ReportResponse{Error: &e})
		return
	}

	state, err := models.LoadState()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReportResponse{Error: &e})
		return
	}

	spentByCategory := ledger.ExpensesByCategory(state, month)

	var budget models.MonthBudget
	if b, ok := state.Budgets[month]; ok {
		budget = *b
	}

	data := ReportData{
		Month:     month,
		MonthName: format.MonthName(month.String()),
		Total:     decimal.Zero,
		Rows:      make([]ReportRow, 0, len(types.Categories())),
	}

	for _, category := range types.Categories() {
		spent := spentByCategory[category]
		assigned := budget.Categories[category].Assigned
		percentage := ledger.CategoryPercentage(spent, assigned)

		data.Total = data.Total.Add(spent)
		data.Rows = append(data.Rows, ReportRow{
			Category:   category,
			Assigned:   assigned,
			Spent:      spent,
			Percentage: percentage,
			Color:      rowColor(percentage),
			SpentLabel: format.Currency(spent, state.Currency),
		})
	}

	c.JSON(http.StatusOK, ReportResponse{Data: &data})
}
