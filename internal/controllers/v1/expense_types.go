package v1

import (
	"github.com/mi-finanzas/backend/internal/ledger"
	"github.com/mi-finanzas/backend/internal/models"
	"github.com/mi-finanzas/backend/internal/types"
	"github.com/shopspring/decimal"
)

// ExpenseEditable is an expense as posted by a client.
type ExpenseEditable struct {
	Amount   decimal.Decimal `json:"monto" example:"12000"`
	Category string          `json:"categoria" example:"alimentacion"`
	Note     string          `json:"nota" example:"almuerzo" default:""`
	Date     string          `json:"fecha" example:"2025-06-15"` // YYYY-MM-DD
}

// draft returns the ledger draft for the posted fields.
func (editable ExpenseEditable) draft() ledger.ExpenseDraft {
	return ledger.ExpenseDraft{
		Amount:   editable.Amount,
		Category: types.Category(editable.Category),
		Note:     editable.Note,
		Date:     editable.Date,
	}
}

// ExpenseCreate is the commit-phase request: the draft plus the
// confirmations the user granted.
type ExpenseCreate struct {
	ExpenseEditable
	Confirmations []ledger.ConfirmationKind `json:"confirmaciones"` // granted confirmation gates
}

// ExpenseCheckData is the check-phase result for the API.
type ExpenseCheckData struct {
	Month         types.Month           `json:"mes" example:"2025-06"`
	IncomeShare   decimal.Decimal       `json:"porcentajeIngresos" example:"80"`
	BudgetShare   decimal.Decimal       `json:"porcentajePresupuesto" example:"110"`
	Confirmations []ledger.Confirmation `json:"confirmaciones"`
}

func newExpenseCheckData(check ledger.ExpenseCheck) ExpenseCheckData {
	confirmations := check.Confirmations
	if confirmations == nil {
		confirmations = []ledger.Confirmation{}
	}

	return ExpenseCheckData{
		Month:         check.Month,
		IncomeShare:   check.IncomeShare,
		BudgetShare:   check.BudgetShare,
		Confirmations: confirmations,
	}
}

type ExpenseCheckResponse struct {
	Error *string           `json:"error"` // The error, if any occurred
	Data  *ExpenseCheckData `json:"data"`  // The check result
}

type ExpenseResponse struct {
	Error *string         `json:"error"` // The error, if any occurred
	Data  *models.Expense `json:"data"`  // The resource
}

type ExpenseListResponse struct {
	Error *string          `json:"error"` // The error, if any occurred
	Data  []models.Expense `json:"data"`  // List of resources
}

// ExpenseQueryFilter narrows the expense listing.
type ExpenseQueryFilter struct {
	Month    string `form:"mes"`       // Only expenses in this YYYY-MM month
	Category string `form:"categoria"` // Only expenses with this category
	Note     string `form:"nota"`      // Glob pattern matched against the note
}
