package ledger

import (
	"github.com/mi-finanzas/backend/internal/models"
	"github.com/mi-finanzas/backend/internal/types"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CategoryPercentage returns spent as a whole percentage of assigned,
// rounded half up. An unassigned budget is always at 0%.
func CategoryPercentage(spent, assigned decimal.Decimal) int64 {
	if !assigned.IsPositive() {
		return 0
	}

	return spent.Div(assigned).Mul(hundred).Round(0).IntPart()
}

// SetBudget upserts the assigned amount for a month and category.
//
// The spent column is always recomputed from the expense records; a
// caller-supplied spent value is never trusted on a direct budget edit.
func SetBudget(state *models.FinanceState, month types.Month, category types.Category, assigned decimal.Decimal) (models.BudgetEntry, error) {
	if err := ValidateBudget(category, assigned, state.Currency); err != nil {
		return models.BudgetEntry{}, err
	}

	entry := models.BudgetEntry{
		Assigned: assigned,
		Spent:    state.SpentFor(month, category),
	}
	state.MonthBudgetFor(month).Categories[category] = entry

	return entry, nil
}

// ExpensesByCategory sums the month's expenses per category. The surplus
// pseudo-category never appears in the result.
func ExpensesByCategory(state *models.FinanceState, month types.Month) map[types.Category]decimal.Decimal {
	totals := make(map[types.Category]decimal.Decimal)

	for _, expense := range state.Expenses {
		if !expense.Category.Valid() {
			continue
		}

		expenseMonth, err := types.ParseDateToMonth(expense.Date)
		if err != nil || !expenseMonth.Equal(month) {
			continue
		}

		totals[expense.Category] = totals[expense.Category].Add(expense.Amount)
	}

	return totals
}
