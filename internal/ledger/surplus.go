package ledger

import (
	"github.com/mi-finanzas/backend/internal/models"
	"github.com/mi-finanzas/backend/internal/types"
	"github.com/shopspring/decimal"
)

// SurplusToGoal moves the carried surplus into a goal's progress and
// zeroes the surplus. The two sides change together; a partial transfer
// is never observable.
//
// Unlike Contribute, the transfer is not capped at the goal's total.
func SurplusToGoal(state *models.FinanceState, index int) (models.Goal, error) {
	if len(state.Goals) == 0 {
		return models.Goal{}, reject(CodeNotFound, "", "no goals defined, create a goal first")
	}

	if index < 0 || index >= len(state.Goals) {
		return models.Goal{}, reject(CodeNotFound, "index", "no goal with this index exists")
	}

	goal := state.Goals[index]
	goal.Progress = goal.Progress.Add(state.PreviousSurplus)
	state.Goals[index] = goal
	state.PreviousSurplus = decimal.Zero

	return goal, nil
}

// CarrySurplus moves the carried surplus into the next month's surplus
// bucket, creating the month entry if needed, and zeroes the surplus.
func CarrySurplus(state *models.FinanceState, fromMonth types.Month) (types.Month, error) {
	next := fromMonth.AddDate(0, 1)

	budget := state.MonthBudgetFor(next)
	budget.Surplus = budget.Surplus.Add(state.PreviousSurplus)
	state.PreviousSurplus = decimal.Zero

	return next, nil
}
