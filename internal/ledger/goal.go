package ledger

import (
	"strings"

	"github.com/mi-finanzas/backend/internal/format"
	"github.com/mi-finanzas/backend/internal/models"
	"github.com/shopspring/decimal"
)

// MaxGoals is the maximum number of goals a state may hold.
const MaxGoals = 10

// CreateGoal validates and appends a new goal with zero progress.
func CreateGoal(state *models.FinanceState, name string, total decimal.Decimal, deadline string) (models.Goal, error) {
	if len(state.Goals) >= MaxGoals {
		return models.Goal{}, reject(CodeGoalCapacityExceeded, "", "the goal limit has been reached (%d)", MaxGoals)
	}

	if err := ValidateGoal(name, total, deadline, state.Currency); err != nil {
		return models.Goal{}, err
	}

	goal := models.Goal{
		Name:     strings.TrimSpace(name),
		Total:    total,
		Progress: decimal.Zero,
		Deadline: deadline,
	}
	state.Goals = append(state.Goals, goal)

	return goal, nil
}

// UpdateGoal replaces a goal's name, total and deadline. Progress is
// preserved, and the total can never shrink below it.
func UpdateGoal(state *models.FinanceState, index int, name string, total decimal.Decimal, deadline string) (models.Goal, error) {
	if index < 0 || index >= len(state.Goals) {
		return models.Goal{}, reject(CodeNotFound, "index", "no goal with this index exists")
	}

	if err := ValidateGoal(name, total, deadline, state.Currency); err != nil {
		return models.Goal{}, err
	}

	current := state.Goals[index]
	if total.LessThan(current.Progress) {
		return models.Goal{}, reject(CodeGoalCapacityExceeded, "total", "the total cannot be less than the current progress")
	}

	updated := models.Goal{
		Name:     strings.TrimSpace(name),
		Total:    total,
		Progress: current.Progress,
		Deadline: deadline,
	}
	state.Goals[index] = updated

	return updated, nil
}

// Contribute adds an amount to a goal's progress, capped at the goal's
// total. The rejection message reports the exact remaining headroom.
func Contribute(state *models.FinanceState, index int, amount decimal.Decimal) (models.Goal, error) {
	if index < 0 || index >= len(state.Goals) {
		return models.Goal{}, reject(CodeNotFound, "index", "no goal with this index exists")
	}

	if err := ValidateAmount(amount, state.Currency, nil); err != nil {
		return models.Goal{}, err
	}

	goal := state.Goals[index]
	if goal.Progress.Add(amount).GreaterThan(goal.Total) {
		remaining := goal.Total.Sub(goal.Progress)
		return models.Goal{}, reject(CodeGoalCapacityExceeded, "amount",
			"the amount exceeds the remaining headroom (%s)", format.Currency(remaining, state.Currency))
	}

	goal.Progress = goal.Progress.Add(amount)
	state.Goals[index] = goal

	return goal, nil
}
