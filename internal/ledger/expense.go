package ledger

import (
	"slices"

	"github.com/google/uuid"
	"github.com/mi-finanzas/backend/internal/format"
	"github.com/mi-finanzas/backend/internal/models"
	"github.com/mi-finanzas/backend/internal/types"
	"github.com/shopspring/decimal"
)

// DefaultWarningPercent is the income-share threshold above which an
// expense needs explicit confirmation.
var DefaultWarningPercent = decimal.NewFromInt(70)

// ConfirmationKind identifies one of the two confirmation gates.
type ConfirmationKind string

const (
	// ConfirmIncomeShare fires when the expense is a large share of all
	// recorded income.
	ConfirmIncomeShare ConfirmationKind = "income-share"

	// ConfirmBudgetExceeded fires when the expense would push the
	// month/category budget past 100%.
	ConfirmBudgetExceeded ConfirmationKind = "budget-exceeded"
)

// Confirmation is one prompt the caller must answer before an expense
// can be committed.
type Confirmation struct {
	Kind    ConfirmationKind `json:"kind"`
	Message string           `json:"message"`
}

// ExpenseDraft is an expense as posted, before validation.
type ExpenseDraft struct {
	Amount   decimal.Decimal
	Category types.Category
	Note     string
	Date     string // YYYY-MM-DD
}

// ExpenseCheck is the result of the policy check phase: the derived
// shares and the confirmations that must be granted before commit.
type ExpenseCheck struct {
	Month         types.Month
	IncomeShare   decimal.Decimal
	BudgetShare   decimal.Decimal
	Confirmations []Confirmation
}

// CheckExpense validates a draft and evaluates the two confirmation
// gates without changing any state.
//
// Both gates are always evaluated: the income-share gate fires when the
// amount exceeds warningPercent of all recorded income, the
// budget-exceeded gate when the new spent total would pass 100% of the
// assigned budget. A category without an assigned budget never fires
// the second gate.
func CheckExpense(state *models.FinanceState, draft ExpenseDraft, warningPercent decimal.Decimal) (ExpenseCheck, error) {
	if err := ValidateAmount(draft.Amount, state.Currency, nil); err != nil {
		return ExpenseCheck{}, err
	}
	if err := ValidateCategory(draft.Category); err != nil {
		return ExpenseCheck{}, err
	}
	if err := ValidateDate(draft.Date, false, true); err != nil {
		return ExpenseCheck{}, err
	}

	month, err := types.ParseDateToMonth(draft.Date)
	if err != nil {
		return ExpenseCheck{}, reject(CodeInvalidDate, "date", "invalid date")
	}

	check := ExpenseCheck{Month: month}

	incomeTotal := state.IncomeTotal()
	if incomeTotal.IsPositive() {
		check.IncomeShare = draft.Amount.Div(incomeTotal).Mul(hundred)
	}

	var entry models.BudgetEntry
	if budget, ok := state.Budgets[month]; ok {
		entry = budget.Categories[draft.Category]
	}
	newSpent := entry.Spent.Add(draft.Amount)
	if entry.Assigned.IsPositive() {
		check.BudgetShare = newSpent.Div(entry.Assigned).Mul(hundred)
	}

	if check.IncomeShare.GreaterThan(warningPercent) {
		check.Confirmations = append(check.Confirmations, Confirmation{
			Kind: ConfirmIncomeShare,
			Message: "This expense is " + format.Percentage(check.IncomeShare) +
				" of your income (" + format.Currency(draft.Amount, state.Currency) + "). Confirm?",
		})
	}

	if check.BudgetShare.GreaterThan(hundred) {
		check.Confirmations = append(check.Confirmations, Confirmation{
			Kind: ConfirmBudgetExceeded,
			Message: "This expense exceeds the " + string(draft.Category) + " budget (" +
				format.Percentage(check.BudgetShare) + "). Continue?",
		})
	}

	return check, nil
}

// CommitExpense re-runs the check and posts the expense.
//
// Every confirmation the check requires must appear in granted,
// otherwise the commit is refused with CodeConfirmationRequired and no
// state changes. On success the expense is appended with a fresh ID and
// the month/category budget entry is updated in the same step.
func CommitExpense(state *models.FinanceState, draft ExpenseDraft, granted []ConfirmationKind, warningPercent decimal.Decimal) (models.Expense, error) {
	check, err := CheckExpense(state, draft, warningPercent)
	if err != nil {
		return models.Expense{}, err
	}

	for _, confirmation := range check.Confirmations {
		if !slices.Contains(granted, confirmation.Kind) {
			return models.Expense{}, reject(CodeConfirmationRequired, "",
				"the %s confirmation is required before this expense can be committed", confirmation.Kind)
		}
	}

	expense := models.Expense{
		ID:       uuid.New(),
		Amount:   draft.Amount,
		Category: draft.Category,
		Note:     draft.Note,
		Date:     draft.Date,
	}
	state.Expenses = append(state.Expenses, expense)

	budget := state.MonthBudgetFor(check.Month)
	entry := budget.Categories[draft.Category]
	entry.Spent = entry.Spent.Add(draft.Amount)
	budget.Categories[draft.Category] = entry

	return expense, nil
}

// DeleteExpense removes an expense by ID and recomputes the spent total
// of its month and category from the remaining records.
func DeleteExpense(state *models.FinanceState, id uuid.UUID) error {
	index := slices.IndexFunc(state.Expenses, func(e models.Expense) bool {
		return e.ID == id
	})
	if index < 0 {
		return reject(CodeNotFound, "id", "no expense with this ID exists")
	}

	expense := state.Expenses[index]
	state.Expenses = slices.Delete(state.Expenses, index, index+1)

	month, err := types.ParseDateToMonth(expense.Date)
	if err != nil {
		return nil
	}

	if budget, ok := state.Budgets[month]; ok {
		if entry, ok := budget.Categories[expense.Category]; ok {
			entry.Spent = state.SpentFor(month, expense.Category)
			budget.Categories[expense.Category] = entry
		}
	}

	return nil
}
