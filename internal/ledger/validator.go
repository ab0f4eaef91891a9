package ledger

import (
	"regexp"
	"strings"
	"time"

	"github.com/mi-finanzas/backend/internal/format"
	"github.com/mi-finanzas/backend/internal/types"
	"github.com/shopspring/decimal"
)

// timeNow is swapped in tests.
var timeNow = time.Now

// minDate is the oldest accepted calendar date.
var minDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// ValidateAmount checks an amount against the currency's single-amount
// ceiling. A non-nil ceiling overrides the currency default.
func ValidateAmount(amount decimal.Decimal, currency types.Currency, ceiling *decimal.Decimal) error {
	if !amount.IsPositive() {
		return reject(CodeInvalidAmount, "amount", "the amount must be greater than 0")
	}

	max := currency.MaxAmount()
	if ceiling != nil {
		max = *ceiling
	}

	if amount.GreaterThan(max) {
		return reject(CodeInvalidAmount, "amount", "the amount cannot exceed %s", format.Currency(max, currency))
	}

	return nil
}

// ValidateCategory checks that a category is one of the fixed spending
// categories. The surplus pseudo-category is rejected.
func ValidateCategory(category types.Category) error {
	if category == "" {
		return reject(CodeInvalidCategory, "category", "a category is required")
	}

	if !category.Valid() {
		return reject(CodeInvalidCategory, "category", "invalid category")
	}

	return nil
}

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateDate checks a YYYY-MM-DD date string against the accepted
// window: nothing before 2000-01-01, nothing more than 10 years from
// now, and optionally no future or past dates relative to now.
func ValidateDate(date string, allowFuture, allowPast bool) error {
	if date == "" {
		return reject(CodeInvalidDate, "date", "a date is required")
	}

	if !datePattern.MatchString(date) {
		return reject(CodeInvalidDate, "date", "invalid date format (use YYYY-MM-DD)")
	}

	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return reject(CodeInvalidDate, "date", "invalid date")
	}

	now := timeNow()
	if !allowFuture && parsed.After(now) {
		return reject(CodeInvalidDate, "date", "the date cannot be in the future")
	}

	if !allowPast && parsed.Before(now) {
		return reject(CodeInvalidDate, "date", "the date cannot be in the past")
	}

	if parsed.Before(minDate) {
		return reject(CodeInvalidDate, "date", "the date is too old (minimum year 2000)")
	}

	if parsed.After(now.AddDate(10, 0, 0)) {
		return reject(CodeInvalidDate, "date", "the date is too far away (maximum 10 years in the future)")
	}

	return nil
}

// ValidateCurrency checks that a currency is in the supported set.
func ValidateCurrency(currency types.Currency) error {
	if currency == "" {
		return reject(CodeInvalidCurrency, "currency", "a currency is required")
	}

	if !currency.Valid() {
		options := make([]string, 0, len(types.Currencies()))
		for _, c := range types.Currencies() {
			options = append(options, string(c))
		}
		return reject(CodeInvalidCurrency, "currency", "unsupported currency. Valid options: %s", strings.Join(options, ", "))
	}

	return nil
}

var goalNamePattern = regexp.MustCompile(`^[a-zA-Z0-9\s\-_]+$`)

// ValidateGoal checks the goal fields: name shape, total amount against
// the currency ceiling, and a future deadline. The first failing
// sub-check wins, with a field-qualified message.
func ValidateGoal(name string, total decimal.Decimal, deadline string, currency types.Currency) error {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < 3 {
		return reject(CodeInvalidGoalField, "name", "the goal name must be at least 3 characters")
	}
	if len(trimmed) > 50 {
		return reject(CodeInvalidGoalField, "name", "the goal name cannot exceed 50 characters")
	}
	if !goalNamePattern.MatchString(trimmed) {
		return reject(CodeInvalidGoalField, "name", "the goal name may only contain letters, digits, spaces, hyphens or underscores")
	}

	if err := ValidateAmount(total, currency, nil); err != nil {
		return reject(CodeInvalidGoalField, "total", "goal amount: %s", err.Error())
	}

	if err := ValidateDate(deadline, true, false); err != nil {
		return reject(CodeInvalidGoalField, "deadline", "goal deadline: %s", err.Error())
	}

	return nil
}

// ValidateBudget checks a budget edit: known category, assigned amount
// within the currency ceiling.
func ValidateBudget(category types.Category, assigned decimal.Decimal, currency types.Currency) error {
	if err := ValidateCategory(category); err != nil {
		return reject(CodeInvalidCategory, "category", "category: %s", err.Error())
	}

	if err := ValidateAmount(assigned, currency, nil); err != nil {
		return reject(CodeInvalidAmount, "assigned", "assigned amount: %s", err.Error())
	}

	return nil
}
