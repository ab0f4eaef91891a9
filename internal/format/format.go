// Package format renders amounts, percentages and month names for
// prompts and presentation. The output locale is es-CL, matching the
// audience of the tracker.
package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mi-finanzas/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("es-CL"))

// monthNames holds the Spanish month names, January first.
var monthNames = []string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// Currency formats an amount with the symbol of the given currency.
// Unsupported currencies fall back to USD.
func Currency(amount decimal.Decimal, c types.Currency) string {
	unit, err := currency.ParseISO(string(c))
	if err != nil {
		unit = currency.USD
	}

	value, _ := amount.Float64()
	return printer.Sprint(currency.Symbol(unit.Amount(value)))
}

// Percentage formats a value as a whole percentage, rounding half up.
func Percentage(value decimal.Decimal) string {
	return value.Round(0).String() + "%"
}

var monthKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// MonthName returns the human name for a "YYYY-MM" key, e.g.
// "Septiembre 2025". It fails closed: malformed keys are returned
// unchanged.
func MonthName(key string) string {
	if !monthKeyPattern.MatchString(key) {
		return key
	}

	parts := strings.SplitN(key, "-", 2)
	year, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	if month < 1 || month > 12 {
		return key
	}

	return fmt.Sprintf("%s %d", monthNames[month-1], year)
}
