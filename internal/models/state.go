// Package models implements the persisted state of the finance tracker.
package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mi-finanzas/backend/internal/types"
	"github.com/shopspring/decimal"
)

func init() {
	// The document format stores amounts as bare JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

var (
	ErrGeneral       = errors.New("an error occurred on the server during your request, please contact your server administrator")
	ErrSchemaInvalid = errors.New("the data does not match the expected document schema")
)

// Income is a single income record. Incomes are append-only.
type Income struct {
	Amount decimal.Decimal `json:"monto"`
	Date   string          `json:"fecha"` // YYYY-MM-DD
}

// Expense is a single expense record. Expenses are immutable once posted,
// except for deletion by ID.
type Expense struct {
	ID       uuid.UUID       `json:"id"`
	Amount   decimal.Decimal `json:"monto"`
	Category types.Category  `json:"categoria"`
	Note     string          `json:"nota,omitempty"`
	Date     string          `json:"fecha"` // YYYY-MM-DD
}

// BudgetEntry is the assigned/spent pair tracked per month and category.
type BudgetEntry struct {
	Assigned decimal.Decimal `json:"asignado"`
	Spent    decimal.Decimal `json:"gastado"`
}

// Goal is a savings target with a deadline and accumulated progress.
// Progress never exceeds Total.
type Goal struct {
	Name     string          `json:"nombre"`
	Total    decimal.Decimal `json:"total"`
	Progress decimal.Decimal `json:"progreso"`
	Deadline string          `json:"plazo"` // YYYY-MM-DD
}

// MonthBudget holds one month's per-category budget entries plus the
// surplus bucket carried over from earlier months.
//
// In the document it is a single object: category keys map to budget
// entries, the "excedente" key maps to a plain number.
type MonthBudget struct {
	Categories map[types.Category]BudgetEntry
	Surplus    decimal.Decimal
}

// MarshalJSON implements the json.Marshaler interface.
func (m MonthBudget) MarshalJSON() ([]byte, error) {
	doc := make(map[string]json.RawMessage, len(m.Categories)+1)

	for category, entry := range m.Categories {
		raw, err := json.Marshal(entry)
		if err != nil {
			return nil, err
		}
		doc[string(category)] = raw
	}

	if !m.Surplus.IsZero() {
		raw, err := json.Marshal(m.Surplus)
		if err != nil {
			return nil, err
		}
		doc[string(types.CategorySurplus)] = raw
	}

	return json.Marshal(doc)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (m *MonthBudget) UnmarshalJSON(data []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	m.Categories = make(map[types.Category]BudgetEntry, len(doc))
	m.Surplus = decimal.Zero

	for key, raw := range doc {
		if key == string(types.CategorySurplus) {
			if err := json.Unmarshal(raw, &m.Surplus); err != nil {
				return fmt.Errorf("surplus bucket: %w", err)
			}
			continue
		}

		category := types.Category(key)
		if !category.Valid() {
			return fmt.Errorf("unknown category: %q", key)
		}

		var entry BudgetEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			return fmt.Errorf("budget entry for %q: %w", key, err)
		}
		m.Categories[category] = entry
	}

	return nil
}

// FinanceState is the aggregate holding everything the tracker knows.
// It is owned by whoever loaded it until the matching save; the core
// operations take it as an explicit handle and never share it globally.
type FinanceState struct {
	Currency        types.Currency                       `json:"moneda"`
	Incomes         []Income                             `json:"ingresos"`
	Expenses        []Expense                            `json:"gastos"`
	Budgets         map[types.Month]*MonthBudget         `json:"presupuestos"`
	Goals           []Goal                               `json:"metas"`
	Shortcuts       map[types.Category][]decimal.Decimal `json:"atajos"`
	PreviousSurplus decimal.Decimal                      `json:"excedenteAnterior"`
}

// DefaultState returns the initial state for a fresh install.
func DefaultState() *FinanceState {
	return &FinanceState{
		Currency: types.CurrencyUSD,
		Incomes:  []Income{},
		Expenses: []Expense{},
		Budgets:  map[types.Month]*MonthBudget{},
		Goals:    []Goal{},
		Shortcuts: map[types.Category][]decimal.Decimal{
			types.CategoryFood:          amounts(50_000, 100_000, 200_000),
			types.CategoryTransport:     amounts(10_000, 30_000, 50_000),
			types.CategoryEntertainment: amounts(50_000, 100_000, 200_000),
			types.CategoryServices:      amounts(100_000, 200_000, 500_000),
			types.CategoryOther:         amounts(50_000, 100_000, 150_000),
		},
		PreviousSurplus: decimal.Zero,
	}
}

func amounts(values ...int64) []decimal.Decimal {
	list := make([]decimal.Decimal, 0, len(values))
	for _, v := range values {
		list = append(list, decimal.NewFromInt(v))
	}
	return list
}

// MonthBudgetFor returns the budget table for a month, creating it if absent.
func (s *FinanceState) MonthBudgetFor(month types.Month) *MonthBudget {
	if s.Budgets == nil {
		s.Budgets = map[types.Month]*MonthBudget{}
	}

	budget, ok := s.Budgets[month]
	if !ok {
		budget = &MonthBudget{Categories: map[types.Category]BudgetEntry{}}
		s.Budgets[month] = budget
	}
	if budget.Categories == nil {
		budget.Categories = map[types.Category]BudgetEntry{}
	}

	return budget
}

// IncomeTotal returns the sum of all incomes.
func (s *FinanceState) IncomeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, income := range s.Incomes {
		total = total.Add(income.Amount)
	}
	return total
}

// ExpenseTotal returns the sum of all expenses.
func (s *FinanceState) ExpenseTotal() decimal.Decimal {
	total := decimal.Zero
	for _, expense := range s.Expenses {
		total = total.Add(expense.Amount)
	}
	return total
}

// SpentFor returns the sum of expense amounts for a month and category.
func (s *FinanceState) SpentFor(month types.Month, category types.Category) decimal.Decimal {
	total := decimal.Zero
	for _, expense := range s.Expenses {
		if expense.Category != category {
			continue
		}

		expenseMonth, err := types.ParseDateToMonth(expense.Date)
		if err != nil || !expenseMonth.Equal(month) {
			continue
		}

		total = total.Add(expense.Amount)
	}
	return total
}

// Normalize repairs derived data after a load or import: nil collections
// become empty ones, expenses without an ID get one, and every budget
// entry's spent column is recomputed from the expense records so that it
// can never drift.
func (s *FinanceState) Normalize() {
	if s.Incomes == nil {
		s.Incomes = []Income{}
	}
	if s.Expenses == nil {
		s.Expenses = []Expense{}
	}
	if s.Goals == nil {
		s.Goals = []Goal{}
	}
	if s.Budgets == nil {
		s.Budgets = map[types.Month]*MonthBudget{}
	}
	if s.Shortcuts == nil {
		s.Shortcuts = map[types.Category][]decimal.Decimal{}
	}

	for i := range s.Expenses {
		if s.Expenses[i].ID == uuid.Nil {
			s.Expenses[i].ID = uuid.New()
		}
	}

	for month, budget := range s.Budgets {
		for category, entry := range budget.Categories {
			entry.Spent = s.SpentFor(month, category)
			budget.Categories[category] = entry
		}
	}
}

// requiredKeys are the top-level keys every document must carry.
var requiredKeys = []string{"ingresos", "gastos", "presupuestos", "metas", "moneda", "atajos"}

// ValidateDocument checks the raw document against the state schema:
// all required top-level keys present, incomes/expenses/goals are lists,
// budgets is a map, the currency is supported and every shortcut key is a
// known category mapping to a list.
//
// It reports ErrSchemaInvalid with a reason; the document is otherwise
// not interpreted.
func ValidateDocument(raw []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: not a JSON object", ErrSchemaInvalid)
	}

	for _, key := range requiredKeys {
		if _, ok := doc[key]; !ok {
			return fmt.Errorf("%w: missing key %q", ErrSchemaInvalid, key)
		}
	}

	for _, key := range []string{"ingresos", "gastos", "metas"} {
		var list []json.RawMessage
		if err := json.Unmarshal(doc[key], &list); err != nil {
			return fmt.Errorf("%w: %q must be a list", ErrSchemaInvalid, key)
		}
	}

	var budgets map[string]json.RawMessage
	if err := json.Unmarshal(doc["presupuestos"], &budgets); err != nil {
		return fmt.Errorf("%w: \"presupuestos\" must be a map", ErrSchemaInvalid)
	}

	var currency string
	if err := json.Unmarshal(doc["moneda"], &currency); err != nil || !types.Currency(currency).Valid() {
		return fmt.Errorf("%w: unsupported currency", ErrSchemaInvalid)
	}

	var shortcuts map[string]json.RawMessage
	if err := json.Unmarshal(doc["atajos"], &shortcuts); err != nil {
		return fmt.Errorf("%w: \"atajos\" must be a map", ErrSchemaInvalid)
	}
	for key, raw := range shortcuts {
		if !types.Category(key).Valid() {
			return fmt.Errorf("%w: shortcut key %q is not a category", ErrSchemaInvalid, key)
		}

		var list []json.RawMessage
		if err := json.Unmarshal(raw, &list); err != nil {
			return fmt.Errorf("%w: shortcuts for %q must be a list", ErrSchemaInvalid, key)
		}
	}

	return nil
}

// ParseState validates a raw document and decodes it into a normalized
// FinanceState. All failures report ErrSchemaInvalid.
func ParseState(raw []byte) (*FinanceState, error) {
	if err := ValidateDocument(raw); err != nil {
		return nil, err
	}

	var state FinanceState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSchemaInvalid, err.Error())
	}

	state.Normalize()
	return &state, nil
}

// Export returns the pretty-printed document for download.
func (s *FinanceState) Export() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
