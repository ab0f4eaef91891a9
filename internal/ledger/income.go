package ledger

import (
	"github.com/mi-finanzas/backend/internal/models"
	"github.com/shopspring/decimal"
)

// AddIncome appends an income record. Incomes are append-only; there is
// no edit or delete.
func AddIncome(state *models.FinanceState, amount decimal.Decimal, date string) (models.Income, error) {
	if err := ValidateAmount(amount, state.Currency, nil); err != nil {
		return models.Income{}, err
	}
	if err := ValidateDate(date, false, true); err != nil {
		return models.Income{}, err
	}

	income := models.Income{Amount: amount, Date: date}
	state.Incomes = append(state.Incomes, income)

	return income, nil
}
