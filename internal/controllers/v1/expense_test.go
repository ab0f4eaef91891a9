package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/mi-finanzas/backend/internal/controllers/v1"
	"github.com/mi-finanzas/backend/internal/ledger"
	"github.com/mi-finanzas/backend/internal/models"
	"github.com/mi-finanzas/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) createTestIncome(amount int64, date string) {
	r := test.Request(suite.T(), http.MethodPost, "/v1/incomes", v1.IncomeEditable{
		Amount: decimal.NewFromInt(amount),
		Date:   date,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
}

func (suite *TestSuiteStandard) TestExpenseCheckIncomeShare() {
	date, _ := today()
	suite.createTestIncome(1000, date)

	r := test.Request(suite.T(), http.MethodPost, "/v1/expenses/check", v1.ExpenseEditable{
		Amount:   decimal.NewFromInt(800),
		Category: "alimentacion",
		Date:     date,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseCheckResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().True(decimal.NewFromInt(80).Equal(response.Data.IncomeShare), "income share is %s", response.Data.IncomeShare)
	suite.Assert().True(response.Data.BudgetShare.IsZero())
	suite.Require().Len(response.Data.Confirmations, 1)
	suite.Assert().Equal(ledger.ConfirmIncomeShare, response.Data.Confirmations[0].Kind)
}

func (suite *TestSuiteStandard) TestExpenseCheckValidation() {
	date, _ := today()

	r := test.Request(suite.T(), http.MethodPost, "/v1/expenses/check", v1.ExpenseEditable{
		Amount:   decimal.NewFromInt(100),
		Category: "mascotas",
		Date:     date,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestExpenseCreateWithoutConfirmation() {
	date, month := today()
	suite.createTestIncome(1000, date)

	// 80% of income, the gate fires and the commit must be refused
	r := test.Request(suite.T(), http.MethodPost, "/v1/expenses", v1.ExpenseCreate{
		ExpenseEditable: v1.ExpenseEditable{
			Amount:   decimal.NewFromInt(800),
			Category: "alimentacion",
			Date:     date,
		},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	// Nothing was saved
	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/expenses?mes=%s", month), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Empty(list.Data)
}

func (suite *TestSuiteStandard) TestExpenseCreateWithConfirmation() {
	date, _ := today()
	suite.createTestIncome(1000, date)

	r := test.Request(suite.T(), http.MethodPost, "/v1/expenses", v1.ExpenseCreate{
		ExpenseEditable: v1.ExpenseEditable{
			Amount:   decimal.NewFromInt(800),
			Category: "alimentacion",
			Note:     "mercado",
			Date:     date,
		},
		Confirmations: []ledger.ConfirmationKind{ledger.ConfirmIncomeShare},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("mercado", response.Data.Note)
}

func (suite *TestSuiteStandard) TestExpenseList() {
	date, month := today()
	suite.createTestIncome(1_000_000, date)

	for _, e := range []v1.ExpenseEditable{
		{Amount: decimal.NewFromInt(100), Category: "alimentacion", Note: "pan del super", Date: date},
		{Amount: decimal.NewFromInt(50), Category: "transporte", Note: "bus", Date: date},
	} {
		r := test.Request(suite.T(), http.MethodPost, "/v1/expenses", v1.ExpenseCreate{ExpenseEditable: e})
		test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
	}

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"all", "", 2},
		{"by month", fmt.Sprintf("mes=%s", month), 2},
		{"by other month", "mes=2001-01", 0},
		{"by category", "categoria=transporte", 1},
		{"by note glob", "nota=*super*", 1},
		{"glob without match", "nota=*cine*", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			url := "/v1/expenses"
			if tt.query != "" {
				url += "?" + tt.query
			}

			r := test.Request(t, http.MethodGet, url, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var list v1.ExpenseListResponse
			test.DecodeResponse(t, &r, &list)
			assert.Len(t, list.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestExpenseDelete() {
	date, _ := today()

	r := test.Request(suite.T(), http.MethodPost, "/v1/expenses", v1.ExpenseCreate{
		ExpenseEditable: v1.ExpenseEditable{
			Amount:   decimal.NewFromInt(100),
			Category: "alimentacion",
			Date:     date,
		},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)

	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/expenses/%s", response.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// Deleting again returns a 404
	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/expenses/%s", response.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExpenseDeleteInvalidID() {
	r := test.Request(suite.T(), http.MethodDelete, "/v1/expenses/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestExpenseDBClosed() {
	date, _ := today()

	sqlDB, err := models.DB.DB()
	suite.Require().Nil(err)
	sqlDB.Close()

	r := test.Request(suite.T(), http.MethodPost, "/v1/expenses", v1.ExpenseCreate{
		ExpenseEditable: v1.ExpenseEditable{
			Amount:   decimal.NewFromInt(100),
			Category: "alimentacion",
			Date:     date,
		},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
