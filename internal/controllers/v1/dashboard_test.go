package v1_test

import (
	"net/http"

	v1 "github.com/mi-finanzas/backend/internal/controllers/v1"
	"github.com/mi-finanzas/backend/internal/ledger"
	"github.com/mi-finanzas/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestDashboardEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().True(response.Data.Balance.IsZero())
	suite.Assert().True(response.Data.SpentPercent.IsZero())
	suite.Assert().Equal("green", response.Data.Status)
}

func (suite *TestSuiteStandard) TestDashboard() {
	date, _ := today()
	suite.createTestIncome(1000, date)

	r := test.Request(suite.T(), http.MethodPost, "/v1/expenses", v1.ExpenseCreate{
		ExpenseEditable: v1.ExpenseEditable{
			Amount:   decimal.NewFromInt(750),
			Category: "alimentacion",
			Date:     date,
		},
		Confirmations: []ledger.ConfirmationKind{ledger.ConfirmIncomeShare},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = test.Request(suite.T(), http.MethodGet, "/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().True(decimal.NewFromInt(250).Equal(response.Data.Balance))
	suite.Assert().True(decimal.NewFromInt(75).Equal(response.Data.SpentPercent))
	suite.Assert().Equal("yellow", response.Data.Status)
	suite.Assert().Equal("75%", response.Data.PercentLabel)
}
