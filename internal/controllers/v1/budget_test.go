package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/mi-finanzas/backend/internal/controllers/v1"
	"github.com/mi-finanzas/backend/internal/types"
	"github.com/mi-finanzas/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) setTestBudget(month, category string, assigned int64) {
	r := test.Request(suite.T(), http.MethodPut,
		fmt.Sprintf("/v1/months/%s/categories/%s", month, category),
		v1.BudgetEditable{Assigned: decimal.NewFromInt(assigned)})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestSetBudget() {
	_, month := today()
	suite.setTestBudget(month, "alimentacion", 200_000)

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/months/%s", month), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	entry := response.Data.Categories[types.CategoryFood]
	suite.Assert().True(decimal.NewFromInt(200_000).Equal(entry.Assigned))
	suite.Assert().Equal(int64(0), entry.Percentage)
}

func (suite *TestSuiteStandard) TestSetBudgetValidation() {
	_, month := today()

	// The surplus bucket cannot be budgeted directly
	r := test.Request(suite.T(), http.MethodPut,
		fmt.Sprintf("/v1/months/%s/categories/excedente", month),
		v1.BudgetEditable{Assigned: decimal.NewFromInt(100)})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPut,
		fmt.Sprintf("/v1/months/%s/categories/alimentacion", month),
		v1.BudgetEditable{Assigned: decimal.Zero})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetMonthIncludesAllCategories() {
	r := test.Request(suite.T(), http.MethodGet, "/v1/months/2025-06", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Len(response.Data.Categories, 5)
	suite.Assert().True(response.Data.Surplus.IsZero())
}

func (suite *TestSuiteStandard) TestGetMonthInvalid() {
	r := test.Request(suite.T(), http.MethodGet, "/v1/months/junio", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBudgetPercentageAfterExpense() {
	date, month := today()
	suite.setTestBudget(month, "alimentacion", 1000)

	r := test.Request(suite.T(), http.MethodPost, "/v1/expenses", v1.ExpenseCreate{
		ExpenseEditable: v1.ExpenseEditable{
			Amount:   decimal.NewFromInt(750),
			Category: "alimentacion",
			Date:     date,
		},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/months/%s", month), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)

	entry := response.Data.Categories[types.CategoryFood]
	suite.Assert().True(decimal.NewFromInt(750).Equal(entry.Spent))
	suite.Assert().Equal(int64(75), entry.Percentage)
}
