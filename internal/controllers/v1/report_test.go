package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/mi-finanzas/backend/internal/controllers/v1"
	"github.com/mi-finanzas/backend/internal/types"
	"github.com/mi-finanzas/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestReport() {
	date, month := today()
	suite.createTestIncome(1_000_000, date)
	suite.setTestBudget(month, "alimentacion", 1000)

	r := test.Request(suite.T(), http.MethodPost, "/v1/expenses", v1.ExpenseCreate{
		ExpenseEditable: v1.ExpenseEditable{
			Amount:   decimal.NewFromInt(850),
			Category: "alimentacion",
			Date:     date,
		},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/reports/%s", month), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ReportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Len(response.Data.Rows, 5, "every category gets a row")
	suite.Assert().True(decimal.NewFromInt(850).Equal(response.Data.Total))

	var foodRow v1.ReportRow
	for _, row := range response.Data.Rows {
		if row.Category == types.CategoryFood {
			foodRow = row
		}
	}

	suite.Assert().Equal(int64(85), foodRow.Percentage)
	suite.Assert().Equal("yellow", foodRow.Color)
}

func (suite *TestSuiteStandard) TestReportColors() {
	date, month := today()
	suite.createTestIncome(1_000_000, date)
	suite.setTestBudget(month, "alimentacion", 100)
	suite.setTestBudget(month, "transporte", 100)

	// 50% green, none spent on transporte so green as well
	r := test.Request(suite.T(), http.MethodPost, "/v1/expenses", v1.ExpenseCreate{
		ExpenseEditable: v1.ExpenseEditable{
			Amount:   decimal.NewFromInt(50),
			Category: "alimentacion",
			Date:     date,
		},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/reports/%s", month), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ReportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	for _, row := range response.Data.Rows {
		suite.Assert().Equal("green", row.Color, "category %s", row.Category)
	}
}

func (suite *TestSuiteStandard) TestReportInvalidMonth() {
	r := test.Request(suite.T(), http.MethodGet, "/v1/reports/junio", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestReportMonthName() {
	r := test.Request(suite.T(), http.MethodGet, "/v1/reports/2025-09", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ReportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Septiembre 2025", response.Data.MonthName)
}
