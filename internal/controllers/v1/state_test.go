package v1_test

import (
	"net/http"

	v1 "github.com/mi-finanzas/backend/internal/controllers/v1"
	"github.com/mi-finanzas/backend/internal/types"
	"github.com/mi-finanzas/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestGetState() {
	r := test.Request(suite.T(), http.MethodGet, "/v1/state", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.StateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(types.CurrencyUSD, response.Data.Currency)
}

func (suite *TestSuiteStandard) TestResetStateRequiresConfirmation() {
	r := test.Request(suite.T(), http.MethodDelete, "/v1/state", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodDelete, "/v1/state?confirm=yes", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestResetState() {
	date, _ := today()
	suite.createTestIncome(1000, date)

	r := test.Request(suite.T(), http.MethodDelete, "/v1/state?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, "/v1/state", "")
	var response v1.StateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Empty(response.Data.Incomes)
}

func (suite *TestSuiteStandard) TestExportState() {
	r := test.Request(suite.T(), http.MethodGet, "/v1/state/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	disposition := r.Header().Get("Content-Disposition")
	suite.Assert().Contains(disposition, "attachment")
	suite.Assert().Contains(disposition, "finance-app-data_")
	suite.Assert().Contains(disposition, ".json")

	suite.Assert().Contains(r.Body.String(), `"moneda"`)
}

func (suite *TestSuiteStandard) TestImportState() {
	document := `{
		"moneda": "CLP",
		"ingresos": [ { "monto": 1000, "fecha": "2025-06-01" } ],
		"gastos": [ { "monto": 100, "categoria": "alimentacion", "fecha": "2025-06-10" } ],
		"presupuestos": {},
		"metas": [],
		"atajos": {},
		"excedenteAnterior": 0
	}`

	body, headers := test.MultipartFile(suite.T(), "backup.json", []byte(document))
	r := test.Request(suite.T(), http.MethodPost, "/v1/state/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.StateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(types.CurrencyCLP, response.Data.Currency)
	suite.Require().Len(response.Data.Expenses, 1)
	suite.Assert().True(decimal.NewFromInt(100).Equal(response.Data.Expenses[0].Amount))
}

func (suite *TestSuiteStandard) TestImportStateInvalidSchema() {
	body, headers := test.MultipartFile(suite.T(), "backup.json", []byte(`{ "broken": true }`))
	r := test.Request(suite.T(), http.MethodPost, "/v1/state/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestImportStateWrongSuffix() {
	body, headers := test.MultipartFile(suite.T(), "backup.csv", []byte("a,b,c"))
	r := test.Request(suite.T(), http.MethodPost, "/v1/state/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
