package v1_test

import (
	"net/http"

	v1 "github.com/mi-finanzas/backend/internal/controllers/v1"
	"github.com/mi-finanzas/backend/internal/models"
	"github.com/mi-finanzas/backend/test"
	"github.com/shopspring/decimal"
)

// seedSurplus stores a state with a carried surplus.
func (suite *TestSuiteStandard) seedSurplus(amount int64) {
	state, err := models.LoadState()
	suite.Require().Nil(err)

	state.PreviousSurplus = decimal.NewFromInt(amount)
	suite.Require().Nil(models.SaveState(state))
}

func (suite *TestSuiteStandard) TestGetSurplus() {
	suite.seedSurplus(50_000)

	r := test.Request(suite.T(), http.MethodGet, "/v1/surplus", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SurplusResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(decimal.NewFromInt(50_000).Equal(response.Data.Surplus))
}

func (suite *TestSuiteStandard) TestSurplusToGoal() {
	suite.seedSurplus(50_000)
	suite.createTestGoal("Vacaciones", 500_000)

	r := test.Request(suite.T(), http.MethodPost, "/v1/surplus/goal", v1.SurplusToGoalEditable{Index: 0})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(decimal.NewFromInt(50_000).Equal(response.Data.Progress))

	// The surplus is zeroed by the transfer
	r = test.Request(suite.T(), http.MethodGet, "/v1/surplus", "")
	var surplus v1.SurplusResponse
	test.DecodeResponse(suite.T(), &r, &surplus)
	suite.Assert().True(surplus.Data.Surplus.IsZero())
}

func (suite *TestSuiteStandard) TestSurplusToGoalWithoutGoals() {
	suite.seedSurplus(50_000)

	r := test.Request(suite.T(), http.MethodPost, "/v1/surplus/goal", v1.SurplusToGoalEditable{Index: 0})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestSurplusCarryover() {
	suite.seedSurplus(30_000)

	r := test.Request(suite.T(), http.MethodPost, "/v1/surplus/carryover", v1.CarryoverEditable{Month: "2025-06"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CarryoverResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("2025-07", response.Data.Month.String())
	suite.Assert().True(decimal.NewFromInt(30_000).Equal(response.Data.Surplus))
}

func (suite *TestSuiteStandard) TestSurplusCarryoverInvalidMonth() {
	r := test.Request(suite.T(), http.MethodPost, "/v1/surplus/carryover", v1.CarryoverEditable{Month: "junio"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
