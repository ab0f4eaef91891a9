package v1_test

import (
	"fmt"
	"net/http"
	"time"

	v1 "github.com/mi-finanzas/backend/internal/controllers/v1"
	"github.com/mi-finanzas/backend/test"
	"github.com/shopspring/decimal"
)

// testDeadline returns a deadline one year from now.
func testDeadline() string {
	return time.Now().AddDate(1, 0, 0).Format("2006-01-02")
}

func (suite *TestSuiteStandard) createTestGoal(name string, total int64) v1.GoalResponse {
	r := test.Request(suite.T(), http.MethodPost, "/v1/goals", v1.GoalEditable{
		Name:     name,
		Total:    decimal.NewFromInt(total),
		Deadline: testDeadline(),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &response)
	return response
}

func (suite *TestSuiteStandard) TestGoalCreateAndList() {
	suite.createTestGoal("Vacaciones", 500_000)
	suite.createTestGoal("Auto nuevo", 2_000_000)

	r := test.Request(suite.T(), http.MethodGet, "/v1/goals", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.GoalListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Data, 2)
}

func (suite *TestSuiteStandard) TestGoalCreateValidation() {
	r := test.Request(suite.T(), http.MethodPost, "/v1/goals", v1.GoalEditable{
		Name:     "ab",
		Total:    decimal.NewFromInt(1000),
		Deadline: testDeadline(),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGoalLimit() {
	for i := 0; i < 10; i++ {
		suite.createTestGoal(fmt.Sprintf("Meta %d", i), 1000)
	}

	r := test.Request(suite.T(), http.MethodPost, "/v1/goals", v1.GoalEditable{
		Name:     "Una mas",
		Total:    decimal.NewFromInt(1000),
		Deadline: testDeadline(),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGoalUpdate() {
	suite.createTestGoal("Vacaciones", 500_000)

	r := test.Request(suite.T(), http.MethodPatch, "/v1/goals/0", v1.GoalEditable{
		Name:     "Vacaciones largas",
		Total:    decimal.NewFromInt(800_000),
		Deadline: testDeadline(),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Vacaciones largas", response.Data.Name)
}

func (suite *TestSuiteStandard) TestGoalUpdateNotFound() {
	r := test.Request(suite.T(), http.MethodPatch, "/v1/goals/7", v1.GoalEditable{
		Name:     "Vacaciones",
		Total:    decimal.NewFromInt(1000),
		Deadline: testDeadline(),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGoalContribute() {
	suite.createTestGoal("Vacaciones", 1000)

	r := test.Request(suite.T(), http.MethodPost, "/v1/goals/0/contributions", v1.ContributionEditable{
		Amount: decimal.NewFromInt(400),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(decimal.NewFromInt(400).Equal(response.Data.Progress))

	// Overfilling is refused and reports the headroom
	r = test.Request(suite.T(), http.MethodPost, "/v1/goals/0/contributions", v1.ContributionEditable{
		Amount: decimal.NewFromInt(700),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
