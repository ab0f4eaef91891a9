package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mi-finanzas/backend/internal/httputil"
	"github.com/mi-finanzas/backend/internal/ledger"
	"github.com/mi-finanzas/backend/internal/models"
	"github.com/shopspring/decimal"
)

// GoalEditable is a goal as posted by a client. Progress is never
// accepted from clients; it only changes through contributions.
type GoalEditable struct {
	Name     string          `json:"nombre" example:"Vacaciones"`
	Total    decimal.Decimal `json:"total" example:"1500000"`
	Deadline string          `json:"plazo" example:"2026-12-31"` // YYYY-MM-DD
}

// ContributionEditable is a contribution to a goal's progress.
type ContributionEditable struct {
	Amount decimal.Decimal `json:"monto" example:"50000"`
}

type GoalResponse struct {
	Error *string      `json:"error"` // The error, if any occurred
	Data  *models.Goal `json:"data"`  // The resource
}

type GoalListResponse struct {
	Error *string       `json:"error"` // The error, if any occurred
	Data  []models.Goal `json:"data"`  // List of resources
}

func RegisterGoalRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsGoals)
		r.GET("", GetGoals)
		r.POST("", CreateGoal)
	}
	{
		r.OPTIONS("/:index", OptionsGoalDetail)
		r.PATCH("/:index", UpdateGoal)
	}
	{
		r.OPTIONS("/:index/contributions", OptionsGoalContributions)
		r.POST("/:index/contributions", CreateContribution)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Router			/v1/goals [options]
func OptionsGoals(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Param			index	path	URIIndex	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{index} [options]
func OptionsGoalDetail(c *gin.Context) {
	httputil.OptionsPatch(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Param			index	path	URIIndex	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{index}/contributions [options]
func OptionsGoalContributions(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get goals
// @Description	Returns the list of savings goals
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalListResponse
// @Failure		500	{object}	GoalListResponse
// @Router			/v1/goals [get]
func GetGoals(c *gin.Context) {
	state, err := models.LoadState()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, GoalListResponse{Data: state.Goals})
}

// @Summary		Create a goal
// @Description	Creates a new savings goal with zero progress
// @Tags			Goals
// @Produce		json
// @Success		201		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Failure		500		{object}	GoalResponse
// @Param			goal	body		GoalEditable	true	"Goal"
// @Router			/v1/goals [post]
func CreateGoal(c *gin.Context) {
	var editable GoalEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{Error: &e})
		return
	}

	state, err := models.LoadState()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{Error: &e})
		return
	}

	goal, err := ledger.CreateGoal(state, editable.Name, editable.Total, editable.Deadline)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{Error: &e})
		return
	}

	if err := models.SaveState(state); err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, GoalResponse{Data: &goal})
}

// @Summary		Update a goal
// @Description	Replaces a goal's name, total and deadline. Progress is preserved; the total can never shrink below it.
// @Tags			Goals
// @Produce		json
// @Success		200		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Failure		404		{object}	GoalResponse
// @Failure		500		{object}	GoalResponse
// @Param			index	path		int				true	"Index of the goal in the list"
// @Param			goal	body		GoalEditable	true	"Goal"
// @Router			/v1/goals/{index} [patch]
func UpdateGoal(c *gin.Context) {
	var uri URIIndex
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, GoalResponse{Error: &e})
		return
	}

	var editable GoalEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{Error: &e})
		return
	}

	state, err := models.LoadState()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{Error: &e})
		return
	}

	goal, err := ledger.UpdateGoal(state, uri.Index, editable.Name, editable.Total, editable.Deadline)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{Error: &e})
		return
	}

	if err := models.SaveState(state); err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, GoalResponse{Data: &goal})
}

// @Summary		Contribute to a goal
// @Description	Adds an amount to a goal's progress. The progress can never exceed the goal's total.
// @Tags			Goals
// @Produce		json
// @Success		201				{object}	GoalResponse
// @Failure		400				{object}	GoalResponse
// @Failure		404				{object}	GoalResponse
// @Failure		500				{object}	GoalResponse
// @Param			index			path		int						true	"Index of the goal in the list"
// @Param			contribution	body		ContributionEditable	true	"Contribution"
// @Router			/v1/goals/{index}/contributions [post]
func CreateContribution(c *gin.Context) {
	var uri URIIndex
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, GoalResponse{Error: &e})
		return
	}

	var editable ContributionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{Error: &e})
		return
	}

	state, err := models.LoadState()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{Error: &e})
		return
	}

	goal, err := ledger.Contribute(state, uri.Index, editable.Amount)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{Error: &e})
		return
	}

	if err := models.SaveState(state); err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, GoalResponse{Data: &goal})
}
