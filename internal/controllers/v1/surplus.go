package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mi-finanzas/backend/internal/httputil"
	"github.com/mi-finanzas/backend/internal/ledger"
	"github.com/mi-finanzas/backend/internal/models"
	"github.com/mi-finanzas/backend/internal/types"
	"github.com/shopspring/decimal"
)

// SurplusToGoalEditable names the goal that receives the carried surplus.
type SurplusToGoalEditable struct {
	Index int `json:"indice" example:"0"` // Index of the goal in the list
}

// CarryoverEditable names the month whose successor receives the surplus.
type CarryoverEditable struct {
	Month string `json:"mes" example:"2025-06"` // YYYY-MM
}

// SurplusData is the carried surplus waiting to be applied.
type SurplusData struct {
	Surplus decimal.Decimal `json:"excedenteAnterior" example:"125000"`
}

// CarryoverData reports where the surplus went.
type CarryoverData struct {
	Month   types.Month     `json:"mes" example:"2025-07"`      // The month that received the surplus
	Surplus decimal.Decimal `json:"excedente" example:"125000"` // The month's surplus bucket after the transfer
}

type SurplusResponse struct {
	Error *string      `json:"error"` // The error, if any occurred
	Data  *SurplusData `json:"data"`  // The carried surplus
}

type CarryoverResponse struct {
	Error *string        `json:"error"` // The error, if any occurred
	Data  *CarryoverData `json:"data"`  // The transfer result
}

func RegisterSurplusRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsSurplus)
		r.GET("", GetSurplus)
	}
	{
		r.OPTIONS("/goal", OptionsSurplusGoal)
		r.POST("/goal", SurplusToGoal)
	}
	{
		r.OPTIONS("/carryover", OptionsSurplusCarryover)
		r.POST("/carryover", CarrySurplus)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Surplus
// @Success		204
// @Router			/v1/surplus [options]
func OptionsSurplus(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Surplus
// @Success		204
// @Router			/v1/surplus/goal [options]
func OptionsSurplusGoal(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Surplus
// @Success		204
// @Router			/v1/surplus/carryover [options]
func OptionsSurplusCarryover(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get the carried surplus
// @Description	Returns the surplus carried over from earlier months that has not been applied yet
// @Tags			Surplus
// @Produce		json
// @Success		200	{object}	SurplusResponse
// @Failure		500	{object}	SurplusResponse
// @Router			/v1/surplus [get]
func GetSurplus(c *gin.Context) {
	state, err := models.LoadState()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SurplusResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, SurplusResponse{Data: &SurplusData{Surplus: state.PreviousSurplus}})
}

// @Summary		Move the surplus into a goal
// @Description	Adds the carried surplus to a goal's progress and zeroes the surplus. Both sides change in one step.
// @Tags			Surplus
// @Produce		json
// @Success		200		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Failure		404		{object}	GoalResponse
// @Failure		500		{object}	GoalResponse
// @Param			target	body		SurplusToGoalEditable	true	"Target goal"
// @Router			/v1/surplus/goal [post]
func SurplusToGoal(c *gin.Context) {
	var editable SurplusToGoalEditable
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

	goal, err := ledger.SurplusToGoal(state, editable.Index)
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

// @Summary		Carry the surplus into the next month
// @Description	Moves the carried surplus into the surplus bucket of the month after the one given, creating that month if needed
// @Tags			Surplus
// @Produce		json
// @Success		200		{object}	CarryoverResponse
// @Failure		400		{object}	CarryoverResponse
// @Failure		500		{object}	CarryoverResponse
// @Param			source	body		CarryoverEditable	true	"Source month"
// @Router			/v1/surplus/carryover [post]
func CarrySurplus(c *gin.Context) {
	var editable CarryoverEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), CarryoverResponse{Error: &e})
		return
	}

	month, err := types.ParseMonth(editable.Month)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, CarryoverResponse{Error: &e})
		return
	}

	state, err := models.LoadState()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CarryoverResponse{Error: &e})
		return
	}

	next, err := ledger.CarrySurplus(state, month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CarryoverResponse{Error: &e})
		return
	}

	if err := models.SaveState(state); err != nil {
		e := err.Error()
		c.JSON(status(err), CarryoverResponse{Error: &e})
		return
	}

	data := CarryoverData{
		Month:   next,
		Surplus: state.Budgets[next].Surplus,
	}
	c.JSON(http.StatusOK, CarryoverResponse{Data: &data})
}
