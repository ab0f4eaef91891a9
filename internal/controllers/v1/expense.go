package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mi-finanzas/backend/internal/httputil"
	"github.com/mi-finanzas/backend/internal/ledger"
	"github.com/mi-finanzas/backend/internal/models"
	"github.com/mi-finanzas/backend/internal/types"
	"github.com/ryanuber/go-glob"
)

func RegisterExpenseRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsExpenses)
		r.GET("", GetExpenses)
		r.POST("", CreateExpense)
	}
	{
		r.OPTIONS("/check", OptionsExpenseCheck)
		r.POST("/check", CheckExpense)
	}
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.DELETE("/:id", DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenses(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses/check [options]
func OptionsExpenseCheck(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// @Summary		Check an expense
// @Description	Evaluates an expense draft against the confirmation policy without saving anything. The response lists the confirmations a commit would need.
// @Tags			Expenses
// @Produce		json
// @Success		200		{object}	ExpenseCheckResponse
// @Failure		400		{object}	ExpenseCheckResponse
// @Failure		500		{object}	ExpenseCheckResponse
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses/check [post]
func CheckExpense(c *gin.Context) {
	var editable ExpenseEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseCheckResponse{Error: &e})
		return
	}

	state, err := models.LoadState()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseCheckResponse{Error: &e})
		return
	}

	check, err := ledger.CheckExpense(state, editable.draft(), WarningPercent)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseCheckResponse{Error: &e})
		return
	}

	data := newExpenseCheckData(check)
	c.JSON(http.StatusOK, ExpenseCheckResponse{Data: &data})
}

// @Summary		Create an expense
// @Description	Posts an expense. When the draft trips a confirmation gate that is not granted in the request, the call fails with 409 and nothing is saved.
// @Tags			Expenses
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		409		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			expense	body		ExpenseCreate	true	"Expense"
// @Router			/v1/expenses [post]
func CreateExpense(c *gin.Context) {
	var create ExpenseCreate
	if err := httputil.BindData(c, &create); err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	state, err := models.LoadState()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	expense, err := ledger.CommitExpense(state, create.draft(), create.Confirmations, WarningPercent)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	if err := models.SaveState(state); err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, ExpenseResponse{Data: &expense})
}

// @Summary		Get expenses
// @Description	Returns a list of expenses
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseListResponse
// @Failure		400	{object}	ExpenseListResponse
// @Failure		500	{object}	ExpenseListResponse
// @Router			/v1/expenses [get]
// @Param			mes			query	string	false	"Only expenses in this YYYY-MM month"
// @Param			categoria	query	string	false	"Only expenses with this category"
// @Param			nota		query	string	false	"Glob pattern matched against the note, e.g. *super*"
func GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ExpenseListResponse{Error: &e})
		return
	}

	var month types.Month
	if filter.Month != "" {
		var err error
		month, err = types.ParseMonth(filter.Month)
		if err != nil {
			e := err.Error()
			c.JSON(http.StatusBadRequest, ExpenseListResponse{Error: &e})
			return
		}
	}

	state, err := models.LoadState()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseListResponse{Error: &e})
		return
	}

	expenses := make([]models.Expense, 0, len(state.Expenses))
	for _, expense := range state.Expenses {
		if !month.IsZero() {
			expenseMonth, err := types.ParseDateToMonth(expense.Date)
			if err != nil || !expenseMonth.Equal(month) {
				continue
			}
		}

		if filter.Category != "" && string(expense.Category) != filter.Category {
			continue
		}

		if filter.Note != "" && !glob.Glob(filter.Note, expense.Note) {
			continue
		}

		expenses = append(expenses, expense)
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: expenses})
}

// @Summary		Delete an expense
// @Description	Deletes an expense by ID and recomputes the spent column of its budget entry
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path	URIID	true	"ID formatted as string"
// @Router			/v1/expenses/{id} [delete]
func DeleteExpense(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	id, err := uuid.Parse(uri.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: "the ID must be a UUID"})
		return
	}

	state, err := models.LoadState()
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := ledger.DeleteExpense(state, id); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := models.SaveState(state); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
