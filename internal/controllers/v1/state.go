package v1

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mi-finanzas/backend/internal/httputil"
	"github.com/mi-finanzas/backend/internal/models"
)

type StateResponse struct {
	Error *string              `json:"error"` // The error, if any occurred
	Data  *models.FinanceState `json:"data"`  // The full state document
}

func RegisterStateRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsState)
		r.GET("", GetState)
		r.DELETE("", ResetState)
	}
	{
		r.OPTIONS("/export", OptionsStateExport)
		r.GET("/export", ExportState)
	}
	{
		r.OPTIONS("/import", OptionsStateImport)
		r.POST("/import", ImportState)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			State
// @Success		204
// @Router			/v1/state [options]
func OptionsState(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			State
// @Success		204
// @Router			/v1/state/export [options]
func OptionsStateExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			State
// @Success		204
// @Router			/v1/state/import [options]
func OptionsStateImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get the state
// @Description	Returns the full state document
// @Tags			State
// @Produce		json
// @Success		200	{object}	StateResponse
// @Failure		500	{object}	StateResponse
// @Router			/v1/state [get]
func GetState(c *gin.Context) {
	state, err := models.LoadState()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), StateResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, StateResponse{Data: state})
}

// @Summary		Reset everything
// @Description	Permanently replaces the state with the defaults
// @Tags			State
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to delete all data. Must have the value 'yes-please-delete-everything'"
// @Router			/v1/state [delete]
func ResetState(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.Bind(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errResetConfirmation.Error(),
		})
		return
	}

	if _, err := models.ResetState(); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Export the state
// @Description	Returns the state document as a file download
// @Tags			State
// @Produce		json
// @Success		200	{file}		file
// @Failure		500	{object}	httpError
// @Router			/v1/state/export [get]
func ExportState(c *gin.Context) {
	state, err := models.LoadState()
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	raw, err := state.Export()
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: models.ErrGeneral.Error()})
		return
	}

	filename := fmt.Sprintf("finance-app-data_%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/json", raw)
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(formFile.Filename, suffix) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	return formFile.Open()
}

// @Summary		Import a state document
// @Description	Replaces the state with an uploaded document. The document is schema-checked before anything is overwritten; expense IDs are backfilled and spent totals recomputed.
// @Tags			State
// @Accept			multipart/form-data
// @Produce		json
// @Success		200		{object}	StateResponse
// @Failure		400		{object}	StateResponse
// @Failure		500		{object}	StateResponse
// @Param			file	formData	file	true	"The file to import"
// @Router			/v1/state/import [post]
func ImportState(c *gin.Context) {
	f, err := getUploadedFile(c, ".json")
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, StateResponse{Error: &e})
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, StateResponse{Error: &e})
		return
	}

	state, err := models.ParseState(raw)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, StateResponse{Error: &e})
		return
	}

	if err := models.SaveState(state); err != nil {
		e := err.Error()
		c.JSON(status(err), StateResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, StateResponse{Data: state})
}
