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

// SettingsEditable holds the settings a client may change.
type SettingsEditable struct {
	Currency string `json:"moneda" example:"CLP"`
}

// SettingsData is the current settings.
type SettingsData struct {
	Currency  types.Currency                       `json:"moneda" example:"CLP"`
	Shortcuts map[types.Category][]decimal.Decimal `json:"atajos"`
}

type SettingsResponse struct {
	Error *string       `json:"error"` // The error, if any occurred
	Data  *SettingsData `json:"data"`  // The settings
}

func RegisterSettingsRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsSettings)
		r.GET("", GetSettings)
		r.PATCH("", UpdateSettings)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Router			/v1/settings [options]
func OptionsSettings(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get settings
// @Description	Returns the currency and the quick-amount shortcuts
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	SettingsResponse
// @Failure		500	{object}	SettingsResponse
// @Router			/v1/settings [get]
func GetSettings(c *gin.Context) {
	state, err := models.LoadState()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{Error: &e})
		return
	}

	data := SettingsData{Currency: state.Currency, Shortcuts: state.Shortcuts}
	c.JSON(http.StatusOK, SettingsResponse{Data: &data})
}

// @Summary		Update settings
// @Description	Changes the currency. Stored amounts keep their numeric value, only the display currency changes.
// @Tags			Settings
// @Produce		json
// @Success		200			{object}	SettingsResponse
// @Failure		400			{object}	SettingsResponse
// @Failure		500			{object}	SettingsResponse
// @Param			settings	body		SettingsEditable	true	"Settings"
// @Router			/v1/settings [patch]
func UpdateSettings(c *gin.Context) {
	var editable SettingsEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{Error: &e})
		return
	}

	currency := types.Currency(editable.Currency)
	if err := ledger.ValidateCurrency(currency); err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{Error: &e})
		return
	}

	state, err := models.LoadState()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{Error: &e})
		return
	}

	state.Currency = currency
	if err := models.SaveState(state); err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{Error: &e})
		return
	}

	data := SettingsData{Currency: state.Currency, Shortcuts: state.Shortcuts}
	c.JSON(http.StatusOK, SettingsResponse{Data: &data})
}
