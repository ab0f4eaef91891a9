package v1

import (
	"errors"
	"net/http"

	"github.com/mi-finanzas/backend/internal/ledger"
	"github.com/mi-finanzas/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the amount must be greater than 0"`
}

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	switch ledger.CodeOf(err) {
	case ledger.CodeNotFound:
		return http.StatusNotFound
	case ledger.CodeConfirmationRequired:
		return http.StatusConflict
	case "":
		// not a rejection, checked below
	default:
		return http.StatusBadRequest
	}

	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	return http.StatusBadRequest
}

// Reset errors
var errResetConfirmation = errors.New("the confirmation for the reset API call was incorrect")

// Import errors
var (
	errNoFilePost      = errors.New("you must send a file to this endpoint")
	errWrongFileSuffix = errors.New("this endpoint only supports files of the following types")
)
