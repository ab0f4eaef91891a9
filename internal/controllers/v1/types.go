package v1

import (
	"github.com/mi-finanzas/backend/internal/ledger"
)

// WarningPercent is the income-share threshold for the expense
// confirmation gate. It is set once at startup from the configuration.
var WarningPercent = ledger.DefaultWarningPercent

// URIMonth binds a month path segment. The month is parsed with
// types.ParseMonth in the handler so that malformed keys get a clean
// rejection instead of a binding error.
type URIMonth struct {
	Month string `uri:"month" binding:"required" example:"2025-06"` // Year and month in YYYY-MM format
}

// URICategory binds a category path segment.
type URICategory struct {
	Category string `uri:"category" binding:"required" example:"alimentacion"`
}

// URIIndex binds a list index path segment.
type URIIndex struct {
	Index int `uri:"index" example:"0"`
}

// URIID binds a resource ID path segment.
type URIID struct {
	ID string `uri:"id" binding:"required" format:"UUID"`
}
