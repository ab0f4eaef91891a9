// Package ledger implements the budget-policy engine: validation,
// expense posting, budget edits, goals and surplus transfers.
//
// Every operation takes the aggregate as an explicit handle, mutates it
// only on success and reports expected failures as *Rejection values,
// never as panics.
package ledger

import (
	"errors"
	"fmt"
)

// Code classifies a rejection.
type Code string

const (
	CodeInvalidAmount          Code = "INVALID_AMOUNT"
	CodeInvalidCategory        Code = "INVALID_CATEGORY"
	CodeInvalidDate            Code = "INVALID_DATE"
	CodeInvalidCurrency        Code = "INVALID_CURRENCY"
	CodeInvalidGoalField       Code = "INVALID_GOAL_FIELD"
	CodeBudgetCapacityExceeded Code = "BUDGET_CAPACITY_EXCEEDED"
	CodeGoalCapacityExceeded   Code = "GOAL_CAPACITY_EXCEEDED"
	CodeSchemaInvalid          Code = "SCHEMA_INVALID"
	CodeNotFound               Code = "NOT_FOUND"

	// CodeConfirmationRequired signals a commit that was attempted
	// without granting a fired confirmation gate. The operation is not
	// applied; the caller must re-check and confirm.
	CodeConfirmationRequired Code = "CONFIRMATION_REQUIRED"
)

// Rejection is a recoverable business-rule failure. Field names the
// input field the failure is about, when there is one.
type Rejection struct {
	Code    Code
	Field   string
	Message string
}

func (r *Rejection) Error() string {
	return r.Message
}

func reject(code Code, field, format string, args ...any) *Rejection {
	return &Rejection{
		Code:    code,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// CodeOf returns the rejection code of an error, or the empty code for
// errors that are not rejections.
func CodeOf(err error) Code {
	var rejection *Rejection
	if errors.As(err, &rejection) {
		return rejection.Code
	}

	return ""
}
