package payrollerrors

import (
	"net/http"

	"hr-panel/internal/shared/apperror"
)

var (
	ErrEntryNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll entry not found",
		http.StatusNotFound,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"salary amounts must be zero or positive numbers",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"invalid month, expected YYYY-MM",
		http.StatusBadRequest,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"user not found",
		http.StatusNotFound,
	)
	ErrCEONotPayrolled = apperror.New(
		apperror.CodeInvalidInput,
		"payroll entries are not managed for the CEO account",
		http.StatusBadRequest,
	)
	ErrSlipNotAvailable = apperror.New(
		apperror.CodeNotFound,
		"no payslip available for this entry",
		http.StatusNotFound,
	)
)
