package attendanceerrors

import (
	"net/http"

	"hr-panel/internal/shared/apperror"
)

var (
	ErrAlreadyPunchedIn = apperror.New(
		apperror.CodeConflict,
		"already punched in for today",
		http.StatusConflict,
	)
	ErrNoRecordToday = apperror.New(
		apperror.CodeNotFound,
		"no attendance record for today",
		http.StatusNotFound,
	)
	ErrDayCompleted = apperror.New(
		apperror.CodeInvalidState,
		"the work day is already completed",
		http.StatusBadRequest,
	)
	ErrInvalidSegmentType = apperror.New(
		apperror.CodeInvalidInput,
		"invalid activity type",
		http.StatusBadRequest,
	)
	ErrInvalidClock = apperror.New(
		apperror.CodeInvalidInput,
		"invalid time, expected HH:MM",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"invalid attendance status",
		http.StatusBadRequest,
	)
	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"attendance record not found",
		http.StatusNotFound,
	)
)
