package announcementerrors

import (
	"net/http"

	"hr-panel/internal/shared/apperror"
)

var (
	ErrNotFound = apperror.New(
		apperror.CodeNotFound,
		"announcement not found",
		http.StatusNotFound,
	)
	ErrTitleRequired = apperror.New(
		apperror.CodeInvalidInput,
		"announcement title is required",
		http.StatusBadRequest,
	)
	ErrContentRequired = apperror.New(
		apperror.CodeInvalidInput,
		"announcement content is required",
		http.StatusBadRequest,
	)
	ErrInvalidPriority = apperror.New(
		apperror.CodeInvalidInput,
		"priority must be one of High, Normal, Low",
		http.StatusBadRequest,
	)
	ErrInvalidTone = apperror.New(
		apperror.CodeInvalidInput,
		"tone must be one of Formal, Excited, Urgent, Casual",
		http.StatusBadRequest,
	)
	ErrTopicRequired = apperror.New(
		apperror.CodeInvalidInput,
		"a topic is required to generate an announcement",
		http.StatusBadRequest,
	)
)
