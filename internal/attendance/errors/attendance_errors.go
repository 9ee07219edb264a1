package attendanceerrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidTimestamp = apperror.New(
		apperror.CodeInvalidInput,
		"invalid timestamp, expected RFC 3339",
		http.StatusBadRequest,
	)
	ErrNothingToRecord = apperror.New(
		apperror.CodeInvalidInput,
		"either check_in or check_out must be provided",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrRecordForbidden = apperror.New(
		apperror.CodeForbidden,
		"you are not allowed to record attendance",
		http.StatusForbidden,
	)
	ErrReadForbidden = apperror.New(
		apperror.CodeForbidden,
		"you are not allowed to read these attendance records",
		http.StatusForbidden,
	)
)
