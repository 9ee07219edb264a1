package leaveerrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrInvalidLeaveID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave request id",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave type",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"a justification is required",
		http.StatusBadRequest,
	)
	ErrReviewCommentRequired = apperror.New(
		apperror.CodeInvalidInput,
		"a review comment is required when rejecting",
		http.StatusBadRequest,
	)
	ErrInvalidReviewTarget = apperror.New(
		apperror.CodeInvalidInput,
		"invalid target status for review",
		http.StatusBadRequest,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrAlreadyFinalized = apperror.New(
		apperror.CodeInvalidState,
		"leave request already finalized",
		http.StatusConflict,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid leave status transition",
		http.StatusConflict,
	)
	ErrEditNotAllowed = apperror.New(
		apperror.CodeInvalidState,
		"only pending requests can be edited",
		http.StatusConflict,
	)
	ErrReviewForbidden = apperror.New(
		apperror.CodeForbidden,
		"you are not allowed to review this request",
		http.StatusForbidden,
	)
	ErrOutsideManagedDepartment = apperror.New(
		apperror.CodeForbidden,
		"request belongs to an employee outside the department you manage",
		http.StatusForbidden,
	)
	ErrNotRequestOwner = apperror.New(
		apperror.CodeForbidden,
		"you are not allowed to act on this request",
		http.StatusForbidden,
	)
	ErrInsufficientBalance = apperror.New(
		apperror.CodeInsufficientBalance,
		"insufficient leave balance for the requested days",
		http.StatusUnprocessableEntity,
	)
)
