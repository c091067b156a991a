package assignmenterrors

import (
	"net/http"

	"go-assettrack/internal/shared/apperror"
)

var (
	ErrAssignmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Assignment not found",
		http.StatusNotFound,
	)
	ErrAssigneeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrAssignedAssetNotFound = apperror.New(
		apperror.CodeNotFound,
		"Asset not found",
		http.StatusNotFound,
	)
	ErrTransferTargetNotFound = apperror.New(
		apperror.CodeNotFound,
		"Transfer target employee not found",
		http.StatusNotFound,
	)
	ErrSoftwareAlreadyAssigned = apperror.New(
		apperror.CodeConflict,
		"Software already assigned to this employee",
		http.StatusConflict,
	)
	ErrInvalidAssignedDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid assigned_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrAssignmentNotVisible = apperror.New(
		apperror.CodeDependencyFailure,
		"Assignment rows were not visible after insert",
		http.StatusServiceUnavailable,
	)
)
