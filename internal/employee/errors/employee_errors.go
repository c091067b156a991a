package employeeerrors

import (
	"net/http"

	"go-assettrack/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee email already registered in this company",
		http.StatusConflict,
	)
	ErrEmployeeHasAssignments = apperror.New(
		apperror.CodeConflict,
		"Employee still holds assigned assets",
		http.StatusConflict,
	)
	ErrInvalidJoinDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid join_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
