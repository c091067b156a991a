package assetrequesterrors

import (
	"net/http"

	"go-assettrack/internal/shared/apperror"
)

var (
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"Asset request not found",
		http.StatusNotFound,
	)
	ErrRequesterNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrAuditAssetNotFound = apperror.New(
		apperror.CodeNotFound,
		"Asset not found",
		http.StatusNotFound,
	)
	ErrRequestAlreadyResolved = apperror.New(
		apperror.CodeInvalidState,
		"Asset request has already been resolved",
		http.StatusConflict,
	)
)
