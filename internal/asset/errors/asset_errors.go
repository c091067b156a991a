package asseterrors

import (
	"net/http"

	"go-assettrack/internal/shared/apperror"
)

var (
	ErrAssetNotFound = apperror.New(
		apperror.CodeNotFound,
		"Asset not found",
		http.StatusNotFound,
	)
	ErrAssetTagAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Asset tag already exists in this company",
		http.StatusConflict,
	)
	ErrInvalidPurchaseDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid purchase_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
