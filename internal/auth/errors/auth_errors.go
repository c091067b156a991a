package autherrors

import (
	"net/http"

	"go-assettrack/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid username or password",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		"INVALID_TOKEN",
		"Invalid or malformed token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		"TOKEN_EXPIRED",
		"Token has expired",
		http.StatusUnauthorized,
	)
	ErrUsernameAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Username already taken",
		http.StatusConflict,
	)
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Email already registered",
		http.StatusConflict,
	)
	ErrEmployeeAlreadyHasAccount = apperror.New(
		apperror.CodeConflict,
		"Employee already has an account",
		http.StatusConflict,
	)
	ErrSuperAdminAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Company already has a Super Admin account",
		http.StatusConflict,
	)
	ErrUnknownRole = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown role id",
		http.StatusBadRequest,
	)
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrOTPInvalid = apperror.New(
		apperror.CodeUnauthorized,
		"OTP code is invalid or already used",
		http.StatusUnauthorized,
	)
	ErrOTPExpired = apperror.New(
		apperror.CodeUnauthorized,
		"OTP code has expired",
		http.StatusUnauthorized,
	)
)
