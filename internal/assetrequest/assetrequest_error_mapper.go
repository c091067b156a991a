package assetrequest

import (
	"errors"

	assetrequesterrors "go-assettrack/internal/assetrequest/errors"
	"go-assettrack/internal/shared/apperror"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return assetrequesterrors.ErrRequestNotFound
	}
	if errors.Is(err, errAlreadyResolved) {
		return assetrequesterrors.ErrRequestAlreadyResolved
	}

	return apperror.Wrap(err, apperror.CodeDependencyFailure, apperror.ErrDependencyFailure.Message, apperror.ErrDependencyFailure.HTTPStatus)
}
