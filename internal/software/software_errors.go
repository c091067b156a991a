package software

import (
	"errors"
	"net/http"

	"go-assettrack/internal/shared/apperror"

	"gorm.io/gorm"
)

var ErrSoftwareNotFound = apperror.New(
	apperror.CodeNotFound,
	"Software asset not found",
	http.StatusNotFound,
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrSoftwareNotFound
	}

	return apperror.Wrap(err, apperror.CodeDependencyFailure, apperror.ErrDependencyFailure.Message, apperror.ErrDependencyFailure.HTTPStatus)
}
