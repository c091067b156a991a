package asset

import (
	"errors"
	"strings"

	asseterrors "go-assettrack/internal/asset/errors"
	"go-assettrack/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return asseterrors.ErrAssetNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_asset_tag" {
			return asseterrors.ErrAssetTagAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_asset_tag") {
		return asseterrors.ErrAssetTagAlreadyExists
	}

	return apperror.Wrap(err, apperror.CodeDependencyFailure, apperror.ErrDependencyFailure.Message, apperror.ErrDependencyFailure.HTTPStatus)
}
