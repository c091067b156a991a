package assignment

import (
	"database/sql"
	"errors"
	"strings"

	assignmenterrors "go-assettrack/internal/assignment/errors"
	"go-assettrack/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, sql.ErrNoRows) {
		return assignmenterrors.ErrAssignmentNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if strings.Contains(pgErr.ConstraintName, "software_assignments") {
			return assignmenterrors.ErrSoftwareAlreadyAssigned
		}
	}

	return apperror.Wrap(err, apperror.CodeDependencyFailure, apperror.ErrDependencyFailure.Message, apperror.ErrDependencyFailure.HTTPStatus)
}
