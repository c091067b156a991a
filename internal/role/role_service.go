package role

import (
	"context"
	"errors"
	"net/http"

	"go-assettrack/internal/shared/apperror"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrRoleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Role not found",
		http.StatusNotFound,
	)
	ErrRoleInUse = apperror.New(
		apperror.CodeConflict,
		"Role is still assigned to users",
		http.StatusConflict,
	)
)

//go:generate mockgen -source=role_service.go -destination=mock/role_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]RoleResponse, error)
	GetByID(ctx context.Context, id uint) (RoleResponse, error)
	Create(ctx context.Context, req CreateRoleRequest) (RoleResponse, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("role.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("role.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]RoleResponse, error) {
	roles, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all roles failed", zap.Error(err))
		return nil, mapError(err)
	}

	res := make([]RoleResponse, len(roles))
	for i, rec := range roles {
		res[i] = toResponse(rec)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (RoleResponse, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return RoleResponse{}, mapError(err)
	}
	return toResponse(*rec), nil
}

func (s *service) Create(ctx context.Context, req CreateRoleRequest) (RoleResponse, error) {
	rec := &RoleRecord{RoleName: req.RoleName, RoleDescription: req.RoleDescription}
	if err := s.repo.Create(ctx, rec); err != nil {
		s.logger.Error("create role failed", zap.Error(err))
		return RoleResponse{}, mapError(err)
	}

	s.logger.Info("create role success", zap.Uint("role_id", rec.ID))
	return toResponse(*rec), nil
}

// Delete ditolak selama masih ada user yang memakai role ini.
func (s *service) Delete(ctx context.Context, id uint) error {
	inUse, err := s.repo.CountUsers(ctx, id)
	if err != nil {
		return mapError(err)
	}
	if inUse > 0 {
		return ErrRoleInUse
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return mapError(err)
	}

	s.logger.Info("delete role success", zap.Uint("role_id", id))
	return nil
}

func toResponse(rec RoleRecord) RoleResponse {
	return RoleResponse{ID: rec.ID, RoleName: rec.RoleName, RoleDescription: rec.RoleDescription}
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRoleNotFound
	}
	return apperror.Wrap(err, apperror.CodeDependencyFailure, apperror.ErrDependencyFailure.Message, apperror.ErrDependencyFailure.HTTPStatus)
}
