package company

import (
	"context"
	"errors"
	"net/http"

	"go-assettrack/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company not found",
		http.StatusNotFound,
	)
	ErrCompanyEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Company email already registered",
		http.StatusConflict,
	)
)

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error)
	GetAll(ctx context.Context) ([]CompanyResponse, error)
	GetByID(ctx context.Context, id uint) (CompanyResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error) {
	c := &Company{
		CompanyName: req.CompanyName,
		Address:     req.Address,
		Email:       req.Email,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Error("create company failed", zap.Error(err))
		return CompanyResponse{}, mapError(err)
	}

	s.logger.Info("create company success", zap.Uint("company_id", c.ID))
	return mapToResponse(*c), nil
}

func (s *service) GetAll(ctx context.Context) ([]CompanyResponse, error) {
	companies, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	res := make([]CompanyResponse, len(companies))
	for i, c := range companies {
		res[i] = mapToResponse(c)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (CompanyResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return CompanyResponse{}, mapError(err)
	}
	return mapToResponse(*c), nil
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCompanyNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrCompanyEmailAlreadyExists
	}
	return apperror.Wrap(err, apperror.CodeDependencyFailure, apperror.ErrDependencyFailure.Message, apperror.ErrDependencyFailure.HTTPStatus)
}

func mapToResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:          c.ID,
		CompanyName: c.CompanyName,
		Address:     c.Address,
		Email:       c.Email,
	}
}
