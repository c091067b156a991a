package software

import (
	"context"
	"net/http"
	"time"

	"go-assettrack/internal/shared/apperror"

	"go.uber.org/zap"
)

var errInvalidValidityWindow = apperror.New(
	apperror.CodeInvalidInput,
	"Invalid validity window, expected YYYY-MM-DD dates with start before end",
	http.StatusBadRequest,
)

//go:generate mockgen -source=software_service.go -destination=mock/software_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID uint, req CreateSoftwareRequest) (SoftwareResponse, error)
	GetAll(ctx context.Context, companyID uint) ([]SoftwareResponse, error)
	GetByID(ctx context.Context, companyID, id uint) (SoftwareResponse, error)
	Update(ctx context.Context, companyID, id uint, req UpdateSoftwareRequest) (SoftwareResponse, error)
	Delete(ctx context.Context, companyID, id uint) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("software.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("software.service")
	}
	return &service{repo: repo, logger: l}
}

func parseValidityWindow(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return time.Time{}, time.Time{}, errInvalidValidityWindow
	}
	endDate, err := time.Parse("2006-01-02", end)
	if err != nil {
		return time.Time{}, time.Time{}, errInvalidValidityWindow
	}
	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, errInvalidValidityWindow
	}
	return startDate, endDate, nil
}

func (s *service) Create(ctx context.Context, companyID uint, req CreateSoftwareRequest) (SoftwareResponse, error) {
	startDate, endDate, err := parseValidityWindow(req.StartDate, req.EndDate)
	if err != nil {
		return SoftwareResponse{}, err
	}

	sw := &SoftwareAsset{
		CompanyID:        companyID,
		SoftwareName:     req.SoftwareName,
		SubscriptionCost: req.SubscriptionCost,
		StartDate:        startDate,
		EndDate:          endDate,
		Vendor:           req.Vendor,
		LicenseType:      req.LicenseType,
		Apps:             req.Apps,
	}

	if err := s.repo.Create(ctx, sw); err != nil {
		s.logger.Error("create software persist failed", zap.Error(err))
		return SoftwareResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create software success", zap.Uint("software_id", sw.ID))
	return mapToResponse(*sw), nil
}

func (s *service) GetAll(ctx context.Context, companyID uint) ([]SoftwareResponse, error) {
	items, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("get all software failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(items), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id uint) (SoftwareResponse, error) {
	sw, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return SoftwareResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*sw), nil
}

func (s *service) Update(ctx context.Context, companyID, id uint, req UpdateSoftwareRequest) (SoftwareResponse, error) {
	startDate, endDate, err := parseValidityWindow(req.StartDate, req.EndDate)
	if err != nil {
		return SoftwareResponse{}, err
	}

	sw, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return SoftwareResponse{}, mapRepositoryError(err)
	}

	sw.SoftwareName = req.SoftwareName
	sw.SubscriptionCost = req.SubscriptionCost
	sw.StartDate = startDate
	sw.EndDate = endDate
	sw.Vendor = req.Vendor
	sw.LicenseType = req.LicenseType
	sw.Apps = req.Apps

	if err := s.repo.Update(ctx, sw); err != nil {
		s.logger.Error("update software persist failed", zap.Error(err))
		return SoftwareResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update software success", zap.Uint("software_id", id))
	return mapToResponse(*sw), nil
}

func (s *service) Delete(ctx context.Context, companyID, id uint) error {
	if _, err := s.repo.FindByIDAndCompany(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, companyID, id); err != nil {
		s.logger.Error("delete software failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete software success", zap.Uint("software_id", id))
	return nil
}

func mapToResponse(sw SoftwareAsset) SoftwareResponse {
	return SoftwareResponse{
		ID:               sw.ID,
		SoftwareName:     sw.SoftwareName,
		SubscriptionCost: sw.SubscriptionCost,
		StartDate:        sw.StartDate.Format("2006-01-02"),
		EndDate:          sw.EndDate.Format("2006-01-02"),
		Vendor:           sw.Vendor,
		LicenseType:      sw.LicenseType,
		Apps:             sw.Apps,
		CompanyID:        sw.CompanyID,
	}
}

func mapToListResponse(items []SoftwareAsset) []SoftwareResponse {
	res := make([]SoftwareResponse, len(items))
	for i, sw := range items {
		res[i] = mapToResponse(sw)
	}
	return res
}
