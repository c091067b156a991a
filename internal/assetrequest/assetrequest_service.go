package assetrequest

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	assetrequesterrors "go-assettrack/internal/assetrequest/errors"
	"go-assettrack/internal/events"
	"go-assettrack/internal/messaging/kafka"
	"go-assettrack/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EmployeeChecker dipenuhi oleh employee.Repository saat wiring.
type EmployeeChecker interface {
	ExistsInCompany(ctx context.Context, companyID, id uint) (bool, error)
}

// AssetChecker dipenuhi oleh asset.Repository saat wiring.
type AssetChecker interface {
	ExistsInCompany(ctx context.Context, companyID, id uint) (bool, error)
}

//go:generate mockgen -source=assetrequest_service.go -destination=mock/assetrequest_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID, employeeID uint, req CreateAssetRequestRequest) (AssetRequestResponse, error)
	GetPending(ctx context.Context, companyID uint) ([]AssetRequestResponse, error)
	GetHistory(ctx context.Context, companyID uint) ([]AssetRequestResponse, error)
	GetMine(ctx context.Context, companyID, employeeID uint) ([]AssetRequestResponse, error)
	Approve(ctx context.Context, companyID, id, assetID uint) error
	Reject(ctx context.Context, companyID, id, assetID uint) error
}

type service struct {
	repo      Repository
	employees EmployeeChecker
	assets    AssetChecker
	outbox    kafka.OutboxRepository
	logger    *zap.Logger
}

func NewService(repo Repository, employees EmployeeChecker, assets AssetChecker, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("assetrequest.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("assetrequest.service")
	}
	return &service{
		repo:      repo,
		employees: employees,
		assets:    assets,
		outbox:    outbox,
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, companyID, employeeID uint, req CreateAssetRequestRequest) (AssetRequestResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create asset request requested",
		zap.String("request_id", rid),
		zap.Uint("company_id", companyID),
		zap.Uint("employee_id", employeeID),
	)

	ok, err := s.employees.ExistsInCompany(ctx, companyID, employeeID)
	if err != nil {
		return AssetRequestResponse{}, mapRepositoryError(err)
	}
	if !ok {
		return AssetRequestResponse{}, assetrequesterrors.ErrRequesterNotFound
	}

	// Asset belum terikat saat request dibuat; approver yang memilihnya.
	ar := &AssetRequest{
		CompanyID:     companyID,
		EmployeeID:    employeeID,
		AssetName:     req.AssetName,
		Status:        StatusPending,
		RequestedDate: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, ar); err != nil {
		s.logger.Error("create asset request persist failed", zap.Error(err))
		return AssetRequestResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create asset request success",
		zap.String("request_id", rid),
		zap.Uint("asset_request_id", ar.ID),
	)

	return AssetRequestResponse{
		ID:            ar.ID,
		EmployeeID:    ar.EmployeeID,
		AssetID:       ar.AssetID,
		AssetName:     ar.AssetName,
		Status:        ar.Status,
		RequestedDate: ar.RequestedDate.Format("2006-01-02"),
	}, nil
}

func (s *service) GetPending(ctx context.Context, companyID uint) ([]AssetRequestResponse, error) {
	views, err := s.repo.FindPending(ctx, companyID)
	if err != nil {
		s.logger.Error("get pending asset requests failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapViews(views), nil
}

func (s *service) GetHistory(ctx context.Context, companyID uint) ([]AssetRequestResponse, error) {
	views, err := s.repo.FindHistory(ctx, companyID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapViews(views), nil
}

func (s *service) GetMine(ctx context.Context, companyID, employeeID uint) ([]AssetRequestResponse, error) {
	views, err := s.repo.FindByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapViews(views), nil
}

func (s *service) Approve(ctx context.Context, companyID, id, assetID uint) error {
	return s.resolve(ctx, companyID, id, assetID, StatusApproved, "asset_request_approved")
}

// Reject juga menyimpan asset yang dinilai, jadi asset-nya harus ada.
func (s *service) Reject(ctx context.Context, companyID, id, assetID uint) error {
	ok, err := s.assets.ExistsInCompany(ctx, companyID, assetID)
	if err != nil {
		return mapRepositoryError(err)
	}
	if !ok {
		return assetrequesterrors.ErrAuditAssetNotFound
	}
	return s.resolve(ctx, companyID, id, assetID, StatusRejected, "asset_request_rejected")
}

func (s *service) resolve(ctx context.Context, companyID, id, assetID uint, status, eventType string) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("resolve asset request requested",
		zap.String("request_id", rid),
		zap.Uint("asset_request_id", id),
		zap.String("status", status),
	)

	ar, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if ar.Status != StatusPending {
		return assetrequesterrors.ErrRequestAlreadyResolved
	}

	payload, err := json.Marshal(events.AssetRequestResolvedEvent{
		EventType:  eventType,
		RequestID:  rid,
		AssetReqID: ar.ID,
		EmployeeID: ar.EmployeeID,
		AssetID:    assetID,
		CompanyID:  companyID,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return mapRepositoryError(err)
	}

	err = s.repo.ResolveWithOutbox(ctx, companyID, id, assetID, status, func(tx *sql.Tx) error {
		return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "assetrequest",
			AggregateID:   fmt.Sprintf("%d", ar.ID),
			EventType:     eventType,
			Topic:         events.AssetRequestResolvedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		})
	})
	if err != nil {
		s.logger.Error("resolve asset request failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("resolve asset request success",
		zap.String("request_id", rid),
		zap.Uint("asset_request_id", id),
		zap.String("status", status),
	)
	return nil
}

func mapViews(views []RequestView) []AssetRequestResponse {
	res := make([]AssetRequestResponse, len(views))
	for i, v := range views {
		resp := AssetRequestResponse{
			ID:            v.ID,
			EmployeeID:    v.EmployeeID,
			EmployeeName:  v.EmployeeName,
			AssetID:       v.AssetID,
			AssetName:     v.AssetName,
			Status:        v.Status,
			RequestedDate: v.RequestedDate.Format("2006-01-02"),
		}
		if v.ApprovalDate != nil {
			resp.ApprovalDate = v.ApprovalDate.Format("2006-01-02")
		}
		res[i] = resp
	}
	return res
}
