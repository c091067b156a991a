package asset

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	asseterrors "go-assettrack/internal/asset/errors"
	"go-assettrack/internal/shared/contextutil"
	"go-assettrack/internal/shared/counter"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const AssetOptionsKeyPrefix = "assets:options:"

func GetAssetOptionsKey(companyID uint) string {
	return fmt.Sprintf("%s%d", AssetOptionsKeyPrefix, companyID)
}

//go:generate mockgen -source=asset_service.go -destination=mock/asset_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID uint, req CreateAssetRequest) (AssetResponse, error)
	GetAll(ctx context.Context, companyID uint) ([]AssetResponse, error)
	GetOptions(ctx context.Context, companyID uint) ([]AssetResponse, error)
	GetByID(ctx context.Context, companyID, id uint) (AssetResponse, error)
	Update(ctx context.Context, companyID, id uint, req UpdateAssetRequest) (AssetResponse, error)
	Delete(ctx context.Context, companyID, id uint) error
}

type service struct {
	repo    Repository
	counter counter.Repository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(repo Repository, counterRepo counter.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("asset.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("asset.service")
	}
	return &service{
		repo:    repo,
		counter: counterRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, companyID uint, req CreateAssetRequest) (AssetResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create asset requested",
		zap.String("request_id", rid),
		zap.Uint("company_id", companyID),
		zap.String("asset_name", req.AssetName),
	)

	purchaseDate, err := time.Parse("2006-01-02", req.PurchaseDate)
	if err != nil {
		s.logger.Warn("create asset invalid purchase_date",
			zap.String("purchase_date", req.PurchaseDate),
			zap.Error(err),
		)
		return AssetResponse{}, asseterrors.ErrInvalidPurchaseDate
	}

	if req.AssetTag == "" {
		nextVal, err := s.counter.NextValue(ctx, companyID, "asset_tag")
		if err != nil {
			s.logger.Error("create asset generate tag failed", zap.Error(err))
			return AssetResponse{}, mapRepositoryError(err)
		}
		req.AssetTag = fmt.Sprintf("AST-%06d", nextVal)
	}

	a := &PhysicalAsset{
		CompanyID:    companyID,
		AssetTag:     req.AssetTag,
		AssetName:    req.AssetName,
		Type:         req.Type,
		Description:  req.Description,
		PurchaseCost: req.PurchaseCost,
		PurchaseDate: purchaseDate,
		Department:   req.Department,
		Location:     req.Location,
		Condition:    req.Condition,
		Status:       DeriveStatus(req.Quantity),
		Quantity:     req.Quantity,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		s.logger.Error("create asset persist failed", zap.Error(err))
		return AssetResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx, companyID)

	s.logger.Info("create asset success",
		zap.String("request_id", rid),
		zap.Uint("asset_id", a.ID),
	)

	return mapToResponse(*a), nil
}

func (s *service) GetAll(ctx context.Context, companyID uint) ([]AssetResponse, error) {
	s.logger.Debug("get all assets requested", zap.Uint("company_id", companyID))
	assets, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("get all assets failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(assets), nil
}

func (s *service) GetOptions(ctx context.Context, companyID uint) ([]AssetResponse, error) {
	cacheKey := GetAssetOptionsKey(companyID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []AssetResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Singleflight meredam stampede saat form penugasan dibuka bersamaan
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		assets, err := s.repo.FindAllByCompany(ctx, companyID)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(assets)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]AssetResponse), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id uint) (AssetResponse, error) {
	s.logger.Debug("get asset by id requested",
		zap.Uint("company_id", companyID),
		zap.Uint("asset_id", id),
	)
	a, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		s.logger.Error("get asset by id failed", zap.Error(err))
		return AssetResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*a), nil
}

func (s *service) Update(ctx context.Context, companyID, id uint, req UpdateAssetRequest) (AssetResponse, error) {
	s.logger.Debug("update asset requested",
		zap.Uint("company_id", companyID),
		zap.Uint("asset_id", id),
	)

	purchaseDate, err := time.Parse("2006-01-02", req.PurchaseDate)
	if err != nil {
		return AssetResponse{}, asseterrors.ErrInvalidPurchaseDate
	}

	a, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		s.logger.Error("update asset fetch existing failed", zap.Error(err))
		return AssetResponse{}, mapRepositoryError(err)
	}

	a.AssetName = req.AssetName
	a.Type = req.Type
	a.Description = req.Description
	a.PurchaseCost = req.PurchaseCost
	a.PurchaseDate = purchaseDate
	a.Department = req.Department
	a.Location = req.Location
	a.Condition = req.Condition
	a.Quantity = req.Quantity
	// Status mengikuti quantity, apapun yang dikirim caller
	a.Status = DeriveStatus(req.Quantity)

	if err := s.repo.Update(ctx, a); err != nil {
		s.logger.Error("update asset persist failed", zap.Error(err))
		return AssetResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx, companyID)

	s.logger.Info("update asset success", zap.Uint("asset_id", id))

	return mapToResponse(*a), nil
}

// Delete removes the asset unconditionally. Outstanding assignment rows are
// not checked and may be orphaned.
func (s *service) Delete(ctx context.Context, companyID, id uint) error {
	s.logger.Debug("delete asset requested",
		zap.Uint("company_id", companyID),
		zap.Uint("asset_id", id),
	)

	if _, err := s.repo.FindByIDAndCompany(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, companyID, id); err != nil {
		s.logger.Error("delete asset failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx, companyID)

	s.logger.Info("delete asset success", zap.Uint("asset_id", id))
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context, companyID uint) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetAssetOptionsKey(companyID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate asset options cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

func mapToResponse(a PhysicalAsset) AssetResponse {
	return AssetResponse{
		ID:           a.ID,
		AssetTag:     a.AssetTag,
		AssetName:    a.AssetName,
		Type:         a.Type,
		Description:  a.Description,
		PurchaseCost: a.PurchaseCost,
		PurchaseDate: a.PurchaseDate.Format("2006-01-02"),
		Department:   a.Department,
		Location:     a.Location,
		Condition:    a.Condition,
		Status:       a.Status,
		Quantity:     a.Quantity,
		CompanyID:    a.CompanyID,
	}
}

func mapToListResponse(assets []PhysicalAsset) []AssetResponse {
	res := make([]AssetResponse, len(assets))
	for i, a := range assets {
		res[i] = mapToResponse(a)
	}
	return res
}
