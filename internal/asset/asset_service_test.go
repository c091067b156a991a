package asset_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-assettrack/internal/asset"
	asseterrors "go-assettrack/internal/asset/errors"

	assetMock "go-assettrack/internal/asset/mock"
	counterMock "go-assettrack/internal/shared/counter/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service   asset.Service
	repo      *assetMock.MockRepository
	counter   *counterMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	dbRedis, redisMock := redismock.NewClientMock()
	repo := assetMock.NewMockRepository(ctrl)
	counterRepo := counterMock.NewMockRepository(ctrl)

	svc := asset.NewService(repo, counterRepo, dbRedis)

	return &serviceDeps{
		service:   svc,
		repo:      repo,
		counter:   counterRepo,
		redismock: redisMock,
	}
}

func TestDeriveStatus(t *testing.T) {
	assert.Equal(t, asset.StatusUnavailable, asset.DeriveStatus(0))
	assert.Equal(t, asset.StatusAvailable, asset.DeriveStatus(1))
	assert.Equal(t, asset.StatusAvailable, asset.DeriveStatus(25))
}

func TestAssetService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uint(1)

	t.Run("success - auto generate asset tag", func(t *testing.T) {
		deps := setupServiceTest(t)

		req := asset.CreateAssetRequest{
			AssetName:    "Thinkpad X1",
			Type:         "Laptop",
			PurchaseCost: 1500,
			PurchaseDate: "2026-02-10",
			Quantity:     4,
		}

		deps.counter.EXPECT().
			NextValue(ctx, companyID, "asset_tag").
			Return(int64(123), nil)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, a *asset.PhysicalAsset) error {
				assert.Equal(t, "AST-000123", a.AssetTag)
				assert.Equal(t, asset.StatusAvailable, a.Status)
				assert.Equal(t, companyID, a.CompanyID)
				a.ID = 9
				return nil
			})

		deps.redismock.ExpectDel(asset.GetAssetOptionsKey(companyID)).SetVal(1)

		resp, err := deps.service.Create(ctx, companyID, req)

		assert.NoError(t, err)
		assert.Equal(t, uint(9), resp.ID)
		assert.Equal(t, "AST-000123", resp.AssetTag)
	})

	t.Run("zero quantity -> created unavailable", func(t *testing.T) {
		deps := setupServiceTest(t)

		req := asset.CreateAssetRequest{
			AssetName:    "Projector",
			Type:         "Electronics",
			PurchaseDate: "2026-02-10",
			AssetTag:     "AST-CUSTOM",
			Quantity:     0,
		}

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, a *asset.PhysicalAsset) error {
				assert.Equal(t, asset.StatusUnavailable, a.Status)
				return nil
			})
		deps.redismock.ExpectDel(asset.GetAssetOptionsKey(companyID)).SetVal(1)

		_, err := deps.service.Create(ctx, companyID, req)
		assert.NoError(t, err)
	})

	t.Run("duplicate tag -> conflict", func(t *testing.T) {
		deps := setupServiceTest(t)

		req := asset.CreateAssetRequest{
			AssetName:    "Monitor",
			Type:         "Electronics",
			PurchaseDate: "2026-02-10",
			AssetTag:     "AST-000001",
			Quantity:     1,
		}

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_asset_tag"})

		_, err := deps.service.Create(ctx, companyID, req)
		assert.ErrorIs(t, err, asseterrors.ErrAssetTagAlreadyExists)
	})

	t.Run("invalid purchase date", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Create(ctx, companyID, asset.CreateAssetRequest{
			AssetName:    "Monitor",
			Type:         "Electronics",
			PurchaseDate: "10/02/2026",
		})
		assert.ErrorIs(t, err, asseterrors.ErrInvalidPurchaseDate)
	})
}

func TestAssetService_Update_StatusFollowsQuantity(t *testing.T) {
	ctx := context.Background()
	companyID := uint(1)
	id := uint(9)

	t.Run("quantity drops to zero -> unavailable", func(t *testing.T) {
		deps := setupServiceTest(t)

		existing := &asset.PhysicalAsset{
			ID:           id,
			CompanyID:    companyID,
			AssetTag:     "AST-000009",
			AssetName:    "Thinkpad X1",
			Type:         "Laptop",
			PurchaseDate: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
			Status:       asset.StatusAvailable,
			Quantity:     4,
		}

		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, id).Return(existing, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, a *asset.PhysicalAsset) error {
				assert.Equal(t, 0, a.Quantity)
				assert.Equal(t, asset.StatusUnavailable, a.Status)
				return nil
			})
		deps.redismock.ExpectDel(asset.GetAssetOptionsKey(companyID)).SetVal(1)

		resp, err := deps.service.Update(ctx, companyID, id, asset.UpdateAssetRequest{
			AssetName:    "Thinkpad X1",
			Type:         "Laptop",
			PurchaseDate: "2026-02-10",
			Quantity:     0,
		})

		assert.NoError(t, err)
		assert.Equal(t, asset.StatusUnavailable, resp.Status)
	})

	t.Run("restock -> available again", func(t *testing.T) {
		deps := setupServiceTest(t)

		existing := &asset.PhysicalAsset{
			ID:           id,
			CompanyID:    companyID,
			AssetName:    "Thinkpad X1",
			Type:         "Laptop",
			PurchaseDate: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
			Status:       asset.StatusUnavailable,
			Quantity:     0,
		}

		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, id).Return(existing, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, a *asset.PhysicalAsset) error {
				assert.Equal(t, asset.StatusAvailable, a.Status)
				return nil
			})
		deps.redismock.ExpectDel(asset.GetAssetOptionsKey(companyID)).SetVal(1)

		resp, err := deps.service.Update(ctx, companyID, id, asset.UpdateAssetRequest{
			AssetName:    "Thinkpad X1",
			Type:         "Laptop",
			PurchaseDate: "2026-02-10",
			Quantity:     3,
		})

		assert.NoError(t, err)
		assert.Equal(t, asset.StatusAvailable, resp.Status)
	})
}

func TestAssetService_GetByID_CrossTenant(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)

	// Id milik tenant lain tersaring di query, hasilnya selalu NotFound.
	deps.repo.EXPECT().
		FindByIDAndCompany(ctx, uint(1), uint(7)).
		Return(nil, gorm.ErrRecordNotFound)

	_, err := deps.service.GetByID(ctx, 1, 7)
	assert.ErrorIs(t, err, asseterrors.ErrAssetNotFound)
}

func TestAssetService_Delete_Unconditional(t *testing.T) {
	ctx := context.Background()
	companyID := uint(1)
	id := uint(9)

	deps := setupServiceTest(t)

	// Tidak ada cek assignment apa pun sebelum delete.
	deps.repo.EXPECT().
		FindByIDAndCompany(ctx, companyID, id).
		Return(&asset.PhysicalAsset{ID: id, CompanyID: companyID}, nil)
	deps.repo.EXPECT().Delete(ctx, companyID, id).Return(nil)
	deps.redismock.ExpectDel(asset.GetAssetOptionsKey(companyID)).SetVal(1)

	err := deps.service.Delete(ctx, companyID, id)
	assert.NoError(t, err)
}

func TestAssetService_GetOptions_Cache(t *testing.T) {
	ctx := context.Background()
	companyID := uint(1)
	cacheKey := asset.GetAssetOptionsKey(companyID)

	t.Run("cache hit skips repository", func(t *testing.T) {
		deps := setupServiceTest(t)

		cached := []asset.AssetResponse{{ID: 9, AssetTag: "AST-000009", AssetName: "Thinkpad X1", Status: asset.StatusAvailable, Quantity: 4, CompanyID: companyID, PurchaseDate: "2026-02-10"}}
		payload, err := json.Marshal(cached)
		assert.NoError(t, err)

		deps.redismock.ExpectGet(cacheKey).SetVal(string(payload))

		resp, err := deps.service.GetOptions(ctx, companyID)

		assert.NoError(t, err)
		assert.Equal(t, cached, resp)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("cache miss fills cache from repository", func(t *testing.T) {
		deps := setupServiceTest(t)

		rows := []asset.PhysicalAsset{{
			ID:           9,
			CompanyID:    companyID,
			AssetTag:     "AST-000009",
			AssetName:    "Thinkpad X1",
			PurchaseDate: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
			Status:       asset.StatusAvailable,
			Quantity:     4,
		}}
		expected := []asset.AssetResponse{{
			ID:           9,
			AssetTag:     "AST-000009",
			AssetName:    "Thinkpad X1",
			PurchaseDate: "2026-02-10",
			Status:       asset.StatusAvailable,
			Quantity:     4,
			CompanyID:    companyID,
		}}
		payload, err := json.Marshal(expected)
		assert.NoError(t, err)

		deps.redismock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().FindAllByCompany(ctx, companyID).Return(rows, nil)
		deps.redismock.ExpectSet(cacheKey, payload, 1*time.Hour).SetVal("OK")

		resp, err := deps.service.GetOptions(ctx, companyID)

		assert.NoError(t, err)
		assert.Equal(t, expected, resp)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})
}
