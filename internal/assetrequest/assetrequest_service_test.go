package assetrequest_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-assettrack/internal/assetrequest"
	assetrequesterrors "go-assettrack/internal/assetrequest/errors"

	assetrequestMock "go-assettrack/internal/assetrequest/mock"
	kafkaMock "go-assettrack/internal/messaging/kafka/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service   assetrequest.Service
	repo      *assetrequestMock.MockRepository
	employees *assetrequestMock.MockEmployeeChecker
	assets    *assetrequestMock.MockAssetChecker
	outbox    *kafkaMock.MockOutboxRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	repo := assetrequestMock.NewMockRepository(ctrl)
	employees := assetrequestMock.NewMockEmployeeChecker(ctrl)
	assets := assetrequestMock.NewMockAssetChecker(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := assetrequest.NewService(repo, employees, assets, outbox)

	return &serviceDeps{service: svc, repo: repo, employees: employees, assets: assets, outbox: outbox}
}

func TestAssetRequestService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uint(1)
	employeeID := uint(10)

	t.Run("success - starts pending with no asset bound", func(t *testing.T) {
		deps := setupServiceTest(t)

		req := assetrequest.CreateAssetRequestRequest{AssetName: "Thinkpad X1"}

		deps.employees.EXPECT().
			ExistsInCompany(ctx, companyID, employeeID).
			Return(true, nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, ar *assetrequest.AssetRequest) error {
				assert.Equal(t, assetrequest.StatusPending, ar.Status)
				assert.Equal(t, companyID, ar.CompanyID)
				assert.Equal(t, employeeID, ar.EmployeeID)
				assert.Nil(t, ar.AssetID)
				ar.ID = 3
				return nil
			})

		resp, err := deps.service.Create(ctx, companyID, employeeID, req)

		assert.NoError(t, err)
		assert.Equal(t, uint(3), resp.ID)
		assert.Equal(t, assetrequest.StatusPending, resp.Status)
	})

	t.Run("requester missing -> not found", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.employees.EXPECT().
			ExistsInCompany(ctx, companyID, employeeID).
			Return(false, nil)

		_, err := deps.service.Create(ctx, companyID, employeeID, assetrequest.CreateAssetRequestRequest{AssetName: "Monitor"})

		assert.ErrorIs(t, err, assetrequesterrors.ErrRequesterNotFound)
	})
}

func TestAssetRequestService_Approve(t *testing.T) {
	ctx := context.Background()
	companyID := uint(1)
	id := uint(3)

	t.Run("success - binds asset and resolves once with outbox row", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByIDAndCompany(ctx, companyID, id).
			Return(&assetrequest.AssetRequest{
				ID:         id,
				CompanyID:  companyID,
				EmployeeID: 10,
				Status:     assetrequest.StatusPending,
			}, nil)
		deps.repo.EXPECT().
			ResolveWithOutbox(ctx, companyID, id, uint(5), assetrequest.StatusApproved, gomock.Any()).
			DoAndReturn(func(ctx context.Context, companyID, id, assetID uint, status string, enqueue func(*sql.Tx) error) error {
				// Callback berjalan di dalam transaksi repo.
				return enqueue(nil)
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		err := deps.service.Approve(ctx, companyID, id, 5)

		assert.NoError(t, err)
	})

	t.Run("already resolved -> invalid state", func(t *testing.T) {
		deps := setupServiceTest(t)

		now := time.Now()
		deps.repo.EXPECT().
			FindByIDAndCompany(ctx, companyID, id).
			Return(&assetrequest.AssetRequest{
				ID:           id,
				CompanyID:    companyID,
				Status:       assetrequest.StatusApproved,
				ApprovalDate: &now,
			}, nil)

		err := deps.service.Approve(ctx, companyID, id, 5)

		assert.ErrorIs(t, err, assetrequesterrors.ErrRequestAlreadyResolved)
	})

	t.Run("unknown id -> not found", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByIDAndCompany(ctx, companyID, id).
			Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Approve(ctx, companyID, id, 5)

		assert.ErrorIs(t, err, assetrequesterrors.ErrRequestNotFound)
	})
}

func TestAssetRequestService_Reject(t *testing.T) {
	ctx := context.Background()

	t.Run("already rejected -> invalid state", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.assets.EXPECT().
			ExistsInCompany(ctx, uint(1), uint(5)).
			Return(true, nil)
		deps.repo.EXPECT().
			FindByIDAndCompany(ctx, uint(1), uint(3)).
			Return(&assetrequest.AssetRequest{ID: 3, CompanyID: 1, Status: assetrequest.StatusRejected}, nil)

		err := deps.service.Reject(ctx, 1, 3, 5)

		assert.ErrorIs(t, err, assetrequesterrors.ErrRequestAlreadyResolved)
	})

	t.Run("unknown asset -> not found before touching request", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.assets.EXPECT().
			ExistsInCompany(ctx, uint(1), uint(99)).
			Return(false, nil)

		err := deps.service.Reject(ctx, 1, 3, 99)

		assert.ErrorIs(t, err, assetrequesterrors.ErrAuditAssetNotFound)
	})
}

func TestAssetRequestService_Queries(t *testing.T) {
	ctx := context.Background()
	companyID := uint(1)

	t.Run("pending list maps views", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindPending(ctx, companyID).
			Return([]assetrequest.RequestView{{
				ID:            3,
				EmployeeID:    10,
				EmployeeName:  "Sari",
				AssetName:     "Thinkpad X1",
				Status:        assetrequest.StatusPending,
				RequestedDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			}}, nil)

		resp, err := deps.service.GetPending(ctx, companyID)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Sari", resp[0].EmployeeName)
		assert.Equal(t, "2026-03-01", resp[0].RequestedDate)
		assert.Empty(t, resp[0].ApprovalDate)
	})

	t.Run("history carries approval date", func(t *testing.T) {
		deps := setupServiceTest(t)

		approved := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
		deps.repo.EXPECT().
			FindHistory(ctx, companyID).
			Return([]assetrequest.RequestView{{
				ID:            3,
				EmployeeID:    10,
				Status:        assetrequest.StatusApproved,
				RequestedDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
				ApprovalDate:  &approved,
			}}, nil)

		resp, err := deps.service.GetHistory(ctx, companyID)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "2026-03-02", resp[0].ApprovalDate)
	})

	t.Run("my requests scoped to employee", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByEmployee(ctx, companyID, uint(10)).
			Return([]assetrequest.RequestView{}, nil)

		resp, err := deps.service.GetMine(ctx, companyID, 10)

		assert.NoError(t, err)
		assert.Empty(t, resp)
	})
}
