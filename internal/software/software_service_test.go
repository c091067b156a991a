package software_test

import (
	"context"
	"testing"
	"time"

	"go-assettrack/internal/shared/apperror"
	"go-assettrack/internal/software"

	softwareMock "go-assettrack/internal/software/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setupServiceTest(t *testing.T) (software.Service, *softwareMock.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := softwareMock.NewMockRepository(ctrl)
	return software.NewService(repo), repo
}

func TestSoftwareService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uint(1)

	t.Run("success", func(t *testing.T) {
		svc, repo := setupServiceTest(t)

		req := software.CreateSoftwareRequest{
			SoftwareName:     "Figma",
			SubscriptionCost: 144,
			StartDate:        "2026-01-01",
			EndDate:          "2026-12-31",
			Vendor:           "Figma Inc",
			LicenseType:      "per-seat",
		}

		repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, sw *software.SoftwareAsset) error {
				assert.Equal(t, companyID, sw.CompanyID)
				assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), sw.StartDate)
				sw.ID = 3
				return nil
			})

		resp, err := svc.Create(ctx, companyID, req)

		assert.NoError(t, err)
		assert.Equal(t, uint(3), resp.ID)
		assert.Equal(t, "2026-12-31", resp.EndDate)
	})

	t.Run("end before start", func(t *testing.T) {
		svc, _ := setupServiceTest(t)

		_, err := svc.Create(ctx, companyID, software.CreateSoftwareRequest{
			SoftwareName: "Figma",
			StartDate:    "2026-12-31",
			EndDate:      "2026-01-01",
		})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
	})
}

func TestSoftwareService_GetByID_CrossTenant(t *testing.T) {
	ctx := context.Background()
	svc, repo := setupServiceTest(t)

	repo.EXPECT().
		FindByIDAndCompany(ctx, uint(1), uint(7)).
		Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetByID(ctx, 1, 7)
	assert.ErrorIs(t, err, software.ErrSoftwareNotFound)
}

func TestSoftwareService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, repo := setupServiceTest(t)

	repo.EXPECT().
		FindByIDAndCompany(ctx, uint(1), uint(3)).
		Return(&software.SoftwareAsset{ID: 3, CompanyID: 1}, nil)
	repo.EXPECT().Delete(ctx, uint(1), uint(3)).Return(nil)

	err := svc.Delete(ctx, 1, 3)
	assert.NoError(t, err)
}
