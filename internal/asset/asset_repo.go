package asset

import (
	"context"

	"go-assettrack/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=asset_repo.go -destination=mock/asset_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, a *PhysicalAsset) error
	FindAllByCompany(ctx context.Context, companyID uint) ([]PhysicalAsset, error)
	FindByIDAndCompany(ctx context.Context, companyID, id uint) (*PhysicalAsset, error)
	Update(ctx context.Context, a *PhysicalAsset) error
	Delete(ctx context.Context, companyID, id uint) error
	ExistsInCompany(ctx context.Context, companyID, id uint) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *PhysicalAsset) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID uint) ([]PhysicalAsset, error) {
	var assets []PhysicalAsset
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Find(&assets).Error
	return assets, err
}

// FindByIDAndCompany applies the tenant scope before the primary key, so a
// cross-tenant lookup is indistinguishable from a nonexistent asset.
func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id uint) (*PhysicalAsset, error) {
	var a PhysicalAsset
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) Update(ctx context.Context, a *PhysicalAsset) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id uint) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&PhysicalAsset{}, "id = ?", id).Error
}

func (r *repository) ExistsInCompany(ctx context.Context, companyID, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&PhysicalAsset{}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}
