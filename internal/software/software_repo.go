package software

import (
	"context"

	"go-assettrack/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=software_repo.go -destination=mock/software_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, s *SoftwareAsset) error
	FindAllByCompany(ctx context.Context, companyID uint) ([]SoftwareAsset, error)
	FindByIDAndCompany(ctx context.Context, companyID, id uint) (*SoftwareAsset, error)
	Update(ctx context.Context, s *SoftwareAsset) error
	Delete(ctx context.Context, companyID, id uint) error
	ExistsInCompany(ctx context.Context, companyID, id uint) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *SoftwareAsset) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID uint) ([]SoftwareAsset, error) {
	var items []SoftwareAsset
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Find(&items).Error
	return items, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id uint) (*SoftwareAsset, error) {
	var s SoftwareAsset
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) Update(ctx context.Context, s *SoftwareAsset) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id uint) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&SoftwareAsset{}, "id = ?", id).Error
}

func (r *repository) ExistsInCompany(ctx context.Context, companyID, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&SoftwareAsset{}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}
