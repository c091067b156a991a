package company

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, c *Company) error
	FindAll(ctx context.Context) ([]Company, error)
	FindByID(ctx context.Context, id uint) (*Company, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *Company) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Company, error) {
	var companies []Company
	err := r.db.WithContext(ctx).Order("id").Find(&companies).Error
	return companies, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Company, error) {
	var c Company
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *repository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Company{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}
