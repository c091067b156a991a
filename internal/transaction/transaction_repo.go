package transaction

import (
	"context"

	"go-assettrack/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=transaction_repo.go -destination=mock/transaction_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, t *Transaction) error
	FindAllByCompany(ctx context.Context, companyID uint) ([]Transaction, error)
	FindByEmployee(ctx context.Context, companyID, employeeID uint) ([]Transaction, error)
	ExistsByEmployeeAndAsset(ctx context.Context, companyID, employeeID, assetID uint) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID uint) ([]Transaction, error) {
	var txs []Transaction
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("transaction_date DESC").
		Find(&txs).Error
	return txs, err
}

func (r *repository) FindByEmployee(ctx context.Context, companyID, employeeID uint) ([]Transaction, error) {
	var txs []Transaction
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Order("transaction_date DESC").
		Find(&txs).Error
	return txs, err
}

func (r *repository) ExistsByEmployeeAndAsset(ctx context.Context, companyID, employeeID, assetID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Transaction{}).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ? AND asset_id = ?", employeeID, assetID).
		Count(&count).Error
	return count > 0, err
}
