package employee

import (
	"context"

	"go-assettrack/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, e *Employee) error
	FindAllByCompany(ctx context.Context, companyID uint) ([]Employee, error)
	FindByIDAndCompany(ctx context.Context, companyID, id uint) (*Employee, error)
	Update(ctx context.Context, e *Employee) error
	DeleteWithRequests(ctx context.Context, companyID, id uint) error
	ExistsInCompany(ctx context.Context, companyID, id uint) (bool, error)
	FindEmailByID(ctx context.Context, companyID, id uint) (string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID uint) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("id").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id uint) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&e, "id = ?", id).Error
	return &e, err
}

// Update juga menyalin email dan nomor telepon ke akun user yang terhubung,
// dalam satu transaksi, supaya kontak login tidak ketinggalan.
func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(e).Error; err != nil {
			return err
		}
		return tx.
			Model(&userRow{}).
			Scopes(tenant.Scope(e.CompanyID)).
			Where("employee_id = ?", e.ID).
			Updates(map[string]any{
				"email":        e.EmailID,
				"phone_number": e.PhoneNumber,
			}).Error
	})
}

// DeleteWithRequests menghapus employee sekaligus asset request miliknya
// dalam satu transaksi. Baris penugasan TIDAK disentuh di sini; service
// sudah menolak delete ketika masih ada penugasan.
func (r *repository) DeleteWithRequests(ctx context.Context, companyID, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Scopes(tenant.Scope(companyID)).
			Where("employee_id = ?", id).
			Delete(&assetRequestRow{}).Error; err != nil {
			return err
		}

		res := tx.
			Scopes(tenant.Scope(companyID)).
			Delete(&Employee{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// assetRequestRow dan userRow hanya untuk cascade/sync; entitas lengkapnya
// ada di package assetrequest dan auth.
type assetRequestRow struct{}

func (assetRequestRow) TableName() string {
	return "asset_requests"
}

type userRow struct{}

func (userRow) TableName() string {
	return "users"
}

func (r *repository) ExistsInCompany(ctx context.Context, companyID, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindEmailByID(ctx context.Context, companyID, id uint) (string, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Select("email_id").
		First(&e, "id = ?", id).Error
	if err != nil {
		return "", err
	}
	return e.EmailID, nil
}
