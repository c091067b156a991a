package role

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=role_repo.go -destination=mock/role_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]RoleRecord, error)
	FindByID(ctx context.Context, id uint) (*RoleRecord, error)
	Create(ctx context.Context, rec *RoleRecord) error
	Delete(ctx context.Context, id uint) error
	CountUsers(ctx context.Context, roleID uint) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context) ([]RoleRecord, error) {
	var roles []RoleRecord
	err := r.db.WithContext(ctx).Order("id").Find(&roles).Error
	return roles, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (*RoleRecord, error) {
	var rec RoleRecord
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	return &rec, err
}

func (r *repository) Create(ctx context.Context, rec *RoleRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&RoleRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// userRow hanya untuk hitungan pemakaian; entitas lengkapnya ada di auth.
type userRow struct{}

func (userRow) TableName() string {
	return "users"
}

func (r *repository) CountUsers(ctx context.Context, roleID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&userRow{}).
		Where("role_id = ?", roleID).
		Count(&count).Error
	return count, err
}
