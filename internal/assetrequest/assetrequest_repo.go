package assetrequest

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-assettrack/internal/tenant"

	"gorm.io/gorm"
)

// errAlreadyResolved keluar dari guard update ketika baris sudah tidak
// Pending lagi; service menerjemahkannya ke Conflict.
var errAlreadyResolved = errors.New("asset request already resolved")

// RequestView adalah proyeksi baca dengan nama employee hasil join.
type RequestView struct {
	ID            uint
	EmployeeID    uint
	EmployeeName  string
	AssetID       *uint
	AssetName     string
	Status        string
	RequestedDate time.Time
	ApprovalDate  *time.Time
}

//go:generate mockgen -source=assetrequest_repo.go -destination=mock/assetrequest_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, r *AssetRequest) error
	FindByIDAndCompany(ctx context.Context, companyID, id uint) (*AssetRequest, error)
	FindPending(ctx context.Context, companyID uint) ([]RequestView, error)
	FindHistory(ctx context.Context, companyID uint) ([]RequestView, error)
	FindByEmployee(ctx context.Context, companyID, employeeID uint) ([]RequestView, error)
	ResolveWithOutbox(ctx context.Context, companyID, id, assetID uint, status string, enqueue func(tx *sql.Tx) error) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, req *AssetRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id uint) (*AssetRequest, error) {
	var req AssetRequest
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&req, "id = ?", id).Error
	return &req, err
}

const viewSelect = `asset_requests.id, asset_requests.employee_id, employees.employee_name,
	asset_requests.asset_id, asset_requests.asset_name, asset_requests.status,
	asset_requests.requested_date, asset_requests.approval_date`

func (r *repository) viewQuery(ctx context.Context, companyID uint) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&AssetRequest{}).
		Select(viewSelect).
		Joins("JOIN employees ON employees.id = asset_requests.employee_id AND employees.company_id = asset_requests.company_id").
		Where("asset_requests.company_id = ?", companyID)
}

func (r *repository) FindPending(ctx context.Context, companyID uint) ([]RequestView, error) {
	var views []RequestView
	err := r.viewQuery(ctx, companyID).
		Where("asset_requests.status = ?", StatusPending).
		Order("asset_requests.requested_date ASC").
		Scan(&views).Error
	return views, err
}

func (r *repository) FindHistory(ctx context.Context, companyID uint) ([]RequestView, error) {
	var views []RequestView
	err := r.viewQuery(ctx, companyID).
		Where("asset_requests.status IN ?", []string{StatusApproved, StatusRejected}).
		Order("asset_requests.requested_date DESC").
		Scan(&views).Error
	return views, err
}

func (r *repository) FindByEmployee(ctx context.Context, companyID, employeeID uint) ([]RequestView, error) {
	var views []RequestView
	err := r.viewQuery(ctx, companyID).
		Where("asset_requests.employee_id = ?", employeeID).
		Order("asset_requests.requested_date DESC").
		Scan(&views).Error
	return views, err
}

// ResolveWithOutbox flips a Pending request to its final status, binds the
// audited asset, and writes the outbox row in the same transaction. The
// status guard makes resolution exactly-once even under concurrent approvals.
func (r *repository) ResolveWithOutbox(ctx context.Context, companyID, id, assetID uint, status string, enqueue func(tx *sql.Tx) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&AssetRequest{}).
			Scopes(tenant.Scope(companyID)).
			Where("id = ? AND status = ?", id, StatusPending).
			Updates(map[string]any{
				"status":        status,
				"asset_id":      assetID,
				"approval_date": time.Now().UTC(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errAlreadyResolved
		}

		sqlTx, ok := tx.Statement.ConnPool.(*sql.Tx)
		if !ok {
			return errors.New("transaction connection unavailable for outbox write")
		}
		return enqueue(sqlTx)
	})
}
