package assetrequest

import "time"

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

type AssetRequest struct {
	ID         uint `gorm:"primaryKey"`
	CompanyID  uint `gorm:"index"`
	EmployeeID uint
	// AssetID nil berarti karyawan meminta barang yang belum ada di
	// inventaris; AssetName yang jadi pegangan.
	AssetID       *uint
	AssetName     string
	Status        string
	RequestedDate time.Time
	ApprovalDate  *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (AssetRequest) TableName() string {
	return "asset_requests"
}
