package transaction

import "time"

// Transaction mencatat pembelian asset oleh employee. Baris hanya ditulis
// lewat Record, tidak pernah diubah atau dihapus.
type Transaction struct {
	ID              uint `gorm:"primaryKey"`
	CompanyID       uint `gorm:"index"`
	EmployeeID      uint
	AssetID         uint
	PurchasePrice   float64
	PaymentMethod   string
	TransactionDate time.Time
	CreatedAt       time.Time
}

func (Transaction) TableName() string {
	return "transactions"
}

type RecordTransactionRequest struct {
	EmployeeID      uint    `json:"employeeId" binding:"required"`
	AssetID         uint    `json:"assetId" binding:"required"`
	PurchasePrice   float64 `json:"purchasePrice" binding:"required,gt=0"`
	PaymentMethod   string  `json:"paymentMethod" binding:"required,max=50"`
	TransactionDate string  `json:"transactionDate" binding:"omitempty"`
}

type TransactionResponse struct {
	ID              uint    `json:"id"`
	EmployeeID      uint    `json:"employeeId"`
	AssetID         uint    `json:"assetId"`
	PurchasePrice   float64 `json:"purchasePrice"`
	PaymentMethod   string  `json:"paymentMethod"`
	TransactionDate string  `json:"transactionDate"`
}
