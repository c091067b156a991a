package asset

import "time"

const (
	StatusAvailable   = "Available"
	StatusUnavailable = "Unavailable"
)

// DeriveStatus is the single source of truth for availability: a caller can
// never set the status directly, it always follows the quantity.
func DeriveStatus(quantity int) string {
	if quantity == 0 {
		return StatusUnavailable
	}
	return StatusAvailable
}

type PhysicalAsset struct {
	ID           uint `gorm:"primaryKey"`
	CompanyID    uint `gorm:"index"`
	AssetTag     string
	AssetName    string
	Type         string
	Description  string
	PurchaseCost int
	PurchaseDate time.Time
	Department   string
	Location     string
	Condition    string
	Status       string
	Quantity     int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (PhysicalAsset) TableName() string {
	return "physical_assets"
}
