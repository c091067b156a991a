package software

import "time"

// SoftwareAsset is a licensed subscription. Licenses are not unit-tracked, so
// there is no quantity or availability status here.
type SoftwareAsset struct {
	ID               uint `gorm:"primaryKey"`
	CompanyID        uint `gorm:"index"`
	SoftwareName     string
	SubscriptionCost int
	StartDate        time.Time
	EndDate          time.Time
	Vendor           string
	LicenseType      string
	Apps             string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (SoftwareAsset) TableName() string {
	return "software_assets"
}
