package software

type CreateSoftwareRequest struct {
	SoftwareName     string `json:"software_name" binding:"required"`
	SubscriptionCost int    `json:"subscription_cost" binding:"gte=0"`
	StartDate        string `json:"start_date" binding:"required"`
	EndDate          string `json:"end_date" binding:"required"`
	Vendor           string `json:"vendor"`
	LicenseType      string `json:"license_type"`
	Apps             string `json:"apps"`
}

type UpdateSoftwareRequest struct {
	SoftwareName     string `json:"software_name" binding:"required"`
	SubscriptionCost int    `json:"subscription_cost" binding:"gte=0"`
	StartDate        string `json:"start_date" binding:"required"`
	EndDate          string `json:"end_date" binding:"required"`
	Vendor           string `json:"vendor"`
	LicenseType      string `json:"license_type"`
	Apps             string `json:"apps"`
}

type SoftwareResponse struct {
	ID               uint   `json:"id"`
	SoftwareName     string `json:"software_name"`
	SubscriptionCost int    `json:"subscription_cost"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	Vendor           string `json:"vendor,omitempty"`
	LicenseType      string `json:"license_type,omitempty"`
	Apps             string `json:"apps,omitempty"`
	CompanyID        uint   `json:"company_id"`
}
