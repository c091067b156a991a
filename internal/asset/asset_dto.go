package asset

type CreateAssetRequest struct {
	AssetName    string `json:"asset_name" binding:"required"`
	Type         string `json:"type" binding:"required"`
	Description  string `json:"description"`
	PurchaseCost int    `json:"purchase_cost" binding:"gte=0"`
	PurchaseDate string `json:"purchase_date" binding:"required"`
	Department   string `json:"department"`
	Location     string `json:"location"`
	Condition    string `json:"condition"`
	AssetTag     string `json:"asset_tag"`
	Quantity     int    `json:"quantity" binding:"gte=0"`
}

type UpdateAssetRequest struct {
	AssetName    string `json:"asset_name" binding:"required"`
	Type         string `json:"type" binding:"required"`
	Description  string `json:"description"`
	PurchaseCost int    `json:"purchase_cost" binding:"gte=0"`
	PurchaseDate string `json:"purchase_date" binding:"required"`
	Department   string `json:"department"`
	Location     string `json:"location"`
	Condition    string `json:"condition"`
	Quantity     int    `json:"quantity" binding:"gte=0"`
}

type AssetResponse struct {
	ID           uint   `json:"id"`
	AssetTag     string `json:"asset_tag"`
	AssetName    string `json:"asset_name"`
	Type         string `json:"type"`
	Description  string `json:"description,omitempty"`
	PurchaseCost int    `json:"purchase_cost"`
	PurchaseDate string `json:"purchase_date"`
	Department   string `json:"department,omitempty"`
	Location     string `json:"location,omitempty"`
	Condition    string `json:"condition,omitempty"`
	Status       string `json:"status"`
	Quantity     int    `json:"quantity"`
	CompanyID    uint   `json:"company_id"`
}
