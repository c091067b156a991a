package assetrequest

type CreateAssetRequestRequest struct {
	AssetName string `json:"assetName" binding:"required,min=2,max=200"`
}

type AssetRequestResponse struct {
	ID            uint   `json:"id"`
	EmployeeID    uint   `json:"employeeId"`
	EmployeeName  string `json:"employeeName,omitempty"`
	AssetID       *uint  `json:"assetId,omitempty"`
	AssetName     string `json:"assetName"`
	Status        string `json:"status"`
	RequestedDate string `json:"requestedDate"`
	ApprovalDate  string `json:"approvalDate,omitempty"`
}
