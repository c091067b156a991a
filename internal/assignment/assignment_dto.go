package assignment

type AssignPhysicalRequest struct {
	EmployeeID   uint   `json:"employeeId" binding:"required"`
	AssetIDs     []uint `json:"assetIds" binding:"required,min=1,dive,gt=0"`
	AssignedDate string `json:"assignedDate" binding:"omitempty"`
}

type AssignSoftwareRequest struct {
	EmployeeID       uint   `json:"employeeId" binding:"required"`
	SoftwareAssetIDs []uint `json:"softwareIds" binding:"required,min=1,dive,gt=0"`
	AssignedDate     string `json:"assignedDate" binding:"omitempty"`
}

type TransferRequest struct {
	AssetID       uint `json:"assetId" binding:"required"`
	OldEmployeeID uint `json:"oldEmployeeId" binding:"required"`
	NewEmployeeID uint `json:"newEmployeeId" binding:"required"`
}

type PhysicalAssignmentResponse struct {
	ID           uint   `json:"id"`
	AssetID      uint   `json:"assetId"`
	AssetTag     string `json:"assetTag"`
	AssetName    string `json:"assetName"`
	EmployeeID   uint   `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	AssignedDate string `json:"assignedDate"`
}

type SoftwareAssignmentResponse struct {
	SoftwareAssetID uint   `json:"softwareAssetId"`
	SoftwareName    string `json:"softwareName"`
	EmployeeID      uint   `json:"employeeId"`
	EmployeeName    string `json:"employeeName"`
	AssignedDate    string `json:"assignedDate"`
}

type AssignPhysicalResponse struct {
	EmployeeID    uint   `json:"employeeId"`
	AssetIDs      []uint `json:"assetIds"`
	AssignedCount int    `json:"assignedCount"`
}

type TransferResponse struct {
	Message string `json:"message"`
}
