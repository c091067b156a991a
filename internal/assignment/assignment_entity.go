package assignment

import "time"

// PhysicalAssignment adalah satu baris ledger. Tidak ada unique constraint
// pada (asset_id, employee_id); satu employee boleh memegang beberapa unit
// dari asset yang sama.
type PhysicalAssignment struct {
	ID           uint
	CompanyID    uint
	AssetID      uint
	EmployeeID   uint
	AssignedDate time.Time
}

// SoftwareAssignment berkunci komposit; satu lisensi per employee.
type SoftwareAssignment struct {
	CompanyID       uint
	SoftwareAssetID uint
	EmployeeID      uint
	AssignedDate    time.Time
}

// PhysicalAssignmentView is a read-only projection joined with asset and
// employee names. It is never written back.
type PhysicalAssignmentView struct {
	ID           uint
	AssetID      uint
	AssetTag     string
	AssetName    string
	EmployeeID   uint
	EmployeeName string
	AssignedDate time.Time
}

type SoftwareAssignmentView struct {
	SoftwareAssetID uint
	SoftwareName    string
	EmployeeID      uint
	EmployeeName    string
	AssignedDate    time.Time
}
