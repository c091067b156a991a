package role

// RoleRecord adalah katalog global, bukan data tenant. Angka 1, 2, 3 dipakai
// langsung oleh tabel permission; katalog ini hanya untuk tampilan.
type RoleRecord struct {
	ID              uint `gorm:"primaryKey"`
	RoleName        string
	RoleDescription string
}

func (RoleRecord) TableName() string {
	return "roles"
}

type CreateRoleRequest struct {
	RoleName        string `json:"roleName" binding:"required,min=2,max=50"`
	RoleDescription string `json:"roleDescription" binding:"omitempty,max=200"`
}

type RoleResponse struct {
	ID              uint   `json:"id"`
	RoleName        string `json:"roleName"`
	RoleDescription string `json:"roleDescription,omitempty"`
}
