package employee

type CreateEmployeeRequest struct {
	EmployeeName string   `json:"employeeName" binding:"required,min=2,max=100"`
	Dept         string   `json:"dept" binding:"required,max=100"`
	RoleLabel    string   `json:"role" binding:"required,max=100"`
	JoinDate     string   `json:"joinDate" binding:"required"`
	Salary       *float64 `json:"salary" binding:"omitempty,gte=0"`
	PhoneNumber  *string  `json:"phoneNumber" binding:"omitempty,max=20"`
	EmailID      string   `json:"emailId" binding:"required,email"`
	RoleID       uint     `json:"roleId" binding:"required"`
}

type UpdateEmployeeRequest struct {
	EmployeeName string   `json:"employeeName" binding:"required,min=2,max=100"`
	Dept         string   `json:"dept" binding:"required,max=100"`
	RoleLabel    string   `json:"role" binding:"required,max=100"`
	JoinDate     string   `json:"joinDate" binding:"required"`
	Salary       *float64 `json:"salary" binding:"omitempty,gte=0"`
	PhoneNumber  *string  `json:"phoneNumber" binding:"omitempty,max=20"`
	EmailID      string   `json:"emailId" binding:"required,email"`
	RoleID       uint     `json:"roleId" binding:"required"`
}

// EmployeeResponse omits salary/phoneNumber entirely ketika caller tidak
// berhak melihat field sensitif.
type EmployeeResponse struct {
	ID           uint     `json:"id"`
	EmployeeName string   `json:"employeeName"`
	Dept         string   `json:"dept"`
	RoleLabel    string   `json:"role"`
	JoinDate     string   `json:"joinDate"`
	Salary       *float64 `json:"salary,omitempty"`
	PhoneNumber  *string  `json:"phoneNumber,omitempty"`
	EmailID      string   `json:"emailId"`
	RoleID       uint     `json:"roleId"`
}

type EmployeeOptionResponse struct {
	ID           uint   `json:"id"`
	EmployeeName string `json:"employeeName"`
}
