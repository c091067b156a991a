package employee

import "time"

type Employee struct {
	ID           uint `gorm:"primaryKey"`
	CompanyID    uint `gorm:"index"`
	EmployeeName string
	Dept         string
	// RoleLabel is free-text classification; authorization only ever looks at
	// the account's numeric role, never at this string.
	RoleLabel   string
	JoinDate    time.Time
	Salary      *float64
	PhoneNumber *string
	EmailID     string
	RoleID      uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Employee) TableName() string {
	return "employees"
}
