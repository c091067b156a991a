package auth

import "time"

// User adalah akun login. EmployeeID 0 hanya untuk akun Super Admin pertama
// yang dibuat sebelum ada record employee.
type User struct {
	ID           uint `gorm:"primaryKey"`
	CompanyID    uint `gorm:"index"`
	EmployeeID   uint
	Username     string
	Email        string
	PhoneNumber  string
	PasswordHash string
	RoleID       uint
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string {
	return "users"
}

const (
	OTPPurposeLogin         = "login"
	OTPPurposePasswordReset = "password_reset"
)

type OTP struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"index"`
	Code      string
	Purpose   string
	ExpiresAt time.Time
	IsUsed    bool
	CreatedAt time.Time
}

func (OTP) TableName() string {
	return "otps"
}
