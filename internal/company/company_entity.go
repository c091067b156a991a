package company

import "time"

// Company adalah akar tenant; tabel ini sendiri tidak di-scope.
type Company struct {
	ID          uint `gorm:"primaryKey"`
	CompanyName string
	Address     string
	Email       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Company) TableName() string {
	return "companies"
}

type CreateCompanyRequest struct {
	CompanyName string `json:"companyName" binding:"required,min=2,max=200"`
	Address     string `json:"address" binding:"omitempty,max=500"`
	Email       string `json:"email" binding:"required,email"`
}

type CompanyResponse struct {
	ID          uint   `json:"id"`
	CompanyName string `json:"companyName"`
	Address     string `json:"address,omitempty"`
	Email       string `json:"email"`
}
