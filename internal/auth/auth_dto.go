package auth

type RegisterRequest struct {
	Username    string `json:"username" binding:"required,min=3,max=50"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"omitempty,max=20"`
	Password    string `json:"password" binding:"required,min=8,max=72"`
	CompanyID   uint   `json:"companyId" binding:"required"`
	EmployeeID  uint   `json:"employeeId" binding:"omitempty"`
	RoleID      uint   `json:"roleId" binding:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required,len=6"`
	NewPassword string `json:"newPassword" binding:"required,min=8,max=72"`
}

type RegisterResponse struct {
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	RoleID   uint   `json:"roleId"`
}

// LoginResponse tidak pernah membawa token; token baru keluar setelah OTP
// terverifikasi.
type LoginResponse struct {
	Message    string `json:"message"`
	OTPPending bool   `json:"otpPending"`
}

type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"`
}
