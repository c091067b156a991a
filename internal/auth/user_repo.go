package auth

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	CountByEmployee(ctx context.Context, companyID, employeeID uint) (int64, error)
	CountByRole(ctx context.Context, companyID, roleID uint) (int64, error)
	UpdatePassword(ctx context.Context, userID uint, passwordHash string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

// FindByEmail sengaja tanpa scope tenant; email unik lintas perusahaan dan
// login belum tahu company si pemanggil.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error
	return &u, err
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "username = ?", username).Error
	return &u, err
}

func (r *userRepository) CountByEmployee(ctx context.Context, companyID, employeeID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&User{}).
		Where("company_id = ? AND employee_id = ?", companyID, employeeID).
		Count(&count).Error
	return count, err
}

func (r *userRepository) CountByRole(ctx context.Context, companyID, roleID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&User{}).
		Where("company_id = ? AND role_id = ?", companyID, roleID).
		Count(&count).Error
	return count, err
}

func (r *userRepository) UpdatePassword(ctx context.Context, userID uint, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"password_hash": passwordHash,
			"updated_at":    time.Now().UTC(),
		}).Error
}

type OTPRepository interface {
	Create(ctx context.Context, otp *OTP) error
	FindActive(ctx context.Context, userID uint, code, purpose string) (*OTP, error)
	MarkUsed(ctx context.Context, id uint) error
}

type otpRepository struct {
	db *gorm.DB
}

func NewOTPRepository(db *gorm.DB) OTPRepository {
	return &otpRepository{db: db}
}

func (r *otpRepository) Create(ctx context.Context, otp *OTP) error {
	return r.db.WithContext(ctx).Create(otp).Error
}

func (r *otpRepository) FindActive(ctx context.Context, userID uint, code, purpose string) (*OTP, error) {
	var otp OTP
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND code = ? AND purpose = ? AND is_used = false", userID, code, purpose).
		Order("id DESC").
		First(&otp).Error
	return &otp, err
}

func (r *otpRepository) MarkUsed(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&OTP{}).
		Where("id = ?", id).
		Update("is_used", true).Error
}
