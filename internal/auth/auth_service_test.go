package auth_test

import (
	"context"
	"testing"
	"time"

	"go-assettrack/internal/auth"
	autherrors "go-assettrack/internal/auth/errors"

	authMock "go-assettrack/internal/auth/mock"
	mailerMock "go-assettrack/internal/shared/mailer/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service   auth.Service
	users     *authMock.MockUserRepository
	otps      *authMock.MockOTPRepository
	companies *authMock.MockCompanyChecker
	employees *authMock.MockEmployeeChecker
	mail      *mailerMock.MockMailer
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	users := authMock.NewMockUserRepository(ctrl)
	otps := authMock.NewMockOTPRepository(ctrl)
	companies := authMock.NewMockCompanyChecker(ctrl)
	employees := authMock.NewMockEmployeeChecker(ctrl)
	mail := mailerMock.NewMockMailer(ctrl)

	svc := auth.NewService(users, otps, companies, employees, mail)

	return &serviceDeps{
		service:   svc,
		users:     users,
		otps:      otps,
		companies: companies,
		employees: employees,
		mail:      mail,
	}
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(h)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("first super admin without employee", func(t *testing.T) {
		deps := setupServiceTest(t)

		req := auth.RegisterRequest{
			Username:  "owner",
			Email:     "owner@example.com",
			Password:  "rahasia-123",
			CompanyID: 1,
			RoleID:    1,
		}

		deps.companies.EXPECT().Exists(ctx, uint(1)).Return(true, nil)
		deps.users.EXPECT().CountByRole(ctx, uint(1), uint(1)).Return(int64(0), nil)
		deps.users.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, u *auth.User) error {
				assert.Equal(t, uint(0), u.EmployeeID)
				assert.NotEqual(t, req.Password, u.PasswordHash)
				u.ID = 5
				return nil
			})

		resp, err := deps.service.Register(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, uint(5), resp.UserID)
	})

	t.Run("omitted role defaults to super admin", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.companies.EXPECT().Exists(ctx, uint(1)).Return(true, nil)
		deps.users.EXPECT().CountByRole(ctx, uint(1), uint(1)).Return(int64(0), nil)
		deps.users.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, u *auth.User) error {
				assert.Equal(t, uint(1), u.RoleID)
				return nil
			})

		resp, err := deps.service.Register(ctx, auth.RegisterRequest{
			Username:  "owner",
			Email:     "owner@example.com",
			Password:  "rahasia-123",
			CompanyID: 1,
		})

		assert.NoError(t, err)
		assert.Equal(t, uint(1), resp.RoleID)
	})

	t.Run("second super admin refused", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.companies.EXPECT().Exists(ctx, uint(1)).Return(true, nil)
		deps.users.EXPECT().CountByRole(ctx, uint(1), uint(1)).Return(int64(1), nil)

		_, err := deps.service.Register(ctx, auth.RegisterRequest{
			Username:  "owner2",
			Email:     "owner2@example.com",
			Password:  "rahasia-123",
			CompanyID: 1,
			RoleID:    1,
		})

		assert.ErrorIs(t, err, autherrors.ErrSuperAdminAlreadyExists)
	})

	t.Run("one account per employee", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.companies.EXPECT().Exists(ctx, uint(1)).Return(true, nil)
		deps.employees.EXPECT().ExistsInCompany(ctx, uint(1), uint(10)).Return(true, nil)
		deps.users.EXPECT().CountByEmployee(ctx, uint(1), uint(10)).Return(int64(1), nil)

		_, err := deps.service.Register(ctx, auth.RegisterRequest{
			Username:   "budi",
			Email:      "budi@example.com",
			Password:   "rahasia-123",
			CompanyID:  1,
			EmployeeID: 10,
			RoleID:     3,
		})

		assert.ErrorIs(t, err, autherrors.ErrEmployeeAlreadyHasAccount)
	})

	t.Run("unknown role id", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Register(ctx, auth.RegisterRequest{
			Username:  "budi",
			Email:     "budi@example.com",
			Password:  "rahasia-123",
			CompanyID: 1,
			RoleID:    9,
		})

		assert.ErrorIs(t, err, autherrors.ErrUnknownRole)
	})

	t.Run("company missing", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.companies.EXPECT().Exists(ctx, uint(99)).Return(false, nil)

		_, err := deps.service.Register(ctx, auth.RegisterRequest{
			Username:  "budi",
			Email:     "budi@example.com",
			Password:  "rahasia-123",
			CompanyID: 99,
			RoleID:    1,
		})

		assert.ErrorIs(t, err, autherrors.ErrCompanyNotFound)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success - sends otp, no token yet", func(t *testing.T) {
		deps := setupServiceTest(t)

		u := &auth.User{
			ID:           5,
			CompanyID:    1,
			Username:     "budi",
			Email:        "budi@example.com",
			PasswordHash: hashOf(t, "rahasia-123"),
		}

		deps.users.EXPECT().FindByEmail(ctx, u.Email).Return(u, nil)
		deps.otps.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, otp *auth.OTP) error {
				assert.Equal(t, u.ID, otp.UserID)
				assert.Len(t, otp.Code, 6)
				assert.Equal(t, auth.OTPPurposeLogin, otp.Purpose)
				assert.True(t, otp.ExpiresAt.After(time.Now()))
				return nil
			})
		deps.mail.EXPECT().
			Send(ctx, u.Email, "Your login code", gomock.Any()).
			Return(nil)

		resp, err := deps.service.Login(ctx, auth.LoginRequest{Email: u.Email, Password: "rahasia-123"})

		assert.NoError(t, err)
		assert.True(t, resp.OTPPending)
	})

	t.Run("wrong password", func(t *testing.T) {
		deps := setupServiceTest(t)

		u := &auth.User{ID: 5, Email: "budi@example.com", PasswordHash: hashOf(t, "rahasia-123")}
		deps.users.EXPECT().FindByEmail(ctx, u.Email).Return(u, nil)

		_, err := deps.service.Login(ctx, auth.LoginRequest{Email: u.Email, Password: "salah"})

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown email indistinguishable from wrong password", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.users.EXPECT().
			FindByEmail(ctx, "ghost@example.com").
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Login(ctx, auth.LoginRequest{Email: "ghost@example.com", Password: "apapun"})

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestAuthService_VerifyOTP(t *testing.T) {
	ctx := context.Background()
	u := &auth.User{ID: 5, CompanyID: 1, EmployeeID: 10, Username: "budi", Email: "budi@example.com", RoleID: 3}

	t.Run("success - marks otp used and issues token", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		deps := setupServiceTest(t)

		deps.users.EXPECT().FindByEmail(ctx, u.Email).Return(u, nil)
		deps.otps.EXPECT().
			FindActive(ctx, u.ID, "123456", auth.OTPPurposeLogin).
			Return(&auth.OTP{ID: 7, UserID: u.ID, Code: "123456", ExpiresAt: time.Now().Add(time.Minute)}, nil)
		deps.otps.EXPECT().MarkUsed(ctx, uint(7)).Return(nil)

		resp, err := deps.service.VerifyOTP(ctx, auth.VerifyOTPRequest{Email: u.Email, Code: "123456"})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "Bearer", resp.TokenType)
	})

	t.Run("expired otp", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.users.EXPECT().FindByEmail(ctx, u.Email).Return(u, nil)
		deps.otps.EXPECT().
			FindActive(ctx, u.ID, "123456", auth.OTPPurposeLogin).
			Return(&auth.OTP{ID: 7, UserID: u.ID, Code: "123456", ExpiresAt: time.Now().Add(-time.Minute)}, nil)

		_, err := deps.service.VerifyOTP(ctx, auth.VerifyOTPRequest{Email: u.Email, Code: "123456"})

		assert.ErrorIs(t, err, autherrors.ErrOTPExpired)
	})

	t.Run("wrong code", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.users.EXPECT().FindByEmail(ctx, u.Email).Return(u, nil)
		deps.otps.EXPECT().
			FindActive(ctx, u.ID, "000000", auth.OTPPurposeLogin).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.VerifyOTP(ctx, auth.VerifyOTPRequest{Email: u.Email, Code: "000000"})

		assert.ErrorIs(t, err, autherrors.ErrOTPInvalid)
	})
}

func TestAuthService_ForgotPassword_SilentOnUnknownEmail(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)

	deps.users.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, gorm.ErrRecordNotFound)

	err := deps.service.ForgotPassword(ctx, auth.ForgotPasswordRequest{Email: "ghost@example.com"})

	assert.NoError(t, err)
}

func TestAuthService_ResetPassword(t *testing.T) {
	ctx := context.Background()
	u := &auth.User{ID: 5, Email: "budi@example.com", PasswordHash: hashOf(t, "lama-12345")}

	deps := setupServiceTest(t)

	deps.users.EXPECT().FindByEmail(ctx, u.Email).Return(u, nil)
	deps.otps.EXPECT().
		FindActive(ctx, u.ID, "123456", auth.OTPPurposePasswordReset).
		Return(&auth.OTP{ID: 7, UserID: u.ID, Code: "123456", ExpiresAt: time.Now().Add(time.Minute)}, nil)
	deps.otps.EXPECT().MarkUsed(ctx, uint(7)).Return(nil)
	deps.users.EXPECT().
		UpdatePassword(ctx, u.ID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, userID uint, hash string) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("baru-12345")))
			return nil
		})

	err := deps.service.ResetPassword(ctx, auth.ResetPasswordRequest{
		Email:       u.Email,
		Code:        "123456",
		NewPassword: "baru-12345",
	})

	assert.NoError(t, err)
}
