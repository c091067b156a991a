package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"time"

	autherrors "go-assettrack/internal/auth/errors"
	"go-assettrack/internal/shared/apperror"
	"go-assettrack/internal/shared/contextutil"
	"go-assettrack/internal/shared/mailer"
	"go-assettrack/internal/tenant"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	otpTTL   = 5 * time.Minute
	tokenTTL = 24 * time.Hour
)

// CompanyChecker dan EmployeeChecker dipenuhi oleh repo package lain saat
// wiring; auth tidak import company maupun employee.
type CompanyChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

type EmployeeChecker interface {
	ExistsInCompany(ctx context.Context, companyID, id uint) (bool, error)
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	VerifyOTP(ctx context.Context, req VerifyOTPRequest) (TokenResponse, error)
	ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
}

type service struct {
	users     UserRepository
	otps      OTPRepository
	companies CompanyChecker
	employees EmployeeChecker
	mail      mailer.Mailer
	logger    *zap.Logger
}

func NewService(
	users UserRepository,
	otps OTPRepository,
	companies CompanyChecker,
	employees EmployeeChecker,
	mail mailer.Mailer,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		users:     users,
		otps:      otps,
		companies: companies,
		employees: employees,
		mail:      mail,
		logger:    l,
	}
}

// Register menegakkan dua aturan unik: satu akun per employee, dan satu
// Super Admin per perusahaan. Akun Super Admin pertama boleh tanpa employee.
func (s *service) Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("register requested",
		zap.String("request_id", rid),
		zap.String("username", req.Username),
		zap.Uint("company_id", req.CompanyID),
		zap.Uint("role_id", req.RoleID),
	)

	// Registrasi pertama boleh tanpa role dan tanpa employee; akun itu
	// otomatis Super Admin.
	if req.RoleID == 0 && req.EmployeeID == 0 {
		req.RoleID = uint(tenant.RoleSuperAdmin)
	}

	role, ok := tenant.ParseRole(int64(req.RoleID))
	if !ok {
		return RegisterResponse{}, autherrors.ErrUnknownRole
	}

	exists, err := s.companies.Exists(ctx, req.CompanyID)
	if err != nil {
		return RegisterResponse{}, mapError(err)
	}
	if !exists {
		return RegisterResponse{}, autherrors.ErrCompanyNotFound
	}

	if role == tenant.RoleSuperAdmin {
		count, err := s.users.CountByRole(ctx, req.CompanyID, uint(tenant.RoleSuperAdmin))
		if err != nil {
			return RegisterResponse{}, mapError(err)
		}
		if count > 0 {
			return RegisterResponse{}, autherrors.ErrSuperAdminAlreadyExists
		}
	} else {
		if req.EmployeeID == 0 {
			return RegisterResponse{}, apperror.RequiredField("employeeId")
		}
		exists, err := s.employees.ExistsInCompany(ctx, req.CompanyID, req.EmployeeID)
		if err != nil {
			return RegisterResponse{}, mapError(err)
		}
		if !exists {
			return RegisterResponse{}, autherrors.ErrEmployeeNotFound
		}
		count, err := s.users.CountByEmployee(ctx, req.CompanyID, req.EmployeeID)
		if err != nil {
			return RegisterResponse{}, mapError(err)
		}
		if count > 0 {
			return RegisterResponse{}, autherrors.ErrEmployeeAlreadyHasAccount
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return RegisterResponse{}, mapError(err)
	}

	u := &User{
		CompanyID:    req.CompanyID,
		EmployeeID:   req.EmployeeID,
		Username:     req.Username,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: string(hash),
		RoleID:       req.RoleID,
	}

	if err := s.users.Create(ctx, u); err != nil {
		s.logger.Error("register persist failed", zap.Error(err))
		return RegisterResponse{}, mapError(err)
	}

	s.logger.Info("register success",
		zap.String("request_id", rid),
		zap.Uint("user_id", u.ID),
	)

	return RegisterResponse{
		UserID:   u.ID,
		Username: u.Username,
		Email:    u.Email,
		RoleID:   u.RoleID,
	}, nil
}

// Login memeriksa password lalu mengirim OTP; token belum keluar di sini.
func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	u, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Respon sama dengan password salah supaya keberadaan email tidak bocor
			return LoginResponse{}, autherrors.ErrInvalidCredentials
		}
		return LoginResponse{}, mapError(err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		s.logger.Warn("login wrong password", zap.Uint("user_id", u.ID))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := s.issueOTP(ctx, u, OTPPurposeLogin, "Your login code"); err != nil {
		return LoginResponse{}, mapError(err)
	}

	s.logger.Info("login otp issued", zap.Uint("user_id", u.ID))
	return LoginResponse{
		Message:    "OTP sent to registered email",
		OTPPending: true,
	}, nil
}

func (s *service) VerifyOTP(ctx context.Context, req VerifyOTPRequest) (TokenResponse, error) {
	u, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TokenResponse{}, autherrors.ErrOTPInvalid
		}
		return TokenResponse{}, mapError(err)
	}

	otp, err := s.otps.FindActive(ctx, u.ID, req.Code, OTPPurposeLogin)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TokenResponse{}, autherrors.ErrOTPInvalid
		}
		return TokenResponse{}, mapError(err)
	}
	if time.Now().After(otp.ExpiresAt) {
		return TokenResponse{}, autherrors.ErrOTPExpired
	}

	if err := s.otps.MarkUsed(ctx, otp.ID); err != nil {
		return TokenResponse{}, mapError(err)
	}

	token, err := issueToken(u)
	if err != nil {
		s.logger.Error("token signing failed", zap.Error(err))
		return TokenResponse{}, mapError(err)
	}

	s.logger.Info("otp verified, token issued", zap.Uint("user_id", u.ID))
	return TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(tokenTTL.Seconds()),
	}, nil
}

func (s *service) ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error {
	u, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Tetap 200; keberadaan email tidak dibocorkan
			s.logger.Info("forgot password for unknown email")
			return nil
		}
		return mapError(err)
	}

	if err := s.issueOTP(ctx, u, OTPPurposePasswordReset, "Your password reset code"); err != nil {
		return mapError(err)
	}

	s.logger.Info("password reset otp issued", zap.Uint("user_id", u.ID))
	return nil
}

func (s *service) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	u, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return autherrors.ErrOTPInvalid
		}
		return mapError(err)
	}

	otp, err := s.otps.FindActive(ctx, u.ID, req.Code, OTPPurposePasswordReset)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return autherrors.ErrOTPInvalid
		}
		return mapError(err)
	}
	if time.Now().After(otp.ExpiresAt) {
		return autherrors.ErrOTPExpired
	}

	if err := s.otps.MarkUsed(ctx, otp.ID); err != nil {
		return mapError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return mapError(err)
	}

	if err := s.users.UpdatePassword(ctx, u.ID, string(hash)); err != nil {
		return mapError(err)
	}

	s.logger.Info("password reset success", zap.Uint("user_id", u.ID))
	return nil
}

func (s *service) issueOTP(ctx context.Context, u *User, purpose, subject string) error {
	code, err := generateOTPCode()
	if err != nil {
		return err
	}

	otp := &OTP{
		UserID:    u.ID,
		Code:      code,
		Purpose:   purpose,
		ExpiresAt: time.Now().Add(otpTTL),
	}
	if err := s.otps.Create(ctx, otp); err != nil {
		return err
	}

	body := fmt.Sprintf("Hi %s,\n\nYour verification code is %s. It expires in 5 minutes.", u.Username, code)
	if err := s.mail.Send(ctx, u.Email, subject, body); err != nil {
		s.logger.Error("otp mail send failed", zap.Uint("user_id", u.ID), zap.Error(err))
		return err
	}
	return nil
}

func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func issueToken(u *User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"username":    u.Username,
		"email":       u.Email,
		"user_id":     u.ID,
		"employee_id": u.EmployeeID,
		"role_id":     u.RoleID,
		"company_id":  u.CompanyID,
		"iat":         now.Unix(),
		"exp":         now.Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func mapError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return autherrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_users_username":
			return autherrors.ErrUsernameAlreadyExists
		default:
			return autherrors.ErrEmailAlreadyExists
		}
	}

	return apperror.Wrap(err, apperror.CodeDependencyFailure, apperror.ErrDependencyFailure.Message, apperror.ErrDependencyFailure.HTTPStatus)
}
