package employee

import (
	"context"
	"time"

	employeeerrors "go-assettrack/internal/employee/errors"
	"go-assettrack/internal/shared/contextutil"
	"go-assettrack/internal/tenant"

	"go.uber.org/zap"
)

// AssignmentChecker dipenuhi oleh assignment.Repository saat wiring.
// Interface lokal supaya employee tidak import package assignment.
type AssignmentChecker interface {
	HasAssignmentsForEmployee(ctx context.Context, companyID, employeeID uint) (bool, error)
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID uint, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, companyID uint) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context, companyID uint) ([]EmployeeOptionResponse, error)
	GetByID(ctx context.Context, companyID, id uint) (EmployeeResponse, error)
	Update(ctx context.Context, companyID, id uint, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, companyID, id uint) error
}

type service struct {
	repo        Repository
	assignments AssignmentChecker
	logger      *zap.Logger
}

func NewService(repo Repository, assignments AssignmentChecker, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:        repo,
		assignments: assignments,
		logger:      l,
	}
}

func (s *service) Create(ctx context.Context, companyID uint, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.Uint("company_id", companyID),
		zap.String("email", req.EmailID),
	)

	joinDate, err := time.Parse("2006-01-02", req.JoinDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidJoinDate
	}

	e := &Employee{
		CompanyID:    companyID,
		EmployeeName: req.EmployeeName,
		Dept:         req.Dept,
		RoleLabel:    req.RoleLabel,
		JoinDate:     joinDate,
		Salary:       req.Salary,
		PhoneNumber:  req.PhoneNumber,
		EmailID:      req.EmailID,
		RoleID:       req.RoleID,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepoError(err)
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Uint("employee_id", e.ID),
	)

	return mapToResponse(*e, sensitiveVisible(ctx)), nil
}

func (s *service) GetAll(ctx context.Context, companyID uint) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepoError(err)
	}

	visible := sensitiveVisible(ctx)
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = mapToResponse(e, visible)
	}
	return res, nil
}

func (s *service) GetOptions(ctx context.Context, companyID uint) ([]EmployeeOptionResponse, error) {
	employees, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	res := make([]EmployeeOptionResponse, len(employees))
	for i, e := range employees {
		res[i] = EmployeeOptionResponse{ID: e.ID, EmployeeName: e.EmployeeName}
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id uint) (EmployeeResponse, error) {
	e, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Error(err))
		return EmployeeResponse{}, mapRepoError(err)
	}

	return mapToResponse(*e, sensitiveVisible(ctx)), nil
}

func (s *service) Update(ctx context.Context, companyID, id uint, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested",
		zap.Uint("company_id", companyID),
		zap.Uint("employee_id", id),
	)

	joinDate, err := time.Parse("2006-01-02", req.JoinDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidJoinDate
	}

	e, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepoError(err)
	}

	e.EmployeeName = req.EmployeeName
	e.Dept = req.Dept
	e.RoleLabel = req.RoleLabel
	e.JoinDate = joinDate
	e.Salary = req.Salary
	e.PhoneNumber = req.PhoneNumber
	e.EmailID = req.EmailID
	e.RoleID = req.RoleID

	if err := s.repo.Update(ctx, e); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepoError(err)
	}

	s.logger.Info("update employee success", zap.Uint("employee_id", id))

	return mapToResponse(*e, sensitiveVisible(ctx)), nil
}

// Delete menolak dengan Conflict selama employee masih memegang penugasan.
// Asset request miliknya ikut terhapus.
func (s *service) Delete(ctx context.Context, companyID, id uint) error {
	s.logger.Debug("delete employee requested",
		zap.Uint("company_id", companyID),
		zap.Uint("employee_id", id),
	)

	if _, err := s.repo.FindByIDAndCompany(ctx, companyID, id); err != nil {
		return mapRepoError(err)
	}

	held, err := s.assignments.HasAssignmentsForEmployee(ctx, companyID, id)
	if err != nil {
		s.logger.Error("delete employee assignment check failed", zap.Error(err))
		return mapRepoError(err)
	}
	if held {
		return employeeerrors.ErrEmployeeHasAssignments
	}

	if err := s.repo.DeleteWithRequests(ctx, companyID, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepoError(err)
	}

	s.logger.Info("delete employee success", zap.Uint("employee_id", id))
	return nil
}

func sensitiveVisible(ctx context.Context) bool {
	p, err := tenant.FromContext(ctx)
	if err != nil {
		return false
	}
	return p.Role.SeesSensitiveFields()
}

func mapToResponse(e Employee, includeSensitive bool) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           e.ID,
		EmployeeName: e.EmployeeName,
		Dept:         e.Dept,
		RoleLabel:    e.RoleLabel,
		JoinDate:     e.JoinDate.Format("2006-01-02"),
		EmailID:      e.EmailID,
		RoleID:       e.RoleID,
	}
	if includeSensitive {
		resp.Salary = e.Salary
		resp.PhoneNumber = e.PhoneNumber
	}
	return resp
}
