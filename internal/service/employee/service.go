package employee

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/deeraj1899/EMS/internal/domain/attendance"
	"github.com/deeraj1899/EMS/internal/domain/employee"
	"github.com/deeraj1899/EMS/internal/domain/leave"
	"github.com/deeraj1899/EMS/internal/domain/organization"
	"github.com/deeraj1899/EMS/internal/domain/work"
	"github.com/deeraj1899/EMS/internal/pkg/database"
	"github.com/deeraj1899/EMS/internal/pkg/email"
	"github.com/deeraj1899/EMS/internal/pkg/random"
	"github.com/deeraj1899/EMS/internal/repository/postgresql"
)

const adminCodeDigits = 5

type service struct {
	employeeRepo   employee.Repository
	deptRepo       organization.DepartmentRepository
	orgRepo        organization.Repository
	ledgerRepo     leave.LedgerRepository
	attendanceRepo attendance.Repository
	workRepo       work.Repository
	submissionRepo work.SubmissionRepository
	emailSvc       email.EmailService
	runTx          func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewService(
	employeeRepo employee.Repository,
	deptRepo organization.DepartmentRepository,
	orgRepo organization.Repository,
	ledgerRepo leave.LedgerRepository,
	attendanceRepo attendance.Repository,
	workRepo work.Repository,
	submissionRepo work.SubmissionRepository,
	emailSvc email.EmailService,
	db *database.DB,
) employee.Service {
	return &service{
		employeeRepo:   employeeRepo,
		deptRepo:       deptRepo,
		orgRepo:        orgRepo,
		ledgerRepo:     ledgerRepo,
		attendanceRepo: attendanceRepo,
		workRepo:       workRepo,
		submissionRepo: submissionRepo,
		emailSvc:       emailSvc,
		runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// Add implements employee.Service.
func (s *service) Add(ctx context.Context, req employee.AddEmployeeRequest) (employee.Response, error) {
	if err := req.Validate(); err != nil {
		return employee.Response{}, err
	}

	org, err := s.orgRepo.GetByID(ctx, req.OrganizationID)
	if err != nil {
		return employee.Response{}, err
	}

	dept, err := s.deptRepo.GetByID(ctx, req.DepartmentID, req.OrganizationID)
	if err != nil {
		return employee.Response{}, err
	}

	if _, err := s.employeeRepo.GetByMail(ctx, req.OrganizationID, req.Mail); err == nil {
		return employee.Response{}, employee.ErrMailExists
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.Response{}, err
	}

	role, _ := employee.ParseRole(req.Role)

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.Response{}, err
	}

	newEmployee := employee.Employee{
		OrganizationID:  req.OrganizationID,
		DepartmentID:    req.DepartmentID,
		Name:            req.Name,
		Mail:            req.Mail,
		PasswordHash:    string(hash),
		Age:             req.Age,
		Role:            role,
		Rating:          req.Rating,
		ProjectsPending: req.ProjectsPending,
	}
	if role == employee.RoleManager || role == employee.RoleAdmin {
		code, err := random.NumericCode(adminCodeDigits)
		if err != nil {
			return employee.Response{}, err
		}
		newEmployee.AdminCode = &code
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		return employee.Response{}, err
	}
	created.DepartmentName = &dept.Name

	if err := s.emailSvc.SendEmployeeCredentials(req.Mail, req.Name, org.Name, req.Password); err != nil {
		slog.Error("Failed to send employee credentials", "employee", created.ID, "error", err)
	}

	return employee.ToResponse(created), nil
}

// GetDetails implements employee.Service.
func (s *service) GetDetails(ctx context.Context, employeeID string) (employee.Response, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return employee.Response{}, err
	}
	return employee.ToResponse(emp), nil
}

// ListByOrganization implements employee.Service.
func (s *service) ListByOrganization(ctx context.Context, organizationID string) ([]employee.Response, error) {
	employees, err := s.employeeRepo.ListByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	out := make([]employee.Response, 0, len(employees))
	for _, emp := range employees {
		out = append(out, employee.ToResponse(emp))
	}
	return out, nil
}

// ListDepartmentColleagues implements employee.Service.
func (s *service) ListDepartmentColleagues(ctx context.Context, managerID string) ([]employee.Response, error) {
	manager, err := s.employeeRepo.GetByID(ctx, managerID)
	if err != nil {
		return nil, err
	}
	if manager.Role != employee.RoleManager && manager.Role != employee.RoleAdmin {
		return nil, employee.ErrManagerOnly
	}

	employees, err := s.employeeRepo.ListByDepartment(ctx, manager.DepartmentID)
	if err != nil {
		return nil, err
	}

	out := make([]employee.Response, 0, len(employees))
	for _, emp := range employees {
		if emp.ID == managerID {
			continue
		}
		out = append(out, employee.ToResponse(emp))
	}
	return out, nil
}

// Delete implements employee.Service. The employee's dependent records
// go in the same transaction.
func (s *service) Delete(ctx context.Context, employeeID, organizationID string) error {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return err
	}
	if emp.OrganizationID != organizationID {
		return employee.ErrEmployeeNotFound
	}

	return s.runTx(ctx, func(txCtx context.Context) error {
		ids := []string{employeeID}
		if err := s.attendanceRepo.DeleteByEmployeeIDs(txCtx, ids); err != nil {
			return err
		}
		if err := s.ledgerRepo.DeleteByEmployeeIDs(txCtx, ids); err != nil {
			return err
		}
		if err := s.submissionRepo.DeleteByEmployeeIDs(txCtx, ids); err != nil {
			return err
		}
		if err := s.workRepo.DeleteByEmployeeIDs(txCtx, ids); err != nil {
			return err
		}
		return s.employeeRepo.Delete(txCtx, employeeID, organizationID)
	})
}

// Promote implements employee.Service. Promotion mints a fresh admin
// code and mails it to the employee.
func (s *service) Promote(ctx context.Context, employeeID string) error {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return err
	}

	code, err := random.NumericCode(adminCodeDigits)
	if err != nil {
		return err
	}

	if err := s.employeeRepo.Promote(ctx, employeeID, employee.RoleManager, code); err != nil {
		return err
	}

	if err := s.emailSvc.SendPromotionCode(emp.Mail, emp.Name, code); err != nil {
		slog.Error("Failed to send promotion code", "employee", employeeID, "error", err)
	}
	return nil
}

// UpdateProfilePhoto implements employee.Service.
func (s *service) UpdateProfilePhoto(ctx context.Context, employeeID, photoURL string) error {
	return s.employeeRepo.UpdateProfilePhoto(ctx, employeeID, photoURL)
}
