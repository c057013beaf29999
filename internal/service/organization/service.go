package organization

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

const (
	passwordDigits  = 6
	adminCodeDigits = 5
)

type service struct {
	orgRepo        organization.Repository
	deptRepo       organization.DepartmentRepository
	employeeRepo   employee.Repository
	ledgerRepo     leave.LedgerRepository
	attendanceRepo attendance.Repository
	workRepo       work.Repository
	submissionRepo work.SubmissionRepository
	reviewRepo     work.ReviewRepository
	emailSvc       email.EmailService
	runTx          func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewService(
	orgRepo organization.Repository,
	deptRepo organization.DepartmentRepository,
	employeeRepo employee.Repository,
	ledgerRepo leave.LedgerRepository,
	attendanceRepo attendance.Repository,
	workRepo work.Repository,
	submissionRepo work.SubmissionRepository,
	reviewRepo work.ReviewRepository,
	emailSvc email.EmailService,
	db *database.DB,
) organization.Service {
	return &service{
		orgRepo:        orgRepo,
		deptRepo:       deptRepo,
		employeeRepo:   employeeRepo,
		ledgerRepo:     ledgerRepo,
		attendanceRepo: attendanceRepo,
		workRepo:       workRepo,
		submissionRepo: submissionRepo,
		reviewRepo:     reviewRepo,
		emailSvc:       emailSvc,
		runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// Register implements organization.Service.
func (s *service) Register(ctx context.Context, req organization.RegisterRequest) (organization.Response, error) {
	if err := req.Validate(); err != nil {
		return organization.Response{}, err
	}

	adminDeptListed := false
	for _, name := range req.Departments {
		if name == req.AdminDepartment {
			adminDeptListed = true
			break
		}
	}
	if !adminDeptListed {
		return organization.Response{}, organization.ErrAdminDeptNotListed
	}

	if _, err := s.orgRepo.GetByMail(ctx, req.Mail); err == nil {
		return organization.Response{}, organization.ErrMailExists
	} else if !errors.Is(err, organization.ErrOrganizationNotFound) {
		return organization.Response{}, err
	}

	password, err := random.NumericCode(passwordDigits)
	if err != nil {
		return organization.Response{}, err
	}
	adminCode, err := random.NumericCode(adminCodeDigits)
	if err != nil {
		return organization.Response{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return organization.Response{}, err
	}

	var created organization.Organization
	err = s.runTx(ctx, func(txCtx context.Context) error {
		created, err = s.orgRepo.Create(txCtx, organization.Organization{
			Name:           req.Name,
			Mail:           req.Mail,
			AdminName:      req.AdminName,
			LogoURL:        req.LogoURL,
			Price:          req.Price,
			DurationMonths: req.DurationMonths,
		})
		if err != nil {
			return err
		}

		var adminDeptID string
		for _, name := range req.Departments {
			dept, err := s.deptRepo.Create(txCtx, organization.Department{
				OrganizationID: created.ID,
				Name:           name,
			})
			if err != nil {
				return err
			}
			if name == req.AdminDepartment {
				adminDeptID = dept.ID
			}
		}

		code := adminCode
		_, err = s.employeeRepo.Create(txCtx, employee.Employee{
			OrganizationID: created.ID,
			DepartmentID:   adminDeptID,
			Name:           req.AdminName,
			Mail:           req.Mail,
			PasswordHash:   string(hash),
			Role:           employee.RoleAdmin,
			AdminCode:      &code,
		})
		return err
	})
	if err != nil {
		return organization.Response{}, err
	}

	// Credential mail failures are logged, not surfaced; the
	// organization is already registered.
	if err := s.emailSvc.SendAdminCredentials(req.Mail, req.AdminName, req.Name, password, adminCode); err != nil {
		slog.Error("Failed to send admin credentials", "organization", created.ID, "error", err)
	}

	return organization.ToResponse(created), nil
}

// List implements organization.Service.
func (s *service) List(ctx context.Context) ([]organization.Response, error) {
	orgs, err := s.orgRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]organization.Response, 0, len(orgs))
	for _, org := range orgs {
		out = append(out, organization.ToResponse(org))
	}
	return out, nil
}

// ListDepartments implements organization.Service.
func (s *service) ListDepartments(ctx context.Context, organizationID string) ([]organization.DepartmentResponse, error) {
	if _, err := s.orgRepo.GetByID(ctx, organizationID); err != nil {
		return nil, err
	}

	depts, err := s.deptRepo.ListByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	out := make([]organization.DepartmentResponse, 0, len(depts))
	for _, dept := range depts {
		out = append(out, organization.DepartmentResponse{ID: dept.ID, Name: dept.Name})
	}
	return out, nil
}

// Delete implements organization.Service. Dependents go first so a
// failure midway never leaves orphans pointing at a missing
// organization.
func (s *service) Delete(ctx context.Context, organizationID string) error {
	if _, err := s.orgRepo.GetByID(ctx, organizationID); err != nil {
		return err
	}

	return s.runTx(ctx, func(txCtx context.Context) error {
		employeeIDs, err := s.employeeRepo.ListIDsByOrganization(txCtx, organizationID)
		if err != nil {
			return err
		}

		if err := s.attendanceRepo.DeleteByEmployeeIDs(txCtx, employeeIDs); err != nil {
			return err
		}
		if err := s.ledgerRepo.DeleteByEmployeeIDs(txCtx, employeeIDs); err != nil {
			return err
		}
		if err := s.reviewRepo.DeleteByOrganization(txCtx, organizationID); err != nil {
			return err
		}
		if err := s.submissionRepo.DeleteByEmployeeIDs(txCtx, employeeIDs); err != nil {
			return err
		}
		if err := s.workRepo.DeleteByEmployeeIDs(txCtx, employeeIDs); err != nil {
			return err
		}
		if err := s.employeeRepo.DeleteByOrganization(txCtx, organizationID); err != nil {
			return err
		}
		if err := s.deptRepo.DeleteByOrganization(txCtx, organizationID); err != nil {
			return err
		}
		return s.orgRepo.Delete(txCtx, organizationID)
	})
}
