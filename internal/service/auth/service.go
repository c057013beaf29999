package auth

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/deeraj1899/EMS/internal/domain/auth"
	"github.com/deeraj1899/EMS/internal/domain/employee"
	"github.com/deeraj1899/EMS/internal/domain/organization"
	"github.com/deeraj1899/EMS/internal/pkg/email"
	"github.com/deeraj1899/EMS/internal/pkg/jwt"
	"github.com/deeraj1899/EMS/internal/pkg/random"
)

const tempPasswordBytes = 6

type service struct {
	employeeRepo employee.Repository
	orgRepo      organization.Repository
	jwtSvc       jwt.Service
	emailSvc     email.EmailService
}

func NewService(
	employeeRepo employee.Repository,
	orgRepo organization.Repository,
	jwtSvc jwt.Service,
	emailSvc email.EmailService,
) auth.Service {
	return &service{
		employeeRepo: employeeRepo,
		orgRepo:      orgRepo,
		jwtSvc:       jwtSvc,
		emailSvc:     emailSvc,
	}
}

// Login implements auth.Service.
func (s *service) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	org, err := s.orgRepo.GetByName(ctx, req.OrganizationName)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := s.employeeRepo.GetByMail(ctx, org.ID, req.Mail)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, _, err := s.jwtSvc.GenerateToken(emp.ID, org.ID, emp.Role)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		Token:        token,
		Employee:     employee.ToResponse(emp),
		Organization: organization.ToResponse(org),
	}, nil
}

// AdminLogin implements auth.Service.
func (s *service) AdminLogin(ctx context.Context, req auth.AdminLoginRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	emp, err := s.employeeRepo.GetByMailAnyOrganization(ctx, req.Mail)
	if err != nil {
		return err
	}
	if emp.AdminCode == nil {
		return auth.ErrNoAdminCode
	}
	if *emp.AdminCode != req.AdminCode {
		return auth.ErrInvalidAdminCode
	}
	return nil
}

// ChangePassword implements auth.Service.
func (s *service) ChangePassword(ctx context.Context, req auth.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.employeeRepo.UpdatePasswordHash(ctx, req.EmployeeID, string(hash))
}

// ForgotPassword implements auth.Service. The temporary password is
// stored before the mail goes out; an unsent mail just means another
// reset attempt.
func (s *service) ForgotPassword(ctx context.Context, req auth.ForgotPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	emp, err := s.employeeRepo.GetByMailAnyOrganization(ctx, req.Mail)
	if err != nil {
		return err
	}

	tempPassword, err := random.Hex(tempPasswordBytes)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.employeeRepo.UpdatePasswordHash(ctx, emp.ID, string(hash)); err != nil {
		return err
	}

	if err := s.emailSvc.SendTemporaryPassword(emp.Mail, emp.Name, tempPassword); err != nil {
		slog.Error("Failed to send temporary password", "employee", emp.ID, "error", err)
		return errors.New("failed to send password reset email")
	}
	return nil
}
