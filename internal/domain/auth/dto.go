package auth

import (
	"github.com/deeraj1899/EMS/internal/domain/employee"
	"github.com/deeraj1899/EMS/internal/domain/organization"
	"github.com/deeraj1899/EMS/internal/pkg/validator"
)

// LoginRequest authenticates an employee inside a named organization.
type LoginRequest struct {
	OrganizationName string `json:"organization_name"`
	Mail             string `json:"mail"`
	Password         string `json:"password"`
}

func (r LoginRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.OrganizationName) {
		errs = append(errs, validator.ValidationError{Field: "organization_name", Message: "is required"})
	}
	if validator.IsEmpty(r.Mail) {
		errs = append(errs, validator.ValidationError{Field: "mail", Message: "is required"})
	} else if !validator.IsValidEmail(r.Mail) {
		errs = append(errs, validator.ValidationError{Field: "mail", Message: "must be a valid email"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// LoginResponse carries the signed token plus the identities the
// frontend renders after login.
type LoginResponse struct {
	Token        string                `json:"token"`
	Employee     employee.Response     `json:"employee"`
	Organization organization.Response `json:"organization"`
}

// AdminLoginRequest elevates an already authenticated manager or admin
// using their emailed code.
type AdminLoginRequest struct {
	Mail      string `json:"mail"`
	AdminCode string `json:"admin_code"`
}

func (r AdminLoginRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Mail) {
		errs = append(errs, validator.ValidationError{Field: "mail", Message: "is required"})
	}
	if validator.IsEmpty(r.AdminCode) {
		errs = append(errs, validator.ValidationError{Field: "admin_code", Message: "is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ChangePasswordRequest replaces the caller's password. EmployeeID
// comes from the JWT.
type ChangePasswordRequest struct {
	EmployeeID string `json:"-"`
	Password   string `json:"password"`
}

func (r ChangePasswordRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 6 characters"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ForgotPasswordRequest issues a temporary password by mail.
type ForgotPasswordRequest struct {
	Mail string `json:"mail"`
}

func (r ForgotPasswordRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Mail) {
		errs = append(errs, validator.ValidationError{Field: "mail", Message: "is required"})
	} else if !validator.IsValidEmail(r.Mail) {
		errs = append(errs, validator.ValidationError{Field: "mail", Message: "must be a valid email"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
