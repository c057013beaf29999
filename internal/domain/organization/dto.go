package organization

import (
	"github.com/deeraj1899/EMS/internal/pkg/validator"
)

const maxDepartments = 5

// RegisterRequest creates an organization together with its departments
// and its first (Admin) employee. Admin credentials are generated server
// side and mailed out.
type RegisterRequest struct {
	Name            string   `json:"organization_name"`
	Mail            string   `json:"mail"`
	AdminName       string   `json:"admin_name"`
	Departments     []string `json:"departments"`
	AdminDepartment string   `json:"admin_department"`
	Price           int      `json:"price"`
	DurationMonths  int      `json:"duration"`
	LogoURL         string   `json:"-"`
}

func (r RegisterRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "organization_name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Mail) {
		errs = append(errs, validator.ValidationError{Field: "mail", Message: "must be a valid email"})
	}
	if validator.IsEmpty(r.AdminName) {
		errs = append(errs, validator.ValidationError{Field: "admin_name", Message: "is required"})
	}
	if len(r.Departments) == 0 || len(r.Departments) > maxDepartments {
		errs = append(errs, validator.ValidationError{Field: "departments", Message: "must list between 1 and 5 departments"})
	}
	for _, d := range r.Departments {
		if validator.IsEmpty(d) {
			errs = append(errs, validator.ValidationError{Field: "departments", Message: "department names must be non-empty"})
			break
		}
	}
	if validator.IsEmpty(r.AdminDepartment) {
		errs = append(errs, validator.ValidationError{Field: "admin_department", Message: "is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Response struct {
	ID             string `json:"id"`
	Name           string `json:"organization_name"`
	Mail           string `json:"mail"`
	AdminName      string `json:"admin_name"`
	LogoURL        string `json:"organization_logo,omitempty"`
	Price          int    `json:"price"`
	DurationMonths int    `json:"duration"`
}

func ToResponse(o Organization) Response {
	return Response{
		ID:             o.ID,
		Name:           o.Name,
		Mail:           o.Mail,
		AdminName:      o.AdminName,
		LogoURL:        o.LogoURL,
		Price:          o.Price,
		DurationMonths: o.DurationMonths,
	}
}

type DepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
