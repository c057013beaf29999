package employee

import (
	"github.com/deeraj1899/EMS/internal/pkg/validator"
)

// AddEmployeeRequest creates an employee inside an organization.
type AddEmployeeRequest struct {
	OrganizationID  string `json:"-"`
	Name            string `json:"name"`
	Mail            string `json:"mail"`
	Password        string `json:"password"`
	DepartmentID    string `json:"department_id"`
	Role            string `json:"role"`
	Age             int    `json:"age"`
	Rating          int    `json:"rating"`
	ProjectsPending int    `json:"projects_pending"`
}

func (r AddEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Mail) {
		errs = append(errs, validator.ValidationError{Field: "mail", Message: "must be a valid email"})
	}
	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 6 characters"})
	}
	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{Field: "department_id", Message: "is required"})
	}
	if _, ok := ParseRole(r.Role); !ok {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be Employee, Manager or Admin"})
	}
	if r.Age < 18 || r.Age > 100 {
		errs = append(errs, validator.ValidationError{Field: "age", Message: "must be between 18 and 100"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Response is the employee shape returned to clients; it never carries
// the password hash.
type Response struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Mail            string `json:"mail"`
	Age             int    `json:"age"`
	Role            Role   `json:"role"`
	Rating          int    `json:"rating"`
	ProjectsPending int    `json:"projects_pending"`
	ProfilePhotoURL string `json:"profile_photo,omitempty"`
	DepartmentID    string `json:"department_id,omitempty"`
	DepartmentName  string `json:"department_name"`
}

// ToResponse strips credentials and fills in the joined department name.
func ToResponse(e Employee) Response {
	resp := Response{
		ID:              e.ID,
		Name:            e.Name,
		Mail:            e.Mail,
		Age:             e.Age,
		Role:            e.Role,
		Rating:          e.Rating,
		ProjectsPending: e.ProjectsPending,
		ProfilePhotoURL: e.ProfilePhotoURL,
		DepartmentID:    e.DepartmentID,
		DepartmentName:  "N/A",
	}
	if e.DepartmentName != nil {
		resp.DepartmentName = *e.DepartmentName
	}
	return resp
}
