package employee

import "time"

// Role is the closed set of employee roles within an organization.
type Role string

const (
	RoleEmployee Role = "Employee"
	RoleManager  Role = "Manager"
	RoleAdmin    Role = "Admin"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleEmployee, RoleManager, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

type Employee struct {
	ID              string
	OrganizationID  string
	DepartmentID    string
	Name            string
	Mail            string
	PasswordHash    string
	Age             int
	Role            Role
	Rating          int
	ProjectsPending int
	AdminCode       *string
	ProfilePhotoURL string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined for responses
	DepartmentName *string
}
