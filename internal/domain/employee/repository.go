package employee

import "context"

type Repository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByMail(ctx context.Context, organizationID, mail string) (Employee, error)
	GetByMailAnyOrganization(ctx context.Context, mail string) (Employee, error)

	// ListByOrganization joins each employee with its department name.
	ListByOrganization(ctx context.Context, organizationID string) ([]Employee, error)
	ListByDepartment(ctx context.Context, departmentID string) ([]Employee, error)
	ListIDsByOrganization(ctx context.Context, organizationID string) ([]string, error)

	// ListAll returns every employee across organizations; used by the
	// absentee batch job.
	ListAll(ctx context.Context) ([]Employee, error)

	UpdatePasswordHash(ctx context.Context, id, passwordHash string) error
	UpdateProfilePhoto(ctx context.Context, id, photoURL string) error
	Promote(ctx context.Context, id string, role Role, adminCode string) error
	AdjustProjectsPending(ctx context.Context, id string, delta int) error

	Delete(ctx context.Context, id, organizationID string) error
	DeleteByOrganization(ctx context.Context, organizationID string) error
}

type Service interface {
	Add(ctx context.Context, req AddEmployeeRequest) (Response, error)
	GetDetails(ctx context.Context, employeeID string) (Response, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]Response, error)

	// ListDepartmentColleagues returns the manager's department members,
	// excluding the manager. The caller must hold the Manager role.
	ListDepartmentColleagues(ctx context.Context, managerID string) ([]Response, error)

	Delete(ctx context.Context, employeeID, organizationID string) error
	Promote(ctx context.Context, employeeID string) error
	UpdateProfilePhoto(ctx context.Context, employeeID, photoURL string) error
}
