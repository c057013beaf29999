package organization

import "context"

type Repository interface {
	Create(ctx context.Context, org Organization) (Organization, error)
	GetByID(ctx context.Context, id string) (Organization, error)
	GetByMail(ctx context.Context, mail string) (Organization, error)
	GetByName(ctx context.Context, name string) (Organization, error)
	List(ctx context.Context) ([]Organization, error)
	Delete(ctx context.Context, id string) error
}

type DepartmentRepository interface {
	Create(ctx context.Context, dept Department) (Department, error)
	GetByID(ctx context.Context, id, organizationID string) (Department, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]Department, error)
	DeleteByOrganization(ctx context.Context, organizationID string) error
}

type Service interface {
	// Register creates the organization, its departments and the Admin
	// employee in one transaction, then mails the generated credentials.
	Register(ctx context.Context, req RegisterRequest) (Response, error)

	List(ctx context.Context) ([]Response, error)
	ListDepartments(ctx context.Context, organizationID string) ([]DepartmentResponse, error)

	// Delete removes the organization and every dependent record
	// (attendance, leave ledgers, works, submissions, reviews,
	// employees, departments). The store has no foreign-key cascades;
	// the cascade is enforced here.
	Delete(ctx context.Context, organizationID string) error
}
