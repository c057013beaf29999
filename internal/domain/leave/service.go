package leave

import (
	"context"
)

type Service interface {
	// Apply validates and appends a Pending request, returning the
	// (unchanged) balances. The ledger is created lazily with the
	// configured defaults on first use.
	Apply(ctx context.Context, req ApplyRequest) (ApplyResponse, error)

	// UpdateStatus transitions a request to Approved or Rejected and
	// adjusts the owning ledger's balances atomically.
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (Ledger, error)

	// GetEmployeeLeaves returns one employee's requests and balances,
	// optionally filtered to the current month or week.
	GetEmployeeLeaves(ctx context.Context, employeeID string, filter RequestFilter) (StatusResponse, error)

	// ListOrganizationLeaves returns every ledger in an organization.
	ListOrganizationLeaves(ctx context.Context, organizationID string) ([]LedgerWithEmployee, error)

	// ListDepartmentLeaves returns ledgers for the requesting manager's
	// department. The caller must hold the Manager role.
	ListDepartmentLeaves(ctx context.Context, organizationID, managerID string) ([]LedgerWithEmployee, error)
}
