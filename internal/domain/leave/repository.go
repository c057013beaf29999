package leave

import (
	"context"
)

// LedgerRepository persists leave ledgers and their embedded requests.
type LedgerRepository interface {
	// Create inserts a fresh ledger with its initial balances.
	Create(ctx context.Context, ledger Ledger) (Ledger, error)

	// GetByEmployeeID loads a ledger with its full request history.
	// Returns ErrLedgerNotFound if the employee has no ledger yet.
	GetByEmployeeID(ctx context.Context, employeeID string) (Ledger, error)

	// UpdateBalances writes the ledger's balances using an optimistic
	// version check; returns ErrConcurrentUpdate when the stored version
	// no longer matches ledger.Version.
	UpdateBalances(ctx context.Context, ledger Ledger) error

	// AppendRequest adds a new Pending request to a ledger.
	AppendRequest(ctx context.Context, ledgerID string, request Request) (Request, error)

	// UpdateRequestStatus rewrites one request's status.
	UpdateRequestStatus(ctx context.Context, requestID string, status Status) error

	// ListByOrganization returns every ledger in an organization joined
	// with minimal employee identity.
	ListByOrganization(ctx context.Context, organizationID string) ([]LedgerWithEmployee, error)

	// ListByDepartment returns ledgers for one department of an
	// organization joined with minimal employee identity.
	ListByDepartment(ctx context.Context, organizationID, departmentID string) ([]LedgerWithEmployee, error)

	// DeleteByEmployeeIDs removes ledgers and their requests; used by the
	// organization cascade delete.
	DeleteByEmployeeIDs(ctx context.Context, employeeIDs []string) error
}
