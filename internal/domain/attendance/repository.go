package attendance

import (
	"context"
	"time"
)

type Repository interface {
	// Create inserts a record; the unique (employee_id, date) index makes
	// a second same-day insert fail.
	Create(ctx context.Context, record Record) (Record, error)

	// GetByEmployeeAndDate finds the day's record for one employee, or
	// ErrRecordNotFound.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Record, error)

	// ListByEmployee returns an employee's history, newest first.
	ListByEmployee(ctx context.Context, employeeID string) ([]Record, error)

	// ListByDate returns every record for one day across an organization,
	// joined with employee names.
	ListByDate(ctx context.Context, organizationID string, date time.Time) ([]Record, error)

	// ListByDateAndDepartment scopes ListByDate to one department.
	ListByDateAndDepartment(ctx context.Context, departmentID string, date time.Time) ([]Record, error)

	// DeleteByEmployeeIDs removes records; used by the organization
	// cascade delete.
	DeleteByEmployeeIDs(ctx context.Context, employeeIDs []string) error
}

type Service interface {
	// CheckIn records today's attendance for an employee. Present if at
	// or before the configured work-start cutoff, Late after it.
	CheckIn(ctx context.Context, employeeID string) (CheckInResponse, error)

	// GetEmployeeRecords returns one employee's history with identity.
	GetEmployeeRecords(ctx context.Context, employeeID string) (EmployeeRecords, error)

	// StatusToday rolls up today's records for an organization.
	StatusToday(ctx context.Context, organizationID string) (StatusReport, error)

	// DepartmentStatusToday rolls up today's records for the requesting
	// manager's department. The caller must hold the Manager role.
	DepartmentStatusToday(ctx context.Context, organizationID, managerID string) (StatusReport, error)

	// MarkAbsentees inserts an Absent record for every employee without
	// one today and reports a per-employee outcome list.
	MarkAbsentees(ctx context.Context) ([]AbsenteeOutcome, error)
}
