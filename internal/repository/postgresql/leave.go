package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/deeraj1899/EMS/internal/domain/leave"
	"github.com/deeraj1899/EMS/internal/pkg/database"
)

type leaveLedgerRepositoryImpl struct {
	db *database.DB
}

func NewLeaveLedgerRepository(db *database.DB) leave.LedgerRepository {
	return &leaveLedgerRepositoryImpl{db: db}
}

const ledgerColumns = `id, employee_id,
	sick_total, sick_used, personal_total, personal_used,
	official_total, official_used, vacation_total, vacation_used,
	last_reset, version, created_at, updated_at`

func scanLedger(row pgx.Row) (leave.Ledger, error) {
	var l leave.Ledger
	err := row.Scan(
		&l.ID, &l.EmployeeID,
		&l.Balances.Sick.Total, &l.Balances.Sick.Used,
		&l.Balances.Personal.Total, &l.Balances.Personal.Used,
		&l.Balances.Official.Total, &l.Balances.Official.Used,
		&l.Balances.Vacation.Total, &l.Balances.Vacation.Used,
		&l.LastReset, &l.Version, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

// Create implements leave.LedgerRepository.
func (r *leaveLedgerRepositoryImpl) Create(ctx context.Context, ledger leave.Ledger) (leave.Ledger, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_ledgers (id, employee_id,
			sick_total, sick_used, personal_total, personal_used,
			official_total, official_used, vacation_total, vacation_used,
			last_reset, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 1)
		RETURNING ` + ledgerColumns

	created, err := scanLedger(q.QueryRow(ctx, query,
		uuid.NewString(), ledger.EmployeeID,
		ledger.Balances.Sick.Total, ledger.Balances.Sick.Used,
		ledger.Balances.Personal.Total, ledger.Balances.Personal.Used,
		ledger.Balances.Official.Total, ledger.Balances.Official.Used,
		ledger.Balances.Vacation.Total, ledger.Balances.Vacation.Used,
		ledger.LastReset,
	))
	if err != nil {
		return leave.Ledger{}, err
	}
	created.Requests = make([]leave.Request, 0)
	return created, nil
}

// GetByEmployeeID implements leave.LedgerRepository.
func (r *leaveLedgerRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (leave.Ledger, error) {
	q := GetQuerier(ctx, r.db)

	ledger, err := scanLedger(q.QueryRow(ctx,
		`SELECT `+ledgerColumns+` FROM leave_ledgers WHERE employee_id = $1`, employeeID))
	if errors.Is(err, pgx.ErrNoRows) {
		return leave.Ledger{}, leave.ErrLedgerNotFound
	}
	if err != nil {
		return leave.Ledger{}, err
	}

	requests, err := r.listRequests(ctx, ledger.ID)
	if err != nil {
		return leave.Ledger{}, err
	}
	ledger.Requests = requests
	return ledger, nil
}

func (r *leaveLedgerRepositoryImpl) listRequests(ctx context.Context, ledgerID string) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_type, start_date, end_date, reason, status, created_at
		FROM leave_requests
		WHERE ledger_id = $1
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, ledgerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]leave.Request, 0)
	for rows.Next() {
		var req leave.Request
		if err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.LeaveType, &req.StartDate, &req.EndDate,
			&req.Reason, &req.Status, &req.CreatedAt,
		); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// UpdateBalances implements leave.LedgerRepository. The version check
// rejects lost updates between concurrent approvals.
func (r *leaveLedgerRepositoryImpl) UpdateBalances(ctx context.Context, ledger leave.Ledger) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_ledgers SET
			sick_total = $1, sick_used = $2,
			personal_total = $3, personal_used = $4,
			official_total = $5, official_used = $6,
			vacation_total = $7, vacation_used = $8,
			last_reset = $9,
			version = version + 1,
			updated_at = NOW()
		WHERE id = $10 AND version = $11
	`

	tag, err := q.Exec(ctx, query,
		ledger.Balances.Sick.Total, ledger.Balances.Sick.Used,
		ledger.Balances.Personal.Total, ledger.Balances.Personal.Used,
		ledger.Balances.Official.Total, ledger.Balances.Official.Used,
		ledger.Balances.Vacation.Total, ledger.Balances.Vacation.Used,
		ledger.LastReset,
		ledger.ID, ledger.Version,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrConcurrentUpdate
	}
	return nil
}

// AppendRequest implements leave.LedgerRepository.
func (r *leaveLedgerRepositoryImpl) AppendRequest(ctx context.Context, ledgerID string, request leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (id, ledger_id, employee_id, leave_type, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, employee_id, leave_type, start_date, end_date, reason, status, created_at
	`

	var created leave.Request
	err := q.QueryRow(ctx, query,
		uuid.NewString(), ledgerID, request.EmployeeID, string(request.LeaveType),
		request.StartDate, request.EndDate, request.Reason, string(request.Status),
	).Scan(
		&created.ID, &created.EmployeeID, &created.LeaveType, &created.StartDate,
		&created.EndDate, &created.Reason, &created.Status, &created.CreatedAt,
	)
	if err != nil {
		return leave.Request{}, err
	}
	return created, nil
}

// UpdateRequestStatus implements leave.LedgerRepository.
func (r *leaveLedgerRepositoryImpl) UpdateRequestStatus(ctx context.Context, requestID string, status leave.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE leave_requests SET status = $1 WHERE id = $2`, string(status), requestID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrRequestNotFound
	}
	return nil
}

// ListByOrganization implements leave.LedgerRepository.
func (r *leaveLedgerRepositoryImpl) ListByOrganization(ctx context.Context, organizationID string) ([]leave.LedgerWithEmployee, error) {
	query := `
		SELECT l.id, l.employee_id,
			l.sick_total, l.sick_used, l.personal_total, l.personal_used,
			l.official_total, l.official_used, l.vacation_total, l.vacation_used,
			l.last_reset, l.version, l.created_at, l.updated_at,
			e.name, e.mail
		FROM leave_ledgers l
		JOIN employees e ON l.employee_id = e.id
		WHERE e.organization_id = $1
		ORDER BY e.name
	`
	return r.listWithEmployee(ctx, query, organizationID)
}

// ListByDepartment implements leave.LedgerRepository.
func (r *leaveLedgerRepositoryImpl) ListByDepartment(ctx context.Context, organizationID, departmentID string) ([]leave.LedgerWithEmployee, error) {
	query := `
		SELECT l.id, l.employee_id,
			l.sick_total, l.sick_used, l.personal_total, l.personal_used,
			l.official_total, l.official_used, l.vacation_total, l.vacation_used,
			l.last_reset, l.version, l.created_at, l.updated_at,
			e.name, e.mail
		FROM leave_ledgers l
		JOIN employees e ON l.employee_id = e.id
		WHERE e.organization_id = $1 AND e.department_id = $2
		ORDER BY e.name
	`
	return r.listWithEmployee(ctx, query, organizationID, departmentID)
}

func (r *leaveLedgerRepositoryImpl) listWithEmployee(ctx context.Context, query string, args ...interface{}) ([]leave.LedgerWithEmployee, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type ledgerRow struct {
		ledger leave.Ledger
		ref    leave.EmployeeRef
	}

	ledgerRows := make([]ledgerRow, 0)
	for rows.Next() {
		var lr ledgerRow
		if err := rows.Scan(
			&lr.ledger.ID, &lr.ledger.EmployeeID,
			&lr.ledger.Balances.Sick.Total, &lr.ledger.Balances.Sick.Used,
			&lr.ledger.Balances.Personal.Total, &lr.ledger.Balances.Personal.Used,
			&lr.ledger.Balances.Official.Total, &lr.ledger.Balances.Official.Used,
			&lr.ledger.Balances.Vacation.Total, &lr.ledger.Balances.Vacation.Used,
			&lr.ledger.LastReset, &lr.ledger.Version, &lr.ledger.CreatedAt, &lr.ledger.UpdatedAt,
			&lr.ref.Name, &lr.ref.Mail,
		); err != nil {
			return nil, err
		}
		lr.ref.ID = lr.ledger.EmployeeID
		ledgerRows = append(ledgerRows, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]leave.LedgerWithEmployee, 0, len(ledgerRows))
	for _, lr := range ledgerRows {
		requests, err := r.listRequests(ctx, lr.ledger.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, leave.LedgerWithEmployee{
			Employee:  lr.ref,
			Balances:  lr.ledger.Balances,
			Requests:  requests,
			LastReset: lr.ledger.LastReset,
		})
	}
	return out, nil
}

// DeleteByEmployeeIDs implements leave.LedgerRepository.
func (r *leaveLedgerRepositoryImpl) DeleteByEmployeeIDs(ctx context.Context, employeeIDs []string) error {
	if len(employeeIDs) == 0 {
		return nil
	}
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx,
		`DELETE FROM leave_requests WHERE employee_id = ANY($1)`, employeeIDs); err != nil {
		return err
	}
	_, err := q.Exec(ctx,
		`DELETE FROM leave_ledgers WHERE employee_id = ANY($1)`, employeeIDs)
	return err
}
