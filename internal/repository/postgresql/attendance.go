package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/deeraj1899/EMS/internal/domain/attendance"
	"github.com/deeraj1899/EMS/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.Repository. The unique index on
// (employee_id, date) surfaces duplicate check-ins as ErrAlreadyCheckedIn.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (id, employee_id, date, check_in_time, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id, date) DO NOTHING
		RETURNING id, employee_id, date, check_in_time, status, created_at, updated_at
	`

	var created attendance.Record
	err := q.QueryRow(ctx, query,
		uuid.NewString(), record.EmployeeID, record.Date, record.CheckInTime, string(record.Status),
	).Scan(
		&created.ID, &created.EmployeeID, &created.Date, &created.CheckInTime,
		&created.Status, &created.CreatedAt, &created.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return attendance.Record{}, attendance.ErrAlreadyCheckedIn
	}
	if err != nil {
		return attendance.Record{}, err
	}
	return created, nil
}

// GetByEmployeeAndDate implements attendance.Repository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, check_in_time, status, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1 AND date = $2
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.CheckInTime,
		&rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	if err != nil {
		return attendance.Record{}, err
	}
	return rec, nil
}

// ListByEmployee implements attendance.Repository.
func (r *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, check_in_time, status, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]attendance.Record, 0)
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.CheckInTime,
			&rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ListByDate implements attendance.Repository.
func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, organizationID string, date time.Time) ([]attendance.Record, error) {
	query := `
		SELECT a.id, a.employee_id, a.date, a.check_in_time, a.status, a.created_at, a.updated_at, e.name
		FROM attendances a
		JOIN employees e ON a.employee_id = e.id
		WHERE e.organization_id = $1 AND a.date = $2
		ORDER BY e.name
	`
	return r.listJoined(ctx, query, organizationID, date)
}

// ListByDateAndDepartment implements attendance.Repository.
func (r *attendanceRepositoryImpl) ListByDateAndDepartment(ctx context.Context, departmentID string, date time.Time) ([]attendance.Record, error) {
	query := `
		SELECT a.id, a.employee_id, a.date, a.check_in_time, a.status, a.created_at, a.updated_at, e.name
		FROM attendances a
		JOIN employees e ON a.employee_id = e.id
		WHERE e.department_id = $1 AND a.date = $2
		ORDER BY e.name
	`
	return r.listJoined(ctx, query, departmentID, date)
}

func (r *attendanceRepositoryImpl) listJoined(ctx context.Context, query string, args ...interface{}) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]attendance.Record, 0)
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.CheckInTime,
			&rec.Status, &rec.CreatedAt, &rec.UpdatedAt, &rec.EmployeeName,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// DeleteByEmployeeIDs implements attendance.Repository.
func (r *attendanceRepositoryImpl) DeleteByEmployeeIDs(ctx context.Context, employeeIDs []string) error {
	if len(employeeIDs) == 0 {
		return nil
	}
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM attendances WHERE employee_id = ANY($1)`, employeeIDs)
	return err
}
