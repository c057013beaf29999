package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/deeraj1899/EMS/internal/domain/employee"
	"github.com/deeraj1899/EMS/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `e.id, e.organization_id, e.department_id, e.name, e.mail, e.password_hash,
	e.age, e.role, e.rating, e.projects_pending, e.admin_code, e.profile_photo_url, e.created_at, e.updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.OrganizationID, &emp.DepartmentID, &emp.Name, &emp.Mail, &emp.PasswordHash,
		&emp.Age, &emp.Role, &emp.Rating, &emp.ProjectsPending, &emp.AdminCode, &emp.ProfilePhotoURL,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// Create implements employee.Repository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (id, organization_id, department_id, name, mail, password_hash,
			age, role, rating, projects_pending, admin_code, profile_photo_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, organization_id, department_id, name, mail, password_hash,
			age, role, rating, projects_pending, admin_code, profile_photo_url, created_at, updated_at
	`

	return scanEmployee(q.QueryRow(ctx, query,
		uuid.NewString(), emp.OrganizationID, emp.DepartmentID, emp.Name, emp.Mail, emp.PasswordHash,
		emp.Age, string(emp.Role), emp.Rating, emp.ProjectsPending, emp.AdminCode, emp.ProfilePhotoURL,
	))
}

// GetByID implements employee.Repository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `, d.name AS department_name
		FROM employees e
		LEFT JOIN departments d ON e.department_id = d.id
		WHERE e.id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.OrganizationID, &emp.DepartmentID, &emp.Name, &emp.Mail, &emp.PasswordHash,
		&emp.Age, &emp.Role, &emp.Rating, &emp.ProjectsPending, &emp.AdminCode, &emp.ProfilePhotoURL,
		&emp.CreatedAt, &emp.UpdatedAt, &emp.DepartmentName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}

// GetByMail implements employee.Repository.
func (r *employeeRepositoryImpl) GetByMail(ctx context.Context, organizationID, mail string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `, d.name AS department_name
		FROM employees e
		LEFT JOIN departments d ON e.department_id = d.id
		WHERE e.organization_id = $1 AND e.mail = $2
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, organizationID, mail).Scan(
		&emp.ID, &emp.OrganizationID, &emp.DepartmentID, &emp.Name, &emp.Mail, &emp.PasswordHash,
		&emp.Age, &emp.Role, &emp.Rating, &emp.ProjectsPending, &emp.AdminCode, &emp.ProfilePhotoURL,
		&emp.CreatedAt, &emp.UpdatedAt, &emp.DepartmentName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}

// GetByMailAnyOrganization implements employee.Repository.
func (r *employeeRepositoryImpl) GetByMailAnyOrganization(ctx context.Context, mail string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		WHERE e.mail = $1
		ORDER BY e.created_at
		LIMIT 1
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, mail))
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, err
}

// ListByOrganization implements employee.Repository.
func (r *employeeRepositoryImpl) ListByOrganization(ctx context.Context, organizationID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `, d.name AS department_name
		FROM employees e
		LEFT JOIN departments d ON e.department_id = d.id
		WHERE e.organization_id = $1
		ORDER BY e.name
	`

	rows, err := q.Query(ctx, query, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEmployeeRowsWithDepartment(rows)
}

// ListByDepartment implements employee.Repository.
func (r *employeeRepositoryImpl) ListByDepartment(ctx context.Context, departmentID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `, d.name AS department_name
		FROM employees e
		LEFT JOIN departments d ON e.department_id = d.id
		WHERE e.department_id = $1
		ORDER BY e.name
	`

	rows, err := q.Query(ctx, query, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEmployeeRowsWithDepartment(rows)
}

func scanEmployeeRowsWithDepartment(rows pgx.Rows) ([]employee.Employee, error) {
	employees := make([]employee.Employee, 0)
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID, &emp.OrganizationID, &emp.DepartmentID, &emp.Name, &emp.Mail, &emp.PasswordHash,
			&emp.Age, &emp.Role, &emp.Rating, &emp.ProjectsPending, &emp.AdminCode, &emp.ProfilePhotoURL,
			&emp.CreatedAt, &emp.UpdatedAt, &emp.DepartmentName,
		); err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

// ListIDsByOrganization implements employee.Repository.
func (r *employeeRepositoryImpl) ListIDsByOrganization(ctx context.Context, organizationID string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id FROM employees WHERE organization_id = $1`, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ListAll implements employee.Repository.
func (r *employeeRepositoryImpl) ListAll(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+employeeColumns+` FROM employees e ORDER BY e.created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

// UpdatePasswordHash implements employee.Repository.
func (r *employeeRepositoryImpl) UpdatePasswordHash(ctx context.Context, id, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE employees SET password_hash = $1, updated_at = NOW() WHERE id = $2`, passwordHash, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// UpdateProfilePhoto implements employee.Repository.
func (r *employeeRepositoryImpl) UpdateProfilePhoto(ctx context.Context, id, photoURL string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE employees SET profile_photo_url = $1, updated_at = NOW() WHERE id = $2`, photoURL, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Promote implements employee.Repository.
func (r *employeeRepositoryImpl) Promote(ctx context.Context, id string, role employee.Role, adminCode string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE employees SET role = $1, admin_code = $2, updated_at = NOW() WHERE id = $3`,
		string(role), adminCode, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// AdjustProjectsPending implements employee.Repository.
func (r *employeeRepositoryImpl) AdjustProjectsPending(ctx context.Context, id string, delta int) error {
	q := GetQuerier(ctx, r.db)

	// GREATEST keeps the counter from going negative on double removes.
	tag, err := q.Exec(ctx,
		`UPDATE employees SET projects_pending = GREATEST(projects_pending + $1, 0), updated_at = NOW() WHERE id = $2`,
		delta, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Delete implements employee.Repository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id, organizationID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`DELETE FROM employees WHERE id = $1 AND organization_id = $2`, id, organizationID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// DeleteByOrganization implements employee.Repository.
func (r *employeeRepositoryImpl) DeleteByOrganization(ctx context.Context, organizationID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM employees WHERE organization_id = $1`, organizationID)
	return err
}
