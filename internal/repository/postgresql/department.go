package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/deeraj1899/EMS/internal/domain/organization"
	"github.com/deeraj1899/EMS/internal/pkg/database"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) organization.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

// Create implements organization.DepartmentRepository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, dept organization.Department) (organization.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (id, organization_id, name)
		VALUES ($1, $2, $3)
		RETURNING id, organization_id, name, created_at, updated_at
	`

	var created organization.Department
	err := q.QueryRow(ctx, query, uuid.NewString(), dept.OrganizationID, dept.Name).
		Scan(&created.ID, &created.OrganizationID, &created.Name, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return organization.Department{}, err
	}
	return created, nil
}

// GetByID implements organization.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id, organizationID string) (organization.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, organization_id, name, created_at, updated_at
		FROM departments
		WHERE id = $1 AND organization_id = $2
	`

	var dept organization.Department
	err := q.QueryRow(ctx, query, id, organizationID).
		Scan(&dept.ID, &dept.OrganizationID, &dept.Name, &dept.CreatedAt, &dept.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return organization.Department{}, organization.ErrDepartmentNotFound
	}
	if err != nil {
		return organization.Department{}, err
	}
	return dept, nil
}

// ListByOrganization implements organization.DepartmentRepository.
func (r *departmentRepositoryImpl) ListByOrganization(ctx context.Context, organizationID string) ([]organization.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, organization_id, name, created_at, updated_at
		FROM departments
		WHERE organization_id = $1
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	depts := make([]organization.Department, 0)
	for rows.Next() {
		var dept organization.Department
		if err := rows.Scan(&dept.ID, &dept.OrganizationID, &dept.Name, &dept.CreatedAt, &dept.UpdatedAt); err != nil {
			return nil, err
		}
		depts = append(depts, dept)
	}
	return depts, rows.Err()
}

// DeleteByOrganization implements organization.DepartmentRepository.
func (r *departmentRepositoryImpl) DeleteByOrganization(ctx context.Context, organizationID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM departments WHERE organization_id = $1`, organizationID)
	return err
}
