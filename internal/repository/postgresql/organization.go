package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/deeraj1899/EMS/internal/domain/organization"
	"github.com/deeraj1899/EMS/internal/pkg/database"
)

type organizationRepositoryImpl struct {
	db *database.DB
}

func NewOrganizationRepository(db *database.DB) organization.Repository {
	return &organizationRepositoryImpl{db: db}
}

const organizationColumns = `id, name, mail, admin_name, logo_url, price, duration_months, created_at, updated_at`

func scanOrganization(row pgx.Row) (organization.Organization, error) {
	var org organization.Organization
	err := row.Scan(
		&org.ID, &org.Name, &org.Mail, &org.AdminName, &org.LogoURL,
		&org.Price, &org.DurationMonths, &org.CreatedAt, &org.UpdatedAt,
	)
	return org, err
}

// Create implements organization.Repository.
func (r *organizationRepositoryImpl) Create(ctx context.Context, org organization.Organization) (organization.Organization, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO organizations (id, name, mail, admin_name, logo_url, price, duration_months)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + organizationColumns

	return scanOrganization(q.QueryRow(ctx, query,
		uuid.NewString(), org.Name, org.Mail, org.AdminName, org.LogoURL, org.Price, org.DurationMonths,
	))
}

// GetByID implements organization.Repository.
func (r *organizationRepositoryImpl) GetByID(ctx context.Context, id string) (organization.Organization, error) {
	q := GetQuerier(ctx, r.db)

	org, err := scanOrganization(q.QueryRow(ctx,
		`SELECT `+organizationColumns+` FROM organizations WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return organization.Organization{}, organization.ErrOrganizationNotFound
	}
	return org, err
}

// GetByMail implements organization.Repository.
func (r *organizationRepositoryImpl) GetByMail(ctx context.Context, mail string) (organization.Organization, error) {
	q := GetQuerier(ctx, r.db)

	org, err := scanOrganization(q.QueryRow(ctx,
		`SELECT `+organizationColumns+` FROM organizations WHERE mail = $1`, mail))
	if errors.Is(err, pgx.ErrNoRows) {
		return organization.Organization{}, organization.ErrOrganizationNotFound
	}
	return org, err
}

// GetByName implements organization.Repository.
func (r *organizationRepositoryImpl) GetByName(ctx context.Context, name string) (organization.Organization, error) {
	q := GetQuerier(ctx, r.db)

	org, err := scanOrganization(q.QueryRow(ctx,
		`SELECT `+organizationColumns+` FROM organizations WHERE name = $1`, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return organization.Organization{}, organization.ErrOrganizationNotFound
	}
	return org, err
}

// List implements organization.Repository.
func (r *organizationRepositoryImpl) List(ctx context.Context) ([]organization.Organization, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+organizationColumns+` FROM organizations ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orgs := make([]organization.Organization, 0)
	for rows.Next() {
		org, err := scanOrganization(rows)
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, org)
	}
	return orgs, rows.Err()
}

// Delete implements organization.Repository.
func (r *organizationRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM organizations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return organization.ErrOrganizationNotFound
	}
	return nil
}
