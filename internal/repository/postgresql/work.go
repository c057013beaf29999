package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/deeraj1899/EMS/internal/domain/work"
	"github.com/deeraj1899/EMS/internal/pkg/database"
)

type workRepositoryImpl struct {
	db *database.DB
}

func NewWorkRepository(db *database.DB) work.Repository {
	return &workRepositoryImpl{db: db}
}

const workColumns = `id, assigned_to, assigned_by, title, description, due_date, created_at, updated_at`

func scanWork(row pgx.Row) (work.Work, error) {
	var w work.Work
	err := row.Scan(
		&w.ID, &w.AssignedTo, &w.AssignedBy, &w.Title, &w.Description,
		&w.DueDate, &w.CreatedAt, &w.UpdatedAt,
	)
	return w, err
}

// Create implements work.Repository.
func (r *workRepositoryImpl) Create(ctx context.Context, w work.Work) (work.Work, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO works (id, assigned_to, assigned_by, title, description, due_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + workColumns

	return scanWork(q.QueryRow(ctx, query,
		uuid.NewString(), w.AssignedTo, w.AssignedBy, w.Title, w.Description, w.DueDate,
	))
}

// GetByID implements work.Repository.
func (r *workRepositoryImpl) GetByID(ctx context.Context, id string) (work.Work, error) {
	q := GetQuerier(ctx, r.db)

	w, err := scanWork(q.QueryRow(ctx,
		`SELECT `+workColumns+` FROM works WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return work.Work{}, work.ErrWorkNotFound
	}
	return w, err
}

// ListByAssignee implements work.Repository.
func (r *workRepositoryImpl) ListByAssignee(ctx context.Context, employeeID string) ([]work.Work, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+workColumns+` FROM works WHERE assigned_to = $1 ORDER BY due_date`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	works := make([]work.Work, 0)
	for rows.Next() {
		w, err := scanWork(rows)
		if err != nil {
			return nil, err
		}
		works = append(works, w)
	}
	return works, rows.Err()
}

// Delete implements work.Repository.
func (r *workRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM works WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return work.ErrWorkNotFound
	}
	return nil
}

// DeleteByEmployeeIDs implements work.Repository.
func (r *workRepositoryImpl) DeleteByEmployeeIDs(ctx context.Context, employeeIDs []string) error {
	if len(employeeIDs) == 0 {
		return nil
	}
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`DELETE FROM works WHERE assigned_to = ANY($1) OR assigned_by = ANY($1)`, employeeIDs)
	return err
}

type submissionRepositoryImpl struct {
	db *database.DB
}

func NewSubmissionRepository(db *database.DB) work.SubmissionRepository {
	return &submissionRepositoryImpl{db: db}
}

const submissionColumns = `id, submitted_by, assigned_by, title, description, due_date, github_link, created_at, updated_at`

func scanSubmission(row pgx.Row) (work.SubmittedWork, error) {
	var s work.SubmittedWork
	err := row.Scan(
		&s.ID, &s.SubmittedBy, &s.AssignedBy, &s.Title, &s.Description,
		&s.DueDate, &s.GithubLink, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Create implements work.SubmissionRepository.
func (r *submissionRepositoryImpl) Create(ctx context.Context, s work.SubmittedWork) (work.SubmittedWork, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO submitted_works (id, submitted_by, assigned_by, title, description, due_date, github_link)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + submissionColumns

	return scanSubmission(q.QueryRow(ctx, query,
		uuid.NewString(), s.SubmittedBy, s.AssignedBy, s.Title, s.Description, s.DueDate, s.GithubLink,
	))
}

// GetByID implements work.SubmissionRepository.
func (r *submissionRepositoryImpl) GetByID(ctx context.Context, id string) (work.SubmittedWork, error) {
	q := GetQuerier(ctx, r.db)

	s, err := scanSubmission(q.QueryRow(ctx,
		`SELECT `+submissionColumns+` FROM submitted_works WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return work.SubmittedWork{}, work.ErrSubmissionNotFound
	}
	return s, err
}

// ListBySubmitter implements work.SubmissionRepository.
func (r *submissionRepositoryImpl) ListBySubmitter(ctx context.Context, employeeID string) ([]work.SubmittedWork, error) {
	return r.list(ctx,
		`SELECT `+submissionColumns+` FROM submitted_works WHERE submitted_by = $1 ORDER BY created_at DESC`,
		employeeID)
}

// ListByAssigner implements work.SubmissionRepository.
func (r *submissionRepositoryImpl) ListByAssigner(ctx context.Context, employeeID string) ([]work.SubmittedWork, error) {
	return r.list(ctx,
		`SELECT `+submissionColumns+` FROM submitted_works WHERE assigned_by = $1 ORDER BY created_at DESC`,
		employeeID)
}

func (r *submissionRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]work.SubmittedWork, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	submissions := make([]work.SubmittedWork, 0)
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, s)
	}
	return submissions, rows.Err()
}

// DeleteByEmployeeIDs implements work.SubmissionRepository.
func (r *submissionRepositoryImpl) DeleteByEmployeeIDs(ctx context.Context, employeeIDs []string) error {
	if len(employeeIDs) == 0 {
		return nil
	}
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`DELETE FROM submitted_works WHERE submitted_by = ANY($1) OR assigned_by = ANY($1)`, employeeIDs)
	return err
}

type reviewRepositoryImpl struct {
	db *database.DB
}

func NewReviewRepository(db *database.DB) work.ReviewRepository {
	return &reviewRepositoryImpl{db: db}
}

const reviewColumns = `id, organization_id, reviewed_by, submitted_work_id, content, created_at, updated_at`

func scanReview(row pgx.Row) (work.Review, error) {
	var rev work.Review
	err := row.Scan(
		&rev.ID, &rev.OrganizationID, &rev.ReviewedBy, &rev.SubmittedWorkID,
		&rev.Content, &rev.CreatedAt, &rev.UpdatedAt,
	)
	return rev, err
}

// Create implements work.ReviewRepository.
func (r *reviewRepositoryImpl) Create(ctx context.Context, rev work.Review) (work.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO reviews (id, organization_id, reviewed_by, submitted_work_id, content)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + reviewColumns

	return scanReview(q.QueryRow(ctx, query,
		uuid.NewString(), rev.OrganizationID, rev.ReviewedBy, rev.SubmittedWorkID, rev.Content,
	))
}

// GetByID implements work.ReviewRepository.
func (r *reviewRepositoryImpl) GetByID(ctx context.Context, id string) (work.Review, error) {
	q := GetQuerier(ctx, r.db)

	rev, err := scanReview(q.QueryRow(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return work.Review{}, work.ErrReviewNotFound
	}
	return rev, err
}

// ListBySubmission implements work.ReviewRepository.
func (r *reviewRepositoryImpl) ListBySubmission(ctx context.Context, submittedWorkID string) ([]work.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT r.id, r.organization_id, r.reviewed_by, r.submitted_work_id, r.content,
			r.created_at, r.updated_at, e.name
		FROM reviews r
		JOIN employees e ON r.reviewed_by = e.id
		WHERE r.submitted_work_id = $1
		ORDER BY r.created_at
	`

	rows, err := q.Query(ctx, query, submittedWorkID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]work.Review, 0)
	for rows.Next() {
		var rev work.Review
		if err := rows.Scan(
			&rev.ID, &rev.OrganizationID, &rev.ReviewedBy, &rev.SubmittedWorkID,
			&rev.Content, &rev.CreatedAt, &rev.UpdatedAt, &rev.ReviewerName,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

// UpdateContent implements work.ReviewRepository.
func (r *reviewRepositoryImpl) UpdateContent(ctx context.Context, id, content string) (work.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE reviews SET content = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + reviewColumns

	rev, err := scanReview(q.QueryRow(ctx, query, content, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return work.Review{}, work.ErrReviewNotFound
	}
	return rev, err
}

// Delete implements work.ReviewRepository.
func (r *reviewRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return work.ErrReviewNotFound
	}
	return nil
}

// DeleteByOrganization implements work.ReviewRepository.
func (r *reviewRepositoryImpl) DeleteByOrganization(ctx context.Context, organizationID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM reviews WHERE organization_id = $1`, organizationID)
	return err
}
