package work

import (
	"context"

	"github.com/deeraj1899/EMS/internal/domain/employee"
	"github.com/deeraj1899/EMS/internal/domain/work"
	"github.com/deeraj1899/EMS/internal/pkg/database"
	"github.com/deeraj1899/EMS/internal/pkg/validator"
	"github.com/deeraj1899/EMS/internal/repository/postgresql"
)

type service struct {
	workRepo       work.Repository
	submissionRepo work.SubmissionRepository
	reviewRepo     work.ReviewRepository
	employeeRepo   employee.Repository
	runTx          func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewService(
	workRepo work.Repository,
	submissionRepo work.SubmissionRepository,
	reviewRepo work.ReviewRepository,
	employeeRepo employee.Repository,
	db *database.DB,
) work.Service {
	return &service{
		workRepo:       workRepo,
		submissionRepo: submissionRepo,
		reviewRepo:     reviewRepo,
		employeeRepo:   employeeRepo,
		runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// Assign implements work.Service.
func (s *service) Assign(ctx context.Context, req work.AssignRequest) (work.Work, error) {
	if err := req.Validate(); err != nil {
		return work.Work{}, err
	}

	assignee, err := s.employeeRepo.GetByID(ctx, req.AssignedTo)
	if err != nil {
		return work.Work{}, err
	}
	assigner, err := s.employeeRepo.GetByID(ctx, req.AssignedBy)
	if err != nil {
		return work.Work{}, err
	}
	if assignee.OrganizationID != assigner.OrganizationID {
		return work.Work{}, employee.ErrEmployeeNotFound
	}

	dueDate, _ := validator.IsValidDate(req.DueDate)

	var created work.Work
	err = s.runTx(ctx, func(txCtx context.Context) error {
		created, err = s.workRepo.Create(txCtx, work.Work{
			AssignedTo:  req.AssignedTo,
			AssignedBy:  req.AssignedBy,
			Title:       req.Title,
			Description: req.Description,
			DueDate:     dueDate,
		})
		if err != nil {
			return err
		}
		return s.employeeRepo.AdjustProjectsPending(txCtx, req.AssignedTo, 1)
	})
	if err != nil {
		return work.Work{}, err
	}
	return created, nil
}

// ListMine implements work.Service.
func (s *service) ListMine(ctx context.Context, employeeID string) ([]work.Work, error) {
	return s.workRepo.ListByAssignee(ctx, employeeID)
}

// Remove implements work.Service.
func (s *service) Remove(ctx context.Context, employeeID, workID string) error {
	w, err := s.workRepo.GetByID(ctx, workID)
	if err != nil {
		return err
	}
	if w.AssignedTo != employeeID {
		return work.ErrNotAssignee
	}

	return s.runTx(ctx, func(txCtx context.Context) error {
		if err := s.workRepo.Delete(txCtx, workID); err != nil {
			return err
		}
		return s.employeeRepo.AdjustProjectsPending(txCtx, employeeID, -1)
	})
}

// Submit implements work.Service.
func (s *service) Submit(ctx context.Context, req work.SubmitRequest) (work.SubmittedWork, error) {
	if err := req.Validate(); err != nil {
		return work.SubmittedWork{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.SubmittedBy); err != nil {
		return work.SubmittedWork{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.AssignedBy); err != nil {
		return work.SubmittedWork{}, err
	}

	dueDate, _ := validator.IsValidDate(req.DueDate)

	return s.submissionRepo.Create(ctx, work.SubmittedWork{
		SubmittedBy: req.SubmittedBy,
		AssignedBy:  req.AssignedBy,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		GithubLink:  req.GithubLink,
	})
}

// ListMySubmissions implements work.Service.
func (s *service) ListMySubmissions(ctx context.Context, employeeID string) ([]work.SubmittedWork, error) {
	return s.submissionRepo.ListBySubmitter(ctx, employeeID)
}

// ListAssignedSubmissions implements work.Service.
func (s *service) ListAssignedSubmissions(ctx context.Context, employeeID string) ([]work.SubmittedWork, error) {
	return s.submissionRepo.ListByAssigner(ctx, employeeID)
}

// AddReview implements work.Service.
func (s *service) AddReview(ctx context.Context, req work.AddReviewRequest) (work.Review, error) {
	if err := req.Validate(); err != nil {
		return work.Review{}, err
	}

	if _, err := s.submissionRepo.GetByID(ctx, req.SubmittedWorkID); err != nil {
		return work.Review{}, err
	}

	return s.reviewRepo.Create(ctx, work.Review{
		OrganizationID:  req.OrganizationID,
		ReviewedBy:      req.ReviewedBy,
		SubmittedWorkID: req.SubmittedWorkID,
		Content:         req.Content,
	})
}

// ListReviews implements work.Service.
func (s *service) ListReviews(ctx context.Context, submittedWorkID string) ([]work.Review, error) {
	return s.reviewRepo.ListBySubmission(ctx, submittedWorkID)
}

// EditReview implements work.Service.
func (s *service) EditReview(ctx context.Context, req work.EditReviewRequest) (work.Review, error) {
	if err := req.Validate(); err != nil {
		return work.Review{}, err
	}
	return s.reviewRepo.UpdateContent(ctx, req.ReviewID, req.Content)
}

// DeleteReview implements work.Service.
func (s *service) DeleteReview(ctx context.Context, reviewID string) error {
	return s.reviewRepo.Delete(ctx, reviewID)
}
