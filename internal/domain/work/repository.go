package work

import "context"

type Repository interface {
	Create(ctx context.Context, w Work) (Work, error)
	GetByID(ctx context.Context, id string) (Work, error)
	ListByAssignee(ctx context.Context, employeeID string) ([]Work, error)
	Delete(ctx context.Context, id string) error
	DeleteByEmployeeIDs(ctx context.Context, employeeIDs []string) error
}

type SubmissionRepository interface {
	Create(ctx context.Context, s SubmittedWork) (SubmittedWork, error)
	GetByID(ctx context.Context, id string) (SubmittedWork, error)
	ListBySubmitter(ctx context.Context, employeeID string) ([]SubmittedWork, error)
	ListByAssigner(ctx context.Context, employeeID string) ([]SubmittedWork, error)
	DeleteByEmployeeIDs(ctx context.Context, employeeIDs []string) error
}

type ReviewRepository interface {
	Create(ctx context.Context, r Review) (Review, error)
	GetByID(ctx context.Context, id string) (Review, error)
	ListBySubmission(ctx context.Context, submittedWorkID string) ([]Review, error)
	UpdateContent(ctx context.Context, id, content string) (Review, error)
	Delete(ctx context.Context, id string) error
	DeleteByOrganization(ctx context.Context, organizationID string) error
}

type Service interface {
	// Assign creates a work item and bumps the assignee's pending
	// counter in one transaction.
	Assign(ctx context.Context, req AssignRequest) (Work, error)

	// ListMine returns the caller's open work items.
	ListMine(ctx context.Context, employeeID string) ([]Work, error)

	// Remove drops one of the caller's work items and decrements the
	// pending counter.
	Remove(ctx context.Context, employeeID, workID string) error

	// Submit records a deliverable against its assigner.
	Submit(ctx context.Context, req SubmitRequest) (SubmittedWork, error)

	// ListMySubmissions returns the caller's own submissions.
	ListMySubmissions(ctx context.Context, employeeID string) ([]SubmittedWork, error)

	// ListAssignedSubmissions returns submissions for work the caller
	// assigned.
	ListAssignedSubmissions(ctx context.Context, employeeID string) ([]SubmittedWork, error)

	AddReview(ctx context.Context, req AddReviewRequest) (Review, error)
	ListReviews(ctx context.Context, submittedWorkID string) ([]Review, error)
	EditReview(ctx context.Context, req EditReviewRequest) (Review, error)
	DeleteReview(ctx context.Context, reviewID string) error
}
