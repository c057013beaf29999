package work

import "github.com/deeraj1899/EMS/internal/pkg/validator"

// AssignRequest creates a work item for one employee. AssignedBy comes
// from the JWT.
type AssignRequest struct {
	AssignedTo  string `json:"-"`
	AssignedBy  string `json:"-"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
}

func (r AssignRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.AssignedTo) {
		errs = append(errs, validator.ValidationError{Field: "assigned_to", Message: "is required"})
	}
	if validator.IsEmpty(r.AssignedBy) {
		errs = append(errs, validator.ValidationError{Field: "assigned_by", Message: "is required"})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "is required"})
	}
	if validator.IsEmpty(r.DueDate) {
		errs = append(errs, validator.ValidationError{Field: "due_date", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.DueDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "due_date", Message: "must be YYYY-MM-DD"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SubmitRequest records a completed deliverable against the assigner.
type SubmitRequest struct {
	SubmittedBy string `json:"-"`
	AssignedBy  string `json:"assigned_by"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	GithubLink  string `json:"github_link"`
}

func (r SubmitRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.SubmittedBy) {
		errs = append(errs, validator.ValidationError{Field: "submitted_by", Message: "is required"})
	}
	if validator.IsEmpty(r.AssignedBy) {
		errs = append(errs, validator.ValidationError{Field: "assigned_by", Message: "is required"})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "is required"})
	}
	if validator.IsEmpty(r.DueDate) {
		errs = append(errs, validator.ValidationError{Field: "due_date", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.DueDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "due_date", Message: "must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.GithubLink) {
		errs = append(errs, validator.ValidationError{Field: "github_link", Message: "is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AddReviewRequest threads a review onto a submission.
type AddReviewRequest struct {
	OrganizationID  string `json:"-"`
	ReviewedBy      string `json:"-"`
	SubmittedWorkID string `json:"submitted_work_id"`
	Content         string `json:"content"`
}

func (r AddReviewRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.OrganizationID) {
		errs = append(errs, validator.ValidationError{Field: "organization_id", Message: "is required"})
	}
	if validator.IsEmpty(r.ReviewedBy) {
		errs = append(errs, validator.ValidationError{Field: "reviewed_by", Message: "is required"})
	}
	if validator.IsEmpty(r.SubmittedWorkID) {
		errs = append(errs, validator.ValidationError{Field: "submitted_work_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Content) {
		errs = append(errs, validator.ValidationError{Field: "content", Message: "is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EditReviewRequest replaces a review's content.
type EditReviewRequest struct {
	ReviewID string `json:"-"`
	Content  string `json:"content"`
}

func (r EditReviewRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.ReviewID) {
		errs = append(errs, validator.ValidationError{Field: "review_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Content) {
		errs = append(errs, validator.ValidationError{Field: "content", Message: "is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
