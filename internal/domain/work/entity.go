package work

import "time"

// Work is an assignment handed to a single employee.
type Work struct {
	ID          string    `json:"id"`
	AssignedTo  string    `json:"assigned_to"`
	AssignedBy  string    `json:"assigned_by"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SubmittedWork is an employee's completed deliverable. Reviews thread
// onto it.
type SubmittedWork struct {
	ID          string    `json:"id"`
	SubmittedBy string    `json:"submitted_by"`
	AssignedBy  string    `json:"assigned_by"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
	GithubLink  string    `json:"github_link"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Review struct {
	ID              string    `json:"id"`
	OrganizationID  string    `json:"organization_id"`
	ReviewedBy      string    `json:"reviewed_by"`
	SubmittedWorkID string    `json:"submitted_work_id"`
	Content         string    `json:"content"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// ReviewerName is populated on reads joined with the employee table.
	ReviewerName *string `json:"reviewer_name,omitempty"`
}
