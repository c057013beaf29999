package work

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deeraj1899/EMS/internal/domain/employee"
	"github.com/deeraj1899/EMS/internal/domain/work"
)

type fakeWorkRepo struct {
	works  map[string]work.Work
	nextID int
}

func newFakeWorkRepo() *fakeWorkRepo {
	return &fakeWorkRepo{works: make(map[string]work.Work)}
}

func (f *fakeWorkRepo) Create(_ context.Context, w work.Work) (work.Work, error) {
	f.nextID++
	w.ID = fmt.Sprintf("work-%d", f.nextID)
	f.works[w.ID] = w
	return w, nil
}

func (f *fakeWorkRepo) GetByID(_ context.Context, id string) (work.Work, error) {
	w, ok := f.works[id]
	if !ok {
		return work.Work{}, work.ErrWorkNotFound
	}
	return w, nil
}

func (f *fakeWorkRepo) ListByAssignee(_ context.Context, employeeID string) ([]work.Work, error) {
	var out []work.Work
	for _, w := range f.works {
		if w.AssignedTo == employeeID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeWorkRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.works[id]; !ok {
		return work.ErrWorkNotFound
	}
	delete(f.works, id)
	return nil
}

func (f *fakeWorkRepo) DeleteByEmployeeIDs(_ context.Context, _ []string) error { return nil }

type fakeSubmissionRepo struct {
	submissions map[string]work.SubmittedWork
	nextID      int
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{submissions: make(map[string]work.SubmittedWork)}
}

func (f *fakeSubmissionRepo) Create(_ context.Context, s work.SubmittedWork) (work.SubmittedWork, error) {
	f.nextID++
	s.ID = fmt.Sprintf("sub-%d", f.nextID)
	f.submissions[s.ID] = s
	return s, nil
}

func (f *fakeSubmissionRepo) GetByID(_ context.Context, id string) (work.SubmittedWork, error) {
	s, ok := f.submissions[id]
	if !ok {
		return work.SubmittedWork{}, work.ErrSubmissionNotFound
	}
	return s, nil
}

func (f *fakeSubmissionRepo) ListBySubmitter(_ context.Context, employeeID string) ([]work.SubmittedWork, error) {
	var out []work.SubmittedWork
	for _, s := range f.submissions {
		if s.SubmittedBy == employeeID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSubmissionRepo) ListByAssigner(_ context.Context, employeeID string) ([]work.SubmittedWork, error) {
	var out []work.SubmittedWork
	for _, s := range f.submissions {
		if s.AssignedBy == employeeID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSubmissionRepo) DeleteByEmployeeIDs(_ context.Context, _ []string) error { return nil }

type fakeReviewRepo struct {
	reviews map[string]work.Review
	nextID  int
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]work.Review)}
}

func (f *fakeReviewRepo) Create(_ context.Context, r work.Review) (work.Review, error) {
	f.nextID++
	r.ID = fmt.Sprintf("rev-%d", f.nextID)
	f.reviews[r.ID] = r
	return r, nil
}

func (f *fakeReviewRepo) GetByID(_ context.Context, id string) (work.Review, error) {
	r, ok := f.reviews[id]
	if !ok {
		return work.Review{}, work.ErrReviewNotFound
	}
	return r, nil
}

func (f *fakeReviewRepo) ListBySubmission(_ context.Context, submittedWorkID string) ([]work.Review, error) {
	var out []work.Review
	for _, r := range f.reviews {
		if r.SubmittedWorkID == submittedWorkID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) UpdateContent(_ context.Context, id, content string) (work.Review, error) {
	r, ok := f.reviews[id]
	if !ok {
		return work.Review{}, work.ErrReviewNotFound
	}
	r.Content = content
	f.reviews[id] = r
	return r, nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.reviews[id]; !ok {
		return work.ErrReviewNotFound
	}
	delete(f.reviews, id)
	return nil
}

func (f *fakeReviewRepo) DeleteByOrganization(_ context.Context, _ string) error { return nil }

type fakeEmployeeRepo struct {
	employees map[string]*employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return *emp, nil
}

func (f *fakeEmployeeRepo) GetByMail(_ context.Context, _, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByMailAnyOrganization(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListByOrganization(_ context.Context, _ string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) ListByDepartment(_ context.Context, _ string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) ListIDsByOrganization(_ context.Context, _ string) ([]string, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) ListAll(_ context.Context) ([]employee.Employee, error) { return nil, nil }

func (f *fakeEmployeeRepo) UpdatePasswordHash(_ context.Context, _, _ string) error { return nil }

func (f *fakeEmployeeRepo) UpdateProfilePhoto(_ context.Context, _, _ string) error { return nil }

func (f *fakeEmployeeRepo) AdjustProjectsPending(_ context.Context, id string, delta int) error {
	emp, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.ProjectsPending += delta
	if emp.ProjectsPending < 0 {
		emp.ProjectsPending = 0
	}
	return nil
}

func (f *fakeEmployeeRepo) Promote(_ context.Context, _ string, _ employee.Role, _ string) error {
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, _, _ string) error { return nil }

func (f *fakeEmployeeRepo) DeleteByOrganization(_ context.Context, _ string) error { return nil }

func newTestService() (*service, *fakeWorkRepo, *fakeSubmissionRepo, *fakeReviewRepo, *fakeEmployeeRepo) {
	workRepo := newFakeWorkRepo()
	subRepo := newFakeSubmissionRepo()
	revRepo := newFakeReviewRepo()
	empRepo := &fakeEmployeeRepo{employees: map[string]*employee.Employee{
		"mgr-1": {ID: "mgr-1", OrganizationID: "org-1", Role: employee.RoleManager},
		"emp-1": {ID: "emp-1", OrganizationID: "org-1"},
		"out-1": {ID: "out-1", OrganizationID: "org-2"},
	}}
	svc := &service{
		workRepo:       workRepo,
		submissionRepo: subRepo,
		reviewRepo:     revRepo,
		employeeRepo:   empRepo,
		runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
	return svc, workRepo, subRepo, revRepo, empRepo
}

func validAssign() work.AssignRequest {
	return work.AssignRequest{
		AssignedTo:  "emp-1",
		AssignedBy:  "mgr-1",
		Title:       "Quarterly report",
		Description: "Compile the Q1 numbers",
		DueDate:     "2026-04-15",
	}
}

func TestAssignBumpsPendingCounter(t *testing.T) {
	svc, _, _, _, empRepo := newTestService()

	created, err := svc.Assign(context.Background(), validAssign())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "mgr-1", created.AssignedBy)
	assert.Equal(t, 1, empRepo.employees["emp-1"].ProjectsPending)

	_, err = svc.Assign(context.Background(), validAssign())
	require.NoError(t, err)
	assert.Equal(t, 2, empRepo.employees["emp-1"].ProjectsPending)
}

func TestAssignAcrossOrganizations(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	req := validAssign()
	req.AssignedTo = "out-1"
	_, err := svc.Assign(context.Background(), req)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestRemoveDecrementsPendingCounter(t *testing.T) {
	svc, workRepo, _, _, empRepo := newTestService()

	created, err := svc.Assign(context.Background(), validAssign())
	require.NoError(t, err)

	err = svc.Remove(context.Background(), "emp-1", created.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, empRepo.employees["emp-1"].ProjectsPending)
	assert.Empty(t, workRepo.works)
}

func TestRemoveRejectsNonAssignee(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	created, err := svc.Assign(context.Background(), validAssign())
	require.NoError(t, err)

	err = svc.Remove(context.Background(), "mgr-1", created.ID)
	assert.ErrorIs(t, err, work.ErrNotAssignee)

	err = svc.Remove(context.Background(), "emp-1", "work-missing")
	assert.ErrorIs(t, err, work.ErrWorkNotFound)
}

func TestSubmitThreadsAssigner(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	sub, err := svc.Submit(context.Background(), work.SubmitRequest{
		SubmittedBy: "emp-1",
		AssignedBy:  "mgr-1",
		Title:       "Quarterly report",
		Description: "Numbers attached",
		DueDate:     "2026-04-15",
		GithubLink:  "https://github.com/acme/reports/pull/42",
	})
	require.NoError(t, err)

	assigned, err := svc.ListAssignedSubmissions(context.Background(), "mgr-1")
	require.NoError(t, err)
	require.Len(t, assigned, 1)
	assert.Equal(t, sub.ID, assigned[0].ID)

	mine, err := svc.ListMySubmissions(context.Background(), "emp-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
}

func TestReviewLifecycle(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	sub, err := svc.Submit(context.Background(), work.SubmitRequest{
		SubmittedBy: "emp-1",
		AssignedBy:  "mgr-1",
		Title:       "Quarterly report",
		Description: "Numbers attached",
		DueDate:     "2026-04-15",
		GithubLink:  "https://github.com/acme/reports/pull/42",
	})
	require.NoError(t, err)

	review, err := svc.AddReview(context.Background(), work.AddReviewRequest{
		OrganizationID:  "org-1",
		ReviewedBy:      "mgr-1",
		SubmittedWorkID: sub.ID,
		Content:         "Solid numbers, tighten the summary.",
	})
	require.NoError(t, err)

	listed, err := svc.ListReviews(context.Background(), sub.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	edited, err := svc.EditReview(context.Background(), work.EditReviewRequest{
		ReviewID: review.ID,
		Content:  "Approved as is.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Approved as is.", edited.Content)

	require.NoError(t, svc.DeleteReview(context.Background(), review.ID))
	listed, err = svc.ListReviews(context.Background(), sub.ID)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestAddReviewUnknownSubmission(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	_, err := svc.AddReview(context.Background(), work.AddReviewRequest{
		OrganizationID:  "org-1",
		ReviewedBy:      "mgr-1",
		SubmittedWorkID: "sub-missing",
		Content:         "ghost review",
	})
	assert.ErrorIs(t, err, work.ErrSubmissionNotFound)
}
