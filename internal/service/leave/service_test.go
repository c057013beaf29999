package leave

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deeraj1899/EMS/internal/config"
	"github.com/deeraj1899/EMS/internal/domain/employee"
	"github.com/deeraj1899/EMS/internal/domain/leave"
)

// fakeLedgerRepo keeps a single employee's ledger in memory and mimics
// the repository's optimistic version check.
type fakeLedgerRepo struct {
	ledger     *leave.Ledger
	nextReqID  int
	updateErrs []error
}

func (f *fakeLedgerRepo) Create(_ context.Context, ledger leave.Ledger) (leave.Ledger, error) {
	ledger.ID = "ledger-1"
	ledger.Version = 1
	stored := ledger
	f.ledger = &stored
	return ledger, nil
}

func (f *fakeLedgerRepo) GetByEmployeeID(_ context.Context, employeeID string) (leave.Ledger, error) {
	if f.ledger == nil || f.ledger.EmployeeID != employeeID {
		return leave.Ledger{}, leave.ErrLedgerNotFound
	}
	out := *f.ledger
	out.Requests = append([]leave.Request(nil), f.ledger.Requests...)
	return out, nil
}

func (f *fakeLedgerRepo) UpdateBalances(_ context.Context, ledger leave.Ledger) error {
	if len(f.updateErrs) > 0 {
		err := f.updateErrs[0]
		f.updateErrs = f.updateErrs[1:]
		if err != nil {
			return err
		}
	}
	if f.ledger == nil || f.ledger.Version != ledger.Version {
		return leave.ErrConcurrentUpdate
	}
	f.ledger.Balances = ledger.Balances
	f.ledger.Version++
	return nil
}

func (f *fakeLedgerRepo) AppendRequest(_ context.Context, ledgerID string, request leave.Request) (leave.Request, error) {
	f.nextReqID++
	request.ID = fmt.Sprintf("req-%d", f.nextReqID)
	request.CreatedAt = time.Now()
	f.ledger.Requests = append(f.ledger.Requests, request)
	return request, nil
}

func (f *fakeLedgerRepo) UpdateRequestStatus(_ context.Context, requestID string, status leave.Status) error {
	for i := range f.ledger.Requests {
		if f.ledger.Requests[i].ID == requestID {
			f.ledger.Requests[i].Status = status
			return nil
		}
	}
	return leave.ErrRequestNotFound
}

func (f *fakeLedgerRepo) ListByOrganization(_ context.Context, _ string) ([]leave.LedgerWithEmployee, error) {
	return nil, nil
}

func (f *fakeLedgerRepo) ListByDepartment(_ context.Context, _, _ string) ([]leave.LedgerWithEmployee, error) {
	return nil, nil
}

func (f *fakeLedgerRepo) DeleteByEmployeeIDs(_ context.Context, _ []string) error {
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
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

func (f *fakeEmployeeRepo) ListAll(_ context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) UpdatePasswordHash(_ context.Context, _, _ string) error { return nil }

func (f *fakeEmployeeRepo) UpdateProfilePhoto(_ context.Context, _, _ string) error { return nil }

func (f *fakeEmployeeRepo) AdjustProjectsPending(_ context.Context, _ string, _ int) error {
	return nil
}

func (f *fakeEmployeeRepo) Promote(_ context.Context, _ string, _ employee.Role, _ string) error {
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, _, _ string) error { return nil }

func (f *fakeEmployeeRepo) DeleteByOrganization(_ context.Context, _ string) error { return nil }

func testPolicy() config.LeavePolicy {
	return config.LeavePolicy{
		SickTotal:     10,
		PersonalTotal: 5,
		OfficialTotal: 3,
		VacationTotal: 15,
		PerRequestCap: 3,
		MonthlyCap:    3,
	}
}

// fixedNow is a Wednesday; the week containing it starts Sunday March 15.
var fixedNow = time.Date(2026, time.March, 18, 9, 0, 0, 0, time.UTC)

func newTestService(ledgerRepo *fakeLedgerRepo, employeeRepo *fakeEmployeeRepo) *service {
	return &service{
		ledgerRepo:   ledgerRepo,
		employeeRepo: employeeRepo,
		policy:       testPolicy(),
		now:          func() time.Time { return fixedNow },
		runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}

func seedLedger(repo *fakeLedgerRepo, balances leave.Balances, requests ...leave.Request) {
	repo.ledger = &leave.Ledger{
		ID:         "ledger-1",
		EmployeeID: "emp-1",
		Balances:   balances,
		Requests:   requests,
		Version:    1,
	}
	repo.nextReqID = len(requests)
}

func TestApplyCreatesLedgerLazily(t *testing.T) {
	repo := &fakeLedgerRepo{}
	svc := newTestService(repo, &fakeEmployeeRepo{})

	resp, err := svc.Apply(context.Background(), leave.ApplyRequest{
		EmployeeID: "emp-1",
		LeaveType:  "Sick",
		StartDate:  "2026-03-20",
		EndDate:    "2026-03-21",
		Reason:     "flu",
	})
	require.NoError(t, err)

	// Balances stay untouched until approval.
	assert.Equal(t, 10, resp.Balances.Sick.Total)
	assert.Equal(t, 0, resp.Balances.Sick.Used)

	require.NotNil(t, repo.ledger)
	require.Len(t, repo.ledger.Requests, 1)
	assert.Equal(t, leave.StatusPending, repo.ledger.Requests[0].Status)
	assert.Equal(t, leave.TypeSick, repo.ledger.Requests[0].LeaveType)
}

func TestApplyRejectsInvertedDateRange(t *testing.T) {
	svc := newTestService(&fakeLedgerRepo{}, &fakeEmployeeRepo{})

	_, err := svc.Apply(context.Background(), leave.ApplyRequest{
		EmployeeID: "emp-1",
		LeaveType:  "Sick",
		StartDate:  "2026-03-22",
		EndDate:    "2026-03-20",
		Reason:     "flu",
	})
	assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
}

func TestApplyRejectsStartBeforeCurrentMonth(t *testing.T) {
	svc := newTestService(&fakeLedgerRepo{}, &fakeEmployeeRepo{})

	_, err := svc.Apply(context.Background(), leave.ApplyRequest{
		EmployeeID: "emp-1",
		LeaveType:  "Sick",
		StartDate:  "2026-02-27",
		EndDate:    "2026-02-28",
		Reason:     "flu",
	})
	assert.ErrorIs(t, err, leave.ErrDateOutOfWindow)
}

func TestApplyPerRequestCap(t *testing.T) {
	repo := &fakeLedgerRepo{}
	svc := newTestService(repo, &fakeEmployeeRepo{})

	// Four Personal days exceed the three-day cap.
	_, err := svc.Apply(context.Background(), leave.ApplyRequest{
		EmployeeID: "emp-1",
		LeaveType:  "Personal",
		StartDate:  "2026-03-23",
		EndDate:    "2026-03-26",
		Reason:     "errand",
	})
	assert.ErrorIs(t, err, leave.ErrExceedsRequestCap)

	// Three days are exactly at the cap.
	_, err = svc.Apply(context.Background(), leave.ApplyRequest{
		EmployeeID: "emp-1",
		LeaveType:  "Personal",
		StartDate:  "2026-03-23",
		EndDate:    "2026-03-25",
		Reason:     "errand",
	})
	assert.NoError(t, err)

	// Sick leave is exempt from the cap entirely.
	_, err = svc.Apply(context.Background(), leave.ApplyRequest{
		EmployeeID: "emp-1",
		LeaveType:  "Sick",
		StartDate:  "2026-03-20",
		EndDate:    "2026-03-27",
		Reason:     "surgery",
	})
	assert.NoError(t, err)
}

func TestApplyMonthlyCapCountsApprovedDays(t *testing.T) {
	repo := &fakeLedgerRepo{}
	seedLedger(repo, defaultBalances(testPolicy()), leave.Request{
		ID:         "req-1",
		EmployeeID: "emp-1",
		LeaveType:  leave.TypePersonal,
		StartDate:  time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC),
		Status:     leave.StatusApproved,
	})
	svc := newTestService(repo, &fakeEmployeeRepo{})

	// Two approved Personal days already in March; two more break the cap.
	_, err := svc.Apply(context.Background(), leave.ApplyRequest{
		EmployeeID: "emp-1",
		LeaveType:  "Personal",
		StartDate:  "2026-03-23",
		EndDate:    "2026-03-24",
		Reason:     "errand",
	})
	assert.ErrorIs(t, err, leave.ErrExceedsMonthlyCap)

	// One more day still fits.
	_, err = svc.Apply(context.Background(), leave.ApplyRequest{
		EmployeeID: "emp-1",
		LeaveType:  "Personal",
		StartDate:  "2026-03-23",
		EndDate:    "2026-03-23",
		Reason:     "errand",
	})
	assert.NoError(t, err)
}

func TestApplyInsufficientBalance(t *testing.T) {
	repo := &fakeLedgerRepo{}
	balances := defaultBalances(testPolicy())
	balances.Official.Used = balances.Official.Total
	seedLedger(repo, balances)
	svc := newTestService(repo, &fakeEmployeeRepo{})

	_, err := svc.Apply(context.Background(), leave.ApplyRequest{
		EmployeeID: "emp-1",
		LeaveType:  "Official",
		StartDate:  "2026-03-23",
		EndDate:    "2026-03-23",
		Reason:     "site visit",
	})
	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)
}

func pendingSickRequest() leave.Request {
	return leave.Request{
		ID:         "req-1",
		EmployeeID: "emp-1",
		LeaveType:  leave.TypeSick,
		StartDate:  time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, time.March, 22, 0, 0, 0, 0, time.UTC),
		Status:     leave.StatusPending,
	}
}

func TestUpdateStatusApproveDebitsBalance(t *testing.T) {
	repo := &fakeLedgerRepo{}
	seedLedger(repo, defaultBalances(testPolicy()), pendingSickRequest())
	svc := newTestService(repo, &fakeEmployeeRepo{})

	ledger, err := svc.UpdateStatus(context.Background(), leave.UpdateStatusRequest{
		RequestID:  "req-1",
		EmployeeID: "emp-1",
		Status:     "Approved",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, ledger.Balances.Sick.Used)
	assert.Equal(t, leave.StatusApproved, repo.ledger.Requests[0].Status)
	assert.Equal(t, 3, repo.ledger.Balances.Sick.Used)
}

func TestUpdateStatusSameStatusIsNoOp(t *testing.T) {
	repo := &fakeLedgerRepo{}
	req := pendingSickRequest()
	req.Status = leave.StatusApproved
	balances := defaultBalances(testPolicy())
	balances.Sick.Used = 3
	seedLedger(repo, balances, req)
	svc := newTestService(repo, &fakeEmployeeRepo{})

	ledger, err := svc.UpdateStatus(context.Background(), leave.UpdateStatusRequest{
		RequestID:  "req-1",
		EmployeeID: "emp-1",
		Status:     "Approved",
	})
	require.NoError(t, err)

	// No double debit.
	assert.Equal(t, 3, ledger.Balances.Sick.Used)
	assert.Equal(t, 3, repo.ledger.Balances.Sick.Used)
}

func TestUpdateStatusRejectApprovedRefunds(t *testing.T) {
	repo := &fakeLedgerRepo{}
	req := pendingSickRequest()
	req.Status = leave.StatusApproved
	balances := defaultBalances(testPolicy())
	balances.Sick.Used = 3
	seedLedger(repo, balances, req)
	svc := newTestService(repo, &fakeEmployeeRepo{})

	ledger, err := svc.UpdateStatus(context.Background(), leave.UpdateStatusRequest{
		RequestID:  "req-1",
		EmployeeID: "emp-1",
		Status:     "Rejected",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, ledger.Balances.Sick.Used)
	assert.Equal(t, leave.StatusRejected, repo.ledger.Requests[0].Status)
}

func TestUpdateStatusRejectPendingLeavesBalance(t *testing.T) {
	repo := &fakeLedgerRepo{}
	seedLedger(repo, defaultBalances(testPolicy()), pendingSickRequest())
	svc := newTestService(repo, &fakeEmployeeRepo{})

	ledger, err := svc.UpdateStatus(context.Background(), leave.UpdateStatusRequest{
		RequestID:  "req-1",
		EmployeeID: "emp-1",
		Status:     "Rejected",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, ledger.Balances.Sick.Used)
	assert.Equal(t, leave.StatusRejected, repo.ledger.Requests[0].Status)
}

func TestUpdateStatusApproveInsufficientBalance(t *testing.T) {
	repo := &fakeLedgerRepo{}
	balances := defaultBalances(testPolicy())
	balances.Sick.Used = 9
	seedLedger(repo, balances, pendingSickRequest())
	svc := newTestService(repo, &fakeEmployeeRepo{})

	_, err := svc.UpdateStatus(context.Background(), leave.UpdateStatusRequest{
		RequestID:  "req-1",
		EmployeeID: "emp-1",
		Status:     "Approved",
	})
	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)
	assert.Equal(t, leave.StatusPending, repo.ledger.Requests[0].Status)
}

func TestUpdateStatusRetriesOnConcurrentUpdate(t *testing.T) {
	repo := &fakeLedgerRepo{
		updateErrs: []error{leave.ErrConcurrentUpdate, leave.ErrConcurrentUpdate},
	}
	seedLedger(repo, defaultBalances(testPolicy()), pendingSickRequest())
	svc := newTestService(repo, &fakeEmployeeRepo{})

	ledger, err := svc.UpdateStatus(context.Background(), leave.UpdateStatusRequest{
		RequestID:  "req-1",
		EmployeeID: "emp-1",
		Status:     "Approved",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, ledger.Balances.Sick.Used)
}

func TestUpdateStatusGivesUpAfterRetries(t *testing.T) {
	repo := &fakeLedgerRepo{
		updateErrs: []error{
			leave.ErrConcurrentUpdate,
			leave.ErrConcurrentUpdate,
			leave.ErrConcurrentUpdate,
		},
	}
	seedLedger(repo, defaultBalances(testPolicy()), pendingSickRequest())
	svc := newTestService(repo, &fakeEmployeeRepo{})

	_, err := svc.UpdateStatus(context.Background(), leave.UpdateStatusRequest{
		RequestID:  "req-1",
		EmployeeID: "emp-1",
		Status:     "Approved",
	})
	assert.ErrorIs(t, err, leave.ErrConcurrentUpdate)
}

func TestUpdateStatusUnknownRequest(t *testing.T) {
	repo := &fakeLedgerRepo{}
	seedLedger(repo, defaultBalances(testPolicy()))
	svc := newTestService(repo, &fakeEmployeeRepo{})

	_, err := svc.UpdateStatus(context.Background(), leave.UpdateStatusRequest{
		RequestID:  "req-missing",
		EmployeeID: "emp-1",
		Status:     "Approved",
	})
	assert.ErrorIs(t, err, leave.ErrRequestNotFound)
}

func TestGetEmployeeLeavesWithoutLedger(t *testing.T) {
	svc := newTestService(&fakeLedgerRepo{}, &fakeEmployeeRepo{})

	resp, err := svc.GetEmployeeLeaves(context.Background(), "emp-1", leave.FilterNone)
	require.NoError(t, err)

	assert.Empty(t, resp.Requests)
	assert.Equal(t, defaultBalances(testPolicy()), resp.Balances)
}

func TestGetEmployeeLeavesFilters(t *testing.T) {
	repo := &fakeLedgerRepo{}
	thisWeek := leave.Request{
		ID:        "req-1",
		LeaveType: leave.TypeSick,
		StartDate: time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC),
	}
	earlierThisMonth := leave.Request{
		ID:        "req-2",
		LeaveType: leave.TypeSick,
		StartDate: time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC),
	}
	lastMonth := leave.Request{
		ID:        "req-3",
		LeaveType: leave.TypeSick,
		StartDate: time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.February, 11, 0, 0, 0, 0, time.UTC),
	}
	seedLedger(repo, defaultBalances(testPolicy()), thisWeek, earlierThisMonth, lastMonth)
	svc := newTestService(repo, &fakeEmployeeRepo{})

	all, err := svc.GetEmployeeLeaves(context.Background(), "emp-1", leave.FilterNone)
	require.NoError(t, err)
	assert.Len(t, all.Requests, 3)

	monthly, err := svc.GetEmployeeLeaves(context.Background(), "emp-1", leave.FilterMonthly)
	require.NoError(t, err)
	require.Len(t, monthly.Requests, 2)
	assert.Equal(t, "req-1", monthly.Requests[0].ID)
	assert.Equal(t, "req-2", monthly.Requests[1].ID)

	weekly, err := svc.GetEmployeeLeaves(context.Background(), "emp-1", leave.FilterWeekly)
	require.NoError(t, err)
	require.Len(t, weekly.Requests, 1)
	assert.Equal(t, "req-1", weekly.Requests[0].ID)
}

func TestListDepartmentLeavesRequiresManager(t *testing.T) {
	emps := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"mgr-1": {ID: "mgr-1", Role: employee.RoleManager, DepartmentID: "dept-1"},
		"emp-1": {ID: "emp-1", Role: employee.RoleEmployee, DepartmentID: "dept-1"},
		"adm-1": {ID: "adm-1", Role: employee.RoleAdmin, DepartmentID: "dept-1"},
	}}
	svc := newTestService(&fakeLedgerRepo{}, emps)

	_, err := svc.ListDepartmentLeaves(context.Background(), "org-1", "emp-1")
	assert.ErrorIs(t, err, employee.ErrManagerOnly)

	// Admins review organization-wide leaves elsewhere; the department
	// view is strictly the manager's.
	_, err = svc.ListDepartmentLeaves(context.Background(), "org-1", "adm-1")
	assert.ErrorIs(t, err, employee.ErrManagerOnly)

	_, err = svc.ListDepartmentLeaves(context.Background(), "org-1", "mgr-1")
	assert.NoError(t, err)
}

func TestDaySpan(t *testing.T) {
	start := time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, leave.DaySpan(start, start))
	assert.Equal(t, 3, leave.DaySpan(start, start.AddDate(0, 0, 2)))
	assert.Equal(t, 0, leave.DaySpan(start, start.AddDate(0, 0, -1)))
}
