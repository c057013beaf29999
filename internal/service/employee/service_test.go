package employee

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/deeraj1899/EMS/internal/domain/attendance"
	"github.com/deeraj1899/EMS/internal/domain/employee"
	"github.com/deeraj1899/EMS/internal/domain/leave"
	"github.com/deeraj1899/EMS/internal/domain/organization"
	"github.com/deeraj1899/EMS/internal/domain/work"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
	nextID    int
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.nextID++
	emp.ID = fmt.Sprintf("emp-%d", f.nextID)
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByMail(_ context.Context, organizationID, mail string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.OrganizationID == organizationID && emp.Mail == mail {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByMailAnyOrganization(_ context.Context, mail string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.Mail == mail {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListByOrganization(_ context.Context, organizationID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if emp.OrganizationID == organizationID {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListByDepartment(_ context.Context, departmentID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if emp.DepartmentID == departmentID {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListIDsByOrganization(_ context.Context, organizationID string) ([]string, error) {
	var out []string
	for _, emp := range f.employees {
		if emp.OrganizationID == organizationID {
			out = append(out, emp.ID)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListAll(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) UpdatePasswordHash(_ context.Context, id, hash string) error {
	emp, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.PasswordHash = hash
	f.employees[id] = emp
	return nil
}

func (f *fakeEmployeeRepo) UpdateProfilePhoto(_ context.Context, id, photoURL string) error {
	emp, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.ProfilePhotoURL = photoURL
	f.employees[id] = emp
	return nil
}

func (f *fakeEmployeeRepo) AdjustProjectsPending(_ context.Context, id string, delta int) error {
	emp, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.ProjectsPending += delta
	f.employees[id] = emp
	return nil
}

func (f *fakeEmployeeRepo) Promote(_ context.Context, id string, role employee.Role, adminCode string) error {
	emp, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.Role = role
	emp.AdminCode = &adminCode
	f.employees[id] = emp
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id, organizationID string) error {
	emp, ok := f.employees[id]
	if !ok || emp.OrganizationID != organizationID {
		return employee.ErrEmployeeNotFound
	}
	delete(f.employees, id)
	return nil
}

func (f *fakeEmployeeRepo) DeleteByOrganization(_ context.Context, organizationID string) error {
	for id, emp := range f.employees {
		if emp.OrganizationID == organizationID {
			delete(f.employees, id)
		}
	}
	return nil
}

type fakeOrgRepo struct{ orgs map[string]organization.Organization }

func (f *fakeOrgRepo) Create(_ context.Context, org organization.Organization) (organization.Organization, error) {
	return org, nil
}

func (f *fakeOrgRepo) GetByID(_ context.Context, id string) (organization.Organization, error) {
	org, ok := f.orgs[id]
	if !ok {
		return organization.Organization{}, organization.ErrOrganizationNotFound
	}
	return org, nil
}

func (f *fakeOrgRepo) GetByMail(_ context.Context, _ string) (organization.Organization, error) {
	return organization.Organization{}, organization.ErrOrganizationNotFound
}

func (f *fakeOrgRepo) GetByName(_ context.Context, _ string) (organization.Organization, error) {
	return organization.Organization{}, organization.ErrOrganizationNotFound
}

func (f *fakeOrgRepo) List(_ context.Context) ([]organization.Organization, error) { return nil, nil }

func (f *fakeOrgRepo) Delete(_ context.Context, _ string) error { return nil }

type fakeDeptRepo struct{ depts map[string]organization.Department }

func (f *fakeDeptRepo) Create(_ context.Context, dept organization.Department) (organization.Department, error) {
	return dept, nil
}

func (f *fakeDeptRepo) GetByID(_ context.Context, id, organizationID string) (organization.Department, error) {
	dept, ok := f.depts[id]
	if !ok || dept.OrganizationID != organizationID {
		return organization.Department{}, organization.ErrDepartmentNotFound
	}
	return dept, nil
}

func (f *fakeDeptRepo) ListByOrganization(_ context.Context, _ string) ([]organization.Department, error) {
	return nil, nil
}

func (f *fakeDeptRepo) DeleteByOrganization(_ context.Context, _ string) error { return nil }

// dependentRecorder implements the dependent-record repositories and
// logs the order deletes arrive in, plus which employee IDs they hit.
type dependentRecorder struct {
	calls []string
	ids   [][]string
}

func (d *dependentRecorder) record(name string, ids []string) {
	d.calls = append(d.calls, name)
	d.ids = append(d.ids, ids)
}

type fakeLedgerRepo struct{ rec *dependentRecorder }

func (f *fakeLedgerRepo) Create(_ context.Context, l leave.Ledger) (leave.Ledger, error) {
	return l, nil
}

func (f *fakeLedgerRepo) GetByEmployeeID(_ context.Context, _ string) (leave.Ledger, error) {
	return leave.Ledger{}, leave.ErrLedgerNotFound
}

func (f *fakeLedgerRepo) UpdateBalances(_ context.Context, _ leave.Ledger) error { return nil }

func (f *fakeLedgerRepo) AppendRequest(_ context.Context, _ string, r leave.Request) (leave.Request, error) {
	return r, nil
}

func (f *fakeLedgerRepo) UpdateRequestStatus(_ context.Context, _ string, _ leave.Status) error {
	return nil
}

func (f *fakeLedgerRepo) ListByOrganization(_ context.Context, _ string) ([]leave.LedgerWithEmployee, error) {
	return nil, nil
}

func (f *fakeLedgerRepo) ListByDepartment(_ context.Context, _, _ string) ([]leave.LedgerWithEmployee, error) {
	return nil, nil
}

func (f *fakeLedgerRepo) DeleteByEmployeeIDs(_ context.Context, ids []string) error {
	f.rec.record("ledgers", ids)
	return nil
}

type fakeAttendanceRepo struct{ rec *dependentRecorder }

func (f *fakeAttendanceRepo) Create(_ context.Context, r attendance.Record) (attendance.Record, error) {
	return r, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, _ string, _ time.Time) (attendance.Record, error) {
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) ListByEmployee(_ context.Context, _ string) ([]attendance.Record, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByDate(_ context.Context, _ string, _ time.Time) ([]attendance.Record, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByDateAndDepartment(_ context.Context, _ string, _ time.Time) ([]attendance.Record, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) DeleteByEmployeeIDs(_ context.Context, ids []string) error {
	f.rec.record("attendance", ids)
	return nil
}

type fakeWorkRepo struct{ rec *dependentRecorder }

func (f *fakeWorkRepo) Create(_ context.Context, w work.Work) (work.Work, error) { return w, nil }

func (f *fakeWorkRepo) GetByID(_ context.Context, _ string) (work.Work, error) {
	return work.Work{}, work.ErrWorkNotFound
}

func (f *fakeWorkRepo) ListByAssignee(_ context.Context, _ string) ([]work.Work, error) {
	return nil, nil
}

func (f *fakeWorkRepo) Delete(_ context.Context, _ string) error { return nil }

func (f *fakeWorkRepo) DeleteByEmployeeIDs(_ context.Context, ids []string) error {
	f.rec.record("works", ids)
	return nil
}

type fakeSubmissionRepo struct{ rec *dependentRecorder }

func (f *fakeSubmissionRepo) Create(_ context.Context, s work.SubmittedWork) (work.SubmittedWork, error) {
	return s, nil
}

func (f *fakeSubmissionRepo) GetByID(_ context.Context, _ string) (work.SubmittedWork, error) {
	return work.SubmittedWork{}, work.ErrSubmissionNotFound
}

func (f *fakeSubmissionRepo) ListBySubmitter(_ context.Context, _ string) ([]work.SubmittedWork, error) {
	return nil, nil
}

func (f *fakeSubmissionRepo) ListByAssigner(_ context.Context, _ string) ([]work.SubmittedWork, error) {
	return nil, nil
}

func (f *fakeSubmissionRepo) DeleteByEmployeeIDs(_ context.Context, ids []string) error {
	f.rec.record("submissions", ids)
	return nil
}

type fakeEmailService struct {
	credentialMails int
	promotionMails  int
	lastTo          string
	lastCode        string
	failSend        bool
}

func (f *fakeEmailService) SendAdminCredentials(_, _, _, _, _ string) error { return nil }

func (f *fakeEmailService) SendEmployeeCredentials(to, _, _, _ string) error {
	if f.failSend {
		return fmt.Errorf("smtp unavailable")
	}
	f.credentialMails++
	f.lastTo = to
	return nil
}

func (f *fakeEmailService) SendPromotionCode(to, _, code string) error {
	if f.failSend {
		return fmt.Errorf("smtp unavailable")
	}
	f.promotionMails++
	f.lastTo = to
	f.lastCode = code
	return nil
}

func (f *fakeEmailService) SendTemporaryPassword(_, _, _ string) error { return nil }

type fixture struct {
	svc      *service
	emps     *fakeEmployeeRepo
	email    *fakeEmailService
	recorder *dependentRecorder
}

func newFixture() fixture {
	rec := &dependentRecorder{}
	f := fixture{
		emps:     newFakeEmployeeRepo(),
		email:    &fakeEmailService{},
		recorder: rec,
	}
	f.svc = &service{
		employeeRepo: f.emps,
		orgRepo: &fakeOrgRepo{orgs: map[string]organization.Organization{
			"org-1": {ID: "org-1", Name: "Acme Corp"},
		}},
		deptRepo: &fakeDeptRepo{depts: map[string]organization.Department{
			"dept-1": {ID: "dept-1", OrganizationID: "org-1", Name: "Engineering"},
		}},
		ledgerRepo:     &fakeLedgerRepo{rec: rec},
		attendanceRepo: &fakeAttendanceRepo{rec: rec},
		workRepo:       &fakeWorkRepo{rec: rec},
		submissionRepo: &fakeSubmissionRepo{rec: rec},
		emailSvc:       f.email,
		runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
	return f
}

func validAddRequest() employee.AddEmployeeRequest {
	return employee.AddEmployeeRequest{
		OrganizationID: "org-1",
		Name:           "Priya",
		Mail:           "priya@acme.test",
		Password:       "654321",
		DepartmentID:   "dept-1",
		Role:           "Employee",
		Age:            28,
	}
}

func TestAddCreatesEmployeeAndMailsCredentials(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.Add(context.Background(), validAddRequest())
	require.NoError(t, err)

	assert.Equal(t, "Priya", resp.Name)
	assert.Equal(t, employee.RoleEmployee, resp.Role)
	assert.Equal(t, "Engineering", resp.DepartmentName)

	stored, err := f.emps.GetByMail(context.Background(), "org-1", "priya@acme.test")
	require.NoError(t, err)

	// Password is stored hashed, never in the clear.
	cost, err := bcrypt.Cost([]byte(stored.PasswordHash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)

	// Plain employees carry no admin code.
	assert.Nil(t, stored.AdminCode)

	assert.Equal(t, 1, f.email.credentialMails)
	assert.Equal(t, "priya@acme.test", f.email.lastTo)
}

func TestAddManagerGetsAdminCode(t *testing.T) {
	f := newFixture()

	req := validAddRequest()
	req.Role = "Manager"
	_, err := f.svc.Add(context.Background(), req)
	require.NoError(t, err)

	stored, err := f.emps.GetByMail(context.Background(), "org-1", req.Mail)
	require.NoError(t, err)
	require.NotNil(t, stored.AdminCode)
	assert.Len(t, *stored.AdminCode, 5)
}

func TestAddRejectsDuplicateMail(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Add(context.Background(), validAddRequest())
	require.NoError(t, err)

	req := validAddRequest()
	req.Name = "Priya Two"
	_, err = f.svc.Add(context.Background(), req)
	assert.ErrorIs(t, err, employee.ErrMailExists)
}

func TestAddUnknownDepartment(t *testing.T) {
	f := newFixture()

	req := validAddRequest()
	req.DepartmentID = "dept-missing"
	_, err := f.svc.Add(context.Background(), req)
	assert.ErrorIs(t, err, organization.ErrDepartmentNotFound)
}

func TestAddSucceedsWhenMailFails(t *testing.T) {
	f := newFixture()
	f.email.failSend = true

	resp, err := f.svc.Add(context.Background(), validAddRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
}

func TestPromoteMintsCodeAndMailsIt(t *testing.T) {
	f := newFixture()

	created, err := f.svc.Add(context.Background(), validAddRequest())
	require.NoError(t, err)

	err = f.svc.Promote(context.Background(), created.ID)
	require.NoError(t, err)

	stored, err := f.emps.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, employee.RoleManager, stored.Role)
	require.NotNil(t, stored.AdminCode)
	assert.Len(t, *stored.AdminCode, 5)

	assert.Equal(t, 1, f.email.promotionMails)
	assert.Equal(t, "priya@acme.test", f.email.lastTo)
	assert.Equal(t, *stored.AdminCode, f.email.lastCode)
}

func TestPromoteUnknownEmployee(t *testing.T) {
	f := newFixture()

	err := f.svc.Promote(context.Background(), "emp-missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDeleteCascadesDependentRecords(t *testing.T) {
	f := newFixture()

	created, err := f.svc.Add(context.Background(), validAddRequest())
	require.NoError(t, err)

	err = f.svc.Delete(context.Background(), created.ID, "org-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"attendance", "ledgers", "submissions", "works"}, f.recorder.calls)
	for _, ids := range f.recorder.ids {
		assert.Equal(t, []string{created.ID}, ids)
	}

	_, err = f.emps.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDeleteRejectsWrongOrganization(t *testing.T) {
	f := newFixture()

	created, err := f.svc.Add(context.Background(), validAddRequest())
	require.NoError(t, err)

	err = f.svc.Delete(context.Background(), created.ID, "org-2")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	// Nothing was touched.
	assert.Empty(t, f.recorder.calls)
	_, err = f.emps.GetByID(context.Background(), created.ID)
	assert.NoError(t, err)
}

func TestListDepartmentColleaguesExcludesSelf(t *testing.T) {
	f := newFixture()

	req := validAddRequest()
	req.Role = "Manager"
	mgr, err := f.svc.Add(context.Background(), req)
	require.NoError(t, err)

	colleague := validAddRequest()
	colleague.Mail = "rahul@acme.test"
	colleague.Name = "Rahul"
	_, err = f.svc.Add(context.Background(), colleague)
	require.NoError(t, err)

	out, err := f.svc.ListDepartmentColleagues(context.Background(), mgr.ID)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Rahul", out[0].Name)
}

func TestListDepartmentColleaguesRequiresManager(t *testing.T) {
	f := newFixture()

	created, err := f.svc.Add(context.Background(), validAddRequest())
	require.NoError(t, err)

	_, err = f.svc.ListDepartmentColleagues(context.Background(), created.ID)
	assert.ErrorIs(t, err, employee.ErrManagerOnly)
}
