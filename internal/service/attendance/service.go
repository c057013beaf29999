package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/deeraj1899/EMS/internal/config"
	"github.com/deeraj1899/EMS/internal/domain/attendance"
	"github.com/deeraj1899/EMS/internal/domain/employee"
)

const dateLayout = "2006-01-02"

type service struct {
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
	policy         config.AttendancePolicy
	now            func() time.Time
}

func NewService(
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
	policy config.AttendancePolicy,
) attendance.Service {
	return &service{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		policy:         policy,
		now:            time.Now,
	}
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CheckIn implements attendance.Service.
func (s *service) CheckIn(ctx context.Context, employeeID string) (attendance.CheckInResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return attendance.CheckInResponse{}, err
	}

	now := s.now()
	today := dateOf(now)

	cutoff := today.Add(time.Duration(s.policy.WorkStartHour)*time.Hour +
		time.Duration(s.policy.WorkStartMinute)*time.Minute)
	status := attendance.StatusPresent
	if now.After(cutoff) {
		status = attendance.StatusLate
	}

	checkIn := now
	_, err := s.attendanceRepo.Create(ctx, attendance.Record{
		EmployeeID:  employeeID,
		Date:        today,
		CheckInTime: &checkIn,
		Status:      status,
	})
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	return attendance.CheckInResponse{
		Status:      status,
		CheckInTime: now,
		Date:        today.Format(dateLayout),
	}, nil
}

// GetEmployeeRecords implements attendance.Service.
func (s *service) GetEmployeeRecords(ctx context.Context, employeeID string) (attendance.EmployeeRecords, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.EmployeeRecords{}, err
	}

	records, err := s.attendanceRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return attendance.EmployeeRecords{}, err
	}

	views := make([]attendance.RecordView, 0, len(records))
	for _, rec := range records {
		views = append(views, toView(rec))
	}

	return attendance.EmployeeRecords{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Mail:         emp.Mail,
		Records:      views,
	}, nil
}

func toView(rec attendance.Record) attendance.RecordView {
	view := attendance.RecordView{
		Date:        rec.Date.Format(dateLayout),
		CheckInTime: "N/A",
		Status:      rec.Status,
	}
	if rec.CheckInTime != nil {
		view.CheckInTime = rec.CheckInTime.Format(time.RFC3339)
	}
	return view
}

// StatusToday implements attendance.Service.
func (s *service) StatusToday(ctx context.Context, organizationID string) (attendance.StatusReport, error) {
	employees, err := s.employeeRepo.ListByOrganization(ctx, organizationID)
	if err != nil {
		return attendance.StatusReport{}, err
	}

	records, err := s.attendanceRepo.ListByDate(ctx, organizationID, dateOf(s.now()))
	if err != nil {
		return attendance.StatusReport{}, err
	}

	return buildReport(employees, records), nil
}

// DepartmentStatusToday implements attendance.Service.
func (s *service) DepartmentStatusToday(ctx context.Context, organizationID, managerID string) (attendance.StatusReport, error) {
	manager, err := s.employeeRepo.GetByID(ctx, managerID)
	if err != nil {
		return attendance.StatusReport{}, err
	}
	if manager.Role != employee.RoleManager {
		return attendance.StatusReport{}, employee.ErrManagerOnly
	}
	if manager.OrganizationID != organizationID {
		return attendance.StatusReport{}, employee.ErrDepartmentMismatch
	}

	employees, err := s.employeeRepo.ListByDepartment(ctx, manager.DepartmentID)
	if err != nil {
		return attendance.StatusReport{}, err
	}

	records, err := s.attendanceRepo.ListByDateAndDepartment(ctx, manager.DepartmentID, dateOf(s.now()))
	if err != nil {
		return attendance.StatusReport{}, err
	}

	return buildReport(employees, records), nil
}

// buildReport merges the day's records with the full roster. Employees
// without a record count as Absent.
func buildReport(employees []employee.Employee, records []attendance.Record) attendance.StatusReport {
	byEmployee := make(map[string]attendance.Record, len(records))
	for _, rec := range records {
		byEmployee[rec.EmployeeID] = rec
	}

	report := attendance.StatusReport{
		EmployeeStatus: make([]attendance.EmployeeStatus, 0, len(employees)),
	}
	for _, emp := range employees {
		status := attendance.EmployeeStatus{
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
			Status:       attendance.StatusAbsent,
			CheckInTime:  "N/A",
		}
		if rec, ok := byEmployee[emp.ID]; ok {
			status.Status = rec.Status
			if rec.CheckInTime != nil {
				status.CheckInTime = rec.CheckInTime.Format(time.RFC3339)
			}
		}

		switch status.Status {
		case attendance.StatusPresent:
			report.Counts.Present++
		case attendance.StatusLate:
			report.Counts.Late++
		default:
			report.Counts.Absent++
		}
		report.EmployeeStatus = append(report.EmployeeStatus, status)
	}
	return report
}

// MarkAbsentees implements attendance.Service. Each employee gets an
// individual outcome; one bad row does not abort the sweep.
func (s *service) MarkAbsentees(ctx context.Context) ([]attendance.AbsenteeOutcome, error) {
	employees, err := s.employeeRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	today := dateOf(s.now())
	outcomes := make([]attendance.AbsenteeOutcome, 0, len(employees))
	for _, emp := range employees {
		outcome := attendance.AbsenteeOutcome{EmployeeID: emp.ID}

		_, err := s.attendanceRepo.Create(ctx, attendance.Record{
			EmployeeID: emp.ID,
			Date:       today,
			Status:     attendance.StatusAbsent,
		})
		switch {
		case err == nil:
			outcome.Created = true
		case errors.Is(err, attendance.ErrAlreadyCheckedIn):
			// Already has a record for today; nothing to do.
		default:
			outcome.Error = err.Error()
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}
