package leave

import (
	"context"
	"errors"
	"time"

	"github.com/deeraj1899/EMS/internal/config"
	"github.com/deeraj1899/EMS/internal/domain/employee"
	"github.com/deeraj1899/EMS/internal/domain/leave"
	"github.com/deeraj1899/EMS/internal/pkg/database"
	"github.com/deeraj1899/EMS/internal/pkg/validator"
	"github.com/deeraj1899/EMS/internal/repository/postgresql"
)

// maxStatusRetries bounds the optimistic-lock retry loop on status
// updates.
const maxStatusRetries = 3

type service struct {
	ledgerRepo   leave.LedgerRepository
	employeeRepo employee.Repository
	policy       config.LeavePolicy
	now          func() time.Time
	runTx        func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewService(
	ledgerRepo leave.LedgerRepository,
	employeeRepo employee.Repository,
	db *database.DB,
	policy config.LeavePolicy,
) leave.Service {
	return &service{
		ledgerRepo:   ledgerRepo,
		employeeRepo: employeeRepo,
		policy:       policy,
		now:          time.Now,
		runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// defaultBalances builds a fresh ledger's balances from policy.
func defaultBalances(policy config.LeavePolicy) leave.Balances {
	return leave.Balances{
		Sick:     leave.Balance{Total: policy.SickTotal},
		Personal: leave.Balance{Total: policy.PersonalTotal},
		Official: leave.Balance{Total: policy.OfficialTotal},
		Vacation: leave.Balance{Total: policy.VacationTotal},
	}
}

// Apply implements leave.Service.
func (s *service) Apply(ctx context.Context, req leave.ApplyRequest) (leave.ApplyResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.ApplyResponse{}, err
	}

	leaveType, ok := leave.ParseType(req.LeaveType)
	if !ok {
		return leave.ApplyResponse{}, leave.ErrInvalidLeaveType
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	endDate, _ := validator.IsValidDate(req.EndDate)

	span := leave.DaySpan(startDate, endDate)
	if span == 0 {
		return leave.ApplyResponse{}, leave.ErrInvalidDateRange
	}

	// Requests may not start before the first of the current month.
	now := s.now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, startDate.Location())
	if startDate.Before(firstOfMonth) {
		return leave.ApplyResponse{}, leave.ErrDateOutOfWindow
	}

	if !leaveType.ExemptFromCaps() && span > s.policy.PerRequestCap {
		return leave.ApplyResponse{}, leave.ErrExceedsRequestCap
	}

	var resp leave.ApplyResponse
	err := s.withLedgerTx(ctx, req.EmployeeID, func(txCtx context.Context, ledger *leave.Ledger) error {
		if !leaveType.ExemptFromCaps() {
			used := approvedDaysInMonth(ledger.Requests, leaveType, startDate)
			if used+span > s.policy.MonthlyCap {
				return leave.ErrExceedsMonthlyCap
			}
		}

		if ledger.Balances.Get(leaveType).Available() < span {
			return leave.ErrInsufficientBalance
		}

		request := leave.Request{
			EmployeeID: req.EmployeeID,
			LeaveType:  leaveType,
			StartDate:  startDate,
			EndDate:    endDate,
			Reason:     req.Reason,
			Status:     leave.StatusPending,
		}
		created, err := s.ledgerRepo.AppendRequest(txCtx, ledger.ID, request)
		if err != nil {
			return err
		}
		ledger.Requests = append(ledger.Requests, created)

		// The debit happens at approval; Apply only records the request.
		resp = leave.ApplyResponse{Balances: ledger.Balances}
		return nil
	})
	if err != nil {
		return leave.ApplyResponse{}, err
	}
	return resp, nil
}

// approvedDaysInMonth sums the day-spans of Approved same-type requests
// that fall entirely within the month containing monthOf.
func approvedDaysInMonth(requests []leave.Request, leaveType leave.Type, monthOf time.Time) int {
	monthStart := time.Date(monthOf.Year(), monthOf.Month(), 1, 0, 0, 0, 0, monthOf.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	total := 0
	for _, r := range requests {
		if r.LeaveType != leaveType || r.Status != leave.StatusApproved {
			continue
		}
		if r.StartDate.Before(monthStart) || !r.EndDate.Before(monthEnd) {
			continue
		}
		total += r.Days()
	}
	return total
}

// withLedgerTx loads (or lazily creates) the employee's ledger inside a
// transaction and hands it to fn.
func (s *service) withLedgerTx(ctx context.Context, employeeID string, fn func(txCtx context.Context, ledger *leave.Ledger) error) error {
	return s.runTx(ctx, func(txCtx context.Context) error {
		ledger, err := s.ledgerRepo.GetByEmployeeID(txCtx, employeeID)
		if errors.Is(err, leave.ErrLedgerNotFound) {
			ledger, err = s.ledgerRepo.Create(txCtx, leave.Ledger{
				EmployeeID: employeeID,
				Balances:   defaultBalances(s.policy),
				LastReset:  s.now(),
			})
		}
		if err != nil {
			return err
		}
		return fn(txCtx, &ledger)
	})
}

// UpdateStatus implements leave.Service.
func (s *service) UpdateStatus(ctx context.Context, req leave.UpdateStatusRequest) (leave.Ledger, error) {
	if err := req.Validate(); err != nil {
		return leave.Ledger{}, err
	}

	target, ok := leave.ParseStatus(req.Status)
	if !ok {
		return leave.Ledger{}, leave.ErrInvalidStatus
	}

	var result leave.Ledger
	var err error
	for attempt := 0; attempt < maxStatusRetries; attempt++ {
		result, err = s.transition(ctx, req.EmployeeID, req.RequestID, target)
		if !errors.Is(err, leave.ErrConcurrentUpdate) {
			break
		}
	}
	return result, err
}

func (s *service) transition(ctx context.Context, employeeID, requestID string, target leave.Status) (leave.Ledger, error) {
	var result leave.Ledger
	err := s.runTx(ctx, func(txCtx context.Context) error {
		ledger, err := s.ledgerRepo.GetByEmployeeID(txCtx, employeeID)
		if err != nil {
			return err
		}

		request := ledger.FindRequest(requestID)
		if request == nil {
			return leave.ErrRequestNotFound
		}

		// Re-setting the same status is a no-op; balances stay put.
		if request.Status == target {
			result = ledger
			return nil
		}

		span := request.Days()
		balance := ledger.Balances.Get(request.LeaveType)

		switch target {
		case leave.StatusApproved:
			if balance.Available() < span {
				return leave.ErrInsufficientBalance
			}
			balance.Used += span
		case leave.StatusRejected:
			// Rejecting an approved request refunds exactly the days
			// debited at approval.
			if request.Status == leave.StatusApproved {
				balance.Used -= span
				if balance.Used < 0 {
					balance.Used = 0
				}
			}
		}
		ledger.Balances.Set(request.LeaveType, balance)

		if err := s.ledgerRepo.UpdateBalances(txCtx, ledger); err != nil {
			return err
		}
		if err := s.ledgerRepo.UpdateRequestStatus(txCtx, requestID, target); err != nil {
			return err
		}

		request.Status = target
		ledger.Version++
		result = ledger
		return nil
	})
	if err != nil {
		return leave.Ledger{}, err
	}
	return result, nil
}

// GetEmployeeLeaves implements leave.Service.
func (s *service) GetEmployeeLeaves(ctx context.Context, employeeID string, filter leave.RequestFilter) (leave.StatusResponse, error) {
	ledger, err := s.ledgerRepo.GetByEmployeeID(ctx, employeeID)
	if errors.Is(err, leave.ErrLedgerNotFound) {
		// No ledger yet reads as unconsumed default balances.
		return leave.StatusResponse{
			Requests: make([]leave.Request, 0),
			Balances: defaultBalances(s.policy),
		}, nil
	}
	if err != nil {
		return leave.StatusResponse{}, err
	}

	return leave.StatusResponse{
		Requests: filterRequests(ledger.Requests, filter, s.now()),
		Balances: ledger.Balances,
	}, nil
}

// filterRequests narrows requests by their start date. Monthly keeps the
// current calendar month; weekly keeps everything since the most recent
// Sunday.
func filterRequests(requests []leave.Request, filter leave.RequestFilter, now time.Time) []leave.Request {
	if filter == leave.FilterNone {
		return requests
	}

	out := make([]leave.Request, 0, len(requests))
	switch filter {
	case leave.FilterMonthly:
		for _, r := range requests {
			if r.StartDate.Year() == now.Year() && r.StartDate.Month() == now.Month() {
				out = append(out, r)
			}
		}
	case leave.FilterWeekly:
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		weekStart := today.AddDate(0, 0, -int(today.Weekday()))
		for _, r := range requests {
			if !r.StartDate.Before(weekStart) {
				out = append(out, r)
			}
		}
	}
	return out
}

// ListOrganizationLeaves implements leave.Service.
func (s *service) ListOrganizationLeaves(ctx context.Context, organizationID string) ([]leave.LedgerWithEmployee, error) {
	return s.ledgerRepo.ListByOrganization(ctx, organizationID)
}

// ListDepartmentLeaves implements leave.Service.
func (s *service) ListDepartmentLeaves(ctx context.Context, organizationID, managerID string) ([]leave.LedgerWithEmployee, error) {
	manager, err := s.employeeRepo.GetByID(ctx, managerID)
	if err != nil {
		return nil, err
	}
	if manager.Role != employee.RoleManager {
		return nil, employee.ErrManagerOnly
	}
	return s.ledgerRepo.ListByDepartment(ctx, organizationID, manager.DepartmentID)
}
