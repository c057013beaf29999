package leave

import (
	"time"

	"github.com/deeraj1899/EMS/internal/pkg/validator"
)

// ApplyRequest is the payload for a new leave request. EmployeeID comes
// from the JWT, never from the body.
type ApplyRequest struct {
	EmployeeID string `json:"-"`
	LeaveType  string `json:"leave_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
}

// Validate checks field presence and shape. Policy checks (caps, window,
// balance) live in the service; this only guards the wire format.
func (r ApplyRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "is required"})
	}
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateStatusRequest transitions one request to Approved or Rejected.
type UpdateStatusRequest struct {
	RequestID  string `json:"-"`
	EmployeeID string `json:"employee_id"`
	Status     string `json:"status"`
}

func (r UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{Field: "request_id", Message: "is required"})
	}
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RequestFilter narrows an employee's own request listing.
type RequestFilter string

const (
	FilterNone    RequestFilter = ""
	FilterMonthly RequestFilter = "monthly"
	FilterWeekly  RequestFilter = "weekly"
)

// ApplyResponse echoes the (unchanged) balances after a successful apply;
// the debit happens at approval, not application.
type ApplyResponse struct {
	Balances Balances `json:"leave_balances"`
}

// StatusResponse is an employee's own view of their ledger.
type StatusResponse struct {
	Requests []Request `json:"requests"`
	Balances Balances  `json:"balance"`
}

// EmployeeRef is the minimal identity joined onto cross-employee listings.
type EmployeeRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Mail string `json:"mail"`
}

// LedgerWithEmployee is an admin/manager view row.
type LedgerWithEmployee struct {
	Employee  EmployeeRef `json:"employee"`
	Balances  Balances    `json:"leave_balances"`
	Requests  []Request   `json:"requests"`
	LastReset time.Time   `json:"last_reset"`
}
