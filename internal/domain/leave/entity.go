package leave

import (
	"time"
)

// Type is the closed set of leave categories. Keeping it an enum (instead
// of free-form strings keyed into a map) gives exhaustive switches over
// type-specific policy.
type Type string

const (
	TypeSick     Type = "Sick"
	TypePersonal Type = "Personal"
	TypeOfficial Type = "Official"
	TypeVacation Type = "Vacation"
)

// Types lists every leave type in a stable order.
func Types() []Type {
	return []Type{TypeSick, TypePersonal, TypeOfficial, TypeVacation}
}

// ParseType validates a wire-level leave type tag.
func ParseType(s string) (Type, bool) {
	switch Type(s) {
	case TypeSick, TypePersonal, TypeOfficial, TypeVacation:
		return Type(s), true
	}
	return "", false
}

// ExemptFromCaps reports whether the type escapes the per-request and
// monthly day caps. Sick and Vacation leave may span any number of days.
func (t Type) ExemptFromCaps() bool {
	return t == TypeSick || t == TypeVacation
}

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// ParseStatus validates a target status for a status-update call. Only
// Approved and Rejected are valid targets; Pending is the initial state.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusApproved, StatusRejected:
		return Status(s), true
	}
	return "", false
}

// Balance is one leave type's yearly allowance and consumption.
// Invariant: 0 <= Used <= Total, enforced at approval time.
type Balance struct {
	Total int `json:"total"`
	Used  int `json:"used"`
}

// Available returns the days still open for approval.
func (b Balance) Available() int {
	return b.Total - b.Used
}

// Balances holds one Balance per leave type. The JSON shape matches the
// wire format the frontend expects: an object keyed by type name.
type Balances struct {
	Sick     Balance `json:"Sick"`
	Personal Balance `json:"Personal"`
	Official Balance `json:"Official"`
	Vacation Balance `json:"Vacation"`
}

// Get returns the balance for a leave type.
func (b Balances) Get(t Type) Balance {
	switch t {
	case TypeSick:
		return b.Sick
	case TypePersonal:
		return b.Personal
	case TypeOfficial:
		return b.Official
	case TypeVacation:
		return b.Vacation
	}
	return Balance{}
}

// Set replaces the balance for a leave type.
func (b *Balances) Set(t Type, balance Balance) {
	switch t {
	case TypeSick:
		b.Sick = balance
	case TypePersonal:
		b.Personal = balance
	case TypeOfficial:
		b.Official = balance
	case TypeVacation:
		b.Vacation = balance
	}
}

// Request is a single leave request. Requests are appended by Apply and
// mutated in place by status updates; they are never deleted.
type Request struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	LeaveType  Type      `json:"leave_type"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Reason     string    `json:"reason"`
	Status     Status    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// Days returns the inclusive day-span of the request.
func (r Request) Days() int {
	return DaySpan(r.StartDate, r.EndDate)
}

// DaySpan counts inclusive calendar days between two dates. Dates are
// truncated to midnight first so partial-day timestamps don't skew the
// count.
func DaySpan(start, end time.Time) int {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Ledger is one employee's leave record: balances plus full request
// history. Exactly one ledger exists per employee, created lazily on the
// first apply. Version backs optimistic concurrency on writes.
type Ledger struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Balances   Balances  `json:"leave_balances"`
	Requests   []Request `json:"requests"`
	LastReset  time.Time `json:"last_reset"`
	Version    int64     `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// FindRequest returns a pointer into the ledger's request slice, or nil.
func (l *Ledger) FindRequest(requestID string) *Request {
	for i := range l.Requests {
		if l.Requests[i].ID == requestID {
			return &l.Requests[i]
		}
	}
	return nil
}
