package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/deeraj1899/EMS/internal/domain/auth"
	"github.com/deeraj1899/EMS/internal/domain/attendance"
	"github.com/deeraj1899/EMS/internal/domain/employee"
	"github.com/deeraj1899/EMS/internal/domain/leave"
	"github.com/deeraj1899/EMS/internal/domain/organization"
	"github.com/deeraj1899/EMS/internal/domain/work"
	"github.com/deeraj1899/EMS/internal/pkg/payment"
	"github.com/deeraj1899/EMS/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrInvalidAdminCode):
		BadRequest(w, "Invalid admin code", nil)
	case errors.Is(err, auth.ErrNoAdminCode):
		Forbidden(w, "Employee has no admin code")

	// Organization domain errors
	case errors.Is(err, organization.ErrOrganizationNotFound):
		NotFound(w, "Organization not found")
	case errors.Is(err, organization.ErrMailExists):
		Conflict(w, "Organization with this email already exists")
	case errors.Is(err, organization.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, organization.ErrTooManyDepartments):
		BadRequest(w, "An organization may have at most 5 departments", nil)
	case errors.Is(err, organization.ErrAdminDeptNotListed):
		BadRequest(w, "Admin department must be one of the listed departments", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrMailExists):
		Conflict(w, "Email already registered in this organization")
	case errors.Is(err, employee.ErrManagerOnly):
		Forbidden(w, "Manager role required")
	case errors.Is(err, employee.ErrDepartmentMismatch):
		Forbidden(w, "Employee belongs to a different department")

	// Leave domain errors
	case errors.Is(err, leave.ErrMissingField):
		BadRequest(w, "Missing required field", nil)
	case errors.Is(err, leave.ErrInvalidLeaveType):
		BadRequest(w, "Invalid leave type", nil)
	case errors.Is(err, leave.ErrInvalidStatus):
		BadRequest(w, "Status must be Approved or Rejected", nil)
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date must not precede start date", nil)
	case errors.Is(err, leave.ErrDateOutOfWindow):
		BadRequest(w, "Leave must not start before the current month", nil)
	case errors.Is(err, leave.ErrExceedsRequestCap):
		BadRequest(w, "Request exceeds the per-request day cap", nil)
	case errors.Is(err, leave.ErrExceedsMonthlyCap):
		BadRequest(w, "Request exceeds the monthly day cap", nil)
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrLedgerNotFound):
		NotFound(w, "Leave ledger not found")
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrConcurrentUpdate):
		Conflict(w, "Leave ledger was modified concurrently, retry")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Attendance already marked for today")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Work domain errors
	case errors.Is(err, work.ErrWorkNotFound):
		NotFound(w, "Work not found")
	case errors.Is(err, work.ErrSubmissionNotFound):
		NotFound(w, "Submitted work not found")
	case errors.Is(err, work.ErrReviewNotFound):
		NotFound(w, "Review not found")
	case errors.Is(err, work.ErrNotAssignee):
		Forbidden(w, "Work does not belong to this employee")

	// Billing errors
	case errors.Is(err, payment.ErrUnknownPlan):
		BadRequest(w, "Unknown subscription plan", nil)

	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "Internal server error")
	}
}
