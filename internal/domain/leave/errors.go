package leave

import "errors"

var (
	// Validation failures (400-class)
	ErrMissingField        = errors.New("leaveType, startDate, endDate and reason are all required")
	ErrInvalidLeaveType    = errors.New("unknown leave type")
	ErrInvalidStatus       = errors.New("status must be Approved or Rejected")
	ErrInvalidDateRange    = errors.New("end date must be on or after start date")
	ErrDateOutOfWindow     = errors.New("leave must start in the current or a future month")
	ErrExceedsRequestCap   = errors.New("request exceeds the per-request day cap for this leave type")
	ErrExceedsMonthlyCap   = errors.New("request exceeds the monthly day cap for this leave type")
	ErrInsufficientBalance = errors.New("insufficient leave balance")

	// Not-found failures (404)
	ErrLedgerNotFound  = errors.New("leave record not found for this employee")
	ErrRequestNotFound = errors.New("leave request not found")

	// Concurrent writers raced on the same ledger; the caller may retry.
	ErrConcurrentUpdate = errors.New("leave ledger was modified concurrently")
)
