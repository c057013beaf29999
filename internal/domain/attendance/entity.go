package attendance

import "time"

type Status string

const (
	StatusPresent Status = "Present"
	StatusLate    Status = "Late"
	StatusAbsent  Status = "Absent"
)

// Record is one employee's attendance for one local calendar day. At most
// one record exists per employee per day. CheckInTime is nil for records
// materialized by the absentee batch job.
type Record struct {
	ID          string
	EmployeeID  string
	Date        time.Time // date-only, local midnight
	CheckInTime *time.Time
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined for responses
	EmployeeName *string
}
