package attendance

import "time"

// CheckInResponse confirms a check-in with the derived status.
type CheckInResponse struct {
	Status      Status    `json:"status"`
	CheckInTime time.Time `json:"check_in_time"`
	Date        string    `json:"date"`
}

// RecordView is one attendance row as shown to clients.
type RecordView struct {
	Date        string `json:"date"`
	CheckInTime string `json:"check_in_time"` // "N/A" when absent
	Status      Status `json:"status"`
}

// EmployeeRecords pairs minimal employee identity with their history.
type EmployeeRecords struct {
	EmployeeID   string       `json:"employee_id"`
	EmployeeName string       `json:"employee_name"`
	Mail         string       `json:"mail"`
	Records      []RecordView `json:"records"`
}

// StatusCounts partitions a day's records.
type StatusCounts struct {
	Present int `json:"present"`
	Late    int `json:"late"`
	Absent  int `json:"absent"`
}

// EmployeeStatus is one row of a today-status report.
type EmployeeStatus struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Status       Status `json:"status"`
	CheckInTime  string `json:"check_in_time"`
}

// StatusReport is the rollup for one day. Employees without a record are
// counted as absent even before the batch job materializes their rows.
type StatusReport struct {
	EmployeeStatus []EmployeeStatus `json:"employee_status"`
	Counts         StatusCounts     `json:"counts"`
}

// AbsenteeOutcome reports the batch job's result for one employee instead
// of burying failures in logs.
type AbsenteeOutcome struct {
	EmployeeID string `json:"employee_id"`
	Created    bool   `json:"created"`
	Error      string `json:"error,omitempty"`
}
