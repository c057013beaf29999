package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/deeraj1899/EMS/internal/config"
	"github.com/deeraj1899/EMS/internal/domain/attendance"
)

// AttendanceJobs wires the absentee sweep onto the scheduler.
type AttendanceJobs struct {
	attendanceSvc attendance.Service
	policy        config.AttendancePolicy
	now           func() time.Time
}

func NewAttendanceJobs(attendanceSvc attendance.Service, policy config.AttendancePolicy) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceSvc: attendanceSvc,
		policy:        policy,
		now:           time.Now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", j.policy.AbsenteeInterval, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees inserts an Absent record for every employee who
// has no attendance row for today. The sweep only fires once the local
// clock passes DayEndHour; running earlier would mark employees absent
// before they had a chance to check in, and the unique per-day record
// would then reject their check-in. Creating a record is idempotent per
// day, so re-runs within the same evening are no-ops.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	if now := j.now(); now.Hour() < j.policy.DayEndHour {
		slog.Debug("Cron: Absentee sweep deferred until day end",
			"hour", now.Hour(), "day_end_hour", j.policy.DayEndHour)
		return nil
	}

	outcomes, err := j.attendanceSvc.MarkAbsentees(ctx)
	if err != nil {
		return err
	}

	created := 0
	for _, o := range outcomes {
		if o.Created {
			created++
		} else if o.Error != "" {
			slog.Error("Cron: Failed to mark employee absent", "employee_id", o.EmployeeID, "error", o.Error)
		}
	}

	slog.Info("Cron: Marked absent employees", "count", created, "scanned", len(outcomes))
	return nil
}
