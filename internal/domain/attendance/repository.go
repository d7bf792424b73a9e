package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records.
type AttendanceRepository interface {
	// UpsertCheckIn inserts the day's record or, if one exists without a
	// check-in yet, fills it in. Returns ErrAlreadyCheckedIn when the row
	// already carries a check-in timestamp.
	UpsertCheckIn(ctx context.Context, record Attendance) (Attendance, error)

	// SetCheckOut is update-only: it never creates a row. Returns
	// ErrNotCheckedIn when no record exists for the date.
	SetCheckOut(ctx context.Context, employeeID string, date time.Time, checkOut time.Time) (Attendance, error)

	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)

	// GetStatusesByRange returns status keyed by "2006-01-02" date string for
	// the inclusive [from, to] window. Days without a record are absent keys.
	GetStatusesByRange(ctx context.Context, employeeID string, from, to time.Time) (map[string]Status, error)

	List(ctx context.Context, filter Filter) ([]Attendance, error)
}
