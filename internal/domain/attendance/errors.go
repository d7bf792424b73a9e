package attendance

import "errors"

var (
	ErrAlreadyCheckedIn   = errors.New("already checked in for this date")
	ErrNotCheckedIn       = errors.New("no check-in recorded for this date")
	ErrAlreadyCheckedOut  = errors.New("already checked out for this date")
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrInvalidStatus      = errors.New("invalid attendance status")
)
