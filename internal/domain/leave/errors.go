package leave

import "errors"

var (
	ErrLeaveRequestNotFound  = errors.New("leave request not found")
	ErrLeaveAlreadyProcessed = errors.New("leave request already approved or rejected")
	ErrInvalidLeaveType      = errors.New("invalid leave type")
	ErrInvalidDateRange      = errors.New("end date must not be before start date")
)
