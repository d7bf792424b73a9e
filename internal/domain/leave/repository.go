package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository defines data access for leave requests.
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// UpdateDecision records the one-time approve/reject transition.
	UpdateDecision(ctx context.Context, req DecisionUpdate) error

	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	List(ctx context.Context, filter Filter) ([]LeaveRequest, error)

	// GetApprovedOverlapping returns approved requests whose interval
	// intersects the inclusive [from, to] window. The payroll classifier
	// filters per day, so spill-over into adjacent months is harmless.
	GetApprovedOverlapping(ctx context.Context, employeeID string, from, to time.Time) ([]LeaveRequest, error)
}
