package leave

import "context"

// LeaveService owns the leave request lifecycle. Only approved requests
// participate in payroll.
type LeaveService interface {
	CreateRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)
	Approve(ctx context.Context, req DecideLeaveRequestRequest) (LeaveRequestResponse, error)
	Reject(ctx context.Context, req DecideLeaveRequestRequest) (LeaveRequestResponse, error)
	GetMyRequests(ctx context.Context) ([]LeaveRequestResponse, error)
	ListRequests(ctx context.Context, filter Filter) ([]LeaveRequestResponse, error)
}
