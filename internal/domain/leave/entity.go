package leave

import "time"

type LeaveType string

const (
	TypePaid      LeaveType = "paid"
	TypeSick      LeaveType = "sick"
	TypeUnpaid    LeaveType = "unpaid"
	TypeMaternity LeaveType = "maternity"
)

// Payable reports whether days covered by this leave type count as worked
// for payroll pro-ration.
func (t LeaveType) Payable() bool {
	switch t {
	case TypePaid, TypeSick, TypeMaternity:
		return true
	default:
		return false
	}
}

type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

// LeaveRequest - An inclusive [StartDate, EndDate] interval requested by an
// employee. Decided exactly once by an admin; terminal after that.
type LeaveRequest struct {
	ID           string
	EmployeeID   string
	LeaveType    LeaveType
	StartDate    time.Time
	EndDate      time.Time
	Reason       string
	Status       RequestStatus
	AdminComment *string
	DecidedBy    *string
	DecidedAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	EmployeeName *string
}

// Covers reports whether day falls inside the request's inclusive interval.
// Comparison is by calendar date, not instant.
func (l LeaveRequest) Covers(day time.Time) bool {
	d := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	start := time.Date(l.StartDate.Year(), l.StartDate.Month(), l.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(l.EndDate.Year(), l.EndDate.Month(), l.EndDate.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(start) && !d.After(end)
}
