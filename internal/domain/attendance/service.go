package attendance

import "context"

// AttendanceService owns attendance writes. Both mutation paths consult the
// payroll lock gate before touching a row: once a pay slip exists for the
// record's (month, year), writes fail with payroll.ErrPayrollFinalized.
type AttendanceService interface {
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)
	GetMyAttendance(ctx context.Context, filter Filter) ([]AttendanceResponse, error)
	ListAttendance(ctx context.Context, filter Filter) ([]AttendanceResponse, error)
}
