package attendance

import (
	"context"
	"time"

	"github.com/staffly-hr/staffly-backend-go/internal/domain/attendance"
	"github.com/staffly-hr/staffly-backend-go/internal/domain/employee"
	"github.com/staffly-hr/staffly-backend-go/internal/domain/payroll"
	"github.com/staffly-hr/staffly-backend-go/internal/pkg/jwt"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	slipRepo       payroll.PaySlipRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	slipRepo payroll.PaySlipRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		slipRepo:       slipRepo,
	}
}

// resolveDate parses the request date or falls back to today (UTC).
func resolveDate(raw string) (time.Time, error) {
	if raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse("2006-01-02", raw)
}

// checkPayrollLock rejects the write when a pay slip already covers the
// date's period. Attendance is frozen the moment payroll is finalized.
func (s *AttendanceServiceImpl) checkPayrollLock(ctx context.Context, employeeID string, date time.Time) error {
	locked, err := s.slipRepo.ExistsForPeriod(ctx, employeeID, date.Month().String(), date.Year())
	if err != nil {
		return err
	}
	if locked {
		return payroll.ErrPayrollFinalized
	}
	return nil
}

func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, err := resolveDate(req.Date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := s.checkPayrollLock(ctx, employeeID, date); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	status := attendance.StatusPresent
	if req.HalfDay {
		status = attendance.StatusHalfDay
	}

	now := time.Now().UTC()
	record, err := s.attendanceRepo.UpsertCheckIn(ctx, attendance.Attendance{
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
		CheckIn:    &now,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toAttendanceResponse(record), nil
}

func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, err := resolveDate(req.Date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := s.checkPayrollLock(ctx, employeeID, date); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.attendanceRepo.SetCheckOut(ctx, employeeID, date, time.Now().UTC())
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toAttendanceResponse(record), nil
}

func (s *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.Filter) ([]attendance.AttendanceResponse, error) {
	employeeID, err := employeeIDFromContext(ctx, "")
	if err != nil {
		return nil, err
	}

	filter.EmployeeID = &employeeID
	return s.ListAttendance(ctx, filter)
}

func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.Filter) ([]attendance.AttendanceResponse, error) {
	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toAttendanceResponse(record))
	}
	return responses, nil
}

// employeeIDFromContext prefers an explicit employee id (admin acting on
// someone's behalf) and falls back to the caller's own claim.
func employeeIDFromContext(ctx context.Context, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return "", err
	}
	if claims.EmployeeID == nil {
		return "", employee.ErrEmployeeNotFound
	}
	return *claims.EmployeeID, nil
}

func toAttendanceResponse(record attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:         record.ID,
		EmployeeID: record.EmployeeID,
		Date:       record.Date.Format("2006-01-02"),
		Status:     string(record.Status),
	}
	if record.EmployeeName != nil {
		resp.EmployeeName = *record.EmployeeName
	}
	if record.CheckIn != nil {
		formatted := record.CheckIn.Format(time.RFC3339)
		resp.CheckIn = &formatted
	}
	if record.CheckOut != nil {
		formatted := record.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &formatted
	}
	return resp
}
