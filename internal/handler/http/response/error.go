package response

import (
	"errors"
	"net/http"

	"github.com/staffly-hr/staffly-backend-go/internal/domain/attendance"
	"github.com/staffly-hr/staffly-backend-go/internal/domain/auth"
	"github.com/staffly-hr/staffly-backend-go/internal/domain/employee"
	"github.com/staffly-hr/staffly-backend-go/internal/domain/leave"
	"github.com/staffly-hr/staffly-backend-go/internal/domain/payroll"
	"github.com/staffly-hr/staffly-backend-go/internal/domain/user"
	"github.com/staffly-hr/staffly-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrMissingClaim):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailTaken):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in for this date")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "No check-in recorded for this date", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out for this date")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "Invalid leave date range", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrSlipAlreadyGenerated):
		Conflict(w, "Pay slip already generated for this period")
	case errors.Is(err, payroll.ErrPayrollFinalized):
		Conflict(w, "Payroll finalized for this period, attendance is locked")
	case errors.Is(err, payroll.ErrMissingSalaryStructure):
		NotFound(w, "No salary structure configured for employee")
	case errors.Is(err, payroll.ErrPaySlipNotFound):
		NotFound(w, "Pay slip not found")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)
	case errors.Is(err, payroll.ErrComputationInvalid):
		InternalServerError(w, "Payroll computation failed")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
