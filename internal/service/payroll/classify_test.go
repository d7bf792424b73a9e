package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffly-hr/staffly-backend-go/internal/domain/attendance"
	"github.com/staffly-hr/staffly-backend-go/internal/domain/leave"
	"github.com/staffly-hr/staffly-backend-go/internal/domain/payroll"
)

// September 2025: 30 days, starts on a Monday, Sundays on the 7th, 14th,
// 21st and 28th, leaving 26 working days.
func septemberWindow(t *testing.T) Window {
	t.Helper()
	window, err := MonthWindow("September", 2025)
	require.NoError(t, err)
	require.Equal(t, 30, window.DaysInMonth)
	return window
}

// fullAttendance marks every non-Sunday day with the given status.
func fullAttendance(window Window, status attendance.Status) map[string]attendance.Status {
	statuses := make(map[string]attendance.Status)
	for _, day := range window.Days {
		if day.Weekday() != time.Sunday {
			statuses[day.Format("2006-01-02")] = status
		}
	}
	return statuses
}

func approvedLeave(leaveType leave.LeaveType, start, end time.Time) leave.LeaveRequest {
	return leave.LeaveRequest{
		LeaveType: leaveType,
		StartDate: start,
		EndDate:   end,
		Status:    leave.StatusApproved,
	}
}

func TestPayableDaysFullMonth(t *testing.T) {
	window := septemberWindow(t)
	statuses := fullAttendance(window, attendance.StatusPresent)

	payable := PayableDays(window, statuses, nil)
	assert.True(t, payable.Equal(decimal.NewFromInt(26)), "got %s", payable)
}

func TestPayableDaysSundayNeverCounts(t *testing.T) {
	window := septemberWindow(t)
	statuses := fullAttendance(window, attendance.StatusPresent)
	// Present on a Sunday must not add anything.
	statuses["2025-09-07"] = attendance.StatusPresent

	payable := PayableDays(window, statuses, nil)
	assert.True(t, payable.Equal(decimal.NewFromInt(26)), "got %s", payable)

	// Neither does leave covering a Sunday.
	leaves := []leave.LeaveRequest{approvedLeave(
		leave.TypePaid,
		time.Date(2025, 9, 7, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 9, 7, 0, 0, 0, 0, time.UTC),
	)}
	payable = PayableDays(window, statuses, leaves)
	assert.True(t, payable.Equal(decimal.NewFromInt(26)), "got %s", payable)
}

func TestPayableDaysHalfDay(t *testing.T) {
	window := septemberWindow(t)
	statuses := fullAttendance(window, attendance.StatusPresent)
	statuses["2025-09-03"] = attendance.StatusHalfDay

	payable := PayableDays(window, statuses, nil)
	assert.True(t, payable.Equal(decimal.RequireFromString("25.5")), "got %s", payable)
}

func TestPayableDaysLeaveBeatsAbsent(t *testing.T) {
	window := septemberWindow(t)
	statuses := fullAttendance(window, attendance.StatusPresent)
	// Marked absent in error while on approved paid leave.
	statuses["2025-09-10"] = attendance.StatusAbsent

	leaves := []leave.LeaveRequest{approvedLeave(
		leave.TypePaid,
		time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 9, 12, 0, 0, 0, 0, time.UTC),
	)}

	payable := PayableDays(window, statuses, leaves)
	assert.True(t, payable.Equal(decimal.NewFromInt(26)), "got %s", payable)
}

func TestPayableDaysUnpaidLeaveDoesNotPay(t *testing.T) {
	window := septemberWindow(t)
	statuses := fullAttendance(window, attendance.StatusPresent)
	delete(statuses, "2025-09-10")

	leaves := []leave.LeaveRequest{approvedLeave(
		leave.TypeUnpaid,
		time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC),
	)}

	payable := PayableDays(window, statuses, leaves)
	assert.True(t, payable.Equal(decimal.NewFromInt(25)), "got %s", payable)
}

func TestPayableDaysPayableLeaveTypes(t *testing.T) {
	window := septemberWindow(t)
	day := time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)

	for _, leaveType := range []leave.LeaveType{leave.TypePaid, leave.TypeSick, leave.TypeMaternity} {
		leaves := []leave.LeaveRequest{approvedLeave(leaveType, day, day)}
		payable := PayableDays(window, nil, leaves)
		assert.True(t, payable.Equal(decimal.NewFromInt(1)), "%s: got %s", leaveType, payable)
	}
}

func TestPayableDaysEmptyMonth(t *testing.T) {
	window := septemberWindow(t)
	payable := PayableDays(window, nil, nil)
	assert.True(t, payable.IsZero())
}

func TestPayableDaysBoundedByWorkingDays(t *testing.T) {
	window := septemberWindow(t)
	statuses := fullAttendance(window, attendance.StatusPresent)
	leaves := []leave.LeaveRequest{approvedLeave(
		leave.TypeMaternity, window.First, window.Last,
	)}

	payable := PayableDays(window, statuses, leaves)
	assert.True(t, payable.LessThanOrEqual(decimal.NewFromInt(26)))
	assert.False(t, payable.IsNegative())
}

func TestProrateFullPresence(t *testing.T) {
	structure := payroll.SalaryStructure{
		BasicSalary:      decimal.NewFromInt(60000),
		HousingAllowance: decimal.NewFromInt(15000),
		OtherAllowances:  decimal.NewFromInt(5000),
		ProvidentFund:    decimal.NewFromInt(3000),
	}

	amounts, err := Prorate(structure, 30, decimal.NewFromInt(26))
	require.NoError(t, err)

	assert.True(t, amounts.Basic.Round(2).Equal(decimal.RequireFromString("52000")), "basic %s", amounts.Basic)
	assert.True(t, amounts.Allowances.Round(2).Equal(decimal.RequireFromString("17333.33")), "allowances %s", amounts.Allowances)
	assert.True(t, amounts.Deductions.Round(2).Equal(decimal.RequireFromString("2600")), "deductions %s", amounts.Deductions)
	assert.True(t, amounts.Net.Round(2).Equal(decimal.RequireFromString("66733.33")), "net %s", amounts.Net)
}

func TestProrateZeroPayableDays(t *testing.T) {
	structure := payroll.SalaryStructure{
		BasicSalary:   decimal.NewFromInt(60000),
		ProvidentFund: decimal.NewFromInt(3000),
	}

	amounts, err := Prorate(structure, 30, decimal.Zero)
	require.NoError(t, err)

	assert.True(t, amounts.Basic.IsZero())
	assert.True(t, amounts.Deductions.IsZero())
	assert.True(t, amounts.Net.IsZero())
}

func TestProrateDeterministic(t *testing.T) {
	structure := payroll.SalaryStructure{
		BasicSalary:      decimal.RequireFromString("51337.77"),
		HousingAllowance: decimal.RequireFromString("12834.44"),
		OtherAllowances:  decimal.RequireFromString("4100.09"),
		ProvidentFund:    decimal.RequireFromString("2566.89"),
	}
	payable := decimal.RequireFromString("23.5")

	first, err := Prorate(structure, 31, payable)
	require.NoError(t, err)
	second, err := Prorate(structure, 31, payable)
	require.NoError(t, err)

	assert.True(t, first.Net.Round(2).Equal(second.Net.Round(2)))
}

func TestProrateInvalidInputs(t *testing.T) {
	structure := payroll.SalaryStructure{BasicSalary: decimal.NewFromInt(60000)}

	_, err := Prorate(structure, 0, decimal.NewFromInt(26))
	assert.ErrorIs(t, err, payroll.ErrComputationInvalid)

	_, err = Prorate(structure, -1, decimal.NewFromInt(26))
	assert.ErrorIs(t, err, payroll.ErrComputationInvalid)

	_, err = Prorate(structure, 30, decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, payroll.ErrComputationInvalid)

	corrupt := payroll.SalaryStructure{BasicSalary: decimal.NewFromInt(-60000)}
	_, err = Prorate(corrupt, 30, decimal.NewFromInt(26))
	assert.ErrorIs(t, err, payroll.ErrComputationInvalid)
}
