package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffly-hr/staffly-backend-go/internal/domain/attendance"
	"github.com/staffly-hr/staffly-backend-go/internal/domain/leave"
	"github.com/staffly-hr/staffly-backend-go/internal/domain/payroll"
)

var (
	weightFull = decimal.NewFromInt(1)
	weightHalf = decimal.New(5, -1)
)

// dayWeight classifies a single working day. Precedence: approved payable
// leave beats whatever attendance says (a day wrongly marked absent still
// pays when leave covers it), then present, then half-day. Everything else,
// including unpaid leave and missing records, weighs zero.
func dayWeight(day time.Time, status attendance.Status, hasStatus bool, leaves []leave.LeaveRequest) decimal.Decimal {
	for _, l := range leaves {
		if l.LeaveType.Payable() && l.Covers(day) {
			return weightFull
		}
	}
	if !hasStatus {
		return decimal.Zero
	}
	switch status {
	case attendance.StatusPresent:
		return weightFull
	case attendance.StatusHalfDay:
		return weightHalf
	default:
		return decimal.Zero
	}
}

// PayableDays sums day weights over the window. Sundays are skipped outright;
// they count neither as payable nor as days requiring presence. The result is
// bounded by the number of non-Sunday days in the window.
func PayableDays(window Window, statuses map[string]attendance.Status, leaves []leave.LeaveRequest) decimal.Decimal {
	payable := decimal.Zero
	for _, day := range window.Days {
		if day.Weekday() == time.Sunday {
			continue
		}
		status, ok := statuses[day.Format("2006-01-02")]
		payable = payable.Add(dayWeight(day, status, ok, leaves))
	}
	return payable
}

// Prorated holds the per-period money amounts before rounding.
type Prorated struct {
	Basic      decimal.Decimal
	Allowances decimal.Decimal
	Deductions decimal.Decimal
	Net        decimal.Decimal
}

// Prorate scales the monthly components by payableDays over calendar days in
// the month. Amounts stay at full precision here; rounding to 2 decimal
// places happens once, when the slip is persisted.
func Prorate(structure payroll.SalaryStructure, daysInMonth int, payableDays decimal.Decimal) (Prorated, error) {
	if daysInMonth <= 0 || payableDays.IsNegative() {
		return Prorated{}, payroll.ErrComputationInvalid
	}
	if structure.BasicSalary.IsNegative() || structure.HousingAllowance.IsNegative() ||
		structure.OtherAllowances.IsNegative() || structure.ProvidentFund.IsNegative() {
		return Prorated{}, payroll.ErrComputationInvalid
	}

	days := decimal.NewFromInt(int64(daysInMonth))

	basic := structure.BasicSalary.Div(days).Mul(payableDays)
	allowances := structure.HousingAllowance.Add(structure.OtherAllowances).Div(days).Mul(payableDays)
	deductions := structure.ProvidentFund.Div(days).Mul(payableDays)
	net := structure.Gross().Div(days).Mul(payableDays).Sub(deductions)

	return Prorated{
		Basic:      basic,
		Allowances: allowances,
		Deductions: deductions,
		Net:        net,
	}, nil
}
