package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryStructure - Monthly compensation components configured per employee.
// At most one active structure per employee; created at onboarding, updated in
// place afterwards, never deleted while the employee exists.
type SalaryStructure struct {
	ID               string
	EmployeeID       string
	BasicSalary      decimal.Decimal
	HousingAllowance decimal.Decimal
	OtherAllowances  decimal.Decimal
	ProvidentFund    decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Gross returns the monthly gross before pro-ration.
func (s SalaryStructure) Gross() decimal.Decimal {
	return s.BasicSalary.Add(s.HousingAllowance).Add(s.OtherAllowances)
}

// PaySlip - Immutable result of one payroll run for one (employee, month, year).
// Unique per period; once a slip exists, attendance for that period is locked.
type PaySlip struct {
	ID          string
	EmployeeID  string
	Month       string // English month name, e.g. "March"
	Year        int
	BasicSalary decimal.Decimal
	Allowances  decimal.Decimal
	Deductions  decimal.Decimal
	NetSalary   decimal.Decimal
	CreatedAt   time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}
