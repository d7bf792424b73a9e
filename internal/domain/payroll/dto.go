package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/staffly-hr/staffly-backend-go/internal/pkg/validator"
)

// MonthNames lists the accepted pay-slip period months in calendar order.
var MonthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// ========== GENERATION DTOs ==========

type GeneratePaySlipRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      string `json:"month"`
	Year       int    `json:"year"`
}

func (r *GeneratePaySlipRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsInSlice(r.Month, MonthNames) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be a full English month name"})
	}
	if r.Year < 1000 || r.Year > 9999 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a 4-digit year"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// GenerateAllRequest targets the whole roster. Month/year default to the
// current period when omitted.
type GenerateAllRequest struct {
	Month *string `json:"month,omitempty"`
	Year  *int    `json:"year,omitempty"`
}

func (r *GenerateAllRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month != nil && !validator.IsInSlice(*r.Month, MonthNames) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be a full English month name"})
	}
	if r.Year != nil && (*r.Year < 1000 || *r.Year > 9999) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a 4-digit year"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Skip reason keys aggregated in a batch summary.
const (
	SkipReasonAlreadyGenerated       = "already_generated"
	SkipReasonMissingSalaryStructure = "missing_salary_structure"
	SkipReasonComputationInvalid     = "computation_invalid"
	SkipReasonStorageError           = "storage_error"
)

type GenerateAllResponse struct {
	Month       string         `json:"month"`
	Year        int            `json:"year"`
	Generated   int            `json:"generated"`
	Skipped     int            `json:"skipped"`
	SkipReasons map[string]int `json:"skip_reasons"`
}

// ========== PAY SLIP DTOs ==========

type PaySlipResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name,omitempty"`
	EmployeeCode string          `json:"employee_code,omitempty"`
	Month        string          `json:"month"`
	Year         int             `json:"year"`
	BasicSalary  decimal.Decimal `json:"basic_salary"`
	Allowances   decimal.Decimal `json:"allowances"`
	Deductions   decimal.Decimal `json:"deductions"`
	NetSalary    decimal.Decimal `json:"net_salary"`
	CreatedAt    string          `json:"created_at"`
}

type PaySlipFilter struct {
	Month      *string
	Year       *int
	EmployeeID *string
}

// ========== SALARY STRUCTURE DTOs ==========

type SalaryStructureResponse struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	BasicSalary      decimal.Decimal `json:"basic_salary"`
	HousingAllowance decimal.Decimal `json:"housing_allowance"`
	OtherAllowances  decimal.Decimal `json:"other_allowances"`
	ProvidentFund    decimal.Decimal `json:"provident_fund"`
}

type UpsertSalaryStructureRequest struct {
	EmployeeID       string          `json:"-"`
	BasicSalary      decimal.Decimal `json:"basic_salary"`
	HousingAllowance decimal.Decimal `json:"housing_allowance"`
	OtherAllowances  decimal.Decimal `json:"other_allowances"`
	ProvidentFund    decimal.Decimal `json:"provident_fund"`
}

func (r *UpsertSalaryStructureRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}
	if r.HousingAllowance.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "housing_allowance", Message: "must be non-negative"})
	}
	if r.OtherAllowances.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "other_allowances", Message: "must be non-negative"})
	}
	if r.ProvidentFund.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "provident_fund", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
