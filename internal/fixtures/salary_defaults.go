package fixtures

import "github.com/shopspring/decimal"

// DefaultSalary holds onboarding-time salary structure defaults for a
// (department, position) pair. The table is read-only after process start;
// it is consulted only when an employee is created or moved into a
// department/position without a configured structure, never at payroll
// generation time.
type DefaultSalary struct {
	BasicSalary      decimal.Decimal
	HousingAllowance decimal.Decimal
	OtherAllowances  decimal.Decimal
	ProvidentFund    decimal.Decimal
}

type defaultKey struct {
	Department string
	Position   string
}

func amounts(basic, housing, other, pf int64) DefaultSalary {
	return DefaultSalary{
		BasicSalary:      decimal.NewFromInt(basic),
		HousingAllowance: decimal.NewFromInt(housing),
		OtherAllowances:  decimal.NewFromInt(other),
		ProvidentFund:    decimal.NewFromInt(pf),
	}
}

var salaryDefaults = map[defaultKey]DefaultSalary{
	{"Engineering", "Software Engineer"}:     amounts(60000, 15000, 5000, 3000),
	{"Engineering", "Senior Engineer"}:       amounts(90000, 22500, 7500, 4500),
	{"Engineering", "Engineering Manager"}:   amounts(120000, 30000, 10000, 6000),
	{"Human Resources", "HR Executive"}:      amounts(45000, 11250, 3750, 2250),
	{"Human Resources", "HR Manager"}:        amounts(80000, 20000, 6500, 4000),
	{"Finance", "Accountant"}:                amounts(50000, 12500, 4000, 2500),
	{"Finance", "Finance Manager"}:           amounts(95000, 23750, 8000, 4750),
	{"Sales", "Sales Executive"}:             amounts(40000, 10000, 5000, 2000),
	{"Sales", "Sales Manager"}:               amounts(75000, 18750, 7500, 3750),
	{"Operations", "Operations Coordinator"}: amounts(42000, 10500, 3500, 2100),
}

// fallback for pairs not present in the table
var genericDefault = amounts(35000, 8750, 3000, 1750)

// DefaultSalaryStructure returns the configured defaults for the pair, or a
// generic baseline when the pair is unknown.
func DefaultSalaryStructure(department, position string) DefaultSalary {
	if d, ok := salaryDefaults[defaultKey{Department: department, Position: position}]; ok {
		return d
	}
	return genericDefault
}
