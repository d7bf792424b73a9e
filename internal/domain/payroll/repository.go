package payroll

import "context"

// SalaryStructureRepository defines data access for per-employee salary structures.
type SalaryStructureRepository interface {
	// GetByEmployeeID returns the employee's structure or ErrMissingSalaryStructure.
	GetByEmployeeID(ctx context.Context, employeeID string) (SalaryStructure, error)

	// Upsert creates or replaces the single structure for an employee.
	// The unique key on employee_id keeps the one-structure invariant.
	Upsert(ctx context.Context, structure SalaryStructure) (SalaryStructure, error)
}

// PaySlipRepository defines data access for generated pay slips.
// Slips are insert-only from the engine's perspective.
type PaySlipRepository interface {
	// Create inserts a slip. A unique-key violation on
	// (employee_id, month, year) is returned as ErrSlipAlreadyGenerated;
	// that constraint, not the caller's pre-check, is the duplicate guard.
	Create(ctx context.Context, slip PaySlip) (PaySlip, error)

	GetByEmployeePeriod(ctx context.Context, employeeID, month string, year int) (PaySlip, error)

	// ExistsForPeriod is the attendance lock gate: once true, attendance
	// writes for that employee/period must be rejected.
	ExistsForPeriod(ctx context.Context, employeeID, month string, year int) (bool, error)

	ListByPeriod(ctx context.Context, month string, year int) ([]PaySlip, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]PaySlip, error)
}
