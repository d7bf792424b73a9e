package payroll

import "context"

// PayrollService is the payroll computation engine boundary.
type PayrollService interface {
	// GeneratePaySlip runs one employee for one period inside a single
	// transaction. Surfaces ErrSlipAlreadyGenerated / ErrMissingSalaryStructure /
	// ErrComputationInvalid directly.
	GeneratePaySlip(ctx context.Context, req GeneratePaySlipRequest) (PaySlipResponse, error)

	// GenerateAll iterates the active roster with per-employee commits; one
	// employee's failure never aborts the batch. Skips are counted by reason.
	GenerateAll(ctx context.Context, req GenerateAllRequest) (GenerateAllResponse, error)

	ListPaySlips(ctx context.Context, filter PaySlipFilter) ([]PaySlipResponse, error)
	GetMyPaySlips(ctx context.Context) ([]PaySlipResponse, error)

	GetSalaryStructure(ctx context.Context, employeeID string) (SalaryStructureResponse, error)
	UpsertSalaryStructure(ctx context.Context, req UpsertSalaryStructureRequest) (SalaryStructureResponse, error)
}
