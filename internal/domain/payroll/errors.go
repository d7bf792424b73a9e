package payroll

import "errors"

var (
	ErrMissingSalaryStructure = errors.New("no salary structure configured for employee")
	ErrSlipAlreadyGenerated   = errors.New("pay slip already generated for this period")
	ErrComputationInvalid     = errors.New("payroll computation produced an invalid result")
	ErrPayrollFinalized       = errors.New("payroll finalized for this period, attendance is locked")
	ErrPaySlipNotFound        = errors.New("pay slip not found")
	ErrInvalidPeriod          = errors.New("invalid payroll period")
)
