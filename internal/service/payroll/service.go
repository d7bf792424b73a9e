package payroll

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/staffly-hr/staffly-backend-go/internal/domain/attendance"
	"github.com/staffly-hr/staffly-backend-go/internal/domain/employee"
	"github.com/staffly-hr/staffly-backend-go/internal/domain/leave"
	"github.com/staffly-hr/staffly-backend-go/internal/domain/payroll"
	"github.com/staffly-hr/staffly-backend-go/internal/pkg/jwt"
	"github.com/staffly-hr/staffly-backend-go/internal/repository/postgresql"
)

type PayrollServiceImpl struct {
	txManager      postgresql.TxManager
	salaryRepo     payroll.SalaryStructureRepository
	slipRepo       payroll.PaySlipRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRequestRepository
}

func NewPayrollService(
	txManager postgresql.TxManager,
	salaryRepo payroll.SalaryStructureRepository,
	slipRepo payroll.PaySlipRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRequestRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		txManager:      txManager,
		salaryRepo:     salaryRepo,
		slipRepo:       slipRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
	}
}

// ========== GENERATION ==========

func (s *PayrollServiceImpl) GeneratePaySlip(ctx context.Context, req payroll.GeneratePaySlipRequest) (payroll.PaySlipResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PaySlipResponse{}, err
	}

	window, err := MonthWindow(req.Month, req.Year)
	if err != nil {
		return payroll.PaySlipResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return payroll.PaySlipResponse{}, err
	}

	var created payroll.PaySlip
	err = s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		created, err = s.generateOne(txCtx, req.EmployeeID, window)
		return err
	})
	if err != nil {
		return payroll.PaySlipResponse{}, err
	}

	return toPaySlipResponse(created), nil
}

// generateOne runs the full check-then-insert sequence for one employee. It
// must be called inside a transaction: the pre-existence check is an early
// exit only, the unique key on (employee_id, month, year) is what actually
// prevents duplicates, and Create remaps its violation to
// ErrSlipAlreadyGenerated.
func (s *PayrollServiceImpl) generateOne(ctx context.Context, employeeID string, window Window) (payroll.PaySlip, error) {
	exists, err := s.slipRepo.ExistsForPeriod(ctx, employeeID, window.Month, window.Year)
	if err != nil {
		return payroll.PaySlip{}, err
	}
	if exists {
		return payroll.PaySlip{}, payroll.ErrSlipAlreadyGenerated
	}

	structure, err := s.salaryRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return payroll.PaySlip{}, err
	}

	statuses, err := s.attendanceRepo.GetStatusesByRange(ctx, employeeID, window.First, window.Last)
	if err != nil {
		return payroll.PaySlip{}, err
	}

	leaves, err := s.leaveRepo.GetApprovedOverlapping(ctx, employeeID, window.First, window.Last)
	if err != nil {
		return payroll.PaySlip{}, err
	}

	payableDays := PayableDays(window, statuses, leaves)

	amounts, err := Prorate(structure, window.DaysInMonth, payableDays)
	if err != nil {
		return payroll.PaySlip{}, err
	}

	return s.slipRepo.Create(ctx, payroll.PaySlip{
		EmployeeID:  employeeID,
		Month:       window.Month,
		Year:        window.Year,
		BasicSalary: amounts.Basic.Round(2),
		Allowances:  amounts.Allowances.Round(2),
		Deductions:  amounts.Deductions.Round(2),
		NetSalary:   amounts.Net.Round(2),
	})
}

func (s *PayrollServiceImpl) GenerateAll(ctx context.Context, req payroll.GenerateAllRequest) (payroll.GenerateAllResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.GenerateAllResponse{}, err
	}

	now := time.Now().UTC()
	month := now.Month().String()
	year := now.Year()
	if req.Month != nil {
		month = *req.Month
	}
	if req.Year != nil {
		year = *req.Year
	}

	window, err := MonthWindow(month, year)
	if err != nil {
		return payroll.GenerateAllResponse{}, err
	}

	roster, err := s.employeeRepo.GetActive(ctx)
	if err != nil {
		return payroll.GenerateAllResponse{}, err
	}

	summary := payroll.GenerateAllResponse{
		Month:       month,
		Year:        year,
		SkipReasons: make(map[string]int),
	}

	// One transaction per employee: a skip or failure here never rolls back
	// slips already committed for earlier employees.
	for _, emp := range roster {
		genErr := s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
			_, err := s.generateOne(txCtx, emp.ID, window)
			return err
		})

		switch {
		case genErr == nil:
			summary.Generated++
		case errors.Is(genErr, payroll.ErrSlipAlreadyGenerated):
			summary.Skipped++
			summary.SkipReasons[payroll.SkipReasonAlreadyGenerated]++
		case errors.Is(genErr, payroll.ErrMissingSalaryStructure):
			summary.Skipped++
			summary.SkipReasons[payroll.SkipReasonMissingSalaryStructure]++
		case errors.Is(genErr, payroll.ErrComputationInvalid):
			summary.Skipped++
			summary.SkipReasons[payroll.SkipReasonComputationInvalid]++
			slog.Error("payroll computation produced an invalid result",
				"employee_id", emp.ID, "month", month, "year", year)
		default:
			summary.Skipped++
			summary.SkipReasons[payroll.SkipReasonStorageError]++
			slog.Error("pay slip generation failed",
				"employee_id", emp.ID, "month", month, "year", year, "error", genErr)
		}
	}

	return summary, nil
}

// ========== PAY SLIPS ==========

func (s *PayrollServiceImpl) ListPaySlips(ctx context.Context, filter payroll.PaySlipFilter) ([]payroll.PaySlipResponse, error) {
	// An employee filter without a period means that employee's full history.
	if filter.EmployeeID != nil && filter.Month == nil && filter.Year == nil {
		slips, err := s.slipRepo.ListByEmployee(ctx, *filter.EmployeeID)
		if err != nil {
			return nil, err
		}
		return toPaySlipResponses(slips), nil
	}

	now := time.Now().UTC()
	month := now.Month().String()
	year := now.Year()
	if filter.Month != nil {
		month = *filter.Month
	}
	if filter.Year != nil {
		year = *filter.Year
	}
	if _, err := MonthWindow(month, year); err != nil {
		return nil, err
	}

	slips, err := s.slipRepo.ListByPeriod(ctx, month, year)
	if err != nil {
		return nil, err
	}

	if filter.EmployeeID != nil {
		filtered := slips[:0]
		for _, slip := range slips {
			if slip.EmployeeID == *filter.EmployeeID {
				filtered = append(filtered, slip)
			}
		}
		slips = filtered
	}

	return toPaySlipResponses(slips), nil
}

func (s *PayrollServiceImpl) GetMyPaySlips(ctx context.Context) ([]payroll.PaySlipResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if claims.EmployeeID == nil {
		return nil, employee.ErrEmployeeNotFound
	}

	slips, err := s.slipRepo.ListByEmployee(ctx, *claims.EmployeeID)
	if err != nil {
		return nil, err
	}

	return toPaySlipResponses(slips), nil
}

// ========== SALARY STRUCTURES ==========

func (s *PayrollServiceImpl) GetSalaryStructure(ctx context.Context, employeeID string) (payroll.SalaryStructureResponse, error) {
	structure, err := s.salaryRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return payroll.SalaryStructureResponse{}, err
	}
	return toSalaryStructureResponse(structure), nil
}

func (s *PayrollServiceImpl) UpsertSalaryStructure(ctx context.Context, req payroll.UpsertSalaryStructureRequest) (payroll.SalaryStructureResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryStructureResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return payroll.SalaryStructureResponse{}, err
	}

	structure, err := s.salaryRepo.Upsert(ctx, payroll.SalaryStructure{
		EmployeeID:       req.EmployeeID,
		BasicSalary:      req.BasicSalary,
		HousingAllowance: req.HousingAllowance,
		OtherAllowances:  req.OtherAllowances,
		ProvidentFund:    req.ProvidentFund,
	})
	if err != nil {
		return payroll.SalaryStructureResponse{}, err
	}

	return toSalaryStructureResponse(structure), nil
}

// ========== MAPPERS ==========

func toPaySlipResponse(slip payroll.PaySlip) payroll.PaySlipResponse {
	resp := payroll.PaySlipResponse{
		ID:          slip.ID,
		EmployeeID:  slip.EmployeeID,
		Month:       slip.Month,
		Year:        slip.Year,
		BasicSalary: slip.BasicSalary,
		Allowances:  slip.Allowances,
		Deductions:  slip.Deductions,
		NetSalary:   slip.NetSalary,
		CreatedAt:   slip.CreatedAt.Format(time.RFC3339),
	}
	if slip.EmployeeName != nil {
		resp.EmployeeName = *slip.EmployeeName
	}
	if slip.EmployeeCode != nil {
		resp.EmployeeCode = *slip.EmployeeCode
	}
	return resp
}

func toPaySlipResponses(slips []payroll.PaySlip) []payroll.PaySlipResponse {
	responses := make([]payroll.PaySlipResponse, 0, len(slips))
	for _, slip := range slips {
		responses = append(responses, toPaySlipResponse(slip))
	}
	return responses
}

func toSalaryStructureResponse(structure payroll.SalaryStructure) payroll.SalaryStructureResponse {
	return payroll.SalaryStructureResponse{
		ID:               structure.ID,
		EmployeeID:       structure.EmployeeID,
		BasicSalary:      structure.BasicSalary,
		HousingAllowance: structure.HousingAllowance,
		OtherAllowances:  structure.OtherAllowances,
		ProvidentFund:    structure.ProvidentFund,
	}
}
