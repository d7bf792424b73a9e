package employee

import (
	"context"
	"errors"
	"time"

	"github.com/staffly-hr/staffly-backend-go/internal/domain/employee"
	"github.com/staffly-hr/staffly-backend-go/internal/domain/payroll"
	"github.com/staffly-hr/staffly-backend-go/internal/fixtures"
	"github.com/staffly-hr/staffly-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	txManager    postgresql.TxManager
	employeeRepo employee.EmployeeRepository
	salaryRepo   payroll.SalaryStructureRepository
}

func NewEmployeeService(
	txManager postgresql.TxManager,
	employeeRepo employee.EmployeeRepository,
	salaryRepo payroll.SalaryStructureRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		txManager:    txManager,
		employeeRepo: employeeRepo,
		salaryRepo:   salaryRepo,
	}
}

// Create adds an employee and seeds their salary structure from the
// department/position defaults in one transaction, so no active employee
// ever exists without a structure.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	joinDate, err := time.Parse("2006-01-02", req.JoinDate)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	var created employee.Employee
	err = s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		created, err = s.employeeRepo.Create(txCtx, employee.Employee{
			EmployeeCode:     req.EmployeeCode,
			FullName:         req.FullName,
			Email:            req.Email,
			Department:       req.Department,
			Position:         req.Position,
			JoinDate:         joinDate,
			EmploymentStatus: employee.EmploymentStatusActive,
		})
		if err != nil {
			return err
		}
		return s.seedSalaryStructure(txCtx, created)
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(created), nil
}

func (s *EmployeeServiceImpl) seedSalaryStructure(ctx context.Context, emp employee.Employee) error {
	defaults := fixtures.DefaultSalaryStructure(emp.Department, emp.Position)
	_, err := s.salaryRepo.Upsert(ctx, payroll.SalaryStructure{
		EmployeeID:       emp.ID,
		BasicSalary:      defaults.BasicSalary,
		HousingAllowance: defaults.HousingAllowance,
		OtherAllowances:  defaults.OtherAllowances,
		ProvidentFund:    defaults.ProvidentFund,
	})
	return err
}

func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(emp), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.Filter) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toEmployeeResponse(emp))
	}
	return responses, nil
}

// Update applies the partial update. When the employee moves to a new
// department/position and has no structure configured yet, one is seeded
// from the defaults table; an existing structure is never overwritten here.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	moved := (req.Department != nil && *req.Department != current.Department) ||
		(req.Position != nil && *req.Position != current.Position)

	var updated employee.Employee
	err = s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.employeeRepo.Update(txCtx, req); err != nil {
			return err
		}
		updated, err = s.employeeRepo.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}
		if moved {
			_, err := s.salaryRepo.GetByEmployeeID(txCtx, req.ID)
			if errors.Is(err, payroll.ErrMissingSalaryStructure) {
				return s.seedSalaryStructure(txCtx, updated)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(updated), nil
}

func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.employeeRepo.Delete(ctx, id)
}

func toEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:               emp.ID,
		EmployeeCode:     emp.EmployeeCode,
		FullName:         emp.FullName,
		Email:            emp.Email,
		Department:       emp.Department,
		Position:         emp.Position,
		JoinDate:         emp.JoinDate.Format("2006-01-02"),
		EmploymentStatus: string(emp.EmploymentStatus),
	}
}
