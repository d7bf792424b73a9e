package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staffly-hr/staffly-backend-go/internal/domain/payroll"
	"github.com/staffly-hr/staffly-backend-go/internal/pkg/database"
)

type salaryStructureRepository struct {
	db *database.DB
}

func NewSalaryStructureRepository(db *database.DB) payroll.SalaryStructureRepository {
	return &salaryStructureRepository{db: db}
}

func (r *salaryStructureRepository) GetByEmployeeID(ctx context.Context, employeeID string) (payroll.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, basic_salary, housing_allowance, other_allowances, provident_fund,
		       created_at, updated_at
		FROM salary_structures
		WHERE employee_id = $1
	`

	var s payroll.SalaryStructure
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&s.ID, &s.EmployeeID, &s.BasicSalary, &s.HousingAllowance,
		&s.OtherAllowances, &s.ProvidentFund, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.SalaryStructure{}, payroll.ErrMissingSalaryStructure
		}
		return payroll.SalaryStructure{}, fmt.Errorf("failed to get salary structure: %w", err)
	}

	return s, nil
}

func (r *salaryStructureRepository) Upsert(ctx context.Context, structure payroll.SalaryStructure) (payroll.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	if structure.ID == "" {
		structure.ID = uuid.NewString()
	}

	query := `
		INSERT INTO salary_structures (id, employee_id, basic_salary, housing_allowance, other_allowances, provident_fund)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_id) DO UPDATE SET
			basic_salary = EXCLUDED.basic_salary,
			housing_allowance = EXCLUDED.housing_allowance,
			other_allowances = EXCLUDED.other_allowances,
			provident_fund = EXCLUDED.provident_fund,
			updated_at = NOW()
		RETURNING id, employee_id, basic_salary, housing_allowance, other_allowances, provident_fund,
			created_at, updated_at
	`

	var s payroll.SalaryStructure
	err := q.QueryRow(ctx, query,
		structure.ID, structure.EmployeeID, structure.BasicSalary,
		structure.HousingAllowance, structure.OtherAllowances, structure.ProvidentFund,
	).Scan(
		&s.ID, &s.EmployeeID, &s.BasicSalary, &s.HousingAllowance,
		&s.OtherAllowances, &s.ProvidentFund, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return payroll.SalaryStructure{}, fmt.Errorf("failed to upsert salary structure: %w", err)
	}

	return s, nil
}
