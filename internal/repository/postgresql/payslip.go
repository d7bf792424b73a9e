package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/staffly-hr/staffly-backend-go/internal/domain/payroll"
	"github.com/staffly-hr/staffly-backend-go/internal/pkg/database"
)

type paySlipRepository struct {
	db *database.DB
}

func NewPaySlipRepository(db *database.DB) payroll.PaySlipRepository {
	return &paySlipRepository{db: db}
}

const uniquePaySlipPeriodKey = "uk_pay_slips_employee_period"

func (r *paySlipRepository) Create(ctx context.Context, slip payroll.PaySlip) (payroll.PaySlip, error) {
	q := GetQuerier(ctx, r.db)

	if slip.ID == "" {
		slip.ID = uuid.NewString()
	}

	query := `
		INSERT INTO pay_slips (id, employee_id, month, year, basic_salary, allowances, deductions, net_salary)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, employee_id, month, year, basic_salary, allowances, deductions, net_salary, created_at
	`

	var s payroll.PaySlip
	err := q.QueryRow(ctx, query,
		slip.ID, slip.EmployeeID, slip.Month, slip.Year,
		slip.BasicSalary, slip.Allowances, slip.Deductions, slip.NetSalary,
	).Scan(
		&s.ID, &s.EmployeeID, &s.Month, &s.Year,
		&s.BasicSalary, &s.Allowances, &s.Deductions, &s.NetSalary, &s.CreatedAt,
	)
	if err != nil {
		// The unique key on (employee_id, month, year) is the authoritative
		// duplicate guard; the service's pre-check is only a fast path.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == uniquePaySlipPeriodKey {
			return payroll.PaySlip{}, payroll.ErrSlipAlreadyGenerated
		}
		return payroll.PaySlip{}, fmt.Errorf("failed to create pay slip: %w", err)
	}

	return s, nil
}

func (r *paySlipRepository) GetByEmployeePeriod(ctx context.Context, employeeID, month string, year int) (payroll.PaySlip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, month, year, basic_salary, allowances, deductions, net_salary, created_at
		FROM pay_slips
		WHERE employee_id = $1 AND month = $2 AND year = $3
	`

	var s payroll.PaySlip
	err := q.QueryRow(ctx, query, employeeID, month, year).Scan(
		&s.ID, &s.EmployeeID, &s.Month, &s.Year,
		&s.BasicSalary, &s.Allowances, &s.Deductions, &s.NetSalary, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PaySlip{}, payroll.ErrPaySlipNotFound
		}
		return payroll.PaySlip{}, fmt.Errorf("failed to get pay slip: %w", err)
	}

	return s, nil
}

func (r *paySlipRepository) ExistsForPeriod(ctx context.Context, employeeID, month string, year int) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM pay_slips
			WHERE employee_id = $1 AND month = $2 AND year = $3
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, month, year).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check pay slip existence: %w", err)
	}

	return exists, nil
}

func (r *paySlipRepository) ListByPeriod(ctx context.Context, month string, year int) ([]payroll.PaySlip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.employee_id, s.month, s.year,
			   s.basic_salary, s.allowances, s.deductions, s.net_salary, s.created_at,
			   e.full_name, e.employee_code
		FROM pay_slips s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.month = $1 AND s.year = $2
		ORDER BY e.full_name
	`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list pay slips: %w", err)
	}
	defer rows.Close()

	return scanPaySlipsWithEmployee(rows)
}

func (r *paySlipRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.PaySlip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.employee_id, s.month, s.year,
			   s.basic_salary, s.allowances, s.deductions, s.net_salary, s.created_at,
			   e.full_name, e.employee_code
		FROM pay_slips s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.employee_id = $1
		ORDER BY s.year DESC, s.created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pay slips by employee: %w", err)
	}
	defer rows.Close()

	return scanPaySlipsWithEmployee(rows)
}

func scanPaySlipsWithEmployee(rows pgx.Rows) ([]payroll.PaySlip, error) {
	var slips []payroll.PaySlip
	for rows.Next() {
		var s payroll.PaySlip
		if err := rows.Scan(
			&s.ID, &s.EmployeeID, &s.Month, &s.Year,
			&s.BasicSalary, &s.Allowances, &s.Deductions, &s.NetSalary, &s.CreatedAt,
			&s.EmployeeName, &s.EmployeeCode,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pay slip: %w", err)
		}
		slips = append(slips, s)
	}
	return slips, rows.Err()
}
