package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staffly-hr/staffly-backend-go/internal/domain/attendance"
	"github.com/staffly-hr/staffly-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) UpsertCheckIn(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	// The unique key on (employee_id, date) makes this one row per day; a
	// second check-in keeps the original check_in timestamp and fails.
	query := `
		INSERT INTO attendances (id, employee_id, date, status, check_in)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			status = EXCLUDED.status,
			check_in = COALESCE(attendances.check_in, EXCLUDED.check_in),
			updated_at = NOW()
		WHERE attendances.check_in IS NULL
		RETURNING id, employee_id, date, status, check_in, check_out, created_at, updated_at
	`

	var a attendance.Attendance
	err := q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.Date, record.Status, record.CheckIn,
	).Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.Status, &a.CheckIn, &a.CheckOut, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Conflict row already had a check-in, so the upsert matched nothing.
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to upsert check-in: %w", err)
	}

	return a, nil
}

func (r *attendanceRepository) SetCheckOut(ctx context.Context, employeeID string, date time.Time, checkOut time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET check_out = $3, updated_at = NOW()
		WHERE employee_id = $1 AND date = $2 AND check_in IS NOT NULL AND check_out IS NULL
		RETURNING id, employee_id, date, status, check_in, check_out, created_at, updated_at
	`

	var a attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, date, checkOut).Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.Status, &a.CheckIn, &a.CheckOut, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, r.classifyCheckOutFailure(ctx, employeeID, date)
		}
		return attendance.Attendance{}, fmt.Errorf("failed to set check-out: %w", err)
	}

	return a, nil
}

// classifyCheckOutFailure distinguishes "never checked in" from "already
// checked out" after an update matched no row.
func (r *attendanceRepository) classifyCheckOutFailure(ctx context.Context, employeeID string, date time.Time) error {
	existing, err := r.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.ErrNotCheckedIn
	}
	if existing.CheckOut != nil {
		return attendance.ErrAlreadyCheckedOut
	}
	return attendance.ErrNotCheckedIn
}

func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, status, check_in, check_out, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1 AND date = $2
	`

	var a attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.Status, &a.CheckIn, &a.CheckOut, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return a, nil
}

func (r *attendanceRepository) GetStatusesByRange(ctx context.Context, employeeID string, from, to time.Time) (map[string]attendance.Status, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date, status
		FROM attendances
		WHERE employee_id = $1 AND date >= $2 AND date <= $3
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance range: %w", err)
	}
	defer rows.Close()

	statuses := make(map[string]attendance.Status)
	for rows.Next() {
		var date time.Time
		var status attendance.Status
		if err := rows.Scan(&date, &status); err != nil {
			return nil, fmt.Errorf("failed to scan attendance status: %w", err)
		}
		statuses[date.Format("2006-01-02")] = status
	}

	return statuses, rows.Err()
}

func (r *attendanceRepository) List(ctx context.Context, filter attendance.Filter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.status, a.check_in, a.check_out,
		       a.created_at, a.updated_at, e.full_name
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE 1=1
	`
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		query += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.DateFrom != nil {
		query += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.DateFrom)
		argIdx++
	}
	if filter.DateTo != nil {
		query += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.DateTo)
		argIdx++
	}
	query += " ORDER BY a.date DESC, e.full_name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		if err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.Date, &a.Status, &a.CheckIn, &a.CheckOut,
			&a.CreatedAt, &a.UpdatedAt, &a.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}

	return records, rows.Err()
}
