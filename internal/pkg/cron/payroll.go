package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/staffly-hr/staffly-backend-go/internal/domain/payroll"
)

// PayrollJobs schedules the month-end payroll run. The generate-all call is
// idempotent (existing slips are skipped), so re-running within the window
// is safe.
type PayrollJobs struct {
	payrollSvc payroll.PayrollService
}

func NewPayrollJobs(payrollSvc payroll.PayrollService) *PayrollJobs {
	return &PayrollJobs{payrollSvc: payrollSvc}
}

func (j *PayrollJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("monthly_payslip_generation", 1*time.Hour, j.GenerateMonthlyPaySlips)
}

// GenerateMonthlyPaySlips runs generate-all for the previous month, but only
// on the first day of the month (01:00-01:59 UTC).
func (j *PayrollJobs) GenerateMonthlyPaySlips(ctx context.Context) error {
	now := time.Now().UTC()
	if now.Day() != 1 || now.Hour() != 1 {
		return nil
	}

	prev := now.AddDate(0, -1, 0)
	month := prev.Month().String()
	year := prev.Year()

	slog.Info("Cron: starting monthly payslip generation", "month", month, "year", year)

	summary, err := j.payrollSvc.GenerateAll(ctx, payroll.GenerateAllRequest{
		Month: &month,
		Year:  &year,
	})
	if err != nil {
		return err
	}

	slog.Info("Cron: monthly payslip generation finished",
		"month", month,
		"year", year,
		"generated", summary.Generated,
		"skipped", summary.Skipped,
	)
	return nil
}
