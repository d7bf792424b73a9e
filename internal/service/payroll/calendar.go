package payroll

import (
	"time"

	"github.com/staffly-hr/staffly-backend-go/internal/domain/payroll"
)

// Window is the calendar span of one payroll period.
type Window struct {
	Month       string
	Year        int
	DaysInMonth int
	First       time.Time
	Last        time.Time
	Days        []time.Time
}

func monthIndex(name string) (time.Month, bool) {
	for i, m := range payroll.MonthNames {
		if m == name {
			return time.Month(i + 1), true
		}
	}
	return 0, false
}

// MonthWindow builds the day sequence for (month, year). Month must be a full
// English month name. Day count comes from normalizing day 0 of the following
// month, so leap Februaries fall out naturally.
func MonthWindow(month string, year int) (Window, error) {
	m, ok := monthIndex(month)
	if !ok {
		return Window{}, payroll.ErrInvalidPeriod
	}
	if year < 1000 || year > 9999 {
		return Window{}, payroll.ErrInvalidPeriod
	}

	first := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC)

	days := make([]time.Time, 0, last.Day())
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}

	return Window{
		Month:       month,
		Year:        year,
		DaysInMonth: last.Day(),
		First:       first,
		Last:        last,
		Days:        days,
	}, nil
}
