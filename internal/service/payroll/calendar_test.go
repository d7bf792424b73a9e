package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffly-hr/staffly-backend-go/internal/domain/payroll"
)

func TestMonthWindow(t *testing.T) {
	tests := []struct {
		month       string
		year        int
		daysInMonth int
	}{
		{"January", 2025, 31},
		{"February", 2025, 28},
		{"February", 2024, 29}, // leap year
		{"April", 2025, 30},
		{"June", 2024, 30},
		{"December", 2025, 31},
	}

	for _, tt := range tests {
		t.Run(tt.month, func(t *testing.T) {
			window, err := MonthWindow(tt.month, tt.year)
			require.NoError(t, err)

			assert.Equal(t, tt.daysInMonth, window.DaysInMonth)
			assert.Len(t, window.Days, tt.daysInMonth)
			assert.Equal(t, 1, window.First.Day())
			assert.Equal(t, tt.daysInMonth, window.Last.Day())
			assert.Equal(t, tt.month, window.First.Month().String())
		})
	}
}

func TestMonthWindowDaySequence(t *testing.T) {
	// June 2024 has 30 days and starts on a Saturday.
	window, err := MonthWindow("June", 2024)
	require.NoError(t, err)

	for i, day := range window.Days {
		assert.Equal(t, i+1, day.Day())
		assert.Equal(t, time.June, day.Month())
	}

	sundays := 0
	for _, day := range window.Days {
		if day.Weekday() == time.Sunday {
			sundays++
		}
	}
	assert.Equal(t, 5, sundays)
}

func TestMonthWindowInvalid(t *testing.T) {
	_, err := MonthWindow("march", 2025)
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)

	_, err = MonthWindow("Smarch", 2025)
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)

	_, err = MonthWindow("March", 0)
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)

	_, err = MonthWindow("March", 10000)
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}
