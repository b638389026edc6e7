package library

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDueDateComputedOnceAtCreation(t *testing.T) {
	borrowed := time.Date(2026, 1, 20, 17, 45, 0, 0, time.UTC)
	r := newBorrowRecord("M1", "B1", borrowed, 14)

	assert.Equal(t, time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC), r.BorrowDate())
	assert.Equal(t, time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC), r.DueDate())
}

func TestOverdueAndFine(t *testing.T) {
	rate := decimal.RequireFromString("0.50")
	borrowed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	r := newBorrowRecord("M1", "B1", borrowed, 14) // due 2026-01-15

	tests := []struct {
		name        string
		now         time.Time
		overdue     bool
		daysOverdue int64
		fine        string
	}{
		{
			name:        "before_due_date",
			now:         time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC),
			overdue:     false,
			daysOverdue: 0,
			fine:        "0.00",
		},
		{
			name:        "on_due_date_exactly",
			now:         time.Date(2026, 1, 15, 23, 59, 0, 0, time.UTC),
			overdue:     false,
			daysOverdue: 0,
			fine:        "0.00",
		},
		{
			name:        "one_day_past",
			now:         time.Date(2026, 1, 16, 0, 30, 0, 0, time.UTC),
			overdue:     true,
			daysOverdue: 1,
			fine:        "0.50",
		},
		{
			name:        "three_days_past",
			now:         time.Date(2026, 1, 18, 8, 0, 0, 0, time.UTC),
			overdue:     true,
			daysOverdue: 3,
			fine:        "1.50",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overdue, r.IsOverdue(tc.now))
			assert.Equal(t, tc.daysOverdue, r.DaysOverdue(tc.now))
			assert.Equal(t, tc.fine, r.Fine(tc.now, rate).StringFixed(2))
		})
	}
}

func TestDaysOverdueAcrossMonthBoundary(t *testing.T) {
	borrowed := time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC)
	r := newBorrowRecord("M1", "G1", borrowed, 7) // due 2026-02-01

	now := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, int64(30), r.DaysOverdue(now))
}
