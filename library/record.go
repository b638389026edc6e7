package library

import (
	"time"

	"github.com/shopspring/decimal"
)

// BorrowRecord is an immutable snapshot of a single outstanding loan: who
// borrowed what, when, and when it is due. A record is created exactly when a
// borrow succeeds and destroyed exactly when the matching return succeeds; at
// most one active record exists per item at any time.
//
// Overdue status, days overdue and the fine are not stored. They are derived
// against a caller-supplied "now", so the answers can change between two calls
// purely through the passage of time.
type BorrowRecord struct {
	memberID   string
	itemID     string
	borrowDate time.Time
	dueDate    time.Time
}

func newBorrowRecord(memberID, itemID string, borrowDate time.Time, borrowDays int) *BorrowRecord {
	day := dateOnly(borrowDate)
	return &BorrowRecord{
		memberID:   memberID,
		itemID:     itemID,
		borrowDate: day,
		dueDate:    day.AddDate(0, 0, borrowDays),
	}
}

func (r *BorrowRecord) MemberID() string      { return r.memberID }
func (r *BorrowRecord) ItemID() string        { return r.itemID }
func (r *BorrowRecord) BorrowDate() time.Time { return r.borrowDate }
func (r *BorrowRecord) DueDate() time.Time    { return r.dueDate }

// IsOverdue reports whether now's calendar date is strictly after the due
// date. On the due date itself the loan is not overdue.
func (r *BorrowRecord) IsOverdue(now time.Time) bool {
	return dateOnly(now).After(r.dueDate)
}

// DaysOverdue returns the whole days past the due date, 0 when not overdue.
func (r *BorrowRecord) DaysOverdue(now time.Time) int64 {
	if !r.IsOverdue(now) {
		return 0
	}
	return epochDays(now) - epochDays(r.dueDate)
}

// Fine returns days overdue multiplied by the daily rate. Fines are advisory;
// nothing in the engine collects them.
func (r *BorrowRecord) Fine(now time.Time, dailyRate decimal.Decimal) decimal.Decimal {
	return dailyRate.Mul(decimal.NewFromInt(r.DaysOverdue(now)))
}

// dateOnly truncates t to its UTC calendar date.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// epochDays counts whole days since 1970-01-01 for t's UTC calendar date.
func epochDays(t time.Time) int64 {
	return dateOnly(t).Unix() / 86400
}
