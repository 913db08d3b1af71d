package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Frequency is the cadence of a recurring template.
type Frequency string

const (
	FrequencyDaily    Frequency = "daily"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
	FrequencyYearly   Frequency = "yearly"
)

// Valid reports whether f is a known frequency.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// RecurringTransaction is a template that materializes into concrete
// transactions over time. The template itself never holds a balance; transfers
// are not supported as recurring.
type RecurringTransaction struct {
	RecurringID       string          `json:"recurringID"`
	AccountID         string          `json:"accountID"`
	Type              TransactionType `json:"type"` // income or expense only
	Amount            decimal.Decimal `json:"amount"`
	CategoryID        string          `json:"categoryID"`
	Description       string          `json:"description"`
	Frequency         Frequency       `json:"frequency"`
	NextDueDate       time.Time       `json:"nextDueDate"`
	LastProcessedDate *time.Time      `json:"lastProcessedDate"`
	IsActive          bool            `json:"isActive"`
	Notes             string          `json:"notes"`
	AuditFields
}

// NextDueDate advances a due date by one period. Monthly and yearly use
// calendar arithmetic with day-of-month clamping so Jan 31 advances to Feb 28
// (or 29), not Mar 3.
func NextDueDate(current time.Time, f Frequency) time.Time {
	switch f {
	case FrequencyDaily:
		return current.AddDate(0, 0, 1)
	case FrequencyWeekly:
		return current.AddDate(0, 0, 7)
	case FrequencyBiweekly:
		return current.AddDate(0, 0, 14)
	case FrequencyMonthly:
		return addMonthsClamped(current, 1)
	case FrequencyYearly:
		return addMonthsClamped(current, 12)
	}
	return current
}

// addMonthsClamped adds months keeping the day-of-month, clamped to the last
// day of the target month. time.AddDate would normalize Jan 31 + 1 month to
// Mar 2/3 instead.
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	m := int(month) + months
	year += (m - 1) / 12
	month = time.Month((m-1)%12 + 1)

	if last := daysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthlyFactor returns the multiplier that normalizes a per-occurrence amount
// to a per-month figure. Approximation for summary displays only, never used
// for scheduling.
func MonthlyFactor(f Frequency) decimal.Decimal {
	switch f {
	case FrequencyDaily:
		return decimal.NewFromInt(30)
	case FrequencyWeekly:
		return decimal.NewFromFloat(4.33)
	case FrequencyBiweekly:
		return decimal.NewFromFloat(2.17)
	case FrequencyMonthly:
		return decimal.NewFromInt(1)
	case FrequencyYearly:
		return decimal.NewFromInt(1).Div(decimal.NewFromInt(12))
	}
	return decimal.Zero
}

// DueStatus is read-only schedule metadata derived at query time. Never
// persisted.
type DueStatus struct {
	DaysUntilDue int  `json:"daysUntilDue"`
	IsOverdue    bool `json:"isOverdue"`
	IsDueToday   bool `json:"isDueToday"`
	IsDueSoon    bool `json:"isDueSoon"`
}

// DueStatusAt computes the schedule metadata for the template relative to now.
func (r RecurringTransaction) DueStatusAt(now time.Time) DueStatus {
	days := daysBetween(now, r.NextDueDate)
	return DueStatus{
		DaysUntilDue: days,
		IsOverdue:    days < 0,
		IsDueToday:   days == 0,
		IsDueSoon:    days > 0 && days <= 7,
	}
}

// daysBetween counts whole calendar days from a to b, ignoring time of day.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}
