package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pocketledger/pocketledger/internal/core/domain"
)

func TestBudget_PeriodStart(t *testing.T) {
	tests := []struct {
		name   string
		budget domain.Budget
		now    time.Time
		want   time.Time
	}{
		{
			name:   "weekly resets on the most recent Monday",
			budget: domain.Budget{Period: domain.BudgetWeekly},
			// Thursday.
			now:  time.Date(2025, time.May, 15, 18, 30, 0, 0, time.UTC),
			want: date(2025, time.May, 12),
		},
		{
			name:   "weekly on a Monday is today at midnight",
			budget: domain.Budget{Period: domain.BudgetWeekly},
			now:    time.Date(2025, time.May, 12, 8, 0, 0, 0, time.UTC),
			want:   date(2025, time.May, 12),
		},
		{
			name:   "weekly on a Sunday reaches back six days",
			budget: domain.Budget{Period: domain.BudgetWeekly},
			now:    time.Date(2025, time.May, 18, 12, 0, 0, 0, time.UTC),
			want:   date(2025, time.May, 12),
		},
		{
			name:   "monthly resets on the 1st",
			budget: domain.Budget{Period: domain.BudgetMonthly},
			now:    time.Date(2025, time.May, 20, 10, 0, 0, 0, time.UTC),
			want:   date(2025, time.May, 1),
		},
		{
			name: "monthly budget created mid-month still tracks from the 1st",
			budget: domain.Budget{
				Period:    domain.BudgetMonthly,
				StartDate: date(2025, time.May, 15),
			},
			now:  time.Date(2025, time.May, 20, 10, 0, 0, 0, time.UTC),
			want: date(2025, time.May, 1),
		},
		{
			name: "yearly anchors to the start date's month",
			budget: domain.Budget{
				Period:    domain.BudgetYearly,
				StartDate: date(2023, time.April, 10),
			},
			now:  time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
			want: date(2025, time.April, 1),
		},
		{
			name: "yearly anchor not yet reached this year rolls back a year",
			budget: domain.Budget{
				Period:    domain.BudgetYearly,
				StartDate: date(2023, time.October, 10),
			},
			now:  time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
			want: date(2024, time.October, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.budget.PeriodStart(tt.now)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestBudgetPeriod_Valid(t *testing.T) {
	assert.True(t, domain.BudgetWeekly.Valid())
	assert.True(t, domain.BudgetMonthly.Valid())
	assert.True(t, domain.BudgetYearly.Valid())
	assert.False(t, domain.BudgetPeriod("daily").Valid())
}
