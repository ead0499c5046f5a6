package cycle

import (
	"testing"
	"time"

	"github.com/237films-bot/subtrack/internal/entity"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func monthlyPool(resetDay int) *entity.CreditPool {
	return &entity.CreditPool{ResetCycle: entity.ResetCycleMonthly, ResetDay: resetDay}
}

func TestNextRenewal(t *testing.T) {
	anchor := date(2024, time.January, 15)

	tests := []struct {
		name       string
		billing    entity.BillingCycle
		customDays int
		want       time.Time
	}{
		{"monthly", entity.BillingCycleMonthly, 0, date(2024, time.February, 15)},
		{"quarterly", entity.BillingCycleQuarterly, 0, date(2024, time.April, 15)},
		{"yearly", entity.BillingCycleYearly, 0, date(2025, time.January, 15)},
		{"custom 90 days", entity.BillingCycleCustom, 90, date(2024, time.April, 14)},
		{"custom without interval falls back to monthly", entity.BillingCycleCustom, 0, date(2024, time.February, 15)},
		{"unknown cycle falls back to monthly", entity.BillingCycle("fortnightly"), 0, date(2024, time.February, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextRenewal(tt.billing, anchor, tt.customDays))
		})
	}
}

func TestNextRenewalAlwaysAdvances(t *testing.T) {
	// The forecast walker relies on every step moving strictly forward.
	anchor := date(2024, time.March, 31)
	for _, billing := range []entity.BillingCycle{
		entity.BillingCycleMonthly,
		entity.BillingCycleQuarterly,
		entity.BillingCycleYearly,
		entity.BillingCycleCustom,
	} {
		next := NextRenewal(billing, anchor, 0)
		assert.True(t, next.After(anchor), "cycle %s did not advance", billing)
	}
}

func TestNextResetMonthly(t *testing.T) {
	t.Run("reset later this month", func(t *testing.T) {
		now := date(2024, time.March, 10)
		assert.Equal(t, date(2024, time.March, 15), NextReset(monthlyPool(15), now))
	})

	t.Run("reset day already passed rolls to next month", func(t *testing.T) {
		now := date(2024, time.March, 20)
		assert.Equal(t, date(2024, time.April, 15), NextReset(monthlyPool(15), now))
	})

	t.Run("reset day today rolls to next month", func(t *testing.T) {
		now := date(2024, time.March, 15)
		assert.Equal(t, date(2024, time.April, 15), NextReset(monthlyPool(15), now))
	})

	t.Run("day 31 clamps to 28", func(t *testing.T) {
		now := date(2024, time.February, 1)
		assert.Equal(t, date(2024, time.February, 28), NextReset(monthlyPool(31), now))
	})

	t.Run("day preserved for all valid reset days", func(t *testing.T) {
		// Walk a year of reference dates: the returned day must always equal
		// the configured day and never spill into the following month.
		for resetDay := 1; resetDay <= 28; resetDay++ {
			for m := time.January; m <= time.December; m++ {
				now := date(2023, m, 14)
				got := NextReset(monthlyPool(resetDay), now)
				assert.Equal(t, resetDay, got.Day(), "resetDay=%d month=%s", resetDay, m)
			}
		}
	})
}

func TestNextResetWeekly(t *testing.T) {
	// 2024-03-13 is a Wednesday (weekday 3).
	now := date(2024, time.March, 13)

	pool := func(dow int) *entity.CreditPool {
		return &entity.CreditPool{ResetCycle: entity.ResetCycleWeekly, ResetDay: dow}
	}

	t.Run("later this week", func(t *testing.T) {
		assert.Equal(t, date(2024, time.March, 15), NextReset(pool(5), now)) // Friday
	})

	t.Run("earlier weekday lands next week", func(t *testing.T) {
		assert.Equal(t, date(2024, time.March, 18), NextReset(pool(1), now)) // Monday
	})

	t.Run("same weekday is never today", func(t *testing.T) {
		got := NextReset(pool(3), now)
		assert.Equal(t, date(2024, time.March, 20), got)
		assert.Equal(t, 7, DaysUntil(got, now))
	})
}

func TestNextResetYearly(t *testing.T) {
	pool := &entity.CreditPool{ResetCycle: entity.ResetCycleYearly, ResetDay: 315} // March 15

	t.Run("upcoming this year", func(t *testing.T) {
		now := date(2024, time.February, 1)
		assert.Equal(t, date(2024, time.March, 15), NextReset(pool, now))
	})

	t.Run("already passed this year", func(t *testing.T) {
		now := date(2024, time.June, 1)
		assert.Equal(t, date(2025, time.March, 15), NextReset(pool, now))
	})

	t.Run("today counts as passed", func(t *testing.T) {
		now := date(2024, time.March, 15)
		got := NextReset(pool, now)
		assert.Equal(t, date(2025, time.March, 15), got)
		assert.Equal(t, 365, DaysUntil(got, now))
	})
}

func TestNextResetCustom(t *testing.T) {
	t.Run("anchored to creation date", func(t *testing.T) {
		pool := &entity.CreditPool{
			ResetCycle:      entity.ResetCycleCustom,
			CustomResetDays: 10,
			CreatedAt:       date(2024, time.January, 1),
		}
		// 14 days elapsed, 14 mod 10 = 4, so 6 days remain in this interval.
		now := date(2024, time.January, 15)
		assert.Equal(t, date(2024, time.January, 21), NextReset(pool, now))
		assert.Equal(t, 6, DaysUntilReset(pool, now))
	})

	t.Run("zero interval degrades to monthly fallback", func(t *testing.T) {
		pool := &entity.CreditPool{
			ResetCycle:      entity.ResetCycleCustom,
			ResetDay:        5,
			CustomResetDays: 0,
			CreatedAt:       date(2024, time.January, 1),
		}
		now := date(2024, time.March, 10)
		assert.Equal(t, date(2024, time.April, 5), NextReset(pool, now))
	})
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2024, time.March, 10, 9, 30, 0, 0, time.Local)

	assert.Equal(t, 5, DaysUntil(date(2024, time.March, 15), now))
	assert.Equal(t, 0, DaysUntil(now, now))
	assert.Equal(t, -4, DaysUntil(time.Date(2024, time.March, 6, 9, 30, 0, 0, time.Local), now))
	// Partial days round up.
	assert.Equal(t, 1, DaysUntil(date(2024, time.March, 11), now))
}

func TestDueSoonAndOverdue(t *testing.T) {
	assert.True(t, DueSoon(0, 7))
	assert.True(t, DueSoon(7, 7))
	assert.False(t, DueSoon(8, 7))
	assert.False(t, DueSoon(-1, 7))

	assert.True(t, Overdue(-1))
	assert.False(t, Overdue(0))
}

func TestResetProgress(t *testing.T) {
	t.Run("weekly mid cycle", func(t *testing.T) {
		// Wednesday, reset on Saturday: 3 days left of 7, so 4/7 elapsed.
		pool := &entity.CreditPool{ResetCycle: entity.ResetCycleWeekly, ResetDay: 6}
		now := date(2024, time.March, 13)
		assert.InDelta(t, 100.0*4/7, ResetProgress(pool, now), 0.01)
	})

	t.Run("clamped to 0-100", func(t *testing.T) {
		// Yearly reset due in 365 days against the nominal 365-day cycle: 0%.
		pool := &entity.CreditPool{ResetCycle: entity.ResetCycleYearly, ResetDay: 315}
		now := date(2024, time.March, 15)
		got := ResetProgress(pool, now)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 100.0)
	})
}
