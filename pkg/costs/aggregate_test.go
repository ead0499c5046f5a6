package costs

import (
	"testing"
	"time"

	"github.com/237films-bot/subtrack/internal/entity"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func sub(cost float64, billing entity.BillingCycle, customDays int) *entity.Subscription {
	return &entity.Subscription{
		Cost:            cost,
		BillingCycle:    billing,
		CustomCycleDays: customDays,
		Enabled:         true,
	}
}

func TestMonthlyCost(t *testing.T) {
	tests := []struct {
		name string
		sub  *entity.Subscription
		want float64
	}{
		{"monthly as-is", sub(9.99, entity.BillingCycleMonthly, 0), 9.99},
		{"quarterly divided by three", sub(30, entity.BillingCycleQuarterly, 0), 10},
		{"yearly 12 becomes 1", sub(12, entity.BillingCycleYearly, 0), 1},
		{"custom 9 over 90 days becomes 3", sub(9, entity.BillingCycleCustom, 90), 3},
		{"custom without interval treated as monthly", sub(5, entity.BillingCycleCustom, 0), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, MonthlyCost(tt.sub), 1e-9)
		})
	}
}

func TestTotals(t *testing.T) {
	disabled := sub(100, entity.BillingCycleMonthly, 0)
	disabled.Enabled = false

	subs := []*entity.Subscription{
		sub(10, entity.BillingCycleMonthly, 0),
		sub(12, entity.BillingCycleYearly, 0),
		disabled,
	}

	assert.InDelta(t, 11, TotalMonthly(subs), 1e-9)
	// Definitional identity, not an approximation.
	assert.Equal(t, TotalMonthly(subs)*12, TotalYearly(subs))
}

func TestByCategory(t *testing.T) {
	video := sub(10, entity.BillingCycleMonthly, 0)
	video.Category = "video"
	music := sub(24, entity.BillingCycleYearly, 0)
	music.Category = "music"
	moreVideo := sub(5, entity.BillingCycleMonthly, 0)
	moreVideo.Category = "video"
	off := sub(99, entity.BillingCycleMonthly, 0)
	off.Category = "video"
	off.Enabled = false

	subs := []*entity.Subscription{video, music, moreVideo, off}

	grouped := ByCategory(subs)
	assert.Len(t, grouped, 2)
	assert.InDelta(t, 15, grouped["video"], 1e-9)
	assert.InDelta(t, 2, grouped["music"], 1e-9)

	// Same input, same output.
	assert.Equal(t, grouped, ByCategory(subs))
}

func renewingIn(days int, now time.Time, cost float64) *entity.Subscription {
	s := sub(cost, entity.BillingCycleMonthly, 0)
	s.RenewalDate = now.AddDate(0, 0, days)
	return s
}

func TestUpcoming(t *testing.T) {
	now := date(2024, time.March, 1)

	overdue := renewingIn(-2, now, 1)
	today := renewingIn(0, now, 2)
	midMonth := renewingIn(14, now, 3)
	dayThirty := renewingIn(30, now, 4)
	tooFar := renewingIn(31, now, 5)

	upcoming := Upcoming([]*entity.Subscription{tooFar, midMonth, overdue, dayThirty, today}, now)

	assert.Len(t, upcoming, 3)
	assert.Equal(t, 0, upcoming[0].DaysUntil)
	assert.Equal(t, 14, upcoming[1].DaysUntil)
	assert.Equal(t, 30, upcoming[2].DaysUntil)
}

func TestWeekBuckets(t *testing.T) {
	now := date(2024, time.March, 1)

	subs := []*entity.Subscription{
		renewingIn(0, now, 10),  // week 1
		renewingIn(6, now, 10),  // week 1
		renewingIn(7, now, 20),  // week 2
		renewingIn(20, now, 30), // week 3
		renewingIn(21, now, 40), // week 4+
		renewingIn(30, now, 40), // week 4+: day 30 itself is included
	}

	buckets := WeekBuckets(subs, now)
	assert.Len(t, buckets, 4)

	assert.Equal(t, 2, buckets[0].Count)
	assert.InDelta(t, 20, buckets[0].TotalCost, 1e-9)
	assert.Equal(t, 1, buckets[1].Count)
	assert.Equal(t, 1, buckets[2].Count)
	assert.Equal(t, 2, buckets[3].Count)
	assert.InDelta(t, 80, buckets[3].TotalCost, 1e-9)
}

func TestMonthlyForecast(t *testing.T) {
	now := date(2024, time.March, 1)

	t.Run("monthly subscription appears every month", func(t *testing.T) {
		s := sub(10, entity.BillingCycleMonthly, 0)
		s.RenewalDate = date(2024, time.March, 15)

		forecast := MonthlyForecast([]*entity.Subscription{s}, now, 12)
		assert.Len(t, forecast, 12)
		for _, month := range forecast {
			assert.Equal(t, 1, month.Count, month.Month)
			assert.InDelta(t, 10, month.TotalCost, 1e-9)
		}
		assert.Equal(t, "Mar 2024", forecast[0].Month)
		assert.Equal(t, "Feb 2025", forecast[11].Month)
	})

	t.Run("quarterly subscription appears every third month", func(t *testing.T) {
		s := sub(30, entity.BillingCycleQuarterly, 0)
		s.RenewalDate = date(2024, time.April, 10)

		forecast := MonthlyForecast([]*entity.Subscription{s}, now, 6)
		counts := make([]int, 0, 6)
		for _, month := range forecast {
			counts = append(counts, month.Count)
		}
		assert.Equal(t, []int{0, 1, 0, 0, 1, 0}, counts)
	})

	t.Run("short custom cycle counts as presence not occurrences", func(t *testing.T) {
		s := sub(2, entity.BillingCycleCustom, 7)
		s.RenewalDate = date(2024, time.March, 3)

		forecast := MonthlyForecast([]*entity.Subscription{s}, now, 1)
		// Four or five renewals land in March; the month still counts it once.
		assert.Equal(t, 1, forecast[0].Count)
		assert.InDelta(t, 2, forecast[0].TotalCost, 1e-9)
	})

	t.Run("disabled subscriptions are excluded", func(t *testing.T) {
		s := sub(10, entity.BillingCycleMonthly, 0)
		s.RenewalDate = date(2024, time.March, 15)
		s.Enabled = false

		forecast := MonthlyForecast([]*entity.Subscription{s}, now, 3)
		for _, month := range forecast {
			assert.Zero(t, month.Count)
		}
	})
}

func pool(total, used int, enabled bool) *entity.CreditPool {
	return &entity.CreditPool{TotalCredits: total, UsedCredits: used, Enabled: enabled}
}

func TestCreditRollups(t *testing.T) {
	pools := []*entity.CreditPool{
		pool(100, 95, true),
		pool(100, 70, true),
		pool(50, 50, false), // disabled, ignored everywhere
	}

	assert.Equal(t, 35, TotalRemaining(pools))
	assert.InDelta(t, 82.5, OverallUsedPercent(pools), 1e-9)

	low := LowCredit(pools)
	assert.Len(t, low, 1)
	assert.Equal(t, 95, low[0].UsedCredits)
}

func TestOverallUsedPercentZeroTotal(t *testing.T) {
	assert.Zero(t, OverallUsedPercent(nil))
	assert.Zero(t, OverallUsedPercent([]*entity.CreditPool{pool(0, 0, true)}))
}

func TestLowCreditIgnoresZeroAllotment(t *testing.T) {
	assert.Empty(t, LowCredit([]*entity.CreditPool{pool(0, 10, true)}))
}
