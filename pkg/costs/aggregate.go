// Package costs normalizes mixed billing cycles onto a common monthly basis
// and produces the rollups behind the stats endpoints. Like pkg/cycle, it is
// pure: no storage, no clock of its own.
package costs

import (
	"sort"
	"time"

	"github.com/237films-bot/subtrack/internal/entity"
	"github.com/237films-bot/subtrack/pkg/cycle"
)

// MonthlyCost converts a subscription's price to a 30-day equivalent.
// It is unconditional: filtering disabled entities is the caller's job.
func MonthlyCost(sub *entity.Subscription) float64 {
	switch sub.BillingCycle {
	case entity.BillingCycleQuarterly:
		return sub.Cost / 3
	case entity.BillingCycleYearly:
		return sub.Cost / 12
	case entity.BillingCycleCustom:
		if sub.CustomCycleDays > 0 {
			return sub.Cost / float64(sub.CustomCycleDays) * 30
		}
		// Undefined custom cycle: treat the price as already monthly.
		return sub.Cost
	default:
		return sub.Cost
	}
}

// TotalMonthly sums monthly-equivalent cost over enabled subscriptions.
func TotalMonthly(subs []*entity.Subscription) float64 {
	var total float64
	for _, sub := range subs {
		if sub.Enabled {
			total += MonthlyCost(sub)
		}
	}
	return total
}

// TotalYearly is a 12-month projection of TotalMonthly, not a sum of
// per-entity yearly prices.
func TotalYearly(subs []*entity.Subscription) float64 {
	return TotalMonthly(subs) * 12
}

// ByCategory groups monthly-equivalent cost by category, enabled-only.
func ByCategory(subs []*entity.Subscription) map[string]float64 {
	grouped := make(map[string]float64)
	for _, sub := range subs {
		if sub.Enabled {
			grouped[sub.Category] += MonthlyCost(sub)
		}
	}
	return grouped
}

// UpcomingRenewal pairs a subscription with its day offset for the timeline.
type UpcomingRenewal struct {
	Subscription *entity.Subscription
	DaysUntil    int
}

// Upcoming returns enabled subscriptions renewing within the next 30 days,
// ordered soonest-first.
func Upcoming(subs []*entity.Subscription, now time.Time) []UpcomingRenewal {
	upcoming := make([]UpcomingRenewal, 0)
	for _, sub := range subs {
		if !sub.Enabled {
			continue
		}
		days := cycle.DaysUntil(sub.RenewalDate, now)
		if days >= 0 && days <= 30 {
			upcoming = append(upcoming, UpcomingRenewal{Subscription: sub, DaysUntil: days})
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DaysUntil < upcoming[j].DaysUntil
	})
	return upcoming
}

// WeekBucket is one slot of the four-week renewal breakdown.
type WeekBucket struct {
	Label     string
	Count     int
	TotalCost float64
}

// WeekBuckets classifies the next 30 days of renewals into four buckets:
// [0,7), [7,14), [14,21) and [21,30]. The last bucket is closed at 30 so a
// renewal exactly 30 days out is still counted.
func WeekBuckets(subs []*entity.Subscription, now time.Time) []WeekBucket {
	labels := []string{"Week 1", "Week 2", "Week 3", "Week 4+"}
	upcoming := Upcoming(subs, now)

	buckets := make([]WeekBucket, len(labels))
	for i, label := range labels {
		minDays := i * 7
		maxDays := (i + 1) * 7

		bucket := WeekBucket{Label: label}
		for _, u := range upcoming {
			inBucket := u.DaysUntil >= minDays && u.DaysUntil < maxDays
			if i == len(labels)-1 {
				inBucket = u.DaysUntil >= minDays && u.DaysUntil <= 30
			}
			if inBucket {
				bucket.Count++
				bucket.TotalCost += u.Subscription.Cost
			}
		}
		buckets[i] = bucket
	}
	return buckets
}

// MonthForecast is one calendar month of the renewal forecast.
type MonthForecast struct {
	Month     string // e.g. "Mar 2024"
	Count     int
	TotalCost float64
}

// MonthlyForecast projects renewals over the next monthsAhead calendar
// months. Each enabled subscription's renewal chain is walked forward until
// it passes the month's end; if any occurrence lands inside the month, the
// subscription counts once toward that month (presence, not occurrence
// count), contributing its full price once. A weekly-equivalent custom cycle
// renewing several times in a month is therefore still a single count.
func MonthlyForecast(subs []*entity.Subscription, now time.Time, monthsAhead int) []MonthForecast {
	forecast := make([]MonthForecast, 0, monthsAhead)

	for i := 0; i < monthsAhead; i++ {
		monthStart := time.Date(now.Year(), now.Month()+time.Month(i), 1, 0, 0, 0, 0, now.Location())
		monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

		month := MonthForecast{Month: monthStart.Format("Jan 2006")}
		for _, sub := range subs {
			if !sub.Enabled {
				continue
			}
			occurrence := sub.RenewalDate
			for !occurrence.After(monthEnd) {
				if !occurrence.Before(monthStart) {
					month.Count++
					month.TotalCost += sub.Cost
					break
				}
				occurrence = cycle.NextRenewal(sub.BillingCycle, occurrence, sub.CustomCycleDays)
			}
		}
		forecast = append(forecast, month)
	}
	return forecast
}

// TotalRemaining sums unused credits over enabled pools. Pools driven past
// their allotment contribute negative remainders rather than being clamped.
func TotalRemaining(pools []*entity.CreditPool) int {
	var remaining int
	for _, pool := range pools {
		if pool.Enabled {
			remaining += pool.TotalCredits - pool.UsedCredits
		}
	}
	return remaining
}

// OverallUsedPercent is aggregate consumption across enabled pools,
// 0 when no credits are allotted at all.
func OverallUsedPercent(pools []*entity.CreditPool) float64 {
	var used, total int
	for _, pool := range pools {
		if pool.Enabled {
			used += pool.UsedCredits
			total += pool.TotalCredits
		}
	}
	if total == 0 {
		return 0
	}
	return float64(used) / float64(total) * 100
}

// LowCredit returns enabled pools with less than 20% of their allotment left.
func LowCredit(pools []*entity.CreditPool) []*entity.CreditPool {
	low := make([]*entity.CreditPool, 0)
	for _, pool := range pools {
		if !pool.Enabled || pool.TotalCredits <= 0 {
			continue
		}
		remaining := float64(pool.TotalCredits-pool.UsedCredits) / float64(pool.TotalCredits)
		if remaining < 0.2 {
			low = append(low, pool)
		}
	}
	return low
}
