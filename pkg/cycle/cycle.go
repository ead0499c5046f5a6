// Package cycle computes occurrence dates for billing and reset cycles.
// All functions are pure: callers pass the reference time explicitly so
// results are deterministic and testable. Dates are local wall-clock;
// time-of-day carries no meaning beyond day granularity.
package cycle

import (
	"math"
	"time"

	"github.com/237films-bot/subtrack/internal/entity"
)

const day = 24 * time.Hour

// NextRenewal advances a renewal date by one billing cycle. The anchor is the
// subscription's current renewal date, not its creation date: a custom cycle
// keeps stepping from wherever the last renewal landed. Chainable, so the
// forecast walker can apply it repeatedly.
//
// A custom cycle without a positive day count is undefined; it degrades to the
// monthly cadence instead of failing.
func NextRenewal(billing entity.BillingCycle, anchor time.Time, customDays int) time.Time {
	switch billing {
	case entity.BillingCycleQuarterly:
		return anchor.AddDate(0, 3, 0)
	case entity.BillingCycleYearly:
		return anchor.AddDate(1, 0, 0)
	case entity.BillingCycleCustom:
		if customDays > 0 {
			return anchor.AddDate(0, 0, customDays)
		}
		return anchor.AddDate(0, 1, 0)
	default:
		return anchor.AddDate(0, 1, 0)
	}
}

// NextReset returns the next credit-reset date for a pool, strictly after now.
//
// Monthly resets clamp the configured day to 28 so the date exists in every
// month. Weekly resets on today's weekday land next week, never today.
// Yearly resets whose month/day is today roll to next year. Custom resets are
// anchored to the pool's creation date: the interval grid runs from CreatedAt,
// regardless of when credits were last adjusted.
func NextReset(pool *entity.CreditPool, now time.Time) time.Time {
	switch pool.ResetCycle {
	case entity.ResetCycleMonthly:
		resetDay := pool.ResetDay
		if resetDay > 28 {
			resetDay = 28
		}
		if now.Day() < resetDay {
			return time.Date(now.Year(), now.Month(), resetDay, 0, 0, 0, 0, now.Location())
		}
		return time.Date(now.Year(), now.Month()+1, resetDay, 0, 0, 0, 0, now.Location())

	case entity.ResetCycleWeekly:
		daysUntil := pool.ResetDay - int(now.Weekday())
		if daysUntil <= 0 {
			daysUntil += 7
		}
		return now.AddDate(0, 0, daysUntil)

	case entity.ResetCycleYearly:
		month := time.Month(pool.ResetDay / 100)
		dayOfMonth := pool.ResetDay % 100
		year := now.Year()
		if now.Month() > month || (now.Month() == month && now.Day() >= dayOfMonth) {
			year++
		}
		return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, now.Location())

	case entity.ResetCycleCustom:
		if pool.CustomResetDays > 0 {
			elapsed := int(now.Sub(pool.CreatedAt).Hours() / 24)
			if elapsed < 0 {
				elapsed = 0
			}
			daysUntil := pool.CustomResetDays - (elapsed % pool.CustomResetDays)
			return now.AddDate(0, 0, daysUntil)
		}
	}

	// Unknown cycle, or custom without an interval: next month, same day.
	return time.Date(now.Year(), now.Month()+1, pool.ResetDay, 0, 0, 0, 0, now.Location())
}

// DaysUntil returns the signed whole-day distance from now to target,
// rounding partial days up. Zero means due today, negative means overdue.
func DaysUntil(target, now time.Time) int {
	return int(math.Ceil(target.Sub(now).Hours() / 24))
}

// DaysUntilReset is DaysUntil applied to the pool's next reset date.
func DaysUntilReset(pool *entity.CreditPool, now time.Time) int {
	return DaysUntil(NextReset(pool, now), now)
}

// DueSoon reports whether a day offset falls inside the reminder window.
// Overdue entities are not "soon"; they get their own predicate.
func DueSoon(daysUntil, thresholdDays int) bool {
	return daysUntil >= 0 && daysUntil <= thresholdDays
}

// Overdue reports whether a day offset is in the past.
func Overdue(daysUntil int) bool {
	return daysUntil < 0
}

// nominalCycleDays returns the approximate cycle length used for progress
// display. Monthly is treated as 30 days even though real months vary.
func nominalCycleDays(pool *entity.CreditPool) int {
	switch pool.ResetCycle {
	case entity.ResetCycleWeekly:
		return 7
	case entity.ResetCycleYearly:
		return 365
	case entity.ResetCycleCustom:
		if pool.CustomResetDays > 0 {
			return pool.CustomResetDays
		}
	}
	return 30
}

// ResetProgress returns how far through the current cycle a pool is, 0-100.
func ResetProgress(pool *entity.CreditPool, now time.Time) float64 {
	cycleDays := nominalCycleDays(pool)
	elapsed := cycleDays - DaysUntilReset(pool, now)
	progress := float64(elapsed) / float64(cycleDays) * 100
	return math.Min(100, math.Max(0, progress))
}
