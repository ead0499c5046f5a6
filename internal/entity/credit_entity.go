package entity

import (
	"time"

	"github.com/google/uuid"
)

type ResetCycle string

const (
	ResetCycleMonthly ResetCycle = "monthly"
	ResetCycleWeekly  ResetCycle = "weekly"
	ResetCycleYearly  ResetCycle = "yearly"
	ResetCycleCustom  ResetCycle = "custom"
)

// CreditPool tracks a metered credit allotment for an AI service.
//
// ResetDay is encoded per cycle:
//   - monthly: day of month, 1-31
//   - weekly:  day of week, 0 (Sunday) to 6 (Saturday)
//   - yearly:  packed month and day as MMDD (e.g. 315 = March 15)
//   - custom:  ignored; CustomResetDays carries the interval, anchored to CreatedAt
type CreditPool struct {
	Id              uuid.UUID
	Name            string
	Color           string
	Icon            string
	URL             string
	Notes           string
	TotalCredits    int
	UsedCredits     int
	ResetCycle      ResetCycle
	ResetDay        int
	CustomResetDays int
	Enabled         bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
