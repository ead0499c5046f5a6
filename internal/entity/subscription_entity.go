package entity

import (
	"time"

	"github.com/google/uuid"
)

type BillingCycle string

const (
	BillingCycleMonthly   BillingCycle = "monthly"
	BillingCycleQuarterly BillingCycle = "quarterly"
	BillingCycleYearly    BillingCycle = "yearly"
	BillingCycleCustom    BillingCycle = "custom"
)

// Subscription is a recurring paid service. RenewalDate always holds the next
// date the subscription bills; applying a renewal advances it by one cycle.
type Subscription struct {
	Id              uuid.UUID
	Name            string
	Category        string
	Color           string // hex, e.g. "#6366f1"
	Icon            string
	URL             string
	Notes           string
	Cost            float64
	Currency        string
	BillingCycle    BillingCycle
	CustomCycleDays int // only meaningful when BillingCycle == custom
	RenewalDate     time.Time
	AutoRenew       bool
	Enabled         bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
