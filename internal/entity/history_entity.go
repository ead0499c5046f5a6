package entity

import (
	"time"

	"github.com/google/uuid"
)

// RenewalEvent is an append-only ledger record written every time a
// subscription renews. Cost and currency are snapshots taken at event time,
// so later price edits do not rewrite history.
type RenewalEvent struct {
	Id             uuid.UUID
	SubscriptionId uuid.UUID
	Date           time.Time
	Cost           float64
	Currency       string
	Note           string
	AutoRenewed    bool
}

// CreditChange is an append-only ledger record for a used-credits adjustment.
// Change is always NewUsed - PreviousUsed; negative means credits were freed.
type CreditChange struct {
	Id           uuid.UUID
	PoolId       uuid.UUID
	PreviousUsed int
	NewUsed      int
	Change       int
	Date         time.Time
	Note         string
}
