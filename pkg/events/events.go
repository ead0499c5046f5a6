// Package events defines the payloads carried on the in-process event bus.
// Mutating domain operations publish here; the notifier consumes and fans
// out to email and the websocket hub.
package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	TopicRenewalRecorded = "renewal.recorded"
	TopicCreditsUpdated  = "credits.updated"
	TopicReminderDue     = "reminder.due"
)

// RenewalRecorded is published after a subscription renewal is applied.
type RenewalRecorded struct {
	SubscriptionId uuid.UUID `json:"subscription_id"`
	Name           string    `json:"name"`
	Cost           float64   `json:"cost"`
	Currency       string    `json:"currency"`
	NextRenewal    time.Time `json:"next_renewal"`
	AutoRenewed    bool      `json:"auto_renewed"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// CreditsUpdated is published after a used-credits adjustment.
type CreditsUpdated struct {
	PoolId       uuid.UUID `json:"pool_id"`
	Name         string    `json:"name"`
	PreviousUsed int       `json:"previous_used"`
	NewUsed      int       `json:"new_used"`
	Change       int       `json:"change"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// ReminderDue is published by the reminder scan for every enabled entity
// whose renewal or reset falls inside the threshold window.
type ReminderDue struct {
	Kind      string    `json:"kind"` // "subscription" or "credit_pool"
	EntityId  uuid.UUID `json:"entity_id"`
	Name      string    `json:"name"`
	DueDate   time.Time `json:"due_date"`
	DaysUntil int       `json:"days_until"`
	Cost      float64   `json:"cost,omitempty"`
	Currency  string    `json:"currency,omitempty"`
}
