package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSubscriptionRequest struct {
	Name            string  `json:"name" validate:"required,max=255"`
	Category        string  `json:"category" validate:"max=100"`
	Color           string  `json:"color" validate:"omitempty,hexcolor"`
	Icon            string  `json:"icon" validate:"max=100"`
	URL             string  `json:"url"`
	Notes           string  `json:"notes"`
	Cost            float64 `json:"cost" validate:"gte=0"`
	Currency        string  `json:"currency" validate:"required,len=3"`
	BillingCycle    string  `json:"billing_cycle" validate:"required,oneof=monthly quarterly yearly custom"`
	CustomCycleDays int     `json:"custom_cycle_days" validate:"gte=0"`
	RenewalDate     string  `json:"renewal_date" validate:"required,datetime=2006-01-02"`
	AutoRenew       bool    `json:"auto_renew"`
	Enabled         *bool   `json:"enabled"` // defaults to true when omitted
}

// UpdateSubscriptionRequest is a partial update: nil fields are untouched.
type UpdateSubscriptionRequest struct {
	Name            *string  `json:"name,omitempty" validate:"omitempty,max=255"`
	Category        *string  `json:"category,omitempty" validate:"omitempty,max=100"`
	Color           *string  `json:"color,omitempty" validate:"omitempty,hexcolor"`
	Icon            *string  `json:"icon,omitempty" validate:"omitempty,max=100"`
	URL             *string  `json:"url,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
	Cost            *float64 `json:"cost,omitempty" validate:"omitempty,gte=0"`
	Currency        *string  `json:"currency,omitempty" validate:"omitempty,len=3"`
	BillingCycle    *string  `json:"billing_cycle,omitempty" validate:"omitempty,oneof=monthly quarterly yearly custom"`
	CustomCycleDays *int     `json:"custom_cycle_days,omitempty" validate:"omitempty,gte=0"`
	RenewalDate     *string  `json:"renewal_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	AutoRenew       *bool    `json:"auto_renew,omitempty"`
	Enabled         *bool    `json:"enabled,omitempty"`
}

type RenewRequest struct {
	Note string `json:"note"`
}

type SubscriptionResponse struct {
	Id              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Color           string    `json:"color"`
	Icon            string    `json:"icon"`
	URL             string    `json:"url"`
	Notes           string    `json:"notes"`
	Cost            float64   `json:"cost"`
	Currency        string    `json:"currency"`
	BillingCycle    string    `json:"billing_cycle"`
	CustomCycleDays int       `json:"custom_cycle_days,omitempty"`
	RenewalDate     string    `json:"renewal_date"`
	AutoRenew       bool      `json:"auto_renew"`
	Enabled         bool      `json:"enabled"`
	DaysUntil       int       `json:"days_until"`
	MonthlyCost     float64   `json:"monthly_cost"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type RenewalEventResponse struct {
	Id          uuid.UUID `json:"id"`
	Date        time.Time `json:"date"`
	Cost        float64   `json:"cost"`
	Currency    string    `json:"currency"`
	Note        string    `json:"note,omitempty"`
	AutoRenewed bool      `json:"auto_renewed"`
}
