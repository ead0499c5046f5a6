package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCreditPoolRequest struct {
	Name            string `json:"name" validate:"required,max=255"`
	Color           string `json:"color" validate:"omitempty,hexcolor"`
	Icon            string `json:"icon" validate:"max=100"`
	URL             string `json:"url"`
	Notes           string `json:"notes"`
	TotalCredits    int    `json:"total_credits" validate:"gt=0"`
	UsedCredits     int    `json:"used_credits" validate:"gte=0"`
	ResetCycle      string `json:"reset_cycle" validate:"required,oneof=monthly weekly yearly custom"`
	ResetDay        int    `json:"reset_day" validate:"gte=0"`
	CustomResetDays int    `json:"custom_reset_days" validate:"gte=0"`
	Enabled         *bool  `json:"enabled"`
}

type UpdateCreditPoolRequest struct {
	Name            *string `json:"name,omitempty" validate:"omitempty,max=255"`
	Color           *string `json:"color,omitempty" validate:"omitempty,hexcolor"`
	Icon            *string `json:"icon,omitempty" validate:"omitempty,max=100"`
	URL             *string `json:"url,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	TotalCredits    *int    `json:"total_credits,omitempty" validate:"omitempty,gt=0"`
	UsedCredits     *int    `json:"used_credits,omitempty" validate:"omitempty,gte=0"`
	ResetCycle      *string `json:"reset_cycle,omitempty" validate:"omitempty,oneof=monthly weekly yearly custom"`
	ResetDay        *int    `json:"reset_day,omitempty" validate:"omitempty,gte=0"`
	CustomResetDays *int    `json:"custom_reset_days,omitempty" validate:"omitempty,gte=0"`
	Enabled         *bool   `json:"enabled,omitempty"`
}

// UpdateUsageRequest carries the new absolute used-credits value. The UI is
// responsible for clamping into [0, total]; the engine records whatever it
// is given; out-of-range values are recorded as-is, never rejected.
type UpdateUsageRequest struct {
	UsedCredits int    `json:"used_credits" validate:"gte=0"`
	Note        string `json:"note"`
}

type CreditPoolResponse struct {
	Id              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Color           string    `json:"color"`
	Icon            string    `json:"icon"`
	URL             string    `json:"url"`
	Notes           string    `json:"notes"`
	TotalCredits    int       `json:"total_credits"`
	UsedCredits     int       `json:"used_credits"`
	Remaining       int       `json:"remaining"`
	ResetCycle      string    `json:"reset_cycle"`
	ResetDay        int       `json:"reset_day"`
	CustomResetDays int       `json:"custom_reset_days,omitempty"`
	Enabled         bool      `json:"enabled"`
	NextReset       string    `json:"next_reset"`
	DaysUntilReset  int       `json:"days_until_reset"`
	ProgressPercent float64   `json:"progress_percent"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CreditChangeResponse struct {
	Id           uuid.UUID `json:"id"`
	PreviousUsed int       `json:"previous_used"`
	NewUsed      int       `json:"new_used"`
	Change       int       `json:"change"`
	Date         time.Time `json:"date"`
	Note         string    `json:"note,omitempty"`
}
