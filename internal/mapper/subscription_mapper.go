package mapper

import (
	"time"

	"github.com/237films-bot/subtrack/internal/entity"
	"github.com/237films-bot/subtrack/internal/model"

	"gorm.io/datatypes"
)

type SubscriptionMapper struct{}

func NewSubscriptionMapper() *SubscriptionMapper {
	return &SubscriptionMapper{}
}

func (m *SubscriptionMapper) ToEntity(s *model.Subscription) *entity.Subscription {
	if s == nil {
		return nil
	}
	return &entity.Subscription{
		Id:              s.Id,
		Name:            s.Name,
		Category:        s.Category,
		Color:           s.Color,
		Icon:            s.Icon,
		URL:             s.URL,
		Notes:           s.Notes,
		Cost:            s.Cost,
		Currency:        s.Currency,
		BillingCycle:    entity.BillingCycle(s.BillingCycle),
		CustomCycleDays: s.CustomCycleDays,
		RenewalDate:     time.Time(s.RenewalDate),
		AutoRenew:       s.AutoRenew,
		Enabled:         s.Enabled,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func (m *SubscriptionMapper) ToModel(s *entity.Subscription) *model.Subscription {
	if s == nil {
		return nil
	}
	return &model.Subscription{
		Id:              s.Id,
		Name:            s.Name,
		Category:        s.Category,
		Color:           s.Color,
		Icon:            s.Icon,
		URL:             s.URL,
		Notes:           s.Notes,
		Cost:            s.Cost,
		Currency:        s.Currency,
		BillingCycle:    string(s.BillingCycle),
		CustomCycleDays: s.CustomCycleDays,
		RenewalDate:     datatypes.Date(s.RenewalDate),
		AutoRenew:       s.AutoRenew,
		Enabled:         s.Enabled,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
