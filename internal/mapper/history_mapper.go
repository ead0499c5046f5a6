package mapper

import (
	"github.com/237films-bot/subtrack/internal/entity"
	"github.com/237films-bot/subtrack/internal/model"
)

type HistoryMapper struct{}

func NewHistoryMapper() *HistoryMapper {
	return &HistoryMapper{}
}

func (m *HistoryMapper) RenewalToEntity(e *model.RenewalEvent) *entity.RenewalEvent {
	if e == nil {
		return nil
	}
	return &entity.RenewalEvent{
		Id:             e.Id,
		SubscriptionId: e.SubscriptionId,
		Date:           e.Date,
		Cost:           e.Cost,
		Currency:       e.Currency,
		Note:           e.Note,
		AutoRenewed:    e.AutoRenewed,
	}
}

func (m *HistoryMapper) RenewalToModel(e *entity.RenewalEvent) *model.RenewalEvent {
	if e == nil {
		return nil
	}
	return &model.RenewalEvent{
		Id:             e.Id,
		SubscriptionId: e.SubscriptionId,
		Date:           e.Date,
		Cost:           e.Cost,
		Currency:       e.Currency,
		Note:           e.Note,
		AutoRenewed:    e.AutoRenewed,
	}
}

func (m *HistoryMapper) CreditChangeToEntity(c *model.CreditChange) *entity.CreditChange {
	if c == nil {
		return nil
	}
	return &entity.CreditChange{
		Id:           c.Id,
		PoolId:       c.PoolId,
		PreviousUsed: c.PreviousUsed,
		NewUsed:      c.NewUsed,
		Change:       c.Change,
		Date:         c.Date,
		Note:         c.Note,
	}
}

func (m *HistoryMapper) CreditChangeToModel(c *entity.CreditChange) *model.CreditChange {
	if c == nil {
		return nil
	}
	return &model.CreditChange{
		Id:           c.Id,
		PoolId:       c.PoolId,
		PreviousUsed: c.PreviousUsed,
		NewUsed:      c.NewUsed,
		Change:       c.Change,
		Date:         c.Date,
		Note:         c.Note,
	}
}
