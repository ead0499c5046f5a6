package mapper

import (
	"github.com/237films-bot/subtrack/internal/entity"
	"github.com/237films-bot/subtrack/internal/model"
)

type CreditMapper struct{}

func NewCreditMapper() *CreditMapper {
	return &CreditMapper{}
}

func (m *CreditMapper) ToEntity(p *model.CreditPool) *entity.CreditPool {
	if p == nil {
		return nil
	}
	return &entity.CreditPool{
		Id:              p.Id,
		Name:            p.Name,
		Color:           p.Color,
		Icon:            p.Icon,
		URL:             p.URL,
		Notes:           p.Notes,
		TotalCredits:    p.TotalCredits,
		UsedCredits:     p.UsedCredits,
		ResetCycle:      entity.ResetCycle(p.ResetCycle),
		ResetDay:        p.ResetDay,
		CustomResetDays: p.CustomResetDays,
		Enabled:         p.Enabled,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func (m *CreditMapper) ToModel(p *entity.CreditPool) *model.CreditPool {
	if p == nil {
		return nil
	}
	return &model.CreditPool{
		Id:              p.Id,
		Name:            p.Name,
		Color:           p.Color,
		Icon:            p.Icon,
		URL:             p.URL,
		Notes:           p.Notes,
		TotalCredits:    p.TotalCredits,
		UsedCredits:     p.UsedCredits,
		ResetCycle:      string(p.ResetCycle),
		ResetDay:        p.ResetDay,
		CustomResetDays: p.CustomResetDays,
		Enabled:         p.Enabled,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
