package implementation

import (
	"context"

	"github.com/237films-bot/subtrack/internal/entity"
	"github.com/237films-bot/subtrack/internal/mapper"
	"github.com/237films-bot/subtrack/internal/model"
	"github.com/237films-bot/subtrack/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HistoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.HistoryMapper
}

func NewHistoryRepository(db *gorm.DB) contract.HistoryRepository {
	return &HistoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewHistoryMapper(),
	}
}

func (r *HistoryRepositoryImpl) CreateRenewal(ctx context.Context, event *entity.RenewalEvent) error {
	m := r.mapper.RenewalToModel(event)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*event = *r.mapper.RenewalToEntity(m)
	return nil
}

func (r *HistoryRepositoryImpl) FindRenewals(ctx context.Context, subscriptionId uuid.UUID) ([]*entity.RenewalEvent, error) {
	var models []*model.RenewalEvent
	err := r.db.WithContext(ctx).
		Where("subscription_id = ?", subscriptionId).
		Order("date DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	events := make([]*entity.RenewalEvent, len(models))
	for i, m := range models {
		events[i] = r.mapper.RenewalToEntity(m)
	}
	return events, nil
}

func (r *HistoryRepositoryImpl) PurgeRenewals(ctx context.Context, subscriptionId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("subscription_id = ?", subscriptionId).
		Delete(&model.RenewalEvent{}).Error
}

func (r *HistoryRepositoryImpl) CreateCreditChange(ctx context.Context, change *entity.CreditChange) error {
	m := r.mapper.CreditChangeToModel(change)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*change = *r.mapper.CreditChangeToEntity(m)
	return nil
}

func (r *HistoryRepositoryImpl) FindCreditChanges(ctx context.Context, poolId uuid.UUID) ([]*entity.CreditChange, error) {
	var models []*model.CreditChange
	err := r.db.WithContext(ctx).
		Where("pool_id = ?", poolId).
		Order("date DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	changes := make([]*entity.CreditChange, len(models))
	for i, m := range models {
		changes[i] = r.mapper.CreditChangeToEntity(m)
	}
	return changes, nil
}

func (r *HistoryRepositoryImpl) PurgeCreditChanges(ctx context.Context, poolId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("pool_id = ?", poolId).
		Delete(&model.CreditChange{}).Error
}
