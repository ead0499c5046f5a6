package implementation

import (
	"context"
	"errors"

	"github.com/237films-bot/subtrack/internal/entity"
	"github.com/237films-bot/subtrack/internal/mapper"
	"github.com/237films-bot/subtrack/internal/model"
	"github.com/237films-bot/subtrack/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreditRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CreditMapper
}

func NewCreditRepository(db *gorm.DB) contract.CreditRepository {
	return &CreditRepositoryImpl{
		db:     db,
		mapper: mapper.NewCreditMapper(),
	}
}

func (r *CreditRepositoryImpl) Create(ctx context.Context, pool *entity.CreditPool) error {
	m := r.mapper.ToModel(pool)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*pool = *r.mapper.ToEntity(m)
	return nil
}

func (r *CreditRepositoryImpl) Update(ctx context.Context, pool *entity.CreditPool) error {
	m := r.mapper.ToModel(pool)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*pool = *r.mapper.ToEntity(m)
	return nil
}

func (r *CreditRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CreditPool{}, id).Error
}

func (r *CreditRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*entity.CreditPool, error) {
	var m model.CreditPool
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CreditRepositoryImpl) FindAll(ctx context.Context) ([]*entity.CreditPool, error) {
	var models []*model.CreditPool
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.CreditPool, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
