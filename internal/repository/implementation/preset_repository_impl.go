package implementation

import (
	"context"

	"github.com/237films-bot/subtrack/internal/entity"
	"github.com/237films-bot/subtrack/internal/model"
	"github.com/237films-bot/subtrack/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PresetRepositoryImpl struct {
	db *gorm.DB
}

func NewPresetRepository(db *gorm.DB) contract.PresetRepository {
	return &PresetRepositoryImpl{db: db}
}

func (r *PresetRepositoryImpl) Upsert(ctx context.Context, preset *entity.ServicePreset) error {
	m := &model.ServicePreset{
		Name:  preset.Name,
		Color: preset.Color,
		Icon:  preset.Icon,
		URL:   preset.URL,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			UpdateAll: true,
		}).
		Create(m).Error
}

func (r *PresetRepositoryImpl) FindAll(ctx context.Context) ([]*entity.ServicePreset, error) {
	var models []*model.ServicePreset
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	presets := make([]*entity.ServicePreset, len(models))
	for i, m := range models {
		presets[i] = &entity.ServicePreset{Name: m.Name, Color: m.Color, Icon: m.Icon, URL: m.URL}
	}
	return presets, nil
}
