package memory

import (
	"context"
	"sort"

	"github.com/237films-bot/subtrack/internal/entity"
	"github.com/237films-bot/subtrack/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

type PresetRepository struct {
	store *Store
}

func NewPresetRepository(store *Store) contract.PresetRepository {
	return &PresetRepository{store: store}
}

func (r *PresetRepository) Upsert(ctx context.Context, preset *entity.ServicePreset) error {
	copied := *preset
	r.store.presets.Set(preset.Name, &copied, cache.NoExpiration)
	return nil
}

func (r *PresetRepository) FindAll(ctx context.Context) ([]*entity.ServicePreset, error) {
	items := r.store.presets.Items()
	presets := make([]*entity.ServicePreset, 0, len(items))
	for _, item := range items {
		copied := *item.Object.(*entity.ServicePreset)
		presets = append(presets, &copied)
	}
	sort.Slice(presets, func(i, j int) bool { return presets[i].Name < presets[j].Name })
	return presets, nil
}
