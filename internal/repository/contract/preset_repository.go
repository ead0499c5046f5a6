package contract

import (
	"context"

	"github.com/237films-bot/subtrack/internal/entity"
)

// PresetRepository serves the seeded AI-service catalog. Upsert exists for
// cmd/seed; the API only ever reads.
type PresetRepository interface {
	Upsert(ctx context.Context, preset *entity.ServicePreset) error
	FindAll(ctx context.Context) ([]*entity.ServicePreset, error)
}
