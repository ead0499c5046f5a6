package contract

import (
	"context"

	"github.com/237films-bot/subtrack/internal/entity"

	"github.com/google/uuid"
)

// CreditRepository is the storage contract for credit-variant entities.
// Same conventions as SubscriptionRepository: (nil, nil) for a missing id.
type CreditRepository interface {
	Create(ctx context.Context, pool *entity.CreditPool) error
	Update(ctx context.Context, pool *entity.CreditPool) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CreditPool, error)
	FindAll(ctx context.Context) ([]*entity.CreditPool, error)
}
