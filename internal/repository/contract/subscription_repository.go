package contract

import (
	"context"

	"github.com/237films-bot/subtrack/internal/entity"

	"github.com/google/uuid"
)

// SubscriptionRepository is the storage contract for billing-variant
// entities. FindByID returns (nil, nil) when the id is absent; absence is a
// domain condition, not a storage failure. Both the gorm and the in-memory
// driver satisfy this interface, which is why the methods are concrete
// finders rather than query builders.
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *entity.Subscription) error
	Update(ctx context.Context, sub *entity.Subscription) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error)
	FindAll(ctx context.Context) ([]*entity.Subscription, error)
}
