package memory

import (
	"context"
	"sort"

	"github.com/237films-bot/subtrack/internal/entity"
	"github.com/237films-bot/subtrack/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type SubscriptionRepository struct {
	store *Store
}

func NewSubscriptionRepository(store *Store) contract.SubscriptionRepository {
	return &SubscriptionRepository{store: store}
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *entity.Subscription) error {
	copied := *sub
	r.store.subscriptions.Set(sub.Id.String(), &copied, cache.NoExpiration)
	return nil
}

func (r *SubscriptionRepository) Update(ctx context.Context, sub *entity.Subscription) error {
	copied := *sub
	r.store.subscriptions.Set(sub.Id.String(), &copied, cache.NoExpiration)
	return nil
}

func (r *SubscriptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.subscriptions.Delete(id.String())
	return nil
}

func (r *SubscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	if x, found := r.store.subscriptions.Get(id.String()); found {
		copied := *x.(*entity.Subscription)
		return &copied, nil
	}
	return nil, nil
}

func (r *SubscriptionRepository) FindAll(ctx context.Context) ([]*entity.Subscription, error) {
	items := r.store.subscriptions.Items()
	subs := make([]*entity.Subscription, 0, len(items))
	for _, item := range items {
		copied := *item.Object.(*entity.Subscription)
		subs = append(subs, &copied)
	}
	sort.Slice(subs, func(i, j int) bool { return subs[i].Name < subs[j].Name })
	return subs, nil
}
