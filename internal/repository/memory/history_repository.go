package memory

import (
	"context"
	"sort"

	"github.com/237films-bot/subtrack/internal/entity"
	"github.com/237films-bot/subtrack/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type HistoryRepository struct {
	store *Store
}

func NewHistoryRepository(store *Store) contract.HistoryRepository {
	return &HistoryRepository{store: store}
}

func (r *HistoryRepository) CreateRenewal(ctx context.Context, event *entity.RenewalEvent) error {
	copied := *event
	r.store.renewals.Set(event.Id.String(), &copied, cache.NoExpiration)
	return nil
}

func (r *HistoryRepository) FindRenewals(ctx context.Context, subscriptionId uuid.UUID) ([]*entity.RenewalEvent, error) {
	events := make([]*entity.RenewalEvent, 0)
	for _, item := range r.store.renewals.Items() {
		event := item.Object.(*entity.RenewalEvent)
		if event.SubscriptionId == subscriptionId {
			copied := *event
			events = append(events, &copied)
		}
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Date.After(events[j].Date) })
	return events, nil
}

func (r *HistoryRepository) PurgeRenewals(ctx context.Context, subscriptionId uuid.UUID) error {
	for key, item := range r.store.renewals.Items() {
		if item.Object.(*entity.RenewalEvent).SubscriptionId == subscriptionId {
			r.store.renewals.Delete(key)
		}
	}
	return nil
}

func (r *HistoryRepository) CreateCreditChange(ctx context.Context, change *entity.CreditChange) error {
	copied := *change
	r.store.creditChanges.Set(change.Id.String(), &copied, cache.NoExpiration)
	return nil
}

func (r *HistoryRepository) FindCreditChanges(ctx context.Context, poolId uuid.UUID) ([]*entity.CreditChange, error) {
	changes := make([]*entity.CreditChange, 0)
	for _, item := range r.store.creditChanges.Items() {
		change := item.Object.(*entity.CreditChange)
		if change.PoolId == poolId {
			copied := *change
			changes = append(changes, &copied)
		}
	}
	sort.Slice(changes, func(i, j int) bool { return changes[i].Date.After(changes[j].Date) })
	return changes, nil
}

func (r *HistoryRepository) PurgeCreditChanges(ctx context.Context, poolId uuid.UUID) error {
	for key, item := range r.store.creditChanges.Items() {
		if item.Object.(*entity.CreditChange).PoolId == poolId {
			r.store.creditChanges.Delete(key)
		}
	}
	return nil
}
