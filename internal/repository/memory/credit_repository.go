package memory

import (
	"context"
	"sort"

	"github.com/237films-bot/subtrack/internal/entity"
	"github.com/237films-bot/subtrack/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type CreditRepository struct {
	store *Store
}

func NewCreditRepository(store *Store) contract.CreditRepository {
	return &CreditRepository{store: store}
}

func (r *CreditRepository) Create(ctx context.Context, pool *entity.CreditPool) error {
	copied := *pool
	r.store.pools.Set(pool.Id.String(), &copied, cache.NoExpiration)
	return nil
}

func (r *CreditRepository) Update(ctx context.Context, pool *entity.CreditPool) error {
	copied := *pool
	r.store.pools.Set(pool.Id.String(), &copied, cache.NoExpiration)
	return nil
}

func (r *CreditRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.pools.Delete(id.String())
	return nil
}

func (r *CreditRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CreditPool, error) {
	if x, found := r.store.pools.Get(id.String()); found {
		copied := *x.(*entity.CreditPool)
		return &copied, nil
	}
	return nil, nil
}

func (r *CreditRepository) FindAll(ctx context.Context) ([]*entity.CreditPool, error) {
	items := r.store.pools.Items()
	pools := make([]*entity.CreditPool, 0, len(items))
	for _, item := range items {
		copied := *item.Object.(*entity.CreditPool)
		pools = append(pools, &copied)
	}
	sort.Slice(pools, func(i, j int) bool { return pools[i].Name < pools[j].Name })
	return pools, nil
}
