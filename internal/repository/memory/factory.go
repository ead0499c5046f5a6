package memory

import (
	"context"

	"github.com/237films-bot/subtrack/internal/repository/contract"
	"github.com/237films-bot/subtrack/internal/repository/unitofwork"
)

// Factory satisfies unitofwork.RepositoryFactory over a shared Store.
type Factory struct {
	store *Store
}

func NewRepositoryFactory(store *Store) unitofwork.RepositoryFactory {
	return &Factory{store: store}
}

func (f *Factory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &memoryUnitOfWork{store: f.store}
}

// memoryUnitOfWork has no real transactions: the driver is single-process
// and operations apply immediately. Begin/Commit/Rollback are accepted so
// services can run the same code path against either driver.
type memoryUnitOfWork struct {
	store *Store
}

func (u *memoryUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *memoryUnitOfWork) Commit() error                   { return nil }
func (u *memoryUnitOfWork) Rollback() error                 { return nil }

func (u *memoryUnitOfWork) Subscriptions() contract.SubscriptionRepository {
	return NewSubscriptionRepository(u.store)
}

func (u *memoryUnitOfWork) Credits() contract.CreditRepository {
	return NewCreditRepository(u.store)
}

func (u *memoryUnitOfWork) History() contract.HistoryRepository {
	return NewHistoryRepository(u.store)
}

func (u *memoryUnitOfWork) Presets() contract.PresetRepository {
	return NewPresetRepository(u.store)
}
