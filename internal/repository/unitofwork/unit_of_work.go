package unitofwork

import (
	"context"

	"github.com/237films-bot/subtrack/internal/repository/contract"
)

// UnitOfWork scopes a set of repository operations. Begin/Commit/Rollback
// bracket the multi-table mutations (entity delete + history purge, renewal
// append + date advance) so no partial state is visible to later reads.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	Subscriptions() contract.SubscriptionRepository
	Credits() contract.CreditRepository
	History() contract.HistoryRepository
	Presets() contract.PresetRepository
}
