package contract

import (
	"context"

	"github.com/237films-bot/subtrack/internal/entity"

	"github.com/google/uuid"
)

// HistoryRepository is the append-only ledger. Entries are never updated;
// the only delete path is the cascading purge run inside an entity deletion.
// Find methods return entries newest-first.
type HistoryRepository interface {
	CreateRenewal(ctx context.Context, event *entity.RenewalEvent) error
	FindRenewals(ctx context.Context, subscriptionId uuid.UUID) ([]*entity.RenewalEvent, error)
	PurgeRenewals(ctx context.Context, subscriptionId uuid.UUID) error

	CreateCreditChange(ctx context.Context, change *entity.CreditChange) error
	FindCreditChanges(ctx context.Context, poolId uuid.UUID) ([]*entity.CreditChange, error)
	PurgeCreditChanges(ctx context.Context, poolId uuid.UUID) error
}
