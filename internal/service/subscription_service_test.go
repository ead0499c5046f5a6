package service

import (
	"context"
	"testing"
	"time"

	"github.com/237films-bot/subtrack/internal/dto"
	"github.com/237films-bot/subtrack/internal/pkg/apperror"
	"github.com/237films-bot/subtrack/internal/repository/memory"
	"github.com/237films-bot/subtrack/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

func newTestFactory() unitofwork.RepositoryFactory {
	return memory.NewRepositoryFactory(memory.NewStore())
}

func newTestSubscriptionService() ISubscriptionService {
	return NewSubscriptionService(newTestFactory(), nil, noopLogger{})
}

func createTestSubscription(t *testing.T, svc ISubscriptionService, req dto.CreateSubscriptionRequest) dto.SubscriptionResponse {
	t.Helper()
	collection, err := svc.Create(context.Background(), &req)
	require.NoError(t, err)
	for _, sub := range collection {
		if sub.Name == req.Name {
			return sub
		}
	}
	t.Fatalf("created subscription %q not in returned collection", req.Name)
	return dto.SubscriptionResponse{}
}

func TestSubscriptionCreate(t *testing.T) {
	svc := newTestSubscriptionService()
	ctx := context.Background()

	created := createTestSubscription(t, svc, dto.CreateSubscriptionRequest{
		Name:         "Claude Pro",
		Category:     "AI Assistant",
		Cost:         20,
		Currency:     "USD",
		BillingCycle: "monthly",
		RenewalDate:  "2030-03-15",
	})

	assert.NotEqual(t, uuid.Nil, created.Id)
	assert.Equal(t, "2030-03-15", created.RenewalDate)
	assert.True(t, created.Enabled, "enabled should default to true")
	assert.Equal(t, 20.0, created.MonthlyCost)
	assert.False(t, created.CreatedAt.IsZero())

	collection, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, collection, 1)
}

func TestSubscriptionCreateValidation(t *testing.T) {
	svc := newTestSubscriptionService()
	ctx := context.Background()

	t.Run("custom cycle requires days", func(t *testing.T) {
		_, err := svc.Create(ctx, &dto.CreateSubscriptionRequest{
			Name:         "Higgsfield",
			Cost:         9,
			Currency:     "USD",
			BillingCycle: "custom",
			RenewalDate:  "2030-01-01",
		})
		assert.ErrorIs(t, err, apperror.ErrValidation)
	})

	t.Run("bad renewal date", func(t *testing.T) {
		_, err := svc.Create(ctx, &dto.CreateSubscriptionRequest{
			Name:         "Genspark",
			Cost:         25,
			Currency:     "USD",
			BillingCycle: "monthly",
			RenewalDate:  "15-03-2030",
		})
		assert.ErrorIs(t, err, apperror.ErrValidation)
	})

	t.Run("name stripped to empty", func(t *testing.T) {
		_, err := svc.Create(ctx, &dto.CreateSubscriptionRequest{
			Name:         "<script></script>",
			Cost:         5,
			Currency:     "USD",
			BillingCycle: "monthly",
			RenewalDate:  "2030-01-01",
		})
		assert.ErrorIs(t, err, apperror.ErrValidation)
	})
}

func TestSubscriptionUpdate(t *testing.T) {
	svc := newTestSubscriptionService()
	ctx := context.Background()

	created := createTestSubscription(t, svc, dto.CreateSubscriptionRequest{
		Name:         "Midjourney",
		Cost:         10,
		Currency:     "USD",
		BillingCycle: "monthly",
		RenewalDate:  "2030-06-01",
	})

	newCost := 30.0
	collection, err := svc.Update(ctx, created.Id, &dto.UpdateSubscriptionRequest{Cost: &newCost})
	require.NoError(t, err)

	require.Len(t, collection, 1)
	updated := collection[0]
	assert.Equal(t, 30.0, updated.Cost)
	assert.Equal(t, "Midjourney", updated.Name, "untouched fields survive a partial update")
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt), "UpdatedAt must move forward")

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Update(ctx, uuid.New(), &dto.UpdateSubscriptionRequest{Cost: &newCost})
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})
}

func TestSubscriptionRenew(t *testing.T) {
	svc := newTestSubscriptionService()
	ctx := context.Background()

	created := createTestSubscription(t, svc, dto.CreateSubscriptionRequest{
		Name:         "ChatGPT Plus",
		Cost:         20,
		Currency:     "USD",
		BillingCycle: "monthly",
		RenewalDate:  "2024-01-15",
	})

	collection, err := svc.Renew(ctx, created.Id, "manual renewal", false)
	require.NoError(t, err)
	require.Len(t, collection, 1)
	assert.Equal(t, "2024-02-15", collection[0].RenewalDate, "renewal advances exactly one cycle")

	history, err := svc.History(ctx, created.Id)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 20.0, history[0].Cost, "ledger snapshots the cost at renewal time")
	assert.Equal(t, "USD", history[0].Currency)
	assert.Equal(t, "manual renewal", history[0].Note)
	assert.False(t, history[0].AutoRenewed)
	assert.WithinDuration(t, time.Now(), history[0].Date, 5*time.Second, "ledger entry is dated now, not at the renewal date")

	t.Run("snapshot survives price change", func(t *testing.T) {
		newCost := 99.0
		_, err := svc.Update(ctx, created.Id, &dto.UpdateSubscriptionRequest{Cost: &newCost})
		require.NoError(t, err)

		history, err := svc.History(ctx, created.Id)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, 20.0, history[0].Cost)
	})

	t.Run("history newest first", func(t *testing.T) {
		_, err := svc.Renew(ctx, created.Id, "", false)
		require.NoError(t, err)

		history, err := svc.History(ctx, created.Id)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, 99.0, history[0].Cost, "latest renewal snapshots the new price")
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Renew(ctx, uuid.New(), "", false)
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})
}

func TestSubscriptionRenewQuarterlyAndCustom(t *testing.T) {
	svc := newTestSubscriptionService()
	ctx := context.Background()

	quarterly := createTestSubscription(t, svc, dto.CreateSubscriptionRequest{
		Name:         "Runway",
		Cost:         35,
		Currency:     "USD",
		BillingCycle: "quarterly",
		RenewalDate:  "2024-01-15",
	})
	custom := createTestSubscription(t, svc, dto.CreateSubscriptionRequest{
		Name:            "ElevenLabs",
		Cost:            11,
		Currency:        "USD",
		BillingCycle:    "custom",
		CustomCycleDays: 90,
		RenewalDate:     "2024-01-15",
	})

	collection, err := svc.Renew(ctx, quarterly.Id, "", false)
	require.NoError(t, err)
	assert.Equal(t, "2024-04-15", findSub(t, collection, quarterly.Id).RenewalDate)

	collection, err = svc.Renew(ctx, custom.Id, "", false)
	require.NoError(t, err)
	assert.Equal(t, "2024-04-14", findSub(t, collection, custom.Id).RenewalDate, "90 days from Jan 15 in a leap year")
}

func findSub(t *testing.T, collection []dto.SubscriptionResponse, id uuid.UUID) dto.SubscriptionResponse {
	t.Helper()
	for _, sub := range collection {
		if sub.Id == id {
			return sub
		}
	}
	t.Fatalf("subscription %s not in collection", id)
	return dto.SubscriptionResponse{}
}

func TestSubscriptionDeleteCascadesHistory(t *testing.T) {
	factory := newTestFactory()
	svc := NewSubscriptionService(factory, nil, noopLogger{})
	ctx := context.Background()

	created := createTestSubscription(t, svc, dto.CreateSubscriptionRequest{
		Name:         "Suno",
		Cost:         8,
		Currency:     "USD",
		BillingCycle: "monthly",
		RenewalDate:  "2024-05-01",
	})

	_, err := svc.Renew(ctx, created.Id, "", false)
	require.NoError(t, err)

	collection, err := svc.Delete(ctx, created.Id)
	require.NoError(t, err)
	assert.Empty(t, collection)

	// Ledger entries must vanish with the entity.
	orphans, err := factory.NewUnitOfWork(ctx).History().FindRenewals(ctx, created.Id)
	require.NoError(t, err)
	assert.Empty(t, orphans)

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Delete(ctx, uuid.New())
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})
}

func TestSubscriptionMutationsReturnFullCollection(t *testing.T) {
	svc := newTestSubscriptionService()
	ctx := context.Background()

	first := createTestSubscription(t, svc, dto.CreateSubscriptionRequest{
		Name:         "Perplexity Pro",
		Cost:         20,
		Currency:     "USD",
		BillingCycle: "monthly",
		RenewalDate:  "2030-02-01",
	})

	collection, err := svc.Create(ctx, &dto.CreateSubscriptionRequest{
		Name:         "Udio",
		Cost:         10,
		Currency:     "USD",
		BillingCycle: "monthly",
		RenewalDate:  "2030-02-10",
	})
	require.NoError(t, err)
	assert.Len(t, collection, 2, "every mutation returns the refreshed full collection")

	collection, err = svc.Renew(ctx, first.Id, "", false)
	require.NoError(t, err)
	assert.Len(t, collection, 2)
}
