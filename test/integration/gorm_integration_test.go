package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/237films-bot/subtrack/internal/entity"
	"github.com/237films-bot/subtrack/internal/repository/unitofwork"
	"github.com/237films-bot/subtrack/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.Subscriptions())
	assert.NotNil(t, uow.Credits())
	assert.NotNil(t, uow.History())
	assert.NotNil(t, uow.Presets())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Subscription round trip", func(t *testing.T) {
		ctx := context.Background()
		now := time.Now()
		sub := &entity.Subscription{
			Id:           uuid.New(),
			Name:         "integration-" + uuid.NewString()[:8],
			Category:     "AI Assistant",
			Cost:         20,
			Currency:     "USD",
			BillingCycle: entity.BillingCycleMonthly,
			RenewalDate:  now.AddDate(0, 1, 0),
			Enabled:      true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		require.NoError(t, uow.Subscriptions().Create(ctx, sub))
		defer uow.Subscriptions().Delete(ctx, sub.Id)

		found, err := uow.Subscriptions().FindByID(ctx, sub.Id)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, sub.Name, found.Name)
		assert.Equal(t, sub.RenewalDate.Format("2006-01-02"), found.RenewalDate.Format("2006-01-02"))
	})

	t.Run("Transactional renewal with ledger", func(t *testing.T) {
		ctx := context.Background()
		now := time.Now()
		sub := &entity.Subscription{
			Id:           uuid.New(),
			Name:         "integration-" + uuid.NewString()[:8],
			Cost:         35,
			Currency:     "USD",
			BillingCycle: entity.BillingCycleMonthly,
			RenewalDate:  now,
			Enabled:      true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		txUow := uowFactory.NewUnitOfWork(ctx)
		require.NoError(t, txUow.Subscriptions().Create(ctx, sub))

		require.NoError(t, txUow.Begin(ctx))
		event := &entity.RenewalEvent{
			Id:             uuid.New(),
			SubscriptionId: sub.Id,
			Date:           now,
			Cost:           sub.Cost,
			Currency:       sub.Currency,
		}
		require.NoError(t, txUow.History().CreateRenewal(ctx, event))
		sub.RenewalDate = now.AddDate(0, 1, 0)
		require.NoError(t, txUow.Subscriptions().Update(ctx, sub))
		require.NoError(t, txUow.Commit())

		renewals, err := txUow.History().FindRenewals(ctx, sub.Id)
		require.NoError(t, err)
		assert.Len(t, renewals, 1)

		// Cleanup
		require.NoError(t, txUow.History().PurgeRenewals(ctx, sub.Id))
		require.NoError(t, txUow.Subscriptions().Delete(ctx, sub.Id))
	})
}
