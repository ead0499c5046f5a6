package service

import (
	"context"
	"testing"

	"github.com/237films-bot/subtrack/internal/dto"
	"github.com/237films-bot/subtrack/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCreditService() ICreditService {
	return NewCreditService(newTestFactory(), nil, noopLogger{})
}

func createTestPool(t *testing.T, svc ICreditService, req dto.CreateCreditPoolRequest) dto.CreditPoolResponse {
	t.Helper()
	collection, err := svc.Create(context.Background(), &req)
	require.NoError(t, err)
	for _, pool := range collection {
		if pool.Name == req.Name {
			return pool
		}
	}
	t.Fatalf("created pool %q not in returned collection", req.Name)
	return dto.CreditPoolResponse{}
}

func TestCreditPoolCreate(t *testing.T) {
	svc := newTestCreditService()

	created := createTestPool(t, svc, dto.CreateCreditPoolRequest{
		Name:         "Genspark Credits",
		TotalCredits: 10000,
		UsedCredits:  2500,
		ResetCycle:   "monthly",
		ResetDay:     1,
	})

	assert.NotEqual(t, uuid.Nil, created.Id)
	assert.Equal(t, 7500, created.Remaining)
	assert.True(t, created.Enabled)
	assert.NotEmpty(t, created.NextReset)
	assert.GreaterOrEqual(t, created.DaysUntilReset, 1, "next reset is never today")
}

func TestCreditPoolResetDayValidation(t *testing.T) {
	svc := newTestCreditService()
	ctx := context.Background()

	cases := []struct {
		name string
		req  dto.CreateCreditPoolRequest
	}{
		{"monthly day 0", dto.CreateCreditPoolRequest{Name: "a", TotalCredits: 100, ResetCycle: "monthly", ResetDay: 0}},
		{"monthly day 32", dto.CreateCreditPoolRequest{Name: "b", TotalCredits: 100, ResetCycle: "monthly", ResetDay: 32}},
		{"weekly day 7", dto.CreateCreditPoolRequest{Name: "c", TotalCredits: 100, ResetCycle: "weekly", ResetDay: 7}},
		{"yearly month 13", dto.CreateCreditPoolRequest{Name: "d", TotalCredits: 100, ResetCycle: "yearly", ResetDay: 1301}},
		{"custom without days", dto.CreateCreditPoolRequest{Name: "e", TotalCredits: 100, ResetCycle: "custom", ResetDay: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, &tc.req)
			assert.ErrorIs(t, err, apperror.ErrValidation)
		})
	}
}

func TestCreditApplyUsage(t *testing.T) {
	svc := newTestCreditService()
	ctx := context.Background()

	created := createTestPool(t, svc, dto.CreateCreditPoolRequest{
		Name:         "Claude Credits",
		TotalCredits: 100,
		UsedCredits:  50,
		ResetCycle:   "monthly",
		ResetDay:     1,
	})

	collection, err := svc.ApplyUsage(ctx, created.Id, &dto.UpdateUsageRequest{UsedCredits: 75, Note: "big batch"})
	require.NoError(t, err)
	require.Len(t, collection, 1)
	assert.Equal(t, 75, collection[0].UsedCredits)
	assert.Equal(t, 25, collection[0].Remaining)

	history, err := svc.History(ctx, created.Id)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 50, history[0].PreviousUsed)
	assert.Equal(t, 75, history[0].NewUsed)
	assert.Equal(t, 25, history[0].Change)
	assert.Equal(t, "big batch", history[0].Note)

	t.Run("negative delta", func(t *testing.T) {
		_, err := svc.ApplyUsage(ctx, created.Id, &dto.UpdateUsageRequest{UsedCredits: 10})
		require.NoError(t, err)

		history, err := svc.History(ctx, created.Id)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, -65, history[0].Change, "ledger is newest-first")
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.ApplyUsage(ctx, uuid.New(), &dto.UpdateUsageRequest{UsedCredits: 1})
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})
}

func TestCreditPoolDeleteCascadesHistory(t *testing.T) {
	factory := newTestFactory()
	svc := NewCreditService(factory, nil, noopLogger{})
	ctx := context.Background()

	created := createTestPool(t, svc, dto.CreateCreditPoolRequest{
		Name:         "Runway Credits",
		TotalCredits: 625,
		ResetCycle:   "monthly",
		ResetDay:     5,
	})

	_, err := svc.ApplyUsage(ctx, created.Id, &dto.UpdateUsageRequest{UsedCredits: 100})
	require.NoError(t, err)

	collection, err := svc.Delete(ctx, created.Id)
	require.NoError(t, err)
	assert.Empty(t, collection)

	orphans, err := factory.NewUnitOfWork(ctx).History().FindCreditChanges(ctx, created.Id)
	require.NoError(t, err)
	assert.Empty(t, orphans)
}

func TestCreditPoolUpdate(t *testing.T) {
	svc := newTestCreditService()
	ctx := context.Background()

	created := createTestPool(t, svc, dto.CreateCreditPoolRequest{
		Name:         "Midjourney Fast Hours",
		TotalCredits: 15,
		ResetCycle:   "monthly",
		ResetDay:     28,
	})

	newTotal := 30
	collection, err := svc.Update(ctx, created.Id, &dto.UpdateCreditPoolRequest{TotalCredits: &newTotal})
	require.NoError(t, err)
	require.Len(t, collection, 1)
	assert.Equal(t, 30, collection[0].TotalCredits)
	assert.Equal(t, "Midjourney Fast Hours", collection[0].Name)

	t.Run("update to invalid reset day", func(t *testing.T) {
		badDay := 40
		_, err := svc.Update(ctx, created.Id, &dto.UpdateCreditPoolRequest{ResetDay: &badDay})
		assert.ErrorIs(t, err, apperror.ErrValidation)
	})
}
