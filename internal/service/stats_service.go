package service

import (
	"context"
	"time"

	"github.com/237films-bot/subtrack/internal/dto"
	"github.com/237films-bot/subtrack/internal/repository/unitofwork"
	"github.com/237films-bot/subtrack/pkg/costs"
)

const forecastMonths = 12

// IStatsService computes the read-only dashboard aggregates. Everything here
// is derived on the fly from the current collections; nothing is cached or
// persisted.
type IStatsService interface {
	CostOverview(ctx context.Context) (*dto.CostOverviewResponse, error)
	Timeline(ctx context.Context) (*dto.TimelineResponse, error)
	CreditStats(ctx context.Context) (*dto.CreditStatsResponse, error)
	Presets(ctx context.Context) ([]dto.PresetResponse, error)
}

type statsService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewStatsService(uowFactory unitofwork.RepositoryFactory) IStatsService {
	return &statsService{uowFactory: uowFactory}
}

func (s *statsService) CostOverview(ctx context.Context) (*dto.CostOverviewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	subs, err := uow.Subscriptions().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	totalMonthly := costs.TotalMonthly(subs)
	activeCount := 0
	currency := ""
	for _, sub := range subs {
		if !sub.Enabled {
			continue
		}
		activeCount++
		if currency == "" {
			currency = sub.Currency
		}
	}

	averageMonthly := 0.0
	if activeCount > 0 {
		averageMonthly = totalMonthly / float64(activeCount)
	}

	return &dto.CostOverviewResponse{
		TotalMonthly:   totalMonthly,
		TotalYearly:    costs.TotalYearly(subs),
		AverageMonthly: averageMonthly,
		ActiveCount:    activeCount,
		Currency:       currency,
		ByCategory:     costs.ByCategory(subs),
	}, nil
}

func (s *statsService) Timeline(ctx context.Context) (*dto.TimelineResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	subs, err := uow.Subscriptions().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()

	upcoming := costs.Upcoming(subs, now)
	items := make([]dto.UpcomingRenewalItem, len(upcoming))
	upcomingTotal := 0.0
	for i, u := range upcoming {
		items[i] = dto.UpcomingRenewalItem{
			Subscription: toSubscriptionResponse(u.Subscription, now),
			DaysUntil:    u.DaysUntil,
		}
		upcomingTotal += u.Subscription.Cost
	}

	weekBuckets := costs.WeekBuckets(subs, now)
	bucketItems := make([]dto.WeekBucketItem, len(weekBuckets))
	for i, b := range weekBuckets {
		bucketItems[i] = dto.WeekBucketItem{Label: b.Label, Count: b.Count, TotalCost: b.TotalCost}
	}

	forecast := costs.MonthlyForecast(subs, now, forecastMonths)
	forecastItems := make([]dto.MonthForecastItem, len(forecast))
	for i, m := range forecast {
		forecastItems[i] = dto.MonthForecastItem{Month: m.Month, Count: m.Count, TotalCost: m.TotalCost}
	}

	return &dto.TimelineResponse{
		Upcoming:          items,
		UpcomingTotalCost: upcomingTotal,
		WeekBuckets:       bucketItems,
		Forecast:          forecastItems,
	}, nil
}

func (s *statsService) CreditStats(ctx context.Context) (*dto.CreditStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	pools, err := uow.Credits().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()

	low := costs.LowCredit(pools)
	lowResponses := make([]dto.CreditPoolResponse, len(low))
	for i, pool := range low {
		lowResponses[i] = toCreditPoolResponse(pool, now)
	}

	return &dto.CreditStatsResponse{
		TotalRemaining:     costs.TotalRemaining(pools),
		OverallUsedPercent: costs.OverallUsedPercent(pools),
		LowCredit:          lowResponses,
	}, nil
}

func (s *statsService) Presets(ctx context.Context) ([]dto.PresetResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	presets, err := uow.Presets().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]dto.PresetResponse, len(presets))
	for i, preset := range presets {
		responses[i] = dto.PresetResponse{
			Name:  preset.Name,
			Color: preset.Color,
			Icon:  preset.Icon,
			URL:   preset.URL,
		}
	}
	return responses, nil
}
