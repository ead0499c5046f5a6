package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/237films-bot/subtrack/internal/dto"
	"github.com/237films-bot/subtrack/internal/entity"
	"github.com/237films-bot/subtrack/internal/pkg/apperror"
	"github.com/237films-bot/subtrack/internal/pkg/logger"
	"github.com/237films-bot/subtrack/internal/pkg/sanitize"
	"github.com/237films-bot/subtrack/internal/repository/unitofwork"
	"github.com/237films-bot/subtrack/pkg/costs"
	"github.com/237films-bot/subtrack/pkg/cycle"
	"github.com/237films-bot/subtrack/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

const renewalDateLayout = "2006-01-02"

// ISubscriptionService is the facade over subscription CRUD and the renewal
// domain event. Every mutation returns the refreshed full collection so
// callers always observe the post-state, never an optimistic local patch.
type ISubscriptionService interface {
	List(ctx context.Context) ([]dto.SubscriptionResponse, error)
	Create(ctx context.Context, req *dto.CreateSubscriptionRequest) ([]dto.SubscriptionResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateSubscriptionRequest) ([]dto.SubscriptionResponse, error)
	Delete(ctx context.Context, id uuid.UUID) ([]dto.SubscriptionResponse, error)
	Renew(ctx context.Context, id uuid.UUID, note string, autoRenewed bool) ([]dto.SubscriptionResponse, error)
	History(ctx context.Context, id uuid.UUID) ([]dto.RenewalEventResponse, error)
}

type subscriptionService struct {
	uowFactory unitofwork.RepositoryFactory
	pubSub     *gochannel.GoChannel
	logger     logger.ILogger
}

func NewSubscriptionService(uowFactory unitofwork.RepositoryFactory, pubSub *gochannel.GoChannel, log logger.ILogger) ISubscriptionService {
	return &subscriptionService{
		uowFactory: uowFactory,
		pubSub:     pubSub,
		logger:     log,
	}
}

func (s *subscriptionService) List(ctx context.Context) ([]dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.collection(ctx, uow)
}

func (s *subscriptionService) Create(ctx context.Context, req *dto.CreateSubscriptionRequest) ([]dto.SubscriptionResponse, error) {
	if req.BillingCycle == string(entity.BillingCycleCustom) && req.CustomCycleDays <= 0 {
		return nil, fmt.Errorf("%w: custom billing cycle requires custom_cycle_days > 0", apperror.ErrValidation)
	}
	renewalDate, err := time.ParseInLocation(renewalDateLayout, req.RenewalDate, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid renewal_date", apperror.ErrValidation)
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	now := time.Now()
	sub := &entity.Subscription{
		Id:              uuid.New(),
		Name:            sanitize.Text(req.Name),
		Category:        sanitize.Text(req.Category),
		Color:           req.Color,
		Icon:            req.Icon,
		URL:             sanitize.URL(req.URL),
		Notes:           sanitize.Text(req.Notes),
		Cost:            req.Cost,
		Currency:        req.Currency,
		BillingCycle:    entity.BillingCycle(req.BillingCycle),
		CustomCycleDays: req.CustomCycleDays,
		RenewalDate:     renewalDate,
		AutoRenew:       req.AutoRenew,
		Enabled:         enabled,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if sub.Name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", apperror.ErrValidation)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Subscriptions().Create(ctx, sub); err != nil {
		s.logger.Error("SubscriptionService", "create failed", map[string]interface{}{"error": err.Error()})
		return nil, err
	}
	return s.collection(ctx, uow)
}

func (s *subscriptionService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateSubscriptionRequest) ([]dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sub, err := uow.Subscriptions().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, fmt.Errorf("%w: subscription %s", apperror.ErrNotFound, id)
	}

	if err := applySubscriptionUpdate(sub, req); err != nil {
		return nil, err
	}
	sub.UpdatedAt = time.Now()

	if err := uow.Subscriptions().Update(ctx, sub); err != nil {
		s.logger.Error("SubscriptionService", "update failed", map[string]interface{}{"id": id.String(), "error": err.Error()})
		return nil, err
	}
	return s.collection(ctx, uow)
}

func applySubscriptionUpdate(sub *entity.Subscription, req *dto.UpdateSubscriptionRequest) error {
	if req.Name != nil {
		name := sanitize.Text(*req.Name)
		if name == "" {
			return fmt.Errorf("%w: name must not be empty", apperror.ErrValidation)
		}
		sub.Name = name
	}
	if req.Category != nil {
		sub.Category = sanitize.Text(*req.Category)
	}
	if req.Color != nil {
		sub.Color = *req.Color
	}
	if req.Icon != nil {
		sub.Icon = *req.Icon
	}
	if req.URL != nil {
		sub.URL = sanitize.URL(*req.URL)
	}
	if req.Notes != nil {
		sub.Notes = sanitize.Text(*req.Notes)
	}
	if req.Cost != nil {
		sub.Cost = *req.Cost
	}
	if req.Currency != nil {
		sub.Currency = *req.Currency
	}
	if req.BillingCycle != nil {
		sub.BillingCycle = entity.BillingCycle(*req.BillingCycle)
	}
	if req.CustomCycleDays != nil {
		sub.CustomCycleDays = *req.CustomCycleDays
	}
	if sub.BillingCycle == entity.BillingCycleCustom && sub.CustomCycleDays <= 0 {
		return fmt.Errorf("%w: custom billing cycle requires custom_cycle_days > 0", apperror.ErrValidation)
	}
	if req.RenewalDate != nil {
		renewalDate, err := time.ParseInLocation(renewalDateLayout, *req.RenewalDate, time.Local)
		if err != nil {
			return fmt.Errorf("%w: invalid renewal_date", apperror.ErrValidation)
		}
		sub.RenewalDate = renewalDate
	}
	if req.AutoRenew != nil {
		sub.AutoRenew = *req.AutoRenew
	}
	if req.Enabled != nil {
		sub.Enabled = *req.Enabled
	}
	return nil
}

func (s *subscriptionService) Delete(ctx context.Context, id uuid.UUID) ([]dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sub, err := uow.Subscriptions().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, fmt.Errorf("%w: subscription %s", apperror.ErrNotFound, id)
	}

	// History must vanish with the entity. One transaction, no orphans.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.History().PurgeRenewals(ctx, id); err != nil {
		return nil, err
	}
	if err := uow.Subscriptions().Delete(ctx, id); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return s.collection(ctx, uow)
}

// Renew applies the renewal domain event: snapshot the current cost and
// currency into the ledger, then advance the renewal date by one cycle.
// The ledger entry is dated now, not at the renewal date.
func (s *subscriptionService) Renew(ctx context.Context, id uuid.UUID, note string, autoRenewed bool) ([]dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sub, err := uow.Subscriptions().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, fmt.Errorf("%w: subscription %s", apperror.ErrNotFound, id)
	}

	now := time.Now()
	event := &entity.RenewalEvent{
		Id:             uuid.New(),
		SubscriptionId: sub.Id,
		Date:           now,
		Cost:           sub.Cost,
		Currency:       sub.Currency,
		Note:           sanitize.Text(note),
		AutoRenewed:    autoRenewed,
	}
	nextDate := cycle.NextRenewal(sub.BillingCycle, sub.RenewalDate, sub.CustomCycleDays)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.History().CreateRenewal(ctx, event); err != nil {
		return nil, err
	}
	sub.RenewalDate = nextDate
	sub.UpdatedAt = now
	if err := uow.Subscriptions().Update(ctx, sub); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publish(events.TopicRenewalRecorded, events.RenewalRecorded{
		SubscriptionId: sub.Id,
		Name:           sub.Name,
		Cost:           event.Cost,
		Currency:       event.Currency,
		NextRenewal:    nextDate,
		AutoRenewed:    autoRenewed,
		OccurredAt:     now,
	})
	s.logger.Info("SubscriptionService", "renewal applied", map[string]interface{}{
		"id":           sub.Id.String(),
		"next_renewal": nextDate.Format(renewalDateLayout),
		"auto":         autoRenewed,
	})
	return s.collection(ctx, uow)
}

func (s *subscriptionService) History(ctx context.Context, id uuid.UUID) ([]dto.RenewalEventResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sub, err := uow.Subscriptions().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, fmt.Errorf("%w: subscription %s", apperror.ErrNotFound, id)
	}

	renewals, err := uow.History().FindRenewals(ctx, id)
	if err != nil {
		return nil, err
	}
	responses := make([]dto.RenewalEventResponse, len(renewals))
	for i, event := range renewals {
		responses[i] = dto.RenewalEventResponse{
			Id:          event.Id,
			Date:        event.Date,
			Cost:        event.Cost,
			Currency:    event.Currency,
			Note:        event.Note,
			AutoRenewed: event.AutoRenewed,
		}
	}
	return responses, nil
}

func (s *subscriptionService) collection(ctx context.Context, uow unitofwork.UnitOfWork) ([]dto.SubscriptionResponse, error) {
	subs, err := uow.Subscriptions().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	responses := make([]dto.SubscriptionResponse, len(subs))
	for i, sub := range subs {
		responses[i] = toSubscriptionResponse(sub, now)
	}
	return responses, nil
}

func toSubscriptionResponse(sub *entity.Subscription, now time.Time) dto.SubscriptionResponse {
	return dto.SubscriptionResponse{
		Id:              sub.Id,
		Name:            sub.Name,
		Category:        sub.Category,
		Color:           sub.Color,
		Icon:            sub.Icon,
		URL:             sub.URL,
		Notes:           sub.Notes,
		Cost:            sub.Cost,
		Currency:        sub.Currency,
		BillingCycle:    string(sub.BillingCycle),
		CustomCycleDays: sub.CustomCycleDays,
		RenewalDate:     sub.RenewalDate.Format(renewalDateLayout),
		AutoRenew:       sub.AutoRenew,
		Enabled:         sub.Enabled,
		DaysUntil:       cycle.DaysUntil(sub.RenewalDate, now),
		MonthlyCost:     costs.MonthlyCost(sub),
		CreatedAt:       sub.CreatedAt,
		UpdatedAt:       sub.UpdatedAt,
	}
}

func (s *subscriptionService) publish(topic string, payload interface{}) {
	if s.pubSub == nil {
		return
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return
	}
	msg := message.NewMessage(uuid.NewString(), raw)
	if err := s.pubSub.Publish(topic, msg); err != nil {
		s.logger.Warn("SubscriptionService", "event publish failed", map[string]interface{}{"topic": topic, "error": err.Error()})
	}
}
