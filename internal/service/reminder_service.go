package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/237films-bot/subtrack/internal/pkg/logger"
	"github.com/237films-bot/subtrack/internal/repository/unitofwork"
	"github.com/237films-bot/subtrack/pkg/cycle"
	"github.com/237films-bot/subtrack/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// Auto-renewal catches up at most this many missed cycles per scan, so a
// subscription that sat overdue for months cannot wedge a scan in a loop.
const maxAutoRenewalsPerScan = 24

// IReminderService periodically scans for renewals and resets inside the
// threshold window and publishes ReminderDue events. Overdue subscriptions
// with auto-renew on are rolled forward, which writes the ledger entry.
type IReminderService interface {
	Run(ctx context.Context)
	Scan(ctx context.Context) error
}

type reminderService struct {
	uowFactory    unitofwork.RepositoryFactory
	subscriptions ISubscriptionService
	pubSub        *gochannel.GoChannel
	thresholdDays int
	interval      time.Duration
	logger        logger.ILogger
}

func NewReminderService(
	uowFactory unitofwork.RepositoryFactory,
	subscriptions ISubscriptionService,
	pubSub *gochannel.GoChannel,
	thresholdDays int,
	intervalHours int,
	log logger.ILogger,
) IReminderService {
	return &reminderService{
		uowFactory:    uowFactory,
		subscriptions: subscriptions,
		pubSub:        pubSub,
		thresholdDays: thresholdDays,
		interval:      time.Duration(intervalHours) * time.Hour,
		logger:        log,
	}
}

// Run blocks until ctx is cancelled. An initial scan fires immediately so a
// freshly started instance does not sit silent for a whole interval.
func (s *reminderService) Run(ctx context.Context) {
	if err := s.Scan(ctx); err != nil {
		s.logger.Error("Reminder", "scan failed", map[string]interface{}{"error": err.Error()})
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Scan(ctx); err != nil {
				s.logger.Error("Reminder", "scan failed", map[string]interface{}{"error": err.Error()})
			}
		}
	}
}

func (s *reminderService) Scan(ctx context.Context) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	subs, err := uow.Subscriptions().FindAll(ctx)
	if err != nil {
		return err
	}
	for _, sub := range subs {
		if !sub.Enabled {
			continue
		}
		days := cycle.DaysUntil(sub.RenewalDate, now)

		if cycle.Overdue(days) && sub.AutoRenew {
			for i := 0; i < maxAutoRenewalsPerScan; i++ {
				if _, err := s.subscriptions.Renew(ctx, sub.Id, "auto-renewed", true); err != nil {
					s.logger.Error("Reminder", "auto-renew failed", map[string]interface{}{
						"id":    sub.Id.String(),
						"error": err.Error(),
					})
					break
				}
				refreshed, err := uow.Subscriptions().FindByID(ctx, sub.Id)
				if err != nil || refreshed == nil {
					break
				}
				sub = refreshed
				days = cycle.DaysUntil(sub.RenewalDate, now)
				if !cycle.Overdue(days) {
					break
				}
			}
		}

		if cycle.DueSoon(days, s.thresholdDays) {
			s.publish(events.ReminderDue{
				Kind:      "subscription",
				EntityId:  sub.Id,
				Name:      sub.Name,
				DueDate:   sub.RenewalDate,
				DaysUntil: days,
				Cost:      sub.Cost,
				Currency:  sub.Currency,
			})
		}
	}

	pools, err := uow.Credits().FindAll(ctx)
	if err != nil {
		return err
	}
	for _, pool := range pools {
		if !pool.Enabled {
			continue
		}
		days := cycle.DaysUntilReset(pool, now)
		if cycle.DueSoon(days, s.thresholdDays) {
			s.publish(events.ReminderDue{
				Kind:      "credit_pool",
				EntityId:  pool.Id,
				Name:      pool.Name,
				DueDate:   cycle.NextReset(pool, now),
				DaysUntil: days,
			})
		}
	}
	return nil
}

func (s *reminderService) publish(payload events.ReminderDue) {
	if s.pubSub == nil {
		return
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return
	}
	msg := message.NewMessage(uuid.NewString(), raw)
	if err := s.pubSub.Publish(events.TopicReminderDue, msg); err != nil {
		s.logger.Warn("Reminder", "event publish failed", map[string]interface{}{"error": err.Error()})
	}
}
