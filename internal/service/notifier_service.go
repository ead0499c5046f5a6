package service

import (
	"context"
	"encoding/json"

	"github.com/237films-bot/subtrack/internal/pkg/logger"
	"github.com/237films-bot/subtrack/internal/pkg/mailer"
	"github.com/237films-bot/subtrack/internal/websocket"
	"github.com/237films-bot/subtrack/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// INotifierService consumes the domain event topics and fans them out:
// everything goes to the websocket hub for live UI updates, reminders also
// go out by email.
type INotifierService interface {
	Consume(ctx context.Context) error
}

type notifierService struct {
	pubSub *gochannel.GoChannel
	hub    *websocket.Hub
	mailer mailer.IEmailService
	logger logger.ILogger
}

func NewNotifierService(pubSub *gochannel.GoChannel, hub *websocket.Hub, emailService mailer.IEmailService, log logger.ILogger) INotifierService {
	return &notifierService{
		pubSub: pubSub,
		hub:    hub,
		mailer: emailService,
		logger: log,
	}
}

func (ns *notifierService) Consume(ctx context.Context) error {
	topics := map[string]func(*message.Message){
		events.TopicRenewalRecorded: ns.handleRenewalRecorded,
		events.TopicCreditsUpdated:  ns.handleCreditsUpdated,
		events.TopicReminderDue:     ns.handleReminderDue,
	}

	for topic, handler := range topics {
		messages, err := ns.pubSub.Subscribe(ctx, topic)
		if err != nil {
			return err
		}
		go func(handler func(*message.Message)) {
			for msg := range messages {
				handler(msg)
			}
		}(handler)
	}
	return nil
}

func (ns *notifierService) handleRenewalRecorded(msg *message.Message) {
	var payload events.RenewalRecorded
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		ns.logger.Error("Notifier", "unmarshal failed", map[string]interface{}{"topic": events.TopicRenewalRecorded, "error": err.Error()})
		msg.Ack() // malformed payloads never become valid, do not retry
		return
	}

	if ns.hub != nil {
		ns.hub.Broadcast("renewal_recorded", payload)
	}
	msg.Ack()
}

func (ns *notifierService) handleCreditsUpdated(msg *message.Message) {
	var payload events.CreditsUpdated
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		ns.logger.Error("Notifier", "unmarshal failed", map[string]interface{}{"topic": events.TopicCreditsUpdated, "error": err.Error()})
		msg.Ack()
		return
	}

	if ns.hub != nil {
		ns.hub.Broadcast("credits_updated", payload)
	}
	msg.Ack()
}

func (ns *notifierService) handleReminderDue(msg *message.Message) {
	var payload events.ReminderDue
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		ns.logger.Error("Notifier", "unmarshal failed", map[string]interface{}{"topic": events.TopicReminderDue, "error": err.Error()})
		msg.Ack()
		return
	}

	if ns.hub != nil {
		ns.hub.Broadcast("reminder_due", payload)
	}

	var err error
	switch payload.Kind {
	case "subscription":
		err = ns.mailer.SendRenewalReminder(payload.Name, payload.DueDate, payload.DaysUntil, payload.Cost, payload.Currency)
	case "credit_pool":
		err = ns.mailer.SendResetReminder(payload.Name, payload.DueDate, payload.DaysUntil)
	}
	if err != nil {
		ns.logger.Error("Notifier", "reminder email failed", map[string]interface{}{"name": payload.Name, "error": err.Error()})
		// SMTP hiccups are retriable.
		msg.Nack()
		return
	}
	msg.Ack()
}
