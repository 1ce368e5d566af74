package app

import (
	"context"
	"fmt"
	"time"

	"event_notifier/internal/domain/alert"
	"event_notifier/internal/domain/event"
	"event_notifier/internal/domain/notify"
	"event_notifier/internal/domain/supplier"

	"github.com/sirupsen/logrus"
)

// SweepSummary reports the outcome of one daily reminder sweep.
// EventsProcessed counts only events whose fan-out was actually invoked;
// events skipped for having no recipients (or a failed recipient lookup)
// do not count.
type SweepSummary struct {
	EventsProcessed   int
	NotificationsSent int
}

// SweepRunner is the sweep operation consumed by the scheduler and HTTP layers.
type SweepRunner interface {
	RunDailySweep(ctx context.Context) (SweepSummary, error)
}

// ReminderService runs the daily reminder sweep: it finds tomorrow's events,
// resolves their suppliers and fans a reminder out per event. Events are
// processed strictly sequentially; only the per-recipient work inside one
// event's fan-out is concurrent.
type ReminderService struct {
	events    event.Repository
	suppliers supplier.Repository
	notifier  Notifier
	alerter   alert.Alerter // nil disables admin summaries
	logger    *logrus.Entry
}

func NewReminderService(
	events event.Repository,
	suppliers supplier.Repository,
	notifier Notifier,
	alerter alert.Alerter,
	logger *logrus.Entry,
) *ReminderService {
	return &ReminderService{
		events:    events,
		suppliers: suppliers,
		notifier:  notifier,
		alerter:   alerter,
		logger:    logger,
	}
}

// RunDailySweep notifies the suppliers of every event scheduled for tomorrow.
// A failed supplier lookup skips that event and the sweep carries on; only a
// failure to list tomorrow's events aborts the whole run.
func (s *ReminderService) RunDailySweep(ctx context.Context) (SweepSummary, error) {
	var summary SweepSummary

	tomorrow := time.Now().AddDate(0, 0, 1)
	targetDate := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, tomorrow.Location())

	events, err := s.events.ListByDate(ctx, targetDate)
	if err != nil {
		s.logger.WithError(err).Error("could not list tomorrow's events")
		return summary, fmt.Errorf("list events for %s: %w", targetDate.Format("2006-01-02"), err)
	}
	if len(events) == 0 {
		s.logger.WithField("date", targetDate.Format("2006-01-02")).Info("no events scheduled for tomorrow")
		return summary, nil
	}
	s.logger.WithFields(logrus.Fields{
		"date":   targetDate.Format("2006-01-02"),
		"events": len(events),
	}).Info("starting daily reminder sweep")

	for _, ev := range events {
		recipients, err := s.suppliers.ListByEvent(ctx, ev.ID)
		if err != nil {
			s.logger.WithError(err).WithField("event_id", ev.ID).Error("could not resolve event suppliers, skipping event")
			continue
		}
		if len(recipients) == 0 {
			s.logger.WithField("event_id", ev.ID).Info("event has no assigned suppliers, skipping")
			continue
		}

		fanOut := s.notifier.NotifyRecipients(ctx, ev, recipients, notify.TemplateReminder)
		summary.EventsProcessed++
		summary.NotificationsSent += fanOut.Succeeded
	}

	s.logger.WithFields(logrus.Fields{
		"events_processed":   summary.EventsProcessed,
		"notifications_sent": summary.NotificationsSent,
	}).Info("daily reminder sweep finished")
	s.sendAdminSummary(summary)

	return summary, nil
}

// sendAdminSummary is best-effort; an unreachable admin chat never fails the sweep.
func (s *ReminderService) sendAdminSummary(summary SweepSummary) {
	if s.alerter == nil {
		return
	}
	text := fmt.Sprintf("Lembretes diários: %d evento(s) processado(s), %d notificação(ões) enviada(s).",
		summary.EventsProcessed, summary.NotificationsSent)
	if err := s.alerter.SendAlert(text); err != nil {
		s.logger.WithError(err).Warn("could not send sweep summary to admin")
	}
}
