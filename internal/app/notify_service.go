package app

import (
	"context"
	"fmt"
	"sync"

	"event_notifier/internal/domain/event"
	"event_notifier/internal/domain/notify"
	"event_notifier/internal/domain/supplier"

	"github.com/sirupsen/logrus"
)

// Notifier is the fan-out operation consumed by the scheduler and HTTP layers.
type Notifier interface {
	// NotifyRecipients notifies each recipient on every configured channel and
	// returns the aggregated per-recipient results.
	NotifyRecipients(ctx context.Context, ev *event.Event, recipients []*supplier.Supplier, templateName string) notify.FanOutSummary
}

// NotifyService fans one event notification out to a list of suppliers.
// Channels are attempted in the order they were configured (push before
// messaging, so a push failure never blocks the messaging attempt).
type NotifyService struct {
	channels        []notify.Channel
	templates       *notify.TemplateStore
	deliveryLog     notify.DeliveryLog // nil disables audit recording
	countAnyChannel bool
	logger          *logrus.Entry
}

func NewNotifyService(
	channels []notify.Channel,
	templates *notify.TemplateStore,
	deliveryLog notify.DeliveryLog,
	countAnyChannel bool,
	logger *logrus.Entry,
) *NotifyService {
	return &NotifyService{
		channels:        channels,
		templates:       templates,
		deliveryLog:     deliveryLog,
		countAnyChannel: countAnyChannel,
		logger:          logger,
	}
}

// NotifyRecipients processes every recipient concurrently and returns once all
// of them have settled. A failure for one recipient never aborts or skews the
// processing of another: each goroutine writes only its own slot of the
// per-recipient results.
//
// Succeeded counts recipients whose messaging-channel attempt was sent. When
// the service is configured with countAnyChannel, a recipient with any sent
// channel counts instead.
func (s *NotifyService) NotifyRecipients(ctx context.Context, ev *event.Event, recipients []*supplier.Supplier, templateName string) notify.FanOutSummary {
	summary := notify.FanOutSummary{TotalRecipients: len(recipients)}
	if len(recipients) == 0 {
		return summary
	}

	s.logger.WithFields(logrus.Fields{
		"event_id":   ev.ID,
		"recipients": len(recipients),
		"template":   templateName,
	}).Info("starting notification fan-out")

	perRecipient := make([][]notify.ChannelResult, len(recipients))
	var wg sync.WaitGroup
	for i, r := range recipients {
		wg.Add(1)
		go func(i int, r *supplier.Supplier) {
			defer wg.Done()
			perRecipient[i] = s.notifyOne(ctx, ev, r, templateName)
		}(i, r)
	}
	wg.Wait()

	for _, results := range perRecipient {
		summary.Results = append(summary.Results, results...)
		if s.recipientSucceeded(results) {
			summary.Succeeded++
		}
	}

	if s.deliveryLog != nil && len(summary.Results) > 0 {
		if err := s.deliveryLog.RecordResults(ctx, ev.ID, summary.Results); err != nil {
			s.logger.WithError(err).WithField("event_id", ev.ID).Warn("could not record delivery results")
		}
	}

	s.logger.WithFields(logrus.Fields{
		"event_id":  ev.ID,
		"succeeded": summary.Succeeded,
		"total":     summary.TotalRecipients,
	}).Info("notification fan-out finished")
	return summary
}

// notifyOne attempts every channel for a single recipient. A channel with no
// usable address records a skip; a failed attempt records the error and moves
// on to the next channel.
func (s *NotifyService) notifyOne(ctx context.Context, ev *event.Event, r *supplier.Supplier, templateName string) []notify.ChannelResult {
	body, renderErr := s.templates.Render(templateName, templateData(ev, r))
	msg := notify.Message{Title: messageTitle(templateName, ev), Body: body, EventID: ev.ID}

	results := make([]notify.ChannelResult, 0, len(s.channels))
	for _, ch := range s.channels {
		res := notify.ChannelResult{SupplierID: r.ID, Channel: ch.Kind()}

		addr, ok := ch.Address(r)
		if !ok {
			res.Status = notify.StatusSkipped
			results = append(results, res)
			continue
		}
		if renderErr != nil {
			res.Status = notify.StatusFailed
			res.Detail = renderErr.Error()
			results = append(results, res)
			continue
		}

		if err := s.sendOn(ctx, ch, addr, msg); err != nil {
			res.Status = notify.StatusFailed
			res.Detail = err.Error()
			s.logger.WithError(err).WithFields(logrus.Fields{
				"event_id":    ev.ID,
				"supplier_id": r.ID,
				"channel":     ch.Kind(),
			}).Warn("channel delivery failed")
		} else {
			res.Status = notify.StatusSent
		}
		results = append(results, res)
	}
	return results
}

// sendOn isolates a single channel call so a panicking client library cannot
// take down sibling recipients.
func (s *NotifyService) sendOn(ctx context.Context, ch notify.Channel, addr string, msg notify.Message) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("channel %s panicked: %v", ch.Kind(), p)
		}
	}()
	return ch.Send(ctx, addr, msg)
}

func (s *NotifyService) recipientSucceeded(results []notify.ChannelResult) bool {
	for _, res := range results {
		if res.Status != notify.StatusSent {
			continue
		}
		if s.countAnyChannel || res.Channel == notify.KindMessage {
			return true
		}
	}
	return false
}

func templateData(ev *event.Event, r *supplier.Supplier) notify.TemplateData {
	return notify.TemplateData{
		Name:             r.Name,
		Title:            ev.Title,
		Date:             ev.EventDate.Format("02/01/2006"),
		StartTime:        nullOr(ev.StartTime.String, ev.StartTime.Valid, "--:--"),
		EndTime:          nullOr(ev.EndTime.String, ev.EndTime.Valid, "--:--"),
		Location:         nullOr(ev.Location.String, ev.Location.Valid, "a definir"),
		ParticipantCount: ev.ParticipantCount,
	}
}

func nullOr(value string, valid bool, fallback string) string {
	if valid && value != "" {
		return value
	}
	return fallback
}

func messageTitle(templateName string, ev *event.Event) string {
	switch templateName {
	case notify.TemplateReminder:
		return "Lembrete de evento: " + ev.Title
	default:
		return "Novo evento: " + ev.Title
	}
}
