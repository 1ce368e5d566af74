package scheduler

import (
	"context"
	"time"

	"event_notifier/internal/app"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const (
	// sweepTimeout bounds one sweep run; a hung gateway call cannot wedge the
	// scheduler past it.
	sweepTimeout = 5 * time.Minute
	checkTimeout = 30 * time.Second
)

// ReminderScheduler triggers the daily reminder sweep and the periodic gateway
// connectivity check on cron schedules.
type ReminderScheduler struct {
	cronEngine  *cron.Cron
	sweeper     app.SweepRunner
	monitor     *app.GatewayMonitor // nil disables the connectivity job
	logger      *logrus.Entry
	cronSpec    string
	monitorSpec string
}

func NewReminderScheduler(sweeper app.SweepRunner, monitor *app.GatewayMonitor, logger *logrus.Entry, cronSpec, monitorSpec string) *ReminderScheduler {
	return &ReminderScheduler{
		cronEngine:  cron.New(cron.WithLocation(time.Local)), // server's local time
		sweeper:     sweeper,
		monitor:     monitor,
		logger:      logger,
		cronSpec:    cronSpec,
		monitorSpec: monitorSpec,
	}
}

func (s *ReminderScheduler) Start() error {
	_, err := s.cronEngine.AddFunc(s.cronSpec, func() {
		s.logger.Info("cron job triggered for daily reminders")
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()

		summary, err := s.sweeper.RunDailySweep(ctx)
		if err != nil {
			s.logger.WithError(err).Error("daily reminder sweep failed")
			return
		}
		s.logger.WithFields(logrus.Fields{
			"events_processed":   summary.EventsProcessed,
			"notifications_sent": summary.NotificationsSent,
		}).Info("daily reminder sweep completed")
	})
	if err != nil {
		return err
	}

	if s.monitor != nil {
		_, err = s.cronEngine.AddFunc(s.monitorSpec, func() {
			ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
			defer cancel()
			s.monitor.CheckOnce(ctx)
		})
		if err != nil {
			return err
		}
	}

	s.cronEngine.Start()
	s.logger.WithField("cron_spec", s.cronSpec).Info("reminder scheduler started")
	return nil
}

func (s *ReminderScheduler) Stop() {
	s.logger.Info("stopping reminder scheduler")
	ctx := s.cronEngine.Stop() // waits for a running job to finish
	<-ctx.Done()
	s.logger.Info("reminder scheduler stopped")
}
