package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"event_notifier/internal/app"
	"event_notifier/internal/domain/alert"
	"event_notifier/internal/domain/contact"
	"event_notifier/internal/domain/notify"
	"event_notifier/internal/infra/config"
	idb "event_notifier/internal/infra/database"
	"event_notifier/internal/infra/gateway"
	"event_notifier/internal/infra/httpapi"
	"event_notifier/internal/infra/logger"
	"event_notifier/internal/infra/mailer"
	"event_notifier/internal/infra/push"
	"event_notifier/internal/infra/scheduler"
	"event_notifier/internal/infra/telegram"

	"gopkg.in/telebot.v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("could not load application configuration: %v", err)
	}
	logger.Init(cfg)
	log := logger.Component("main")
	log.WithField("environment", cfg.Environment).Info("event notifier starting")

	// Database
	db, err := idb.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	defer db.Close()
	log.Info("database connection established")

	eventRepo := idb.NewPostgresEventRepository(db)
	supplierRepo := idb.NewPostgresSupplierRepository(db)
	deliveryLog := idb.NewPostgresDeliveryLogRepository(db)

	// Delivery channels, push first so a push failure never delays messaging.
	gwClient := gateway.NewClient(gateway.Config{
		BaseURL: cfg.GatewayBaseURL,
		APIKey:  cfg.GatewayAPIKey,
		Timeout: cfg.GatewayTimeout,
	})
	normalizer := contact.NewNormalizer(cfg.DefaultCountryCode, cfg.GatewaySuffix)

	var channels []notify.Channel
	if cfg.VAPIDPublicKey != "" && cfg.VAPIDPrivateKey != "" {
		channels = append(channels, push.NewChannel(push.Config{
			VAPIDPublicKey:  cfg.VAPIDPublicKey,
			VAPIDPrivateKey: cfg.VAPIDPrivateKey,
			Subscriber:      cfg.PushSubscriber,
		}))
		log.Info("push channel enabled")
	}
	channels = append(channels, gateway.NewMessageChannel(gwClient, normalizer))
	if cfg.SMTPHost != "" {
		channels = append(channels, mailer.NewChannel(mailer.Config{
			Host: cfg.SMTPHost,
			Port: cfg.SMTPPort,
			User: cfg.SMTPUser,
			Pass: cfg.SMTPPass,
			From: cfg.SMTPFrom,
		}))
		log.Info("email channel enabled")
	}

	// Optional Telegram admin alerts
	var alerter alert.Alerter
	if cfg.TelegramToken != "" && cfg.AdminChatID != 0 {
		bot, err := telebot.NewBot(telebot.Settings{Token: cfg.TelegramToken})
		if err != nil {
			log.WithError(err).Warn("could not create Telegram bot, admin alerts disabled")
		} else {
			alerter = telegram.NewTelebotAlerter(bot, cfg.AdminChatID)
			log.Info("Telegram admin alerts enabled")
		}
	}

	// Application services
	templates := notify.NewTemplateStore()
	notifySvc := app.NewNotifyService(channels, templates, deliveryLog, cfg.CountAnyChannel, logger.Component("notify"))
	reminderSvc := app.NewReminderService(eventRepo, supplierRepo, notifySvc, alerter, logger.Component("reminder"))

	// Scheduler: daily sweep plus the gateway connectivity watch
	monitor := app.NewGatewayMonitor(gwClient, alerter, logger.Component("monitor"))
	sched := scheduler.NewReminderScheduler(reminderSvc, monitor, logger.Component("scheduler"), cfg.CronSpecDailyReminders, cfg.CronSpecGatewayStatus)
	if err := sched.Start(); err != nil {
		log.Fatalf("could not start reminder scheduler: %v", err)
	}

	// HTTP server
	handler := httpapi.NewHandler(eventRepo, notifySvc, reminderSvc, gwClient, cfg.CronSecret, logger.Component("http"))
	fapp := httpapi.NewServer(handler)

	go func() {
		if err := fapp.Listen(cfg.HTTPAddr); err != nil {
			log.WithError(err).Error("http server stopped")
		}
	}()
	log.WithField("addr", cfg.HTTPAddr).Info("http server started")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	sched.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := fapp.ShutdownWithContext(ctx); err != nil {
		log.WithError(err).Error("http shutdown error")
	}
	log.Info("application shut down gracefully")
}
