package httpapi

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"event_notifier/internal/app"
	"event_notifier/internal/domain/event"
	"event_notifier/internal/domain/notify"
	"event_notifier/internal/domain/supplier"
	idb "event_notifier/internal/infra/database"
	"event_notifier/internal/infra/gateway"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// GatewayProbe exposes the messaging gateway's pairing surface to the
// back-office UI.
type GatewayProbe interface {
	Status(ctx context.Context) (gateway.StatusInfo, error)
	Connect(ctx context.Context) (gateway.PairingInfo, error)
}

type Handler struct {
	events     event.Repository
	notifier   app.Notifier
	sweeper    app.SweepRunner
	gateway    GatewayProbe
	cronSecret string
	logger     *logrus.Entry
}

func NewHandler(
	events event.Repository,
	notifier app.Notifier,
	sweeper app.SweepRunner,
	gw GatewayProbe,
	cronSecret string,
	logger *logrus.Entry,
) *Handler {
	return &Handler{
		events:     events,
		notifier:   notifier,
		sweeper:    sweeper,
		gateway:    gw,
		cronSecret: cronSecret,
		logger:     logger,
	}
}

func (h *Handler) Register(fapp *fiber.App) {
	fapp.Get("/healthz", h.Health)
	fapp.Post("/events/:id/notify", h.NotifyEvent)
	fapp.Get("/cron/daily-reminders", h.DailyReminders)
	fapp.Get("/gateway/status", h.GatewayStatus)
	fapp.Get("/gateway/qr", h.GatewayQR)
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.SendString("ok")
}

// NotifyEvent fans a notification for the given event out to the recipients
// supplied in the body. Partial failure still yields a 200 with the full
// per-recipient detail; only an unreadable request or a store failure is an error.
func (h *Handler) NotifyEvent(c *fiber.Ctx) error {
	eventID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_event_id"})
	}

	var req NotifyEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_json"})
	}
	if len(req.Recipients) == 0 {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "recipients_required"})
	}

	ev, err := h.events.GetByID(c.UserContext(), int64(eventID))
	if err != nil {
		if errors.Is(err, idb.ErrEventNotFound) {
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{Error: "event_not_found"})
		}
		h.logger.WithError(err).WithField("event_id", eventID).Error("could not load event")
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{Error: "internal_server_error"})
	}

	recipients := make([]*supplier.Supplier, len(req.Recipients))
	for i, r := range req.Recipients {
		recipients[i] = &supplier.Supplier{
			ID:               r.ID,
			Name:             r.Name,
			Phone:            nullString(r.Phone),
			Email:            nullString(r.Email),
			PushSubscription: nullString(r.PushSubscription),
		}
	}

	summary := h.notifier.NotifyRecipients(c.UserContext(), ev, recipients, notify.TemplateInvite)

	return c.Status(http.StatusOK).JSON(NotifyEventResponse{
		Success: true,
		Message: fmt.Sprintf("notified %d of %d recipients", summary.Succeeded, summary.TotalRecipients),
		Details: toResultDTOs(summary.Results),
	})
}

// DailyReminders is the cron trigger endpoint. The shared secret is enforced
// whenever one is configured.
func (h *Handler) DailyReminders(c *fiber.Ctx) error {
	if h.cronSecret != "" && c.Query("secret") != h.cronSecret {
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{Error: "unauthorized"})
	}

	summary, err := h.sweeper.RunDailySweep(c.UserContext())
	if err != nil {
		h.logger.WithError(err).Error("daily reminder sweep failed")
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{Error: "internal_server_error"})
	}

	return c.Status(http.StatusOK).JSON(SweepResponse{
		Success:           true,
		Message:           "daily reminders processed",
		EventsProcessed:   summary.EventsProcessed,
		NotificationsSent: summary.NotificationsSent,
	})
}

func (h *Handler) GatewayStatus(c *fiber.Ctx) error {
	info, err := h.gateway.Status(c.UserContext())
	if err != nil {
		h.logger.WithError(err).Error("gateway status check failed")
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{Error: "gateway_unreachable"})
	}
	return c.Status(http.StatusOK).JSON(info)
}

func (h *Handler) GatewayQR(c *fiber.Ctx) error {
	info, err := h.gateway.Connect(c.UserContext())
	if err != nil {
		h.logger.WithError(err).Error("gateway pairing request failed")
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{Error: "gateway_unreachable"})
	}
	return c.Status(http.StatusOK).JSON(info)
}

func toResultDTOs(results []notify.ChannelResult) []ChannelResultDTO {
	out := make([]ChannelResultDTO, len(results))
	for i, res := range results {
		out[i] = ChannelResultDTO{
			RecipientID: res.SupplierID,
			Channel:     string(res.Channel),
			Status:      string(res.Status),
			Detail:      res.Detail,
		}
	}
	return out
}

func nullString(v *string) sql.NullString {
	if v == nil || *v == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}
