// Package push delivers web-push notifications to browser-registered endpoints.
package push

import (
	"context"
	"encoding/json"
	"fmt"

	"event_notifier/internal/domain/notify"
	"event_notifier/internal/domain/supplier"

	webpush "github.com/SherClockHolmes/webpush-go"
)

const defaultTTL = 60 // seconds the push service may queue an undelivered message

// Config carries the VAPID key pair and the subscriber contact URI.
type Config struct {
	VAPIDPublicKey  string
	VAPIDPrivateKey string
	Subscriber      string
}

// Channel sends push payloads through the web-push protocol. A supplier's
// address is its JSON-encoded browser subscription.
type Channel struct {
	cfg Config
}

func NewChannel(cfg Config) *Channel {
	return &Channel{cfg: cfg}
}

func (c *Channel) Kind() notify.Kind {
	return notify.KindPush
}

func (c *Channel) Address(s *supplier.Supplier) (string, bool) {
	if !s.PushSubscription.Valid || s.PushSubscription.String == "" {
		return "", false
	}
	return s.PushSubscription.String, true
}

func (c *Channel) Send(ctx context.Context, addr string, msg notify.Message) error {
	var sub webpush.Subscription
	if err := json.Unmarshal([]byte(addr), &sub); err != nil {
		return fmt.Errorf("decode push subscription: %w", err)
	}

	payload, err := json.Marshal(map[string]any{
		"title":   msg.Title,
		"body":    msg.Body,
		"eventId": msg.EventID,
	})
	if err != nil {
		return fmt.Errorf("encode push payload: %w", err)
	}

	resp, err := webpush.SendNotificationWithContext(ctx, payload, &sub, &webpush.Options{
		Subscriber:      c.cfg.Subscriber,
		VAPIDPublicKey:  c.cfg.VAPIDPublicKey,
		VAPIDPrivateKey: c.cfg.VAPIDPrivateKey,
		TTL:             defaultTTL,
	})
	if err != nil {
		return fmt.Errorf("send push: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("push service returned status %d", resp.StatusCode)
	}
	return nil
}
