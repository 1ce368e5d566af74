package gateway

import (
	"context"
	"fmt"

	"event_notifier/internal/domain/contact"
	"event_notifier/internal/domain/notify"
	"event_notifier/internal/domain/supplier"
)

// MessageChannel adapts the gateway client to the uniform notify.Channel
// interface: unusable phone numbers become skips, unsuccessful send results
// become errors.
type MessageChannel struct {
	client     *Client
	normalizer contact.Normalizer
}

func NewMessageChannel(client *Client, normalizer contact.Normalizer) *MessageChannel {
	return &MessageChannel{client: client, normalizer: normalizer}
}

func (m *MessageChannel) Kind() notify.Kind {
	return notify.KindMessage
}

func (m *MessageChannel) Address(s *supplier.Supplier) (string, bool) {
	if !s.Phone.Valid {
		return "", false
	}
	return m.normalizer.Normalize(s.Phone.String)
}

func (m *MessageChannel) Send(ctx context.Context, addr string, msg notify.Message) error {
	result := m.client.SendMessage(ctx, addr, msg.Body)
	if !result.Success {
		return fmt.Errorf("send message: %s", result.Message)
	}
	return nil
}
