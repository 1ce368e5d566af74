package notify

import (
	"context"

	"event_notifier/internal/domain/supplier"
)

// Kind identifies a delivery channel.
type Kind string

const (
	KindPush    Kind = "push"
	KindMessage Kind = "message"
	KindEmail   Kind = "email"
)

// Message is the rendered content delivered through a channel.
type Message struct {
	Title   string
	Body    string
	EventID int64
}

// Channel is the uniform adapter every delivery mechanism is wrapped behind.
// Address reports whether the supplier is reachable on this channel; ok=false
// means the attempt is skipped, not failed. Send performs a single delivery
// attempt and folds every transport failure into the returned error.
type Channel interface {
	Kind() Kind
	Address(s *supplier.Supplier) (addr string, ok bool)
	Send(ctx context.Context, addr string, msg Message) error
}
