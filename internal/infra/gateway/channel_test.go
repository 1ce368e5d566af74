package gateway

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"event_notifier/internal/domain/contact"
	"event_notifier/internal/domain/notify"
	"event_notifier/internal/domain/supplier"
)

func TestMessageChannelAddress(t *testing.T) {
	ch := NewMessageChannel(NewClient(Config{BaseURL: "http://gateway"}), contact.NewNormalizer("55", "@c.us"))

	withPhone := &supplier.Supplier{Phone: sql.NullString{String: "(11) 98765-4321", Valid: true}}
	addr, ok := ch.Address(withPhone)
	if !ok {
		t.Fatalf("expected usable address")
	}
	if addr != "5511987654321@c.us" {
		t.Fatalf("expected normalized address, got %q", addr)
	}

	if _, ok := ch.Address(&supplier.Supplier{}); ok {
		t.Fatalf("expected skip for supplier without phone")
	}

	shortPhone := &supplier.Supplier{Phone: sql.NullString{String: "12345", Valid: true}}
	if _, ok := ch.Address(shortPhone); ok {
		t.Fatalf("expected skip for unusable phone")
	}
}

func TestMessageChannelSend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(SendResult{Success: true})
	}))
	defer srv.Close()

	ch := NewMessageChannel(NewClient(Config{BaseURL: srv.URL}), contact.NewNormalizer("55", "@c.us"))
	if err := ch.Send(context.Background(), "5511987654321@c.us", notify.Message{Body: "Olá!"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMessageChannelSendFailureBecomesError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(SendResult{Success: false, Message: "number not on whatsapp"})
	}))
	defer srv.Close()

	ch := NewMessageChannel(NewClient(Config{BaseURL: srv.URL}), contact.NewNormalizer("55", "@c.us"))
	err := ch.Send(context.Background(), "5511987654321@c.us", notify.Message{Body: "Olá!"})
	if err == nil {
		t.Fatalf("expected error for unsuccessful result")
	}
	if !strings.Contains(err.Error(), "number not on whatsapp") {
		t.Fatalf("expected gateway detail in error, got %v", err)
	}
}

func TestMessageChannelKind(t *testing.T) {
	ch := NewMessageChannel(NewClient(Config{BaseURL: "http://gateway"}), contact.NewNormalizer("", ""))
	if ch.Kind() != notify.KindMessage {
		t.Fatalf("unexpected kind %s", ch.Kind())
	}
}
