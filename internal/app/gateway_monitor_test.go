package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"event_notifier/internal/app"
)

type fakeProbe struct {
	connected bool
	state     string
	err       error
}

func (f *fakeProbe) Connected(context.Context) (bool, string, error) {
	return f.connected, f.state, f.err
}

func TestGatewayMonitor_AlertsOnDisconnect(t *testing.T) {
	probe := &fakeProbe{connected: false, state: "UNPAIRED"}
	alerter := &fakeAlerter{}
	m := app.NewGatewayMonitor(probe, alerter, testLogger())

	m.CheckOnce(context.Background())

	if len(alerter.texts) != 1 {
		t.Fatalf("expected one disconnect alert, got %d", len(alerter.texts))
	}
	if !strings.Contains(alerter.texts[0], "UNPAIRED") {
		t.Fatalf("alert should carry the gateway state, got %q", alerter.texts[0])
	}
}

func TestGatewayMonitor_AlertsOnlyOnTransition(t *testing.T) {
	probe := &fakeProbe{connected: false, state: "UNPAIRED"}
	alerter := &fakeAlerter{}
	m := app.NewGatewayMonitor(probe, alerter, testLogger())

	m.CheckOnce(context.Background())
	m.CheckOnce(context.Background())
	m.CheckOnce(context.Background())

	if len(alerter.texts) != 1 {
		t.Fatalf("a gateway that stays down must alert once, got %d alerts", len(alerter.texts))
	}

	probe.connected = true
	probe.state = "CONNECTED"
	m.CheckOnce(context.Background())
	m.CheckOnce(context.Background())

	if len(alerter.texts) != 2 {
		t.Fatalf("expected one recovery alert, got %d total", len(alerter.texts))
	}
}

func TestGatewayMonitor_ProbeErrorCountsAsDown(t *testing.T) {
	probe := &fakeProbe{err: errors.New("connection refused")}
	alerter := &fakeAlerter{}
	m := app.NewGatewayMonitor(probe, alerter, testLogger())

	m.CheckOnce(context.Background())

	if len(alerter.texts) != 1 {
		t.Fatalf("an unreachable gateway must alert, got %d alerts", len(alerter.texts))
	}
}

func TestGatewayMonitor_NilAlerter(t *testing.T) {
	probe := &fakeProbe{connected: false, state: "UNPAIRED"}
	m := app.NewGatewayMonitor(probe, nil, testLogger())

	// Must not panic without an alerter configured.
	m.CheckOnce(context.Background())
	m.CheckOnce(context.Background())
}
