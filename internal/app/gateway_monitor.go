package app

import (
	"context"
	"fmt"
	"sync"

	"event_notifier/internal/domain/alert"

	"github.com/sirupsen/logrus"
)

// StatusProbe reports the messaging gateway's connectivity.
type StatusProbe interface {
	Connected(ctx context.Context) (connected bool, state string, err error)
}

// GatewayMonitor watches the messaging gateway and alerts the admin chat when
// the session drops or recovers. Alerts fire only on state transitions, a
// gateway that stays down produces a single alert.
type GatewayMonitor struct {
	probe   StatusProbe
	alerter alert.Alerter // nil disables alerts; checks still log
	logger  *logrus.Entry

	mu   sync.Mutex
	down bool
}

func NewGatewayMonitor(probe StatusProbe, alerter alert.Alerter, logger *logrus.Entry) *GatewayMonitor {
	return &GatewayMonitor{probe: probe, alerter: alerter, logger: logger}
}

// CheckOnce probes the gateway and sends a transition alert if its
// connectivity changed since the previous check.
func (m *GatewayMonitor) CheckOnce(ctx context.Context) {
	connected, state, err := m.probe.Connected(ctx)
	if err != nil {
		m.logger.WithError(err).Warn("gateway status check failed")
		m.transition(false, "inalcançável")
		return
	}
	m.transition(connected, state)
}

func (m *GatewayMonitor) transition(connected bool, state string) {
	m.mu.Lock()
	wasDown := m.down
	m.down = !connected
	m.mu.Unlock()

	switch {
	case !connected && !wasDown:
		m.logger.WithField("state", state).Warn("messaging gateway disconnected")
		m.alert(fmt.Sprintf("Gateway de mensagens desconectado (estado: %s). Reconecte pelo painel.", state))
	case connected && wasDown:
		m.logger.Info("messaging gateway reconnected")
		m.alert("Gateway de mensagens reconectado.")
	}
}

func (m *GatewayMonitor) alert(text string) {
	if m.alerter == nil {
		return
	}
	if err := m.alerter.SendAlert(text); err != nil {
		m.logger.WithError(err).Warn("could not send gateway alert to admin")
	}
}
