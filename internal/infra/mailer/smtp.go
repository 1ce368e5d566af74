// Package mailer delivers notifications over SMTP.
package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	"event_notifier/internal/domain/notify"
	"event_notifier/internal/domain/supplier"
)

// sendMailHook allows tests to override SMTP sending behavior.
var sendMailHook = smtp.SendMail

// Config carries SMTP server settings.
type Config struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// Channel sends notification emails. A supplier's address is its email field.
type Channel struct {
	cfg Config
}

func NewChannel(cfg Config) *Channel {
	return &Channel{cfg: cfg}
}

func (c *Channel) Kind() notify.Kind {
	return notify.KindEmail
}

func (c *Channel) Address(s *supplier.Supplier) (string, bool) {
	if !s.Email.Valid || s.Email.String == "" {
		return "", false
	}
	return s.Email.String, true
}

func (c *Channel) Send(_ context.Context, addr string, msg notify.Message) error {
	serverAddr := fmt.Sprintf("%s:%d", c.cfg.Host, c.cfg.Port)
	var auth smtp.Auth
	if c.cfg.User != "" {
		auth = smtp.PlainAuth("", c.cfg.User, c.cfg.Pass, c.cfg.Host)
	}

	body := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		c.cfg.From, addr, msg.Title, msg.Body)

	if err := sendMailHook(serverAddr, auth, c.cfg.From, []string{addr}, []byte(body)); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
