// Package telegram sends operational alerts to the admin chat via a Telegram bot.
package telegram

import (
	"gopkg.in/telebot.v3"
)

// TelebotAlerter implements the alert.Alerter interface using gopkg.in/telebot.v3.
type TelebotAlerter struct {
	bot    *telebot.Bot
	chatID int64
}

func NewTelebotAlerter(b *telebot.Bot, chatID int64) *TelebotAlerter {
	return &TelebotAlerter{bot: b, chatID: chatID}
}

// SendAlert sends a plain-text message to the configured admin chat.
func (a *TelebotAlerter) SendAlert(text string) error {
	_, err := a.bot.Send(&telebot.User{ID: a.chatID}, text)
	return err
}
