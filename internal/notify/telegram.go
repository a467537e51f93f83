// Package notify delivers review reminders to the learner.
package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram sends reminders to a single Telegram chat.
type Telegram struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegram creates a reminder sender for the given bot token and chat.
func NewTelegram(token string, chatID int64) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %v", err)
	}
	return &Telegram{api: api, chatID: chatID}, nil
}

// SendReminder tells the learner how many words are waiting for review.
func (t *Telegram) SendReminder(dueCount int) error {
	text := fmt.Sprintf("You have %d word(s) due for review. Time to practice!", dueCount)
	msg := tgbotapi.NewMessage(t.chatID, text)
	_, err := t.api.Send(msg)
	return err
}
