package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/trenirovka/rosterbot/internal/services/publisher"
)

// Editor adapts the Telegram API to the publisher's Editor interface.
// Every status message is sent as HTML and carries the status keyboard.
type Editor struct {
	api *tgbotapi.BotAPI
}

// NewEditor creates a status message editor on the given client.
func NewEditor(api *tgbotapi.BotAPI) *Editor {
	return &Editor{api: api}
}

// Edit replaces the text of an existing status message.
func (e *Editor) Edit(ctx context.Context, input *publisher.EditInput) error {
	edit := tgbotapi.NewEditMessageText(input.ChatID, input.MessageID, input.Text)
	edit.ParseMode = tgbotapi.ModeHTML
	markup := statusKeyboard()
	edit.ReplyMarkup = &markup

	_, err := e.api.Send(edit)
	return err
}

// Send posts a new status message and returns its ID.
func (e *Editor) Send(ctx context.Context, input *publisher.SendInput) (*publisher.SendOutput, error) {
	msg := tgbotapi.NewMessage(input.ChatID, input.Text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = statusKeyboard()

	sent, err := e.api.Send(msg)
	if err != nil {
		return nil, err
	}

	return &publisher.SendOutput{MessageID: sent.MessageID}, nil
}
