package telegram

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	rosterService "github.com/trenirovka/rosterbot/internal/services/roster"
)

// handleCallback processes status message button presses. The callback is
// acknowledged before the roster work runs so the client's spinner stops
// immediately.
func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if _, err := b.api.AnswerCallbackQuery(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		log.Printf("Failed to answer callback query: %v", err)
	}

	if cq.Message == nil {
		return
	}

	chatID := cq.Message.Chat.ID
	actor := actorFrom(cq.From)

	var err error
	switch cq.Data {
	case actionSignup:
		_, err = b.roster.Signup(ctx, &rosterService.SignupInput{ChatID: chatID, Actor: actor})
	case actionMaybe:
		_, err = b.roster.Maybe(ctx, &rosterService.MaybeInput{ChatID: chatID, Actor: actor})
	case actionForceMajeure:
		_, err = b.roster.ForceMajeure(ctx, &rosterService.ForceMajeureInput{ChatID: chatID, Actor: actor})
	case actionPaid:
		_, err = b.roster.MarkPaid(ctx, &rosterService.MarkPaidInput{ChatID: chatID, Actor: actor})
	case actionStats:
		if !b.isPrivileged(chatID, actor.ID) {
			b.reply(chatID, "This function is only available to group admins!")
			return
		}
		var out *rosterService.StatsOutput
		out, err = b.roster.Stats(ctx, &rosterService.StatsInput{})
		if err == nil {
			b.replyHTML(chatID, out.Text)
		}
	default:
		log.Printf("Unknown callback action %q", cq.Data)
	}

	if err != nil {
		log.Printf("Callback %q failed: %v", cq.Data, err)
	}
}
