package telegram

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"

// Button callback actions.
const (
	actionSignup       = "signup"
	actionMaybe        = "maybe"
	actionForceMajeure = "force_majeure"
	actionPaid         = "paid"
	actionStats        = "stats"
)

// statusKeyboard is the inline keyboard attached to every status message.
// The statistics button is shown to everyone; the handler enforces the
// privilege check when it is pressed.
func statusKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Sign up", actionSignup),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Not sure yet", actionMaybe),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Force majeure", actionForceMajeure),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("I paid", actionPaid),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Statistics", actionStats),
		),
	)
}

// menuKeyboard is the reply keyboard listing the available commands.
func menuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("/start"),
			tgbotapi.NewKeyboardButton("/menu"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("/settitle"),
			tgbotapi.NewKeyboardButton("/cleartitle"),
			tgbotapi.NewKeyboardButton("/clearall"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("/stats"),
		),
	)
}
