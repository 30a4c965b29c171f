package telegram

import (
	"context"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	rosterService "github.com/trenirovka/rosterbot/internal/services/roster"
)

const adminsOnly = "This command is only available to group admins!"

// handleCommand routes commands to their handlers.
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.handleStart(ctx, msg)
	case "menu":
		b.replyWithMenu(msg.Chat.ID, "Pick a command from the menu below:")
	case "stats":
		b.handleStats(ctx, msg)
	case "settitle":
		b.handleSetTitle(msg)
	case "cancel":
		b.handleCancel(msg)
	case "cleartitle":
		b.handleClearTitle(ctx, msg)
	case "clearall":
		b.handleClearAll(ctx, msg)
	default:
		b.reply(msg.Chat.ID, "Unknown command. Use /menu to see what I can do.")
	}
}

// handleStart greets the user and posts a fresh status message, which
// becomes the tracked one from here on.
func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	b.replyWithMenu(msg.Chat.ID, "Welcome! Use the buttons to interact, or /menu to list the commands.")

	if _, err := b.roster.Announce(ctx, &rosterService.AnnounceInput{ChatID: msg.Chat.ID}); err != nil {
		log.Printf("Failed to announce roster: %v", err)
	}
}

func (b *Bot) handleStats(ctx context.Context, msg *tgbotapi.Message) {
	if !b.isPrivileged(msg.Chat.ID, int64(msg.From.ID)) {
		b.reply(msg.Chat.ID, adminsOnly)
		return
	}

	out, err := b.roster.Stats(ctx, &rosterService.StatsInput{})
	if err != nil {
		log.Printf("Failed to render statistics: %v", err)
		return
	}

	b.replyHTML(msg.Chat.ID, out.Text)
}

// handleSetTitle starts the two-step title capture: the actor's next
// plain-text message becomes the title.
func (b *Bot) handleSetTitle(msg *tgbotapi.Message) {
	if !b.isPrivileged(msg.Chat.ID, int64(msg.From.ID)) {
		b.reply(msg.Chat.ID, adminsOnly)
		return
	}

	b.dialogs.begin(int64(msg.From.ID))

	prompt := tgbotapi.NewMessage(msg.Chat.ID, "Please send the new title (or /cancel):")
	prompt.ReplyMarkup = tgbotapi.ReplyKeyboardRemove{RemoveKeyboard: true}
	b.send(prompt)
}

func (b *Bot) handleCancel(msg *tgbotapi.Message) {
	if b.dialogs.clear(int64(msg.From.ID)) {
		b.replyWithMenu(msg.Chat.ID, "Title setup cancelled.")
	}
}

// handleText captures the title for actors mid /settitle; everything else
// is ignored.
func (b *Bot) handleText(ctx context.Context, msg *tgbotapi.Message) {
	actorID := int64(msg.From.ID)
	if !b.dialogs.clear(actorID) {
		return
	}

	title := strings.TrimSpace(msg.Text)
	if title == "" {
		b.dialogs.begin(actorID)
		b.reply(msg.Chat.ID, "The title cannot be empty, try again (or /cancel):")
		return
	}

	out, err := b.roster.SetTitle(ctx, &rosterService.SetTitleInput{
		ChatID: msg.Chat.ID,
		Actor:  actorFrom(msg.From),
		Title:  title,
	})
	if err != nil {
		log.Printf("Failed to set title: %v", err)
		return
	}

	b.replyWithMenu(msg.Chat.ID, out.Notification)
}

func (b *Bot) handleClearTitle(ctx context.Context, msg *tgbotapi.Message) {
	if !b.isPrivileged(msg.Chat.ID, int64(msg.From.ID)) {
		b.reply(msg.Chat.ID, adminsOnly)
		return
	}

	out, err := b.roster.ClearTitle(ctx, &rosterService.ClearTitleInput{
		ChatID: msg.Chat.ID,
		Actor:  actorFrom(msg.From),
	})
	if err != nil {
		log.Printf("Failed to clear title: %v", err)
		return
	}

	b.replyWithMenu(msg.Chat.ID, out.Notification)
}

func (b *Bot) handleClearAll(ctx context.Context, msg *tgbotapi.Message) {
	if !b.isPrivileged(msg.Chat.ID, int64(msg.From.ID)) {
		b.reply(msg.Chat.ID, adminsOnly)
		return
	}

	out, err := b.roster.ClearAll(ctx, &rosterService.ClearAllInput{
		ChatID: msg.Chat.ID,
		Actor:  actorFrom(msg.From),
	})
	if err != nil {
		log.Printf("Failed to clear roster: %v", err)
		return
	}

	b.replyWithMenu(msg.Chat.ID, out.Notification)
}
