package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	rosterService "github.com/trenirovka/rosterbot/internal/services/roster"
)

// defaultUpdateTimeout is the long-poll timeout in seconds.
const defaultUpdateTimeout = 60

// Bot wires the Telegram transport to the roster service: command
// routing, button callbacks, the /settitle dialog and the privilege
// check.
type Bot struct {
	api     *tgbotapi.BotAPI
	roster  rosterService.Service
	admins  map[int64]struct{}
	dialogs *dialogManager
	timeout int
	done    chan struct{}
}

// Config holds the configuration for the bot.
type Config struct {
	// API is the Telegram client, shared with the status message editor
	API *tgbotapi.BotAPI

	// RosterService handles every roster interaction
	RosterService rosterService.Service

	// AdminIDs are treated as privileged in addition to chat
	// administrators
	AdminIDs []int64

	// UpdateTimeout is the long-poll timeout in seconds
	UpdateTimeout int
}

// New creates a new Telegram bot.
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.API == nil {
		return nil, errors.New("telegram client cannot be nil")
	}

	if cfg.RosterService == nil {
		return nil, errors.New("roster service cannot be nil")
	}

	timeout := cfg.UpdateTimeout
	if timeout <= 0 {
		timeout = defaultUpdateTimeout
	}

	admins := make(map[int64]struct{}, len(cfg.AdminIDs))
	for _, id := range cfg.AdminIDs {
		admins[id] = struct{}{}
	}

	return &Bot{
		api:     cfg.API,
		roster:  cfg.RosterService,
		admins:  admins,
		dialogs: newDialogManager(),
		timeout: timeout,
		done:    make(chan struct{}),
	}, nil
}

// Start opens the long-poll update channel and processes updates in the
// background.
func (b *Bot) Start() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.timeout

	updates, err := b.api.GetUpdatesChan(u)
	if err != nil {
		return fmt.Errorf("failed to open update channel: %w", err)
	}

	log.Printf("Authorized on account %s", b.api.Self.UserName)
	go b.run(updates)

	return nil
}

// Stop shuts down the long-poll loop and waits for the in-flight update.
func (b *Bot) Stop() {
	b.api.StopReceivingUpdates()
	<-b.done
}

func (b *Bot) run(updates tgbotapi.UpdatesChannel) {
	defer close(b.done)

	for update := range updates {
		ctx := context.Background()
		switch {
		case update.CallbackQuery != nil:
			b.handleCallback(ctx, update.CallbackQuery)
		case update.Message != nil && update.Message.IsCommand():
			b.handleCommand(ctx, update.Message)
		case update.Message != nil:
			b.handleText(ctx, update.Message)
		}
	}
}

// isPrivileged reports whether the actor may run administrative
// operations: on the configured allowlist, or an administrator/creator of
// the chat. Lookup failures count as not privileged.
func (b *Bot) isPrivileged(chatID, actorID int64) bool {
	if _, ok := b.admins[actorID]; ok {
		return true
	}

	member, err := b.api.GetChatMember(tgbotapi.ChatConfigWithUser{
		ChatID: chatID,
		UserID: int(actorID),
	})
	if err != nil {
		log.Printf("Failed to look up chat member %d: %v", actorID, err)
		return false
	}

	return member.IsAdministrator() || member.IsCreator()
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

func (b *Bot) reply(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) replyHTML(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	b.send(msg)
}

func (b *Bot) replyWithMenu(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = menuKeyboard()
	b.send(msg)
}

// displayName mirrors how the roster shows people: full name, falling
// back to the username.
func displayName(u *tgbotapi.User) string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		name = u.UserName
	}
	if name == "" {
		name = "Anonymous"
	}
	return name
}

func actorFrom(u *tgbotapi.User) rosterService.Actor {
	return rosterService.Actor{
		ID:   int64(u.ID),
		Name: displayName(u),
	}
}
