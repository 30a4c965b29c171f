package publisher

import (
	"context"
	"errors"
	"fmt"
	"log"
)

// Define errors
var (
	ErrNilConfig = errors.New("config cannot be nil")
	ErrNilEditor = errors.New("editor cannot be nil")
)

// service implements the Service interface.
type service struct {
	editor Editor
}

// New creates a new publisher service.
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Editor == nil {
		return nil, ErrNilEditor
	}

	return &service{
		editor: cfg.Editor,
	}, nil
}

// Publish edits the tracked status message in place. When no message is
// tracked, or the edit fails (message deleted, edit rejected, transport
// error), it sends a replacement and returns the new ID. An error comes
// back only when both paths failed.
func (s *service) Publish(ctx context.Context, input *PublishInput) (*PublishOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.MessageID != nil {
		err := s.editor.Edit(ctx, &EditInput{
			ChatID:    input.ChatID,
			MessageID: *input.MessageID,
			Text:      input.Text,
		})
		if err == nil {
			return &PublishOutput{MessageID: *input.MessageID}, nil
		}

		log.Printf("Failed to edit status message %d: %v, sending a replacement", *input.MessageID, err)
	}

	sent, err := s.editor.Send(ctx, &SendInput{
		ChatID: input.ChatID,
		Text:   input.Text,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send status message: %w", err)
	}

	return &PublishOutput{
		MessageID: sent.MessageID,
		Resent:    input.MessageID != nil,
	}, nil
}
