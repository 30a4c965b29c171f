package publisher

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/trenirovka/rosterbot/internal/services/publisher Service,Editor

// Service keeps the single canonical status message of a chat current.
// Publish edits the tracked message in place when possible and falls back
// to sending a replacement when the edit is rejected.
type Service interface {
	// Publish brings the chat's status message in line with the given
	// text and reports which message ID is tracked afterwards
	Publish(ctx context.Context, input *PublishInput) (*PublishOutput, error)
}

// Editor is the transport surface the synchronizer drives. The Telegram
// handler implements it; tests substitute a mock.
type Editor interface {
	// Edit replaces the text of an existing chat message
	Edit(ctx context.Context, input *EditInput) error

	// Send posts a new chat message and returns its ID
	Send(ctx context.Context, input *SendInput) (*SendOutput, error)
}
