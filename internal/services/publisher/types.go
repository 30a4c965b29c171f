package publisher

// Config holds configuration for the publisher service.
type Config struct {
	// Editor is the transport used to edit and send status messages
	Editor Editor
}

// EditInput contains parameters for editing an existing message.
type EditInput struct {
	// ChatID is the chat holding the message
	ChatID int64

	// MessageID is the message to edit
	MessageID int

	// Text is the replacement body
	Text string
}

// SendInput contains parameters for sending a new message.
type SendInput struct {
	// ChatID is the destination chat
	ChatID int64

	// Text is the message body
	Text string
}

// SendOutput contains the result of sending a new message.
type SendOutput struct {
	// MessageID is the ID assigned by the transport
	MessageID int
}

// PublishInput contains parameters for a status message update.
type PublishInput struct {
	// ChatID is the chat whose status message is updated
	ChatID int64

	// MessageID is the currently tracked status message, nil when no
	// message is tracked yet (or a fresh send is wanted)
	MessageID *int

	// Text is the rendered status body
	Text string
}

// PublishOutput contains the result of a status message update.
type PublishOutput struct {
	// MessageID is the message now tracked as canonical
	MessageID int

	// Resent reports that the tracked message could not be edited and a
	// replacement was sent instead
	Resent bool
}
