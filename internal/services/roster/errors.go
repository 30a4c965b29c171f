package roster

import "errors"

// Define errors
var (
	ErrNilConfig        = errors.New("config cannot be nil")
	ErrNilRosterRepo    = errors.New("roster repository cannot be nil")
	ErrNilActionLogRepo = errors.New("action log repository cannot be nil")
	ErrNilPublisher     = errors.New("publisher cannot be nil")
	ErrNilClock         = errors.New("clock cannot be nil")
)
