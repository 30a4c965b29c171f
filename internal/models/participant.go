package models

// Participant is a single chat user on the roster.
//
// Identity is the Telegram user ID. Name is display-only and may change
// between interactions without affecting identity-based lookups.
type Participant struct {
	// ID is the Telegram user ID
	ID int64 `json:"id"`

	// Name is the display name at the time of the last interaction
	Name string `json:"name"`
}
