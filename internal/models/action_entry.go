package models

import "time"

// ActionTimeLayout is the timestamp format used in the persisted action
// log and in the rendered statistics view.
const ActionTimeLayout = "2006-01-02 15:04:05"

// ActionEntry is one immutable record in the append-only action log. The
// log outlives roster resets; nothing in the system trims or rewrites
// existing entries.
type ActionEntry struct {
	// Timestamp is when the action happened
	Timestamp time.Time

	// ActorID is the Telegram user ID of the actor
	ActorID int64

	// ActorName is the actor's display name at the time of the action
	ActorName string

	// Action is a human-readable description of what happened
	Action string
}
