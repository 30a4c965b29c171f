package roster

import (
	"github.com/trenirovka/rosterbot/internal/common/clock"
	"github.com/trenirovka/rosterbot/internal/models"
	actionlogRepo "github.com/trenirovka/rosterbot/internal/repositories/actionlog"
	rosterRepo "github.com/trenirovka/rosterbot/internal/repositories/roster"
	"github.com/trenirovka/rosterbot/internal/services/publisher"
)

// Config holds configuration for the roster service.
type Config struct {
	// Repository dependencies
	RosterRepo    rosterRepo.Repository
	ActionLogRepo actionlogRepo.Repository

	// Publisher keeps the chat's status message current
	Publisher publisher.Service

	// Clock supplies action log timestamps
	Clock clock.Clock
}

// Actor identifies who triggered an operation.
type Actor struct {
	// ID is the Telegram user ID
	ID int64

	// Name is the display name used in notifications and the action log
	Name string
}

// SignupInput contains parameters for a signup.
type SignupInput struct {
	// ChatID is the chat whose status message is updated
	ChatID int64

	// Actor is the user signing up
	Actor Actor
}

// SignupOutput contains the result of a signup.
type SignupOutput struct {
	// Outcome classifies what happened
	Outcome models.SignupOutcome

	// Position is the actor's 1-based position in their resulting list
	Position int

	// Notification is the user-facing summary of the outcome
	Notification string
}

// MaybeInput contains parameters for a waitlist move.
type MaybeInput struct {
	ChatID int64
	Actor  Actor
}

// MaybeOutput contains the result of a waitlist move.
type MaybeOutput struct {
	Outcome      models.MaybeOutcome
	Position     int
	Notification string
}

// ForceMajeureInput contains parameters for a withdrawal.
type ForceMajeureInput struct {
	ChatID int64
	Actor  Actor
}

// ForceMajeureOutput contains the result of a withdrawal.
type ForceMajeureOutput struct {
	// Removed reports whether the actor was registered at all
	Removed      bool
	Notification string
}

// MarkPaidInput contains parameters for a payment mark.
type MarkPaidInput struct {
	ChatID int64
	Actor  Actor
}

// MarkPaidOutput contains the result of a payment mark.
type MarkPaidOutput struct {
	// Registered reports whether the actor was on either list
	Registered   bool
	Notification string
}

// SetTitleInput contains parameters for replacing the heading.
type SetTitleInput struct {
	ChatID int64
	Actor  Actor

	// Title is the new heading
	Title string
}

// SetTitleOutput contains the result of replacing the heading.
type SetTitleOutput struct {
	Notification string
}

// ClearTitleInput contains parameters for clearing the heading.
type ClearTitleInput struct {
	ChatID int64
	Actor  Actor
}

// ClearTitleOutput contains the result of clearing the heading.
type ClearTitleOutput struct {
	Notification string
}

// ClearAllInput contains parameters for a roster reset.
type ClearAllInput struct {
	ChatID int64
	Actor  Actor
}

// ClearAllOutput contains the result of a roster reset.
type ClearAllOutput struct {
	Notification string
}

// AnnounceInput contains parameters for posting a fresh status message.
type AnnounceInput struct {
	ChatID int64
}

// AnnounceOutput contains the result of posting a fresh status message.
type AnnounceOutput struct {
	// MessageID is the newly tracked status message
	MessageID int
}

// StatsInput contains parameters for rendering the action history.
type StatsInput struct{}

// StatsOutput contains the rendered action history.
type StatsOutput struct {
	Text string
}

// SnapshotInput contains parameters for reading the roster state.
type SnapshotInput struct{}

// SnapshotOutput contains a copy of the roster state.
type SnapshotOutput struct {
	Roster *models.Roster
}
