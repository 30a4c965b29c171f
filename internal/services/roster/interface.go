package roster

import "context"

// Service is the single coordinator for roster state. Every mutating
// operation runs check → mutate → log → persist → render → publish as one
// critical section, so concurrent button presses cannot lose updates or
// render stale state.
//
// Privilege checks for the administrative operations (SetTitle,
// ClearTitle, ClearAll, Stats) are the caller's responsibility.
type Service interface {
	// Signup places the actor on the participant list, or the waitlist
	// when the list is full; waitlisted actors are promoted into freed
	// slots
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)

	// Maybe moves the actor to the waitlist (mark uncertain)
	Maybe(ctx context.Context, input *MaybeInput) (*MaybeOutput, error)

	// ForceMajeure withdraws the actor from both lists and discards their
	// payment mark
	ForceMajeure(ctx context.Context, input *ForceMajeureInput) (*ForceMajeureOutput, error)

	// MarkPaid records the actor's payment while they are registered
	MarkPaid(ctx context.Context, input *MarkPaidInput) (*MarkPaidOutput, error)

	// SetTitle replaces the status message heading
	SetTitle(ctx context.Context, input *SetTitleInput) (*SetTitleOutput, error)

	// ClearTitle restores the default heading
	ClearTitle(ctx context.Context, input *ClearTitleInput) (*ClearTitleOutput, error)

	// ClearAll resets the roster (the action log is kept)
	ClearAll(ctx context.Context, input *ClearAllInput) (*ClearAllOutput, error)

	// Announce sends a fresh status message and tracks it as canonical
	Announce(ctx context.Context, input *AnnounceInput) (*AnnounceOutput, error)

	// Stats renders the action history
	Stats(ctx context.Context, input *StatsInput) (*StatsOutput, error)

	// Snapshot returns a copy of the current roster state
	Snapshot(ctx context.Context, input *SnapshotInput) (*SnapshotOutput, error)
}
