package models

// Capacity is the maximum number of confirmed participants. Everyone past
// this bound lands on the waitlist.
const Capacity = 12

// Roster is the aggregate signup state for the chat: the confirmed
// participant list (join order), the FIFO waitlist, the set of users who
// marked themselves as paid, an optional custom heading, and the ID of the
// status message currently tracked in the chat.
//
// Roster methods are pure state transitions: they perform no I/O and make
// at most one mutation per call. A user ID is never in both lists at once.
type Roster struct {
	// Participants is the confirmed list, ordered by join time
	Participants []Participant

	// Waitlist holds overflow signups in FIFO order
	Waitlist []Participant

	// Paid is the set of user IDs that confirmed payment
	Paid map[int64]struct{}

	// Title overrides the default heading when set; nil means unset
	Title *string

	// MessageID is the tracked status message; nil until the first send
	MessageID *int
}

// NewRoster returns an empty roster.
func NewRoster() *Roster {
	return &Roster{
		Paid: make(map[int64]struct{}),
	}
}

// SignupOutcome classifies the result of a Signup transition.
type SignupOutcome string

const (
	// SignupJoined indicates the actor was appended to the participant list
	SignupJoined SignupOutcome = "joined"

	// SignupWaitlisted indicates the list was full and the actor was
	// appended to the waitlist
	SignupWaitlisted SignupOutcome = "waitlisted"

	// SignupPromoted indicates the actor moved from the waitlist into a
	// freed participant slot
	SignupPromoted SignupOutcome = "promoted"

	// SignupAlreadyJoined indicates the actor was already a participant
	SignupAlreadyJoined SignupOutcome = "already_joined"

	// SignupAlreadyQueued indicates the actor was already waitlisted and
	// the participant list is still full
	SignupAlreadyQueued SignupOutcome = "already_queued"
)

// SignupResult is the outcome of a Signup call.
type SignupResult struct {
	Outcome SignupOutcome

	// Position is the actor's 1-based position in whichever list they
	// ended up in
	Position int
}

// Signup places the actor on the roster. Waitlisted actors are promoted
// into a free participant slot; with no free slot they stay queued (the
// original bot re-appends them, so repeat pressers drift to the tail).
func (r *Roster) Signup(id int64, name string) SignupResult {
	p := Participant{ID: id, Name: name}

	if i := indexOf(r.Waitlist, id); i >= 0 {
		r.Waitlist = removeAt(r.Waitlist, i)
		if len(r.Participants) < Capacity {
			r.Participants = append(r.Participants, p)
			return SignupResult{Outcome: SignupPromoted, Position: len(r.Participants)}
		}
		r.Waitlist = append(r.Waitlist, p)
		return SignupResult{Outcome: SignupAlreadyQueued, Position: len(r.Waitlist)}
	}

	if i := indexOf(r.Participants, id); i >= 0 {
		return SignupResult{Outcome: SignupAlreadyJoined, Position: i + 1}
	}

	if len(r.Participants) < Capacity {
		r.Participants = append(r.Participants, p)
		return SignupResult{Outcome: SignupJoined, Position: len(r.Participants)}
	}

	r.Waitlist = append(r.Waitlist, p)
	return SignupResult{Outcome: SignupWaitlisted, Position: len(r.Waitlist)}
}

// MaybeOutcome classifies the result of a Maybe transition.
type MaybeOutcome string

const (
	// MaybeMoved indicates the actor left the participant list for the
	// waitlist tail
	MaybeMoved MaybeOutcome = "moved_to_waitlist"

	// MaybeAlreadyQueued indicates the actor was already on the waitlist
	MaybeAlreadyQueued MaybeOutcome = "already_queued"

	// MaybeQueued indicates the actor joined the waitlist directly
	MaybeQueued MaybeOutcome = "queued"
)

// MaybeResult is the outcome of a Maybe call.
type MaybeResult struct {
	Outcome MaybeOutcome

	// Position is the actor's 1-based waitlist position
	Position int
}

// Maybe marks the actor as uncertain: participants move to the waitlist
// tail (nobody else is promoted by this), unregistered actors join the
// waitlist directly.
func (r *Roster) Maybe(id int64, name string) MaybeResult {
	p := Participant{ID: id, Name: name}

	if i := indexOf(r.Participants, id); i >= 0 {
		r.Participants = removeAt(r.Participants, i)
		r.Waitlist = append(r.Waitlist, p)
		return MaybeResult{Outcome: MaybeMoved, Position: len(r.Waitlist)}
	}

	if i := indexOf(r.Waitlist, id); i >= 0 {
		return MaybeResult{Outcome: MaybeAlreadyQueued, Position: i + 1}
	}

	r.Waitlist = append(r.Waitlist, p)
	return MaybeResult{Outcome: MaybeQueued, Position: len(r.Waitlist)}
}

// ForceMajeureResult is the outcome of a ForceMajeure call.
type ForceMajeureResult struct {
	// Removed reports whether the actor was actually on either list
	Removed bool
}

// ForceMajeure withdraws the actor completely: removed from both lists,
// and their payment mark is discarded unconditionally. It never promotes
// the waitlist head; promotion happens only through that user's own
// Signup call.
func (r *Roster) ForceMajeure(id int64) ForceMajeureResult {
	removed := false

	if i := indexOf(r.Participants, id); i >= 0 {
		r.Participants = removeAt(r.Participants, i)
		removed = true
	}

	if i := indexOf(r.Waitlist, id); i >= 0 {
		r.Waitlist = removeAt(r.Waitlist, i)
		removed = true
	}

	delete(r.Paid, id)

	return ForceMajeureResult{Removed: removed}
}

// MarkPaidResult is the outcome of a MarkPaid call.
type MarkPaidResult struct {
	// Registered reports whether the actor was on either list; payment is
	// only recorded for registered actors
	Registered bool
}

// MarkPaid records the actor's payment. Valid only while the actor is on
// the participant list or the waitlist; idempotent.
func (r *Roster) MarkPaid(id int64) MarkPaidResult {
	if indexOf(r.Participants, id) < 0 && indexOf(r.Waitlist, id) < 0 {
		return MarkPaidResult{Registered: false}
	}

	r.Paid[id] = struct{}{}
	return MarkPaidResult{Registered: true}
}

// IsPaid reports whether the user has confirmed payment.
func (r *Roster) IsPaid(id int64) bool {
	_, ok := r.Paid[id]
	return ok
}

// SetTitle replaces the custom heading.
func (r *Roster) SetTitle(title string) {
	r.Title = &title
}

// ClearTitle removes the custom heading, falling back to the default.
func (r *Roster) ClearTitle() {
	r.Title = nil
}

// ClearAll resets participants, waitlist, payments and title. The tracked
// message ID survives so the cleared state is still rendered in place, and
// the action log is untouched.
func (r *Roster) ClearAll() {
	r.Participants = nil
	r.Waitlist = nil
	r.Paid = make(map[int64]struct{})
	r.Title = nil
}

func indexOf(list []Participant, id int64) int {
	for i, p := range list {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func removeAt(list []Participant, i int) []Participant {
	return append(list[:i], list[i+1:]...)
}
