package roster

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/trenirovka/rosterbot/internal/common/clock"
	"github.com/trenirovka/rosterbot/internal/models"
	"github.com/trenirovka/rosterbot/internal/render"
	actionlogRepo "github.com/trenirovka/rosterbot/internal/repositories/actionlog"
	rosterRepo "github.com/trenirovka/rosterbot/internal/repositories/roster"
	"github.com/trenirovka/rosterbot/internal/services/publisher"
)

// service implements the Service interface. The mutex serializes every
// operation end to end: mutation, log append, save and status message
// publish happen before the next interaction touches the roster.
type service struct {
	mu     sync.Mutex
	roster *models.Roster

	rosterRepo    rosterRepo.Repository
	actionLogRepo actionlogRepo.Repository
	pub           publisher.Service
	clock         clock.Clock
}

// New creates a new roster service, loading the persisted roster state.
func New(ctx context.Context, cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.RosterRepo == nil {
		return nil, ErrNilRosterRepo
	}
	if cfg.ActionLogRepo == nil {
		return nil, ErrNilActionLogRepo
	}
	if cfg.Publisher == nil {
		return nil, ErrNilPublisher
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	loaded, err := cfg.RosterRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	return &service{
		roster:        loaded,
		rosterRepo:    cfg.RosterRepo,
		actionLogRepo: cfg.ActionLogRepo,
		pub:           cfg.Publisher,
		clock:         cfg.Clock,
	}, nil
}

// Signup places the actor on the roster.
func (s *service) Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.roster.Signup(input.Actor.ID, input.Actor.Name)

	var notification, action string
	switch res.Outcome {
	case models.SignupPromoted:
		notification = fmt.Sprintf("%s, you moved from the waitlist to the signup list! Position: %d", input.Actor.Name, res.Position)
		action = "Promoted from waitlist to participants"
	case models.SignupAlreadyQueued:
		notification = fmt.Sprintf("%s, you are already on the waitlist!", input.Actor.Name)
		action = "Repeated signup attempt while waitlisted"
	case models.SignupAlreadyJoined:
		notification = "You are already on the signup list!"
		action = "Repeated signup attempt"
	case models.SignupWaitlisted:
		notification = fmt.Sprintf("%s, you joined the waitlist! Position: %d", input.Actor.Name, res.Position)
		action = "Added to waitlist"
	default:
		notification = fmt.Sprintf("%s, you are signed up! Position: %d", input.Actor.Name, res.Position)
		action = "Signed up"
	}

	s.logAction(ctx, input.Actor, action)
	s.persist(ctx)
	s.publish(ctx, input.ChatID, notification)

	return &SignupOutput{
		Outcome:      res.Outcome,
		Position:     res.Position,
		Notification: notification,
	}, nil
}

// Maybe moves the actor to the waitlist.
func (s *service) Maybe(ctx context.Context, input *MaybeInput) (*MaybeOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.roster.Maybe(input.Actor.ID, input.Actor.Name)

	var notification, action string
	switch res.Outcome {
	case models.MaybeMoved:
		notification = fmt.Sprintf("%s, you moved from the signup list to the waitlist! Position: %d", input.Actor.Name, res.Position)
		action = "Moved from participants to waitlist (uncertain)"
	case models.MaybeAlreadyQueued:
		notification = "You are already on the waitlist!"
		action = "Repeated waitlist attempt (uncertain)"
	default:
		notification = fmt.Sprintf("%s, you joined the waitlist! Position: %d", input.Actor.Name, res.Position)
		action = "Added to waitlist (uncertain)"
	}

	s.logAction(ctx, input.Actor, action)
	s.persist(ctx)
	s.publish(ctx, input.ChatID, notification)

	return &MaybeOutput{
		Outcome:      res.Outcome,
		Position:     res.Position,
		Notification: notification,
	}, nil
}

// ForceMajeure withdraws the actor completely.
func (s *service) ForceMajeure(ctx context.Context, input *ForceMajeureInput) (*ForceMajeureOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.roster.ForceMajeure(input.Actor.ID)

	var notification, action string
	if res.Removed {
		notification = fmt.Sprintf("%s, you were removed from the list/waitlist.", input.Actor.Name)
		action = "Withdrew from the list/waitlist (force majeure)"
	} else {
		notification = "You were not signed up."
		action = "Withdrawal attempt while not registered (force majeure)"
	}

	s.logAction(ctx, input.Actor, action)
	s.persist(ctx)
	s.publish(ctx, input.ChatID, notification)

	return &ForceMajeureOutput{
		Removed:      res.Removed,
		Notification: notification,
	}, nil
}

// MarkPaid records the actor's payment.
func (s *service) MarkPaid(ctx context.Context, input *MarkPaidInput) (*MarkPaidOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.roster.MarkPaid(input.Actor.ID)

	var notification, action string
	if res.Registered {
		notification = fmt.Sprintf("%s, payment recorded! ✅", input.Actor.Name)
		action = "Marked as paid"
	} else {
		notification = "You are not signed up — sign up first!"
		action = "Payment attempt while not registered"
	}

	s.logAction(ctx, input.Actor, action)
	s.persist(ctx)
	s.publish(ctx, input.ChatID, notification)

	return &MarkPaidOutput{
		Registered:   res.Registered,
		Notification: notification,
	}, nil
}

// SetTitle replaces the status message heading.
func (s *service) SetTitle(ctx context.Context, input *SetTitleInput) (*SetTitleOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.roster.SetTitle(input.Title)

	s.logAction(ctx, input.Actor, fmt.Sprintf("Set title: %s", input.Title))
	s.persist(ctx)
	s.publish(ctx, input.ChatID, "")

	return &SetTitleOutput{
		Notification: fmt.Sprintf("Title set: %s", input.Title),
	}, nil
}

// ClearTitle restores the default heading.
func (s *service) ClearTitle(ctx context.Context, input *ClearTitleInput) (*ClearTitleOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.roster.ClearTitle()

	s.logAction(ctx, input.Actor, "Cleared the title")
	s.persist(ctx)
	s.publish(ctx, input.ChatID, "")

	return &ClearTitleOutput{
		Notification: "Title cleared.",
	}, nil
}

// ClearAll resets the roster. The action log survives.
func (s *service) ClearAll(ctx context.Context, input *ClearAllInput) (*ClearAllOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.roster.ClearAll()

	s.logAction(ctx, input.Actor, "Cleared all data")
	s.persist(ctx)
	s.publish(ctx, input.ChatID, "")

	return &ClearAllOutput{
		Notification: "The list, the waitlist and all data have been cleared.",
	}, nil
}

// Announce posts a fresh status message and tracks it, leaving any
// previous status message behind.
func (s *service) Announce(ctx context.Context, input *AnnounceInput) (*AnnounceOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out, err := s.pub.Publish(ctx, &publisher.PublishInput{
		ChatID: input.ChatID,
		Text:   render.List(s.roster),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to announce roster: %w", err)
	}

	id := out.MessageID
	s.roster.MessageID = &id
	s.persist(ctx)

	return &AnnounceOutput{MessageID: out.MessageID}, nil
}

// Stats renders the action history.
func (s *service) Stats(ctx context.Context, input *StatsInput) (*StatsOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.actionLogRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list the action log: %w", err)
	}

	return &StatsOutput{Text: render.Log(entries)}, nil
}

// Snapshot returns a copy of the current roster state.
func (s *service) Snapshot(ctx context.Context, input *SnapshotInput) (*SnapshotOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := models.NewRoster()
	copied.Participants = append([]models.Participant(nil), s.roster.Participants...)
	copied.Waitlist = append([]models.Participant(nil), s.roster.Waitlist...)
	for id := range s.roster.Paid {
		copied.Paid[id] = struct{}{}
	}
	if s.roster.Title != nil {
		copied.SetTitle(*s.roster.Title)
	}
	if s.roster.MessageID != nil {
		id := *s.roster.MessageID
		copied.MessageID = &id
	}

	return &SnapshotOutput{Roster: copied}, nil
}

// logAction appends one action log entry. Log failures are operator-log
// noise, never a reason to abort the roster mutation.
func (s *service) logAction(ctx context.Context, actor Actor, action string) {
	err := s.actionLogRepo.Append(ctx, models.ActionEntry{
		Timestamp: s.clock.Now(),
		ActorID:   actor.ID,
		ActorName: actor.Name,
		Action:    action,
	})
	if err != nil {
		log.Printf("Failed to append action log entry: %v", err)
	}
}

// persist saves the roster snapshot. Save failures are logged; state stays
// authoritative in memory and the next successful save catches up.
func (s *service) persist(ctx context.Context) {
	if err := s.rosterRepo.Save(ctx, s.roster); err != nil {
		log.Printf("Failed to save roster: %v", err)
	}
}

// publish renders the roster and brings the status message up to date,
// persisting the tracked message ID when it changes. A total publish
// failure clears the tracked ID so the next interaction re-establishes the
// status message; the mutation itself is never rolled back.
func (s *service) publish(ctx context.Context, chatID int64, notification string) {
	text := render.List(s.roster)
	if notification != "" {
		text = notification + "\n\n" + text
	}

	out, err := s.pub.Publish(ctx, &publisher.PublishInput{
		ChatID:    chatID,
		MessageID: s.roster.MessageID,
		Text:      text,
	})
	if err != nil {
		log.Printf("Failed to publish status message: %v", err)
		if s.roster.MessageID != nil {
			s.roster.MessageID = nil
			s.persist(ctx)
		}
		return
	}

	if s.roster.MessageID == nil || *s.roster.MessageID != out.MessageID {
		id := out.MessageID
		s.roster.MessageID = &id
		s.persist(ctx)
	}
}
