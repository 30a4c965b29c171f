package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type RosterTestSuite struct {
	suite.Suite
	roster *Roster
}

func (s *RosterTestSuite) SetupTest() {
	s.roster = NewRoster()
}

func TestRosterTestSuite(t *testing.T) {
	suite.Run(t, new(RosterTestSuite))
}

// fill signs up n distinct users with IDs 1..n.
func (s *RosterTestSuite) fill(n int) {
	for i := 1; i <= n; i++ {
		s.roster.Signup(int64(i), fmt.Sprintf("User %d", i))
	}
}

func (s *RosterTestSuite) assertDisjointLists() {
	seen := make(map[int64]string)
	for _, p := range s.roster.Participants {
		seen[p.ID] = "participants"
	}
	for _, p := range s.roster.Waitlist {
		s.NotContains(seen, p.ID, "user %d is in both lists", p.ID)
	}
}

func (s *RosterTestSuite) TestSignupJoins() {
	res := s.roster.Signup(1, "Alice")

	s.Equal(SignupJoined, res.Outcome)
	s.Equal(1, res.Position)
	s.Len(s.roster.Participants, 1)
	s.Empty(s.roster.Waitlist)
}

func (s *RosterTestSuite) TestSignupIsIdempotentForParticipants() {
	s.fill(2)

	res := s.roster.Signup(1, "User 1")

	s.Equal(SignupAlreadyJoined, res.Outcome)
	s.Equal(1, res.Position)
	s.Len(s.roster.Participants, 2)
}

func (s *RosterTestSuite) TestCapacityOverflowLandsOnWaitlist() {
	s.fill(Capacity)

	res := s.roster.Signup(100, "Latecomer")

	s.Equal(SignupWaitlisted, res.Outcome)
	s.Equal(1, res.Position)
	s.Len(s.roster.Participants, Capacity)
	s.Len(s.roster.Waitlist, 1)
	s.assertDisjointLists()
}

func (s *RosterTestSuite) TestCapacityNeverExceeded() {
	s.fill(30)

	s.Len(s.roster.Participants, Capacity)
	s.Len(s.roster.Waitlist, 30-Capacity)
	s.assertDisjointLists()
}

func (s *RosterTestSuite) TestSignupPromotesWaitlistedUser() {
	s.fill(Capacity)
	s.roster.Signup(100, "Waiting")
	s.roster.ForceMajeure(3)

	res := s.roster.Signup(100, "Waiting")

	s.Equal(SignupPromoted, res.Outcome)
	s.Equal(Capacity, res.Position)
	s.Empty(s.roster.Waitlist)
	s.assertDisjointLists()
}

func (s *RosterTestSuite) TestSignupWhileQueuedAndFullMovesToTail() {
	s.fill(Capacity)
	s.roster.Signup(100, "First in line")
	s.roster.Signup(101, "Second in line")

	res := s.roster.Signup(100, "First in line")

	s.Equal(SignupAlreadyQueued, res.Outcome)
	s.Equal(2, res.Position)
	s.Equal(int64(101), s.roster.Waitlist[0].ID)
	s.Equal(int64(100), s.roster.Waitlist[1].ID)
}

func (s *RosterTestSuite) TestMaybeMovesParticipantToWaitlistTail() {
	s.fill(3)
	s.roster.Maybe(100, "Queued")

	res := s.roster.Maybe(2, "User 2")

	s.Equal(MaybeMoved, res.Outcome)
	s.Equal(2, res.Position)
	s.Len(s.roster.Participants, 2)
	// the existing waitlist entry keeps its position
	s.Equal(int64(100), s.roster.Waitlist[0].ID)
	s.Equal(int64(2), s.roster.Waitlist[1].ID)
	s.assertDisjointLists()
}

func (s *RosterTestSuite) TestMaybeDoesNotPromoteAnyone() {
	s.fill(Capacity)
	s.roster.Signup(100, "Waiting")

	s.roster.Maybe(1, "User 1")

	s.Len(s.roster.Participants, Capacity-1)
	s.Len(s.roster.Waitlist, 2)
	s.Equal(int64(100), s.roster.Waitlist[0].ID)
}

func (s *RosterTestSuite) TestMaybeIsIdempotentForWaitlisted() {
	s.roster.Maybe(1, "Alice")

	res := s.roster.Maybe(1, "Alice")

	s.Equal(MaybeAlreadyQueued, res.Outcome)
	s.Equal(1, res.Position)
	s.Len(s.roster.Waitlist, 1)
}

func (s *RosterTestSuite) TestMaybeQueuesUnregisteredUser() {
	res := s.roster.Maybe(1, "Alice")

	s.Equal(MaybeQueued, res.Outcome)
	s.Equal(1, res.Position)
	s.Empty(s.roster.Participants)
}

func (s *RosterTestSuite) TestForceMajeureRemovesParticipant() {
	s.fill(2)
	s.roster.MarkPaid(1)

	res := s.roster.ForceMajeure(1)

	s.True(res.Removed)
	s.Len(s.roster.Participants, 1)
	s.False(s.roster.IsPaid(1))
}

func (s *RosterTestSuite) TestForceMajeureRemovesWaitlisted() {
	s.roster.Maybe(1, "Alice")

	res := s.roster.ForceMajeure(1)

	s.True(res.Removed)
	s.Empty(s.roster.Waitlist)
}

func (s *RosterTestSuite) TestForceMajeureDoesNotPromote() {
	s.fill(Capacity)
	s.roster.Signup(100, "Waiting")

	s.roster.ForceMajeure(5)

	s.Len(s.roster.Participants, Capacity-1)
	s.Len(s.roster.Waitlist, 1, "waitlist head must not be auto-promoted")
}

func (s *RosterTestSuite) TestForceMajeureOnUnregisteredUser() {
	// a stale payment mark is discarded even when the user is on no list
	s.roster.Paid[42] = struct{}{}

	res := s.roster.ForceMajeure(42)

	s.False(res.Removed)
	s.False(s.roster.IsPaid(42))
}

func (s *RosterTestSuite) TestMarkPaidRequiresRegistration() {
	res := s.roster.MarkPaid(1)

	s.False(res.Registered)
	s.False(s.roster.IsPaid(1))
}

func (s *RosterTestSuite) TestMarkPaidIsIdempotent() {
	s.fill(1)

	first := s.roster.MarkPaid(1)
	second := s.roster.MarkPaid(1)

	s.True(first.Registered)
	s.True(second.Registered)
	s.True(s.roster.IsPaid(1))
	s.Len(s.roster.Paid, 1)
}

func (s *RosterTestSuite) TestMarkPaidWorksForWaitlisted() {
	s.roster.Maybe(1, "Alice")

	res := s.roster.MarkPaid(1)

	s.True(res.Registered)
	s.True(s.roster.IsPaid(1))
}

func (s *RosterTestSuite) TestTitleLifecycle() {
	s.Nil(s.roster.Title)

	s.roster.SetTitle("Friday practice")
	s.Require().NotNil(s.roster.Title)
	s.Equal("Friday practice", *s.roster.Title)

	s.roster.ClearTitle()
	s.Nil(s.roster.Title)
}

func (s *RosterTestSuite) TestClearAllKeepsMessageID() {
	s.fill(5)
	s.roster.MarkPaid(2)
	s.roster.SetTitle("Friday practice")
	msgID := 77
	s.roster.MessageID = &msgID

	s.roster.ClearAll()

	s.Empty(s.roster.Participants)
	s.Empty(s.roster.Waitlist)
	s.Empty(s.roster.Paid)
	s.Nil(s.roster.Title)
	s.Require().NotNil(s.roster.MessageID)
	s.Equal(77, *s.roster.MessageID)
}
