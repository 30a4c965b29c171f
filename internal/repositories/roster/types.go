package roster

import (
	"sort"

	"github.com/trenirovka/rosterbot/internal/models"
)

// snapshot is the persisted wire form of the roster. The field names and
// shapes are a compatibility contract with existing data files: payments
// is a plain ID array, custom_title is "" when unset, message_id is null
// until the first status message is sent.
type snapshot struct {
	Participants []models.Participant `json:"participants"`
	Queue        []models.Participant `json:"queue"`
	Payments     []int64              `json:"payments"`
	CustomTitle  string               `json:"custom_title"`
	MessageID    *int                 `json:"message_id"`
}

func toSnapshot(roster *models.Roster) *snapshot {
	payments := make([]int64, 0, len(roster.Paid))
	for id := range roster.Paid {
		payments = append(payments, id)
	}
	sort.Slice(payments, func(i, j int) bool { return payments[i] < payments[j] })

	title := ""
	if roster.Title != nil {
		title = *roster.Title
	}

	participants := roster.Participants
	if participants == nil {
		participants = []models.Participant{}
	}
	queue := roster.Waitlist
	if queue == nil {
		queue = []models.Participant{}
	}

	return &snapshot{
		Participants: participants,
		Queue:        queue,
		Payments:     payments,
		CustomTitle:  title,
		MessageID:    roster.MessageID,
	}
}

func (s *snapshot) toRoster() *models.Roster {
	roster := models.NewRoster()
	roster.Participants = s.Participants
	roster.Waitlist = s.Queue
	for _, id := range s.Payments {
		roster.Paid[id] = struct{}{}
	}
	if s.CustomTitle != "" {
		roster.SetTitle(s.CustomTitle)
	}
	roster.MessageID = s.MessageID
	return roster
}
