// Package render formats roster state and the action log as Telegram HTML
// text. Everything here is a pure function of its input.
package render

import (
	"fmt"
	"strings"

	"github.com/trenirovka/rosterbot/internal/models"
)

// DefaultTitle is the status message heading used when no custom title is
// set.
const DefaultTitle = "Signup list and waitlist"

// List renders the status message body: the heading, the enumerated
// participant list and the enumerated waitlist, with a checkmark next to
// everyone who marked themselves as paid.
func List(roster *models.Roster) string {
	title := DefaultTitle
	if roster.Title != nil {
		title = *roster.Title
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📋 <b>%s</b>\n\n", title)

	b.WriteString("👥 Signed up:\n")
	writeEntries(&b, roster, roster.Participants, "No one has signed up yet.\n")

	b.WriteString("\n🕒 Waitlist:\n")
	writeEntries(&b, roster, roster.Waitlist, "The waitlist is empty.\n")

	return b.String()
}

func writeEntries(b *strings.Builder, roster *models.Roster, list []models.Participant, placeholder string) {
	if len(list) == 0 {
		b.WriteString(placeholder)
		return
	}
	for i, p := range list {
		mark := ""
		if roster.IsPaid(p.ID) {
			mark = " ✅"
		}
		fmt.Fprintf(b, "%d. %s%s\n", i+1, p.Name, mark)
	}
}

// Log renders the action history chronologically, one line per entry.
func Log(entries []models.ActionEntry) string {
	var b strings.Builder
	b.WriteString("📊 <b>Action history</b>\n\n")

	if len(entries) == 0 {
		b.WriteString("No recorded actions.")
		return b.String()
	}

	for _, e := range entries {
		fmt.Fprintf(&b, "[%s] %s (%d): %s\n",
			e.Timestamp.Format(models.ActionTimeLayout), e.ActorName, e.ActorID, e.Action)
	}

	return b.String()
}
